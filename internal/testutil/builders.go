package testutil

import (
	"github.com/akyairhashvil/studyfocus/internal/models"
)

// SettingsBuilder provides fluent API for creating timer settings.
type SettingsBuilder struct {
	settings models.TimerSettings
}

// NewSettings starts from the pomodoro preset with auto-start off.
func NewSettings() *SettingsBuilder {
	return &SettingsBuilder{
		settings: models.TimerSettings{
			FocusSeconds:      1500,
			ShortBreakSeconds: 300,
			LongBreakSeconds:  900,
			PeriodsPerCycle:   4,
			FocusLevel:        models.FocusLevelPomodoro,
		},
	}
}

func (b *SettingsBuilder) WithFocus(seconds int) *SettingsBuilder {
	b.settings.FocusSeconds = seconds
	b.settings.FocusLevel = models.FocusLevelCustom
	return b
}

func (b *SettingsBuilder) WithShortBreak(seconds int) *SettingsBuilder {
	b.settings.ShortBreakSeconds = seconds
	b.settings.FocusLevel = models.FocusLevelCustom
	return b
}

func (b *SettingsBuilder) WithLongBreak(seconds int) *SettingsBuilder {
	b.settings.LongBreakSeconds = seconds
	b.settings.FocusLevel = models.FocusLevelCustom
	return b
}

func (b *SettingsBuilder) WithPeriods(n int) *SettingsBuilder {
	b.settings.PeriodsPerCycle = n
	b.settings.FocusLevel = models.FocusLevelCustom
	return b
}

func (b *SettingsBuilder) AutoStartBreaks() *SettingsBuilder {
	b.settings.AutoStartBreaks = true
	return b
}

func (b *SettingsBuilder) AutoStartFocus() *SettingsBuilder {
	b.settings.AutoStartFocus = true
	return b
}

func (b *SettingsBuilder) WithAlarm(soundRef string) *SettingsBuilder {
	b.settings.AlarmSound = soundRef
	return b
}

func (b *SettingsBuilder) WithTheme(theme string) *SettingsBuilder {
	b.settings.Theme = theme
	return b
}

func (b *SettingsBuilder) Build() models.TimerSettings {
	return b.settings
}
