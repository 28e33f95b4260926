package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/studyfocus/internal/models"
	"gopkg.in/yaml.v3"
)

// ValidationError reports a settings value outside its allowed range.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

type yamlSettings struct {
	FocusLevel        string `yaml:"focus_level"`
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	PeriodsPerCycle   int    `yaml:"periods_per_cycle"`
	AutoStartBreaks   bool   `yaml:"auto_start_breaks"`
	AutoStartFocus    bool   `yaml:"auto_start_focus"`
	AlarmSound        string `yaml:"alarm_sound"`
	Theme             string `yaml:"theme"`
}

// DefaultSettings returns the pomodoro preset with auto-start disabled.
func DefaultSettings() models.TimerSettings {
	return models.TimerSettings{
		FocusSeconds:      int(DefaultFocusDuration.Seconds()),
		ShortBreakSeconds: int(DefaultShortBreakDuration.Seconds()),
		LongBreakSeconds:  int(DefaultLongBreakDuration.Seconds()),
		PeriodsPerCycle:   DefaultPeriodsPerCycle,
		FocusLevel:        models.FocusLevelPomodoro,
		Theme:             ThemeCyan,
	}
}

// Validate checks that durations are positive and a cycle has at least one focus period.
func Validate(s models.TimerSettings) error {
	if s.FocusSeconds <= 0 {
		return ValidationError{Field: "focus", Message: "must be positive"}
	}
	if s.ShortBreakSeconds <= 0 {
		return ValidationError{Field: "short_break", Message: "must be positive"}
	}
	if s.LongBreakSeconds <= 0 {
		return ValidationError{Field: "long_break", Message: "must be positive"}
	}
	if s.PeriodsPerCycle < 1 {
		return ValidationError{Field: "periods_per_cycle", Message: "must be at least 1"}
	}
	return nil
}

// DefaultSettingsPath resolves <user config dir>/studyfocus/settings.yaml.
func DefaultSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, SettingsFileName), nil
}

// LoadSettings reads timer settings from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (models.TimerSettings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	settings = applyYamlSettings(settings, fileData)
	if err := Validate(settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes timer settings to YAML.
func SaveSettings(path string, settings models.TimerSettings) error {
	if err := Validate(settings); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusLevel:        string(settings.FocusLevel),
		FocusMinutes:      settings.FocusSeconds / 60,
		ShortBreakMinutes: settings.ShortBreakSeconds / 60,
		LongBreakMinutes:  settings.LongBreakSeconds / 60,
		PeriodsPerCycle:   settings.PeriodsPerCycle,
		AutoStartBreaks:   settings.AutoStartBreaks,
		AutoStartFocus:    settings.AutoStartFocus,
		AlarmSound:        settings.AlarmSound,
		Theme:             settings.Theme,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings models.TimerSettings, fileData yamlSettings) models.TimerSettings {
	level := models.FocusLevel(fileData.FocusLevel)
	switch level {
	case "", models.FocusLevelCustom:
		if fileData.FocusMinutes != 0 {
			settings.FocusSeconds = fileData.FocusMinutes * 60
		}
		if fileData.ShortBreakMinutes != 0 {
			settings.ShortBreakSeconds = fileData.ShortBreakMinutes * 60
		}
		if fileData.LongBreakMinutes != 0 {
			settings.LongBreakSeconds = fileData.LongBreakMinutes * 60
		}
		if fileData.PeriodsPerCycle != 0 {
			settings.PeriodsPerCycle = fileData.PeriodsPerCycle
		}
		settings.FocusLevel = models.FocusLevelCustom
		if level == "" && fileData == (yamlSettings{}) {
			settings.FocusLevel = models.FocusLevelPomodoro
		}
	default:
		// a named preset wins over explicit minutes
		settings = models.ApplyFocusLevel(settings, level)
	}

	settings.AutoStartBreaks = fileData.AutoStartBreaks
	settings.AutoStartFocus = fileData.AutoStartFocus
	settings.AlarmSound = fileData.AlarmSound
	switch fileData.Theme {
	case ThemeCyan, ThemeMagenta, ThemeGreen:
		settings.Theme = fileData.Theme
	}
	return settings
}
