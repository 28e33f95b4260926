package config

import "time"

// Default timer durations (pomodoro preset).
const (
	DefaultFocusDuration      = 25 * time.Minute
	DefaultShortBreakDuration = 5 * time.Minute
	DefaultLongBreakDuration  = 15 * time.Minute
	DefaultPeriodsPerCycle    = 4
)

// Engine tick cadence.
const TickInterval = time.Second

// Themes.
const (
	ThemeCyan    = "cyan"
	ThemeMagenta = "magenta"
	ThemeGreen   = "green"
)

// Application settings.
const (
	AppName          = "studyfocus"
	DBFileName       = "studyfocus.db"
	LogFileName      = "studyfocus.log"
	SettingsFileName = "settings.yaml"
	DBPathEnv        = "STUDYFOCUS_DB"
)

// Settings table keys.
const (
	SettingSelectedSubject = "selected_subject"
)
