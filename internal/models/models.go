package models

import (
	"errors"
	"fmt"
	"time"
)

// Phase enumerates the periods of a focus cycle.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

var ErrUnknownPhase = errors.New("unknown phase")

// ParsePhase maps a stored phase name back to a Phase.
func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseFocus, PhaseShortBreak, PhaseLongBreak:
		return Phase(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}

// Label is the human readable name shown in the timer header.
func (p Phase) Label() string {
	switch p {
	case PhaseFocus:
		return "Focus"
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	}
	return string(p)
}

// FocusLevel names a preset of durations.
type FocusLevel string

const (
	FocusLevelPomodoro   FocusLevel = "pomodoro"
	FocusLevelDeepWork   FocusLevel = "deepWork"
	FocusLevelEisenhower FocusLevel = "eisenhower"
	FocusLevelCustom     FocusLevel = "custom"
)

// GeneralSubject is the subject used when no task is selected.
const GeneralSubject = "General study"

// TimerSettings is the engine configuration. Durations are whole seconds.
type TimerSettings struct {
	FocusSeconds      int
	ShortBreakSeconds int
	LongBreakSeconds  int
	PeriodsPerCycle   int
	AutoStartBreaks   bool
	AutoStartFocus    bool
	AlarmSound        string // file path or command argument; empty means terminal bell
	FocusLevel        FocusLevel
	Theme             string
}

type focusPreset struct {
	focusMinutes, shortMinutes, longMinutes, periods int
}

var focusPresets = map[FocusLevel]focusPreset{
	FocusLevelPomodoro:   {25, 5, 15, 4},
	FocusLevelDeepWork:   {50, 10, 30, 2},
	FocusLevelEisenhower: {90, 15, 30, 2},
}

// ApplyFocusLevel overwrites the durations with the preset for level.
// FocusLevelCustom and unknown levels only record the level name.
func ApplyFocusLevel(settings TimerSettings, level FocusLevel) TimerSettings {
	if preset, ok := focusPresets[level]; ok {
		settings.FocusSeconds = preset.focusMinutes * 60
		settings.ShortBreakSeconds = preset.shortMinutes * 60
		settings.LongBreakSeconds = preset.longMinutes * 60
		settings.PeriodsPerCycle = preset.periods
		settings.FocusLevel = level
		return settings
	}
	settings.FocusLevel = FocusLevelCustom
	return settings
}

// FocusLevels lists the selectable presets in display order.
func FocusLevels() []FocusLevel {
	return []FocusLevel{FocusLevelPomodoro, FocusLevelDeepWork, FocusLevelEisenhower, FocusLevelCustom}
}

// SessionEvent is emitted once per completed focus period.
type SessionEvent struct {
	Subject         string
	DurationMinutes int
}

// SessionLog is a stored SessionEvent.
type SessionLog struct {
	ID              int64
	Subject         string
	DurationMinutes int
	RecordedAt      time.Time
}

// Homework represents a single task on the study list.
type Homework struct {
	ID        int64
	Subject   string
	Task      string
	Deadline  *time.Time
	Completed bool
	CreatedAt time.Time
}

// SubjectMinutes aggregates focus minutes per subject.
type SubjectMinutes struct {
	Subject string
	Minutes int
}

// StudyStats summarises the session log and task list.
type StudyStats struct {
	TotalMinutes   int
	SessionCount   int
	BySubject      []SubjectMinutes
	TasksCompleted int
	TasksPending   int
}
