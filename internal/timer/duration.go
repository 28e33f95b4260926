package timer

import "github.com/akyairhashvil/studyfocus/internal/models"

// DurationOf returns the configured length of phase in whole seconds.
func DurationOf(phase models.Phase, settings models.TimerSettings) int {
	switch phase {
	case models.PhaseShortBreak:
		return settings.ShortBreakSeconds
	case models.PhaseLongBreak:
		return settings.LongBreakSeconds
	default:
		return settings.FocusSeconds
	}
}

// sessionMinutes is the duration logged for a completed focus period.
// It is always the configured length, never the elapsed time.
func sessionMinutes(settings models.TimerSettings) int {
	minutes := settings.FocusSeconds / 60
	if minutes < 1 {
		return 1
	}
	return minutes
}
