package timer

import "github.com/akyairhashvil/studyfocus/internal/models"

// NextBreak picks the break that follows a focus period, given the count of
// focus periods completed including the one just finished.
func NextBreak(completedFocus, periodsPerCycle int) models.Phase {
	if periodsPerCycle > 0 && completedFocus > 0 && completedFocus%periodsPerCycle == 0 {
		return models.PhaseLongBreak
	}
	return models.PhaseShortBreak
}

// ResetAfter returns the focus count to carry forward when leaving phase.
// Leaving a long break closes the cycle.
func ResetAfter(leaving models.Phase, completedFocus int) int {
	if leaving == models.PhaseLongBreak {
		return 0
	}
	return completedFocus
}

// PeriodsInCycle is the "n of N" figure shown next to the countdown.
func PeriodsInCycle(completedFocus, periodsPerCycle int) int {
	if periodsPerCycle <= 0 {
		return 0
	}
	if completedFocus > 0 && completedFocus%periodsPerCycle == 0 {
		return periodsPerCycle
	}
	return completedFocus % periodsPerCycle
}
