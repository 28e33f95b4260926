package models

import (
	"errors"
	"testing"
)

func TestPhaseConstants(t *testing.T) {
	if PhaseFocus != "focus" {
		t.Fatalf("PhaseFocus = %q", PhaseFocus)
	}
	if PhaseShortBreak != "short_break" {
		t.Fatalf("PhaseShortBreak = %q", PhaseShortBreak)
	}
	if PhaseLongBreak != "long_break" {
		t.Fatalf("PhaseLongBreak = %q", PhaseLongBreak)
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range []Phase{PhaseFocus, PhaseShortBreak, PhaseLongBreak} {
		got, err := ParsePhase(string(p))
		if err != nil {
			t.Fatalf("ParsePhase(%q) failed: %v", p, err)
		}
		if got != p {
			t.Fatalf("ParsePhase(%q) = %q", p, got)
		}
	}
	if _, err := ParsePhase("nap"); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase, got %v", err)
	}
}

func TestApplyFocusLevelPresets(t *testing.T) {
	s := ApplyFocusLevel(TimerSettings{}, FocusLevelDeepWork)
	if s.FocusSeconds != 3000 || s.ShortBreakSeconds != 600 || s.LongBreakSeconds != 1800 || s.PeriodsPerCycle != 2 {
		t.Fatalf("unexpected deepWork preset: %+v", s)
	}
	if s.FocusLevel != FocusLevelDeepWork {
		t.Fatalf("FocusLevel = %q", s.FocusLevel)
	}

	s = ApplyFocusLevel(TimerSettings{FocusSeconds: 60, PeriodsPerCycle: 3}, FocusLevelCustom)
	if s.FocusSeconds != 60 || s.PeriodsPerCycle != 3 {
		t.Fatalf("custom level must keep explicit values, got %+v", s)
	}
	if s.FocusLevel != FocusLevelCustom {
		t.Fatalf("FocusLevel = %q", s.FocusLevel)
	}
}
