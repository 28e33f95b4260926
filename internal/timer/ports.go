package timer

import "github.com/akyairhashvil/studyfocus/internal/models"

// Scheduler drives Engine.Tick once per second while started.
// Start and Stop must be idempotent.
//
//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=timer
type Scheduler interface {
	Start()
	Stop()
}

// SessionRecorder receives one event per completed focus period.
type SessionRecorder interface {
	Record(event models.SessionEvent) error
}

// AlarmNotifier plays the cue for a phase transition.
type AlarmNotifier interface {
	Play(soundRef string) error
}

// RecorderFunc adapts a function to SessionRecorder.
type RecorderFunc func(event models.SessionEvent) error

func (f RecorderFunc) Record(event models.SessionEvent) error { return f(event) }

type nopScheduler struct{}

func (nopScheduler) Start() {}
func (nopScheduler) Stop()  {}

type nopRecorder struct{}

func (nopRecorder) Record(models.SessionEvent) error { return nil }

type nopAlarm struct{}

func (nopAlarm) Play(string) error { return nil }
