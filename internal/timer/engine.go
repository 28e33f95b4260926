// Package timer implements the focus/break interval engine: a synchronous
// state machine advanced by an external one-second scheduler.
package timer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/models"
)

// State is a snapshot of the engine.
type State struct {
	Phase          models.Phase
	Remaining      int
	Running        bool
	CompletedFocus int
	Subject        string
}

// TransitionKind tags why a phase advance happened.
type TransitionKind int

const (
	TransitionExpired TransitionKind = iota + 1
	TransitionSkipped
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionExpired:
		return "expired"
	case TransitionSkipped:
		return "skipped"
	}
	return fmt.Sprintf("TransitionKind(%d)", int(k))
}

// Transition describes the most recent phase advance.
type Transition struct {
	Kind           TransitionKind
	From           models.Phase
	To             models.Phase
	CompletedFocus int
}

// Options wires the engine's collaborators. Nil fields get no-op defaults.
type Options struct {
	Scheduler Scheduler
	Recorder  SessionRecorder
	Alarm     AlarmNotifier
	Logger    *slog.Logger
}

// Engine owns the phase, countdown and run flag of one timer session.
// It is not safe for concurrent use; all commands must come from the
// goroutine that owns it.
type Engine struct {
	settings  models.TimerSettings
	state     State
	last      Transition
	hasLast   bool
	closed    bool
	scheduler Scheduler
	recorder  SessionRecorder
	alarm     AlarmNotifier
	logger    *slog.Logger
}

// New creates an engine paused at the start of a focus period.
func New(settings models.TimerSettings, opts Options) (*Engine, error) {
	if err := config.Validate(settings); err != nil {
		return nil, fmt.Errorf("new timer: %w", err)
	}
	e := &Engine{
		settings:  settings,
		scheduler: opts.Scheduler,
		recorder:  opts.Recorder,
		alarm:     opts.Alarm,
		logger:    opts.Logger,
	}
	if e.scheduler == nil {
		e.scheduler = nopScheduler{}
	}
	if e.recorder == nil {
		e.recorder = nopRecorder{}
	}
	if e.alarm == nil {
		e.alarm = nopAlarm{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.state = State{
		Phase:     models.PhaseFocus,
		Remaining: DurationOf(models.PhaseFocus, settings),
		Subject:   models.GeneralSubject,
	}
	return e, nil
}

// Start resumes the countdown. No effect if already running or closed.
func (e *Engine) Start() {
	if e.closed {
		return
	}
	e.setRunning(true)
}

// Pause stops the countdown and the scheduler before returning.
func (e *Engine) Pause() {
	e.setRunning(false)
}

// Reset pauses and restores the full duration of the current phase.
// Phase and cycle count are kept.
func (e *Engine) Reset() {
	e.setRunning(false)
	e.state.Remaining = DurationOf(e.state.Phase, e.settings)
}

// Tick advances time by one second. At zero remaining it advances the phase.
func (e *Engine) Tick() {
	if !e.state.Running {
		e.logger.Debug("tick ignored while paused", "phase", e.state.Phase)
		return
	}
	if e.state.Remaining > 0 {
		e.state.Remaining--
		return
	}
	e.advance(TransitionExpired)
}

// Skip advances the phase immediately. A skipped focus period is still
// recorded with its full configured duration.
func (e *Engine) Skip() {
	e.advance(TransitionSkipped)
}

// SetSubject labels the next completed focus period. Only allowed while a
// focus period is paused.
func (e *Engine) SetSubject(label string) error {
	if e.state.Phase != models.PhaseFocus || e.state.Running {
		return &InvalidStateError{Op: "set subject", Phase: e.state.Phase, Running: e.state.Running}
	}
	e.state.Subject = label
	return nil
}

// Reconfigure replaces the settings. The countdown of the current phase is
// left untouched; new durations apply from the next phase entry.
func (e *Engine) Reconfigure(settings models.TimerSettings) error {
	if err := config.Validate(settings); err != nil {
		return fmt.Errorf("reconfigure timer: %w", err)
	}
	e.settings = settings
	e.logger.Debug("timer reconfigured", "phase", e.state.Phase, "remaining", e.state.Remaining)
	return nil
}

// Close stops the scheduler for good. Later Start calls are ignored.
func (e *Engine) Close() {
	e.setRunning(false)
	e.closed = true
}

// State returns a snapshot of the engine.
func (e *Engine) State() State { return e.state }

// Settings returns the active configuration.
func (e *Engine) Settings() models.TimerSettings { return e.settings }

// LastTransition reports the most recent phase advance, if any.
func (e *Engine) LastTransition() (Transition, bool) { return e.last, e.hasLast }

// ProgressPercent is the elapsed share of the current phase in [0, 100].
func (e *Engine) ProgressPercent() float64 {
	total := DurationOf(e.state.Phase, e.settings)
	if total <= 0 {
		return 0
	}
	progress := float64(total-e.state.Remaining) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// PeriodsCompletedInCycle is the count shown as "n/N" in the cycle indicator.
func (e *Engine) PeriodsCompletedInCycle() int {
	return PeriodsInCycle(e.state.CompletedFocus, e.settings.PeriodsPerCycle)
}

// advance performs the phase transition. Side effects run in a fixed order:
// session record, counter update, phase and countdown, alarm cue.
func (e *Engine) advance(kind TransitionKind) {
	from := e.state.Phase
	var next models.Phase
	var run bool

	if from == models.PhaseFocus {
		event := models.SessionEvent{Subject: e.state.Subject, DurationMinutes: sessionMinutes(e.settings)}
		if err := e.recorder.Record(event); err != nil {
			e.logger.Warn("record session failed", "subject", event.Subject, "err", err)
		}
		e.state.CompletedFocus++
		next = NextBreak(e.state.CompletedFocus, e.settings.PeriodsPerCycle)
		run = e.settings.AutoStartBreaks
	} else {
		e.state.CompletedFocus = ResetAfter(from, e.state.CompletedFocus)
		next = models.PhaseFocus
		run = e.settings.AutoStartFocus
	}

	e.state.Phase = next
	e.state.Remaining = DurationOf(next, e.settings)
	if e.closed {
		run = false
	}
	e.setRunning(run)
	e.last = Transition{Kind: kind, From: from, To: next, CompletedFocus: e.state.CompletedFocus}
	e.hasLast = true
	e.logger.Info("phase advanced",
		"kind", kind.String(),
		"from", from,
		"to", next,
		"completed_focus", e.state.CompletedFocus,
		"running", run,
	)

	e.playAlarm()
}

func (e *Engine) playAlarm() {
	// a panicking player must not abort the transition
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("alarm playback panicked", "panic", r)
		}
	}()
	if err := e.alarm.Play(e.settings.AlarmSound); err != nil {
		e.logger.Warn("alarm playback failed", "sound", e.settings.AlarmSound, "err", err)
	}
}

func (e *Engine) setRunning(running bool) {
	if e.state.Running == running {
		return
	}
	e.state.Running = running
	if running {
		e.scheduler.Start()
		return
	}
	e.scheduler.Stop()
}
