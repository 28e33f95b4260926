package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered by the tick chain. Gen ties it to the Start call
// that armed it.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickScheduler adapts tea.Tick to timer.Scheduler. Start and Stop only
// flip state; the model asks for the command with cmd after every update.
type tickScheduler struct {
	interval time.Duration
	gen      int
	active   bool
	armed    bool
}

func newTickScheduler(interval time.Duration) *tickScheduler {
	return &tickScheduler{interval: interval}
}

func (s *tickScheduler) Start() {
	if s.active {
		return
	}
	s.active = true
	s.gen++
	s.armed = false
}

func (s *tickScheduler) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.gen++
	s.armed = false
}

// accept reports whether msg belongs to the live chain. A stale tick from a
// previous generation is dropped.
func (s *tickScheduler) accept(msg TickMsg) bool {
	if !s.active || msg.Gen != s.gen {
		return false
	}
	s.armed = false
	return true
}

// cmd arms the next tick when the scheduler is active and no tick is in
// flight. At most one chain is live.
func (s *tickScheduler) cmd() tea.Cmd {
	if !s.active || s.armed {
		return nil
	}
	s.armed = true
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
