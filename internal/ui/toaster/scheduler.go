package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg delivers a scheduled callback back to the bubbletea event loop.
type timerMsg struct {
	fn func()
}

// Scheduler implements toast.Scheduler on top of tea.Tick so that queue
// timers fire inside Update, on the goroutine that owns the queue.
//
// Schedule only records the tick. The commands are handed to bubbletea
// the next time Flush is called (Model.Sync does that).
type Scheduler struct {
	cmds []tea.Cmd
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule records a tick that runs fn after delay.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) {
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	}))
}

// Flush returns the recorded ticks as one command and forgets them.
func (s *Scheduler) Flush() tea.Cmd {
	if s == nil || len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Len returns the number of ticks waiting to be flushed.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cmds)
}
