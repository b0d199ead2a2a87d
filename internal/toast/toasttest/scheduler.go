// Package toasttest provides a manual clock for driving toast queues in tests.
package toasttest

import (
	"sort"
	"time"
)

// Epoch is the wall-clock time the fake clock starts at.
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

// Scheduler is a toast.Scheduler that only fires when Advance is called.
// Callbacks run on the goroutine calling Advance, in due order; timers
// due at the same instant fire in the order they were scheduled.
type Scheduler struct {
	elapsed time.Duration
	seq     int
	timers  []timer
}

// NewScheduler returns a scheduler positioned at Epoch.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule implements toast.Scheduler.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, timer{at: s.elapsed + delay, seq: s.seq, fn: fn})
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers scheduled by a firing callback fire too if they fall within d.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.elapsed + d
	for {
		i := s.nextDue(target)
		if i < 0 {
			break
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		s.elapsed = t.at
		t.fn()
	}
	s.elapsed = target
}

func (s *Scheduler) nextDue(target time.Duration) int {
	if len(s.timers) == 0 {
		return -1
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].at != s.timers[j].at {
			return s.timers[i].at < s.timers[j].at
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if s.timers[0].at > target {
		return -1
	}
	return 0
}

// Len returns the number of timers that have not fired.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Now returns Epoch plus the time advanced so far. Pass it to
// toast.WithClock to keep CreatedAt in step with the fake clock.
func (s *Scheduler) Now() time.Time {
	return Epoch.Add(s.elapsed)
}
