package toast

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLoopStopped is returned by Do once the loop has stopped.
var ErrLoopStopped = errors.New("toast loop stopped")

// Loop runs functions one at a time on the goroutine that called Run.
// It gives a Queue a single owner when callers and timers live on
// different goroutines: every queue call goes through Do or Post, and
// Schedule delivers timer callbacks back onto the loop.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Run executes posted functions until ctx is done or Stop is called.
// It returns nil after Stop and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	for {
		for fn := l.next(); fn != nil; fn = l.next() {
			fn()
			select {
			case <-l.done:
				return nil
			default:
			}
		}

		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}
	}
}

func (l *Loop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.tasks) == 0 {
		return nil
	}
	fn := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return fn
}

// Post queues fn to run on the loop. It never blocks and reports false
// if the loop has already stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Do runs fn on the loop and waits for it to finish.
// It must not be called from the loop goroutine itself.
func (l *Loop) Do(fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrLoopStopped
		}
	}
}

// Schedule implements Scheduler. fn runs on the loop after delay;
// it is dropped if the loop has stopped by then.
func (l *Loop) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		l.Post(fn)
	})
}

// Stop ends Run. Functions still queued are discarded.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}

// Done is closed once the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
