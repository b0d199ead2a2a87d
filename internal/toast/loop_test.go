package toast

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func startLoop(t *testing.T) (*Loop, <-chan error) {
	t.Helper()
	l := NewLoop()
	errc := make(chan error, 1)
	go func() { errc <- l.Run(context.Background()) }()
	t.Cleanup(l.Stop)
	return l, errc
}

func TestLoop_DoRunsInOrder(t *testing.T) {
	l, _ := startLoop(t)

	var got []int
	for i := range 5 {
		if err := l.Do(func() { got = append(got, i) }); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}

	if len(got) != 5 {
		t.Fatalf("ran %d tasks, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestLoop_PostFromInsideLoop(t *testing.T) {
	l, _ := startLoop(t)

	done := make(chan struct{})
	l.Post(func() {
		l.Post(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("nested post never ran")
	}
}

func TestLoop_ScheduleDeliversOnLoop(t *testing.T) {
	l, _ := startLoop(t)
	q := New(l, WithRemoveDelay(5*time.Millisecond))

	removed := make(chan struct{})
	if err := l.Do(func() {
		q.Subscribe(func(s State) {
			if s.Len() == 0 {
				close(removed)
			}
		})
		q.Add(Toast{ID: "a"})
		q.Dismiss("a")
	}); err != nil {
		t.Fatalf("Do: %v", err)
	}

	select {
	case <-removed:
	case <-time.After(time.Second):
		t.Fatal("dismissed toast was never removed")
	}
}

func TestLoop_StopEndsRun(t *testing.T) {
	l, errc := startLoop(t)
	l.Stop()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run after Stop = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}

	if err := l.Do(func() {}); !errors.Is(err, ErrLoopStopped) {
		t.Errorf("Do after stop = %v, want ErrLoopStopped", err)
	}
	if l.Post(func() {}) {
		t.Error("Post after stop should report false")
	}
}

func TestLoop_ContextCancel(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return on cancel")
	}

	select {
	case <-l.Done():
	default:
		t.Error("loop should be stopped after cancel")
	}
}

func TestLoop_TimerAfterStopIsDropped(t *testing.T) {
	l, _ := startLoop(t)

	var fired atomic.Bool
	l.Schedule(10*time.Millisecond, func() { fired.Store(true) })
	l.Stop()

	time.Sleep(30 * time.Millisecond)
	if fired.Load() {
		t.Error("timer callback ran after the loop stopped")
	}
}
