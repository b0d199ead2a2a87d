package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toaster/internal/toast"
)

// EnterDuration is how long a new toast takes to slide in.
const EnterDuration = 200 * time.Millisecond

// ageRefresh is the redraw interval for age labels when nothing animates.
const ageRefresh = time.Second

// enterProgress returns how far the toast has slid in, eased, in [0, 1].
func (m Model) enterProgress(id string, now time.Time) float64 {
	if !m.opts.Animation {
		return 1
	}
	start, ok := m.b.shownAt[id]
	if !ok {
		return 1
	}
	return easeOutCubic(progress(now.Sub(start), EnterDuration))
}

// exitProgress returns how far a dismissed toast has faded, in [0, 1].
// Open toasts return 0.
func (m Model) exitProgress(t toast.Toast, now time.Time) float64 {
	if t.Open {
		return 0
	}
	if !m.opts.Animation {
		return 1
	}
	start, ok := m.b.closedAt[t.ID]
	if !ok {
		return 1
	}
	return progress(now.Sub(start), m.queue.RemoveDelay())
}

// visible reports whether t is drawn: open, or still fading out.
func (m Model) visible(t toast.Toast, now time.Time) bool {
	return t.Open || m.exitProgress(t, now) < 1
}

func (m Model) animating(now time.Time) bool {
	for _, t := range m.b.state.Toasts {
		if !m.visible(t, now) {
			continue
		}
		if !t.Open || m.enterProgress(t.ID, now) < 1 {
			return true
		}
	}
	return false
}

func (m Model) frameDelay(now time.Time) time.Duration {
	if m.animating(now) {
		return time.Second / time.Duration(m.opts.FPS)
	}
	if m.opts.ShowAge {
		for _, t := range m.b.state.Toasts {
			if m.visible(t, now) {
				return ageRefresh
			}
		}
	}
	return 0
}

// nextFrame starts the frame tick unless one is already in flight or
// nothing needs redrawing.
func (m Model) nextFrame() tea.Cmd {
	if m.b.ticking {
		return nil
	}
	d := m.frameDelay(m.opts.Now())
	if d <= 0 {
		return nil
	}
	m.b.ticking = true
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{} })
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(total)
	return min(max(p, 0), 1)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
