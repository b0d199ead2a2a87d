// Package toaster renders a toast queue on top of a bubbletea screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toaster/internal/app/handler"
	"github.com/llehouerou/toaster/internal/keymap"
	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/ui"
)

// Options configures the toaster.
type Options struct {
	Width     int  // toast width in columns
	FPS       int  // animation frame rate
	Animation bool // enter slide and exit fade
	ShowAge   bool // "3 seconds ago" line

	// Now is the clock used for animation and age labels. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Width: 40, FPS: 30, Animation: true}
}

// board is the part of the model the queue subscription writes to.
// Models are copied by value through Update, so it is shared by pointer.
type board struct {
	state    toast.State
	shownAt  map[string]time.Time
	closedAt map[string]time.Time
	ticking  bool
}

func (b *board) observe(s toast.State, now time.Time) {
	b.state = s

	live := make(map[string]bool, len(s.Toasts))
	for _, t := range s.Toasts {
		live[t.ID] = true
		if _, ok := b.shownAt[t.ID]; !ok {
			b.shownAt[t.ID] = now
		}
		if t.Open {
			delete(b.closedAt, t.ID)
		} else if _, ok := b.closedAt[t.ID]; !ok {
			b.closedAt[t.ID] = now
		}
	}

	for id := range b.shownAt {
		if !live[id] {
			delete(b.shownAt, id)
			delete(b.closedAt, id)
		}
	}
}

// Model draws the toasts of a queue and handles the toast keys.
type Model struct {
	ui.Base
	queue *toast.Queue
	sched *Scheduler
	keys  *keymap.Resolver
	opts  Options

	b           *board
	unsubscribe func()
}

// New subscribes to q and returns a model drawing its toasts.
//
// sched must be the scheduler q was built with when queue timers should run
// inside bubbletea. It may be nil when q is driven elsewhere.
func New(q *toast.Queue, sched *Scheduler, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}

	b := &board{
		shownAt:  make(map[string]time.Time),
		closedAt: make(map[string]time.Time),
	}
	now := opts.Now
	b.observe(q.State(), now())

	return Model{
		queue:       q,
		sched:       sched,
		keys:        keymap.ForContexts("toasts"),
		opts:        opts,
		b:           b,
		unsubscribe: q.Subscribe(func(s toast.State) { b.observe(s, now()) }),
	}
}

// Init flushes timers scheduled before the program started.
func (m Model) Init() tea.Cmd {
	return m.Sync()
}

// Update handles window size, timer, animation and key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case timerMsg:
		msg.fn()
		return m, m.Sync()
	case frameMsg:
		m.b.ticking = false
		return m, m.nextFrame()
	case tea.KeyMsg:
		return m, m.HandleKey(msg).Cmd
	}
	return m, nil
}

// Sync returns the commands needed after the queue changed: pending queue
// timers and the animation tick. Call it after using the queue outside Update.
func (m Model) Sync() tea.Cmd {
	return tea.Batch(m.sched.Flush(), m.nextFrame())
}

// HandleKey handles the toast keys and toast button keys.
func (m Model) HandleKey(msg tea.KeyMsg) handler.Result {
	if r := m.HandleAction(m.keys.Resolve(msg.String())); r.Handled {
		return r
	}
	return m.pressButton(msg.String())
}

// HandleAction runs a toast stack action. It satisfies handler.Handler.
func (m Model) HandleAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionDismissNewest:
		id := m.newestOpen()
		if id == "" {
			return handler.HandledNoCmd
		}
		m.queue.Dismiss(id)
	case keymap.ActionDismissAll:
		m.queue.Dismiss("")
	case keymap.ActionClear:
		m.queue.Remove("")
	default:
		return handler.NotHandled
	}
	return handler.Handled(m.Sync())
}

func (m Model) pressButton(key string) handler.Result {
	for _, t := range m.b.state.Toasts {
		if !t.Open || t.Button == nil || t.Button.Key != key {
			continue
		}
		m.queue.Dismiss(t.ID)
		pressed := ButtonMsg{ToastID: t.ID, Button: *t.Button}
		return handler.Handled(tea.Batch(
			m.Sync(),
			func() tea.Msg { return pressed },
		))
	}
	return handler.NotHandled
}

func (m Model) newestOpen() string {
	for _, t := range m.b.state.Toasts {
		if t.Open {
			return t.ID
		}
	}
	return ""
}

// Toasts returns the toasts as last seen from the queue.
func (m Model) Toasts() []toast.Toast {
	return m.b.state.Toasts
}

// Close stops following the queue.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}
