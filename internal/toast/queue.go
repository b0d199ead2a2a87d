package toast

import (
	"slices"
	"time"

	"go.uber.org/zap"
)

// Defaults used by New.
const (
	DefaultLimit       = 10000
	DefaultRemoveDelay = time.Second
)

// Scheduler runs fn once after delay. There is no cancel.
//
// The Queue is not safe for concurrent use, so fn must be delivered on the
// same goroutine that owns the Queue (see Loop and the bubbletea scheduler
// in ui/toaster).
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Observer receives every new state after a dispatch.
type Observer func(State)

// Option configures a Queue.
type Option func(*Queue)

// WithLimit caps the number of toasts kept. limit <= 0 removes the cap.
func WithLimit(limit int) Option {
	return func(q *Queue) { q.limit = limit }
}

// WithRemoveDelay sets how long a dismissed toast stays before removal.
func WithRemoveDelay(d time.Duration) Option {
	return func(q *Queue) {
		if d >= 0 {
			q.removeDelay = d
		}
	}
}

// WithDefaultDuration sets the auto-dismiss delay for toasts that don't
// carry their own. Zero or negative disables auto-dismiss.
func WithDefaultDuration(d time.Duration) Option {
	return func(q *Queue) { q.defaultDuration = d }
}

// WithDefaultPosition sets the position of toasts added without one.
func WithDefaultPosition(p Position) Option {
	return func(q *Queue) {
		if p.Valid() {
			q.position = p
		}
	}
}

// WithDefaultVariant sets the variant of toasts added without one.
func WithDefaultVariant(v Variant) Option {
	return func(q *Queue) {
		if v.Valid() {
			q.variant = v
		}
	}
}

// WithIDGenerator replaces the counter-based ID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(q *Queue) {
		if g != nil {
			q.ids = g
		}
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}

// WithLogger sets the logger. The queue logs at debug level only.
func WithLogger(log *zap.Logger) Option {
	return func(q *Queue) {
		if log != nil {
			q.log = log
		}
	}
}

// Queue owns the toast state. All mutation goes through Dispatch.
type Queue struct {
	state State

	limit           int
	removeDelay     time.Duration
	defaultDuration time.Duration
	position        Position
	variant         Variant

	sched Scheduler
	ids   IDGenerator
	now   func() time.Time
	log   *zap.Logger

	// IDs with a removal timer that hasn't fired yet.
	pending map[string]uint64 // id -> token of its live removal timer
	timers  uint64

	nextSub   uint64
	observers map[uint64]Observer
	order     []uint64

	closed bool
}

// New creates a Queue whose delayed removals run on sched.
func New(sched Scheduler, opts ...Option) *Queue {
	q := &Queue{
		limit:       DefaultLimit,
		removeDelay: DefaultRemoveDelay,
		position:    DefaultPosition,
		variant:     VariantDefault,
		sched:       sched,
		ids:         CounterIDs(),
		now:         time.Now,
		log:         zap.NewNop(),
		pending:     make(map[string]uint64),
		observers:   make(map[uint64]Observer),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Handle addresses a toast returned by Add.
type Handle struct {
	ID string
	q  *Queue
}

// Dismiss closes the toast and schedules its removal.
func (h Handle) Dismiss() {
	h.q.Dismiss(h.ID)
}

// Update merges p into the toast. p.ID is ignored.
func (h Handle) Update(p Patch) {
	p.ID = h.ID
	h.q.Update(p)
}

// Add enqueues t and returns a handle bound to its ID.
// Missing ID, position and variant are filled from the queue defaults.
func (q *Queue) Add(t Toast) Handle {
	if t.ID == "" {
		t.ID = q.ids.NextID()
	}
	if t.Position == "" {
		t.Position = q.position
	}
	if t.Variant == "" {
		t.Variant = q.variant
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = q.now()
	}
	t.Open = true

	q.Dispatch(Add{Toast: t})

	if d := q.autoDismissAfter(t); d > 0 {
		id := t.ID
		q.sched.Schedule(d, func() {
			if q.closed {
				return
			}
			q.Dismiss(id)
		})
	}

	return Handle{ID: t.ID, q: q}
}

func (q *Queue) autoDismissAfter(t Toast) time.Duration {
	switch {
	case t.Duration > 0:
		return t.Duration
	case t.Duration < 0:
		return 0
	}
	return q.defaultDuration
}

// Update merges p into every toast with ID p.ID.
func (q *Queue) Update(p Patch) {
	q.Dispatch(Update{Patch: p})
}

// Dismiss closes the toast with the given ID, or every toast when id is
// empty, and schedules removal of each one closed.
func (q *Queue) Dismiss(id string) {
	q.Dispatch(Dismiss{ID: id})
}

// Remove deletes the toast with the given ID right away, or clears the
// queue when id is empty. Removal timers already running for the deleted
// toasts are disowned: they never remove a toast re-added under the same ID.
func (q *Queue) Remove(id string) {
	q.Dispatch(Remove{ID: id})
}

// Dispatch applies a, replaces the state and notifies every observer in
// registration order. Dismiss also schedules the delayed removals.
func (q *Queue) Dispatch(a Action) {
	if q.closed {
		return
	}

	switch a := a.(type) {
	case Dismiss:
		for _, id := range DismissTargets(q.state, a) {
			q.scheduleRemoval(id)
		}
	case Remove:
		if a.ID == "" {
			clear(q.pending)
		} else {
			delete(q.pending, a.ID)
		}
	}

	q.state = Apply(q.state, a, q.limit)
	q.log.Debug("toast dispatch",
		zap.String("action", Name(a)),
		zap.Int("toasts", q.state.Len()),
		zap.Int("pending", len(q.pending)),
	)

	q.notify()
}

func (q *Queue) scheduleRemoval(id string) {
	if _, ok := q.pending[id]; ok {
		return
	}
	q.timers++
	token := q.timers
	q.pending[id] = token
	q.log.Debug("toast removal scheduled",
		zap.String("id", id),
		zap.Duration("delay", q.removeDelay),
	)

	q.sched.Schedule(q.removeDelay, func() {
		current, ok := q.pending[id]
		switch {
		case ok && current == token:
			delete(q.pending, id)
		case ok:
			// A newer dismissal owns the removal.
			return
		default:
			// Disowned by an explicit Remove. Only a re-added toast is at risk.
			if _, present := q.state.Find(id); present {
				q.log.Debug("stale removal skipped", zap.String("id", id))
				return
			}
		}
		if _, ok := q.state.Find(id); !ok {
			q.log.Debug("toast already removed", zap.String("id", id))
		}
		q.Dispatch(Remove{ID: id})
	})
}

func (q *Queue) notify() {
	// Observers may unsubscribe (or subscribe) from inside a callback.
	for _, sub := range slices.Clone(q.order) {
		fn, ok := q.observers[sub]
		if !ok {
			continue
		}
		fn(q.State())
	}
}

// Subscribe registers fn and returns a function that unregisters it.
// Subscribing the same function twice registers it twice.
func (q *Queue) Subscribe(fn Observer) (unsubscribe func()) {
	q.nextSub++
	sub := q.nextSub
	q.observers[sub] = fn
	q.order = append(q.order, sub)

	return func() {
		if _, ok := q.observers[sub]; !ok {
			return
		}
		delete(q.observers, sub)
		q.order = slices.DeleteFunc(q.order, func(s uint64) bool { return s == sub })
	}
}

// State returns a copy of the current toasts with duplicate IDs collapsed
// to their newest entry.
func (q *Queue) State() State {
	s := q.state.Clone()
	s.Toasts = Dedupe(s.Toasts)
	return s
}

// Pending returns the number of removals scheduled but not yet fired.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Observers returns the number of registered observers.
func (q *Queue) Observers() int {
	return len(q.order)
}

// RemoveDelay returns the configured delay between dismissal and removal.
func (q *Queue) RemoveDelay() time.Duration {
	return q.removeDelay
}

// Close drops every observer and turns later dispatches, including timers
// still in flight, into no-ops.
func (q *Queue) Close() {
	q.closed = true
	q.observers = make(map[uint64]Observer)
	q.order = nil
}
