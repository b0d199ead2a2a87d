// Package toast implements the notification queue behind the toaster:
// an ordered, newest-first list of toasts changed only through Apply,
// with delayed removal after dismissal and synchronous observer fan-out.
package toast

import "time"

// Button is an optional call-to-action shown on a toast.
// Key is opaque to the queue; renderers hand it back to the caller.
type Button struct {
	Label string
	Key   string
}

// Toast is a single notification.
type Toast struct {
	ID   string
	Open bool

	Position Position
	Variant  Variant

	Title       string
	Description string
	Button      *Button
	Content     any // custom payload, never interpreted

	// Duration is the auto-dismiss delay. Zero takes the queue default,
	// negative disables auto-dismiss.
	Duration time.Duration

	CreatedAt time.Time
}

// Patch is a partial update addressed by ID. Nil fields are left alone.
type Patch struct {
	ID string

	Title       *string
	Description *string
	Button      *Button
	Content     any
	Position    *Position
	Variant     *Variant
	Open        *bool
	Duration    *time.Duration
}

// WithTitle returns a copy of p that sets the title.
func (p Patch) WithTitle(s string) Patch {
	p.Title = &s
	return p
}

// WithDescription returns a copy of p that sets the description.
func (p Patch) WithDescription(s string) Patch {
	p.Description = &s
	return p
}

// WithButton returns a copy of p that sets the button.
func (p Patch) WithButton(b Button) Patch {
	p.Button = &b
	return p
}

// WithVariant returns a copy of p that sets the variant.
func (p Patch) WithVariant(v Variant) Patch {
	p.Variant = &v
	return p
}

// WithPosition returns a copy of p that sets the position.
func (p Patch) WithPosition(pos Position) Patch {
	p.Position = &pos
	return p
}

// WithOpen returns a copy of p that sets the open flag.
func (p Patch) WithOpen(open bool) Patch {
	p.Open = &open
	return p
}

// ApplyTo merges p over t. The ID is never changed.
func (p Patch) ApplyTo(t Toast) Toast {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Button != nil {
		b := *p.Button
		t.Button = &b
	}
	if p.Content != nil {
		t.Content = p.Content
	}
	if p.Position != nil {
		t.Position = *p.Position
	}
	if p.Variant != nil {
		t.Variant = *p.Variant
	}
	if p.Open != nil {
		t.Open = *p.Open
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	return t
}

// State is the queue content, newest first.
type State struct {
	Toasts []Toast
}

// Len returns the number of toasts.
func (s State) Len() int {
	return len(s.Toasts)
}

// Find returns the first toast with the given ID.
func (s State) Find(id string) (Toast, bool) {
	for _, t := range s.Toasts {
		if t.ID == id {
			return t, true
		}
	}
	return Toast{}, false
}

// Clone returns a copy that shares no slice memory with s.
func (s State) Clone() State {
	if s.Toasts == nil {
		return State{}
	}
	toasts := make([]Toast, len(s.Toasts))
	for i, t := range s.Toasts {
		if t.Button != nil {
			b := *t.Button
			t.Button = &b
		}
		toasts[i] = t
	}
	return State{Toasts: toasts}
}
