package toast

// Action is a state transition understood by Apply.
type Action interface {
	actionName() string
}

// Add inserts a toast at the front of the queue.
type Add struct {
	Toast Toast
}

// Update merges a patch into every toast with the patch's ID.
type Update struct {
	Patch Patch
}

// Dismiss closes one toast, or all of them when ID is empty.
type Dismiss struct {
	ID string
}

// Remove deletes one toast, or clears the queue when ID is empty.
type Remove struct {
	ID string
}

func (Add) actionName() string     { return "add" }
func (Update) actionName() string  { return "update" }
func (Dismiss) actionName() string { return "dismiss" }
func (Remove) actionName() string  { return "remove" }

// Name returns a short label for a, used in logs.
func Name(a Action) string {
	if a == nil {
		return "nil"
	}
	return a.actionName()
}

// Apply returns the state that results from applying a to s.
// limit caps the number of toasts kept on Add; limit <= 0 means no cap.
// s is never modified. Unknown actions return s unchanged.
func Apply(s State, a Action, limit int) State {
	switch a := a.(type) {
	case Add:
		toasts := make([]Toast, 0, len(s.Toasts)+1)
		toasts = append(toasts, a.Toast)
		toasts = append(toasts, s.Toasts...)
		if limit > 0 && len(toasts) > limit {
			toasts = toasts[:limit]
		}
		return State{Toasts: toasts}

	case Update:
		return mapToasts(s, func(t Toast) Toast {
			if t.ID == a.Patch.ID {
				return a.Patch.ApplyTo(t)
			}
			return t
		})

	case Dismiss:
		return mapToasts(s, func(t Toast) Toast {
			if a.ID == "" || t.ID == a.ID {
				t.Open = false
			}
			return t
		})

	case Remove:
		if a.ID == "" {
			return State{}
		}
		toasts := make([]Toast, 0, len(s.Toasts))
		for _, t := range s.Toasts {
			if t.ID != a.ID {
				toasts = append(toasts, t)
			}
		}
		return State{Toasts: toasts}
	}
	return s
}

func mapToasts(s State, fn func(Toast) Toast) State {
	if len(s.Toasts) == 0 {
		return s
	}
	toasts := make([]Toast, len(s.Toasts))
	for i, t := range s.Toasts {
		toasts[i] = fn(t)
	}
	return State{Toasts: toasts}
}

// DismissTargets lists the IDs in s that a will close, i.e. the IDs whose
// removal has to be scheduled alongside the transition. Each ID appears once.
func DismissTargets(s State, a Dismiss) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, t := range s.Toasts {
		if a.ID != "" && t.ID != a.ID {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		ids = append(ids, t.ID)
	}
	return ids
}

// Dedupe keeps the first toast for each ID, preserving order.
func Dedupe(ts []Toast) []Toast {
	if len(ts) < 2 {
		return ts
	}
	seen := make(map[string]struct{}, len(ts))
	out := make([]Toast, 0, len(ts))
	for _, t := range ts {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Filter returns the toasts anchored at p, in queue order.
func Filter(ts []Toast, p Position) []Toast {
	var out []Toast
	for _, t := range ts {
		if t.Position == p {
			out = append(out, t)
		}
	}
	return out
}

// GroupByPosition splits ts by anchor. Toasts with an unknown position
// are grouped under DefaultPosition.
func GroupByPosition(ts []Toast) map[Position][]Toast {
	groups := make(map[Position][]Toast)
	for _, t := range ts {
		p := t.Position
		if !p.Valid() {
			p = DefaultPosition
		}
		groups[p] = append(groups[p], t)
	}
	return groups
}
