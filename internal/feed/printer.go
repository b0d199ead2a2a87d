package feed

import (
	"fmt"
	"io"
	"slices"

	"github.com/llehouerou/toaster/internal/toast"
)

// Printer is a queue observer writing one line per toast transition:
//
//	+ 3 [destructive bottom-right] Disk full
//	~ 3 Disk almost full
//	- 3
//	x 3
//
// for added (or reopened), updated, dismissed and removed toasts.
type Printer struct {
	w    io.Writer
	seen map[string]toast.Toast
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, seen: make(map[string]toast.Toast)}
}

// Observe implements toast.Observer.
func (p *Printer) Observe(s toast.State) {
	live := make(map[string]bool, len(s.Toasts))

	// Oldest first so a burst of adds prints in arrival order.
	for i := len(s.Toasts) - 1; i >= 0; i-- {
		t := s.Toasts[i]
		live[t.ID] = true
		prev, ok := p.seen[t.ID]
		p.seen[t.ID] = t

		switch {
		case !ok, !prev.Open && t.Open:
			fmt.Fprintf(p.w, "+ %s [%s %s] %s\n", t.ID, t.Variant, t.Position, label(t))
		case prev.Open && !t.Open:
			fmt.Fprintf(p.w, "- %s\n", t.ID)
		case prev.Title != t.Title || prev.Description != t.Description:
			fmt.Fprintf(p.w, "~ %s %s\n", t.ID, label(t))
		}
	}

	var gone []string
	for id := range p.seen {
		if !live[id] {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		delete(p.seen, id)
		fmt.Fprintf(p.w, "x %s\n", id)
	}
}

// descriptionSep joins title and description the way lines are written.
const descriptionSep = " | "

func label(t toast.Toast) string {
	if t.Description == "" {
		return t.Title
	}
	if t.Title == "" {
		return t.Description
	}
	return t.Title + descriptionSep + t.Description
}
