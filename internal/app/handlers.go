package app

import (
	"fmt"

	"github.com/llehouerou/toaster/internal/app/handler"
	"github.com/llehouerou/toaster/internal/keymap"
	"github.com/llehouerou/toaster/internal/toast"
)

var positionActions = map[keymap.Action]toast.Position{
	keymap.ActionAddTopLeft:      toast.TopLeft,
	keymap.ActionAddTopCenter:    toast.TopCenter,
	keymap.ActionAddTopRight:     toast.TopRight,
	keymap.ActionAddMiddleLeft:   toast.MiddleLeft,
	keymap.ActionAddMiddleRight:  toast.MiddleRight,
	keymap.ActionAddBottomLeft:   toast.BottomLeft,
	keymap.ActionAddBottomCenter: toast.BottomCenter,
	keymap.ActionAddBottomRight:  toast.BottomRight,
}

// samples are cycled through for demo toasts.
var samples = []struct{ title, description string }{
	{"Scheduled: Catch up", "Friday, February 10, 2023 at 5:57 PM"},
	{"Upload complete", "report.pdf was saved to your documents"},
	{"New message", "Alex: are we still on for lunch?"},
	{"Settings saved", ""},
	{"Build passed", "All 214 tests passed in 3.2s"},
}

// handleHelp toggles the full help view.
func (m *Model) handleHelp(a keymap.Action) handler.Result {
	if a != keymap.ActionHelp {
		return handler.NotHandled
	}
	m.Help.ShowAll = !m.Help.ShowAll
	return handler.HandledNoCmd
}

// handleDemo adds and updates demo toasts.
func (m *Model) handleDemo(a keymap.Action) handler.Result {
	if pos, ok := positionActions[a]; ok {
		m.Position = pos
		m.add(toast.Toast{})
		return handler.Handled(m.Toaster.Sync())
	}

	switch a {
	case keymap.ActionAddDestructive:
		m.add(toast.Toast{
			Title:       "Uh oh! Something went wrong.",
			Description: "There was a problem with your request.",
			Variant:     toast.VariantDestructive,
			Button:      &toast.Button{Label: "Try again", Key: "r"},
		})
	case keymap.ActionAddClear:
		m.add(toast.Toast{Variant: toast.VariantClear})
	case keymap.ActionAddWithButton:
		m.add(toast.Toast{Button: &toast.Button{Label: "Undo", Key: "z"}})
	case keymap.ActionUpdateNewest:
		s := m.Queue.State()
		if s.Len() == 0 {
			return handler.HandledNoCmd
		}
		newest := s.Toasts[0]
		m.Queue.Update(toast.Patch{ID: newest.ID}.
			WithTitle(fmt.Sprintf("Updated #%s", newest.ID)).
			WithDescription("This toast was updated in place"))
	default:
		return handler.NotHandled
	}
	return handler.Handled(m.Toaster.Sync())
}

// add fills in sample text and the selected position, then adds t.
func (m *Model) add(t toast.Toast) {
	if t.Title == "" && t.Description == "" {
		s := samples[m.added%len(samples)]
		t.Title, t.Description = s.title, s.description
	}
	m.added++
	t.Position = m.Position
	m.Queue.Add(t)
}
