// Package app is the toaster demo: a full-screen bubbletea program that adds
// toasts at every position and variant from the keyboard.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toaster/internal/errmsg"
	"github.com/llehouerou/toaster/internal/keymap"
	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/ui"
	"github.com/llehouerou/toaster/internal/ui/toaster"
)

// ErrorMsg reports a failure to show as a destructive toast.
type ErrorMsg struct {
	Op  errmsg.Op
	Err error
}

// ErrorToast builds the toast shown for a failed operation.
func ErrorToast(op errmsg.Op, err error) toast.Toast {
	return toast.Toast{
		Title:       "Error",
		Description: errmsg.Format(op, err),
		Variant:     toast.VariantDestructive,
		Duration:    -1,
	}
}

// Model is the root demo model.
type Model struct {
	ui.Base
	Queue    *toast.Queue
	Toaster  toaster.Model
	Help     help.Model
	Keys     *keymap.Resolver
	Position toast.Position // where the next demo toast goes
	LastInfo string         // last button press, shown on the base screen
	added    int
}

// New creates the demo model around q. sched must be the scheduler q was
// built with.
func New(q *toast.Queue, sched *toaster.Scheduler, opts toaster.Options) Model {
	return Model{
		Queue:    q,
		Toaster:  toaster.New(q, sched, opts),
		Help:     help.New(),
		Keys:     keymap.NewResolver(keymap.Bindings),
		Position: toast.DefaultPosition,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Toaster.Init(), WatchStderr())
}

// Close stops the toaster following the queue.
func (m Model) Close() {
	m.Toaster.Close()
}
