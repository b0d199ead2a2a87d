package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toaster/internal/app/handler"
	"github.com/llehouerou/toaster/internal/keymap"
	"github.com/llehouerou/toaster/internal/ui/toaster"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case toaster.ButtonMsg:
		return m.handleButton(msg)
	case ErrorMsg:
		m.Queue.Add(ErrorToast(msg.Op, msg.Err))
		return m, m.Toaster.Sync()
	case StderrMsg:
		m.Queue.Add(StderrToast(msg.Line))
		return m, tea.Batch(m.Toaster.Sync(), WatchStderr())
	}

	// Timers and animation frames belong to the toaster.
	var cmd tea.Cmd
	m.Toaster, cmd = m.Toaster.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.SetSize(msg.Width, msg.Height)
	m.Help.Width = msg.Width
	var cmd tea.Cmd
	m.Toaster, cmd = m.Toaster.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(msg.String())

	var quit bool
	handled, cmd := handler.Chain(action,
		func(a keymap.Action) handler.Result {
			if a != keymap.ActionQuit {
				return handler.NotHandled
			}
			quit = true
			return handler.Handled(tea.Quit)
		},
		m.handleHelp,
		m.Toaster.HandleAction,
		m.handleDemo,
	)
	if quit {
		m.Close()
	}
	if handled {
		return m, cmd
	}

	// Unbound keys may belong to a toast button.
	return m, m.Toaster.HandleKey(msg).Cmd
}

func (m Model) handleButton(msg toaster.ButtonMsg) (tea.Model, tea.Cmd) {
	m.LastInfo = msg.Button.Label + " pressed on toast " + msg.ToastID
	return m, nil
}
