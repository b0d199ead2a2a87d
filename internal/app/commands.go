package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/toaster/internal/stderr"
	"github.com/llehouerou/toaster/internal/toast"
)

// StderrMsg carries a line written to stderr while the UI is running.
type StderrMsg struct {
	Line string
}

// WatchStderr waits for the next captured stderr line. It returns nil when
// capture is not running.
func WatchStderr() tea.Cmd {
	ch := stderr.Messages()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// StderrToast builds the toast shown for a captured stderr line.
func StderrToast(line string) toast.Toast {
	return toast.Toast{
		Title:       "stderr",
		Description: line,
		Variant:     toast.VariantDestructive,
	}
}
