package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a bubbletea model for testing, providing helpers to simulate
// user interactions and drive command round trips without a program.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a test harness for any tea.Model.
// It initializes the model and captures any init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates a key press by creating a tea.KeyMsg.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, ctrl+c, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Collect runs a command and returns every message it produces, expanding
// batches. Commands that sleep (tea.Tick) block for their duration.
func Collect(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, Collect(c)...)
	}
	return msgs
}

// ExecuteAndSend runs a command and sends every message it produces back to
// the model. Returns the messages that were sent.
func (h *Harness) ExecuteAndSend(cmd tea.Cmd) []tea.Msg {
	msgs := Collect(cmd)
	for _, msg := range msgs {
		h.SendMsg(msg)
	}
	return msgs
}

// ViewContains checks if the model's view contains the given substring.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}
