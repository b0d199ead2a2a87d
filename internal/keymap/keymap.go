package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "toasts", "demo"
}

// Bindings contains all key bindings for help generation and resolution.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Toast stack
	{ActionDismissNewest, []string{"x"}, "Dismiss newest", "toasts"},
	{ActionDismissAll, []string{"X"}, "Dismiss all", "toasts"},
	{ActionClear, []string{"c"}, "Clear all", "toasts"},

	// Demo
	{ActionAddTopLeft, []string{"1"}, "Toast top-left", "demo"},
	{ActionAddTopCenter, []string{"2"}, "Toast top-center", "demo"},
	{ActionAddTopRight, []string{"3"}, "Toast top-right", "demo"},
	{ActionAddMiddleLeft, []string{"4"}, "Toast middle-left", "demo"},
	{ActionAddMiddleRight, []string{"5"}, "Toast middle-right", "demo"},
	{ActionAddBottomLeft, []string{"6"}, "Toast bottom-left", "demo"},
	{ActionAddBottomCenter, []string{"7"}, "Toast bottom-center", "demo"},
	{ActionAddBottomRight, []string{"8"}, "Toast bottom-right", "demo"},
	{ActionAddDestructive, []string{"d"}, "Destructive toast", "demo"},
	{ActionAddClear, []string{"n"}, "Borderless toast", "demo"},
	{ActionAddWithButton, []string{"b"}, "Toast with action", "demo"},
	{ActionUpdateNewest, []string{"u"}, "Update newest", "demo"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help converts a binding for display with bubbles/help.
func (b Binding) Help() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], b.Description),
	)
}

// HelpBindings converts a set of bindings for display with bubbles/help.
func HelpBindings(bindings []Binding) []key.Binding {
	result := make([]key.Binding, len(bindings))
	for i, b := range bindings {
		result[i] = b.Help()
	}
	return result
}
