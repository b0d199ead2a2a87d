// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Toast stack actions
	ActionDismissNewest Action = "dismiss_newest" // x
	ActionDismissAll    Action = "dismiss_all"    // X
	ActionClear         Action = "clear"          // c - remove without exit animation

	// Demo actions
	ActionAddTopLeft      Action = "add_top_left"
	ActionAddTopCenter    Action = "add_top_center"
	ActionAddTopRight     Action = "add_top_right"
	ActionAddMiddleLeft   Action = "add_middle_left"
	ActionAddMiddleRight  Action = "add_middle_right"
	ActionAddBottomLeft   Action = "add_bottom_left"
	ActionAddBottomCenter Action = "add_bottom_center"
	ActionAddBottomRight  Action = "add_bottom_right"
	ActionAddDestructive  Action = "add_destructive" // d
	ActionAddClear        Action = "add_clear"       // n - borderless
	ActionAddWithButton   Action = "add_with_button" // b
	ActionUpdateNewest    Action = "update_newest"   // u
)
