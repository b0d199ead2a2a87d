// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for toast placement.
const (
	// EdgeMarginX is the number of columns kept free between a toast stack
	// and the left/right screen edge.
	EdgeMarginX = 2

	// EdgeMarginY is the number of rows kept free between a toast stack
	// and the top/bottom screen edge.
	EdgeMarginY = 1

	// StackGap is the number of blank rows between stacked toasts.
	StackGap = 0

	// MinToastWidth is the narrowest toast that is still readable.
	// Below this the stack is not drawn at all.
	MinToastWidth = 16

	// MaxDescriptionLines caps how many wrapped description lines a toast shows.
	MaxDescriptionLines = 3
)
