package toaster

import "github.com/llehouerou/toaster/internal/toast"

// ButtonMsg is emitted when the key of a toast's button is pressed.
// The toast is dismissed in the same step.
type ButtonMsg struct {
	ToastID string
	Button  toast.Button
}

// frameMsg advances the animation.
type frameMsg struct{}
