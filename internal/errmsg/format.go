// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad  Op = "load configuration"
	OpLoggerInit  Op = "initialize logging"
	OpQueueConfig Op = "configure toast queue"

	// Desktop mirror
	OpDesktopConnect Op = "connect to desktop notifications"
	OpDesktopNotify  Op = "send desktop notification"
	OpDesktopClose   Op = "close desktop notification"

	// Input feed
	OpFeedRead  Op = "read toast input"
	OpFeedParse Op = "parse toast line"

	// Terminal UI
	OpRunUI Op = "run terminal UI"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
