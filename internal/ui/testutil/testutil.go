// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return LineIndex(output, substr) >= 0
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(output, "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// CountLines returns the number of non-empty lines in the output.
func CountLines(output string) int {
	count := 0
	for line := range strings.SplitSeq(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// AssertContains returns an error message if output doesn't contain substr,
// or empty string if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns an error message if output contains substr,
// or empty string if it doesn't.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
