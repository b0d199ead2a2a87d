// Package overlay draws blocks of styled text on top of a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block over base with its top-left corner at column x, row y.
// Every cell the block covers replaces the base, spaces included; parts of
// the block outside [0, width) columns or past the last base row are cut.
// x may be negative (block partly off the left edge) as well as y.
// This function is ANSI-aware and handles styled text correctly.
func Place(base, block string, x, y, width int) string {
	if block == "" || width <= 0 {
		return base
	}

	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		lineWidth := ansi.StringWidth(line)
		start, end := x, x+lineWidth
		if start < 0 {
			line = ansi.Cut(line, -start, lineWidth)
			start = 0
		}
		if end > width {
			line = ansi.Cut(line, 0, ansi.StringWidth(line)-(end-width))
			end = width
		}
		if start >= end {
			continue
		}

		baseLines[row] = splice(baseLines[row], line, start, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// splice replaces columns [start, end) of baseLine with content.
func splice(baseLine, content string, start, end, width int) string {
	baseWidth := ansi.StringWidth(baseLine)
	if baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	// When cutting through a wide character (like emoji), ansi.Cut may return
	// a shorter string. Pad so the overlay stays aligned.
	prefix := ansi.Cut(baseLine, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}

	result := prefix + content
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
		result += suffix
	}
	return result
}
