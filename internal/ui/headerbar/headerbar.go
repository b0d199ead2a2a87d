// Package headerbar renders the position selector shown at the top of the demo.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// tab represents a header bar tab.
type tab struct {
	key      string
	name     string
	position toast.Position
}

var tabs = []tab{
	{"1", "TL", toast.TopLeft},
	{"2", "TC", toast.TopCenter},
	{"3", "TR", toast.TopRight},
	{"4", "ML", toast.MiddleLeft},
	{"5", "MR", toast.MiddleRight},
	{"6", "BL", toast.BottomLeft},
	{"7", "BC", toast.BottomCenter},
	{"8", "BR", toast.BottomRight},
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
}

func inactiveKeyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func inactiveNameStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func separatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Border)
}

// Render returns the header bar string for the given width, highlighting
// the tab of the current position.
func Render(current toast.Position, width int) string {
	if width < 20 {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	separator := separatorStyle().Render(" │ ")

	for _, t := range tabs {
		keyStyle, nameStyle := inactiveKeyStyle(), inactiveNameStyle()
		if t.position == current {
			keyStyle, nameStyle = activeStyle(), activeStyle()
		}
		parts = append(parts, keyStyle.Render(t.key)+" "+nameStyle.Render(t.name))
	}

	content := strings.Join(parts, separator)

	// Too narrow for every tab: show only the active one.
	if lipgloss.Width(content) > width {
		content = activeStyle().Render(string(current))
	}

	// Center the content
	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		padLeft := (width - contentWidth) / 2
		content = strings.Repeat(" ", padLeft) + content
	}

	return content
}
