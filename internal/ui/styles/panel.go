package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded panel style used for the demo screen.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// ToastStyle returns the box style for a toast drawn with p.
func ToastStyle(p Palette, width int) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if p.Bordered {
		s = s.Border(lipgloss.RoundedBorder()).BorderForeground(p.Border)
		width -= 2
	}
	if p.Background != "" {
		s = s.Background(p.Background)
		if p.Bordered {
			s = s.BorderBackground(p.Background)
		}
	}
	return s.Width(max(width, 1))
}
