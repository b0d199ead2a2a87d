package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Blend mixes from toward to by t (0..1) in HCL space and returns a hex color.
// Non-hex colors (ANSI indexes) are treated as neutral gray.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := Blend(from, to, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(cluster))
	}

	return b.String()
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
