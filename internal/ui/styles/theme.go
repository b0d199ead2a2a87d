package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/toaster/internal/toast"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused items, default toast accent
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase  lipgloss.Color // Screen background, also the fade-out target
	BgToast lipgloss.Color // Default toast background

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color // Green
	Error   lipgloss.Color // Red - destructive toasts
	Warning lipgloss.Color // Yellow/orange

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Key     lipgloss.Style // Key hints
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:  lipgloss.Color("#1a1a1a"),
	BgToast: lipgloss.Color("#262626"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Key:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Palette is the set of colors a toast variant is drawn with.
type Palette struct {
	Title       lipgloss.Color
	Description lipgloss.Color
	Border      lipgloss.Color
	Background  lipgloss.Color // empty for transparent
	Bordered    bool
}

// VariantPalette returns the colors for a toast variant.
func (t *Theme) VariantPalette(v toast.Variant) Palette {
	switch v {
	case toast.VariantDestructive:
		return Palette{
			Title:       lipgloss.Color("#ffffff"),
			Description: lipgloss.Color("#ffd6d6"),
			Border:      t.Error,
			Background:  lipgloss.Color("#7f1d1d"),
			Bordered:    true,
		}
	case toast.VariantClear:
		return Palette{
			Title:       t.FgBase,
			Description: t.FgMuted,
		}
	}
	return Palette{
		Title:       t.FgBase,
		Description: t.FgMuted,
		Border:      t.Border,
		Background:  t.BgToast,
		Bordered:    true,
	}
}

// Fade returns p with every color blended toward the screen background.
// amount 0 leaves p unchanged, 1 makes it fully background-colored.
func (t *Theme) Fade(p Palette, amount float64) Palette {
	if amount <= 0 {
		return p
	}
	p.Title = Blend(p.Title, t.BgBase, amount)
	p.Description = Blend(p.Description, t.BgBase, amount)
	if p.Border != "" {
		p.Border = Blend(p.Border, t.BgBase, amount)
	}
	if p.Background != "" {
		p.Background = Blend(p.Background, t.BgBase, amount)
	}
	return p
}
