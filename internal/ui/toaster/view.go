package toaster

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/ui"
	"github.com/llehouerou/toaster/internal/ui/overlay"
	"github.com/llehouerou/toaster/internal/ui/render"
	"github.com/llehouerou/toaster/internal/ui/styles"
)

// placed is a rendered toast and its top-left cell on screen.
type placed struct {
	box  string
	x, y int
}

// View renders the toasts over an empty screen.
func (m Model) View() string {
	return m.Render("")
}

// Render draws the toasts over base. base is padded to the model size.
func (m Model) Render(base string) string {
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return base
	}
	base = fitHeight(base, h)

	width := m.ToastWidth(m.opts.Width)
	if width < ui.MinToastWidth {
		return base
	}

	now := m.opts.Now()
	var shown []toast.Toast
	for _, t := range m.b.state.Toasts {
		if m.visible(t, now) {
			shown = append(shown, t)
		}
	}
	groups := toast.GroupByPosition(shown)

	for _, pos := range toast.Positions() {
		for _, p := range m.layout(pos, groups[pos], width, now) {
			base = overlay.Place(base, p.box, p.x, p.y, w)
		}
	}
	return base
}

// layout stacks the toasts of one position, newest nearest the anchor edge.
// Toasts that no longer fit on screen are left out, oldest first.
func (m Model) layout(pos toast.Position, ts []toast.Toast, width int, now time.Time) []placed {
	if len(ts) == 0 {
		return nil
	}
	w, h := m.Size()
	room := h - 2*ui.EdgeMarginY

	var boxes []string
	used := 0
	for _, t := range ts {
		box := m.renderToast(t, width, now)
		bh := lipgloss.Height(box)
		if len(boxes) > 0 {
			bh += ui.StackGap
		}
		if used+bh > room {
			break
		}
		used += bh
		boxes = append(boxes, box)
	}

	var y int
	switch {
	case pos.IsTop():
		y = ui.EdgeMarginY
	case pos.IsBottom():
		y = h - ui.EdgeMarginY
	default:
		y = (h - used) / 2
	}

	var x int
	switch {
	case pos.IsLeft():
		x = ui.EdgeMarginX
	case pos.IsRight():
		x = w - ui.EdgeMarginX - width
	default:
		x = (w - width) / 2
	}

	out := make([]placed, 0, len(boxes))
	for i, box := range boxes {
		bh := lipgloss.Height(box)
		p := placed{box: box, x: x}
		if pos.IsBottom() {
			y -= bh
			p.y = y
			y -= ui.StackGap
		} else {
			p.y = y
			y += bh + ui.StackGap
		}

		off := int((1 - m.enterProgress(ts[i].ID, now)) * float64(slideDistance(pos, width, bh)))
		switch {
		case pos.IsLeft():
			p.x -= off
		case pos.IsRight():
			p.x += off
		case pos.IsTop():
			p.y -= off
		default:
			p.y += off
		}
		out = append(out, p)
	}
	return out
}

// slideDistance is how far a toast travels while entering: far enough to
// start fully off screen.
func slideDistance(pos toast.Position, width, height int) int {
	if pos.IsLeft() || pos.IsRight() {
		return width + ui.EdgeMarginX
	}
	return height + ui.EdgeMarginY
}

func (m Model) renderToast(t toast.Toast, width int, now time.Time) string {
	th := styles.T()
	p := th.Fade(th.VariantPalette(t.Variant), m.exitProgress(t, now))

	inner := width - 2
	if p.Bordered {
		inner -= 2
	}

	text := func(c lipgloss.Color) lipgloss.Style {
		s := lipgloss.NewStyle().Foreground(c)
		if p.Background != "" {
			s = s.Background(p.Background)
		}
		return s
	}

	title, desc := t.Title, t.Description
	if title == "" && desc == "" {
		desc = contentText(t.Content)
	}

	var lines []string
	if title != "" || t.Button != nil {
		var btn string
		titleWidth := inner
		if t.Button != nil {
			btn = buttonLabel(*t.Button)
			titleWidth -= lipgloss.Width(btn) + 1
		}
		row := render.Truncate(title, max(titleWidth, 0))
		if btn != "" {
			row = render.Row(row, btn, inner)
		}
		lines = append(lines, text(p.Title).Bold(true).Render(row))
	}
	if desc != "" {
		for _, l := range render.Clamp(desc, inner, ui.MaxDescriptionLines) {
			lines = append(lines, text(p.Description).Render(l))
		}
	}
	if m.opts.ShowAge && !t.CreatedAt.IsZero() {
		age := humanize.RelTime(t.CreatedAt, now, "ago", "from now")
		c := styles.Blend(th.FgSubtle, th.BgBase, m.exitProgress(t, now))
		lines = append(lines, text(c).Render(age))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	return styles.ToastStyle(p, width).Render(strings.Join(lines, "\n"))
}

func buttonLabel(b toast.Button) string {
	if b.Key == "" {
		return "[" + b.Label + "]"
	}
	return "[" + b.Key + "] " + b.Label
}

// contentText renders a toast's free-form content.
func contentText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
