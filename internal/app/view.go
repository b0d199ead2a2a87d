package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/toaster/internal/keymap"
	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/ui/headerbar"
	"github.com/llehouerou/toaster/internal/ui/render"
	"github.com/llehouerou/toaster/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	return m.Toaster.Render(m.renderBase())
}

// renderBase draws the screen the toasts are composed over: position
// selector, queue summary and key help.
func (m Model) renderBase() string {
	w, h := m.Size()

	helpView := m.Help.View(helpKeys{})
	helpHeight := strings.Count(helpView, "\n") + 1

	bodyHeight := max(h-headerbar.Height-helpHeight, 0)
	body := m.renderSummary(w, bodyHeight)

	return enforceHeight(
		headerbar.Render(m.Position, w)+"\n"+body+"\n"+helpView,
		h,
	)
}

func (m Model) renderSummary(width, height int) string {
	if height < 3 || width < 4 {
		return enforceHeight("", height)
	}
	innerWidth := width - 2
	th := styles.T()
	t := th.S()

	toasts := m.Toaster.Toasts()
	open, closing := 0, 0
	for _, tt := range toasts {
		if tt.Open {
			open++
		} else {
			closing++
		}
	}

	lines := []string{
		summaryTitle(innerWidth),
		render.Row(t.Muted.Render("open"), fmt.Sprint(open), innerWidth),
		render.Row(t.Muted.Render("closing"), fmt.Sprint(closing), innerWidth),
		render.Row(t.Muted.Render("pending removals"), fmt.Sprint(m.Queue.Pending()), innerWidth),
		render.Row(t.Muted.Render("next position"), string(m.Position), innerWidth),
		render.Row(t.Muted.Render("at next position"), fmt.Sprint(len(toast.Filter(toasts, m.Position))), innerWidth),
		t.Subtle.Render(render.Truncate(m.dismissHint(), innerWidth)),
	}
	if m.LastInfo != "" {
		lines = append(lines, t.Success.Render(render.TruncateAndPad(m.LastInfo, innerWidth)))
	}

	inner := height - 2
	if len(lines) > inner {
		lines = lines[:inner]
	}
	content := enforceHeight(strings.Join(lines, "\n"), inner)
	return styles.PanelStyle(true).Width(innerWidth).Render(content)
}

// summaryTitle is the panel heading.
func summaryTitle(width int) string {
	th := styles.T()
	return styles.ApplyBoldGradient(render.Truncate("Toasts", width), th.Primary, th.Secondary)
}

// dismissHint names the keys currently bound to dismissing.
func (m Model) dismissHint() string {
	return fmt.Sprintf("%s dismiss newest, %s dismiss all",
		strings.Join(m.Keys.KeysFor(keymap.ActionDismissNewest), "/"),
		strings.Join(m.Keys.KeysFor(keymap.ActionDismissAll), "/"),
	)
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	if targetHeight <= 0 {
		return ""
	}
	lines := strings.Split(view, "\n")
	if len(lines) > targetHeight {
		lines = lines[:targetHeight]
	}
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// helpKeys adapts the key bindings to bubbles/help.
type helpKeys struct{}

func (helpKeys) ShortHelp() []key.Binding {
	var short []keymap.Binding
	for _, b := range keymap.Bindings {
		switch b.Action {
		case keymap.ActionAddBottomRight, keymap.ActionAddDestructive,
			keymap.ActionDismissNewest, keymap.ActionHelp, keymap.ActionQuit:
			short = append(short, b)
		}
	}
	return keymap.HelpBindings(short)
}

func (helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		keymap.HelpBindings(keymap.ByContext("demo")),
		keymap.HelpBindings(keymap.ByContext("toasts")),
		keymap.HelpBindings(keymap.ByContext("global")),
	}
}
