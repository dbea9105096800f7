package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/loomos/loomshell/internal/domain"
)

// viewLauncher renders the launcher overlay box.
func (m *Model) viewLauncher(f frame) string {
	width := f.launcherInnerWidth()
	rows := m.launcherRows()

	lines := make([]string, 0, rows+4)
	lines = append(lines, m.search.View())

	var tabs strings.Builder
	for _, t := range m.visibleTabs(f) {
		if t.category == m.category {
			tabs.WriteString(m.styles.TabActive.Render(t.label))
		} else {
			tabs.WriteString(m.styles.Tab.Render(t.label))
		}
	}
	lines = append(lines, tabs.String())
	lines = append(lines, m.styles.Divider.Render(strings.Repeat("─", width)))

	for k := 0; k < rows; k++ {
		idx := m.resultOffset + k
		switch {
		case idx < len(m.results):
			lines = append(lines, m.renderResult(m.results[idx], idx == m.resultCursor, width))
		case k == 0:
			lines = append(lines, m.styles.Muted.Render("No apps found"))
		default:
			lines = append(lines, "")
		}
	}

	footer := fmt.Sprintf("sort: %s · %d %s · ", m.sortMode, len(m.results), plural(len(m.results), "app", "apps"))
	footer += m.help.ShortHelpView(m.keys.launcherHelp())
	lines = append(lines, m.styles.Footer.Render(truncate.StringWithTail(footer, uint(width), "…")))

	for i, line := range lines {
		lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return m.styles.Overlay.Width(f.launcher.w - 2).Render(strings.Join(lines, "\n"))
}

// renderResult renders one launcher entry.
func (m *Model) renderResult(app *domain.AppDefinition, selected bool, width int) string {
	glyph := m.styles.GlyphStyle(app).Render(app.Glyph())
	text := app.Title
	if badges := badgeText(app); badges != "" {
		text += " " + badges
	}
	suffix := app.Category.Label()
	if m.store.IsAppRunning(app.ID) {
		suffix = "• " + suffix
	}
	avail := width - 2 - lipgloss.Width(suffix) - 1
	text = truncate.StringWithTail(text, uint(max(avail, 1)), "…")
	pad := max(width-2-lipgloss.Width(text)-lipgloss.Width(suffix), 1)
	line := text + strings.Repeat(" ", pad) + suffix

	if selected {
		return glyph + " " + m.styles.ResultSelected.Render(line)
	}
	return glyph + " " + m.styles.Result.Render(text) + strings.Repeat(" ", pad) + m.styles.Muted.Render(suffix)
}
