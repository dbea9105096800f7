package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the desktop.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	f := m.layout()
	parts := []string{m.viewTitleBar(f)}

	if m.store.LauncherOpen() {
		region := f.content.h + f.carousel.h
		parts = append(parts, block(m.viewLauncher(f), f.launcher.x, m.width, region))
	} else {
		parts = append(parts, block(m.viewContent(f), 0, m.width, f.content.h))
		if f.carousel.h > 0 {
			parts = append(parts, block(m.viewCarousel(), 0, m.width, f.carousel.h))
		}
	}

	parts = append(parts, m.viewDock())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// block pins s to exactly height rows of width cells, indented by left.
func block(s string, left, width, height int) string {
	if height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		MarginLeft(left).
		Width(width - left).
		Height(height).
		MaxHeight(height).
		Render(s)
}

// viewTitleBar renders the top row: the fullscreen app with its window
// controls, or the shell header.
func (m *Model) viewTitleBar(f frame) string {
	inst, ok := m.store.Fullscreen()
	if !ok || f.closeBtn.w == 0 {
		left := m.styles.TitleText.Render(" loomOS ")
		right := m.styles.TitleMuted.Render(m.router.Current() + " ")
		return m.fillRow(left, right, m.styles.TitleBar)
	}

	left := m.styles.GlyphStyle(inst.App).Background(Colors.Surface).Render(" "+inst.App.Glyph()) +
		m.styles.TitleText.Render(" "+inst.App.Title+" ")
	right := m.styles.Control.Render("[_]") +
		m.styles.TitleBar.Render(" ") +
		m.styles.Control.Render("[x]") +
		m.styles.TitleBar.Render(" ")
	return m.fillRow(left, right, m.styles.TitleBar)
}

// fillRow joins left and right across the full width.
func (m *Model) fillRow(left, right string, fill lipgloss.Style) string {
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left + right)
	}
	return left + fill.Render(strings.Repeat(" ", gap)) + right
}

// viewContent renders the host page with an error line at its bottom.
func (m *Model) viewContent(f frame) string {
	var page string
	if inst, ok := m.store.Fullscreen(); ok && !m.router.IsDashboard() {
		page = m.viewAppPage(inst, f.content.w)
	} else {
		page = m.viewDashboard()
	}
	if m.err == nil {
		return page
	}

	lines := strings.Split(page, "\n")
	body := max(f.content.h-1, 0)
	if len(lines) > body {
		lines = lines[:body]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = append(lines, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	return strings.Join(lines, "\n")
}
