package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewDock renders the dock bar with running indicators and the
// launcher toggle.
func (m *Model) viewDock() string {
	var icons, dots strings.Builder
	for _, slot := range m.dockSlots() {
		switch slot.kind {
		case slotSeparator:
			icons.WriteString(m.styles.DockSep.Render(" │ "))
			dots.WriteString(m.styles.DockSep.Render(" │ "))
		case slotToggle:
			toggle := "⊞"
			if m.store.LauncherOpen() {
				toggle = "⊟"
			}
			icons.WriteString(center(m.styles.DockToggle.Render(toggle), slot.w))
			dots.WriteString(strings.Repeat(" ", slot.w))
		case slotApp:
			icons.WriteString(center(m.styles.GlyphStyle(slot.item.App).Render(slot.item.App.Glyph()), slot.w))
			if slot.item.Running {
				dots.WriteString(center(m.styles.DockRunning.Render("•"), slot.w))
			} else {
				dots.WriteString(strings.Repeat(" ", slot.w))
			}
		}
	}
	return m.styles.Dock.Width(max(m.width-2, 0)).Render(icons.String() + "\n" + dots.String())
}

// center pads s to width cells with s in the middle.
func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
