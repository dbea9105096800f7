package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// viewCarousel renders the minimized cards. The card being dragged rises
// with the pointer; dismissed cards stay faint until their fade ends.
func (m *Model) viewCarousel() string {
	cards := m.visibleCards()
	if len(cards) == 0 {
		return ""
	}

	all := m.carouselCards()
	selectedID := ""
	if m.Mode() == ModeCarousel {
		selectedID = all[m.selectedCardIndex(all)].inst.ID
	}

	rendered := make([]string, 0, len(cards)*2)
	for k, c := range cards {
		if k > 0 {
			rendered = append(rendered, strings.Repeat(" ", cardGap))
		}
		rendered = append(rendered, m.renderCard(c, c.inst.ID == selectedID))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.NewStyle().MarginLeft(1).Render(row)
}

// renderCard renders one card at its lift.
func (m *Model) renderCard(c card, selected bool) string {
	inner := cardWidth - 2
	titleWidth := inner - 4

	title := truncate.StringWithTail(c.inst.App.Title, uint(titleWidth), "…")
	title += strings.Repeat(" ", max(titleWidth-lipgloss.Width(title), 0))

	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}

	var content string
	if c.fading {
		style = m.styles.CardFading
		content = c.inst.App.Glyph() + " " + title + "  "
	} else {
		content = m.styles.GlyphStyle(c.inst.App).Render(c.inst.App.Glyph()) +
			" " + title + " " + m.styles.CardClose.Render("×")
	}

	lift := cardLift
	if m.drag.Active() && m.drag.Key() == c.inst.ID {
		lift += int(m.drag.Offset())
	}
	return style.Width(inner).MarginTop(max(lift, 0)).Render(content)
}
