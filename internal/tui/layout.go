package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loomos/loomshell/internal/domain"
)

// Fixed geometry, in terminal cells.
const (
	titleHeight    = 1
	dockHeight     = 4 // Border, glyph row, running row, border
	carouselHeight = 5 // Two lift rows above three-row cards
	cardLift       = 2
	cardWidth      = 20
	cardHeight     = 3
	cardGap        = 1
	dockSlotWidth  = 5
	dockSepWidth   = 3
	launcherWidth  = 64
	launcherChrome = 6 // Borders, input, tabs, divider, footer
	maxResultRows  = 10
)

// rect is a screen region.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// frame is the screen split shared by View and mouse hit-testing.
// A zero rect means the region is hidden.
type frame struct {
	title       rect
	minimizeBtn rect
	closeBtn    rect
	content     rect
	carousel    rect
	dock        rect
	launcher    rect
}

func (m *Model) layout() frame {
	var f frame
	w, h := m.width, m.height
	f.title = rect{x: 0, y: 0, w: w, h: titleHeight}
	if _, ok := m.store.Fullscreen(); ok && w >= 8 {
		f.minimizeBtn = rect{x: w - 8, y: 0, w: 3, h: 1}
		f.closeBtn = rect{x: w - 4, y: 0, w: 3, h: 1}
	}

	f.dock = rect{x: 0, y: max(h-dockHeight, titleHeight), w: w, h: dockHeight}
	bottom := f.dock.y
	if len(m.carouselCards()) > 0 {
		f.carousel = rect{x: 0, y: max(bottom-carouselHeight, titleHeight), w: w, h: carouselHeight}
		bottom = f.carousel.y
	}
	f.content = rect{x: 0, y: titleHeight, w: w, h: max(bottom-titleHeight, 0)}

	if m.store.LauncherOpen() {
		lw := min(launcherWidth, w-2)
		f.launcher = rect{
			x: (w - lw) / 2,
			y: titleHeight,
			w: lw,
			h: m.launcherRows() + launcherChrome,
		}
	}
	return f
}

// launcherRows is the number of result rows that fit in the launcher.
func (m *Model) launcherRows() int {
	avail := m.height - titleHeight - dockHeight - launcherChrome
	return max(1, min(maxResultRows, avail))
}

// launcherInnerX is the first text column inside the launcher box.
func (f frame) launcherInnerX() int {
	return f.launcher.x + 2
}

// launcherInnerWidth is the text width inside the launcher box.
func (f frame) launcherInnerWidth() int {
	return max(f.launcher.w-4, 0)
}

// resultRowY returns the screen row of the k-th visible result.
func (f frame) resultRowY(k int) int {
	return f.launcher.y + 4 + k
}

// tabRowY returns the screen row of the category tabs.
func (f frame) tabRowY() int {
	return f.launcher.y + 2
}

// tab is one visible category tab.
type tab struct {
	category domain.Category
	label    string
	x, w     int
}

// visibleTabs returns the tabs that fit in the launcher, scrolled so the
// active one is shown.
func (m *Model) visibleTabs(f frame) []tab {
	cats := m.categories()
	width := f.launcherInnerWidth()
	active := 0
	for i, c := range cats {
		if c == m.category {
			active = i
		}
	}

	strip := func(from, to int) int {
		n := 0
		for i := from; i <= to; i++ {
			n += lipgloss.Width(cats[i].Label()) + 2
		}
		return n
	}
	start := 0
	for start < active && strip(start, active) > width {
		start++
	}

	var tabs []tab
	x := f.launcherInnerX()
	used := 0
	for i := start; i < len(cats); i++ {
		label := " " + cats[i].Label() + " "
		lw := lipgloss.Width(label)
		if used+lw > width {
			break
		}
		tabs = append(tabs, tab{category: cats[i], label: label, x: x, w: lw})
		x += lw
		used += lw
	}
	return tabs
}

// card is one carousel entry.
type card struct {
	inst   domain.WindowInstance
	fading bool
}

// carouselCards returns minimized and fading instances in creation order.
func (m *Model) carouselCards() []card {
	minimized := m.store.Minimized()
	cards := make([]card, 0, len(minimized)+len(m.fading))
	i, j := 0, 0
	for i < len(minimized) || j < len(m.fading) {
		if j >= len(m.fading) || (i < len(minimized) && minimized[i].Seq < m.fading[j].Seq) {
			cards = append(cards, card{inst: minimized[i]})
			i++
			continue
		}
		cards = append(cards, card{inst: m.fading[j], fading: true})
		j++
	}
	return cards
}

// visibleCards returns the carousel cards that fit on screen, scrolled so
// the selected card is shown.
func (m *Model) visibleCards() []card {
	cards := m.carouselCards()
	capacity := max(1, (m.width-1)/(cardWidth+cardGap))
	if len(cards) <= capacity {
		return cards
	}
	sel := m.selectedCardIndex(cards)
	offset := 0
	if sel >= capacity {
		offset = sel - capacity + 1
	}
	return cards[offset : offset+capacity]
}

// selectedCardIndex maps the carousel cursor, which counts only
// interactive cards, to an index in cards.
func (m *Model) selectedCardIndex(cards []card) int {
	n := 0
	for i, c := range cards {
		if c.fading {
			continue
		}
		if n == m.carouselCursor {
			return i
		}
		n++
	}
	return 0
}

// cardRect returns the resting position of the k-th visible card.
func (f frame) cardRect(k int) rect {
	return rect{
		x: 1 + k*(cardWidth+cardGap),
		y: f.carousel.y + cardLift,
		w: cardWidth,
		h: cardHeight,
	}
}

// cardCloseX returns the column of the close control of a card at r.
func cardCloseX(r rect) int {
	return r.x + cardWidth - 2
}

// dockSlotKind identifies what a dock slot holds.
type dockSlotKind int

const (
	slotApp dockSlotKind = iota
	slotSeparator
	slotToggle
)

// dockSlot is one clickable dock position.
type dockSlot struct {
	item domain.DockItem
	kind dockSlotKind
	x, w int
}

// dockSlots lays out the dock: pinned apps, then running apps behind a
// separator, then the launcher toggle.
func (m *Model) dockSlots() []dockSlot {
	items := m.dockItems()
	slots := make([]dockSlot, 0, len(items)+2)
	x := 2
	sepAdded := false
	for _, it := range items {
		if !it.Pinned && !sepAdded {
			slots = append(slots, dockSlot{kind: slotSeparator, x: x, w: dockSepWidth})
			x += dockSepWidth
			sepAdded = true
		}
		slots = append(slots, dockSlot{kind: slotApp, item: it, x: x, w: dockSlotWidth})
		x += dockSlotWidth
	}
	slots = append(slots, dockSlot{kind: slotToggle, x: x, w: dockSlotWidth})
	return slots
}
