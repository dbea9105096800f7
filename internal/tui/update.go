package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomos/loomshell/internal/gesture"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(min(launcherWidth, msg.Width-2)-8, 10)
		m.ensureResultVisible()
		// Card positions move with the layout.
		m.drag.Cancel()
		return m, nil

	case MsgDockLoaded:
		m.dockPinned = msg.Pinned
		return m, nil

	case MsgLaunchRecorded:
		if m.sortMode.DependsOnUsage() && m.store.LauncherOpen() {
			m.refreshResults()
		}
		return m, nil

	case MsgFadeDone:
		m.removeFading(msg.InstanceID)
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, clearErrorAfter(errorDisplayTime)

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	if m.store.LauncherOpen() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	mode := m.Mode()
	if !mode.IsInputMode() && key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch mode {
	case ModeLauncher:
		return m.handleLauncherMode(msg)
	case ModeCarousel:
		return m.handleCarouselMode(msg)
	case ModeDesktop:
		return m.handleDesktopMode(msg)
	}
	return m, nil
}

// handleDesktopMode handles keys when no overlay has focus.
func (m *Model) handleDesktopMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleLauncher):
		m.store.OpenLauncher()
		return m, nil

	case key.Matches(msg, m.keys.Minimize):
		if inst, ok := m.store.Fullscreen(); ok {
			m.store.Minimize(inst.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.CloseWindow):
		if inst, ok := m.store.Fullscreen(); ok {
			m.store.Close(inst.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusCarousel):
		if len(m.store.Minimized()) > 0 {
			m.carouselFocus = true
			m.carouselCursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.LaunchPinned):
		n := int(msg.String()[0] - '1')
		if n < len(m.dockPinned) {
			return m, m.launch(m.dockPinned[n])
		}
		return m, nil
	}
	return m, nil
}

// handleLauncherMode handles keys while the launcher is open.
func (m *Model) handleLauncherMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ToggleLauncher):
		m.store.CloseLauncher()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.resultCursor > 0 {
			m.resultCursor--
			m.ensureResultVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.resultCursor < len(m.results)-1 {
			m.resultCursor++
			m.ensureResultVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortMode = m.sortMode.Next()
		m.refreshResults()
		return m, nil

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.LaunchNew):
		app := m.selectedResult()
		if app == nil {
			return m, nil
		}
		var cmd tea.Cmd
		if key.Matches(msg, m.keys.LaunchNew) {
			cmd = m.launchNew(app)
		} else {
			cmd = m.launch(app)
		}
		m.search.Reset()
		m.resultCursor = 0
		m.resultOffset = 0
		return m, cmd
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.resultCursor = 0
		m.resultOffset = 0
		m.refreshResults()
	}
	return m, cmd
}

// handleCarouselMode handles keys while the minimized cards have focus.
func (m *Model) handleCarouselMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	minimized := m.store.Minimized()
	if m.carouselCursor >= len(minimized) {
		m.carouselCursor = len(minimized) - 1
	}
	selected := minimized[m.carouselCursor]

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.FocusCarousel):
		m.carouselFocus = false
		return m, nil

	case key.Matches(msg, m.keys.ToggleLauncher):
		m.carouselFocus = false
		m.store.OpenLauncher()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.carouselCursor > 0 {
			m.carouselCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.carouselCursor < len(minimized)-1 {
			m.carouselCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.carouselFocus = false
		m.store.Restore(selected.ID)
		return m, nil

	case key.Matches(msg, m.keys.CloseCard):
		m.store.Close(selected.ID)
		m.clampCarouselCursor()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		cmd := m.dismiss(selected.ID)
		m.clampCarouselCursor()
		return m, cmd
	}
	return m, nil
}

// clampCarouselCursor keeps the cursor on a minimized card and drops
// focus when none are left.
func (m *Model) clampCarouselCursor() {
	n := len(m.store.Minimized())
	if n == 0 {
		m.carouselFocus = false
		m.carouselCursor = 0
		return
	}
	if m.carouselCursor >= n {
		m.carouselCursor = n - 1
	}
}

// dismiss closes a swiped card and keeps it on screen while it fades.
func (m *Model) dismiss(id string) tea.Cmd {
	inst, ok := m.store.Get(id)
	if !ok {
		return nil
	}
	m.store.Close(id)
	fade := time.Duration(m.config.Carousel.DismissFadeMS) * time.Millisecond
	if fade <= 0 {
		return nil
	}
	m.fading = append(m.fading, inst)
	return tea.Tick(fade, func(time.Time) tea.Msg {
		return MsgFadeDone{InstanceID: id}
	})
}

func (m *Model) removeFading(id string) {
	for i, inst := range m.fading {
		if inst.ID == id {
			m.fading = append(m.fading[:i:i], m.fading[i+1:]...)
			return
		}
	}
}

// handleMouseMsg routes pointer input to the region under the pointer.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.container.Clock.Now()

	switch msg.Action {
	case tea.MouseActionMotion:
		m.drag.Move(float64(msg.Y), now)
		return m, nil

	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return m, nil
		}
		id := m.drag.Key()
		offset, velocity := m.drag.Release(float64(msg.Y), now)
		switch gesture.Resolve(offset, velocity, m.thresholds) {
		case gesture.Tap:
			m.carouselFocus = false
			m.store.Restore(id)
		case gesture.Dismiss:
			cmd := m.dismiss(id)
			m.clampCarouselCursor()
			return m, cmd
		case gesture.Cancel:
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleClick(msg.X, msg.Y, now)
	}
	return m, nil
}

// handleClick handles a left button press at x, y.
func (m *Model) handleClick(x, y int, now time.Time) (tea.Model, tea.Cmd) {
	f := m.layout()

	if m.store.LauncherOpen() {
		if f.launcher.contains(x, y) {
			return m.handleLauncherClick(f, x, y)
		}
		if f.dock.contains(x, y) {
			return m.handleDockClick(x)
		}
		m.store.CloseLauncher()
		return m, nil
	}

	switch {
	case f.minimizeBtn.contains(x, y):
		if inst, ok := m.store.Fullscreen(); ok {
			m.store.Minimize(inst.ID)
		}
		return m, nil

	case f.closeBtn.contains(x, y):
		if inst, ok := m.store.Fullscreen(); ok {
			m.store.Close(inst.ID)
		}
		return m, nil

	case f.dock.contains(x, y):
		return m.handleDockClick(x)

	case f.carousel.contains(x, y):
		for k, c := range m.visibleCards() {
			r := f.cardRect(k)
			if c.fading || !r.contains(x, y) {
				continue
			}
			if x == cardCloseX(r) && y == r.y+1 {
				m.store.Close(c.inst.ID)
				m.clampCarouselCursor()
				return m, nil
			}
			m.drag.Start(c.inst.ID, float64(y), now, -cardLift, 0)
			return m, nil
		}
	}
	return m, nil
}

// handleLauncherClick handles a press inside the launcher box.
func (m *Model) handleLauncherClick(f frame, x, y int) (tea.Model, tea.Cmd) {
	if y == f.tabRowY() {
		for _, t := range m.visibleTabs(f) {
			if x >= t.x && x < t.x+t.w {
				m.setCategory(t.category)
				return m, nil
			}
		}
		return m, nil
	}

	k := y - f.resultRowY(0)
	if k < 0 || k >= m.launcherRows() {
		return m, nil
	}
	idx := m.resultOffset + k
	if idx >= len(m.results) {
		return m, nil
	}
	cmd := m.launch(m.results[idx])
	m.search.Reset()
	m.resultCursor = 0
	m.resultOffset = 0
	return m, cmd
}

// handleDockClick handles a press on the dock at column x.
func (m *Model) handleDockClick(x int) (tea.Model, tea.Cmd) {
	for _, slot := range m.dockSlots() {
		if x < slot.x || x >= slot.x+slot.w {
			continue
		}
		switch slot.kind {
		case slotToggle:
			m.store.ToggleLauncher()
			return m, nil
		case slotApp:
			return m, m.launch(slot.item.App)
		case slotSeparator:
		}
		return m, nil
	}
	return m, nil
}
