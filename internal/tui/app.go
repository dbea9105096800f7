package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/desktop"
	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/gesture"
	"github.com/loomos/loomshell/internal/infra/router"
	"github.com/loomos/loomshell/internal/usecase"
)

// errorDisplayTime is how long an error stays on screen.
const errorDisplayTime = 5 * time.Second

// Model is the main bubbletea model for the desktop.
type Model struct {
	// Dependencies (pointers first for alignment)
	container   *app.Container
	config      *domain.Config
	store       *desktop.Store
	router      *router.Router
	err         error
	unsubscribe func()

	// State (slices - contain pointers)
	results    []*domain.AppDefinition
	dockPinned []*domain.AppDefinition
	fading     []domain.WindowInstance // Dismissed cards still animating out

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model
	search textinput.Model
	drag   gesture.Drag

	thresholds gesture.Thresholds

	// Numeric state (smaller types last)
	category       domain.Category
	sortMode       domain.SortMode
	width          int
	height         int
	resultCursor   int
	resultOffset   int
	carouselCursor int
	carouselFocus  bool
}

// New creates a new desktop Model with the given container.
func New(c *app.Container) *Model {
	cfg := c.AppConfig

	si := textinput.New()
	si.Placeholder = "Search apps..."
	si.Prompt = "⌕ "
	si.CharLimit = 100

	m := &Model{
		container: c,
		config:    cfg,
		store:     c.NewDesktop(),
		router:    c.NewRouter(),
		keys:      DefaultKeyMap(cfg.Launcher.ToggleKey),
		styles:    DefaultStyles(),
		help:      help.New(),
		search:    si,
		thresholds: gesture.Thresholds{
			Distance: cfg.Carousel.SwipeDistance,
			Velocity: cfg.Carousel.SwipeVelocity,
			TapSlop:  cfg.Carousel.TapSlop,
		},
		category: domain.CategoryAll,
		sortMode: cfg.Launcher.Sort,
	}
	m.unsubscribe = m.store.Subscribe(m.onStoreEvent)
	return m
}

// Store returns the window store driven by the model.
func (m *Model) Store() *desktop.Store {
	return m.store
}

// Router returns the navigator that follows the fullscreen app.
func (m *Model) Router() *router.Router {
	return m.router
}

// Close detaches the model from the window store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadDock(),
		textinput.Blink,
	)
}

// Mode returns the part of the desktop that receives keys.
func (m *Model) Mode() Mode {
	if m.store.LauncherOpen() {
		return ModeLauncher
	}
	if m.carouselFocus && len(m.store.Minimized()) > 0 {
		return ModeCarousel
	}
	return ModeDesktop
}

// onStoreEvent keeps the router and the launcher input in step with the store.
func (m *Model) onStoreEvent(ev desktop.Event) {
	if ev.Kind == desktop.EventLauncher {
		state := "closed"
		if ev.LauncherOpen {
			state = "opened"
			m.search.Focus()
			m.refreshResults()
		} else {
			m.search.Blur()
		}
		m.container.AppLogger.Debug("", "launcher", state)
		return
	}

	m.container.AppLogger.Info(ev.AppID, "window", fmt.Sprintf("%s %s", ev.Kind, ev.InstanceID))

	if !ev.FullscreenChanged() {
		return
	}
	if inst, ok := m.store.Fullscreen(); ok {
		m.router.Navigate(inst.App.Path)
		return
	}
	m.router.Navigate(domain.DashboardPath)
	if len(m.store.Minimized()) == 0 {
		m.carouselFocus = false
	}
}

// loadDock returns a command that resolves the pinned apps.
func (m *Model) loadDock() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListDockItemsUseCase().Execute(context.Background(), usecase.ListDockItemsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgDockLoaded{Pinned: out.Pinned}
	}
}

// recordLaunch returns a command that stores a launch in the usage statistics.
// Failures are logged and never reach the user.
func (m *Model) recordLaunch(appID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.RecordLaunchUseCase().Execute(context.Background(), usecase.RecordLaunchInput{AppID: appID})
		if err != nil {
			m.container.AppLogger.Warn(appID, "usage", fmt.Sprintf("record launch: %v", err))
			return nil
		}
		return MsgLaunchRecorded{AppID: appID}
	}
}

// clearErrorAfter returns a command that clears the error message.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearError{}
	})
}

// launch brings app to fullscreen and closes the launcher.
func (m *Model) launch(app *domain.AppDefinition) tea.Cmd {
	if app == nil {
		return nil
	}
	m.store.Launch(app)
	m.store.CloseLauncher()
	m.carouselFocus = false
	return m.recordLaunch(app.ID)
}

// launchNew opens another instance of app and closes the launcher.
func (m *Model) launchNew(app *domain.AppDefinition) tea.Cmd {
	if app == nil {
		return nil
	}
	m.store.LaunchNew(app)
	m.store.CloseLauncher()
	m.carouselFocus = false
	return m.recordLaunch(app.ID)
}

// refreshResults reruns the launcher search.
func (m *Model) refreshResults() {
	out, err := m.container.SearchAppsUseCase().Execute(context.Background(), usecase.SearchAppsInput{
		Query:    m.search.Value(),
		Category: m.category,
		Sort:     m.sortMode,
	})
	if err != nil {
		m.err = err
		m.results = nil
	} else {
		m.results = out.Apps
	}
	if m.resultCursor >= len(m.results) {
		m.resultCursor = max(len(m.results)-1, 0)
	}
	m.ensureResultVisible()
}

// categories returns the launcher tabs.
func (m *Model) categories() []domain.Category {
	out := []domain.Category{domain.CategoryAll}
	for _, c := range domain.CategoryOrder {
		if c == domain.CategoryAdmin && !m.config.Launcher.ShowAdmin {
			continue
		}
		out = append(out, c)
	}
	return out
}

// cycleCategory moves the category tab by delta.
func (m *Model) cycleCategory(delta int) {
	cats := m.categories()
	idx := 0
	for i, c := range cats {
		if c == m.category {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	m.setCategory(cats[idx])
}

func (m *Model) setCategory(c domain.Category) {
	m.category = c
	m.resultCursor = 0
	m.resultOffset = 0
	m.refreshResults()
}

// selectedResult returns the highlighted launcher entry.
func (m *Model) selectedResult() *domain.AppDefinition {
	if m.resultCursor < 0 || m.resultCursor >= len(m.results) {
		return nil
	}
	return m.results[m.resultCursor]
}

// ensureResultVisible scrolls the result list to the cursor.
func (m *Model) ensureResultVisible() {
	rows := m.launcherRows()
	if m.resultCursor < m.resultOffset {
		m.resultOffset = m.resultCursor
	}
	if m.resultCursor >= m.resultOffset+rows {
		m.resultOffset = m.resultCursor - rows + 1
	}
	if m.resultOffset < 0 {
		m.resultOffset = 0
	}
}

// runningIDs returns app ids of live instances, oldest first.
func (m *Model) runningIDs() []string {
	insts := m.store.Instances()
	ids := make([]string, 0, len(insts))
	for _, inst := range insts {
		ids = append(ids, inst.AppID())
	}
	return ids
}

// dockItems returns the dock entries with running indicators.
func (m *Model) dockItems() []domain.DockItem {
	return domain.BuildDockItems(m.container.Registry, m.dockPinned, m.runningIDs(), m.config.Dock.ShowRunning)
}
