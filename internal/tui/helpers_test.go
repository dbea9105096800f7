package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/testutil"
)

// testEnv bundles a model with the doubles behind it.
type testEnv struct {
	model  *Model
	clock  *testutil.MockClock
	usage  *testutil.MockUsageRepository
	dock   *testutil.MockDockRepository
	logger *testutil.MockLogger
}

func newTestEnv(t *testing.T, configure ...func(*domain.Config)) *testEnv {
	t.Helper()

	cfg := domain.NewDefaultConfig()
	for _, fn := range configure {
		fn(cfg)
	}

	env := &testEnv{
		clock:  &testutil.MockClock{NowTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		usage:  testutil.NewMockUsageRepository(),
		dock:   testutil.NewMockDockRepository(),
		logger: &testutil.MockLogger{},
	}
	c := app.NewWithDeps(app.Config{}, app.Deps{
		Dock:      env.dock,
		Usage:     env.usage,
		Clock:     env.clock,
		AppLogger: env.logger,
		Registry:  testutil.NewTestRegistry(testutil.SampleApps()...),
		AppConfig: cfg,
	})

	m := New(c)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	msg := m.loadDock()()
	_, ok := msg.(MsgDockLoaded)
	require.True(t, ok, "dock should load")
	m.Update(msg)

	env.model = m
	return env
}

// send delivers msg and returns the command Update produced.
// Commands are not run; tests call them explicitly when the outcome matters.
func (e *testEnv) send(msg tea.Msg) tea.Cmd {
	_, cmd := e.model.Update(msg)
	return cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func resultIDs(m *Model) []string {
	return domain.PinnedIDs(m.results)
}

// launchAndMinimize launches the n-th pinned app and minimizes it.
func (e *testEnv) launchAndMinimize(n rune) domain.WindowInstance {
	e.send(keyRunes(string(n)))
	inst, _ := e.model.Store().Fullscreen()
	e.send(altKey('m'))
	return inst
}
