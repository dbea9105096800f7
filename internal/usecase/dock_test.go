package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/testutil"
)

type dockFixture struct {
	registry *domain.Registry
	repo     *testutil.MockDockRepository
	logger   *testutil.MockLogger
	config   domain.DockConfig
}

func newDockFixture(pinned ...string) *dockFixture {
	repo := testutil.NewMockDockRepository()
	repo.File.Pinned = pinned
	return &dockFixture{
		registry: testutil.NewTestRegistry(testutil.SampleApps()...),
		repo:     repo,
		logger:   &testutil.MockLogger{},
		config:   domain.DockConfig{MaxPinned: 5},
	}
}

func TestListDockItems_Execute_Defaults(t *testing.T) {
	// Setup
	f := newDockFixture()
	uc := NewListDockItems(f.registry, f.repo, f.logger, f.config)

	// Execute
	out, err := uc.Execute(context.Background(), ListDockItemsInput{Running: []string{"cal"}})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Defaults)
	assert.Equal(t, []string{"mail", "cal", "pay", "docs", "admin"}, domain.PinnedIDs(out.Pinned))
	require.Len(t, out.Items, 5)
	assert.False(t, out.Items[0].Running)
	assert.True(t, out.Items[1].Running)
}

func TestListDockItems_Execute_Saved(t *testing.T) {
	f := newDockFixture("prefs", "unknown", "mail")
	f.config.ShowRunning = true
	uc := NewListDockItems(f.registry, f.repo, f.logger, f.config)

	out, err := uc.Execute(context.Background(), ListDockItemsInput{Running: []string{"docs", "mail"}})

	require.NoError(t, err)
	assert.False(t, out.Defaults)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "prefs", out.Items[0].App.ID)
	assert.Equal(t, "mail", out.Items[1].App.ID)
	assert.True(t, out.Items[1].Running)
	assert.Equal(t, "docs", out.Items[2].App.ID)
	assert.False(t, out.Items[2].Pinned)
}

func TestListDockItems_Execute_CorruptedFallsBack(t *testing.T) {
	f := newDockFixture()
	f.repo.LoadErr = fmt.Errorf("parse dock.toml: %w", domain.ErrDockFileCorrupted)
	uc := NewListDockItems(f.registry, f.repo, f.logger, f.config)

	out, err := uc.Execute(context.Background(), ListDockItemsInput{})

	require.NoError(t, err)
	assert.Len(t, out.Pinned, 5)
	require.Len(t, f.logger.Entries, 1)
	assert.Equal(t, "WARN", f.logger.Entries[0].Level)
}

func TestListDockItems_Execute_LoadError(t *testing.T) {
	f := newDockFixture()
	f.repo.LoadErr = errors.New("permission denied")
	uc := NewListDockItems(f.registry, f.repo, f.logger, f.config)

	_, err := uc.Execute(context.Background(), ListDockItemsInput{})

	assert.ErrorContains(t, err, "permission denied")
}

func TestPinApp_Execute(t *testing.T) {
	tests := []struct {
		name     string
		pinned   []string
		in       PinAppInput
		expected []string
	}{
		{"append", []string{"mail", "cal"}, PinAppInput{AppID: "prefs"}, []string{"mail", "cal", "prefs"}},
		{"insert first", []string{"mail", "cal"}, PinAppInput{AppID: "prefs", Position: 1}, []string{"prefs", "mail", "cal"}},
		{"insert last", []string{"mail", "cal"}, PinAppInput{AppID: "prefs", Position: 3}, []string{"mail", "cal", "prefs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			f := newDockFixture(tt.pinned...)
			uc := NewPinApp(f.registry, f.repo, f.logger, f.config)

			// Execute
			out, err := uc.Execute(context.Background(), tt.in)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Pinned)
			assert.Equal(t, tt.expected, f.repo.File.Pinned)
			assert.Equal(t, 1, f.repo.File.Version)
		})
	}
}

func TestPinApp_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pinned  []string
		max     int
		in      PinAppInput
		wantErr error
	}{
		{"unknown app", []string{"mail"}, 5, PinAppInput{AppID: "nope"}, domain.ErrAppNotFound},
		{"not pinnable", []string{"mail"}, 5, PinAppInput{AppID: "store"}, domain.ErrAppNotPinnable},
		{"already pinned", []string{"mail"}, 5, PinAppInput{AppID: "mail"}, domain.ErrAlreadyPinned},
		{"full", []string{"mail", "cal"}, 2, PinAppInput{AppID: "prefs"}, domain.ErrDockFull},
		{"full defaults", nil, 5, PinAppInput{AppID: "prefs"}, domain.ErrDockFull},
		{"position too large", []string{"mail"}, 5, PinAppInput{AppID: "prefs", Position: 3}, domain.ErrInvalidPosition},
		{"negative position", []string{"mail"}, 5, PinAppInput{AppID: "prefs", Position: -1}, domain.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDockFixture(tt.pinned...)
			f.config.MaxPinned = tt.max
			uc := NewPinApp(f.registry, f.repo, f.logger, f.config)

			_, err := uc.Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.repo.SaveCalls, "nothing is saved on error")
		})
	}
}

func TestPinApp_Execute_SaveError(t *testing.T) {
	f := newDockFixture("mail")
	f.repo.SaveErr = errors.New("read-only file system")
	uc := NewPinApp(f.registry, f.repo, f.logger, f.config)

	_, err := uc.Execute(context.Background(), PinAppInput{AppID: "cal"})

	assert.ErrorContains(t, err, "save dock")
}

func TestUnpinApp_Execute(t *testing.T) {
	f := newDockFixture("mail", "cal")
	uc := NewUnpinApp(f.registry, f.repo, f.logger, f.config)

	out, err := uc.Execute(context.Background(), UnpinAppInput{AppID: "mail"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cal"}, out.Pinned)

	_, err = uc.Execute(context.Background(), UnpinAppInput{AppID: "mail"})
	assert.ErrorIs(t, err, domain.ErrNotPinned)

	// Removing the last one leaves an empty preference, which shows the defaults
	out, err = uc.Execute(context.Background(), UnpinAppInput{AppID: "cal"})
	require.NoError(t, err)
	assert.Empty(t, out.Pinned)
	assert.Empty(t, f.repo.File.Pinned)
}

func TestUnpinApp_Execute_FromDefaults(t *testing.T) {
	f := newDockFixture()
	uc := NewUnpinApp(f.registry, f.repo, f.logger, f.config)

	out, err := uc.Execute(context.Background(), UnpinAppInput{AppID: "pay"})

	require.NoError(t, err)
	assert.Equal(t, []string{"mail", "cal", "docs", "admin"}, out.Pinned)
}

func TestMoveDockItem_Execute(t *testing.T) {
	tests := []struct {
		name     string
		in       MoveDockItemInput
		expected []string
	}{
		{"to front", MoveDockItemInput{AppID: "docs", To: 1}, []string{"docs", "mail", "cal"}},
		{"to back", MoveDockItemInput{AppID: "mail", To: 3}, []string{"cal", "docs", "mail"}},
		{"same place", MoveDockItemInput{AppID: "cal", To: 2}, []string{"mail", "cal", "docs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDockFixture("mail", "cal", "docs")
			uc := NewMoveDockItem(f.registry, f.repo, f.config)

			out, err := uc.Execute(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Pinned)
			assert.Equal(t, tt.expected, f.repo.File.Pinned)
		})
	}
}

func TestMoveDockItem_Execute_Errors(t *testing.T) {
	f := newDockFixture("mail", "cal")
	uc := NewMoveDockItem(f.registry, f.repo, f.config)

	_, err := uc.Execute(context.Background(), MoveDockItemInput{AppID: "docs", To: 1})
	assert.ErrorIs(t, err, domain.ErrNotPinned)

	_, err = uc.Execute(context.Background(), MoveDockItemInput{AppID: "mail", To: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)

	_, err = uc.Execute(context.Background(), MoveDockItemInput{AppID: "mail", To: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
}

func TestResetDock_Execute(t *testing.T) {
	f := newDockFixture("prefs")
	f.repo.LoadErr = domain.ErrDockFileCorrupted
	uc := NewResetDock(f.repo, f.logger)

	_, err := uc.Execute(context.Background(), ResetDockInput{})

	require.NoError(t, err)
	assert.Empty(t, f.repo.File.Pinned)
	assert.Equal(t, 1, f.repo.SaveCalls)
}
