package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// ListDockItemsInput contains the parameters for listing the dock.
type ListDockItemsInput struct {
	Running []string // App ids of live instances, oldest first
}

// ListDockItemsOutput contains the dock contents.
type ListDockItemsOutput struct {
	Items    []domain.DockItem
	Pinned   []*domain.AppDefinition // Resolved pinned apps, in dock order
	Defaults bool                    // No preference saved; the first registry entries are shown
}

// ListDockItems resolves the pinned apps and marks running ones.
// Fields are ordered to minimize memory padding.
type ListDockItems struct {
	registry *domain.Registry
	dock     domain.DockRepository
	logger   domain.Logger
	config   domain.DockConfig
}

// NewListDockItems creates a new ListDockItems use case.
func NewListDockItems(
	registry *domain.Registry,
	dock domain.DockRepository,
	logger domain.Logger,
	config domain.DockConfig,
) *ListDockItems {
	return &ListDockItems{
		registry: registry,
		dock:     dock,
		logger:   logger,
		config:   config,
	}
}

// Execute returns the dock items.
// A corrupted preference file falls back to the default pinned set.
func (uc *ListDockItems) Execute(_ context.Context, in ListDockItemsInput) (*ListDockItemsOutput, error) {
	file, err := uc.dock.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrDockFileCorrupted) {
			return nil, fmt.Errorf("load dock: %w", err)
		}
		uc.logger.Warn("", "usecase", fmt.Sprintf("%v, using default dock", err))
		file = &domain.DockFile{Version: 1}
	}

	pinned := domain.ResolvePinned(uc.registry, file.Pinned, uc.config.MaxPinned)
	return &ListDockItemsOutput{
		Items:    domain.BuildDockItems(uc.registry, pinned, in.Running, uc.config.ShowRunning),
		Pinned:   pinned,
		Defaults: len(file.Pinned) == 0,
	}, nil
}

// currentPinned returns the pinned ids with the defaults materialized,
// so edits to an empty preference start from what the dock shows.
func currentPinned(reg *domain.Registry, repo domain.DockRepository, maxPinned int) ([]string, error) {
	file, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load dock: %w", err)
	}
	return domain.PinnedIDs(domain.ResolvePinned(reg, file.Pinned, maxPinned)), nil
}

func saveDock(repo domain.DockRepository, pinned []string) error {
	if err := repo.Save(&domain.DockFile{Version: 1, Pinned: pinned}); err != nil {
		return fmt.Errorf("save dock: %w", err)
	}
	return nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
