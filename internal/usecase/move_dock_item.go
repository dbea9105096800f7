package usecase

import (
	"context"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// MoveDockItemInput contains the parameters for reordering the dock.
type MoveDockItemInput struct {
	AppID string
	To    int // 1-based target position
}

// MoveDockItemOutput contains the pinned ids after the change.
type MoveDockItemOutput struct {
	Pinned []string
}

// MoveDockItem moves a pinned app to another position.
// Fields are ordered to minimize memory padding.
type MoveDockItem struct {
	registry *domain.Registry
	dock     domain.DockRepository
	config   domain.DockConfig
}

// NewMoveDockItem creates a new MoveDockItem use case.
func NewMoveDockItem(registry *domain.Registry, dock domain.DockRepository, config domain.DockConfig) *MoveDockItem {
	return &MoveDockItem{
		registry: registry,
		dock:     dock,
		config:   config,
	}
}

// Execute moves the app.
func (uc *MoveDockItem) Execute(_ context.Context, in MoveDockItemInput) (*MoveDockItemOutput, error) {
	pinned, err := currentPinned(uc.registry, uc.dock, uc.config.MaxPinned)
	if err != nil {
		return nil, err
	}
	from := indexOf(pinned, in.AppID)
	if from < 0 {
		return nil, fmt.Errorf("%q: %w", in.AppID, domain.ErrNotPinned)
	}
	if in.To < 1 || in.To > len(pinned) {
		return nil, fmt.Errorf("position %d of %d: %w", in.To, len(pinned), domain.ErrInvalidPosition)
	}

	to := in.To - 1
	id := pinned[from]
	pinned = append(pinned[:from], pinned[from+1:]...)
	pinned = append(pinned[:to], append([]string{id}, pinned[to:]...)...)

	if err := saveDock(uc.dock, pinned); err != nil {
		return nil, err
	}
	return &MoveDockItemOutput{Pinned: pinned}, nil
}
