package usecase

import (
	"context"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// UnpinAppInput contains the parameters for unpinning an app.
type UnpinAppInput struct {
	AppID string
}

// UnpinAppOutput contains the pinned ids after the change.
type UnpinAppOutput struct {
	Pinned []string // Empty means the dock shows the defaults again
}

// UnpinApp removes an app from the dock.
// Fields are ordered to minimize memory padding.
type UnpinApp struct {
	registry *domain.Registry
	dock     domain.DockRepository
	logger   domain.Logger
	config   domain.DockConfig
}

// NewUnpinApp creates a new UnpinApp use case.
func NewUnpinApp(
	registry *domain.Registry,
	dock domain.DockRepository,
	logger domain.Logger,
	config domain.DockConfig,
) *UnpinApp {
	return &UnpinApp{
		registry: registry,
		dock:     dock,
		logger:   logger,
		config:   config,
	}
}

// Execute unpins the app.
func (uc *UnpinApp) Execute(_ context.Context, in UnpinAppInput) (*UnpinAppOutput, error) {
	pinned, err := currentPinned(uc.registry, uc.dock, uc.config.MaxPinned)
	if err != nil {
		return nil, err
	}
	i := indexOf(pinned, in.AppID)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", in.AppID, domain.ErrNotPinned)
	}
	pinned = append(pinned[:i], pinned[i+1:]...)

	if err := saveDock(uc.dock, pinned); err != nil {
		return nil, err
	}
	uc.logger.Info(in.AppID, "usecase", "unpinned")

	return &UnpinAppOutput{Pinned: pinned}, nil
}
