package usecase

import (
	"context"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// PinAppInput contains the parameters for pinning an app.
type PinAppInput struct {
	AppID    string
	Position int // 1-based; 0 appends
}

// PinAppOutput contains the pinned ids after the change.
type PinAppOutput struct {
	Pinned []string
}

// PinApp adds an app to the dock.
// Fields are ordered to minimize memory padding.
type PinApp struct {
	registry *domain.Registry
	dock     domain.DockRepository
	logger   domain.Logger
	config   domain.DockConfig
}

// NewPinApp creates a new PinApp use case.
func NewPinApp(
	registry *domain.Registry,
	dock domain.DockRepository,
	logger domain.Logger,
	config domain.DockConfig,
) *PinApp {
	return &PinApp{
		registry: registry,
		dock:     dock,
		logger:   logger,
		config:   config,
	}
}

// Execute pins the app at the requested position.
func (uc *PinApp) Execute(_ context.Context, in PinAppInput) (*PinAppOutput, error) {
	app := uc.registry.Get(in.AppID)
	if app == nil {
		return nil, fmt.Errorf("%q: %w", in.AppID, domain.ErrAppNotFound)
	}
	if !app.Pinnable() {
		return nil, fmt.Errorf("%q: %w", in.AppID, domain.ErrAppNotPinnable)
	}

	maxPinned := uc.maxPinned()
	pinned, err := currentPinned(uc.registry, uc.dock, maxPinned)
	if err != nil {
		return nil, err
	}
	if indexOf(pinned, app.ID) >= 0 {
		return nil, fmt.Errorf("%q: %w", app.ID, domain.ErrAlreadyPinned)
	}
	if len(pinned) >= maxPinned {
		return nil, fmt.Errorf("%d of %d slots used: %w", len(pinned), maxPinned, domain.ErrDockFull)
	}

	pos := in.Position
	if pos == 0 {
		pos = len(pinned) + 1
	}
	if pos < 1 || pos > len(pinned)+1 {
		return nil, fmt.Errorf("position %d: %w", in.Position, domain.ErrInvalidPosition)
	}

	pinned = append(pinned, "")
	copy(pinned[pos:], pinned[pos-1:])
	pinned[pos-1] = app.ID

	if err := saveDock(uc.dock, pinned); err != nil {
		return nil, err
	}
	uc.logger.Info(app.ID, "usecase", fmt.Sprintf("pinned at %d", pos))

	return &PinAppOutput{Pinned: pinned}, nil
}

func (uc *PinApp) maxPinned() int {
	if uc.config.MaxPinned <= 0 {
		return domain.DefaultMaxPinned
	}
	return uc.config.MaxPinned
}
