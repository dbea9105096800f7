package usecase

import (
	"context"

	"github.com/loomos/loomshell/internal/domain"
)

// ResetDockInput contains the parameters for resetting the dock.
type ResetDockInput struct{}

// ResetDockOutput contains the result of resetting the dock.
type ResetDockOutput struct{}

// ResetDock clears the pinned preference so the dock shows the defaults.
type ResetDock struct {
	dock   domain.DockRepository
	logger domain.Logger
}

// NewResetDock creates a new ResetDock use case.
func NewResetDock(dock domain.DockRepository, logger domain.Logger) *ResetDock {
	return &ResetDock{
		dock:   dock,
		logger: logger,
	}
}

// Execute writes an empty preference. A corrupted file is overwritten.
func (uc *ResetDock) Execute(_ context.Context, _ ResetDockInput) (*ResetDockOutput, error) {
	if err := saveDock(uc.dock, []string{}); err != nil {
		return nil, err
	}
	uc.logger.Info("", "usecase", "dock reset to defaults")
	return &ResetDockOutput{}, nil
}
