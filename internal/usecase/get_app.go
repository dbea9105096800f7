package usecase

import (
	"context"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// GetAppInput contains the parameters for looking up an app.
type GetAppInput struct {
	AppID string
}

// GetAppOutput contains the app and its recorded usage.
// Fields are ordered to minimize memory padding.
type GetAppOutput struct {
	App      *domain.AppDefinition
	Usage    domain.AppUsage // Zero when never launched
	HasUsage bool
}

// GetApp returns one registry entry.
type GetApp struct {
	registry *domain.Registry
	usage    domain.UsageRepository
	logger   domain.Logger
}

// NewGetApp creates a new GetApp use case.
func NewGetApp(registry *domain.Registry, usage domain.UsageRepository, logger domain.Logger) *GetApp {
	return &GetApp{
		registry: registry,
		usage:    usage,
		logger:   logger,
	}
}

// Execute looks up the app.
func (uc *GetApp) Execute(_ context.Context, in GetAppInput) (*GetAppOutput, error) {
	app := uc.registry.Get(in.AppID)
	if app == nil {
		return nil, fmt.Errorf("%q: %w", in.AppID, domain.ErrAppNotFound)
	}

	out := &GetAppOutput{App: app}
	usage, err := uc.usage.Load()
	if err != nil {
		uc.logger.Warn(app.ID, "usecase", fmt.Sprintf("load usage: %v", err))
		return out, nil
	}
	out.Usage, out.HasUsage = usage[app.ID]
	return out, nil
}
