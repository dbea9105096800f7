// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/loomos/loomshell/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	GlobalOnly bool // Skip the local config when merging
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config    // Merged defaults, global and local settings
	GlobalConfig    domain.ConfigInfo // Global config file info
	LocalConfig     domain.ConfigInfo // Local config file info, empty with GlobalOnly
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information and the effective config.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	load := uc.configLoader.Load
	if in.GlobalOnly {
		load = uc.configLoader.LoadGlobal
	}
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	out := &ShowConfigOutput{
		GlobalConfig:    uc.configManager.GetGlobalConfigInfo(),
		EffectiveConfig: cfg,
	}
	if !in.GlobalOnly {
		out.LocalConfig = uc.configManager.GetLocalConfigInfo()
	}
	return out, nil
}
