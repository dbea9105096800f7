package usecase

import (
	"context"

	"github.com/loomos/loomshell/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise the local one
	Force  bool // Overwrite an existing file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates a configuration file with default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	var err error
	var path string

	if in.Global {
		path = uc.configManager.GetGlobalConfigInfo().Path
		err = uc.configManager.InitGlobalConfig(in.Force)
	} else {
		path = uc.configManager.GetLocalConfigInfo().Path
		err = uc.configManager.InitLocalConfig(in.Force)
	}

	if err != nil {
		return nil, err
	}

	return &InitConfigOutput{Path: path}, nil
}
