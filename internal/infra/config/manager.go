package config

import (
	"os"

	"github.com/loomos/loomshell/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	localDir      string // Working directory holding .loomshell.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/loomshell)
}

// NewManager creates a new Manager.
func NewManager(localDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: DefaultGlobalDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(localDir, globalConfDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(domain.LocalConfigPath(m.localDir))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{
			Path:   "",
			Exists: false,
		}
	}
	return m.getConfigInfo(domain.GlobalConfigPath(m.globalConfDir))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig creates a local config file with default template.
func (m *Manager) InitLocalConfig(force bool) error {
	return m.initConfig(domain.LocalConfigPath(m.localDir), force)
}

// InitGlobalConfig creates a global config file with default template.
func (m *Manager) InitGlobalConfig(force bool) error {
	if m.globalConfDir == "" {
		return domain.ErrNoConfigDir
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0700); err != nil {
		return err
	}

	return m.initConfig(domain.GlobalConfigPath(m.globalConfDir), force)
}

// initConfig creates a config file with default template.
func (m *Manager) initConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return domain.ErrConfigExists
		}
	}

	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())

	return os.WriteFile(path, []byte(content), 0600)
}
