package domain

import "time"

// RegistryLoader loads the app catalog.
type RegistryLoader interface {
	// Load returns the registry. It is called once at startup.
	Load() (*Registry, error)
}

// DockRepository persists dock preferences.
type DockRepository interface {
	// Load returns the dock file. A missing file yields an empty, version 1 file.
	Load() (*DockFile, error)

	// Save writes the dock file.
	Save(file *DockFile) error
}

// UsageRepository persists launch statistics.
type UsageRepository interface {
	// Load returns all recorded usage. A missing file yields an empty map.
	Load() (UsageMap, error)

	// Record adds one launch of appID at t.
	Record(appID string, t time.Time) error
}

// Navigator receives navigation intents from the app window.
type Navigator interface {
	// Navigate moves the logical location to path.
	Navigate(path string)

	// Current returns the current logical location.
	Current() string
}

// Logger writes categorized log lines.
// An empty appID logs to the global log only.
type Logger interface {
	Info(appID, category, msg string)
	Debug(appID, category, msg string)
	Warn(appID, category, msg string)
	Error(appID, category, msg string)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the config template to the global location.
	InitGlobalConfig(force bool) error

	// InitLocalConfig writes the config template to the local location.
	InitLocalConfig(force bool) error
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// SearchKey identifies one launcher search.
// Fields are ordered to minimize memory padding.
type SearchKey struct {
	Query     string
	Category  Category
	Search    string // Search mode
	Sort      SortMode
	ShowAdmin bool
}

// SearchCache stores launcher search results.
type SearchCache interface {
	// Get returns the cached results for key.
	Get(key SearchKey) ([]*AppDefinition, bool)

	// Put stores results for key.
	Put(key SearchKey, apps []*AppDefinition)
}
