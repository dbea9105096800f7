package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Registry RegistryConfig `toml:"registry"`
	Log      LogConfig      `toml:"log"`
	Launcher LauncherConfig `toml:"launcher"`
	Dock     DockConfig     `toml:"dock"`
	Carousel CarouselConfig `toml:"carousel"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// RegistryConfig holds settings from [registry] section.
type RegistryConfig struct {
	File string `toml:"file,omitempty"` // TOML or YAML registry replacing the built-in one
}

// LauncherConfig holds settings from [launcher] section.
// Fields are ordered to minimize memory padding.
type LauncherConfig struct {
	ToggleKey string   `toml:"toggle_key,omitempty"` // Key combination toggling the launcher
	Search    string   `toml:"search,omitempty"`     // "substring" (default) or "fuzzy"
	Sort      SortMode `toml:"sort,omitempty"`
	CacheSize int      `toml:"cache_size,omitempty"`
	ShowAdmin bool     `toml:"show_admin"`
}

// DockConfig holds settings from [dock] section.
type DockConfig struct {
	MaxPinned   int  `toml:"max_pinned,omitempty"`
	ShowRunning bool `toml:"show_running,omitempty"` // Show running apps that are not pinned
}

// CarouselConfig holds the swipe-to-dismiss tuning from [carousel] section.
// Distances are terminal cells; velocity is cells per second.
type CarouselConfig struct {
	SwipeDistance float64 `toml:"swipe_distance,omitempty"`
	SwipeVelocity float64 `toml:"swipe_velocity,omitempty"`
	TapSlop       float64 `toml:"tap_slop,omitempty"`
	DismissFadeMS int     `toml:"dismiss_fade_ms,omitempty"`
}

// Search modes.
const (
	SearchSubstring = "substring"
	SearchFuzzy     = "fuzzy"
)

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultToggleKey     = "ctrl+l"
	DefaultCacheSize     = 128
	DefaultSwipeDistance = 3
	DefaultSwipeVelocity = 20
	DefaultTapSlop       = 0
	DefaultDismissFadeMS = 300
)

// Directory and file names for loomshell.
const (
	AppDirName          = "loomshell"       // Directory name under XDG_CONFIG_HOME
	ConfigFileName      = "config.toml"     // Global config file name
	LocalConfigFileName = ".loomshell.toml" // Config file name in the working directory
	DockFileName        = "dock.toml"       // Dock preferences
	UsageFileName       = "usage.json"      // Launch statistics
	LogFileName         = "loomshell.log"   // Global log
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Launcher: LauncherConfig{
			ToggleKey: DefaultToggleKey,
			Search:    SearchSubstring,
			Sort:      SortDefault,
			CacheSize: DefaultCacheSize,
			ShowAdmin: true,
		},
		Dock: DockConfig{
			MaxPinned: DefaultMaxPinned,
		},
		Carousel: CarouselConfig{
			SwipeDistance: DefaultSwipeDistance,
			SwipeVelocity: DefaultSwipeVelocity,
			TapSlop:       DefaultTapSlop,
			DismissFadeMS: DefaultDismissFadeMS,
		},
	}
}

// GlobalDir returns the global loomshell directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(globalDir string) string {
	return filepath.Join(globalDir, ConfigFileName)
}

// LocalConfigPath returns the local config path for a working directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// DockFilePath returns the dock preferences path.
func DockFilePath(globalDir string) string {
	return filepath.Join(globalDir, DockFileName)
}

// UsageFilePath returns the usage statistics path.
func UsageFilePath(globalDir string) string {
	return filepath.Join(globalDir, UsageFileName)
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(globalDir string) string {
	return filepath.Join(globalDir, "logs", LogFileName)
}

// AppLogPath returns the path to the per-app log file.
func AppLogPath(globalDir, appID string) string {
	return filepath.Join(globalDir, "logs", fmt.Sprintf("app-%s.log", appID))
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
