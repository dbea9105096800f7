// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/loomos/loomshell/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Working directory holding .loomshell.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/loomshell)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: DefaultGlobalDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalDir returns the default global loomshell directory.
// It returns an empty string when no home directory can be determined.
func DefaultGlobalDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalDir(configHome)
}

// Load returns the merged configuration.
// Merge order: defaults <- global <- local (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		if err := applyFile(cfg, domain.GlobalConfigPath(l.globalConfDir)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if err := applyFile(cfg, domain.LocalConfigPath(l.localDir)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	sort.Strings(cfg.Warnings)
	return cfg, nil
}

// LoadGlobal returns defaults overlaid with the global configuration only.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	cfg := domain.NewDefaultConfig()
	if err := applyFile(cfg, domain.GlobalConfigPath(l.globalConfDir)); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	sort.Strings(cfg.Warnings)
	return cfg, nil
}

// applyFile overlays the values present in a TOML file onto cfg.
func applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	applyRaw(cfg, raw)
	return nil
}

// applyRaw overlays the raw map onto cfg and collects warnings for unknown keys
// and for values of the wrong type, which are ignored.
// Only keys present in raw change cfg, so false and zero values override too.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok || !knownSections[section] {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		for k, v := range m {
			applyKey(cfg, section, k, v)
		}
	}
}

// applyKey sets one value of a known section.
func applyKey(cfg *domain.Config, section, k string, v any) {
	ok := true
	switch section + "." + k {
	case "log.level":
		ok = setString(&cfg.Log.Level, v)
	case "registry.file":
		ok = setString(&cfg.Registry.File, v)
	case "launcher.toggle_key":
		ok = setString(&cfg.Launcher.ToggleKey, v)
	case "launcher.search":
		ok = setString(&cfg.Launcher.Search, v)
	case "launcher.sort":
		var mode string
		if ok = setString(&mode, v); ok {
			cfg.Launcher.Sort = domain.SortMode(mode)
		}
	case "launcher.show_admin":
		ok = setBool(&cfg.Launcher.ShowAdmin, v)
	case "launcher.cache_size":
		ok = setInt(&cfg.Launcher.CacheSize, v)
	case "dock.max_pinned":
		ok = setInt(&cfg.Dock.MaxPinned, v)
	case "dock.show_running":
		ok = setBool(&cfg.Dock.ShowRunning, v)
	case "carousel.swipe_distance":
		ok = setFloat(&cfg.Carousel.SwipeDistance, v)
	case "carousel.swipe_velocity":
		ok = setFloat(&cfg.Carousel.SwipeVelocity, v)
	case "carousel.tap_slop":
		ok = setFloat(&cfg.Carousel.TapSlop, v)
	case "carousel.dismiss_fade_ms":
		ok = setInt(&cfg.Carousel.DismissFadeMS, v)
	default:
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
		return
	}
	if !ok {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignored [%s] %s: unexpected type %T", section, k, v))
	}
}

var knownSections = map[string]bool{
	"log":      true,
	"registry": true,
	"launcher": true,
	"dock":     true,
	"carousel": true,
}

func setString(dst *string, v any) bool {
	s, ok := v.(string)
	if ok {
		*dst = s
	}
	return ok
}

func setBool(dst *bool, v any) bool {
	b, ok := v.(bool)
	if ok {
		*dst = b
	}
	return ok
}

func setInt(dst *int, v any) bool {
	n, ok := toInt(v)
	if ok {
		*dst = n
	}
	return ok
}

func setFloat(dst *float64, v any) bool {
	f, ok := toFloat(v)
	if ok {
		*dst = f
	}
	return ok
}

// validate rejects values no component can work with.
func validate(cfg *domain.Config) error {
	switch cfg.Launcher.Search {
	case domain.SearchSubstring, domain.SearchFuzzy:
	default:
		return fmt.Errorf("[launcher] search = %q: %w", cfg.Launcher.Search, domain.ErrInvalidSearchMode)
	}
	mode, err := domain.ParseSortMode(string(cfg.Launcher.Sort))
	if err != nil {
		return fmt.Errorf("[launcher] sort = %q: %w", cfg.Launcher.Sort, err)
	}
	cfg.Launcher.Sort = mode
	for name, v := range map[string]float64{
		"swipe_distance": cfg.Carousel.SwipeDistance,
		"swipe_velocity": cfg.Carousel.SwipeVelocity,
		"tap_slop":       cfg.Carousel.TapSlop,
	} {
		if v < 0 {
			return fmt.Errorf("[carousel] %s = %v: %w", name, v, domain.ErrInvalidThreshold)
		}
	}
	if cfg.Launcher.CacheSize <= 0 {
		cfg.Launcher.CacheSize = domain.DefaultCacheSize
	}
	if cfg.Dock.MaxPinned <= 0 {
		cfg.Dock.MaxPinned = domain.DefaultMaxPinned
	}
	if cfg.Launcher.ToggleKey == "" {
		cfg.Launcher.ToggleKey = domain.DefaultToggleKey
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
