package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomos/loomshell/internal/domain"
)

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	// Setup: create temp directories
	localDir := t.TempDir()
	globalDir := t.TempDir()

	localConfig := `
[launcher]
toggle_key = "ctrl+space"
search = "fuzzy"
sort = "alphabetical"
show_admin = false

[dock]
max_pinned = 3
show_running = true

[log]
level = "debug"
`
	err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(localConfig), 0644)
	require.NoError(t, err)

	// Load config
	loader := NewLoaderWithGlobalDir(localDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, "ctrl+space", cfg.Launcher.ToggleKey)
	assert.Equal(t, domain.SearchFuzzy, cfg.Launcher.Search)
	assert.Equal(t, domain.SortAlphabetical, cfg.Launcher.Sort)
	assert.False(t, cfg.Launcher.ShowAdmin)
	assert.Equal(t, 3, cfg.Dock.MaxPinned)
	assert.True(t, cfg.Dock.ShowRunning)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()

	globalConfig := `
[carousel]
swipe_distance = 5
swipe_velocity = 12.5
dismiss_fade_ms = 150

[registry]
file = "/etc/loomshell/apps.yaml"
`
	err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(globalConfig), 0644)
	require.NoError(t, err)

	loader := NewLoaderWithGlobalDir(localDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.InDelta(t, 5.0, cfg.Carousel.SwipeDistance, 1e-9)
	assert.InDelta(t, 12.5, cfg.Carousel.SwipeVelocity, 1e-9)
	assert.Equal(t, 150, cfg.Carousel.DismissFadeMS)
	assert.Equal(t, "/etc/loomshell/apps.yaml", cfg.Registry.File)
	// Untouched values keep their defaults
	assert.Equal(t, domain.DefaultToggleKey, cfg.Launcher.ToggleKey)
	assert.True(t, cfg.Launcher.ShowAdmin)
}

func TestLoader_Load_MergeLocalOverridesGlobal(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()

	globalConfig := `
[launcher]
sort = "recent"
cache_size = 64

[log]
level = "warn"
`
	err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(globalConfig), 0644)
	require.NoError(t, err)

	localConfig := `
[launcher]
sort = "category"
`
	err = os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(localConfig), 0644)
	require.NoError(t, err)

	loader := NewLoaderWithGlobalDir(localDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.SortCategory, cfg.Launcher.Sort) // Overridden by local
	assert.Equal(t, 64, cfg.Launcher.CacheSize)             // From global
	assert.Equal(t, "warn", cfg.Log.Level)                  // From global
}

func TestLoader_Load_NoConfigFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_Warnings(t *testing.T) {
	localDir := t.TempDir()
	localConfig := `
[dock]
max_pinned = 4
colour = "red"

[theme]
name = "dark"
`
	err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(localConfig), 0644)
	require.NoError(t, err)

	loader := NewLoaderWithGlobalDir(localDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Dock.MaxPinned)
	assert.Equal(t, []string{
		"unknown key in [dock]: colour",
		"unknown section: theme",
	}, cfg.Warnings)
}

func TestLoader_Load_TypeMismatchWarns(t *testing.T) {
	localDir := t.TempDir()
	localConfig := `
[launcher]
show_admin = "yes"

[dock]
max_pinned = "7"
show_running = true

[carousel]
swipe_velocity = "fast"
`
	err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(localConfig), 0644)
	require.NoError(t, err)

	cfg, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.NoError(t, err)

	defaults := domain.NewDefaultConfig()
	assert.Equal(t, defaults.Launcher.ShowAdmin, cfg.Launcher.ShowAdmin)
	assert.Equal(t, defaults.Dock.MaxPinned, cfg.Dock.MaxPinned)
	assert.Equal(t, defaults.Carousel.SwipeVelocity, cfg.Carousel.SwipeVelocity)
	assert.True(t, cfg.Dock.ShowRunning)
	assert.Equal(t, []string{
		"ignored [carousel] swipe_velocity: unexpected type string",
		"ignored [dock] max_pinned: unexpected type string",
		"ignored [launcher] show_admin: unexpected type string",
	}, cfg.Warnings)
}

func TestLoader_Load_ZeroThresholdsAllowed(t *testing.T) {
	localDir := t.TempDir()
	content := "[carousel]\nswipe_distance = 0\nswipe_velocity = 0\ntap_slop = 0\n"
	err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Carousel.SwipeVelocity)
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"search mode", "[launcher]\nsearch = \"regex\"\n", domain.ErrInvalidSearchMode},
		{"sort mode", "[launcher]\nsort = \"random\"\n", domain.ErrInvalidSortMode},
		{"negative swipe distance", "[carousel]\nswipe_distance = -3\n", domain.ErrInvalidThreshold},
		{"negative swipe velocity", "[carousel]\nswipe_velocity = -1\n", domain.ErrInvalidThreshold},
		{"negative tap slop", "[carousel]\ntap_slop = -0.5\n", domain.ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			localDir := t.TempDir()
			err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(tt.content), 0644)
			require.NoError(t, err)

			_, err = NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_NonPositiveValuesFallBack(t *testing.T) {
	localDir := t.TempDir()
	err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte("[dock]\nmax_pinned = 0\n[launcher]\ncache_size = -1\n"), 0644)
	require.NoError(t, err)

	cfg, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMaxPinned, cfg.Dock.MaxPinned)
	assert.Equal(t, domain.DefaultCacheSize, cfg.Launcher.CacheSize)
}

func TestLoader_Load_ParseError(t *testing.T) {
	localDir := t.TempDir()
	err := os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte("[dock\n"), 0644)
	require.NoError(t, err)

	_, err = NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	assert.Error(t, err)
}

func TestLoader_LoadGlobal(t *testing.T) {
	t.Run("not exist", func(t *testing.T) {
		_, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).LoadGlobal()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no global dir", func(t *testing.T) {
		_, err := NewLoaderWithGlobalDir(t.TempDir(), "").LoadGlobal()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("ignores local file", func(t *testing.T) {
		localDir := t.TempDir()
		globalDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte("[log]\nlevel = \"error\"\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte("[log]\nlevel = \"debug\"\n"), 0644))

		cfg, err := NewLoaderWithGlobalDir(localDir, globalDir).LoadGlobal()
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
	})
}

func TestLoader_RenderedTemplateLoadsAsDefaults(t *testing.T) {
	localDir := t.TempDir()
	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())
	require.NoError(t, os.WriteFile(filepath.Join(localDir, domain.LocalConfigFileName), []byte(content), 0644))

	cfg, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}
