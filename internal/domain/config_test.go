package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "ctrl+l", cfg.Launcher.ToggleKey)
	assert.Equal(t, SearchSubstring, cfg.Launcher.Search)
	assert.Equal(t, SortDefault, cfg.Launcher.Sort)
	assert.True(t, cfg.Launcher.ShowAdmin)
	assert.Equal(t, 5, cfg.Dock.MaxPinned)
	assert.False(t, cfg.Dock.ShowRunning)
	assert.Equal(t, 300, cfg.Carousel.DismissFadeMS)
}

func TestPaths(t *testing.T) {
	dir := GlobalDir("/home/u/.config")
	assert.Equal(t, filepath.Join("/home/u/.config", "loomshell"), dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), GlobalConfigPath(dir))
	assert.Equal(t, filepath.Join("/work", ".loomshell.toml"), LocalConfigPath("/work"))
	assert.Equal(t, filepath.Join(dir, "dock.toml"), DockFilePath(dir))
	assert.Equal(t, filepath.Join(dir, "usage.json"), UsageFilePath(dir))
	assert.Equal(t, filepath.Join(dir, "logs", "loomshell.log"), GlobalLogPath(dir))
	assert.Equal(t, filepath.Join(dir, "logs", "app-inbox.log"), AppLogPath(dir, "inbox"))
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Dock.MaxPinned = 7
	cfg.Launcher.Search = SearchFuzzy

	out := RenderConfigTemplate(cfg)

	assert.Contains(t, out, "max_pinned = 7")
	assert.Contains(t, out, `search = "fuzzy"`)
	assert.Contains(t, out, "show_admin = true")
	assert.Contains(t, out, "swipe_distance = 3")
	assert.NotContains(t, out, "<<")
}
