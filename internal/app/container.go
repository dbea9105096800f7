// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/loomos/loomshell/internal/desktop"
	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/infra/config"
	"github.com/loomos/loomshell/internal/infra/dockstore"
	"github.com/loomos/loomshell/internal/infra/logging"
	"github.com/loomos/loomshell/internal/infra/registry"
	"github.com/loomos/loomshell/internal/infra/router"
	"github.com/loomos/loomshell/internal/infra/searchcache"
	"github.com/loomos/loomshell/internal/infra/usage"
	"github.com/loomos/loomshell/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir   string // Directory holding the local .loomshell.toml
	GlobalDir string // Path to ~/.config/loomshell
	DockPath  string // Path to dock.toml
	UsagePath string // Path to usage.json
}

// newConfig resolves the paths for a working directory.
func newConfig(workDir, globalDir string) Config {
	return Config{
		WorkDir:   workDir,
		GlobalDir: globalDir,
		DockPath:  domain.DockFilePath(globalDir),
		UsagePath: domain.UsageFilePath(globalDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Dock          domain.DockRepository
	Usage         domain.UsageRepository
	Cache         domain.SearchCache
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	AppLogger     domain.Logger

	// Pointer fields
	Registry  *domain.Registry
	AppConfig *domain.Config
	Logger    *slog.Logger
	closer    func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) (*Container, error) {
	globalDir := config.DefaultGlobalDir()
	if globalDir == "" {
		return nil, domain.ErrNoConfigDir
	}
	cfg := newConfig(dir, globalDir)

	// Load app config
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	reg, err := registry.NewLoader(appConfig.Registry.File).Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	dockStore, err := dockstore.NewStore(globalDir)
	if err != nil {
		return nil, err
	}

	cache, err := searchcache.New(appConfig.Launcher.CacheSize)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(appConfig.Log.Level)

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	fileLogger := logging.New(globalDir, level)

	closer := func() error {
		s := cache.Stats()
		fileLogger.Debug("", "searchcache", fmt.Sprintf("%d/%d entries, hit rate %.2f", s.Size, s.MaxSize, s.HitRate()))
		return fileLogger.Close()
	}

	return &Container{
		Dock:          dockStore,
		Usage:         usage.New(cfg.UsagePath),
		Cache:         cache,
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		AppLogger:     fileLogger,
		Registry:      reg,
		AppConfig:     appConfig,
		Logger:        logger,
		closer:        closer,
		Config:        cfg,
	}, nil
}

// Deps groups the dependencies accepted by NewWithDeps.
// Fields are ordered to minimize memory padding.
type Deps struct {
	Dock          domain.DockRepository
	Usage         domain.UsageRepository
	Cache         domain.SearchCache
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	AppLogger     domain.Logger
	Registry      *domain.Registry
	AppConfig     *domain.Config
	Logger        *slog.Logger
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, deps Deps) *Container {
	appConfig := deps.AppConfig
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Dock:          deps.Dock,
		Usage:         deps.Usage,
		Cache:         deps.Cache,
		Clock:         deps.Clock,
		ConfigLoader:  deps.ConfigLoader,
		ConfigManager: deps.ConfigManager,
		AppLogger:     deps.AppLogger,
		Registry:      deps.Registry,
		AppConfig:     appConfig,
		Logger:        deps.Logger,
		Config:        cfg,
	}
}

// Close releases the log files.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// NewDesktop returns an empty window store using the container clock.
func (c *Container) NewDesktop() *desktop.Store {
	return desktop.NewStore(desktop.WithClock(c.Clock))
}

// routerHistoryLimit bounds the visited locations kept for the dashboard.
const routerHistoryLimit = 20

// NewRouter returns a navigator that logs every location change.
func (c *Container) NewRouter() *router.Router {
	return router.New(
		router.WithHistoryLimit(routerHistoryLimit),
		router.WithOnChange(func(from, to string) {
			c.AppLogger.Debug("", "router", fmt.Sprintf("%s -> %s", from, to))
		}),
	)
}

// UseCase factory methods

// SearchAppsUseCase returns a new SearchApps use case.
func (c *Container) SearchAppsUseCase() *usecase.SearchApps {
	return usecase.NewSearchApps(c.Registry, c.Usage, c.Cache, c.AppLogger, c.AppConfig.Launcher)
}

// GetAppUseCase returns a new GetApp use case.
func (c *Container) GetAppUseCase() *usecase.GetApp {
	return usecase.NewGetApp(c.Registry, c.Usage, c.AppLogger)
}

// RecordLaunchUseCase returns a new RecordLaunch use case.
func (c *Container) RecordLaunchUseCase() *usecase.RecordLaunch {
	return usecase.NewRecordLaunch(c.Usage, c.Clock)
}

// ListDockItemsUseCase returns a new ListDockItems use case.
func (c *Container) ListDockItemsUseCase() *usecase.ListDockItems {
	return usecase.NewListDockItems(c.Registry, c.Dock, c.AppLogger, c.AppConfig.Dock)
}

// PinAppUseCase returns a new PinApp use case.
func (c *Container) PinAppUseCase() *usecase.PinApp {
	return usecase.NewPinApp(c.Registry, c.Dock, c.AppLogger, c.AppConfig.Dock)
}

// UnpinAppUseCase returns a new UnpinApp use case.
func (c *Container) UnpinAppUseCase() *usecase.UnpinApp {
	return usecase.NewUnpinApp(c.Registry, c.Dock, c.AppLogger, c.AppConfig.Dock)
}

// MoveDockItemUseCase returns a new MoveDockItem use case.
func (c *Container) MoveDockItemUseCase() *usecase.MoveDockItem {
	return usecase.NewMoveDockItem(c.Registry, c.Dock, c.AppConfig.Dock)
}

// ResetDockUseCase returns a new ResetDock use case.
func (c *Container) ResetDockUseCase() *usecase.ResetDock {
	return usecase.NewResetDock(c.Dock, c.AppLogger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
