// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/loomos/loomshell/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// NewTestRegistry builds a registry from the given definitions and panics on error.
func NewTestRegistry(apps ...domain.AppDefinition) *domain.Registry {
	reg, err := domain.NewRegistry(apps)
	if err != nil {
		panic(err)
	}
	return reg
}

// SampleApps returns a small catalog covering every category.
func SampleApps() []domain.AppDefinition {
	noPin := false
	return []domain.AppDefinition{
		{ID: "mail", Title: "Email", Description: "Read and send mail", Path: "/dashboard/mail", Category: domain.CategoryEssentials, Keywords: []string{"inbox", "compose"}},
		{ID: "cal", Title: "Calendar", Description: "Plan your days", Path: "/dashboard/cal", Category: domain.CategoryProductivity, Keywords: []string{"events"}},
		{ID: "pay", Title: "Payments", Description: "Dues and invoices", Path: "/dashboard/payments", Category: domain.CategoryPersonal, Keywords: []string{"billing"}},
		{ID: "docs", Title: "Documents", Description: "Community files", Path: "/dashboard/documents", Category: domain.CategoryCommunity, Keywords: []string{"files"}},
		{ID: "admin", Title: "Admin Panel", Description: "Manage the community", Path: "/dashboard/admin", Category: domain.CategoryAdmin, Keywords: []string{"control"}, RequiresAdmin: true},
		{ID: "store", Title: "App Store", Description: "Browse apps", Path: "/dashboard/marketplace", Category: domain.CategoryCommunity, IsBeta: true, CanPinToDock: &noPin},
		{ID: "prefs", Title: "Settings", Description: "System configuration", Path: "/dashboard/settings", Category: domain.CategorySettings, Keywords: []string{"preferences"}},
	}
}

// MockDockRepository is a test double for domain.DockRepository.
// Fields are ordered to minimize memory padding.
type MockDockRepository struct {
	File      *domain.DockFile
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockDockRepository creates a MockDockRepository with an empty file.
func NewMockDockRepository() *MockDockRepository {
	return &MockDockRepository{
		File: &domain.DockFile{Version: 1, Pinned: []string{}},
	}
}

// Ensure MockDockRepository implements domain.DockRepository interface.
var _ domain.DockRepository = (*MockDockRepository)(nil)

// Load returns a copy of the stored file.
func (m *MockDockRepository) Load() (*domain.DockFile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	f := *m.File
	f.Pinned = append([]string(nil), m.File.Pinned...)
	return &f, nil
}

// Save stores the file.
func (m *MockDockRepository) Save(file *domain.DockFile) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	f := *file
	f.Pinned = append([]string(nil), file.Pinned...)
	m.File = &f
	return nil
}

// MockUsageRepository is a test double for domain.UsageRepository.
// Fields are ordered to minimize memory padding.
type MockUsageRepository struct {
	Usage     domain.UsageMap
	LoadErr   error
	RecordErr error
	LoadCalls int
}

// NewMockUsageRepository creates a MockUsageRepository with no usage.
func NewMockUsageRepository() *MockUsageRepository {
	return &MockUsageRepository{Usage: make(domain.UsageMap)}
}

// Ensure MockUsageRepository implements domain.UsageRepository interface.
var _ domain.UsageRepository = (*MockUsageRepository)(nil)

// Load returns a copy of the recorded usage.
func (m *MockUsageRepository) Load() (domain.UsageMap, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make(domain.UsageMap, len(m.Usage))
	for k, v := range m.Usage {
		out[k] = v
	}
	return out, nil
}

// Record adds one launch.
func (m *MockUsageRepository) Record(appID string, t time.Time) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.Usage.Record(appID, t)
	return nil
}

// LogEntry is one line captured by MockLogger.
type LogEntry struct {
	Level    string
	AppID    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Info records an info entry.
func (m *MockLogger) Info(appID, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "INFO", AppID: appID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(appID, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "DEBUG", AppID: appID, Category: category, Msg: msg})
}

// Warn records a warning entry.
func (m *MockLogger) Warn(appID, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "WARN", AppID: appID, Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(appID, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "ERROR", AppID: appID, Category: category, Msg: msg})
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
	LastForce        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path:   "/work/.loomshell.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/loomshell/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitLocalConfig(force bool) error {
	m.InitLocalCalled = true
	m.LastForce = force
	return m.InitLocalErr
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(force bool) error {
	m.InitGlobalCalled = true
	m.LastForce = force
	return m.InitGlobalErr
}
