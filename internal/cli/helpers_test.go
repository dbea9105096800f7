package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/testutil"
)

// testContainer bundles a container with the doubles behind it.
type testContainer struct {
	*app.Container
	dock          *testutil.MockDockRepository
	usage         *testutil.MockUsageRepository
	configManager *testutil.MockConfigManager
	configLoader  *testutil.MockConfigLoader
}

func newTestContainer(t *testing.T) *testContainer {
	t.Helper()

	tc := &testContainer{
		dock:          testutil.NewMockDockRepository(),
		usage:         testutil.NewMockUsageRepository(),
		configManager: testutil.NewMockConfigManager(),
		configLoader:  testutil.NewMockConfigLoader(),
	}
	tc.Container = app.NewWithDeps(app.Config{}, app.Deps{
		Dock:          tc.dock,
		Usage:         tc.usage,
		Clock:         &testutil.MockClock{NowTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		ConfigLoader:  tc.configLoader,
		ConfigManager: tc.configManager,
		AppLogger:     &testutil.MockLogger{},
		Registry:      testutil.NewTestRegistry(testutil.SampleApps()...),
		AppConfig:     tc.configLoader.Config,
	})
	return tc
}

// runCommand executes cmd with args and returns stdout.
func runCommand(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
