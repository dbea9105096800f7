// Package cli provides the command-line interface for loomshell.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/domain"
)

// Command group IDs.
const (
	groupSetup   = "setup"
	groupDesktop = "desktop"
)

// launchTUIFunc is a function variable for launching the desktop, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for loomshell.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "loomshell",
		Short: "loomOS desktop shell for the terminal",
		Long: `loomshell is the loomOS desktop shell rendered in the terminal.

Running it without a subcommand opens the desktop: a launcher for the
app catalog, one fullscreen app at a time, a carousel of minimized
apps that can be swiped away, and a dock of pinned apps.

The subcommands inspect the catalog and edit the dock and configuration
without opening the desktop.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupDesktop, Title: "Desktop Commands:"},
	)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	appsCmd := newAppsCommand(c)
	appsCmd.GroupID = groupDesktop

	dockCmd := newDockCommand(c)
	dockCmd.GroupID = groupDesktop

	root.AddCommand(
		configCmd,
		appsCmd,
		dockCmd,
	)

	return root
}

// requireContainer returns an error when the command needs state the
// process could not set up.
func requireContainer(c *app.Container) error {
	if c == nil {
		return domain.ErrNoConfigDir
	}
	return nil
}
