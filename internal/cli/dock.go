package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/usecase"
)

// newDockCommand creates the dock command.
func newDockCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dock",
		Short: "Manage pinned apps",
		Long: `Manage the apps pinned to the dock.

Until an app is pinned, the dock shows the first entries of the catalog.
Pinning or unpinning starts from that default set.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newDockShowCommand(c))
	cmd.AddCommand(newDockPinCommand(c))
	cmd.AddCommand(newDockUnpinCommand(c))
	cmd.AddCommand(newDockMoveCommand(c))
	cmd.AddCommand(newDockResetCommand(c))

	return cmd
}

// newDockShowCommand creates the dock show subcommand.
func newDockShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show pinned apps",
		Long: `Show the pinned apps in dock order.

Output format is tab-separated with columns:
  POS, ID, TITLE`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.ListDockItemsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListDockItemsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Defaults {
				_, _ = fmt.Fprintln(w, "(default dock)")
			}
			printDock(w, out.Pinned)
			return nil
		},
	}
}

// printDock writes the pinned apps as a table.
func printDock(w io.Writer, pinned []*domain.AppDefinition) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "POS\tID\tTITLE")
	for i, a := range pinned {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, a.ID, a.Title)
	}
}

// printPinnedIDs writes the dock order after a change.
func printPinnedIDs(w io.Writer, c *app.Container, ids []string) {
	if len(ids) == 0 {
		_, _ = fmt.Fprintln(w, "Dock reset to defaults")
		return
	}
	apps := make([]*domain.AppDefinition, 0, len(ids))
	for _, id := range ids {
		if a := c.Registry.Get(id); a != nil {
			apps = append(apps, a)
		}
	}
	printDock(w, apps)
}

// newDockPinCommand creates the dock pin subcommand.
func newDockPinCommand(c *app.Container) *cobra.Command {
	var position int

	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin an app to the dock",
		Long: `Pin an app to the dock.

By default the app is appended. Use --position to insert it at a 1-based
position.

Error conditions:
- Unknown app id
- App cannot be pinned
- App already pinned
- Dock full (see [dock] max_pinned)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.PinAppUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.PinAppInput{
				AppID:    args[0],
				Position: position,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Pinned %s\n", args[0])
			printPinnedIDs(w, c, out.Pinned)
			return nil
		},
	}

	cmd.Flags().IntVarP(&position, "position", "p", 0, "1-based dock position (default: append)")

	return cmd
}

// newDockUnpinCommand creates the dock unpin subcommand.
func newDockUnpinCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "unpin <id>",
		Short: "Remove an app from the dock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.UnpinAppUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UnpinAppInput{AppID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Unpinned %s\n", args[0])
			printPinnedIDs(w, c, out.Pinned)
			return nil
		},
	}
}

// newDockMoveCommand creates the dock move subcommand.
func newDockMoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <position>",
		Short: "Move a pinned app to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[1], domain.ErrInvalidPosition)
			}

			uc := c.MoveDockItemUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.MoveDockItemInput{
				AppID: args[0],
				To:    to,
			})
			if err != nil {
				return err
			}

			printPinnedIDs(cmd.OutOrStdout(), c, out.Pinned)
			return nil
		},
	}
}

// newDockResetCommand creates the dock reset subcommand.
func newDockResetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default dock",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.ResetDockUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.ResetDockInput{}); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Dock reset to defaults")
			return nil
		},
	}
}
