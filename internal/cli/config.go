package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage loomshell configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.
The local .loomshell.toml overrides the global config.toml.
With --global, the local file is ignored.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{
				GlobalOnly: global,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			if !global {
				printConfigSource(w, out.LocalConfig)
			}

			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Show only the global configuration")

	return cmd
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
		return
	}
	_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a commented configuration file template.

By default, creates .loomshell.toml in the current directory.
With --global, creates the global configuration file at ~/.config/loomshell/config.toml.

Error conditions:
- Target file already exists: error (use --force to overwrite)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				Global: global,
				Force:  force,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
