package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/domain"
	"github.com/loomos/loomshell/internal/usecase"
)

// newAppsCommand creates the apps command.
func newAppsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Query    string
		Category string
		Sort     string
		Search   string
	}

	cmd := &cobra.Command{
		Use:   "apps",
		Short: "List apps in the catalog",
		Long: `List the apps the launcher offers.

The query matches titles, descriptions, keywords and category ids the
same way the launcher search field does. Without flags the configured
search and sort modes apply.

Output format is tab-separated with columns:
  ID, TITLE, CATEGORY, PATH, FLAGS

Examples:
  # Every app in catalog order
  loomshell apps

  # Productivity apps matching "cal", most used first
  loomshell apps --query cal --category productivity --sort frequent

  # Fuzzy matching
  loomshell apps --query clndr --search fuzzy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			category, err := domain.ParseCategory(opts.Category)
			if err != nil {
				return fmt.Errorf("%q: %w", opts.Category, err)
			}
			uc := c.SearchAppsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SearchAppsInput{
				Query:    opts.Query,
				Category: category,
				Sort:     domain.SortMode(opts.Sort),
				Search:   opts.Search,
			})
			if err != nil {
				return err
			}

			if len(out.Apps) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No apps found")
				return nil
			}
			printApps(cmd.OutOrStdout(), out.Apps)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Filter by free text")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category (essentials, personal, community, productivity, admin, settings)")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "Sort mode (default, alphabetical, recent, frequent, category)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search mode (substring, fuzzy)")

	cmd.AddCommand(newAppsShowCommand(c))

	return cmd
}

// printApps writes apps as a table.
func printApps(w io.Writer, apps []*domain.AppDefinition) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPATH\tFLAGS")
	for _, a := range apps {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Title, a.Category, a.Path, appFlags(a))
	}
}

// appFlags returns the markers shown in the FLAGS column.
func appFlags(a *domain.AppDefinition) string {
	var flags []string
	if a.IsNew {
		flags = append(flags, "new")
	}
	if a.IsBeta {
		flags = append(flags, "beta")
	}
	if a.RequiresAdmin {
		flags = append(flags, "admin")
	}
	if !a.Pinnable() {
		flags = append(flags, "no-dock")
	}
	return strings.Join(flags, ",")
}

// newAppsShowCommand creates the apps show subcommand.
func newAppsShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show app details",
		Long: `Show the catalog entry of one app together with its launch statistics.

Examples:
  loomshell apps show calendar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.GetAppUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GetAppInput{AppID: args[0]})
			if err != nil {
				return err
			}
			printAppDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// printAppDetails writes one app in detail.
func printAppDetails(w io.Writer, out *usecase.GetAppOutput) {
	a := out.App

	_, _ = fmt.Fprintf(w, "# %s (%s)\n\n", a.Title, a.ID)
	if a.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", a.Description)
	}

	_, _ = fmt.Fprintf(w, "Category: %s\n", a.Category.Label())
	_, _ = fmt.Fprintf(w, "Path: %s\n", a.Path)
	if a.Icon != "" {
		_, _ = fmt.Fprintf(w, "Icon: %s\n", a.Icon)
	}
	if len(a.Keywords) > 0 {
		_, _ = fmt.Fprintf(w, "Keywords: [%s]\n", strings.Join(a.Keywords, ", "))
	}
	if flags := appFlags(a); flags != "" {
		_, _ = fmt.Fprintf(w, "Flags: %s\n", flags)
	}

	if !out.HasUsage {
		_, _ = fmt.Fprintln(w, "Launches: 0")
		return
	}
	_, _ = fmt.Fprintf(w, "Launches: %d\n", out.Usage.Count)
	_, _ = fmt.Fprintf(w, "Last used: %s\n", out.Usage.LastUsed.Format(time.RFC3339))
}
