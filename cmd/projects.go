package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Short:   "Browse the project catalogue",
	Long:    `Search the project catalogue by name, ID or location and narrow it by status and type.`,
	Aliases: []string{"p"},
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		lang, err := langFlag(cmd, e)
		if err != nil {
			return err
		}
		catalog, err := filteredCatalog(cmd, e.cfg.Review.PageSize)
		if err != nil {
			return err
		}
		page, _ := cmd.Flags().GetInt("page")
		catalog.GotoPage(page)

		out := cmd.OutOrStdout()
		rows := catalog.Page()
		if len(rows) == 0 {
			fmt.Fprintln(out, i18n.T(lang, "project.empty"))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i18n.T(lang, "col.id"),
			i18n.T(lang, "col.project"),
			i18n.T(lang, "col.location"),
			i18n.T(lang, "col.type"),
			i18n.T(lang, "col.status"),
			i18n.T(lang, "col.progress"),
			i18n.T(lang, "col.priority"))
		for _, p := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d%%\t%s\n",
				p.ID, p.DisplayName(lang), p.LocationName(lang), p.Type.Label(lang),
				p.Status.Label(lang), p.Progress, p.Priority.Label(lang))
		}
		w.Flush()

		start, end, total := catalog.Range()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s  (%s)\n",
			i18n.Tf(lang, "review.showing", start, end, total),
			i18n.Tf(lang, "review.page", catalog.CurrentPage(), catalog.TotalPages()))
		return nil
	},
}

var projectsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the project catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		lang, err := langFlag(cmd, e)
		if err != nil {
			return err
		}
		s := project.Summarize(project.SeedProjects())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%d\n", i18n.T(lang, "dashboard.projects"), s.Total)
		fmt.Fprintf(w, "%s\t%d\n", i18n.T(lang, "dashboard.active"), s.Active)
		fmt.Fprintf(w, "%s\t%.1f%%\n", i18n.T(lang, "dashboard.completion"), s.CompletionRate)
		fmt.Fprintf(w, "%s\t%d\n", i18n.T(lang, "dashboard.team"), s.TeamMembers)
		fmt.Fprintf(w, "%s\t%d\n", i18n.T(lang, "dashboard.atRisk"), s.AtRisk)
		for _, st := range project.Statuses {
			fmt.Fprintf(w, "  %s\t%d\n", st.Label(lang), s.ByStatus[st])
		}
		return w.Flush()
	},
}

// filteredCatalog builds a catalog narrowed by --query, --status and --type.
func filteredCatalog(cmd *cobra.Command, pageSize int) (*project.Catalog, error) {
	query, _ := cmd.Flags().GetString("query")
	statusFlag, _ := cmd.Flags().GetString("status")
	typeFlag, _ := cmd.Flags().GetString("type")

	status, err := project.ParseStatus(statusFlag)
	if err != nil {
		return nil, err
	}
	typ, err := project.ParseType(typeFlag)
	if err != nil {
		return nil, err
	}

	c := project.NewSeededCatalog(pageSize)
	c.Search(query)
	c.FilterStatus(status)
	c.FilterType(typ)
	return c, nil
}

func init() {
	projectsListCmd.Flags().StringP("query", "q", "", "filter by name, ID or location")
	projectsListCmd.Flags().String("status", "", "filter by status (planning, in progress, review, completed)")
	projectsListCmd.Flags().String("type", "", "filter by type (residential, commercial, industrial, infrastructure, environmental)")
	projectsListCmd.Flags().IntP("page", "p", 1, "page number")
	projectsListCmd.Flags().String("lang", "", "output language (en or ar)")
	projectsStatsCmd.Flags().String("lang", "", "output language (en or ar)")

	projectsCmd.AddCommand(projectsListCmd, projectsStatsCmd)
	rootCmd.AddCommand(projectsCmd)
}
