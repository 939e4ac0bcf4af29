package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
)

var contractorCmd = &cobra.Command{
	Use:     "contractor",
	Short:   "Manage your submitted progress reports",
	Aliases: []string{"c"},
}

var contractorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reports and the sample reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		lang := e.lang.Lang()

		all := contractor.Open(e.store, e.log).All()
		out := cmd.OutOrStdout()
		if len(all) == 0 {
			fmt.Fprintln(out, i18n.T(lang, "contractor.empty"))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			i18n.T(lang, "col.id"),
			i18n.T(lang, "col.project"),
			i18n.T(lang, "col.period"),
			i18n.T(lang, "col.progress"),
			i18n.T(lang, "col.status"),
			i18n.T(lang, "col.created"))
		for _, r := range all {
			id := r.ID
			if r.IsMock {
				id += " (" + i18n.T(lang, "contractor.mock") + ")"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\t%s\n",
				id, r.ProjectName, r.Period, r.ProgressPercent, r.Status.Label(lang), r.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()

		s := contractor.Summarize(all)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d total, %d pending, mean %.1f%%, median %.1f%%\n",
			s.Count, s.Pending, s.MeanProgress, s.MedianProgress)
		return nil
	},
}

var contractorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a new progress report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		project, _ := cmd.Flags().GetString("project")
		period, _ := cmd.Flags().GetString("period")
		progress, _ := cmd.Flags().GetFloat64("progress")
		summary, _ := cmd.Flags().GetString("summary")
		if period == "" {
			period = time.Now().Format("2006-01")
		}

		r, err := contractor.Open(e.store, e.log).Create(contractor.Draft{
			ProjectName: project,
			Period:      period,
			Progress:    progress,
			Summary:     summary,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s (%s, %d%%)\n",
			i18n.T(e.lang.Lang(), "contractor.created"), r.ProjectName, r.Period, r.ProgressPercent)
		fmt.Fprintf(cmd.OutOrStdout(), "  ID: %s\n", r.ID)
		return nil
	},
}

var contractorDeleteCmd = &cobra.Command{
	Use:   "delete <report-id>",
	Short: "Delete one of your reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if !contractor.Open(e.store, e.log).Delete(args[0]) {
			return fmt.Errorf("report %s not found or is a sample report", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s\n", i18n.T(e.lang.Lang(), "contractor.deleted"), args[0])
		return nil
	},
}

var contractorClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all of your reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		contractor.Open(e.store, e.log).Reset()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", i18n.T(e.lang.Lang(), "contractor.cleared"))
		return nil
	},
}

var contractorRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Simulate review decisions on pending reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		n := contractor.Open(e.store, e.log).RefreshStatuses(contractor.NewRoller(e.cfg.Contractor.Seed))
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", i18n.Tf(e.lang.Lang(), "contractor.refreshed", n))
		return nil
	},
}

func init() {
	contractorAddCmd.Flags().String("project", "", "project name (required)")
	contractorAddCmd.Flags().String("period", "", "reporting period YYYY-MM (default current month)")
	contractorAddCmd.Flags().Float64("progress", 0, "progress percent, clamped to 0-100")
	contractorAddCmd.Flags().String("summary", "", "progress summary (required)")

	contractorCmd.AddCommand(contractorListCmd, contractorAddCmd, contractorDeleteCmd, contractorClearCmd, contractorRefreshCmd)
	rootCmd.AddCommand(contractorCmd)
}
