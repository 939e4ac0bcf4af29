package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/review"
)

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Short:   "List and moderate project reports",
	Long:    `List, approve and reject submitted project reports. Changes apply to this session only.`,
	Aliases: []string{"r"},
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of reports",
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
		query, _ := cmd.Flags().GetString("query")
		page, _ := cmd.Flags().GetInt("page")

		board := review.NewSeededBoard(e.cfg.Review.PageSize)
		board.Search(query)
		board.GotoPage(page)

		out := cmd.OutOrStdout()
		rows := board.Page()
		if len(rows) == 0 {
			fmt.Fprintln(out, i18n.T(lang, "review.empty"))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			i18n.T(lang, "col.id"),
			i18n.T(lang, "col.company"),
			i18n.T(lang, "col.project"),
			i18n.T(lang, "col.period"),
			i18n.T(lang, "col.submitted"),
			i18n.T(lang, "col.status"))
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.CompanyName(lang), r.ProjectName(lang), r.Period, r.SubmittedAt, r.Status.Label(lang))
		}
		w.Flush()

		start, end, total := board.Range()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s  (%s)\n",
			i18n.Tf(lang, "review.showing", start, end, total),
			i18n.Tf(lang, "review.page", board.CurrentPage(), board.TotalPages()))
		return nil
	},
}

var reportsApproveCmd = &cobra.Command{
	Use:   "approve <report-id>",
	Short: "Approve a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decide(cmd, args[0], review.StatusApproved)
	},
}

var reportsRejectCmd = &cobra.Command{
	Use:   "reject <report-id>",
	Short: "Reject a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decide(cmd, args[0], review.StatusRejected)
	},
}

var reportsNotesCmd = &cobra.Command{
	Use:   "notes <report-id> <text>",
	Short: "Set reviewer notes on a report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		board := review.NewSeededBoard(e.cfg.Review.PageSize)
		if _, ok := board.Store().Get(args[0]); !ok {
			return fmt.Errorf("report %s not found", args[0])
		}

		board.OpenReview(args[0])
		board.EditNotes(args[0], args[1])
		board.CloseReview()

		r, _ := board.Store().Get(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s\n", r.ID, r.Notes)
		return nil
	},
}

// decide applies status to id through a review session, the same path the
// detail panel uses.
func decide(cmd *cobra.Command, id string, status review.Status) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	lang := e.lang.Lang()

	board := review.NewSeededBoard(e.cfg.Review.PageSize)
	before, ok := board.Store().Get(id)
	if !ok {
		return fmt.Errorf("report %s not found", id)
	}

	board.OpenReview(id)
	if status == review.StatusApproved {
		board.ApproveOpen()
	} else {
		board.RejectOpen()
	}

	after, _ := board.Store().Get(id)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %s: %s → %s\n",
		after.ID, after.ProjectName(lang), before.Status.Label(lang), after.Status.Label(lang))
	return nil
}

// langFlag returns --lang when given, else the session language. It is not
// persisted.
func langFlag(cmd *cobra.Command, e *env) (i18n.Lang, error) {
	v, _ := cmd.Flags().GetString("lang")
	if v == "" {
		return e.lang.Lang(), nil
	}
	if !i18n.Valid(v) {
		return "", fmt.Errorf("unsupported language %q (want en or ar)", v)
	}
	return i18n.Lang(v), nil
}

func init() {
	reportsListCmd.Flags().StringP("query", "q", "", "filter by company, project, period or status")
	reportsListCmd.Flags().IntP("page", "p", 1, "page number")
	reportsListCmd.Flags().String("lang", "", "output language (en or ar)")

	reportsCmd.AddCommand(reportsListCmd, reportsApproveCmd, reportsRejectCmd, reportsNotesCmd)
	rootCmd.AddCommand(reportsCmd)
}
