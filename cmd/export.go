package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/export"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/review"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reports as CSV or JSON",
	Long: `Export the review queue, the project catalogue or your contractor reports.
--query filters reviews and projects; --status and --type narrow projects.
Output goes to stdout unless --out is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		lang := e.lang.Lang()

		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		source, _ := cmd.Flags().GetString("source")
		query, _ := cmd.Flags().GetString("query")
		out, _ := cmd.Flags().GetString("out")

		var write func(io.Writer) error
		var toFile func(string) error
		switch source {
		case "reviews":
			board := review.NewSeededBoard(e.cfg.Review.PageSize)
			board.Search(query)
			rows := board.Filtered()
			if format == export.FormatJSON {
				write = func(w io.Writer) error { return export.WriteReportsJSON(w, rows, lang) }
				toFile = func(p string) error { return export.ReportsToJSON(rows, lang, p) }
			} else {
				write = func(w io.Writer) error { return export.WriteReportsCSV(w, rows, lang) }
				toFile = func(p string) error { return export.ReportsToCSV(rows, lang, p) }
			}
		case "projects":
			catalog, err := filteredCatalog(cmd, e.cfg.Review.PageSize)
			if err != nil {
				return err
			}
			rows := catalog.Filtered()
			if format == export.FormatJSON {
				write = func(w io.Writer) error { return export.WriteProjectsJSON(w, rows, lang) }
				toFile = func(p string) error { return export.ProjectsToJSON(rows, lang, p) }
			} else {
				write = func(w io.Writer) error { return export.WriteProjectsCSV(w, rows, lang) }
				toFile = func(p string) error { return export.ProjectsToCSV(rows, lang, p) }
			}
		case "contractor":
			rows := contractor.Open(e.store, e.log).All()
			if format == export.FormatJSON {
				write = func(w io.Writer) error { return export.WriteContractorJSON(w, rows, lang) }
				toFile = func(p string) error { return export.ContractorToJSON(rows, lang, p) }
			} else {
				write = func(w io.Writer) error { return export.WriteContractorCSV(w, rows, lang) }
				toFile = func(p string) error { return export.ContractorToCSV(rows, lang, p) }
			}
		default:
			return fmt.Errorf("unknown source %q (want reviews, projects or contractor)", source)
		}

		if out == "" {
			return write(cmd.OutOrStdout())
		}
		if err := toFile(out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s\n", i18n.Tf(lang, "export.done", out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "csv", "output format (csv or json)")
	exportCmd.Flags().StringP("source", "s", "reviews", "what to export (reviews, projects or contractor)")
	exportCmd.Flags().StringP("query", "q", "", "filter reviews or projects before exporting")
	exportCmd.Flags().String("status", "", "project status filter")
	exportCmd.Flags().String("type", "", "project type filter")
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
