package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/project"
	"github.com/sadopc/rased/internal/review"
	"github.com/sadopc/rased/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long:  `Launch the interactive dashboard for reviewing reports and submitting contractor updates.`,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := e.watchLanguage(ctx); err != nil {
		e.log.Warn("config watch disabled", zap.Error(err))
	}

	exportDir, err := os.UserHomeDir()
	if err != nil {
		exportDir = "."
	}

	app := tui.NewApp(tui.Deps{
		Store:       e.store,
		Lang:        e.lang,
		Board:       review.NewSeededBoard(e.cfg.Review.PageSize),
		Projects:    project.NewSeededCatalog(e.cfg.Review.PageSize),
		Contractors: contractor.Open(e.store, e.log),
		Roller:      contractor.NewRoller(e.cfg.Contractor.Seed),
		Log:         e.log,
		ExportDir:   exportDir,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
