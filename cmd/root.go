package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rased",
	Short: "Rased - project report moderation",
	Long: `Review, approve and reject the progress reports companies and contractors
submit for municipal projects, in English or Arabic.

Run without a subcommand to open the interactive dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.config/rased/config.toml)")
	rootCmd.PersistentFlags().String("db", "", "database file (default ~/.config/rased/rased.db)")
}

func Execute() error {
	return rootCmd.Execute()
}
