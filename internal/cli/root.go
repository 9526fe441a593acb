package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "CLI for managing content in an inkwell site database",
	Long: `inkwell is a command-line tool for operating on an inkwell site's
SQLite database. It currently covers comment moderation: creating,
deleting, approving, spamming, trashing, counting, and inspecting
comments.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to database file (overrides INKWELL_DB_PATH)")
}
