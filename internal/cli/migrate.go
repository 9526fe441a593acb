package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: appctx.WithApp(appctx.Options{NeedsDB: true, SkipMigrationCheck: true}, runMigrate),
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(app *appctx.App, cmd *cobra.Command, args []string) error {
	applied, err := app.DB.Migrate()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		app.Printer.Successf("Database is up to date.")
		return nil
	}

	for _, migration := range applied {
		app.Printer.Line("Applied %s", migration)
	}
	app.Printer.Successf("Applied %d migration(s).", len(applied))
	return nil
}
