package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/parse"
)

var commentUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value ...>",
	Short: "Update a comment's fields",
	Long: `Update one or more fields of an existing comment. The change is
recorded in the event log.`,
	Args: cobra.MinimumNArgs(2),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentUpdate),
}

func init() {
	commentCmd.AddCommand(commentUpdateCmd)
}

func runCommentUpdate(app *appctx.App, cmd *cobra.Command, args []string) error {
	id, err := parse.ID(args[0])
	if err != nil {
		return err
	}

	fields, err := parse.Fields(args[1:])
	if err != nil {
		return err
	}
	if fields.Len() == 0 {
		return fmt.Errorf("at least one field=value pair is required")
	}

	params, err := fieldUpdates(fields)
	if err != nil {
		return err
	}

	if err := app.Store.Comments.Update(id, params); err != nil {
		return err
	}

	app.Printer.Successf("Updated comment %d.", id)
	return nil
}
