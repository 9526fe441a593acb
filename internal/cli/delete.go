package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/parse"
)

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a comment",
	Long: `Delete a comment. Without --force the comment moves to trash; with
--force it is removed from the database permanently.`,
	Args: cobra.ExactArgs(1),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentDelete),
}

var commentDeleteForce bool

func init() {
	commentCmd.AddCommand(commentDeleteCmd)

	commentDeleteCmd.Flags().BoolVar(&commentDeleteForce, "force", false, "Skip trash and delete permanently")
}

func runCommentDelete(app *appctx.App, cmd *cobra.Command, args []string) error {
	id, err := parse.ID(args[0])
	if err != nil {
		return err
	}

	ok, err := app.Store.Comments.Delete(id, commentDeleteForce)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("could not delete comment %d", id)
	}

	app.Printer.Successf("Deleted comment %d.", id)
	return nil
}
