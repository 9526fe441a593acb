package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
)

var commentExistsCmd = &cobra.Command{
	Use:   "exists <id>",
	Short: "Check whether a comment exists",
	Args:  cobra.ExactArgs(1),
	RunE:  appctx.WithApp(appctx.DefaultOptions(), runCommentExists),
}

func init() {
	commentCmd.AddCommand(commentExistsCmd)
}

func runCommentExists(app *appctx.App, cmd *cobra.Command, args []string) error {
	comment, err := requireComment(app, args[0])
	if err != nil {
		return err
	}

	app.Printer.Successf("Comment with ID %d exists.", comment.ID)
	return nil
}
