package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/parse"
)

var commentStatusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Print a comment's status",
	Args:  cobra.ExactArgs(1),
	RunE:  appctx.WithApp(appctx.DefaultOptions(), runCommentStatus),
}

func init() {
	commentCmd.AddCommand(commentStatusCmd)
}

func runCommentStatus(app *appctx.App, cmd *cobra.Command, args []string) error {
	id, err := parse.ID(args[0])
	if err != nil {
		return err
	}

	status, found, err := app.Store.Comments.GetStatus(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("could not check status of comment %d", id)
	}

	app.Printer.Line("%s", app.Printer.StyledStatus(string(status)))
	return nil
}
