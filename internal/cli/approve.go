package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
)

var commentApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a comment",
	Long: `Approve a comment. The comment must exist. The status change fires
moderation notifications (it is recorded in the event log).`,
	Args: cobra.ExactArgs(1),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentApprove),
}

var commentUnapproveCmd = &cobra.Command{
	Use:   "unapprove <id>",
	Short: "Unapprove a comment",
	Long: `Move a comment back to the hold status. The comment must exist. The
status change fires moderation notifications.`,
	Args: cobra.ExactArgs(1),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentUnapprove),
}

func init() {
	commentCmd.AddCommand(commentApproveCmd)
	commentCmd.AddCommand(commentUnapproveCmd)
}

func runCommentApprove(app *appctx.App, cmd *cobra.Command, args []string) error {
	return setModerationStatus(app, args[0], domain.StatusApproved, "Approved comment %d.")
}

func runCommentUnapprove(app *appctx.App, cmd *cobra.Command, args []string) error {
	return setModerationStatus(app, args[0], domain.StatusHold, "Unapproved comment %d.")
}

// setModerationStatus prechecks existence, then sets the status with
// notifications enabled. Unlike the transition verbs, a missing id
// fails before any store mutation is called.
func setModerationStatus(app *appctx.App, rawArg string, status domain.Status, success string) error {
	comment, err := requireComment(app, rawArg)
	if err != nil {
		return err
	}

	if err := app.Store.Comments.SetStatus(comment.ID, status, true); err != nil {
		return err
	}

	app.Printer.Successf(success, comment.ID)
	return nil
}
