package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/parse"
)

var commentRecountCmd = &cobra.Command{
	Use:   "recount <post-id>...",
	Short: "Recount comments for posts",
	Long: `Recalculate the cached approved-comment count of one or more posts.
The cache drifts when comments are inserted or moderated through the
low-level paths.`,
	Args: cobra.MinimumNArgs(1),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentRecount),
}

func init() {
	commentCmd.AddCommand(commentRecountCmd)
}

func runCommentRecount(app *appctx.App, cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		postID, err := parse.ID(arg)
		if err != nil {
			return err
		}

		old, updated, err := app.Store.Posts.Recount(postID)
		if err != nil {
			return err
		}

		if old == updated {
			app.Printer.Successf("Post %d comment count is %d, no change.", postID, updated)
		} else {
			app.Printer.Successf("Updated post %d comment count from %d to %d.", postID, old, updated)
		}
	}

	return nil
}
