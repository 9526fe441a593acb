package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
)

var commentLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recent approved comment",
	Long: `Show the most recently approved comment. By default a compact field
set is printed; --full prints every field.

With --id only the comment id is printed and the process exits with a
non-zero status. Scripts in the wild depend on that exit code, so it
stays.`,
	Args: cobra.NoArgs,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentLast),
}

var (
	commentLastID   bool
	commentLastFull bool
)

func init() {
	commentCmd.AddCommand(commentLastCmd)

	commentLastCmd.Flags().BoolVar(&commentLastID, "id", false, "Output only the comment id")
	commentLastCmd.Flags().BoolVar(&commentLastFull, "full", false, "Output all comment fields")
}

func runCommentLast(app *appctx.App, cmd *cobra.Command, args []string) error {
	comments, err := app.Store.Comments.Recent(domain.StatusApproved, 1)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		return fmt.Errorf("no approved comments found")
	}
	comment := comments[0]

	if commentLastID {
		app.Printer.Line("%d", comment.ID)
		return &SilentExit{Code: 1}
	}

	app.Printer.Headerf("Last comment:")
	printCommentFields(app, &comment, commentLastFull)
	return nil
}

// printCommentFields prints label/value lines for a comment, either the
// compact field subset or every field.
func printCommentFields(app *appctx.App, comment *domain.Comment, full bool) {
	names := domain.CompactFields
	if full {
		names = domain.Fields
	}

	for _, name := range names {
		value, _ := comment.Field(name)
		app.Printer.Line("%-16s%s", name+":", value)
	}
}
