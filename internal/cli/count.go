package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/parse"
)

var commentCountCmd = &cobra.Command{
	Use:   "count [<post-id>]",
	Short: "Count comments by status",
	Long: `Print the number of comments per status, either site-wide or for a
single post. The cumulative total always prints last.`,
	Args: cobra.MaximumNArgs(1),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentCount),
}

func init() {
	commentCmd.AddCommand(commentCountCmd)
}

func runCommentCount(app *appctx.App, cmd *cobra.Command, args []string) error {
	var postID int64
	if len(args) == 1 {
		id, err := parse.ID(args[0])
		if err != nil {
			return err
		}
		postID = id
	}

	summary, err := app.Store.Comments.Count(postID)
	if err != nil {
		return err
	}

	// Known statuses first in their display order, any other keys the
	// store returns after them, the total strictly last.
	printed := map[string]bool{domain.TotalKey: true}
	for _, status := range domain.Statuses {
		name := string(status)
		if n, ok := summary[name]; ok {
			app.Printer.Line("%-17s%d", name+":", n)
			printed[name] = true
		}
	}

	var rest []string
	for name := range summary {
		if !printed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		app.Printer.Line("%-17s%d", name+":", summary[name])
	}

	app.Printer.Line("%-17s%d", domain.TotalKey+":", summary[domain.TotalKey])
	return nil
}
