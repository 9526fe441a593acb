package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/parse"
	"github.com/inkwellcms/inkwell/internal/store"
)

// transition describes one status-transition verb. The four verbs share
// one code path; only the handler and messages differ. None of them
// prechecks existence: a missing id surfaces as the store's own failure.
type transition struct {
	verb    string
	short   string
	run     func(*store.CommentStore, int64) (bool, error)
	success string // printf format, comment id
	failure string // printf format, comment id
}

var transitions = []transition{
	{
		verb:    "trash",
		short:   "Move a comment to trash",
		run:     func(cs *store.CommentStore, id int64) (bool, error) { return cs.Trash(id) },
		success: "Trashed comment %d.",
		failure: "could not trash comment %d",
	},
	{
		verb:    "untrash",
		short:   "Restore a comment from trash",
		run:     func(cs *store.CommentStore, id int64) (bool, error) { return cs.Untrash(id) },
		success: "Untrashed comment %d.",
		failure: "could not untrash comment %d",
	},
	{
		verb:    "spam",
		short:   "Mark a comment as spam",
		run:     func(cs *store.CommentStore, id int64) (bool, error) { return cs.Spam(id) },
		success: "Marked comment %d as spam.",
		failure: "could not mark comment %d as spam",
	},
	{
		verb:    "unspam",
		short:   "Unmark a comment as spam",
		run:     func(cs *store.CommentStore, id int64) (bool, error) { return cs.Unspam(id) },
		success: "Unmarked comment %d as spam.",
		failure: "could not unmark comment %d as spam",
	},
}

func init() {
	for _, tr := range transitions {
		commentCmd.AddCommand(newTransitionCmd(tr))
	}
}

func newTransitionCmd(tr transition) *cobra.Command {
	return &cobra.Command{
		Use:   tr.verb + " <id>",
		Short: tr.short,
		Args:  cobra.ExactArgs(1),
		RunE: appctx.WithApp(appctx.DefaultOptions(), func(app *appctx.App, cmd *cobra.Command, args []string) error {
			id, err := parse.ID(args[0])
			if err != nil {
				return err
			}

			ok, err := tr.run(app.Store.Comments, id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf(tr.failure, id)
			}

			app.Printer.Successf(tr.success, id)
			return nil
		}),
	}
}
