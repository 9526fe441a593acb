package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/parse"
	"github.com/inkwellcms/inkwell/internal/store"
)

var commentCreateCmd = &cobra.Command{
	Use:   "create [field=value ...]",
	Short: "Create a comment",
	Long: `Create a new comment from field=value pairs. post_id is required and
must reference an existing post.

The insert is the low-level one: no moderation notifications fire and
nothing is written to the event log. The new comment defaults to the
hold status unless a status field is given.`,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentCreate),
}

var commentCreatePorcelain bool

func init() {
	commentCmd.AddCommand(commentCreateCmd)

	commentCreateCmd.Flags().BoolVar(&commentCreatePorcelain, "porcelain", false, "Output only the new comment id")
}

func runCommentCreate(app *appctx.App, cmd *cobra.Command, args []string) error {
	fields, err := parse.Fields(args)
	if err != nil {
		return err
	}

	if _, ok := fields.Get("post_id"); !ok {
		return fmt.Errorf("post_id field is required")
	}

	var params store.InsertParams
	if err := fieldInserts(fields, &params); err != nil {
		return err
	}

	// The referenced post must exist before anything is written
	if _, err := app.Store.Posts.Get(params.PostID); err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return fmt.Errorf("post %d not found", params.PostID)
		}
		return err
	}

	res, err := app.Store.Comments.Insert(params)
	if err != nil {
		return fmt.Errorf("could not create comment: %w", err)
	}
	if res == nil || res.ID == 0 {
		return fmt.Errorf("could not create comment")
	}

	if commentCreatePorcelain {
		app.Printer.Line("%d", res.ID)
	} else {
		app.Printer.Successf("Created comment %d.", res.ID)
	}

	return nil
}
