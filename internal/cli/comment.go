package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/parse"
	"github.com/inkwellcms/inkwell/internal/store"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comments",
	Long: `Create, moderate, and inspect comments in the site database.
Moderation follows the usual lifecycle: hold, approved, spam, trash.`,
}

func init() {
	rootCmd.AddCommand(commentCmd)
}

// requireComment looks up a comment by its raw command-line argument.
// A missing comment fails naming the argument exactly as given, before
// any mutation is attempted.
func requireComment(app *appctx.App, rawArg string) (*domain.Comment, error) {
	// Lenient parse: a non-numeric argument simply never matches
	id, _ := strconv.ParseInt(strings.TrimSpace(rawArg), 10, 64)

	comment, err := app.Store.Comments.Get(id)
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nil, fmt.Errorf("comment with ID %s does not exist", rawArg)
	}
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// fieldInserts maps command-line fields onto insert parameters.
// Unknown field names are rejected so typos do not vanish silently.
func fieldInserts(fm *parse.FieldMap, params *store.InsertParams) error {
	for _, f := range fm.All() {
		switch f.Name {
		case "post_id":
			id, err := parse.ID(f.Value)
			if err != nil {
				return fmt.Errorf("invalid post_id: %w", err)
			}
			params.PostID = id
		case "parent_id":
			id, err := parse.ID(f.Value)
			if err != nil {
				return fmt.Errorf("invalid parent_id: %w", err)
			}
			params.ParentID = id
		case "author":
			params.Author = f.Value
		case "author_email":
			params.AuthorEmail = f.Value
		case "author_url":
			params.AuthorURL = f.Value
		case "author_ip":
			params.AuthorIP = f.Value
		case "content":
			params.Content = f.Value
		case "status":
			status, err := domain.ParseStatus(f.Value)
			if err != nil {
				return err
			}
			params.Status = status
		case "created_at":
			params.CreatedAt = f.Value
		default:
			return fmt.Errorf("unknown comment field %q", f.Name)
		}
	}
	return nil
}

// fieldUpdates maps command-line fields onto update parameters.
func fieldUpdates(fm *parse.FieldMap) (store.UpdateParams, error) {
	var params store.UpdateParams

	for _, f := range fm.All() {
		switch f.Name {
		case "post_id":
			id, err := parse.ID(f.Value)
			if err != nil {
				return params, fmt.Errorf("invalid post_id: %w", err)
			}
			params.PostID = &id
		case "parent_id":
			id, err := parse.ID(f.Value)
			if err != nil {
				return params, fmt.Errorf("invalid parent_id: %w", err)
			}
			params.ParentID = &id
		case "author":
			v := f.Value
			params.Author = &v
		case "author_email":
			v := f.Value
			params.AuthorEmail = &v
		case "author_url":
			v := f.Value
			params.AuthorURL = &v
		case "author_ip":
			v := f.Value
			params.AuthorIP = &v
		case "content":
			v := f.Value
			params.Content = &v
		case "status":
			status, err := domain.ParseStatus(f.Value)
			if err != nil {
				return params, err
			}
			params.Status = &status
		default:
			return params, fmt.Errorf("unknown comment field %q", f.Name)
		}
	}

	return params, nil
}
