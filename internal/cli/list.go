package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/output"
	"github.com/inkwellcms/inkwell/internal/parse"
	"github.com/inkwellcms/inkwell/internal/store"
)

var commentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List comments",
	Long: `List comments, newest first, optionally filtered by status and post.`,
	Args: cobra.NoArgs,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runCommentList),
}

var (
	commentListStatus string
	commentListPostID int64
	commentListLimit  int
	commentListFormat string
	commentListFields string
)

func init() {
	commentCmd.AddCommand(commentListCmd)

	commentListCmd.Flags().StringVar(&commentListStatus, "status", "", "Filter by status (approved, hold, spam, trash)")
	commentListCmd.Flags().Int64Var(&commentListPostID, "post-id", 0, "Filter by post id")
	commentListCmd.Flags().IntVar(&commentListLimit, "limit", 0, "Maximum number of results (0 = no limit)")
	commentListCmd.Flags().StringVar(&commentListFormat, "format", "table", "Output format (table, json, yaml)")
	commentListCmd.Flags().StringVar(&commentListFields, "fields", "", "Comma-separated table columns")
}

func runCommentList(app *appctx.App, cmd *cobra.Command, args []string) error {
	opts := store.ListOptions{
		PostID: commentListPostID,
		Limit:  commentListLimit,
	}

	if commentListStatus != "" {
		status, err := domain.ParseStatus(commentListStatus)
		if err != nil {
			return err
		}
		opts.Status = status
	}

	comments, err := app.Store.Comments.List(opts)
	if err != nil {
		return err
	}

	switch commentListFormat {
	case "json":
		data, err := json.MarshalIndent(comments, "", "  ")
		if err != nil {
			return err
		}
		app.Printer.Line("%s", data)
		return nil
	case "yaml":
		data, err := yaml.Marshal(comments)
		if err != nil {
			return err
		}
		fmt.Fprint(app.Printer.Out(), string(data))
		return nil
	case "table":
		// Rendered below
	default:
		return fmt.Errorf("unknown format %q: expected table, json, or yaml", commentListFormat)
	}

	columns := parse.FieldList(commentListFields)
	if columns == nil {
		columns = []string{"id", "post_id", "author", "status", "content"}
	}

	table := output.NewTable(app.Printer.Out(), output.TableOptions{Header: columns})
	for i := range comments {
		row := make([]string, 0, len(columns))
		for _, name := range columns {
			value, ok := comments[i].Field(name)
			if !ok {
				return fmt.Errorf("unknown comment field %q", name)
			}
			if name == "content" {
				value = preview(value, 50)
			}
			row = append(row, value)
		}
		table.AddRow(row...)
	}
	table.Render()

	return nil
}

// preview collapses newlines and truncates long content for table view
func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
