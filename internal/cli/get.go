package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/parse"
)

var commentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a comment's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  appctx.WithApp(appctx.DefaultOptions(), runCommentGet),
}

var (
	commentGetFormat string
	commentGetFields string
)

func init() {
	commentCmd.AddCommand(commentGetCmd)

	commentGetCmd.Flags().StringVar(&commentGetFormat, "format", "plain", "Output format (plain, json, yaml)")
	commentGetCmd.Flags().StringVar(&commentGetFields, "fields", "", "Comma-separated fields to include (plain format)")
}

func runCommentGet(app *appctx.App, cmd *cobra.Command, args []string) error {
	id, err := parse.ID(args[0])
	if err != nil {
		return err
	}

	comment, err := app.Store.Comments.Get(id)
	if err != nil {
		return err
	}

	switch commentGetFormat {
	case "json":
		data, err := json.MarshalIndent(comment, "", "  ")
		if err != nil {
			return err
		}
		app.Printer.Line("%s", data)
	case "yaml":
		data, err := yaml.Marshal(comment)
		if err != nil {
			return err
		}
		fmt.Fprint(app.Printer.Out(), string(data))
	case "plain":
		names := parse.FieldList(commentGetFields)
		if names == nil {
			names = domain.Fields
		}
		for _, name := range names {
			value, ok := comment.Field(name)
			if !ok {
				return fmt.Errorf("unknown comment field %q", name)
			}
			app.Printer.Line("%-16s%s", name+":", value)
		}
	default:
		return fmt.Errorf("unknown format %q: expected plain, json, or yaml", commentGetFormat)
	}

	return nil
}
