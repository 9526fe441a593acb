package output

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// TableOptions configures table output.
type TableOptions struct {
	Header   []string
	NoHeader bool
}

// Table renders rows as a borderless table.
type Table struct {
	writer  io.Writer
	options TableOptions
	rows    [][]string
}

// NewTable creates a new table writer.
func NewTable(w io.Writer, opts TableOptions) *Table {
	return &Table{
		writer:  w,
		options: opts,
		rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Render writes the table to the output.
func (t *Table) Render() {
	if len(t.rows) == 0 {
		return
	}

	// CLI style: no borders, no separators, left-aligned
	table := tablewriter.NewTable(t.writer,
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.SeparatorsNone,
				Lines:      tw.LinesNone,
			},
		}),
		tablewriter.WithHeaderAutoFormat(tw.On),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  ", Overwrite: true}),
		tablewriter.WithTrimSpace(tw.On),
	)

	if !t.options.NoHeader && len(t.options.Header) > 0 {
		headers := make([]any, len(t.options.Header))
		for i, h := range t.options.Header {
			headers[i] = strings.ToUpper(h)
		}
		table.Header(headers...)
	}

	_ = table.Bulk(t.rows)
	_ = table.Render()
}
