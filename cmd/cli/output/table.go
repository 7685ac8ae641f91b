package output

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// JSONFlag is the persistent flag that switches every command to JSON output.
const JSONFlag = "json"

// RenderTable prints a pretty table to w. A non-empty footer is rendered
// under the rows.
func RenderTable(w io.Writer, headers []string, rows [][]interface{}, footer ...interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := table.Row{}
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}
	if len(footer) > 0 {
		t.AppendFooter(table.Row(footer))
	}

	t.Render()
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WantJSON reports whether --json was given to cmd or one of its parents.
func WantJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool(JSONFlag)
	return err == nil && v
}
