package diagram

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders rows under header as a bordered table
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)

	for _, row := range rows {
		if err := table.Append(toAny(row)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
