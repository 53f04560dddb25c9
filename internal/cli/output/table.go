package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table writes rows under the given column headers. Text mode renders a box
// drawn table, markdown mode a pipe table.
func (r *Renderer) Table(cols []string, rows [][]string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.markdownTable(cols, rows)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}
	t.Render()
}

func (r *Renderer) markdownTable(cols []string, rows [][]string) {
	r.Printf("| %s |\n", strings.Join(cols, " | "))
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	r.Printf("| %s |\n", strings.Join(seps, " | "))
	for _, row := range rows {
		r.Printf("| %s |\n", strings.Join(row, " | "))
	}
}
