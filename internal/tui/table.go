package tui

import (
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"

	"visitglobe/internal/visited"
)

// refreshVisitedTable rebuilds the table rows from the visited set.
func (m *Model) refreshVisitedTable() {
	entries := make([]visited.Entry, 0, len(m.set))
	for _, e := range m.set {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Country", Width: 24},
		{Title: "ID", Width: 6},
		{Title: "Image", Width: 24},
	}
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), e.Name, e.ID, e.Image})
	}
	// clear rows first so the column change never sees a mismatched row
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
