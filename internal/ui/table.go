package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
}

// Row is a slice of cell values.
type Row []string

// Table renders a lipgloss-styled table. Rows whose index is in Marked are
// highlighted (used for the active network / connector).
type Table struct {
	Columns []Column
	Rows    []Row
	Marked  map[int]bool
}

// NewTable creates a new table.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, Marked: map[int]bool{}}
}

// AddRow appends a row. marked highlights it.
func (t *Table) AddRow(r Row, marked bool) {
	if marked {
		t.Marked[len(t.Rows)] = true
	}
	t.Rows = append(t.Rows, r)
}

// Render returns the full table as a string. Cells are padded by hand so
// column widths stay exact regardless of lipgloss width handling.
func (t *Table) Render() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)

	pad := func(s string, width int) string {
		if len(s) >= width {
			return s[:width]
		}
		return s + strings.Repeat(" ", width-len(s))
	}

	var cells []string
	for _, col := range t.Columns {
		cells = append(cells, headerStyle.Render(pad(col.Title, col.Width)))
	}
	sb.WriteString(strings.Join(cells, " ") + "\n")

	cells = cells[:0]
	for _, col := range t.Columns {
		cells = append(cells, StyleMeta.Render(strings.Repeat("-", col.Width)))
	}
	sb.WriteString(strings.Join(cells, " ") + "\n")

	for i, row := range t.Rows {
		cells = cells[:0]
		style := cellStyle
		if t.Marked[i] {
			style = StyleSuccess
		}
		for j, col := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			cells = append(cells, style.Render(pad(val, col.Width)))
		}
		sb.WriteString(strings.Join(cells, " ") + "\n")
	}
	return sb.String()
}

// KeyValueBlock renders key-value pairs in a bordered box.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title) + "\n")
	}
	for _, p := range pairs {
		sb.WriteString("  " + StyleMeta.Render(padR(p[0]+":", 22)) + " " + StyleValue.Render(p[1]) + "\n")
	}
	return StyleBorder.Render(sb.String())
}
