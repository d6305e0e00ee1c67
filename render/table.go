package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table is a plain-text table with optional section headings.
type Table struct {
	Headers []string
	rows    []row
}

type row struct {
	cells   []string
	section string // non-empty for a section heading
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	for len(cells) < len(t.Headers) {
		cells = append(cells, "")
	}
	t.rows = append(t.rows, row{cells: cells[:len(t.Headers)]})
}

// AddSection starts a new titled group of rows.
func (t *Table) AddSection(title string) {
	t.rows = append(t.rows, row{section: title})
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range t.rows {
		for i, cell := range r.cells {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes the table to w. Columns are separated by two spaces; when
// the table is wider than maxWidth the first column is truncated.
func (t *Table) Render(w io.Writer, maxWidth int) error {
	if len(t.Headers) == 0 {
		return nil
	}

	widths := t.columnWidths()
	total := 0
	for _, cw := range widths {
		total += cw + 2
	}
	total -= 2
	if maxWidth > 0 && total > maxWidth {
		widths[0] -= total - maxWidth
		if widths[0] < 4 {
			widths[0] = 4
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		for i, cell := range cells {
			cell = Truncate(cell, widths[i])
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)+2))
		}
		b.WriteString("\n")
	}

	writeLine(t.Headers)
	for _, r := range t.rows {
		if r.section != "" {
			b.WriteString("\n")
			b.WriteString(Truncate(r.section, maxWidth))
			b.WriteString("\n")
			continue
		}
		writeLine(r.cells)
	}

	_, err := fmt.Fprint(w, b.String())
	return err
}

// Truncate shortens s to at most width runes, marking the cut with an
// ellipsis. A non-positive width leaves s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
