package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type Table struct {
	ColumnWidths map[int]int
	Rows         [][]string
}

func NewTable() *Table {
	return &Table{
		ColumnWidths: map[int]int{},
		Rows:         [][]string{},
	}
}

func (t *Table) AddRow(row []string) {
	t.updateColumnWidths(row)
	t.Rows = append(t.Rows, row)
}

// Print writes the table with the header row in italics and the first
// column in bold.
func (t *Table) Print(w io.Writer) {
	for rownum, row := range t.Rows {
		for i, cell := range row {
			cellStyle := plain
			if rownum == 0 {
				cellStyle = italic
			}
			if rownum > 0 && i == 0 {
				cellStyle = bold
			}

			pad := t.ColumnWidths[i] - utf8.RuneCountInString(cell)
			fmt.Fprintf(w, "%s%s  ", cellStyle.format(cell), strings.Repeat(" ", pad))
		}
		fmt.Fprintln(w)
	}
}

// Private

type style string

const (
	plain  style = ""
	bold   style = "1;34"
	italic style = "3;94"
)

func (s style) format(value string) string {
	if s == plain {
		return value
	}
	return "\033[" + string(s) + "m" + value + "\033[0m"
}

func (t *Table) updateColumnWidths(row []string) {
	for i, cell := range row {
		if n := utf8.RuneCountInString(cell); n > t.ColumnWidths[i] {
			t.ColumnWidths[i] = n
		}
	}
}
