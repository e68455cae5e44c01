package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Table represents a simple table for displaying tabular data
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// TableOptions configures table behavior
type TableOptions struct {
	NoColor bool
}

// NewTable creates a new table with the given headers
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
	}

	return &Table{
		writer:  w,
		headers: headers,
		rows:    make([][]string, 0),
		noColor: noColor,
	}
}

// AddRow adds a row to the table. Missing cells render empty; extra cells
// are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added so far
func (t *Table) Len() int {
	return len(t.rows)
}

// Render renders the table to the writer
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = width(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)
	if t.noColor {
		bold.DisableColor()
		gray.DisableColor()
	}

	last := len(t.headers) - 1
	for i, header := range t.headers {
		if i < last {
			bold.Fprint(t.writer, padRight(header, widths[i])+"  ")
		} else {
			bold.Fprint(t.writer, header)
		}
	}
	fmt.Fprintln(t.writer)

	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = strings.Repeat("─", w)
	}
	gray.Fprintln(t.writer, strings.Join(separators, "  "))

	for _, row := range t.rows {
		for i, cell := range row {
			if i < last {
				fmt.Fprint(t.writer, padRight(cell, widths[i])+"  ")
			} else {
				fmt.Fprint(t.writer, cell)
			}
		}
		fmt.Fprintln(t.writer)
	}
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

// padRight pads a string with spaces on the right to reach the target width
func padRight(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// KeyValueTable renders a simple key-value table (2 columns)
type KeyValueTable struct {
	writer  io.Writer
	rows    []kvRow
	noColor bool
}

type kvRow struct {
	key   string
	value string
}

// NewKeyValueTable creates a new key-value table
func NewKeyValueTable(w io.Writer, noColor bool) *KeyValueTable {
	return &KeyValueTable{
		writer:  w,
		rows:    make([]kvRow, 0),
		noColor: noColor,
	}
}

// AddRow adds a key-value pair to the table
func (t *KeyValueTable) AddRow(key, value string) {
	t.rows = append(t.rows, kvRow{key: key, value: value})
}

// Render renders the key-value table
func (t *KeyValueTable) Render() {
	if len(t.rows) == 0 {
		return
	}

	maxKeyWidth := 0
	for _, row := range t.rows {
		if w := width(row.key); w > maxKeyWidth {
			maxKeyWidth = w
		}
	}

	cyan := color.New(color.FgCyan)
	if t.noColor {
		cyan.DisableColor()
	}
	for _, row := range t.rows {
		cyan.Fprint(t.writer, padRight(row.key+":", maxKeyWidth+1))
		fmt.Fprintf(t.writer, " %s\n", row.value)
	}
}

// Divider renders a horizontal divider line
func Divider(w io.Writer, n int, noColor bool) {
	if n == 0 {
		n = 80
	}

	gray := color.New(color.FgHiBlack)
	if noColor {
		gray.DisableColor()
	}
	gray.Fprintln(w, strings.Repeat("─", n))
}

// Header renders a styled header
func Header(w io.Writer, title string, noColor bool) {
	bold := color.New(color.Bold, color.FgCyan)
	if noColor {
		bold.DisableColor()
	}
	bold.Fprintln(w, title)
	Divider(w, width(title), noColor)
}
