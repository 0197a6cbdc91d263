// Package table lays out plain-text columns using terminal cell widths.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column configures one column. Max of zero means unbounded; wider cells
// are truncated with an ellipsis.
type Column struct {
	Align Alignment
	Max   int
}

const gap = "  "

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	cols := make([]Column, len(alignments))
	for i, a := range alignments {
		cols[i] = Column{Align: a}
	}
	return FormatColumns(rows, cols)
}

// FormatColumns is Format with per-column width limits. Rows may be ragged;
// missing cells render empty.
func FormatColumns(rows [][]string, cols []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	cells := make([][]string, len(rows))
	widths := make([]int, colCount)
	for i, row := range rows {
		cells[i] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			if c < len(cols) && cols[c].Max > 0 && runewidth.StringWidth(cell) > cols[c].Max {
				cell = runewidth.Truncate(cell, cols[c].Max, "…")
			}
			cells[i][c] = cell
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			right := c < len(cols) && cols[c].Align == AlignRight
			if right {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
			if !right && c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = b.String()
	}
	return out
}
