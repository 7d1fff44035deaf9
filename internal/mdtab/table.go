// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdtab lays out Markdown pipe tables.
package mdtab

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table does layout of Markdown pipe tables. The first row is the
// header row; the separator row is generated by Format.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	cells []cell
	cols  int

	align []Align

	curRow, curCol int
}

type cell struct {
	row, col int
	value    string
}

// An Align is the alignment of a column, as expressed in the
// separator row.
type Align int

const (
	Left Align = iota
	Center
	Right
)

func (a Align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	default:
		return s + strings.Repeat(" ", n)
	case Center:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case Right:
		return strings.Repeat(" ", n) + s
	}
}

func (a Align) rule(w int) string {
	switch a {
	default:
		return strings.Repeat("-", w+2)
	case Center:
		return ":" + strings.Repeat("-", w) + ":"
	case Right:
		return strings.Repeat("-", w+1) + ":"
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	t.curCol = 0
	return t
}

// Col skips to column "col" in table t. Columns are numbered starting
// at 0. Skipped cells are rendered empty.
func (t *Table) Col(col int) *Table {
	if col < t.curCol {
		panic(fmt.Sprintf("cannot move from column %d to earlier column %d", t.curCol, col))
	}
	t.curCol = col
	return t
}

// Cell adds a cell at the current row and column. Pipe characters in
// value are escaped.
func (t *Table) Cell(value string) *Table {
	value = strings.ReplaceAll(value, "|", `\|`)
	t.cells = append(t.cells, cell{t.curRow, t.curCol, value})
	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// SetAlign sets the alignment of column col. Columns are left
// aligned by default.
func (t *Table) SetAlign(col int, a Align) {
	for len(t.align) < col+1 {
		t.align = append(t.align, Left)
	}
	t.align[col] = a
}

// minWidth is the narrowest column Format produces, so every
// separator has at least three dashes.
const minWidth = 3

// Format lays out table t and writes it to w. An empty table writes
// nothing.
func (t *Table) Format(w io.Writer) error {
	if len(t.cells) == 0 {
		return nil
	}
	align := func(col int) Align {
		if col < len(t.align) {
			return t.align[col]
		}
		return Left
	}

	// Compute column widths.
	ws := make([]int, t.cols)
	for i := range ws {
		ws[i] = minWidth
	}
	for _, c := range t.cells {
		if n := utf8.RuneCountInString(c.value); n > ws[c.col] {
			ws[c.col] = n
		}
	}

	// Lay the cells out as a dense grid.
	sort.SliceStable(t.cells, func(i, j int) bool {
		if t.cells[i].row != t.cells[j].row {
			return t.cells[i].row < t.cells[j].row
		}
		return t.cells[i].col < t.cells[j].col
	})
	grid := make([][]string, t.cells[len(t.cells)-1].row+1)
	for i := range grid {
		grid[i] = make([]string, t.cols)
	}
	for _, c := range t.cells {
		grid[c.row][c.col] = c.value
	}

	var sb strings.Builder
	writeRow := func(vals []string) {
		for col, v := range vals {
			sb.WriteString("| ")
			sb.WriteString(align(col).pad(v, ws[col]))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	writeRow(grid[0])
	for col, w := range ws {
		sb.WriteString("|")
		sb.WriteString(align(col).rule(w))
	}
	sb.WriteString("|\n")
	for _, row := range grid[1:] {
		writeRow(row)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
