// Package keymap holds the immutable (row, column, direction) to key code table.
package keymap

import (
	"errors"
	"fmt"
)

// Directions is the size of the direction axis: index 0 is the tap column,
// 1..8 are the compass directions N..NW clockwise.
const Directions = 9

// Sentinel marks a cell with no output.
const Sentinel int32 = 0

// Special key codes used by the reference layout.
const (
	// KeyEnter is a newline.
	KeyEnter int32 = 10
	// KeyDelete deletes the character before the cursor.
	KeyDelete int32 = -5
	// KeyCancel is the cancel key; long-pressing it opens the options menu.
	KeyCancel int32 = -3
	// KeyOptions is emitted when the options menu is requested.
	KeyOptions int32 = -100
)

var (
	// ErrOutOfRange is returned when an index falls outside the table.
	ErrOutOfRange = errors.New("keymap: index out of range")
	// ErrInvalidLayout is returned for malformed table definitions.
	ErrInvalidLayout = errors.New("keymap: invalid layout")
)

// Cell holds the codes of one key, indexed by direction index.
type Cell [Directions]int32

// Table is an immutable [rows][cols][Directions] code table.
type Table struct {
	name  string
	rows  int
	cols  int
	cells []Cell
}

// New builds a table from rows of cells. Every row must have the same
// non-zero length. The input is copied.
func New(name string, rows [][]Cell) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 has no keys", ErrInvalidLayout)
	}
	cells := make([]Cell, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d keys, want %d", ErrInvalidLayout, r, len(row), cols)
		}
		cells = append(cells, row...)
	}
	return &Table{name: name, rows: len(rows), cols: cols, cells: cells}, nil
}

// Name returns the layout name.
func (t *Table) Name() string {
	return t.name
}

// Dims returns the table dimensions.
func (t *Table) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// Lookup returns the code stored at (row, col, dir). ok is false when the
// cell holds the sentinel. Indices outside the table return ErrOutOfRange.
func (t *Table) Lookup(row, col, dir int) (code int32, ok bool, err error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols || dir < 0 || dir >= Directions {
		return 0, false, fmt.Errorf("%w: (%d,%d,%d) outside %dx%dx%d", ErrOutOfRange, row, col, dir, t.rows, t.cols, Directions)
	}
	code = t.cells[row*t.cols+col][dir]
	return code, code != Sentinel, nil
}

// Cell returns a copy of the codes at (row, col).
func (t *Table) Cell(row, col int) (Cell, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return Cell{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, row, col, t.rows, t.cols)
	}
	return t.cells[row*t.cols+col], nil
}

// Rows returns a deep copy of the table contents.
func (t *Table) Rows() [][]Cell {
	out := make([][]Cell, t.rows)
	for r := range out {
		out[r] = make([]Cell, t.cols)
		copy(out[r], t.cells[r*t.cols:(r+1)*t.cols])
	}
	return out
}

// Each calls fn for every non-sentinel entry in row-major order.
func (t *Table) Each(fn func(row, col, dir int, code int32)) {
	for i, cell := range t.cells {
		for dir, code := range cell {
			if code != Sentinel {
				fn(i/t.cols, i%t.cols, dir, code)
			}
		}
	}
}
