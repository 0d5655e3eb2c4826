// Package grid quantizes keyboard surface coordinates into key cells.
package grid

import (
	"math"

	"github.com/frudas24/swipekeys/internal/geom"
)

// Grid partitions the keyboard surface into fixed-size cells.
type Grid struct {
	CellWidth  float64
	CellHeight float64
	Rows       int
	Cols       int
}

// New returns a grid with the given cell size and dimensions.
func New(cellWidth, cellHeight float64, rows, cols int) Grid {
	return Grid{CellWidth: cellWidth, CellHeight: cellHeight, Rows: rows, Cols: cols}
}

// Cell returns the row and column under p. The result is not clamped: points
// left of or above the surface yield negative indices and points past the
// last cell yield indices >= Rows/Cols.
func (g Grid) Cell(p geom.Point) (row, col int) {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return -1, -1
	}
	row = int(math.Floor(p.Y / g.CellHeight))
	col = int(math.Floor(p.X / g.CellWidth))
	return row, col
}

// Contains reports whether (row, col) addresses a cell of the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows && col < g.Cols
}

// Center returns the surface point at the middle of a cell.
func (g Grid) Center(row, col int) geom.Point {
	return geom.Point{
		X: float64(col)*g.CellWidth + g.CellWidth/2,
		Y: float64(row)*g.CellHeight + g.CellHeight/2,
	}
}

// Size returns the surface width and height covered by the grid.
func (g Grid) Size() (w, h float64) {
	return float64(g.Cols) * g.CellWidth, float64(g.Rows) * g.CellHeight
}
