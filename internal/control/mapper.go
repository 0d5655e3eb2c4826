// Package control turns touch events into key codes and delivers them to sinks.
package control

import (
	"math"

	"github.com/frudas24/swipekeys/internal/geom"
	"github.com/frudas24/swipekeys/internal/grid"
)

// NormToSurface maps normalized client coordinates onto the key grid surface.
// Values are clamped so that 1.0 still lands inside the last row/column.
func NormToSurface(xn, yn float64, g grid.Grid) geom.Point {
	w, h := g.Size()
	return geom.Point{X: normToPixels(xn, w), Y: normToPixels(yn, h)}
}

// normToPixels scales a clamped [0..1] value to [0, span).
func normToPixels(norm float64, span float64) float64 {
	if span <= 0 {
		return 0
	}
	v := clamp01(norm) * span
	if v >= span {
		v = math.Nextafter(span, 0)
	}
	return v
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
