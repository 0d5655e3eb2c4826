// Package geom provides screen-space point math for touch strokes.
package geom

import "math"

// Point is a touch position in surface pixels. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector from a to p.
func (p Point) Sub(a Point) (dx, dy float64) {
	return p.X - a.X, p.Y - a.Y
}

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx, dy := b.Sub(a)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsVertical reports whether the stroke from a to b has no horizontal
// component, which makes the |dy/dx| ratio undefined.
func IsVertical(a, b Point) bool {
	return b.X == a.X
}

// AngleFromNorth returns the clockwise angle in [0, 2π) of the vector a->b,
// measured from screen-up.
func AngleFromNorth(a, b Point) float64 {
	dx, dy := b.Sub(a)
	if dx == 0 {
		if dy > 0 {
			return math.Pi
		}
		return 0
	}

	raw := math.Atan(math.Abs(dy / dx))
	switch {
	case dx > 0 && dy < 0:
		return math.Pi/2 - raw
	case dx > 0:
		// dy >= 0. Departs from the reference quadrant formula, which sends
		// dy == 0 to 3π/2 (west); a flat stroke to the right is east.
		return math.Pi/2 + raw
	case dy > 0:
		return 3*math.Pi/2 - raw
	default:
		return 3*math.Pi/2 + raw
	}
}
