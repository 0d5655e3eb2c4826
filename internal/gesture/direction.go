// Package gesture classifies single touch strokes into taps and compass swipes.
package gesture

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the compass direction of a swipe. None marks a tap.
type Direction int

const (
	// None is a tap: the stroke was too short to carry a direction.
	None Direction = iota
	// N is a swipe toward the top of the surface.
	N
	// NE is a swipe up and to the right.
	NE
	// E is a swipe to the right.
	E
	// SE is a swipe down and to the right.
	SE
	// S is a swipe toward the bottom of the surface.
	S
	// SW is a swipe down and to the left.
	SW
	// W is a swipe to the left.
	W
	// NW is a swipe up and to the left.
	NW
)

const (
	sectorOffset = math.Pi / 8
	fullTurn     = 2 * math.Pi
)

// sectors lists compass directions clockwise starting at north.
var sectors = [8]Direction{N, NE, E, SE, S, SW, W, NW}

// sectorBounds holds the lower bound (2k+1)·π/8 of sectors NE..NW and, last,
// the bound where north starts again. Angles are compared against them unshifted.
var sectorBounds = [8]float64{
	sectorOffset,
	3 * math.Pi / 8,
	5 * math.Pi / 8,
	7 * math.Pi / 8,
	9 * math.Pi / 8,
	11 * math.Pi / 8,
	13 * math.Pi / 8,
	15 * math.Pi / 8,
}

// Classify quantizes a clockwise-from-north angle in radians into one of the
// eight compass sectors. Sectors are π/4 wide, centered on each compass point,
// and include their lower bound only.
func Classify(angle float64) Direction {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return N
	}
	a := math.Mod(angle, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	for k := len(sectorBounds) - 1; k >= 0; k-- {
		if a >= sectorBounds[k] {
			return sectors[(k+1)%len(sectors)]
		}
	}
	return N
}

// Index returns the keymap table index for d: 0 for None, 1..8 for N..NW.
func (d Direction) Index() int {
	switch d {
	case N:
		return 1
	case NE:
		return 2
	case E:
		return 3
	case SE:
		return 4
	case S:
		return 5
	case SW:
		return 6
	case W:
		return 7
	case NW:
		return 8
	default:
		return 0
	}
}

// DirectionFromIndex is the inverse of Direction.Index.
func DirectionFromIndex(idx int) (Direction, bool) {
	switch idx {
	case 0:
		return None, true
	case 1:
		return N, true
	case 2:
		return NE, true
	case 3:
		return E, true
	case 4:
		return SE, true
	case 5:
		return S, true
	case 6:
		return SW, true
	case 7:
		return W, true
	case 8:
		return NW, true
	default:
		return None, false
	}
}

// String returns the lowercase compass name, or "tap" for None.
func (d Direction) String() string {
	switch d {
	case None:
		return "tap"
	case N:
		return "n"
	case NE:
		return "ne"
	case E:
		return "e"
	case SE:
		return "se"
	case S:
		return "s"
	case SW:
		return "sw"
	case W:
		return "w"
	case NW:
		return "nw"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts the names produced by String, case-insensitively.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tap", "none":
		return None, nil
	case "n":
		return N, nil
	case "ne":
		return NE, nil
	case "e":
		return E, nil
	case "se":
		return SE, nil
	case "s":
		return S, nil
	case "sw":
		return SW, nil
	case "w":
		return W, nil
	case "nw":
		return NW, nil
	default:
		return None, fmt.Errorf("unknown direction %q", name)
	}
}
