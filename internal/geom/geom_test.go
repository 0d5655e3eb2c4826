package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

// TestDistance_SamePointIsZero verifies a point has no distance to itself.
func TestDistance_SamePointIsZero(t *testing.T) {
	p := Pt(12.5, -3)
	if d := Distance(p, p); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

// TestDistance_PythagoreanTriple verifies the Euclidean formula.
func TestDistance_PythagoreanTriple(t *testing.T) {
	if d := Distance(Pt(1, 1), Pt(4, 5)); math.Abs(d-5) > eps {
		t.Fatalf("expected 5, got %v", d)
	}
}

// TestAngleFromNorth_Vertical verifies dx=0 strokes resolve to north or south.
func TestAngleFromNorth_Vertical(t *testing.T) {
	if a := AngleFromNorth(Pt(10, 100), Pt(10, 20)); a != 0 {
		t.Fatalf("expected 0 for straight up, got %v", a)
	}
	if a := AngleFromNorth(Pt(10, 10), Pt(10, 200)); a != math.Pi {
		t.Fatalf("expected π for straight down, got %v", a)
	}
	if a := AngleFromNorth(Pt(3, 3), Pt(3, 3)); a != 0 {
		t.Fatalf("expected 0 for identical points, got %v", a)
	}
}

// TestAngleFromNorth_Quadrants verifies the screen-space quadrant corrections.
func TestAngleFromNorth_Quadrants(t *testing.T) {
	origin := Pt(100, 100)
	cases := []struct {
		name string
		to   Point
		want float64
	}{
		{"up-right", Pt(130, 70), math.Pi / 4},
		{"right", Pt(140, 100), math.Pi / 2},
		{"down-right", Pt(130, 130), 3 * math.Pi / 4},
		{"down-left", Pt(70, 130), 5 * math.Pi / 4},
		{"left", Pt(60, 100), 3 * math.Pi / 2},
		{"up-left", Pt(70, 70), 7 * math.Pi / 4},
	}
	for _, tc := range cases {
		got := AngleFromNorth(origin, tc.to)
		if math.Abs(got-tc.want) > eps {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

// TestAngleFromNorth_Range verifies results stay within [0, 2π).
func TestAngleFromNorth_Range(t *testing.T) {
	origin := Pt(0, 0)
	for deg := 0; deg < 360; deg += 7 {
		rad := float64(deg) * math.Pi / 180
		to := Pt(50*math.Sin(rad), -50*math.Cos(rad))
		a := AngleFromNorth(origin, to)
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %v out of range for %d°", a, deg)
		}
	}
}

// TestIsVertical verifies the degenerate stroke check.
func TestIsVertical(t *testing.T) {
	if !IsVertical(Pt(5, 0), Pt(5, 40)) {
		t.Fatalf("expected vertical stroke")
	}
	if IsVertical(Pt(5, 0), Pt(6, 40)) {
		t.Fatalf("expected non-vertical stroke")
	}
}
