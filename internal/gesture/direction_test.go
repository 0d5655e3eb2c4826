package gesture

import (
	"math"
	"testing"
)

// TestClassify_CompassPoints verifies each compass angle lands in its own sector.
func TestClassify_CompassPoints(t *testing.T) {
	want := []Direction{N, NE, E, SE, S, SW, W, NW}
	for i, dir := range want {
		angle := float64(i) * math.Pi / 4
		if got := Classify(angle); got != dir {
			t.Fatalf("angle %v: expected %v, got %v", angle, dir, got)
		}
	}
}

// TestClassify_HalfOpenBoundary verifies boundaries belong to the upper sector.
func TestClassify_HalfOpenBoundary(t *testing.T) {
	if got := Classify(math.Nextafter(math.Pi/8, 0)); got != N {
		t.Fatalf("expected N just below π/8, got %v", got)
	}
	if got := Classify(math.Pi / 8); got != NE {
		t.Fatalf("expected NE at π/8, got %v", got)
	}
}

// TestClassify_EveryBoundaryIsHalfOpen verifies the last float below each
// sector bound stays in the lower sector.
func TestClassify_EveryBoundaryIsHalfOpen(t *testing.T) {
	cases := []struct {
		bound float64
		below Direction
		at    Direction
	}{
		{math.Pi / 8, N, NE},
		{3 * math.Pi / 8, NE, E},
		{5 * math.Pi / 8, E, SE},
		{7 * math.Pi / 8, SE, S},
		{9 * math.Pi / 8, S, SW},
		{11 * math.Pi / 8, SW, W},
		{13 * math.Pi / 8, W, NW},
		{15 * math.Pi / 8, NW, N},
	}
	for _, tc := range cases {
		if got := Classify(math.Nextafter(tc.bound, 0)); got != tc.below {
			t.Fatalf("just below %v: expected %v, got %v", tc.bound, tc.below, got)
		}
		if got := Classify(tc.bound); got != tc.at {
			t.Fatalf("at %v: expected %v, got %v", tc.bound, tc.at, got)
		}
	}
}

// TestClassify_WrapsNearFullTurn verifies angles just below 2π are north.
func TestClassify_WrapsNearFullTurn(t *testing.T) {
	if got := Classify(2*math.Pi - 0.01); got != N {
		t.Fatalf("expected N, got %v", got)
	}
	if got := Classify(2*math.Pi - math.Pi/8 - 0.01); got != NW {
		t.Fatalf("expected NW, got %v", got)
	}
}

// TestClassify_Periodic verifies classify(θ) == classify(θ + 2π) away from boundaries.
func TestClassify_Periodic(t *testing.T) {
	for deg := 1; deg < 360; deg += 3 {
		if deg%45 == 22 || deg%45 == 23 {
			continue
		}
		theta := float64(deg) * math.Pi / 180
		if a, b := Classify(theta), Classify(theta+2*math.Pi); a != b {
			t.Fatalf("%d°: %v != %v", deg, a, b)
		}
		if a, b := Classify(theta), Classify(theta-2*math.Pi); a != b {
			t.Fatalf("%d° negative: %v != %v", deg, a, b)
		}
	}
}

// TestClassify_NonFinite verifies malformed angles do not panic.
func TestClassify_NonFinite(t *testing.T) {
	if got := Classify(math.NaN()); got != N {
		t.Fatalf("expected N for NaN, got %v", got)
	}
	if got := Classify(math.Inf(1)); got != N {
		t.Fatalf("expected N for +Inf, got %v", got)
	}
}

// TestIndex_RoundTrip verifies the explicit direction/index mapping.
func TestIndex_RoundTrip(t *testing.T) {
	all := []Direction{None, N, NE, E, SE, S, SW, W, NW}
	for want, dir := range all {
		if got := dir.Index(); got != want {
			t.Fatalf("%v: expected index %d, got %d", dir, want, got)
		}
		back, ok := DirectionFromIndex(want)
		if !ok || back != dir {
			t.Fatalf("index %d: expected %v, got %v", want, dir, back)
		}
	}
	if _, ok := DirectionFromIndex(9); ok {
		t.Fatalf("expected index 9 to be rejected")
	}
}

// TestParseDirection verifies names round-trip through String.
func TestParseDirection(t *testing.T) {
	for _, dir := range []Direction{None, N, NE, E, SE, S, SW, W, NW} {
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Fatalf("%v: got %v, %v", dir, got, err)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}
