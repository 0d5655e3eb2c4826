package gesture

import (
	"errors"

	"github.com/frudas24/swipekeys/internal/geom"
)

// DefaultMinSwipeLen is the stroke length below which a stroke is a tap.
const DefaultMinSwipeLen = 25.0

// ErrInvalidTransition is returned for move/up events without a prior down.
var ErrInvalidTransition = errors.New("gesture: no stroke in progress")

// StrokeState is the state held between touch-down and touch-up.
type StrokeState struct {
	Down   geom.Point
	Active bool
}

// Stroke is a completed down/up pair.
type Stroke struct {
	Down      geom.Point
	Up        geom.Point
	Distance  float64
	Direction Direction
	// Vertical is set when the stroke had no horizontal component and its
	// direction was resolved without the |dy/dx| ratio.
	Vertical bool
}

// Tap reports whether the stroke was too short to be a swipe.
func (s Stroke) Tap() bool {
	return s.Direction == None
}

// Tracker owns the state of the one stroke in progress.
type Tracker struct {
	minSwipeLen float64
	state       StrokeState
}

// NewTracker returns an idle tracker. Non-positive thresholds fall back to
// DefaultMinSwipeLen.
func NewTracker(minSwipeLen float64) *Tracker {
	if minSwipeLen <= 0 {
		minSwipeLen = DefaultMinSwipeLen
	}
	return &Tracker{minSwipeLen: minSwipeLen}
}

// MinSwipeLen returns the tap/swipe threshold.
func (t *Tracker) MinSwipeLen() float64 {
	return t.minSwipeLen
}

// State returns a copy of the current stroke state.
func (t *Tracker) State() StrokeState {
	return t.state
}

// Begin starts a stroke at p, replacing any stroke in progress.
func (t *Tracker) Begin(p geom.Point) {
	t.state = StrokeState{Down: p, Active: true}
}

// Move observes an intermediate point. It never changes state.
func (t *Tracker) Move(p geom.Point) error {
	_ = p
	if !t.state.Active {
		return ErrInvalidTransition
	}
	return nil
}

// End finishes the stroke at p and returns to idle.
func (t *Tracker) End(p geom.Point) (Stroke, error) {
	if !t.state.Active {
		return Stroke{}, ErrInvalidTransition
	}
	down := t.state.Down
	t.state = StrokeState{}
	return Evaluate(down, p, t.minSwipeLen), nil
}

// Cancel discards the stroke in progress and reports whether there was one.
func (t *Tracker) Cancel() bool {
	active := t.state.Active
	t.state = StrokeState{}
	return active
}

// Evaluate classifies a down/up pair against the given threshold.
func Evaluate(down, up geom.Point, minSwipeLen float64) Stroke {
	s := Stroke{
		Down:     down,
		Up:       up,
		Distance: geom.Distance(down, up),
	}
	if s.Distance < minSwipeLen {
		return s
	}
	s.Vertical = geom.IsVertical(down, up)
	s.Direction = Classify(geom.AngleFromNorth(down, up))
	return s
}
