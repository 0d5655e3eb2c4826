// Package control turns touch events into key codes and delivers them to sinks.
package control

import "github.com/frudas24/swipekeys/internal/gesture"

// ActionType identifies the kind of output produced by a stroke.
type ActionType string

const (
	// ActCode delivers a resolved key code.
	ActCode ActionType = "code"
	// ActTap reports a tap on a key; the keyboard widget handles it itself.
	ActTap ActionType = "tap"
	// ActOptions requests the options menu.
	ActOptions ActionType = "options"
)

// Action describes a single output of the resolver.
type Action struct {
	Type      ActionType
	Code      int32
	Row       int
	Col       int
	Direction gesture.Direction
}

// Outcome classifies how a touch event sequence ended.
type Outcome string

const (
	// OutcomeTap is a stroke shorter than the swipe threshold.
	OutcomeTap Outcome = "tap"
	// OutcomeSwipe is a swipe that resolved to a key code.
	OutcomeSwipe Outcome = "swipe"
	// OutcomeUnmapped is a swipe onto a sentinel cell.
	OutcomeUnmapped Outcome = "unmapped"
	// OutcomeOutOfRange is a stroke that started outside the key grid.
	OutcomeOutOfRange Outcome = "out_of_range"
	// OutcomeInvalid is a move or up event without a preceding down.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeCancelled is a stroke discarded by cancel or outside events.
	OutcomeCancelled Outcome = "cancelled"
)
