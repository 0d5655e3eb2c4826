// Package control turns touch events into key codes and delivers them to sinks.
package control

import "github.com/frudas24/swipekeys/internal/geom"

// EventKind is the action of a host touch event.
type EventKind int

const (
	// EventDown starts a stroke.
	EventDown EventKind = iota + 1
	// EventMove is an intermediate touch position.
	EventMove
	// EventUp ends a stroke.
	EventUp
	// EventCancel aborts a stroke.
	EventCancel
	// EventOutside reports movement outside the keyboard surface.
	EventOutside
	// EventLongPress reports a long press on a key.
	EventLongPress
)

// Event is a single touch event in surface pixel space.
type Event struct {
	Kind    EventKind
	Pointer int
	Point   geom.Point
	// Key is the code of the long-pressed key for EventLongPress.
	Key int32
}

// eventKindFromWire maps protocol message types to event kinds.
func eventKindFromWire(t string) (EventKind, bool) {
	switch t {
	case "down":
		return EventDown, true
	case "move":
		return EventMove, true
	case "up":
		return EventUp, true
	case "cancel":
		return EventCancel, true
	case "outside":
		return EventOutside, true
	case "longpress":
		return EventLongPress, true
	default:
		return 0, false
	}
}
