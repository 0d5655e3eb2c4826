// Package control turns touch events into key codes and delivers them to sinks.
package control

import (
	"errors"
	"fmt"

	"github.com/frudas24/swipekeys/internal/geom"
	"github.com/frudas24/swipekeys/internal/gesture"
	"github.com/frudas24/swipekeys/internal/grid"
	"github.com/frudas24/swipekeys/internal/keymap"
	"github.com/pion/logging"
)

// Reference key cell size in surface pixels.
const (
	DefaultCellWidth  = 78.0
	DefaultCellHeight = 54.0
)

// TableSource supplies the keymap used for the next lookup.
type TableSource interface {
	Table() *keymap.Table
}

// ResolverOptions tunes stroke resolution.
type ResolverOptions struct {
	MinSwipeLen float64
	CellWidth   float64
	CellHeight  float64
	// TapPassthrough resolves taps through the tap column of the keymap
	// instead of reporting them to the widget.
	TapPassthrough bool
	Log            logging.LeveledLogger
	// OnOutcome observes how each event sequence ended.
	OnOutcome func(Outcome)
}

// Resolver runs the stroke state machine for one touch sequence at a time.
// It is not safe for concurrent use; events must be delivered serially.
type Resolver struct {
	tracker *gesture.Tracker
	tables  TableSource
	opts    ResolverOptions
	log     logging.LeveledLogger
	pointer int
}

// NewResolver returns an idle resolver reading keymaps from tables.
func NewResolver(tables TableSource, opts ResolverOptions) *Resolver {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	log := opts.Log
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("swipe")
	}
	return &Resolver{
		tracker: gesture.NewTracker(opts.MinSwipeLen),
		tables:  tables,
		opts:    opts,
		log:     log,
	}
}

// Grid returns the key grid for the current table.
func (r *Resolver) Grid() grid.Grid {
	rows, cols := r.tables.Table().Dims()
	return grid.New(r.opts.CellWidth, r.opts.CellHeight, rows, cols)
}

// Tracking reports whether a stroke is in progress.
func (r *Resolver) Tracking() bool {
	return r.tracker.State().Active
}

// Handle dispatches a single touch event.
func (r *Resolver) Handle(inputEnabled bool, ev Event) []Action {
	switch ev.Kind {
	case EventDown:
		return r.HandleDown(inputEnabled, ev.Pointer, ev.Point)
	case EventMove:
		return r.HandleMove(inputEnabled, ev.Pointer, ev.Point)
	case EventUp:
		return r.HandleUp(inputEnabled, ev.Pointer, ev.Point)
	case EventCancel, EventOutside:
		return r.HandleCancel()
	case EventLongPress:
		return r.HandleLongPress(inputEnabled, ev.Key)
	default:
		return nil
	}
}

// HandleDown starts a stroke. A down from another pointer while a stroke is
// in progress is ignored.
func (r *Resolver) HandleDown(inputEnabled bool, pointerID int, p geom.Point) []Action {
	if !inputEnabled {
		r.discard()
		return nil
	}
	if r.Tracking() && pointerID != r.pointer {
		r.log.Debugf("ignoring down from pointer %d while pointer %d is active", pointerID, r.pointer)
		return nil
	}
	r.tracker.Begin(p)
	r.pointer = pointerID
	r.log.Tracef("down at (%.1f,%.1f)", p.X, p.Y)
	return nil
}

// HandleMove observes a stroke in progress. It never emits.
func (r *Resolver) HandleMove(inputEnabled bool, pointerID int, p geom.Point) []Action {
	if !inputEnabled {
		r.discard()
		return nil
	}
	if err := r.tracker.Move(p); err != nil {
		r.log.Debugf("move without down at (%.1f,%.1f)", p.X, p.Y)
		r.report(OutcomeInvalid)
		return nil
	}
	if pointerID == r.pointer {
		r.log.Tracef("move to (%.1f,%.1f)", p.X, p.Y)
	}
	return nil
}

// HandleUp ends the stroke and resolves it against the keymap.
func (r *Resolver) HandleUp(inputEnabled bool, pointerID int, p geom.Point) []Action {
	if !inputEnabled {
		r.discard()
		return nil
	}
	if r.Tracking() && pointerID != r.pointer {
		return nil
	}
	stroke, err := r.tracker.End(p)
	if err != nil {
		r.log.Debugf("up without down at (%.1f,%.1f)", p.X, p.Y)
		r.report(OutcomeInvalid)
		return nil
	}
	return r.resolve(stroke)
}

// HandleCancel discards the stroke in progress without emitting.
func (r *Resolver) HandleCancel() []Action {
	if r.tracker.Cancel() {
		r.log.Debugf("stroke cancelled")
		r.report(OutcomeCancelled)
	}
	return nil
}

// HandleLongPress emits the options request for a long press on the cancel
// key. It does not touch the stroke state.
func (r *Resolver) HandleLongPress(inputEnabled bool, key int32) []Action {
	if !inputEnabled || key != keymap.KeyCancel {
		return nil
	}
	return []Action{{Type: ActOptions, Code: keymap.KeyOptions}}
}

// discard drops a stroke in progress while input is disabled, so a later up
// cannot resolve against a down from before the switch.
func (r *Resolver) discard() {
	if r.tracker.Cancel() {
		r.log.Debugf("stroke discarded: input disabled")
	}
}

// resolve maps a finished stroke to its actions. Swipes are anchored to the
// key under the down point.
func (r *Resolver) resolve(s gesture.Stroke) []Action {
	table := r.tables.Table()
	rows, cols := table.Dims()
	g := grid.New(r.opts.CellWidth, r.opts.CellHeight, rows, cols)
	row, col := g.Cell(s.Down)

	if s.Tap() {
		return r.resolveTap(table, g, row, col, s)
	}

	if s.Vertical {
		r.log.Debugf("vertical stroke resolved to %s", s.Direction)
	}
	dir := s.Direction.Index()
	code, ok, err := table.Lookup(row, col, dir)
	if err != nil {
		r.logLookupError(err, s)
		return nil
	}
	r.log.Debugf("swipe %s d=%.1f key=(%d,%d) code=%d", s.Direction, s.Distance, row, col, code)
	if !ok {
		r.report(OutcomeUnmapped)
		return nil
	}
	r.report(OutcomeSwipe)
	return []Action{{Type: ActCode, Code: code, Row: row, Col: col, Direction: s.Direction}}
}

// resolveTap reports a tap, or resolves it through the tap column when
// passthrough is enabled.
func (r *Resolver) resolveTap(table *keymap.Table, g grid.Grid, row, col int, s gesture.Stroke) []Action {
	if !g.Contains(row, col) {
		r.logLookupError(fmt.Errorf("%w: key (%d,%d) in %dx%d grid", keymap.ErrOutOfRange, row, col, g.Rows, g.Cols), s)
		return nil
	}
	r.log.Debugf("tap d=%.1f key=(%d,%d)", s.Distance, row, col)
	r.report(OutcomeTap)
	if !r.opts.TapPassthrough {
		return []Action{{Type: ActTap, Row: row, Col: col}}
	}
	code, ok, err := table.Lookup(row, col, gesture.None.Index())
	if err != nil || !ok {
		return nil
	}
	return []Action{{Type: ActCode, Code: code, Row: row, Col: col}}
}

// logLookupError records a stroke whose key lies outside the table.
func (r *Resolver) logLookupError(err error, s gesture.Stroke) {
	if errors.Is(err, keymap.ErrOutOfRange) {
		r.log.Warnf("stroke at (%.1f,%.1f) outside key grid: %v", s.Down.X, s.Down.Y, err)
		r.report(OutcomeOutOfRange)
		return
	}
	r.log.Errorf("lookup failed: %v", err)
}

// report forwards an outcome to the observer, if any.
func (r *Resolver) report(o Outcome) {
	if r.opts.OnOutcome != nil {
		r.opts.OnOutcome(o)
	}
}
