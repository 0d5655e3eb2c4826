// Package control turns touch events into key codes and delivers them to sinks.
package control

import (
	"unicode"

	"github.com/frudas24/swipekeys/internal/gesture"
	"github.com/frudas24/swipekeys/internal/keymap"
	"github.com/frudas24/swipekeys/internal/wininput"
	"github.com/pion/logging"
)

// ActionSink receives resolved output and delivers it to text input.
type ActionSink interface {
	OnResolvedCode(code int32) error
	OnLongPressOptions() error
}

// TapSink additionally receives taps left to the keyboard widget.
type TapSink interface {
	ActionSink
	OnTap(row, col int) error
}

// ClientSink sends output back to the keyboard client.
type ClientSink struct {
	send func(Reply) error
}

// Ensure ClientSink implements TapSink.
var _ TapSink = (*ClientSink)(nil)

// NewClientSink returns a sink writing replies through send.
func NewClientSink(send func(Reply) error) *ClientSink {
	return &ClientSink{send: send}
}

// OnResolvedCode sends a code reply.
func (c *ClientSink) OnResolvedCode(code int32) error {
	return c.send(Reply{T: string(ActCode), Code: code})
}

// OnLongPressOptions sends an options reply.
func (c *ClientSink) OnLongPressOptions() error {
	return c.send(Reply{T: string(ActOptions), Code: keymap.KeyOptions})
}

// OnTap sends a tap reply with the key under the finger.
func (c *ClientSink) OnTap(row, col int) error {
	return c.send(Reply{T: string(ActTap), Row: row, Col: col, Dir: gesture.None.String()})
}

// HostSink types resolved codes into the host's focused window.
type HostSink struct {
	injector wininput.Injector
	log      logging.LeveledLogger
}

// Ensure HostSink implements ActionSink.
var _ ActionSink = (*HostSink)(nil)

// NewHostSink returns a sink backed by injector.
func NewHostSink(injector wininput.Injector, log logging.LeveledLogger) *HostSink {
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("host")
	}
	return &HostSink{injector: injector, log: log}
}

// OnResolvedCode translates a key code into keyboard input.
func (h *HostSink) OnResolvedCode(code int32) error {
	switch {
	case code == keymap.KeyEnter:
		return h.injector.Enter()
	case code == keymap.KeyDelete:
		return h.injector.Backspace()
	case code > 0 && unicode.IsPrint(rune(code)):
		return h.injector.TypeUnicode(string(rune(code)))
	default:
		h.log.Debugf("host: no keystroke for code %d", code)
		return nil
	}
}

// OnLongPressOptions has no host-side effect; the client shows the menu.
func (h *HostSink) OnLongPressOptions() error {
	h.log.Infof("options menu requested")
	return nil
}
