// Package app wires HTTP, keymap, and control state together.
package app

import (
	"errors"

	"github.com/frudas24/swipekeys/internal/config"
	"github.com/frudas24/swipekeys/internal/control"
	"github.com/frudas24/swipekeys/internal/keymap"
	"github.com/frudas24/swipekeys/internal/session"
	"github.com/pion/logging"
)

// App coordinates the HTTP API and the control websocket server.
type App struct {
	cfg     config.Config
	session *session.Session
	keymaps *keymap.Holder
	control *control.Server
}

// New creates a new application with its dependencies wired. host may be nil
// when resolved codes are only returned to the keyboard client.
func New(cfg config.Config, sess *session.Session, keymaps *keymap.Holder, host control.ActionSink, logs logging.LoggerFactory) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if keymaps == nil {
		return nil, errors.New("keymap holder is required")
	}
	if logs == nil {
		return nil, errors.New("logger factory is required")
	}

	opts := control.ResolverOptions{
		MinSwipeLen:    cfg.MinSwipeLen,
		CellWidth:      cfg.CellWidth,
		CellHeight:     cfg.CellHeight,
		TapPassthrough: cfg.TapPassthrough,
		Log:            logs.NewLogger("swipe"),
	}

	return &App{
		cfg:     cfg,
		session: sess,
		keymaps: keymaps,
		control: control.NewServer(sess, keymaps, opts, host, logs.NewLogger("control")),
	}, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
