// Package control turns touch events into key codes and delivers them to sinks.
package control

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/frudas24/swipekeys/internal/geom"
	"github.com/frudas24/swipekeys/internal/session"
	"github.com/gorilla/websocket"
	"github.com/pion/logging"
)

// Server handles websocket control input from the keyboard client.
type Server struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	tables   TableSource
	opts     ResolverOptions
	host     ActionSink
	log      logging.LeveledLogger
	conn     *websocket.Conn
}

// NewServer creates a control websocket server. host may be nil when
// resolved codes should only be returned to the client.
func NewServer(sess *session.Session, tables TableSource, opts ResolverOptions, host ActionSink, log logging.LeveledLogger) *Server {
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("control")
	}
	return &Server{
		session: sess,
		tables:  tables,
		opts:    opts,
		host:    host,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	resolver := s.NewResolver()
	client := NewClientSink(func(reply Reply) error { return s.sendTo(conn, reply) })
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.handleMessage(resolver, client, msg); err != nil {
			s.log.Debugf("control connection closed: %v", err)
			return
		}
	}
}

// NewResolver returns a resolver wired to the server's keymap and session.
func (s *Server) NewResolver() *Resolver {
	opts := s.opts
	if opts.Log == nil {
		opts.Log = s.log
	}
	observer := opts.OnOutcome
	opts.OnOutcome = func(o Outcome) {
		s.session.Record(string(o))
		if observer != nil {
			observer(o)
		}
	}
	return NewResolver(s.tables, opts)
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// sendTo writes a reply to the connection.
func (s *Server) sendTo(conn *websocket.Conn, reply Reply) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(reply)
}

// handleMessage dispatches a single control message.
func (s *Server) handleMessage(resolver *Resolver, client TapSink, msg Message) error {
	if msg.T == "inputEnabled" {
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
			if !*msg.Enabled {
				resolver.HandleCancel()
			}
		}
		return nil
	}

	kind, ok := eventKindFromWire(msg.T)
	if !ok {
		return nil
	}
	ev := Event{
		Kind:    kind,
		Pointer: msg.ID,
		Point:   s.mapPoint(resolver, msg),
		Key:     msg.Code,
	}
	actions := resolver.Handle(s.session.InputEnabled(), ev)
	return s.applyActions(client, actions)
}

// mapPoint converts message coordinates into surface pixels.
func (s *Server) mapPoint(resolver *Resolver, msg Message) geom.Point {
	if msg.Px {
		return geom.Pt(msg.X, msg.Y)
	}
	return NormToSurface(msg.X, msg.Y, resolver.Grid())
}

// applyActions delivers actions to the client and, when configured, the host.
// Client write failures end the connection; host failures are only logged.
func (s *Server) applyActions(client TapSink, actions []Action) error {
	for _, action := range actions {
		if err := applyAction(client, action); err != nil {
			return err
		}
		if s.host == nil || action.Type == ActTap {
			continue
		}
		if err := applyAction(s.host, action); err != nil {
			s.log.Warnf("host delivery of %s failed: %v", action.Type, err)
		}
	}
	return nil
}

// applyAction delivers a single action to a sink.
func applyAction(sink ActionSink, action Action) error {
	switch action.Type {
	case ActCode:
		return sink.OnResolvedCode(action.Code)
	case ActOptions:
		return sink.OnLongPressOptions()
	case ActTap:
		if tap, ok := sink.(TapSink); ok {
			return tap.OnTap(action.Row, action.Col)
		}
		return nil
	default:
		return nil
	}
}
