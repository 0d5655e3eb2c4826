// Package session holds runtime state shared by the HTTP API and the control socket.
package session

import "sync"

// Outcome names recorded by Record.
const (
	OutcomeTap        = "tap"
	OutcomeSwipe      = "swipe"
	OutcomeUnmapped   = "unmapped"
	OutcomeOutOfRange = "out_of_range"
	OutcomeInvalid    = "invalid"
	OutcomeCancelled  = "cancelled"
)

// Stats counts how touch event sequences ended.
type Stats struct {
	Taps       uint64 `json:"taps"`
	Swipes     uint64 `json:"swipes"`
	Unmapped   uint64 `json:"unmapped"`
	OutOfRange uint64 `json:"outOfRange"`
	Invalid    uint64 `json:"invalid"`
	Cancelled  uint64 `json:"cancelled"`
}

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	AuthRequired  bool
	InputEnabled  bool
	Stats         Stats
}

// Session holds runtime state for the active keyboard client.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	stats         Stats
}

// New returns an initialized session. An empty password disables authentication.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.password == "" {
		return true
	}
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether requests are allowed.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.password == "" || s.authenticated
}

// SetInputEnabled toggles whether strokes produce output.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether strokes produce output.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// Record counts one outcome. Unknown names are ignored.
func (s *Session) Record(outcome string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch outcome {
	case OutcomeTap:
		s.stats.Taps++
	case OutcomeSwipe:
		s.stats.Swipes++
	case OutcomeUnmapped:
		s.stats.Unmapped++
	case OutcomeOutOfRange:
		s.stats.OutOfRange++
	case OutcomeInvalid:
		s.stats.Invalid++
	case OutcomeCancelled:
		s.stats.Cancelled++
	}
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.password == "" || s.authenticated,
		AuthRequired:  s.password != "",
		InputEnabled:  s.inputEnabled,
		Stats:         s.stats,
	}
}
