package session

import "testing"

// TestAuthenticate_Success verifies successful authentication.
func TestAuthenticate_Success(t *testing.T) {
	s := New("secret")
	if !s.Authenticate("secret") {
		t.Fatalf("expected authentication to succeed")
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
}

// TestAuthenticate_Fail verifies failed authentication.
func TestAuthenticate_Fail(t *testing.T) {
	s := New("secret")
	if s.Authenticate("nope") {
		t.Fatalf("expected authentication to fail")
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected unauthenticated state")
	}
}

// TestNoPassword_AlwaysAuthenticated verifies dev mode skips authentication.
func TestNoPassword_AlwaysAuthenticated(t *testing.T) {
	s := New("")
	if !s.IsAuthenticated() {
		t.Fatalf("expected open session")
	}
	if snap := s.Snapshot(); snap.AuthRequired {
		t.Fatalf("expected auth not required: %+v", snap)
	}
}

// TestLogout verifies logout clears auth state.
func TestLogout(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	s.Logout()
	if s.IsAuthenticated() {
		t.Fatalf("expected unauthenticated state")
	}
}

// TestInputEnabled_Toggle verifies input enabled toggle.
func TestInputEnabled_Toggle(t *testing.T) {
	s := New("secret")
	s.SetInputEnabled(false)
	if s.InputEnabled() {
		t.Fatalf("expected input disabled")
	}
	s.SetInputEnabled(true)
	if !s.InputEnabled() {
		t.Fatalf("expected input enabled")
	}
}

// TestRecord_CountsOutcomes verifies outcome counters.
func TestRecord_CountsOutcomes(t *testing.T) {
	s := New("secret")
	for _, o := range []string{OutcomeTap, OutcomeTap, OutcomeSwipe, OutcomeUnmapped, OutcomeOutOfRange, OutcomeInvalid, OutcomeCancelled, "bogus"} {
		s.Record(o)
	}
	want := Stats{Taps: 2, Swipes: 1, Unmapped: 1, OutOfRange: 1, Invalid: 1, Cancelled: 1}
	if got := s.Snapshot().Stats; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestSnapshot verifies snapshot content.
func TestSnapshot(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	s.SetInputEnabled(false)
	snap := s.Snapshot()
	if !snap.Authenticated || !snap.AuthRequired || snap.InputEnabled {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
