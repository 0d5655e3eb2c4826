// Package testutil provides recording fakes for control tests.
package testutil

import "github.com/frudas24/swipekeys/internal/wininput"

// Call records a single injected action.
type Call struct {
	Name string
	Text string
}

// FakeInjector implements wininput.Injector and records calls for tests.
type FakeInjector struct {
	Calls []Call
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ wininput.Injector = (*FakeInjector)(nil)

// TypeUnicode records typed text.
func (f *FakeInjector) TypeUnicode(text string) error {
	f.Calls = append(f.Calls, Call{Name: "TypeUnicode", Text: text})
	return f.Err
}

// Enter records an Enter key press.
func (f *FakeInjector) Enter() error {
	f.Calls = append(f.Calls, Call{Name: "Enter"})
	return f.Err
}

// Backspace records a Backspace key press.
func (f *FakeInjector) Backspace() error {
	f.Calls = append(f.Calls, Call{Name: "Backspace"})
	return f.Err
}
