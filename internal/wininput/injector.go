// Package wininput types resolved keys into the focused Windows window.
package wininput

// Injector defines the keyboard operations used by the host sink.
type Injector interface {
	TypeUnicode(text string) error
	Enter() error
	Backspace() error
}
