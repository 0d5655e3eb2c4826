package keymap

import "sync/atomic"

// Holder publishes the current table. Tables are immutable, so readers can
// keep using a table they loaded while a newer one is stored.
type Holder struct {
	current atomic.Pointer[Table]
}

// NewHolder returns a holder serving t, or the default layout when t is nil.
func NewHolder(t *Table) *Holder {
	h := &Holder{}
	h.Store(t)
	return h
}

// Table returns the current table.
func (h *Holder) Table() *Table {
	return h.current.Load()
}

// Store replaces the current table. A nil table restores the default layout.
func (h *Holder) Store(t *Table) {
	if t == nil {
		t = Default()
	}
	h.current.Store(t)
}
