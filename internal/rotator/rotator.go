// Package rotator cycles through a fixed list of entries and exposes the
// two-entry window a carousel displays.
//
// A Rotator is plain state with no internal locking; Session wraps one with
// a scoped auto-advance timer and serializes every mutation.
package rotator

import (
	"errors"
	"fmt"
)

// WindowSize is the number of consecutive entries a carousel shows at once.
const WindowSize = 2

// ErrEmpty is returned when a rotator is built over an empty list.
var ErrEmpty = errors.New("rotator requires at least one entry")

// Rotator holds the current position over an immutable list of entries.
type Rotator[T any] struct {
	items []T
	index int
}

// New builds a rotator positioned at index 0. The list is copied so later
// changes to the caller's slice never leak into rotation order.
func New[T any](items []T) (*Rotator[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	owned := make([]T, len(items))
	copy(owned, items)
	return &Rotator[T]{items: owned}, nil
}

// Len returns the number of entries.
func (r *Rotator[T]) Len() int {
	return len(r.items)
}

// Index returns the current position.
func (r *Rotator[T]) Index() int {
	return r.index
}

// Items returns a copy of the entries in rotation order.
func (r *Rotator[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Next advances one position, wrapping to 0 after the last entry.
func (r *Rotator[T]) Next() {
	r.index = (r.index + 1) % len(r.items)
}

// Previous retreats one position, wrapping to the last entry from 0.
func (r *Rotator[T]) Previous() {
	n := len(r.items)
	r.index = (r.index - 1 + n) % n
}

// JumpTo moves to an absolute position. Callers must pass 0 <= i < Len();
// anything else is a programming error and panics.
func (r *Rotator[T]) JumpTo(i int) {
	if i < 0 || i >= len(r.items) {
		panic(fmt.Sprintf("rotator: jump index %d out of range [0,%d)", i, len(r.items)))
	}
	r.index = i
}

// VisibleWindow returns the current entry followed by the next one,
// wrapping at the end. With a single entry both slots hold it.
func (r *Rotator[T]) VisibleWindow() [WindowSize]T {
	n := len(r.items)
	return [WindowSize]T{r.items[r.index], r.items[(r.index+1)%n]}
}

// Snapshot is a point-in-time view of a rotator.
type Snapshot[T any] struct {
	Index  int
	Len    int
	Window [WindowSize]T
}

// Snapshot captures the current index and window.
func (r *Rotator[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{Index: r.index, Len: len(r.items), Window: r.VisibleWindow()}
}
