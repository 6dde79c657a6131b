package buffer

import "github.com/cwbudde/algo-blockiir/dsp/core"

// Buffer wraps a slice with reuse-friendly semantics.
type Buffer[E any] struct {
	data []E
}

// New returns a zero-filled Buffer of the given length.
func New[E any](length int) *Buffer[E] {
	if length < 0 {
		length = 0
	}
	return &Buffer[E]{data: make([]E, length)}
}

// FromSlice wraps an existing slice without copying.
func FromSlice[E any](s []E) *Buffer[E] {
	return &Buffer[E]{data: s}
}

// Data returns the underlying slice.
func (b *Buffer[E]) Data() []E {
	return b.data
}

// Len returns the current number of elements.
func (b *Buffer[E]) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[E]) Cap() int {
	return cap(b.data)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Existing elements are preserved; elements beyond the previous length are
// zeroed.
func (b *Buffer[E]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.data)
	if n > cap(b.data) {
		s := make([]E, n)
		copy(s, b.data)
		b.data = s
		return
	}
	b.data = core.EnsureLen(b.data, n)
	if n > oldLen {
		core.Zero(b.data[oldLen:n])
	}
}

// Zero sets all elements to their zero value.
func (b *Buffer[E]) Zero() {
	core.Zero(b.data)
}
