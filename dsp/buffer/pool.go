package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure when the
// same filter runs over many grids.
type Pool[E any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[E any]() *Pool[E] {
	return &Pool[E]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[E]{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool[E]) Get(length int) *Buffer[E] {
	b := p.pool.Get().(*Buffer[E])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[E]) Put(b *Buffer[E]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
