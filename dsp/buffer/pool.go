package buffer

import "sync"

// Pool provides sync.Pool-based reuse of same-shaped buffers to reduce GC
// pressure when a host allocates one destination frame per request.
type Pool[T Element] struct {
	width, height int
	pool          sync.Pool
}

// NewPool returns a Pool handing out width x height buffers.
func NewPool[T Element](width, height int) *Pool[T] {
	return &Pool[T]{width: width, height: height}
}

// Get returns a buffer of the pool's shape. Contents are unspecified;
// callers that need zeroes must call Zero.
func (p *Pool[T]) Get() (*Buffer[T], error) {
	if b, ok := p.pool.Get().(*Buffer[T]); ok {
		return b, nil
	}
	return New[T](p.width, p.height)
}

// Put returns a buffer for reuse. Buffers of another shape are dropped.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil || b.width != p.width || b.height != p.height || b.data == nil {
		return
	}
	p.pool.Put(b)
}
