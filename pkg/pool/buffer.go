package pool

import (
	"sync"
)

// BufferPool manages a pool of fixed size copy buffers.
type BufferPool struct {
	size int       // Size of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool with a specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a buffer from the pool. The contents are unspecified.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	// Don't pool buffers of a different size.
	if buf == nil || len(*buf) != bp.size {
		return
	}
	bp.pool.Put(buf)
}

// Size returns the length of buffers handed out by the pool.
func (bp *BufferPool) Size() int {
	return bp.size
}
