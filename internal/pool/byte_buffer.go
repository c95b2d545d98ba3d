// Package pool provides a reusable growable byte buffer for the packer,
// adapted from a metrics-blob encoder's buffer pool into a narrower
// single-purpose type with no blob-specific sizing tiers.
package pool

import "sync"

const (
	// DefaultSize is the initial capacity handed out by NewByteBuffer and by
	// the package default pool — generous enough to hold a typical packed
	// value without reallocating.
	DefaultSize = 256
	// MaxRetainedSize bounds how large a buffer the default pool will keep;
	// anything bigger is discarded on Put rather than retained, to avoid one
	// oversized value bloating the pool for everyone after it.
	MaxRetainedSize = 1024 * 64
)

// ByteBuffer is a growable byte slice wrapper, reused via Pool to avoid
// repeated allocation across Pack calls.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer allocates a ByteBuffer with the given initial capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer, retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's backing capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data, growing the backing array if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte, growing the backing array if necessary.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.B = append(bb.B, b)
	return nil
}

// Pool is a sync.Pool of ByteBuffers, discarding buffers that grew beyond
// maxRetained rather than returning them for reuse.
type Pool struct {
	pool        sync.Pool
	maxRetained int
}

// NewPool creates a Pool whose buffers start at defaultSize and are
// discarded on Put once they exceed maxRetained capacity.
func NewPool(defaultSize, maxRetained int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxRetained: maxRetained,
	}
}

// Get retrieves a ByteBuffer from the pool, allocating one if empty.
func (p *Pool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool, unless it has grown past maxRetained.
func (p *Pool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxRetained > 0 && cap(bb.B) > p.maxRetained {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewPool(DefaultSize, MaxRetainedSize)

// Get retrieves a ByteBuffer from the package default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the package default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
