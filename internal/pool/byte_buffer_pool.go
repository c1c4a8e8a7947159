// Package pool provides a pooled, growable byte buffer used to avoid
// repeated allocation in the hot encode path: the delta/zigzag/varint
// transform scratch buffer, and the byte buffer a multi-chunk frame is
// assembled into.
package pool

import (
	"sync"
)

// Default and maximum retained sizes for the two pools this package exposes.
const (
	// TransformBufferDefaultSize is the default size of a ByteBuffer used to
	// accumulate a single array's delta/zigzag/varint transform output
	// before it is handed to a ByteCompressor.
	TransformBufferDefaultSize = 1024 * 4 // 4KiB

	// TransformBufferMaxThreshold is the largest transform buffer capacity
	// retained in the pool; larger buffers are discarded on Put to avoid
	// memory bloat from one oversized array pinning a pool entry forever.
	TransformBufferMaxThreshold = 1024 * 128 // 128KiB

	// FrameBufferDefaultSize is the default size of a ByteBuffer used to
	// assemble a multi-chunk frame's header, index, and concatenated chunk
	// payloads.
	FrameBufferDefaultSize = 1024 * 64 // 64KiB

	// FrameBufferMaxThreshold is the largest frame assembly buffer capacity
	// retained in the pool.
	FrameBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a growable byte slice wrapper designed for pool reuse: a
// capacity-preserving Reset lets the underlying array survive a round
// trip through the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	transformPool = NewByteBufferPool(TransformBufferDefaultSize, TransformBufferMaxThreshold)
	framePool     = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
)

// GetTransformBuffer retrieves a ByteBuffer from the default transform-scratch pool.
func GetTransformBuffer() *ByteBuffer {
	return transformPool.Get()
}

// PutTransformBuffer returns a ByteBuffer to the default transform-scratch pool.
func PutTransformBuffer(bb *ByteBuffer) {
	transformPool.Put(bb)
}

// GetFrameBuffer retrieves a ByteBuffer from the default frame-assembly pool.
func GetFrameBuffer() *ByteBuffer {
	return framePool.Get()
}

// PutFrameBuffer returns a ByteBuffer to the default frame-assembly pool.
func PutFrameBuffer(bb *ByteBuffer) {
	framePool.Put(bb)
}
