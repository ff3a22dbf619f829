package radix

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrAllocFailed wraps a scratch allocator failure surfaced by the
	// allocating entry points. The caller's slices are untouched when it
	// is returned.
	ErrAllocFailed = errors.New("radix: scratch allocation failed")
)

// Allocator is the scratch-buffer contract consumed by the allocating
// entry points. Alloc returns at least size bytes, aligned for any
// scalar type; implementations backed by paged APIs may round the size
// up, and the core does not rely on the exact size being honoured.
// Free releases a buffer previously returned by Alloc.
//
// Buffers from a custom Allocator are not scanned by the garbage
// collector. Handle sorts park pointers in the scratch buffer between
// passes, so pair them with a custom Allocator only when every pointee
// is kept reachable elsewhere for the duration of the call; the nil
// (heap) default has no such restriction.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// allocScratch obtains an n-element scratch slice: from the Go heap when
// a is nil, through a otherwise. The returned release func must be
// called on every exit path.
func allocScratch[T any](a Allocator, n int) (buf []T, release func(), err error) {
	if a == nil {
		return make([]T, n), func() {}, nil
	}
	var z T
	size := n * int(unsafe.Sizeof(z))
	raw, err := a.Alloc(size)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}
	if len(raw) < size {
		a.Free(raw)
		return nil, nil, fmt.Errorf("%w: got %d of %d bytes", ErrAllocFailed, len(raw), size)
	}
	buf = unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	return buf, func() { a.Free(raw) }, nil
}
