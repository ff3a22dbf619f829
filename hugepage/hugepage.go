// Package hugepage provides a scratch allocator backed by anonymous
// memory mappings, requesting huge-page (large-TLB) backing where the
// platform offers it. It satisfies the radix.Allocator contract: sizes
// may be rounded up to the page multiple and callers must not rely on the
// exact size being honoured.
package hugepage

// Allocator hands out page-backed scratch buffers. The zero value uses
// base pages; New returns one that asks for huge pages first.
type Allocator struct {
	// Huge requests huge-page backing. When the system refuses (no pool
	// configured, or the platform has no API), allocation silently falls
	// back to base pages.
	Huge bool
}

// New returns an Allocator that prefers huge-page backing.
func New() *Allocator { return &Allocator{Huge: true} }

// Alloc returns a zeroed buffer of at least size bytes. On Linux the
// size is rounded up to the backing page size; elsewhere it is exact.
func (a *Allocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		size = 0
	}
	return a.alloc(size)
}

// Free releases a buffer previously returned by Alloc. Passing any
// other slice is a programming error.
func (a *Allocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	a.free(buf)
}

func roundUp(size, page int) int {
	if page <= 0 {
		return size
	}
	return (size + page - 1) / page * page
}
