//go:build linux
// +build linux

package hugepage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// hugePageSize is the conventional x86-64 / arm64 huge page of 2 MiB.
// Mappings below one huge page are not worth the pool pressure.
const hugePageSize = 2 << 20

func (a *Allocator) alloc(size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	prot := unix.PROT_READ | unix.PROT_WRITE
	if a.Huge && size >= hugePageSize {
		n := roundUp(size, hugePageSize)
		buf, err := unix.Mmap(-1, 0, n, prot, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_HUGETLB)
		if err == nil {
			return buf, nil
		}
		// No huge-page pool (ENOMEM) or no support (EINVAL): fall back.
	}
	n := roundUp(size, os.Getpagesize())
	buf, err := unix.Mmap(-1, 0, n, prot, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("hugepage: mmap %d bytes: %w", n, err)
	}
	return buf, nil
}

func (a *Allocator) free(buf []byte) {
	if err := unix.Munmap(buf); err != nil {
		panic(fmt.Sprintf("hugepage: munmap: %v", err))
	}
}
