package hugepage

import (
	"testing"

	"go-radix/radix"
)

var _ radix.Allocator = (*Allocator)(nil)

func TestAllocFreeRoundTrip(t *testing.T) {
	a := New()
	buf, err := a.Alloc(1 << 16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(buf) < 1<<16 {
		t.Fatalf("got %d bytes, want at least %d", len(buf), 1<<16)
	}
	for i := 0; i < len(buf); i += 4096 {
		if buf[i] != 0 {
			t.Fatalf("buffer not zeroed at %d", i)
		}
		buf[i] = 0xAB
	}
	a.Free(buf)
}

func TestAllocZero(t *testing.T) {
	a := &Allocator{}
	buf, err := a.Alloc(0)
	if err != nil {
		t.Fatalf("Alloc(0): %v", err)
	}
	a.Free(buf)
}

func TestHugeFallsBack(t *testing.T) {
	// Most CI hosts have no huge-page pool; the allocation must still
	// succeed via base pages.
	a := New()
	buf, err := a.Alloc(4 << 20)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer a.Free(buf)
	if len(buf) < 4<<20 {
		t.Fatalf("got %d bytes", len(buf))
	}
	buf[0], buf[len(buf)-1] = 1, 1
}

func TestRoundUp(t *testing.T) {
	if roundUp(1, 4096) != 4096 || roundUp(4096, 4096) != 4096 || roundUp(4097, 4096) != 8192 {
		t.Error("roundUp wrong")
	}
}

func TestSortThroughAllocator(t *testing.T) {
	data := []uint64{5, 3, 9, 1, 7, 1}
	if err := radix.SortUints(data, radix.Options{Allocator: New()}); err != nil {
		t.Fatalf("SortUints: %v", err)
	}
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			t.Fatalf("not sorted at %d", i)
		}
	}
}
