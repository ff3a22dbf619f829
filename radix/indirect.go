package radix

import (
	"unsafe"

	"go-radix/types"
)

// Handle sorts reorder a slice of handles by a key projected from each
// handle. The projection is re-evaluated on every pass, so it must be
// pure and deterministic for the duration of the call.

// KeyFunc adapts a getter function into a projection.
type KeyFunc[H any] func(H) uint64

func (f KeyFunc[H]) Key(h H) uint64 { return f(h) }

// KeyWidther lets a projection declare the width of the key it yields,
// used when Options.Width is zero.
type KeyWidther interface {
	KeyWidth() types.Width
}

// KeyClasser lets a projection declare the scalar class of the key it
// yields, used to resolve the automatic modes.
type KeyClasser interface {
	KeyClass() types.Class
}

// Field projects the unsigned scalar stored at a fixed byte offset
// inside the struct a handle points to.
type Field[V any, U UnsignedElem] struct {
	off uintptr
}

// FieldAt builds a Field projection for the U value at byte offset off
// of V, as produced by unsafe.Offsetof.
func FieldAt[V any, U UnsignedElem](off uintptr) Field[V, U] {
	var v V
	var u U
	if off+unsafe.Sizeof(u) > unsafe.Sizeof(v) {
		panic("radix: field offset outside the handle struct")
	}
	return Field[V, U]{off: off}
}

func (f Field[V, U]) Key(h *V) uint64 {
	return uint64(*(*U)(unsafe.Add(unsafe.Pointer(h), f.off)))
}

func (Field[V, U]) KeyWidth() types.Width {
	var u U
	return types.Width(unsafe.Sizeof(u) * 8)
}

func (Field[V, U]) KeyClass() types.Class { return types.UintClass }

// IntField is Field for two's-complement struct fields.
type IntField[V any, S SignedElem] struct {
	off uintptr
}

func IntFieldAt[V any, S SignedElem](off uintptr) IntField[V, S] {
	var v V
	var s S
	if off+unsafe.Sizeof(s) > unsafe.Sizeof(v) {
		panic("radix: field offset outside the handle struct")
	}
	return IntField[V, S]{off: off}
}

func (f IntField[V, S]) Key(h *V) uint64 {
	return uint64(int64(*(*S)(unsafe.Add(unsafe.Pointer(h), f.off))))
}

func (IntField[V, S]) KeyWidth() types.Width {
	var s S
	return types.Width(unsafe.Sizeof(s) * 8)
}

func (IntField[V, S]) KeyClass() types.Class { return types.IntClass }

// FloatField is Field for IEEE-754 struct fields.
type FloatField[V any, E FloatElem] struct {
	off uintptr
}

func FloatFieldAt[V any, E FloatElem](off uintptr) FloatField[V, E] {
	var v V
	var e E
	if off+unsafe.Sizeof(e) > unsafe.Sizeof(v) {
		panic("radix: field offset outside the handle struct")
	}
	return FloatField[V, E]{off: off}
}

func (f FloatField[V, E]) Key(h *V) uint64 {
	return floatKeyer[E]{}.Key(*(*E)(unsafe.Add(unsafe.Pointer(h), f.off)))
}

func (FloatField[V, E]) KeyWidth() types.Width {
	var e E
	return types.Width(unsafe.Sizeof(e) * 8)
}

func (FloatField[V, E]) KeyClass() types.Class { return types.FloatClass }

// Table is the two-level projection: the handle names a row table and an
// index, and the key is the selected row. The row type is constrained to
// an unsigned scalar, so a table of pointers — a third level of
// indirection — does not compile.
type Table[H any, U UnsignedElem] struct {
	// Rows returns the table the handle refers to.
	Rows func(H) []U
	// Index returns the row selected by the handle.
	Index func(H) int
}

func (t Table[H, U]) Key(h H) uint64 { return uint64(t.Rows(h)[t.Index(h)]) }

func (Table[H, U]) KeyWidth() types.Width {
	var u U
	return types.Width(unsafe.Sizeof(u) * 8)
}

func (Table[H, U]) KeyClass() types.Class { return types.UintClass }

// compileHandles resolves Options for a handle sort, deferring to the
// projection for the key width and class when it reports them.
func compileHandles[H any, P Keyer[H]](p P, o Options) compiled {
	w := o.Width
	if w == 0 {
		if kw, ok := any(p).(KeyWidther); ok {
			w = kw.KeyWidth()
		} else {
			w = types.W64
		}
	}
	if !w.Valid() {
		panic("radix: unsupported key width " + w.String())
	}
	c := types.UintClass
	if kc, ok := any(p).(KeyClasser); ok {
		c = kc.KeyClass()
	}
	mode := o.Mode.Resolve(c)
	if !mode.Concrete() {
		panic("radix: invalid mode " + o.Mode.String())
	}
	return compiled{
		mode:  mode,
		width: uint(w),
		plan: runPlan{
			planes:   w.Planes(),
			reversed: o.Direction.Reversed(),
			revOrder: o.Direction.ReversedOrder(),
		},
	}
}

// SortHandles sorts data in place by the projected key, allocating an
// equal-size scratch buffer for the duration of the call. Equal keys
// keep their source order, or its reverse under ReverseOrder.
func SortHandles[H any, P Keyer[H]](data []H, p P, o Options) error {
	return sortAlloc(p, compileHandles(p, o), data, o, false)
}

// SortHandlesCopy sorts src into dst by the projected key without
// modifying src, allocating scratch for the duration of the call.
func SortHandlesCopy[H any, P Keyer[H]](src, dst []H, p P, o Options) error {
	return sortCopyAlloc("radix: SortHandlesCopy", p, compileHandles(p, o), src, dst, o, false)
}

// SortHandlesBuf sorts data in place by the projected key using the
// caller's scratch buffer. It cannot fail.
func SortHandlesBuf[H any, P Keyer[H]](data, buf []H, p P, o Options) {
	sortBuf("radix: SortHandlesBuf", p, compileHandles(p, o), data, buf, o, false)
}

// SortHandlesCopyBuf sorts src into dst by the projected key using the
// caller's scratch buffer; src is never written. It cannot fail.
func SortHandlesCopyBuf[H any, P Keyer[H]](src, dst, buf []H, p P, o Options) {
	sortCopyBuf("radix: SortHandlesCopyBuf", p, compileHandles(p, o), src, dst, buf, o, false)
}
