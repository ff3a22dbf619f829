package radix

import (
	"unsafe"

	"go-radix/types"
)

// Options parameterises a sort call. The zero value sorts ascending in
// the native order of the element class over the full storage width,
// allocating scratch from the Go heap when needed.
type Options struct {
	// Mode selects the key-space order; automatic modes resolve from the
	// element class.
	Mode types.Mode
	// Direction packs the reverse-sort and reverse-order bits.
	Direction types.Direction
	// Width declares the key width in bits for packed types stored in a
	// wider integer. Zero means the storage width of the element type.
	// Bits above the declared width must be zero (unsigned storage) or a
	// sign extension (signed storage).
	Width types.Width
	// MoveToBuffer directs the in-place-with-buffer forms to leave the
	// sorted sequence in the buffer instead of the data slice.
	MoveToBuffer bool
	// Allocator supplies scratch for the allocating forms; nil uses the
	// Go heap. Ignored by the *Buf forms.
	Allocator Allocator
}

type opKind int

const (
	opInPlace opKind = iota
	opCopy
	opRebuild
)

// request is the compiled form of one sort call, handed through the mode
// switch so the kernels instantiate once per (element, filter) pair.
type request[T any] struct {
	kind         opKind
	plan         runPlan
	data         []T // input (read-write for opInPlace, read-only otherwise)
	dst          []T // output for opCopy/opRebuild
	buf          []T // scratch for opInPlace/opCopy
	moveToBuffer bool
}

func execute[T any, K Keyer[T]](k K, mode types.Mode, width uint, req request[T]) {
	switch mode {
	case types.Unsigned:
		executeFiltered(k, identityFilter{}, req)
	case types.Signed:
		executeFiltered(k, signFlipFilter{sign: signBit(width)}, req)
	case types.AbsSigned:
		executeFiltered(k, absFilter{shift: width - 1}, req)
	case types.TieredAbsSigned:
		executeFiltered(k, tieredAbsFilter{shift: width - 1}, req)
	case types.Float:
		executeFiltered(k, floatFilter{shift: width - 1, sign: signBit(width)}, req)
	case types.AbsFloat:
		executeFiltered(k, absFloatFilter{sign: signBit(width)}, req)
	case types.TieredAbsFloat:
		executeFiltered(k, tieredAbsFloatFilter{shift: width - 1, mask: widthMask(width)}, req)
	case types.InverseFloat:
		executeFiltered(k, inverseFloatFilter{shift: width - 1, sign: signBit(width)}, req)
	default:
		panic("radix: mode " + mode.String() + " did not resolve to a concrete mode")
	}
}

func executeFiltered[T any, K Keyer[T], F filter](k K, f F, req request[T]) {
	switch req.kind {
	case opInPlace:
		runInPlace(k, f, req.plan, req.data, req.buf, req.moveToBuffer)
	case opCopy:
		runCopy(k, f, req.plan, req.data, req.dst, req.buf)
	case opRebuild:
		rebuildSingle(k, f, req.data, req.dst, req.plan.reversed)
	}
}

// compiled is the validated form of Options for one call.
type compiled struct {
	mode  types.Mode
	width uint
	plan  runPlan
}

// rebuildable reports whether the one-plane counting rebuild applies:
// only for direct values under a byte-bijective filter. Handle sorts
// always scatter, since distinct handles share bins.
func (c compiled) rebuildable(direct bool) bool {
	return direct && c.plan.planes == 1 && byteBijective(c.mode)
}

// compile validates Options against the element type and resolves the
// concrete mode, key width and pass plan.
func compile[T any](c types.Class, o Options) compiled {
	w := keyWidth[T](o.Width)
	if !w.Valid() {
		panic("radix: unsupported key width " + w.String())
	}
	var z T
	if w.Planes() > int(unsafe.Sizeof(z)) {
		panic("radix: key width " + w.String() + " exceeds the element storage")
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

func checkLen[T any](name, what string, n int, s []T) {
	if len(s) < n {
		panic(name + ": " + what + " shorter than the data")
	}
}

func checkDistinct[T any](name string, a, b []T) {
	if sameSlice(a, b) {
		panic(name + ": slices must not alias")
	}
}

// sortBuf is the shared in-place-with-buffer driver.
func sortBuf[T any, K Keyer[T]](name string, k K, cc compiled, data, buf []T, o Options, direct bool) {
	n := len(data)
	if n > 1 || (n == 1 && o.MoveToBuffer) {
		checkLen(name, "scratch buffer", n, buf)
	}
	if n > 1 {
		checkDistinct(name, data, buf)
	}
	if n == 0 {
		return
	}
	if n == 1 {
		if o.MoveToBuffer {
			buf[0] = data[0]
		}
		return
	}
	if cc.rebuildable(direct) {
		out := data
		if o.MoveToBuffer {
			out = buf
		}
		execute(k, cc.mode, cc.width, request[T]{kind: opRebuild, plan: cc.plan, data: data, dst: out})
		return
	}
	execute(k, cc.mode, cc.width, request[T]{
		kind: opInPlace, plan: cc.plan, data: data, buf: buf, moveToBuffer: o.MoveToBuffer,
	})
}

// sortCopyBuf is the shared copy-with-buffer driver. src is never
// written.
func sortCopyBuf[T any, K Keyer[T]](name string, k K, cc compiled, src, dst, buf []T, o Options, direct bool) {
	n := len(src)
	if n > 0 {
		checkLen(name, "destination", n, dst)
		checkDistinct(name, src, dst)
	}
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = src[0]
		return
	}
	if cc.rebuildable(direct) {
		execute(k, cc.mode, cc.width, request[T]{kind: opRebuild, plan: cc.plan, data: src, dst: dst})
		return
	}
	checkLen(name, "scratch buffer", n, buf)
	checkDistinct(name, src, buf)
	checkDistinct(name, dst, buf)
	execute(k, cc.mode, cc.width, request[T]{kind: opCopy, plan: cc.plan, data: src, dst: dst, buf: buf})
}

// sortAlloc is the shared allocating in-place driver.
func sortAlloc[T any, K Keyer[T]](k K, cc compiled, data []T, o Options, direct bool) error {
	n := len(data)
	if n <= 1 {
		return nil
	}
	if cc.rebuildable(direct) {
		execute(k, cc.mode, cc.width, request[T]{kind: opRebuild, plan: cc.plan, data: data, dst: data})
		return nil
	}
	buf, release, err := allocScratch[T](o.Allocator, n)
	if err != nil {
		return err
	}
	defer release()
	execute(k, cc.mode, cc.width, request[T]{kind: opInPlace, plan: cc.plan, data: data, buf: buf})
	return nil
}

// sortCopyAlloc is the shared allocating copy driver.
func sortCopyAlloc[T any, K Keyer[T]](name string, k K, cc compiled, src, dst []T, o Options, direct bool) error {
	n := len(src)
	if n > 0 {
		checkLen(name, "destination", n, dst)
		checkDistinct(name, src, dst)
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		dst[0] = src[0]
		return nil
	}
	if cc.rebuildable(direct) {
		execute(k, cc.mode, cc.width, request[T]{kind: opRebuild, plan: cc.plan, data: src, dst: dst})
		return nil
	}
	buf, release, err := allocScratch[T](o.Allocator, n)
	if err != nil {
		return err
	}
	defer release()
	execute(k, cc.mode, cc.width, request[T]{kind: opCopy, plan: cc.plan, data: src, dst: dst, buf: buf})
	return nil
}

// SortUints sorts data in place, allocating an equal-size scratch buffer
// for the duration of the call. It fails only when the allocator does,
// in which case data is unchanged.
func SortUints[T UnsignedElem](data []T, o Options) error {
	return sortAlloc(uintKeyer[T]{}, compile[T](types.UintClass, o), data, o, true)
}

// SortInts is SortUints for two's-complement elements.
func SortInts[T SignedElem](data []T, o Options) error {
	return sortAlloc(intKeyer[T]{}, compile[T](types.IntClass, o), data, o, true)
}

// SortFloats is SortUints for IEEE-754 elements. Signalling NaNs are
// sorted like any other encoding and never trap.
func SortFloats[T FloatElem](data []T, o Options) error {
	return sortAlloc(floatKeyer[T]{}, compile[T](types.FloatClass, o), data, o, true)
}

// SortBools sorts a bool slice; false orders before true.
func SortBools(data []bool, o Options) error {
	return sortAlloc(boolKeyer{}, compile[bool](types.BoolClass, o), data, o, true)
}

// SortUintsCopy sorts src into dst without modifying src, allocating
// scratch for the duration of the call.
func SortUintsCopy[T UnsignedElem](src, dst []T, o Options) error {
	return sortCopyAlloc("radix: SortUintsCopy", uintKeyer[T]{}, compile[T](types.UintClass, o), src, dst, o, true)
}

// SortIntsCopy is SortUintsCopy for two's-complement elements.
func SortIntsCopy[T SignedElem](src, dst []T, o Options) error {
	return sortCopyAlloc("radix: SortIntsCopy", intKeyer[T]{}, compile[T](types.IntClass, o), src, dst, o, true)
}

// SortFloatsCopy is SortUintsCopy for IEEE-754 elements.
func SortFloatsCopy[T FloatElem](src, dst []T, o Options) error {
	return sortCopyAlloc("radix: SortFloatsCopy", floatKeyer[T]{}, compile[T](types.FloatClass, o), src, dst, o, true)
}

// SortBoolsCopy is SortUintsCopy for bool slices.
func SortBoolsCopy(src, dst []bool, o Options) error {
	return sortCopyAlloc("radix: SortBoolsCopy", boolKeyer{}, compile[bool](types.BoolClass, o), src, dst, o, true)
}

// SortUintsBuf sorts data in place using the caller's scratch buffer.
// The sorted sequence lands in data, or in buf under o.MoveToBuffer; the
// other slice holds unspecified residue. It cannot fail.
func SortUintsBuf[T UnsignedElem](data, buf []T, o Options) {
	sortBuf("radix: SortUintsBuf", uintKeyer[T]{}, compile[T](types.UintClass, o), data, buf, o, true)
}

// SortIntsBuf is SortUintsBuf for two's-complement elements.
func SortIntsBuf[T SignedElem](data, buf []T, o Options) {
	sortBuf("radix: SortIntsBuf", intKeyer[T]{}, compile[T](types.IntClass, o), data, buf, o, true)
}

// SortFloatsBuf is SortUintsBuf for IEEE-754 elements.
func SortFloatsBuf[T FloatElem](data, buf []T, o Options) {
	sortBuf("radix: SortFloatsBuf", floatKeyer[T]{}, compile[T](types.FloatClass, o), data, buf, o, true)
}

// SortBoolsBuf is SortUintsBuf for bool slices.
func SortBoolsBuf(data, buf []bool, o Options) {
	sortBuf("radix: SortBoolsBuf", boolKeyer{}, compile[bool](types.BoolClass, o), data, buf, o, true)
}

// SortUintsCopyBuf sorts src into dst using the caller's scratch buffer;
// src is never written. It cannot fail.
func SortUintsCopyBuf[T UnsignedElem](src, dst, buf []T, o Options) {
	sortCopyBuf("radix: SortUintsCopyBuf", uintKeyer[T]{}, compile[T](types.UintClass, o), src, dst, buf, o, true)
}

// SortIntsCopyBuf is SortUintsCopyBuf for two's-complement elements.
func SortIntsCopyBuf[T SignedElem](src, dst, buf []T, o Options) {
	sortCopyBuf("radix: SortIntsCopyBuf", intKeyer[T]{}, compile[T](types.IntClass, o), src, dst, buf, o, true)
}

// SortFloatsCopyBuf is SortUintsCopyBuf for IEEE-754 elements.
func SortFloatsCopyBuf[T FloatElem](src, dst, buf []T, o Options) {
	sortCopyBuf("radix: SortFloatsCopyBuf", floatKeyer[T]{}, compile[T](types.FloatClass, o), src, dst, buf, o, true)
}

// SortBoolsCopyBuf is SortUintsCopyBuf for bool slices.
func SortBoolsCopyBuf(src, dst, buf []bool, o Options) {
	sortCopyBuf("radix: SortBoolsCopyBuf", boolKeyer{}, compile[bool](types.BoolClass, o), src, dst, buf, o, true)
}
