package radix

import (
	"unsafe"

	"go-radix/types"
)

// UnsignedElem covers the unsigned storage types, including named enum
// and packed-width types declared over them.
type UnsignedElem interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedElem covers the two's-complement storage types.
type SignedElem interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// FloatElem covers the IEEE-754 storage types.
type FloatElem interface {
	~float32 | ~float64
}

// uintKeyer zero-extends the raw value into the key image.
type uintKeyer[T UnsignedElem] struct{}

func (uintKeyer[T]) Key(v T) uint64 { return uint64(v) }

// intKeyer sign-extends, so the sign bit is visible at every width the
// filters may probe.
type intKeyer[T SignedElem] struct{}

func (intKeyer[T]) Key(v T) uint64 { return uint64(int64(v)) }

// floatKeyer reads the IEEE-754 encoding without float arithmetic. The
// size branch is constant per instantiation and compiles away.
type floatKeyer[T FloatElem] struct{}

func (floatKeyer[T]) Key(v T) uint64 {
	if unsafe.Sizeof(v) == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(&v)))
	}
	return *(*uint64)(unsafe.Pointer(&v))
}

// boolKeyer orders false before true.
type boolKeyer struct{}

func (boolKeyer) Key(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// keyWidth resolves the effective key width: the declared override when
// present, the storage width of T otherwise.
func keyWidth[T any](override types.Width) types.Width {
	if override != 0 {
		return override
	}
	var z T
	return types.Width(unsafe.Sizeof(z) * 8)
}
