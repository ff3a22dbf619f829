package radix

// A filter maps the unsigned image of a raw key onto an unsigned value
// whose byte-wise lexicographic order realises the requested mode. Every
// filter is a handful of branchless integer operations over the low
// `width` bits of the key image; bits above the key width are never read
// by the passes, so the filters only guarantee the low bits.
//
// Filters are plugged into the kernels as type parameters so each
// (mode, element) combination compiles to a dedicated loop with the
// transform inlined.
type filter interface {
	apply(uint64) uint64
}

// identityFilter leaves the key untouched: plain unsigned order, or the
// inverse-signed order when applied to two's-complement data.
type identityFilter struct{}

func (identityFilter) apply(u uint64) uint64 { return u }

// signFlipFilter realises signed order by inverting the sign bit.
type signFlipFilter struct {
	sign uint64
}

func (f signFlipFilter) apply(u uint64) uint64 { return u ^ f.sign }

// absFilter realises absolute-value order on two's-complement keys.
// m broadcasts the sign bit; (u+m)^m negates negative keys. The minimum
// value wraps to itself and therefore sorts greatest, as required.
type absFilter struct {
	shift uint
}

func (f absFilter) apply(u uint64) uint64 {
	m := uint64(0) - ((u >> f.shift) & 1)
	return (u + m) ^ m
}

// tieredAbsFilter realises the tiered order 0, -1, 1, -2, 2, ... on
// two's-complement keys: magnitude shifts up one bit and the broadcast
// sign interleaves each negative just before its positive twin.
type tieredAbsFilter struct {
	shift uint
}

func (f tieredAbsFilter) apply(u uint64) uint64 {
	m := uint64(0) - ((u >> f.shift) & 1)
	return (u << 1) ^ m
}

// floatFilter realises numeric IEEE-754 order: positive encodings get
// the sign bit set, negative encodings are inverted wholesale. Negative
// NaNs land below -Inf and positive NaNs above +Inf.
type floatFilter struct {
	shift uint
	sign  uint64
}

func (f floatFilter) apply(u uint64) uint64 {
	m := uint64(0) - ((u >> f.shift) & 1)
	return u ^ (m | f.sign)
}

// absFloatFilter realises magnitude order on sign-magnitude encodings by
// clearing the sign bit; -x and +x tie and rely on stability.
type absFloatFilter struct {
	sign uint64
}

func (f absFloatFilter) apply(u uint64) uint64 { return u &^ f.sign }

// tieredAbsFloatFilter realises -0, +0, -min, +min, ... by rotating the
// sign bit down to the parity position and flipping it, so each negative
// precedes its positive twin.
type tieredAbsFloatFilter struct {
	shift uint
	mask  uint64
}

func (f tieredAbsFloatFilter) apply(u uint64) uint64 {
	return ((u<<1 | (u>>f.shift)&1) ^ 1) & f.mask
}

// inverseFloatFilter orders float encodings as two's-complement
// integers: the magnitude bits of negative encodings are inverted while
// the sign bit is kept, putting non-negatives first and negatives in
// ascending numeric order after them.
type inverseFloatFilter struct {
	shift uint
	sign  uint64
}

func (f inverseFloatFilter) apply(u uint64) uint64 {
	m := uint64(0) - ((u >> f.shift) & 1)
	return u ^ (m &^ f.sign)
}

// signBit returns the mask of the top bit of a key of the given width.
func signBit(width uint) uint64 { return 1 << (width - 1) }

// widthMask returns the mask covering the low `width` bits.
func widthMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}
