package radix

import "go-radix/types"

// Index-returning sorts: instead of moving elements, these return the
// stable permutation that orders them, for callers that reorder several
// parallel slices by one key column.

// sortIndicesKeys is the serial index workhorse. It radix-sorts the
// positions of the pre-filtered keys in planes passes of 256 buckets,
// skipping planes whose keys share a single bucket.
func sortIndicesKeys(keys []uint64, planes int, reversed bool) []int {
	n := len(keys)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if n <= 1 {
		return indices
	}
	tmp := make([]int, n)
	var counts [256]int

	for pass := 0; pass < planes; pass++ {
		shift := uint(8 * pass)

		for i := range counts {
			counts[i] = 0
		}
		for _, idx := range indices {
			counts[byte(keys[idx]>>shift)]++
		}

		// A plane with every key in one bucket would only copy.
		if singleBucket(&counts, n) {
			continue
		}

		// Prefix scan to convert counts into starting offsets.
		sum := 0
		if !reversed {
			for b := 0; b < 256; b++ {
				c := counts[b]
				counts[b] = sum
				sum += c
			}
		} else {
			for b := 255; b >= 0; b-- {
				c := counts[b]
				counts[b] = sum
				sum += c
			}
		}

		for _, idx := range indices {
			b := byte(keys[idx] >> shift)
			tmp[counts[b]] = idx
			counts[b]++
		}

		indices, tmp = tmp, indices
	}

	return indices
}

func singleBucket(counts *[256]int, n int) bool {
	for b := 0; b < 256; b++ {
		c := counts[b]
		if c == n {
			return true
		}
		if c != 0 {
			return false
		}
	}
	return false
}

// fillKeys materialises the filtered key of every element, optionally in
// reverse source order for the reversed stability convention.
func fillKeys[T any, K Keyer[T], F filter](k K, f F, data []T, keys []uint64, revOrder bool) {
	n := len(data)
	if revOrder {
		for i, v := range data {
			keys[n-1-i] = f.apply(k.Key(v))
		}
		return
	}
	for i, v := range data {
		keys[i] = f.apply(k.Key(v))
	}
}

func extractKeys[T any, K Keyer[T]](k K, cc compiled, data []T) []uint64 {
	keys := make([]uint64, len(data))
	switch cc.mode {
	case types.Unsigned:
		fillKeys(k, identityFilter{}, data, keys, cc.plan.revOrder)
	case types.Signed:
		fillKeys(k, signFlipFilter{sign: signBit(cc.width)}, data, keys, cc.plan.revOrder)
	case types.AbsSigned:
		fillKeys(k, absFilter{shift: cc.width - 1}, data, keys, cc.plan.revOrder)
	case types.TieredAbsSigned:
		fillKeys(k, tieredAbsFilter{shift: cc.width - 1}, data, keys, cc.plan.revOrder)
	case types.Float:
		fillKeys(k, floatFilter{shift: cc.width - 1, sign: signBit(cc.width)}, data, keys, cc.plan.revOrder)
	case types.AbsFloat:
		fillKeys(k, absFloatFilter{sign: signBit(cc.width)}, data, keys, cc.plan.revOrder)
	case types.TieredAbsFloat:
		fillKeys(k, tieredAbsFloatFilter{shift: cc.width - 1, mask: widthMask(cc.width)}, data, keys, cc.plan.revOrder)
	case types.InverseFloat:
		fillKeys(k, inverseFloatFilter{shift: cc.width - 1, sign: signBit(cc.width)}, data, keys, cc.plan.revOrder)
	default:
		panic("radix: mode " + cc.mode.String() + " did not resolve to a concrete mode")
	}
	return keys
}

func sortIndices[T any, K Keyer[T]](k K, cc compiled, data []T) []int {
	keys := extractKeys(k, cc, data)
	perm := sortIndicesKeys(keys, cc.plan.planes, cc.plan.reversed)
	if cc.plan.revOrder {
		// Keys were extracted reversed; map the positions back.
		n := len(perm)
		for i, p := range perm {
			perm[i] = n - 1 - p
		}
	}
	return perm
}

// SortIndicesUints returns the stable permutation ordering data: the
// element belonging at position i is data[perm[i]]. data is not
// modified. Apply it with ApplyPermutation.
func SortIndicesUints[T UnsignedElem](data []T, o Options) []int {
	return sortIndices(uintKeyer[T]{}, compile[T](types.UintClass, o), data)
}

// SortIndicesInts is SortIndicesUints for two's-complement elements.
func SortIndicesInts[T SignedElem](data []T, o Options) []int {
	return sortIndices(intKeyer[T]{}, compile[T](types.IntClass, o), data)
}

// SortIndicesFloats is SortIndicesUints for IEEE-754 elements.
func SortIndicesFloats[T FloatElem](data []T, o Options) []int {
	return sortIndices(floatKeyer[T]{}, compile[T](types.FloatClass, o), data)
}

// SortIndicesHandles returns the stable permutation ordering a handle
// slice by its projected key.
func SortIndicesHandles[H any, P Keyer[H]](data []H, p P, o Options) []int {
	return sortIndices(p, compileHandles(p, o), data)
}
