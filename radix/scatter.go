package radix

// scatterPlane executes one byte plane: a bidirectional pass reading
// pairs from the two ends of src inward and writing through the
// ascending and descending offset halves. Each destination slot is
// written exactly once; the two halves collide only at the midpoint.
func scatterPlane[T any, K Keyer[T], F filter](k K, f F, src, dst []T, shift uint, o *offsetPair) {
	lo, hi := 0, len(src)-1
	for lo < hi {
		vl := src[lo]
		vh := src[hi]
		bl := byte(f.apply(k.Key(vl)) >> shift)
		bh := byte(f.apply(k.Key(vh)) >> shift)
		dst[o.low[bl]] = vl
		o.low[bl]++
		dst[o.high[bh]] = vh
		o.high[bh]--
		lo++
		hi--
	}
	if lo == hi {
		v := src[lo]
		b := byte(f.apply(k.Key(v)) >> shift)
		dst[o.low[b]] = v
		o.low[b]++
	}
}

// runPlan carries the per-call compile-down of Options.
type runPlan struct {
	planes   int
	reversed bool // descending walk of the offset bins
	revOrder bool // equal keys emerge in reverse source order
}

// runInPlace sorts data using buf as scratch. The sorted sequence ends
// up in data, or in buf when moveToBuffer is set; the other array holds
// unspecified residue. No allocation, no failure path.
func runInPlace[T any, K Keyer[T], F filter](k K, f F, plan runPlan, data, buf []T, moveToBuffer bool) {
	n := len(data)
	result, other := data, buf
	if moveToBuffer {
		result, other = buf, data
	}
	if n == 0 {
		return
	}
	if n == 1 {
		result[0] = data[0]
		return
	}

	var hist histTable
	fillHistogram(&hist, k, f, data, plan.planes)
	steps := runSteps(&hist, n, plan.planes)

	if steps == 0 {
		if moveToBuffer {
			copyMaybeReversed(buf, data, plan.revOrder)
		} else if plan.revOrder {
			reverseInPlace(data)
		}
		return
	}

	// Parity routing: after an odd number of passes the data has crossed
	// to the other array, so start there to land in result.
	a0, a1 := result, other
	if parity8(steps) != 0 {
		a0, a1 = other, result
	}
	if !sameSlice(a0, data) {
		copyMaybeReversed(a0, data, plan.revOrder)
	} else if plan.revOrder {
		reverseInPlace(data)
	}

	scatterSteps(k, f, plan, &hist, steps, a0, a1)
}

// runCopy sorts src into dst using buf as scratch, leaving src
// untouched. dst always receives the sorted sequence.
func runCopy[T any, K Keyer[T], F filter](k K, f F, plan runPlan, src, dst, buf []T) {
	n := len(src)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = src[0]
		return
	}

	var hist histTable
	fillHistogram(&hist, k, f, src, plan.planes)
	steps := runSteps(&hist, n, plan.planes)

	if steps == 0 {
		copyMaybeReversed(dst, src, plan.revOrder)
		return
	}

	if plan.revOrder {
		// The reversed copy doubles as the move into the parity-chosen
		// start array; the plane loop then runs as for in-place data.
		a0, a1 := dst, buf
		if parity8(steps) != 0 {
			a0, a1 = buf, dst
		}
		copyReversed(a0, src)
		scatterSteps(k, f, plan, &hist, steps, a0, a1)
		return
	}

	// The first executed plane reads src directly; the remaining planes
	// ping-pong between dst and buf so the last one writes dst.
	d1, d2 := dst, buf
	if parity8(steps) == 0 {
		d1, d2 = buf, dst
	}
	from := src
	pair := [2][]T{d1, d2}
	which := 0
	for s := steps; s != 0; s &= s - 1 {
		p := trailingZeros8(s)
		var o offsetPair
		buildOffsets(&hist[p], plan.reversed, &o)
		scatterPlane(k, f, from, pair[which], uint(8*p), &o)
		from = pair[which]
		which ^= 1
	}
}

// scatterSteps runs every surviving plane in ascending order, swapping
// source and destination after each executed pass. Skipped planes move
// nothing, which the parity pre-accounting has already absorbed.
func scatterSteps[T any, K Keyer[T], F filter](k K, f F, plan runPlan, hist *histTable, steps uint8, src, dst []T) {
	for s := steps; s != 0; s &= s - 1 {
		p := trailingZeros8(s)
		var o offsetPair
		buildOffsets(&hist[p], plan.reversed, &o)
		scatterPlane(k, f, src, dst, uint(8*p), &o)
		src, dst = dst, src
	}
}

func sameSlice[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func copyMaybeReversed[T any](dst, src []T, reversed bool) {
	if reversed {
		copyReversed(dst, src)
	} else {
		copy(dst, src)
	}
}

func copyReversed[T any](dst, src []T) {
	n := len(src)
	for i, v := range src {
		dst[n-1-i] = v
	}
}

func reverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
