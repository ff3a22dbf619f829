package radix

import "go-radix/types"

// rebuildSingle is the one-plane counting kernel for direct sorts: the
// bins are counted and the output is rebuilt from the bin values alone,
// with no scratch array. That is only possible when the filter is a
// bijection on the byte, so that one bin holds one distinct element
// value; the absolute modes fold -x and +x into one bin and take the
// scatter path instead. out may alias data.
func rebuildSingle[T any, K Keyer[T], F filter](k K, f F, data, out []T, reversed bool) {
	var counts [256]int
	var vals [256]T
	for _, v := range data {
		fb := byte(f.apply(k.Key(v)))
		counts[fb]++
		vals[fb] = v
	}
	i := 0
	if !reversed {
		for b := 0; b < 256; b++ {
			c := counts[b]
			if c == 0 {
				continue
			}
			v := vals[b]
			for ; c > 0; c-- {
				out[i] = v
				i++
			}
		}
	} else {
		for b := 255; b >= 0; b-- {
			c := counts[b]
			if c == 0 {
				continue
			}
			v := vals[b]
			for ; c > 0; c-- {
				out[i] = v
				i++
			}
		}
	}
}

// byteBijective reports whether the mode's filter maps distinct bytes to
// distinct bytes. The two plain absolute modes are the only many-to-one
// filters; ties between -x and +x make their stability observable even
// for direct values, so they cannot be rebuilt from counts.
func byteBijective(m types.Mode) bool {
	return m != types.AbsSigned && m != types.AbsFloat
}
