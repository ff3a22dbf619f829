package radix

import (
	"math"
	"math/rand"
	"testing"

	"go-radix/sortcheck"
	"go-radix/types"
)

// Reference comparators, written over plain value arithmetic so they
// share nothing with the byte-plane filters they validate.

func magI64(a int64) uint64 {
	if a < 0 {
		return uint64(-a) // the minimum wraps to its own magnitude
	}
	return uint64(a)
}

func absLessI64(a, b int64) bool { return magI64(a) < magI64(b) }

func tieredLessI64(a, b int64) bool {
	ma, mb := magI64(a), magI64(b)
	if ma != mb {
		return ma < mb
	}
	return a < 0 && b >= 0
}

func floatLessBits(a, b uint64) bool {
	if a>>63 != 0 {
		a = ^a
	} else {
		a ^= 1 << 63
	}
	if b>>63 != 0 {
		b = ^b
	} else {
		b ^= 1 << 63
	}
	return a < b
}

func absFloatLessBits(a, b uint64) bool {
	return a&^(1<<63) < b&^(1<<63)
}

func tieredFloatLessBits(a, b uint64) bool {
	ma, mb := a&^(1<<63), b&^(1<<63)
	if ma != mb {
		return ma < mb
	}
	return a>>63 == 1 && b>>63 == 0
}

func inverseFloatLessBits(a, b uint64) bool {
	sa, sb := a>>63, b>>63
	if sa != sb {
		return sa == 0
	}
	if sa == 0 {
		return a < b
	}
	return a&^(1<<63) > b&^(1<<63)
}

func checkOrdered[T any](t *testing.T, name string, out []T, less func(a, b T) bool) {
	t.Helper()
	for i := 1; i < len(out); i++ {
		if less(out[i], out[i-1]) {
			t.Fatalf("%s: order violated at %d", name, i)
		}
	}
}

func TestPropertyIntModes(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	cases := []struct {
		name string
		mode types.Mode
		less func(a, b int64) bool
	}{
		{"signed", types.Signed, func(a, b int64) bool { return a < b }},
		{"abs", types.AbsSigned, absLessI64},
		{"tiered", types.TieredAbsSigned, tieredLessI64},
		{"inverse", types.Unsigned, func(a, b int64) bool { return uint64(a) < uint64(b) }},
	}
	for _, tc := range cases {
		for _, n := range []int{2, 3, 100, 1023} {
			data := make([]int64, n)
			for i := range data {
				data[i] = int64(rng.Uint64())
			}
			// Seed the corners so every run hits them.
			data[0] = math.MinInt64
			data[1] = math.MaxInt64
			before := sortcheck.MultisetOf(data, func(v int64) uint64 { return uint64(v) })
			if err := SortInts(data, Options{Mode: tc.mode}); err != nil {
				t.Fatalf("%s n=%d: %v", tc.name, n, err)
			}
			after := sortcheck.MultisetOf(data, func(v int64) uint64 { return uint64(v) })
			if before != after {
				t.Fatalf("%s n=%d: output is not a permutation", tc.name, n)
			}
			checkOrdered(t, tc.name, data, tc.less)
		}
	}
}

func TestPropertyIntModesNarrow(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	modes := []struct {
		name string
		mode types.Mode
		less func(a, b int64) bool
	}{
		{"signed", types.Signed, func(a, b int64) bool { return a < b }},
		{"abs", types.AbsSigned, absLessI64},
		{"tiered", types.TieredAbsSigned, tieredLessI64},
	}
	for _, tc := range modes {
		data := make([]int16, 500)
		for i := range data {
			data[i] = int16(rng.Uint32())
		}
		data[0] = math.MinInt16
		data[1] = math.MaxInt16
		if err := SortInts(data, Options{Mode: tc.mode}); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		checkOrdered(t, tc.name, data, func(a, b int16) bool { return tc.less(int64(a), int64(b)) })
	}
}

func TestPropertyFloatModes(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	cases := []struct {
		name string
		mode types.Mode
		less func(a, b uint64) bool
	}{
		{"float", types.Float, floatLessBits},
		{"abs-float", types.AbsFloat, absFloatLessBits},
		{"tiered-abs-float", types.TieredAbsFloat, tieredFloatLessBits},
		{"inverse-float", types.InverseFloat, inverseFloatLessBits},
	}
	corners := []uint64{
		0x0000000000000000, // +0
		0x8000000000000000, // -0
		0x7FF0000000000000, // +Inf
		0xFFF0000000000000, // -Inf
		0x7FF8000000000001, // +QNaN
		0xFFF8000000000001, // -QNaN
		0x7FF0000000000001, // +SNaN
		0xFFF0000000000001, // -SNaN
		0x0000000000000001, // smallest subnormal
		0x8000000000000001,
	}
	for _, tc := range cases {
		data := make([]float64, 400)
		for i := range data {
			data[i] = math.Float64frombits(rng.Uint64())
		}
		for i, bits := range corners {
			data[i] = math.Float64frombits(bits)
		}
		if err := SortFloats(data, Options{Mode: tc.mode}); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		for i := 1; i < len(data); i++ {
			if tc.less(math.Float64bits(data[i]), math.Float64bits(data[i-1])) {
				t.Fatalf("%s: order violated at %d", tc.name, i)
			}
		}
	}
}

func TestPropertyFloat32(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	data := make([]float32, 300)
	for i := range data {
		data[i] = math.Float32frombits(rng.Uint32())
	}
	data[0] = float32(math.Inf(-1))
	data[1] = float32(math.Inf(1))
	data[2] = float32(math.Copysign(0, -1))
	if err := SortFloats(data, Options{}); err != nil {
		t.Fatal(err)
	}
	less := func(a, b float32) bool {
		ka := uint64(math.Float32bits(a))
		kb := uint64(math.Float32bits(b))
		if ka>>31 != 0 {
			ka = ^ka & 0xFFFFFFFF
		} else {
			ka ^= 1 << 31
		}
		if kb>>31 != 0 {
			kb = ^kb & 0xFFFFFFFF
		} else {
			kb ^= 1 << 31
		}
		return ka < kb
	}
	checkOrdered(t, "float32", data, less)
}

func TestPropertyAllWidthsUnsigned(t *testing.T) {
	rng := rand.New(rand.NewSource(59))
	for _, w := range []types.Width{types.W8, types.W16, types.W24, types.W32, types.W40, types.W48, types.W56, types.W64} {
		mask := ^uint64(0) >> (64 - uint(w))
		for _, dir := range []types.Direction{types.Ascending, types.Descending} {
			data := make([]uint64, 257)
			for i := range data {
				data[i] = rng.Uint64() & mask
			}
			before := sortcheck.Multiset(data)
			if err := SortUints(data, Options{Width: w, Direction: dir}); err != nil {
				t.Fatalf("%s %s: %v", w, dir, err)
			}
			if sortcheck.Multiset(data) != before {
				t.Fatalf("%s %s: not a permutation", w, dir)
			}
			if !sortcheck.Ordered(data, dir.Reversed()) {
				t.Fatalf("%s %s: not ordered", w, dir)
			}
		}
	}
}

func TestPropertyAllVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	data := make([]uint32, 999)
	for i := range data {
		data[i] = rng.Uint32() & 0xFFFF // force plane skips
	}
	o := Options{}

	inPlace := append([]uint32(nil), data...)
	if err := SortUints(inPlace, o); err != nil {
		t.Fatal(err)
	}

	copied := make([]uint32, len(data))
	if err := SortUintsCopy(data, copied, o); err != nil {
		t.Fatal(err)
	}

	bufIn := append([]uint32(nil), data...)
	SortUintsBuf(bufIn, make([]uint32, len(data)), o)

	bufMove := append([]uint32(nil), data...)
	moved := make([]uint32, len(data))
	SortUintsBuf(bufMove, moved, Options{MoveToBuffer: true})

	copyBuf := make([]uint32, len(data))
	SortUintsCopyBuf(data, copyBuf, make([]uint32, len(data)), o)

	for i := range inPlace {
		if copied[i] != inPlace[i] || bufIn[i] != inPlace[i] || moved[i] != inPlace[i] || copyBuf[i] != inPlace[i] {
			t.Fatalf("variants disagree at %d", i)
		}
	}
}

func TestPropertyBools(t *testing.T) {
	rng := rand.New(rand.NewSource(67))
	data := make([]bool, 100)
	trues := 0
	for i := range data {
		data[i] = rng.Intn(2) == 1
		if data[i] {
			trues++
		}
	}
	if err := SortBools(data, Options{}); err != nil {
		t.Fatal(err)
	}
	for i, v := range data {
		want := i >= len(data)-trues
		if v != want {
			t.Fatalf("slot %d: got %v", i, v)
		}
	}
}
