package types

import "testing"

func TestModeResolve(t *testing.T) {
	cases := []struct {
		mode  Mode
		class Class
		want  Mode
	}{
		{Native, UintClass, Unsigned},
		{Native, IntClass, Signed},
		{Native, FloatClass, Float},
		{Native, BoolClass, Unsigned},
		{NativeAbs, IntClass, AbsSigned},
		{NativeAbs, FloatClass, AbsFloat},
		{NativeAbs, UintClass, Unsigned},
		{NativeTieredAbs, IntClass, TieredAbsSigned},
		{NativeTieredAbs, FloatClass, TieredAbsFloat},
		{Signed, FloatClass, Signed}, // concrete modes resolve to themselves
	}
	for _, tc := range cases {
		if got := tc.mode.Resolve(tc.class); got != tc.want {
			t.Errorf("%s.Resolve(%s) = %s, want %s", tc.mode, tc.class, got, tc.want)
		}
	}
}

func TestModeConcrete(t *testing.T) {
	for _, m := range []Mode{Unsigned, Signed, AbsSigned, TieredAbsSigned, Float, AbsFloat, TieredAbsFloat, InverseFloat} {
		if !m.Concrete() {
			t.Errorf("%s should be concrete", m)
		}
	}
	for _, m := range []Mode{Native, NativeAbs, NativeTieredAbs, Mode(99)} {
		if m.Concrete() {
			t.Errorf("%s should not be concrete", m)
		}
	}
}

func TestDirectionBits(t *testing.T) {
	if Ascending.Reversed() || Ascending.ReversedOrder() {
		t.Error("Ascending must have no bits set")
	}
	d := ReverseSort | ReverseOrder
	if !d.Reversed() || !d.ReversedOrder() {
		t.Error("combined direction lost a bit")
	}
	if Descending != ReverseSort {
		t.Error("Descending must alias ReverseSort")
	}
}

func TestWidth(t *testing.T) {
	for w := W8; w <= W64; w += 8 {
		if !w.Valid() {
			t.Errorf("%s should be valid", w)
		}
	}
	for _, w := range []Width{0, 4, 12, 65, 72, -8} {
		if w.Valid() {
			t.Errorf("Width(%d) should be invalid", int(w))
		}
	}
	if W24.Planes() != 3 || W64.Planes() != 8 {
		t.Error("plane counts wrong")
	}
}
