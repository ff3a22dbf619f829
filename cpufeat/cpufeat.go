// Package cpufeat reports the CPU features the sort kernels can exploit.
// The kernels themselves always carry portable fallbacks; this report
// exists for diagnostics and for tooling that wants to explain the
// performance regime it measured.
package cpufeat

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// Features is the subset of feature bits relevant to byte-plane
// histogramming and scatter loops. All fields are false on
// architectures where the probe does not apply.
type Features struct {
	POPCNT bool // hardware population count
	BMI1   bool // TZCNT and friends
	BMI2   bool // shifts without flag stalls
	AVX2   bool // 256-bit integer vectors
	ASIMD  bool // arm64 advanced SIMD
}

// Detect probes the running CPU.
func Detect() Features {
	return Features{
		POPCNT: cpu.X86.HasPOPCNT,
		BMI1:   cpu.X86.HasBMI1,
		BMI2:   cpu.X86.HasBMI2,
		AVX2:   cpu.X86.HasAVX2,
		ASIMD:  cpu.ARM64.HasASIMD,
	}
}

func (f Features) String() string {
	var have []string
	add := func(ok bool, name string) {
		if ok {
			have = append(have, name)
		}
	}
	add(f.POPCNT, "popcnt")
	add(f.BMI1, "bmi1")
	add(f.BMI2, "bmi2")
	add(f.AVX2, "avx2")
	add(f.ASIMD, "asimd")
	if len(have) == 0 {
		return "portable fallbacks only"
	}
	return strings.Join(have, " ")
}
