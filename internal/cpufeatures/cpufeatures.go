// Package cpufeatures detects CPU extensions relevant to fast byte
// scanning, grounded on the teacher's simd/ascii_amd64.go feature-gating
// pattern. Detection only selects between portable Go code paths here
// (see DESIGN.md for why the teacher's actual AVX2 assembly kernels are
// not ported); golang.org/x/sys/cpu is still the thing doing the
// detection.
package cpufeatures

import "golang.org/x/sys/cpu"

// Features summarizes the extensions the current process can use.
type Features struct {
	HasAVX2  bool
	HasSSE42 bool
}

// Detected is computed once at process init from golang.org/x/sys/cpu.
var Detected = detect()

func detect() Features {
	return Features{
		HasAVX2:  cpu.X86.HasAVX2,
		HasSSE42: cpu.X86.HasSSE42,
	}
}

// ASCIIChunkSize returns the word size the ASCII-scan loop in
// internal/accelerate should unroll to: wider on CPUs that can chew
// through more bytes per cache line efficiently, narrower as a portable
// fallback otherwise.
func ASCIIChunkSize() int {
	switch {
	case Detected.HasAVX2:
		return 32
	case Detected.HasSSE42:
		return 16
	default:
		return 8
	}
}
