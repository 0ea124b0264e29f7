//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasWideStride reports whether the CPU advertises AVX2, used only to pick
// a wider pure-Go SWAR stride (four words per check instead of one) for
// IsASCII and Memchr. There is no hand-written vector assembly here: AVX2
// availability is a proxy for "this CPU has plenty of memory bandwidth per
// cycle", not a gate on an actual AVX2 code path.
var hasWideStride = cpu.X86.HasAVX2
