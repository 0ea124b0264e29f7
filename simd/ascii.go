// Package simd provides SIMD-within-a-register (SWAR) byte-scanning
// primitives used by the prefilter package: IsASCII gates the engine's
// 7-bit-only fast path, and Memchr/Memmem back the single-literal
// prefilter strategies.
//
// Every function here is plain Go. golang.org/x/sys/cpu is consulted only
// to pick a wider loop stride on CPUs that can move more memory per cycle
// (AVX2 implies a modern, wide-load-friendly core); it does not gate any
// actual vector instruction.
package simd

import "encoding/binary"

const (
	narrowWords = 1
	wideWords   = 4
	lo8         = 0x0101010101010101
	hi8         = 0x8080808080808080
)

// IsASCII reports whether every byte in data has its high bit clear
// (value < 0x80). The engine only ever compiles and matches 7-bit
// patterns, so this is checked once per input at the API boundary.
func IsASCII(data []byte) bool {
	words := narrowWords
	if hasWideStride {
		words = wideWords
	}
	return isASCIIStrided(data, words)
}

func isASCIIStrided(data []byte, words int) bool {
	n := len(data)
	chunk := 8 * words
	i := 0
	for i+chunk <= n {
		var acc uint64
		for w := 0; w < words; w++ {
			acc |= binary.LittleEndian.Uint64(data[i+w*8:])
		}
		if acc&hi8 != 0 {
			return false
		}
		i += chunk
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}
