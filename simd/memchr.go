package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first occurrence of needle in haystack,
// or -1 if absent. It processes 8 (or, on AVX2-capable amd64, 32) bytes per
// iteration using the classic zero-byte-detection trick: XOR against a
// byte broadcast the needle into every lane, then test each lane for zero
// in parallel.
func Memchr(haystack []byte, needle byte) int {
	words := narrowWords
	if hasWideStride {
		words = wideWords
	}
	return memchrStrided(haystack, needle, words)
}

func memchrStrided(haystack []byte, needle byte, words int) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	chunk := 8 * words
	i := 0
	for i+chunk <= n {
		for w := 0; w < words; w++ {
			off := i + w*8
			x := binary.LittleEndian.Uint64(haystack[off:]) ^ mask
			if hasZero := (x - lo8) &^ x & hi8; hasZero != 0 {
				return off + bits.TrailingZeros64(hasZero)/8
			}
		}
		i += chunk
	}
	for i+8 <= n {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if hasZero := (x - lo8) &^ x & hi8; hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
