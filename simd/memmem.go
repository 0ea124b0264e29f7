package simd

import "bytes"

// Memmem returns the index of the first occurrence of needle in haystack,
// or -1 if absent. It anchors the search on the needle's last byte (in
// practice a better discriminator than the first byte for literals pulled
// out of patterns, since shared prefixes are common and shared suffixes
// are not) located via Memchr, then verifies the full needle at each
// candidate.
func Memmem(haystack, needle []byte) int {
	nlen, hlen := len(needle), len(haystack)
	switch {
	case nlen == 0:
		return 0
	case hlen == 0 || nlen > hlen:
		return -1
	case nlen == 1:
		return Memchr(haystack, needle[0])
	}

	anchor := needle[nlen-1]
	anchorIdx := nlen - 1

	search := 0
	for {
		pos := Memchr(haystack[search:], anchor)
		if pos == -1 {
			return -1
		}
		pos += search

		start := pos - anchorIdx
		if start < 0 || start+nlen > hlen {
			search = pos + 1
			if search >= hlen {
				return -1
			}
			continue
		}
		if bytes.Equal(haystack[start:start+nlen], needle) {
			return start
		}
		search = pos + 1
		if search >= hlen {
			return -1
		}
	}
}
