//go:build !amd64

package simd

// hasWideStride is always false off amd64: the narrow SWAR stride is used
// unconditionally.
var hasWideStride = false
