// Package simd provides word-parallel byte scanning primitives.
//
// The implementation uses SWAR (SIMD Within A Register): eight haystack bytes
// are loaded into a uint64 and tested against a broadcast needle with a
// single zero-byte detection expression. It is portable pure Go and needs no
// CPU feature detection.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// Short inputs: setup cost dominates
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		// Matching bytes become 0x00 after the XOR
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask

		// Hacker's Delight zero-byte test: high bit set for each zero byte
		// at or below the first one; the lowest set bit is exact.
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// ContainsByte reports whether needle occurs in haystack.
func ContainsByte(haystack []byte, needle byte) bool {
	return Memchr(haystack, needle) != -1
}
