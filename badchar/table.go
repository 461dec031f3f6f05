// Package badchar builds the Horspool bad-character skip table.
//
// A Table maps every byte value to the distance a search window may advance
// when that byte is seen. Bytes that do not occur in the pattern map to the
// pattern length.
//
// Example:
//
//	t := badchar.New([]byte("ABC"))
//	t.Get('A') // 2
//	t.Get('B') // 1
//	t.Get('C') // 3 (last byte is never a zero-length advance)
//	t.Get('Z') // 3 (default)
package badchar

import (
	"unsafe"

	"github.com/coregx/horspool/internal/conv"
)

// Table is an immutable byte → skip distance mapping.
//
// The zero value is not usable; construct with New. A Table is safe for
// concurrent reads.
type Table struct {
	skips   [256]uint32
	present [4]uint64 // bitset of bytes recorded from the pattern
	size    int
}

// New builds the table for pattern.
//
// For each byte at position i the skip is len(pattern)-i-1, with later
// occurrences overwriting earlier ones. The byte at the last position is
// forced to len(pattern), so every recorded skip lies in (0, len(pattern)].
//
// Panics if pattern is empty or longer than math.MaxUint32; callers are
// expected to validate the length first.
func New(pattern []byte) *Table {
	n := len(pattern)
	if n == 0 {
		panic("badchar: empty pattern")
	}

	t := &Table{size: n}
	def := conv.IntToUint32(n)
	for i := range t.skips {
		t.skips[i] = def
	}

	last := n - 1
	for i, c := range pattern {
		skip := last - i
		if i == last {
			skip = n
		}
		t.skips[c] = conv.IntToUint32(skip)
		t.present[c>>6] |= 1 << (c & 63)
	}
	return t
}

// Get returns the skip distance for c, or Len() if c is not in the pattern.
func (t *Table) Get(c byte) int {
	return int(t.skips[c])
}

// Lookup returns the skip recorded for c and whether c occurs in the pattern.
// For absent bytes it returns (Len(), false).
func (t *Table) Lookup(c byte) (skip int, ok bool) {
	return int(t.skips[c]), t.present[c>>6]&(1<<(c&63)) != 0
}

// Len returns the pattern length the table was built for, which is also the
// default skip.
func (t *Table) Len() int {
	return t.size
}

// HeapBytes returns the memory held by the table.
func (t *Table) HeapBytes() int {
	return int(unsafe.Sizeof(*t))
}
