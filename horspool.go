// Package horspool provides Boyer-Moore-Horspool substring search over raw
// bytes.
//
// A pattern is compiled once into an immutable *Pattern holding its bytes and
// a bad-character skip table. The compiled pattern can then be reused for any
// number of searches, from any number of goroutines, without recompilation.
//
// Basic usage:
//
//	// One-shot search (compiles internally)
//	ok, err := horspool.Contains([]byte("HAYSTACKABCNEEDLE"), []byte("ABC"))
//
//	// Compile once, search many times
//	p := horspool.MustCompile("ABC")
//	for _, line := range lines {
//	    if p.Contains(line) {
//	        ...
//	    }
//	}
//
// Matching is byte-exact: there is no Unicode folding or case-insensitive
// mode, and the engine reports only whether the pattern occurs, not where.
package horspool

import (
	"errors"
	"math"

	"github.com/coregx/horspool/badchar"
)

// MaxPatternLen is the longest pattern accepted by Compile.
// Skip distances are stored as uint32.
const MaxPatternLen = math.MaxUint32

// Pattern is a compiled search pattern.
//
// A Pattern is immutable after construction and safe to use concurrently
// from multiple goroutines.
//
// Example:
//
//	p := horspool.MustCompile("needle")
//	if p.ContainsString("haystack with a needle in it") {
//	    println("found")
//	}
type Pattern struct {
	bytes []byte
	size  int
	table *badchar.Table

	// lastSkip is the shift applied when the window-end byte equals the
	// final pattern byte: distance from its previous occurrence to the end,
	// or size if it occurs only at the end.
	lastSkip int
}

// Compile compiles pattern into a reusable search descriptor.
//
// The pattern bytes are copied; the caller may reuse the slice afterwards.
// Compiling equal inputs twice yields two independent Patterns with
// identical behavior.
//
// Returns a *CompileError wrapping ErrEmptyPattern if pattern is empty.
func Compile(pattern []byte) (*Pattern, error) {
	if len(pattern) == 0 {
		return nil, &CompileError{Err: ErrEmptyPattern}
	}
	if uint64(len(pattern)) > MaxPatternLen {
		return nil, &CompileError{Pattern: string(pattern), Err: ErrPatternTooLong}
	}

	b := make([]byte, len(pattern))
	copy(b, pattern)

	return &Pattern{
		bytes:    b,
		size:     len(b),
		table:    badchar.New(b),
		lastSkip: lastByteSkip(b),
	}, nil
}

// CompileString is like Compile but takes a string.
func CompileString(pattern string) (*Pattern, error) {
	return Compile([]byte(pattern))
}

// MustCompile is like CompileString but panics if the pattern is invalid.
//
// This is useful for patterns known at compile time.
//
// Example:
//
//	var crlf = horspool.MustCompile("\r\n")
func MustCompile(pattern string) *Pattern {
	p, err := CompileString(pattern)
	if err != nil {
		panic("horspool: MustCompile(" + quote(pattern) + "): " + errors.Unwrap(err).Error())
	}
	return p
}

// lastByteSkip returns the distance from the rightmost earlier occurrence of
// the final byte to the final position, or len(b) when there is none.
func lastByteSkip(b []byte) int {
	last := len(b) - 1
	for i := last - 1; i >= 0; i-- {
		if b[i] == b[last] {
			return last - i
		}
	}
	return len(b)
}

// Len returns the pattern length in bytes.
func (p *Pattern) Len() int {
	return p.size
}

// Bytes returns a copy of the pattern bytes.
func (p *Pattern) Bytes() []byte {
	b := make([]byte, p.size)
	copy(b, p.bytes)
	return b
}

// Table returns the pattern's bad-character table.
func (p *Pattern) Table() *badchar.Table {
	return p.table
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return string(p.bytes)
}

// HeapBytes returns the number of heap bytes held by the compiled pattern.
func (p *Pattern) HeapBytes() int {
	return len(p.bytes) + p.table.HeapBytes()
}

func quote(s string) string {
	return "`" + truncate(s) + "`"
}
