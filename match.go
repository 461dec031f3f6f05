package horspool

import "github.com/coregx/horspool/simd"

// Contains reports whether pattern occurs anywhere in haystack.
//
// The pattern is compiled for this call only; use Compile and
// ContainsCompiled (or Pattern.Contains) to search with the same pattern
// repeatedly. The only error is an invalid pattern (see Compile).
//
// Example:
//
//	ok, err := horspool.Contains([]byte("AABAACAADAABAABA"), []byte("AABA"))
//	// ok == true, err == nil
func Contains(haystack, pattern []byte) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Contains(haystack), nil
}

// ContainsString is like Contains but takes strings.
func ContainsString(haystack, pattern string) (bool, error) {
	p, err := CompileString(pattern)
	if err != nil {
		return false, err
	}
	return p.ContainsString(haystack), nil
}

// ContainsCompiled reports whether a previously compiled pattern occurs in
// haystack. It is equivalent to p.Contains(haystack).
func ContainsCompiled(haystack []byte, p *Pattern) bool {
	return p.Contains(haystack)
}

// Contains reports whether the pattern occurs anywhere in haystack.
//
// A haystack shorter than the pattern never matches.
func (p *Pattern) Contains(haystack []byte) bool {
	if p.size == 1 {
		return simd.ContainsByte(haystack, p.bytes[0])
	}
	return p.scan(haystack)
}

// ContainsString is like Contains but takes a string.
func (p *Pattern) ContainsString(haystack string) bool {
	return p.Contains([]byte(haystack))
}

// scan slides a window of p.size bytes over haystack, comparing each window
// backward from its last byte. On mismatch the window advances by the skip
// for the byte under the window end, which is always at least 1.
func (p *Pattern) scan(haystack []byte) bool {
	last := p.size - 1
	lastByte := p.bytes[last]

	for end := last; end < len(haystack); {
		c := haystack[end]
		if c == lastByte {
			h, i := end-1, last-1
			for i >= 0 && haystack[h] == p.bytes[i] {
				h--
				i--
			}
			if i < 0 {
				return true
			}
			end += p.lastSkip
			continue
		}
		end += p.table.Get(c)
	}
	return false
}
