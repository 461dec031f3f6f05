package horspool

import (
	"errors"
	"fmt"
)

// Compilation errors
var (
	// ErrEmptyPattern indicates a zero-length pattern was supplied.
	// An empty pattern has no bad-character table and is rejected rather
	// than treated as matching everywhere.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrPatternTooLong indicates the pattern exceeds MaxPatternLen bytes.
	ErrPatternTooLong = errors.New("pattern too long")
)

// CompileError wraps compilation errors with the offending pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("horspool: compiling pattern %q: %v", truncate(e.Pattern), e.Err)
	}
	return fmt.Sprintf("horspool: compiling pattern: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// truncate keeps error messages bounded for very long patterns.
func truncate(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
