// Package handle exposes compiled patterns through opaque integer handles.
//
// Binding layers (cgo exports, plugin hosts, RPC shims) often cannot hold Go
// pointers across calls. A Registry stores each *horspool.Pattern in an
// arena slot and hands out a Handle that encodes the slot index and a
// generation counter. Handles are reference counted: the slot is released
// when the last holder calls Release, and a stale handle to a recycled slot
// is rejected instead of silently resolving to a different pattern.
package handle

import (
	"errors"
	"sync"

	"github.com/coregx/horspool"
)

// ErrInvalidHandle indicates a handle that was never issued, or whose
// pattern has already been released.
var ErrInvalidHandle = errors.New("invalid pattern handle")

// Handle is an opaque reference to a compiled pattern in a Registry.
// The zero Handle is never valid.
type Handle uint64

// index and generation are packed as gen<<32 | (index+1).
func makeHandle(index int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index+1))
}

func (h Handle) split() (index int, gen uint32) {
	return int(uint32(h)) - 1, uint32(h >> 32)
}

type slot struct {
	pattern *horspool.Pattern
	refs    int
	gen     uint32
}

// Registry is an arena of compiled patterns addressed by Handle.
//
// A Registry is safe for concurrent use. Lookups take a read lock only, so
// searches through different (or the same) handles run in parallel.
type Registry struct {
	mu    sync.RWMutex
	slots []slot
	free  []int
	live  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Compile compiles pattern and registers it with a reference count of one.
func (r *Registry) Compile(pattern []byte) (Handle, error) {
	p, err := horspool.Compile(pattern)
	if err != nil {
		return 0, err
	}
	return r.Register(p), nil
}

// Register stores an already compiled pattern with a reference count of one.
//
// Panics if p is nil.
func (r *Registry) Register(p *horspool.Pattern) Handle {
	if p == nil {
		panic("handle: Register called with nil pattern")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		idx = len(r.slots) - 1
	}

	s := &r.slots[idx]
	s.pattern = p
	s.refs = 1
	s.gen++
	r.live++
	return makeHandle(idx, s.gen)
}

// Retain adds a reference to h.
func (r *Registry) Retain(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(h)
	if !ok {
		return ErrInvalidHandle
	}
	s.refs++
	return nil
}

// Release drops a reference to h. When the count reaches zero the pattern
// is removed and h becomes invalid.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(h)
	if !ok {
		return ErrInvalidHandle
	}
	s.refs--
	if s.refs > 0 {
		return nil
	}

	idx, _ := h.split()
	s.pattern = nil
	r.free = append(r.free, idx)
	r.live--
	return nil
}

// Pattern resolves h to its compiled pattern.
func (r *Registry) Pattern(h Handle) (*horspool.Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.lookup(h)
	if !ok {
		return nil, ErrInvalidHandle
	}
	return s.pattern, nil
}

// Contains reports whether the pattern behind h occurs in haystack.
// The search itself runs outside the registry lock.
func (r *Registry) Contains(h Handle, haystack []byte) (bool, error) {
	p, err := r.Pattern(h)
	if err != nil {
		return false, err
	}
	return p.Contains(haystack), nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(h Handle) (*slot, bool) {
	idx, gen := h.split()
	if idx < 0 || idx >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[idx]
	if s.gen != gen || s.refs == 0 {
		return nil, false
	}
	return s, true
}
