// Package visitset provides the executor's (position, program-counter)
// deduplication set.
//
// A Set is a sparse set over a known universe of encoded keys: O(1)
// insertion and membership testing, backed by parallel sparse/dense
// arrays rather than a map, so a single execution's worth of (ind, pc)
// pairs never allocates more than its declared capacity.
package visitset

import "github.com/vlinear/vrex/internal/conv"

// Set is a deduplication table of encoded (ind, pc) keys.
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New creates a Set whose keys must all be in [0, capacity).
func New(capacity int) *Set {
	c := conv.IntToUint32(capacity)
	return &Set{
		sparse: make([]uint32, c),
		dense:  make([]uint32, 0, c),
	}
}

// Contains reports whether key is already in the set.
func (s *Set) Contains(key uint32) bool {
	if key >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[key]
	return idx < s.size && s.dense[idx] == key
}

// Insert adds key to the set. A no-op if key is already present.
// Panics if key >= capacity.
func (s *Set) Insert(key uint32) {
	if s.Contains(key) {
		return
	}
	s.dense = append(s.dense, key)
	s.sparse[key] = s.size
	s.size++
}

// Len returns the number of keys currently in the set.
func (s *Set) Len() int { return int(s.size) }

// Key encodes a (ind, pc) pair into a single Set key. width must be the
// same value (len(program)+1) for every key derived for one execution.
func Key(ind, pc, width int) uint32 {
	return conv.IntToUint32(ind*width + pc)
}
