// Package sparse provides a sparse set of state IDs with O(1) insertion,
// membership testing and clearing.
//
// The engines use it as scratch space when taking the union of transition
// results and while expanding epsilon closures: membership tests are O(1)
// regardless of how many states have been visited, and Clear does not touch
// the backing arrays.
package sparse

import (
	"sync"

	"github.com/coregx/fsm/internal/conv"
)

// SparseSet is a set of uint32 values backed by a sparse array (value ->
// index in dense) and a dense array (insertion-ordered values).
//
// Unlike a fixed-universe sparse set, Insert grows the sparse array when a
// value falls outside the current capacity. Tables grow while they are built,
// so callers size the set from Table.MaxState and rely on growth only as a
// fallback.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
}

// NewSparseSet creates a sparse set able to hold values in [0, capacity)
// without reallocating.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	if value >= s.Capacity() {
		s.grow(value + 1)
	}
	s.sparse[value] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= s.Capacity() {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear empties the set in O(1); stale sparse entries are rejected by the
// dense cross-check in Contains.
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no values.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Capacity returns the exclusive upper bound of values storable without growth.
func (s *SparseSet) Capacity() uint32 {
	return conv.IntToUint32(len(s.sparse))
}

// Values returns the values in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}

func (s *SparseSet) grow(capacity uint32) {
	if c := 2 * s.Capacity(); c > capacity {
		capacity = c
	}
	sparse := make([]uint32, capacity)
	copy(sparse, s.sparse)
	s.sparse = sparse
}

// initialPoolCapacity sizes pooled sets. They grow on demand to the highest
// ID actually inserted, never to the highest ID a table mentions.
const initialPoolCapacity = 64

// pool recycles scratch sets between steps and closures. Pooled sets keep
// their grown capacity, so steady-state stepping does not allocate.
var pool = sync.Pool{
	New: func() any {
		return NewSparseSet(initialPoolCapacity)
	},
}

// Get returns an empty scratch set from the pool.
func Get() *SparseSet {
	return pool.Get().(*SparseSet)
}

// Put clears s and returns it to the pool. s must not be used afterwards.
func Put(s *SparseSet) {
	if s == nil {
		return
	}
	s.Clear()
	pool.Put(s)
}
