// Package state defines automaton state identifiers and ordered state sets.
//
// Two IDs are reserved for every automaton: Dead (0) is the sentinel for
// "no transition" and Start (1) is where every simulation begins. All other
// IDs are assigned by whoever builds the transition table.
package state

import (
	"slices"
	"strconv"
	"strings"
)

// ID identifies a state. This is a 32-bit unsigned integer for compact
// representation in tables and sparse sets.
type ID uint32

// Reserved state IDs
const (
	// Dead is the absorbing reject state. A walk that reaches it stops.
	Dead ID = 0

	// Start is the state every simulation begins in.
	Start ID = 1
)

// Set is a deduplicated set of state IDs kept in ascending order, so
// iteration and String are deterministic. The zero value is an empty set
// ready to use.
//
// Copies of a Set share storage until one of them is modified: Insert never
// writes into a backing array another copy can see.
type Set struct {
	ids []ID
}

// NewSet returns a set holding the given IDs.
func NewSet(ids ...ID) Set {
	s := Set{ids: slices.Clone(ids)}
	slices.Sort(s.ids)
	s.ids = slices.Clip(slices.Compact(s.ids))
	return s
}

// Insert adds id and reports whether it was not already present.
func (s *Set) Insert(id ID) bool {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		return false
	}
	// clipped so the insert reallocates instead of shifting shared storage
	s.ids = slices.Insert(slices.Clip(s.ids), i, id)
	return true
}

// InsertSet adds every member of other (set union in place).
func (s *Set) InsertSet(other Set) {
	if len(s.ids) == 0 {
		s.ids = slices.Clip(slices.Clone(other.ids))
		return
	}
	for _, id := range other.ids {
		s.Insert(id)
	}
}

// Contains reports whether id is a member.
func (s Set) Contains(id ID) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return len(s.ids) == 0
}

// Values returns the members in ascending order.
// The slice is shared with the set and must not be modified.
func (s Set) Values() []ID {
	return s.ids
}

// Single collapses the set to one representative: the lowest member, or Dead
// for the empty set. It is only meaningful where at most one member is
// expected, such as DFA transitions.
func (s Set) Single() ID {
	if len(s.ids) == 0 {
		return Dead
	}
	return s.ids[0]
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.ids, other.ids)
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	return Set{ids: slices.Clip(slices.Clone(s.ids))}
}

// Intersect returns the members present in both sets.
func (s Set) Intersect(other Set) Set {
	var out Set
	i, j := 0, 0
	for i < len(s.ids) && j < len(other.ids) {
		switch {
		case s.ids[i] < other.ids[j]:
			i++
		case s.ids[i] > other.ids[j]:
			j++
		default:
			out.ids = append(out.ids, s.ids[i])
			i++
			j++
		}
	}
	out.ids = slices.Clip(out.ids)
	return out
}

// String renders the set as "{ 1, 2, 5 }", or "{ }" when empty.
func (s Set) String() string {
	if len(s.ids) == 0 {
		return "{ }"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, id := range s.ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	b.WriteString(" }")
	return b.String()
}
