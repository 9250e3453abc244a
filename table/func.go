package table

import (
	"github.com/coregx/fsm/internal/sparse"
	"github.com/coregx/fsm/state"
)

// Func is the transition function of an automaton: a thin callable view of
// exactly one Table. It never changes matching state; the only mutation it
// can cause is table growth through Cell.
type Func struct {
	t *Table
}

// NewFunc wraps t. A nil t is replaced by an empty table.
func NewFunc(t *Table) *Func {
	if t == nil {
		t = New()
	}
	return &Func{t: t}
}

// Table returns the wrapped table.
func (f *Func) Table() *Table {
	return f.t
}

// Step returns the destinations of (s, sym). The result shares storage with
// the table and must not be modified.
func (f *Func) Step(s state.ID, sym byte) state.Set {
	return f.t.Get(s, sym)
}

// Cell is the mutable form of Step: it returns the writable cell for
// (s, sym), growing the table if needed.
func (f *Func) Cell(s state.ID, sym byte) *state.Set {
	return f.t.Cell(s, sym)
}

// StepSet applies the table to every member of set and returns the union of
// the results as a fresh set. This is the step primitive shared by both
// engines: an NFA keeps the whole union, a DFA collapses it to one state.
func (f *Func) StepSet(set state.Set, sym byte) state.Set {
	switch set.Len() {
	case 0:
		return state.Set{}
	case 1:
		return f.t.Get(set.Single(), sym).Clone()
	}

	seen := sparse.Get()
	defer sparse.Put(seen)
	ids := make([]state.ID, 0, set.Len())
	for _, s := range set.Values() {
		for _, d := range f.t.Get(s, sym).Values() {
			if seen.Insert(uint32(d)) {
				ids = append(ids, d)
			}
		}
	}
	return state.NewSet(ids...)
}
