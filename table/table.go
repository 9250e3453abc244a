// Package table provides the sparse transition table and the transition
// function that drive every automaton in this module.
//
// A Table maps (state, symbol) pairs to sets of destination states. Rows are
// allocated on demand, and a row only grows as wide as the largest symbol
// written to it, so tables over small alphabets stay small.
//
// Reads and writes are split:
//   - Get never allocates: a cell that was never written, or lies outside the
//     allocated storage, reads as the empty set.
//   - Cell, Set, Add and Chain grow storage as needed. Growth copies every
//     existing cell, so nothing written before is ever lost.
//
// Because Get does not mutate, any number of goroutines may simulate against
// a Table once it is fully built. Writing to a Table while simulations read
// it is not supported.
//
// Example:
//
//	t := table.New()
//	t.Add(1, 'a', 2)
//	t.Add(2, 'a', 2)
//	fn := table.NewFunc(t)
//	fn.Step(1, 'a') // { 2 }
package table

import (
	"github.com/coregx/fsm/internal/conv"
	"github.com/coregx/fsm/state"
)

// Epsilon is the symbol reserved for transitions that consume no input.
// Epsilon-NFAs follow these edges when computing closures.
const Epsilon byte = 0

// Table is a sparse two-dimensional mapping from (state, symbol) to a set of
// destination states. The zero value is an empty table ready to use.
type Table struct {
	rows     [][]state.Set
	maxState state.ID
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// NewWithSize creates a table pre-sized for states [0, states) and symbols
// [0, symbols). Pre-sizing is an optimization only; writes beyond the
// declared bounds still grow the table.
func NewWithSize(states, symbols int) *Table {
	t := &Table{}
	t.Grow(states, symbols)
	return t
}

// Grow ensures storage for states [0, states) and symbols [0, symbols)
// without changing any stored cell.
func (t *Table) Grow(states, symbols int) {
	if states > len(t.rows) {
		t.growRows(states)
	}
	if symbols > 256 {
		symbols = 256
	}
	for i := range t.rows {
		if len(t.rows[i]) < symbols {
			t.rows[i] = growRow(t.rows[i], symbols)
		}
	}
}

// Get returns the destinations of (s, sym). It never allocates; absent cells
// read as the empty set. The returned set shares storage with the table and
// must not be modified; use Cell for writes.
func (t *Table) Get(s state.ID, sym byte) state.Set {
	if int(s) >= len(t.rows) {
		return state.Set{}
	}
	row := t.rows[s]
	if int(sym) >= len(row) {
		return state.Set{}
	}
	return row[sym]
}

// Cell returns the writable cell for (s, sym), growing storage to fit it.
func (t *Table) Cell(s state.ID, sym byte) *state.Set {
	if int(s) >= len(t.rows) {
		t.growRows(int(s) + 1)
	}
	if int(sym) >= len(t.rows[s]) {
		t.rows[s] = growRow(t.rows[s], int(sym)+1)
	}
	t.observe(s)
	return &t.rows[s][sym]
}

// Set replaces the destinations of (s, sym) with a copy of dst.
func (t *Table) Set(s state.ID, sym byte, dst state.Set) {
	cell := t.Cell(s, sym)
	*cell = dst.Clone()
	for _, id := range dst.Values() {
		t.observe(id)
	}
}

// Add inserts destinations into the cell for (s, sym), keeping any already
// present.
func (t *Table) Add(s state.ID, sym byte, dst ...state.ID) {
	cell := t.Cell(s, sym)
	for _, id := range dst {
		cell.Insert(id)
		t.observe(id)
	}
}

// Chain wires one fresh state per symbol of seq:
//
//	start --seq[0]--> start+1 --seq[1]--> start+2 --> ...
//
// and returns the last state reached. An empty seq returns start. Chain is a
// builder convenience; simulation never calls it.
func (t *Table) Chain(start state.ID, seq []byte) state.ID {
	cur := start
	for _, sym := range seq {
		next := cur + 1
		t.Add(cur, sym, next)
		cur = next
	}
	return cur
}

// NumStates returns the number of allocated rows. States at or beyond this
// bound have no outgoing transitions.
func (t *Table) NumStates() int {
	return len(t.rows)
}

// MaxState returns the highest state ID written as a source or destination.
func (t *Table) MaxState() state.ID {
	return t.maxState
}

// Symbols returns the symbols that have a non-empty cell in row s, in
// ascending order. Epsilon is included when s has epsilon transitions.
func (t *Table) Symbols(s state.ID) []byte {
	if int(s) >= len(t.rows) {
		return nil
	}
	var syms []byte
	for sym, cell := range t.rows[s] {
		if !cell.IsEmpty() {
			syms = append(syms, conv.IntToByte(sym))
		}
	}
	return syms
}

func (t *Table) observe(id state.ID) {
	if id > t.maxState {
		t.maxState = id
	}
}

func (t *Table) growRows(n int) {
	rows := make([][]state.Set, n)
	copy(rows, t.rows)
	t.rows = rows
}

func growRow(row []state.Set, n int) []state.Set {
	grown := make([]state.Set, n)
	copy(grown, row)
	return grown
}
