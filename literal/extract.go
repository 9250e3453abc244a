package literal

import (
	"github.com/coregx/fsm/state"
)

// Stepper is the view of an automaton that Extract walks. DFA and NFA
// engines implement it with their own step semantics, so the extracted
// literals agree with what a simulation would actually do.
type Stepper interface {
	// Start returns the set a simulation begins in.
	Start() state.Set

	// Step returns the set reached from set on sym; empty means the walk
	// dies.
	Step(set state.Set, sym byte) state.Set

	// IsFinal reports whether set contains a final state.
	IsFinal(set state.Set) bool

	// Symbols returns the symbols with a transition out of set.
	Symbols(set state.Set) []byte
}

// Extract returns the exhaustive set of literals every non-empty accepting
// run from the start state begins with, or nil if no useful set exists.
//
// All returned literals have the same length k, where k is the smallest of
// maxLen and the length of the shortest accepting run. Equal lengths mean
// the earliest literal occurrence in a haystack is also the earliest
// starting one, whatever search algorithm finds it.
//
// Extract returns nil when:
//   - the start set is already final (empty runs match everywhere)
//   - no symbol sequence of length 1 is viable
//   - even the length-1 literals outnumber maxLits
//
// If the length-(d+1) literals outnumber maxLits, the length-d set is
// returned instead.
//
// Algorithm: breadth-first expansion of (set, literal) pairs, one depth per
// round. Each depth is a deterministic subset walk, so no literal appears
// twice.
func Extract(st Stepper, maxLen, maxLits int) *Seq {
	start := st.Start()
	if start.IsEmpty() || st.IsFinal(start) || maxLen < 1 || maxLits < 1 {
		return nil
	}

	frontier := []item{{set: start}}
	for depth := 1; depth <= maxLen; depth++ {
		var next []item
		final := false
		for _, it := range frontier {
			for _, sym := range st.Symbols(it.set) {
				ns := st.Step(it.set, sym)
				if ns.IsEmpty() {
					continue
				}
				if len(next) == maxLits {
					if depth == 1 {
						return nil
					}
					return toSeq(frontier, st)
				}
				lit := make([]byte, len(it.lit)+1)
				copy(lit, it.lit)
				lit[len(it.lit)] = sym
				next = append(next, item{set: ns, lit: lit})
				final = final || st.IsFinal(ns)
			}
		}
		if len(next) == 0 {
			// nothing of this length is readable and nothing shorter
			// accepted: no offset can start a match
			return nil
		}
		frontier = next
		if final {
			break
		}
	}

	return toSeq(frontier, st)
}

// item is one frontier entry: the set reached by reading lit from the start.
type item struct {
	set state.Set
	lit []byte
}

func toSeq(frontier []item, st Stepper) *Seq {
	lits := make([]Literal, len(frontier))
	for i, it := range frontier {
		lits[i] = NewLiteral(it.lit, st.IsFinal(it.set))
	}
	return NewSeq(lits...)
}
