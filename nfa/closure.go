package nfa

import (
	"github.com/coregx/fsm/internal/sparse"
	"github.com/coregx/fsm/state"
	"github.com/coregx/fsm/table"
)

// EpsilonClosure returns every state reachable from a member of set using
// only table.Epsilon transitions, set itself included.
//
// Algorithm: iterative DFS with an explicit stack. A state is pushed at most
// once, so cycles of epsilon moves terminate.
//
// Properties:
//   - EpsilonClosure(fn, EpsilonClosure(fn, s)) == EpsilonClosure(fn, s)
//   - s ⊆ t implies EpsilonClosure(fn, s) ⊆ EpsilonClosure(fn, t)
func EpsilonClosure(fn *table.Func, set state.Set) state.Set {
	if set.IsEmpty() {
		return state.Set{}
	}

	visited := sparse.Get()
	defer sparse.Put(visited)
	stack := make([]state.ID, 0, set.Len())
	for _, id := range set.Values() {
		if visited.Insert(uint32(id)) {
			stack = append(stack, id)
		}
	}

	closed := make([]state.ID, 0, set.Len())
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closed = append(closed, id)

		for _, next := range fn.Step(id, table.Epsilon).Values() {
			if visited.Insert(uint32(next)) {
				stack = append(stack, next)
			}
		}
	}
	return state.NewSet(closed...)
}
