package nfa

import (
	"github.com/coregx/fsm/machine"
	"github.com/coregx/fsm/prefilter"
	"github.com/coregx/fsm/state"
)

// run is the outcome of one walk from a start offset.
type run struct {
	// n is the length of the longest accepted run, -1 if none.
	n int

	// finals holds the final states present after n symbols.
	finals state.Set

	// steps counts set transitions taken.
	steps int
}

// walk follows input from the start set until the input ends or the set
// becomes empty, remembering the last offset at which the set was final.
func (n *NFA) walk(input []byte) run {
	r := run{n: -1}
	cur := n.start
	if n.m.IsFinal(cur) {
		r.n, r.finals = 0, n.m.FinalsOf(cur)
	}
	for i, sym := range input {
		cur = n.step(cur, sym)
		r.steps++
		if cur.IsEmpty() {
			break
		}
		if n.m.IsFinal(cur) {
			r.n, r.finals = i+1, n.m.FinalsOf(cur)
		}
	}
	return r
}

func (n *NFA) wholeString(input []byte) machine.Result {
	cur := n.start
	steps := 0
	for _, sym := range input {
		cur = n.step(cur, sym)
		steps++
		if cur.IsEmpty() {
			break
		}
	}
	n.m.Stats().AddSteps(steps)

	finals := n.m.FinalsOf(cur)
	if finals.IsEmpty() {
		return machine.Reject(input)
	}
	return machine.NewResult(true, finals, machine.Indices{Start: 0, End: len(input)}, input)
}

func (n *NFA) longestPrefix(input []byte) machine.Result {
	r := n.walk(input)
	n.m.Stats().AddSteps(r.steps)
	if r.n < 0 {
		return machine.Reject(input)
	}
	return machine.NewResult(true, r.finals, machine.Indices{Start: 0, End: r.n}, input)
}

// longestSubstring walks from every offset and keeps the longest accepted
// run. Ties go to the earlier start: a candidate replaces the best one only
// when it is strictly longer.
//
// Early exit and prefilter skipping work as in package dfa.
func (n *NFA) longestSubstring(input []byte) machine.Result {
	var (
		best      = run{n: -1}
		bestStart int
		steps     int
		skipped   int
	)
	tr := prefilter.NewTracker(n.startFilter())

	for i := 0; i < len(input); i++ {
		if len(input)-i < best.n {
			break
		}
		if tr.IsActive() {
			next := tr.Find(input, i)
			if next == -1 {
				skipped += len(input) - i
				break
			}
			skipped += next - i
			i = next
			if len(input)-i < best.n {
				break
			}
		}

		r := n.walk(input[i:])
		steps += r.steps
		if r.n < 0 {
			continue
		}
		tr.ConfirmMatch()
		if r.n > best.n {
			best, bestStart = r, i
		}
	}

	stats := n.m.Stats()
	stats.AddSteps(steps)
	stats.AddSkipped(skipped)

	if best.n < 0 {
		n.m.Logf(machine.LevelDebug, "nfa: no substring accepted (%d offsets skipped)", skipped)
		return machine.Reject(input)
	}
	idx := machine.Indices{Start: 0, End: best.n}.Shift(bestStart)
	n.m.Logf(machine.LevelDebug, "nfa: longest substring %s (%d offsets skipped)", idx, skipped)
	return machine.NewResult(true, best.finals, idx, input)
}
