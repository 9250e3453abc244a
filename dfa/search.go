package dfa

import (
	"github.com/coregx/fsm/machine"
	"github.com/coregx/fsm/prefilter"
	"github.com/coregx/fsm/state"
)

// run is the outcome of one walk from a start offset.
type run struct {
	// n is the length of the longest accepted run, -1 if none.
	n int

	// final is the state reached after n symbols.
	final state.ID

	// steps counts transitions taken, including the one that died.
	steps int
}

// walk follows input from state.Start until the input ends or the walk dies,
// remembering the last offset at which the current state was final.
//
// This is the backward scan over the recorded path done forwards: the
// largest path index holding a final state is the last one seen.
func (d *DFA) walk(input []byte) run {
	r := run{n: -1}
	cur := state.Start
	if d.m.IsFinalState(cur) {
		r.n, r.final = 0, cur
	}
	for i, sym := range input {
		cur = d.step(cur, sym)
		r.steps++
		if cur == state.Dead {
			break
		}
		if d.m.IsFinalState(cur) {
			r.n, r.final = i+1, cur
		}
	}
	return r
}

func (d *DFA) wholeString(input []byte) machine.Result {
	cur := state.Start
	steps := 0
	for _, sym := range input {
		cur = d.step(cur, sym)
		steps++
		if cur == state.Dead {
			break
		}
	}
	d.m.Stats().AddSteps(steps)

	if cur == state.Dead || !d.m.IsFinalState(cur) {
		return machine.Reject(input)
	}
	return machine.NewResult(true, state.NewSet(cur), machine.Indices{Start: 0, End: len(input)}, input)
}

func (d *DFA) longestPrefix(input []byte) machine.Result {
	r := d.walk(input)
	d.m.Stats().AddSteps(r.steps)
	if r.n < 0 {
		return machine.Reject(input)
	}
	return machine.NewResult(true, state.NewSet(r.final), machine.Indices{Start: 0, End: r.n}, input)
}

// longestSubstring walks from every offset and keeps the longest accepted
// run. Ties go to the later start: a candidate replaces the best one when
// it is at least as long.
//
// Once fewer symbols remain than the best length, no later start can win
// and the scan stops. With a prefilter, offsets where no start literal
// begins are skipped; they could not have produced a candidate.
func (d *DFA) longestSubstring(input []byte) machine.Result {
	var (
		best      = run{n: -1}
		bestStart int
		steps     int
		skipped   int
	)
	tr := prefilter.NewTracker(d.startFilter())

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

		r := d.walk(input[i:])
		steps += r.steps
		if r.n < 0 {
			continue
		}
		tr.ConfirmMatch()
		if r.n >= best.n {
			best, bestStart = r, i
		}
	}

	stats := d.m.Stats()
	stats.AddSteps(steps)
	stats.AddSkipped(skipped)

	if best.n < 0 {
		d.m.Logf(machine.LevelDebug, "dfa: no substring accepted (%d offsets skipped)", skipped)
		return machine.Reject(input)
	}
	idx := machine.Indices{Start: 0, End: best.n}.Shift(bestStart)
	d.m.Logf(machine.LevelDebug, "dfa: longest substring %s (%d offsets skipped)", idx, skipped)
	return machine.NewResult(true, state.NewSet(best.final), idx, input)
}
