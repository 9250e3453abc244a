// Package dfa simulates deterministic finite automata over a transition
// table.
//
// A DFA walks one state at a time. Every table cell it reads is collapsed to
// a single state (the lowest member, or the dead state for an empty cell),
// and reaching the dead state ends the walk: no later symbol can revive it.
// Tables with more than one destination per cell are not validated; callers
// that want set semantics should use package nfa.
//
// Three modes are supported:
//   - WholeString: the entire input must end in a final state
//   - LongestPrefix: the longest accepted run starting at offset 0
//   - LongestSubstring: the longest accepted run anywhere; among runs of
//     equal length the later-starting one wins
//
// Example:
//
//	t := table.New()
//	t.Add(1, 'a', 2)
//	t.Add(2, 'b', 3)
//	d, err := dfa.New(state.NewSet(3), table.NewFunc(t), machine.FlagNone)
//	if err != nil {
//	    return err
//	}
//	res, _ := d.Simulate([]byte("xxab"), machine.LongestSubstring)
//	fmt.Println(res.Indices) // (2, 4)
package dfa

import (
	"sync"

	"github.com/coregx/fsm/literal"
	"github.com/coregx/fsm/machine"
	"github.com/coregx/fsm/prefilter"
	"github.com/coregx/fsm/state"
	"github.com/coregx/fsm/table"
)

// DFA is a deterministic automaton. It is safe for concurrent use once the
// underlying table is no longer written.
type DFA struct {
	m *machine.Machine

	pfOnce sync.Once
	pf     prefilter.Prefilter
}

// New returns a DFA with the default configuration.
//
// Errors are the construction errors of machine.New.
func New(finals state.Set, fn *table.Func, flags machine.Flags) (*DFA, error) {
	return NewWithConfig(finals, fn, flags, machine.DefaultConfig())
}

// NewWithConfig returns a DFA with a custom configuration.
func NewWithConfig(finals state.Set, fn *table.Func, flags machine.Flags, config machine.Config) (*DFA, error) {
	m, err := machine.New(finals, fn, machine.DFA, flags, config)
	if err != nil {
		return nil, err
	}
	return &DFA{m: m}, nil
}

// Machine returns the shared automaton core.
func (d *DFA) Machine() *machine.Machine {
	return d.m
}

// Simulate runs the automaton over input under mode.
//
// The only error is ErrUnrecognizedMode. Not matching is reported through
// Result.Accepted, never as an error.
func (d *DFA) Simulate(input []byte, mode machine.Mode) (machine.Result, error) {
	if err := d.m.CheckMode(mode); err != nil {
		return machine.Result{}, err
	}

	var res machine.Result
	switch mode {
	case machine.WholeString:
		res = d.wholeString(input)
	case machine.LongestPrefix:
		res = d.longestPrefix(input)
	case machine.LongestSubstring:
		res = d.longestSubstring(input)
	}
	d.m.Stats().Record(res)
	return res, nil
}

// SimulateString is Simulate over the bytes of s.
func (d *DFA) SimulateString(s string, mode machine.Mode) (machine.Result, error) {
	return d.Simulate([]byte(s), mode)
}

// step returns the single state reached from s on sym.
func (d *DFA) step(s state.ID, sym byte) state.ID {
	return d.m.Func().Step(s, sym).Single()
}

// startFilter returns the start-literal prefilter, building it on first use.
// Nil means every offset must be tried.
func (d *DFA) startFilter() prefilter.Prefilter {
	cfg := d.m.Config()
	if !cfg.UsePrefilter {
		return nil
	}
	d.pfOnce.Do(func() {
		seq := literal.Extract(stepper{d}, cfg.MaxPrefilterLen, cfg.MaxPrefilterLiterals)
		d.pf = prefilter.Build(seq)
		if d.pf != nil {
			d.m.Logf(machine.LevelDebug, "dfa: prefilter %s over %d literals of length %d",
				d.pf.Strategy(), seq.Len(), d.pf.LiteralLen())
		}
	})
	return d.pf
}

// stepper exposes the DFA walk to literal.Extract. A set always holds at
// most one live state; the dead state is represented by the empty set.
type stepper struct {
	d *DFA
}

func (s stepper) Start() state.Set {
	return state.NewSet(state.Start)
}

func (s stepper) Step(set state.Set, sym byte) state.Set {
	next := s.d.step(set.Single(), sym)
	if next == state.Dead {
		return state.Set{}
	}
	return state.NewSet(next)
}

func (s stepper) IsFinal(set state.Set) bool {
	return s.d.m.IsFinal(set)
}

func (s stepper) Symbols(set state.Set) []byte {
	return s.d.m.Func().Table().Symbols(set.Single())
}
