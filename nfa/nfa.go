// Package nfa simulates nondeterministic finite automata, with or without
// epsilon transitions, over a transition table.
//
// An NFA walks a set of states. Each step replaces the current set with the
// union of the table cells of its members; for EpsilonNFA machines the
// result is then epsilon-closed (see EpsilonClosure). A walk ends when the
// set becomes empty, the set equivalent of the DFA dead state.
//
// The walk starts at exactly { Start }. For EpsilonNFA machines built with
// machine.FlagCloseStart the start set is closed first, so states reachable
// from Start on epsilon moves alone are live before any symbol is read.
//
// Modes match package dfa, except for the LongestSubstring tie-break: among
// runs of equal length the earlier-starting one wins.
package nfa

import (
	"fmt"
	"sync"

	"github.com/coregx/fsm/literal"
	"github.com/coregx/fsm/machine"
	"github.com/coregx/fsm/prefilter"
	"github.com/coregx/fsm/state"
	"github.com/coregx/fsm/table"
)

// NFA is a nondeterministic automaton. It is safe for concurrent use once
// the underlying table is no longer written.
type NFA struct {
	m     *machine.Machine
	start state.Set

	pfOnce sync.Once
	pf     prefilter.Prefilter
}

// New returns an NFA with the default configuration. kind must be
// machine.EpsilonNFA or machine.NonEpsilonNFA.
//
// Errors are the construction errors of machine.New, plus InvalidKind for
// machine.DFA.
func New(finals state.Set, fn *table.Func, kind machine.Kind, flags machine.Flags) (*NFA, error) {
	return NewWithConfig(finals, fn, kind, flags, machine.DefaultConfig())
}

// NewWithConfig returns an NFA with a custom configuration.
func NewWithConfig(finals state.Set, fn *table.Func, kind machine.Kind, flags machine.Flags, config machine.Config) (*NFA, error) {
	m, err := machine.New(finals, fn, kind, flags, config)
	if err != nil {
		return nil, err
	}
	if !kind.IsNFA() {
		err := &machine.Error{
			Kind:    machine.InvalidKind,
			Message: fmt.Sprintf("an NFA cannot be built with kind %s", kind),
		}
		m.Logf(machine.LevelError, "%v", err)
		return nil, err
	}

	n := &NFA{m: m, start: state.NewSet(state.Start)}
	if kind == machine.EpsilonNFA && flags.Has(machine.FlagCloseStart) {
		n.start = n.EpsilonClosure(n.start)
	}
	return n, nil
}

// Machine returns the shared automaton core.
func (n *NFA) Machine() *machine.Machine {
	return n.m
}

// StartSet returns the set every walk begins in.
func (n *NFA) StartSet() state.Set {
	return n.start.Clone()
}

// EpsilonClosure returns the epsilon closure of set under the NFA's
// transition function.
func (n *NFA) EpsilonClosure(set state.Set) state.Set {
	return EpsilonClosure(n.m.Func(), set)
}

// Simulate runs the automaton over input under mode.
//
// The only error is ErrUnrecognizedMode. Not matching is reported through
// Result.Accepted, never as an error.
func (n *NFA) Simulate(input []byte, mode machine.Mode) (machine.Result, error) {
	if err := n.m.CheckMode(mode); err != nil {
		return machine.Result{}, err
	}

	var res machine.Result
	switch mode {
	case machine.WholeString:
		res = n.wholeString(input)
	case machine.LongestPrefix:
		res = n.longestPrefix(input)
	case machine.LongestSubstring:
		res = n.longestSubstring(input)
	}
	n.m.Stats().Record(res)
	return res, nil
}

// SimulateString is Simulate over the bytes of s.
func (n *NFA) SimulateString(s string, mode machine.Mode) (machine.Result, error) {
	return n.Simulate([]byte(s), mode)
}

// step moves every member of set on sym and closes the result for
// EpsilonNFA machines.
func (n *NFA) step(set state.Set, sym byte) state.Set {
	next := n.m.Func().StepSet(set, sym)
	if n.m.Kind() == machine.EpsilonNFA && !next.IsEmpty() {
		next = n.EpsilonClosure(next)
	}
	return next
}

// startFilter returns the start-literal prefilter, building it on first use.
func (n *NFA) startFilter() prefilter.Prefilter {
	cfg := n.m.Config()
	if !cfg.UsePrefilter {
		return nil
	}
	n.pfOnce.Do(func() {
		seq := literal.Extract(stepper{n}, cfg.MaxPrefilterLen, cfg.MaxPrefilterLiterals)
		n.pf = prefilter.Build(seq)
		if n.pf != nil {
			n.m.Logf(machine.LevelDebug, "nfa: prefilter %s over %d literals of length %d",
				n.pf.Strategy(), seq.Len(), n.pf.LiteralLen())
		}
	})
	return n.pf
}

// stepper exposes the set walk to literal.Extract.
type stepper struct {
	n *NFA
}

func (s stepper) Start() state.Set {
	return s.n.start
}

func (s stepper) Step(set state.Set, sym byte) state.Set {
	return s.n.step(set, sym)
}

func (s stepper) IsFinal(set state.Set) bool {
	return s.n.m.IsFinal(set)
}

func (s stepper) Symbols(set state.Set) []byte {
	t := s.n.m.Func().Table()
	if set.Len() == 1 {
		return t.Symbols(set.Single())
	}
	var seen [256]bool
	for _, id := range set.Values() {
		for _, sym := range t.Symbols(id) {
			seen[sym] = true
		}
	}
	var syms []byte
	for sym, ok := range seen {
		if ok {
			syms = append(syms, byte(sym))
		}
	}
	return syms
}
