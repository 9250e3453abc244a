// Package fsm simulates finite-state machines described by transition
// tables.
//
// A machine is a table of transitions (see package table), a non-empty set
// of final states and a kind: DFA, EpsilonNFA or NonEpsilonNFA. Every walk
// begins in state.Start (1); state.Dead (0) is never left once entered.
// Simulation answers one of three questions about an input, chosen by the
// mode:
//   - WholeString: does the whole input lead to a final state?
//   - LongestPrefix: what is the longest accepted run starting at offset 0?
//   - LongestSubstring: what is the longest accepted run anywhere?
//
// Basic usage:
//
//	t := table.New()
//	t.Chain(state.Start, []byte("go"))
//
//	a, err := fsm.New(state.NewSet(3), table.NewFunc(t), fsm.DFA, fsm.FlagNone)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, _ := a.SimulateString("let's go", fsm.LongestSubstring)
//	fmt.Println(res.Indices) // (6, 8)
//
// Automata are immutable after construction and safe for concurrent use as
// long as their table is no longer written.
package fsm

import (
	"github.com/coregx/fsm/dfa"
	"github.com/coregx/fsm/machine"
	"github.com/coregx/fsm/nfa"
	"github.com/coregx/fsm/state"
	"github.com/coregx/fsm/table"
)

// Automaton is a constructed DFA or NFA.
//
// Both *dfa.DFA and *nfa.NFA implement it.
type Automaton interface {
	// Simulate runs the automaton over input under mode.
	Simulate(input []byte, mode Mode) (Result, error)

	// SimulateString is Simulate over the bytes of s.
	SimulateString(s string, mode Mode) (Result, error)

	// Machine returns the shared automaton core: final states, kind,
	// flags, configuration and statistics.
	Machine() *machine.Machine
}

// Mode aliases machine.Mode so callers rarely need to import package machine.
type Mode = machine.Mode

// Kind aliases machine.Kind.
type Kind = machine.Kind

// Flags aliases machine.Flags.
type Flags = machine.Flags

// Result aliases machine.Result.
type Result = machine.Result

// Config aliases machine.Config.
type Config = machine.Config

// Simulation modes.
const (
	WholeString      = machine.WholeString
	LongestPrefix    = machine.LongestPrefix
	LongestSubstring = machine.LongestSubstring
)

// Machine kinds.
const (
	EpsilonNFA    = machine.EpsilonNFA
	NonEpsilonNFA = machine.NonEpsilonNFA
	DFA           = machine.DFA
)

// Construction flags.
const (
	FlagNone       = machine.FlagNone
	FlagCloseStart = machine.FlagCloseStart
)

var (
	_ Automaton = (*dfa.DFA)(nil)
	_ Automaton = (*nfa.NFA)(nil)
)

// DefaultConfig returns the default automaton configuration.
func DefaultConfig() Config {
	return machine.DefaultConfig()
}

// New builds the automaton for kind with the default configuration.
//
// Returns the construction errors of machine.New (all *machine.Error).
//
// Example:
//
//	a, err := fsm.New(state.NewSet(2), fn, fsm.EpsilonNFA, fsm.FlagCloseStart)
func New(finals state.Set, fn *table.Func, kind Kind, flags Flags) (Automaton, error) {
	return NewWithConfig(finals, fn, kind, flags, machine.DefaultConfig())
}

// NewWithConfig builds the automaton for kind with a custom configuration.
func NewWithConfig(finals state.Set, fn *table.Func, kind Kind, flags Flags, config Config) (Automaton, error) {
	if kind == machine.DFA {
		d, err := dfa.NewWithConfig(finals, fn, flags, config)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	n, err := nfa.NewWithConfig(finals, fn, kind, flags, config)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// MustNew is like New but panics if construction fails.
// It simplifies safe initialization of global variables holding automata.
func MustNew(finals state.Set, fn *table.Func, kind Kind, flags Flags) Automaton {
	a, err := New(finals, fn, kind, flags)
	if err != nil {
		panic(err)
	}
	return a
}
