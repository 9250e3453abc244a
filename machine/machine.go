// Package machine holds what DFAs and NFAs share: the final-state set, the
// machine kind and flags, the transition function, configuration, logging
// and statistics, plus the value types a simulation produces.
//
// The engines in packages dfa and nfa each compose one Machine and implement
// their own stepping on top of it:
//
//	m, err := machine.New(state.NewSet(2), fn, machine.DFA, machine.FlagNone,
//	    machine.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	m.IsFinal(state.NewSet(1, 2)) // true
package machine

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/coregx/fsm/state"
	"github.com/coregx/fsm/table"
)

// maxFinalBits bounds the final-state bitset at 8 KiB.
const maxFinalBits = 1 << 16

// Machine is the shared core of every automaton. It is immutable after New
// returns (apart from its statistics) and safe for concurrent use.
type Machine struct {
	finals    state.Set
	finalBits *bitset.BitSet
	kind      Kind
	flags     Flags
	fn        *table.Func
	config    Config
	stats     Stats
}

// New validates its arguments and returns a Machine.
//
// Errors (all *Error, reported to config.Logger as well):
//   - InvalidConfig if config does not validate
//   - EmptyFinalStates if finals is empty
//   - InvalidKind if kind is out of range
//   - InvalidFlags if flags has undefined bits
//   - NilTransitionFunc if fn is nil
func New(finals state.Set, fn *table.Func, kind Kind, flags Flags, config Config) (*Machine, error) {
	if err := config.Validate(); err != nil {
		logf(config.Logger, LevelError, "%v", err)
		return nil, err
	}

	var err *Error
	switch {
	case finals.IsEmpty():
		err = ErrEmptyFinalStates
	case !kind.Valid():
		err = &Error{Kind: InvalidKind, Message: fmt.Sprintf("the machine kind %s is invalid", kind)}
	case !flags.Valid():
		err = &Error{Kind: InvalidFlags, Message: fmt.Sprintf("the machine flags %#x are invalid", uint32(flags))}
	case fn == nil:
		err = ErrNilTransitionFunc
	}
	if err != nil {
		logf(config.Logger, LevelError, "%v", err)
		return nil, err
	}

	// the bitset costs one bit per ID up to the largest final state; above
	// maxFinalBits membership falls back to a binary search of finals
	var bits *bitset.BitSet
	if top := finals.Values()[finals.Len()-1]; top < maxFinalBits {
		bits = bitset.New(uint(top) + 1)
		for _, id := range finals.Values() {
			bits.Set(uint(id))
		}
	}

	return &Machine{
		finals:    finals.Clone(),
		finalBits: bits,
		kind:      kind,
		flags:     flags,
		fn:        fn,
		config:    config,
	}, nil
}

// FinalStates returns a copy of the set of final states.
func (m *Machine) FinalStates() state.Set {
	return m.finals.Clone()
}

// Kind returns the machine kind.
func (m *Machine) Kind() Kind {
	return m.kind
}

// Flags returns the machine flags.
func (m *Machine) Flags() Flags {
	return m.flags
}

// Func returns the transition function.
func (m *Machine) Func() *table.Func {
	return m.fn
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() Config {
	return m.config
}

// Stats returns the machine's live counters.
func (m *Machine) Stats() *Stats {
	return &m.stats
}

// IsFinalState reports whether id is a final state.
func (m *Machine) IsFinalState(id state.ID) bool {
	if m.finalBits == nil {
		return m.finals.Contains(id)
	}
	return m.finalBits.Test(uint(id))
}

// IsFinal reports whether set contains at least one final state.
func (m *Machine) IsFinal(set state.Set) bool {
	for _, id := range set.Values() {
		if m.IsFinalState(id) {
			return true
		}
	}
	return false
}

// FinalsOf returns the final states contained in set.
func (m *Machine) FinalsOf(set state.Set) state.Set {
	return set.Intersect(m.finals)
}

// Logf formats and sends a message to the configured logger.
func (m *Machine) Logf(level Level, format string, args ...any) {
	logf(m.config.Logger, level, format, args...)
}

// CheckMode returns an UnrecognizedMode error (and logs it) if mode is not
// one of the defined simulation modes.
func (m *Machine) CheckMode(mode Mode) error {
	if mode.Valid() {
		return nil
	}
	err := &Error{
		Kind:    UnrecognizedMode,
		Message: fmt.Sprintf("unrecognized simulation mode %s", mode),
	}
	m.Logf(LevelError, "%v", err)
	return err
}
