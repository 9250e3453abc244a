package machine

import "fmt"

// Kind identifies the kind of automaton. The set of kinds is closed.
type Kind uint8

const (
	// EpsilonNFA is a non-deterministic automaton whose table may contain
	// epsilon transitions (symbol table.Epsilon).
	EpsilonNFA Kind = iota

	// NonEpsilonNFA is a non-deterministic automaton without epsilon
	// transitions; closures are never computed.
	NonEpsilonNFA

	// DFA is a deterministic automaton: every cell holds at most one state.
	DFA

	kindMax
)

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < kindMax
}

// IsNFA reports whether k is one of the NFA kinds.
func (k Kind) IsNFA() bool {
	return k == EpsilonNFA || k == NonEpsilonNFA
}

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case EpsilonNFA:
		return "EpsilonNFA"
	case NonEpsilonNFA:
		return "NonEpsilonNFA"
	case DFA:
		return "DFA"
	default:
		return fmt.Sprintf("UnknownKind(%d)", k)
	}
}

// Mode selects the matching policy of a simulation.
type Mode uint8

const (
	// WholeString accepts only if the entire input leads to a final state.
	WholeString Mode = iota

	// LongestPrefix accepts the longest leading run of the input that ends
	// in a final state.
	LongestPrefix

	// LongestSubstring accepts the longest contiguous run anywhere in the
	// input that ends in a final state.
	LongestSubstring

	modeMax
)

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < modeMax
}

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case WholeString:
		return "WholeString"
	case LongestPrefix:
		return "LongestPrefix"
	case LongestSubstring:
		return "LongestSubstring"
	default:
		return fmt.Sprintf("UnknownMode(%d)", m)
	}
}

// Flags modify automaton behaviour. Flags are fixed at construction.
type Flags uint32

const (
	// FlagNone selects the default behaviour.
	FlagNone Flags = 0

	// FlagCloseStart epsilon-closes the start set of an EpsilonNFA before
	// the first symbol is consumed. Without it the walk starts at exactly
	// { Start } and closures are only taken after each step.
	FlagCloseStart Flags = 1 << 0

	flagMask = FlagCloseStart
)

// Valid reports whether f only contains defined flag bits.
func (f Flags) Valid() bool {
	return f&^flagMask == 0
}

// Has reports whether every bit of flag is set in f.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}
