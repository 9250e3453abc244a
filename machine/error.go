package machine

import "fmt"

// ErrorKind classifies automaton errors into categories
type ErrorKind uint8

const (
	// EmptyFinalStates indicates an automaton was built without final states
	EmptyFinalStates ErrorKind = iota

	// InvalidKind indicates an out-of-range or mismatched machine kind
	InvalidKind

	// InvalidFlags indicates undefined flag bits were set
	InvalidFlags

	// NilTransitionFunc indicates an automaton was built without a
	// transition function
	NilTransitionFunc

	// InvalidConfig indicates configuration validation failed
	InvalidConfig

	// UnrecognizedMode indicates Simulate was called with an undefined mode
	UnrecognizedMode
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case EmptyFinalStates:
		return "EmptyFinalStates"
	case InvalidKind:
		return "InvalidKind"
	case InvalidFlags:
		return "InvalidFlags"
	case NilTransitionFunc:
		return "NilTransitionFunc"
	case InvalidConfig:
		return "InvalidConfig"
	case UnrecognizedMode:
		return "UnrecognizedMode"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is returned for invalid automaton construction and for invalid use
// of Simulate. A no-match is never an Error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fsm: %s: %v", e.Message, e.Cause)
	}
	return "fsm: " + e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is: two Errors match when their
// kinds are equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsConstruction reports whether the error was raised while building an
// automaton (as opposed to while simulating one).
func (e *Error) IsConstruction() bool {
	return e.Kind != UnrecognizedMode
}

// Sentinel errors for use with errors.Is
var (
	// ErrEmptyFinalStates indicates the set of final states was empty
	ErrEmptyFinalStates = &Error{
		Kind:    EmptyFinalStates,
		Message: "the set of final states cannot be empty",
	}

	// ErrInvalidKind indicates the machine kind is invalid
	ErrInvalidKind = &Error{
		Kind:    InvalidKind,
		Message: "the machine kind is invalid",
	}

	// ErrInvalidFlags indicates undefined flag bits were set
	ErrInvalidFlags = &Error{
		Kind:    InvalidFlags,
		Message: "the machine flags are invalid",
	}

	// ErrNilTransitionFunc indicates a missing transition function
	ErrNilTransitionFunc = &Error{
		Kind:    NilTransitionFunc,
		Message: "the transition function cannot be nil",
	}

	// ErrInvalidConfig indicates the configuration is invalid
	ErrInvalidConfig = &Error{
		Kind:    InvalidConfig,
		Message: "invalid automaton configuration",
	}

	// ErrUnrecognizedMode indicates Simulate received an undefined mode
	ErrUnrecognizedMode = &Error{
		Kind:    UnrecognizedMode,
		Message: "unrecognized simulation mode",
	}
)
