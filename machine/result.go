package machine

import (
	"fmt"

	"github.com/coregx/fsm/state"
)

// Indices is a half-open [Start, End) range into a simulation input.
type Indices struct {
	Start int
	End   int
}

// Len returns the number of symbols in the range.
func (i Indices) Len() int {
	return i.End - i.Start
}

// Shift translates both ends by n. Used to re-anchor a match found in a
// sub-slice onto the enclosing input.
func (i Indices) Shift(n int) Indices {
	return Indices{Start: i.Start + n, End: i.End + n}
}

// String formats the range as "(start, end)".
func (i Indices) String() string {
	return fmt.Sprintf("(%d, %d)", i.Start, i.End)
}

// Result is the outcome of one simulation.
//
// A Result borrows the input it was computed from: Match returns a sub-slice
// of the caller's buffer, so the buffer must outlive the Result and must not
// be modified while the Result is in use.
type Result struct {
	// Accepted reports whether a match was found under the simulation mode.
	Accepted bool

	// FinalStates holds the final states present at the end of the match.
	// Empty when Accepted is false.
	FinalStates state.Set

	// Indices is the matched range; (0, 0) when Accepted is false.
	Indices Indices

	input []byte
}

// NewResult creates a result over input.
func NewResult(accepted bool, finals state.Set, idx Indices, input []byte) Result {
	return Result{
		Accepted:    accepted,
		FinalStates: finals,
		Indices:     idx,
		input:       input,
	}
}

// Reject returns a non-accepting result over input.
func Reject(input []byte) Result {
	return Result{input: input}
}

// Len returns the length of the match.
func (r Result) Len() int {
	return r.Indices.Len()
}

// Match returns input[Start:End]. The slice shares the caller's buffer.
func (r Result) Match() []byte {
	return r.input[r.Indices.Start:r.Indices.End]
}

// Input returns the input the result was computed from.
func (r Result) Input() []byte {
	return r.input
}

// String returns a human-readable summary of the result
func (r Result) String() string {
	return fmt.Sprintf("Result(accepted=%v, finalStates=%s, indices=%s, match=%q)",
		r.Accepted, r.FinalStates, r.Indices, r.Match())
}
