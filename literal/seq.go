// Package literal extracts the symbol sequences that every accepting run of
// an automaton must begin with.
//
// The longest-substring simulations walk the automaton from every offset of
// the input. Most offsets die on the first symbol. If the table says that any
// accepting run starts with one of a handful of short literals, the engines
// can jump from one literal occurrence to the next instead (see package
// prefilter).
//
// Key concepts:
//   - A Literal is a concrete symbol sequence read from the start state
//   - A Seq is the complete set of alternatives, all of the same length
package literal

// Literal is a symbol sequence that can be read from the start state without
// reaching the dead state.
//
// Example:
//   - Table 1 --a--> 2 --b--> 3, final {3}: Literal{[]byte("ab"), true}
//   - Table 1 --a--> 2 --b--> 3 --c--> 4, final {4}, length 2:
//     Literal{[]byte("ab"), false}
type Literal struct {
	// Bytes contains the symbols.
	Bytes []byte

	// Complete reports whether reading Bytes from the start state already
	// reaches a final state.
	Complete bool
}

// NewLiteral creates a new Literal from the given symbols and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in symbols.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals. Seqs produced by Extract are
// exhaustive: every accepting run from the start state begins with one of
// them.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), false),
//	    literal.NewLiteral([]byte("bar"), false),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// UniformLen reports the common literal length and whether all literals
// share it. An empty Seq has no uniform length.
func (s *Seq) UniformLen() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	n := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() != n {
			return 0, false
		}
	}
	return n, true
}
