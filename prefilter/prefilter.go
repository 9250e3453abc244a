// Package prefilter finds candidate start offsets for substring simulation.
//
// A prefilter is built from a literal.Seq produced by literal.Extract. Every
// accepting run of the automaton begins with one of the literals, so any
// offset where none of them occurs can be skipped without walking the
// automaton. The engines still verify every candidate with a full walk.
//
// The package selects a search strategy from the shape of the literals:
//   - One 1-byte literal  → memchr (bytes.IndexByte)
//   - Many 1-byte literals → byte class (bitset lookup per byte)
//   - One longer literal   → memmem (bytes.Index)
//   - Many longer literals → Aho-Corasick automaton
//
// Example usage:
//
//	seq := literal.Extract(stepper, 3, 64)
//	pf := prefilter.Build(seq)
//	for pos := pf.Find(haystack, 0); pos != -1; pos = pf.Find(haystack, pos+1) {
//	    // walk the automaton from pos
//	}
package prefilter

import (
	"bytes"

	"github.com/bits-and-blooms/bitset"
	"github.com/coregx/ahocorasick"

	"github.com/coregx/fsm/literal"
)

// Prefilter reports candidate start offsets in a haystack.
type Prefilter interface {
	// Find returns the smallest offset >= start at which one of the
	// prefilter literals begins, or -1 if none does.
	//
	// Parameters:
	//   haystack - the byte buffer to search
	//   start - the starting position (values outside [0, len) yield -1)
	Find(haystack []byte, start int) int

	// LiteralLen returns the length shared by all literals.
	LiteralLen() int

	// Strategy names the search algorithm, for logging.
	Strategy() string
}

// Build constructs the best prefilter for the given literals.
//
// Returns nil if seq is empty, if its literals differ in length (the
// earliest occurrence would not be the earliest start for every strategy),
// or if the Aho-Corasick automaton cannot be built.
//
// Example:
//
//	pf := prefilter.Build(seq)
//	if pf == nil {
//	    // try every offset
//	}
func Build(seq *literal.Seq) Prefilter {
	n, ok := seq.UniformLen()
	if !ok || n == 0 {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if n == 1 {
			return &memchrPrefilter{needle: lit.Bytes[0]}
		}
		return &memmemPrefilter{needle: bytes.Clone(lit.Bytes)}
	}

	if n == 1 {
		set := bitset.New(256)
		for i := 0; i < seq.Len(); i++ {
			set.Set(uint(seq.Get(i).Bytes[0]))
		}
		return &byteClassPrefilter{set: set}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, n: n}
}

// memchrPrefilter searches for a single byte.
type memchrPrefilter struct {
	needle byte
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (p *memchrPrefilter) LiteralLen() int { return 1 }

func (p *memchrPrefilter) Strategy() string { return "memchr" }

// byteClassPrefilter searches for any byte of a set.
type byteClassPrefilter struct {
	set *bitset.BitSet
}

func (p *byteClassPrefilter) Find(haystack []byte, start int) int {
	if start < 0 {
		return -1
	}
	for i := start; i < len(haystack); i++ {
		if p.set.Test(uint(haystack[i])) {
			return i
		}
	}
	return -1
}

func (p *byteClassPrefilter) LiteralLen() int { return 1 }

func (p *byteClassPrefilter) Strategy() string { return "byteclass" }

// memmemPrefilter searches for a single multi-byte literal.
type memmemPrefilter struct {
	needle []byte
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (p *memmemPrefilter) LiteralLen() int { return len(p.needle) }

func (p *memmemPrefilter) Strategy() string { return "memmem" }

// ahoCorasickPrefilter searches for many multi-byte literals of length n.
// With equal lengths the first reported match is also the leftmost start.
type ahoCorasickPrefilter struct {
	auto *ahocorasick.Automaton
	n    int
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) LiteralLen() int { return p.n }

func (p *ahoCorasickPrefilter) Strategy() string { return "aho-corasick" }
