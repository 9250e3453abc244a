// Package codegen turns a DFA into Go source code.
//
// The generated package needs no runtime support: every reachable state of
// the automaton becomes a case of a switch statement, so the compiled
// matcher is a plain loop over the input bytes. Two functions are emitted
// for an automaton named Name:
//
//	func NameMatch(input []byte) bool        // WholeString acceptance
//	func NameLongestPrefix(input []byte) int // length of the longest accepted prefix, -1 if none
//
// Example:
//
//	var buf bytes.Buffer
//	err := codegen.Render(d, codegen.Options{Package: "ident", Name: "Ident"}, &buf)
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"slices"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/fsm/dfa"
	"github.com/coregx/fsm/state"
)

// ErrInvalidOptions is returned when Options do not name a valid package
// or function prefix.
var ErrInvalidOptions = errors.New("codegen: invalid options")

// ErrNilDFA is returned when no automaton is given.
var ErrNilDFA = errors.New("codegen: nil DFA")

// Options configures the generated code.
type Options struct {
	// Package is the name of the generated package.
	Package string

	// Name prefixes the generated functions.
	Name string
}

// Validate checks that both names are Go identifiers.
func (o Options) Validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("%w: package %q is not an identifier", ErrInvalidOptions, o.Package)
	}
	if !token.IsIdentifier(o.Name) {
		return fmt.Errorf("%w: name %q is not an identifier", ErrInvalidOptions, o.Name)
	}
	return nil
}

// Generate builds the source file for d.
func Generate(d *dfa.DFA, opts Options) (*jen.File, error) {
	if d == nil {
		return nil, ErrNilDFA
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := newGraph(d)
	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by fsm/codegen. DO NOT EDIT.")

	g.matchFunc(f, opts.Name+"Match")
	f.Line()
	g.prefixFunc(f, opts.Name+"LongestPrefix")
	return f, nil
}

// Render generates the source file for d and writes it to w.
func Render(d *dfa.DFA, opts Options, w io.Writer) error {
	f, err := Generate(d, opts)
	if err != nil {
		return err
	}
	return f.Render(w)
}

// edge groups the symbols that lead from one state to the same destination.
type edge struct {
	dst  state.ID
	syms []byte
}

// graph is the reachable part of a DFA with cells collapsed the way the
// engine collapses them.
type graph struct {
	states []state.ID
	edges  map[state.ID][]edge
	final  map[state.ID]bool
}

func newGraph(d *dfa.DFA) *graph {
	m := d.Machine()
	t := m.Func().Table()
	g := &graph{
		edges: make(map[state.ID][]edge),
		final: make(map[state.ID]bool),
	}

	seen := map[state.ID]bool{state.Start: true}
	queue := []state.ID{state.Start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		g.states = append(g.states, s)
		if m.IsFinalState(s) {
			g.final[s] = true
		}

		byDst := make(map[state.ID][]byte)
		for _, sym := range t.Symbols(s) {
			dst := t.Get(s, sym).Single()
			if dst == state.Dead {
				continue
			}
			byDst[dst] = append(byDst[dst], sym)
			if !seen[dst] {
				seen[dst] = true
				queue = append(queue, dst)
			}
		}
		dsts := make([]state.ID, 0, len(byDst))
		for dst := range byDst {
			dsts = append(dsts, dst)
		}
		slices.Sort(dsts)
		for _, dst := range dsts {
			g.edges[s] = append(g.edges[s], edge{dst: dst, syms: byDst[dst]})
		}
	}
	slices.Sort(g.states)
	return g
}

// hasEdges reports whether any reachable state has a live transition.
func (g *graph) hasEdges() bool {
	for _, edges := range g.edges {
		if len(edges) > 0 {
			return true
		}
	}
	return false
}

// rangeInput emits a range loop over input, naming only the loop variables
// the body uses so the generated code compiles.
func (g *graph) rangeInput(useIndex bool, body ...jen.Code) jen.Code {
	idx, sym := "_", "_"
	if useIndex {
		idx = "i"
	}
	if g.hasEdges() {
		sym = "c"
	}
	switch {
	case sym != "_":
		return jen.For(jen.List(jen.Id(idx), jen.Id(sym)).Op(":=").Range().Id("input")).Block(body...)
	case idx != "_":
		return jen.For(jen.Id(idx).Op(":=").Range().Id("input")).Block(body...)
	default:
		return jen.For(jen.Range().Id("input")).Block(body...)
	}
}

// finals returns the reachable final states as case values.
func (g *graph) finals() []jen.Code {
	var out []jen.Code
	for _, s := range g.states {
		if g.final[s] {
			out = append(out, jen.Lit(int(s)))
		}
	}
	return out
}

// transitions emits the state switch; onDead is the statement run when a
// symbol has no live transition.
func (g *graph) transitions(onDead jen.Code) jen.Code {
	var cases []jen.Code
	for _, s := range g.states {
		edges := g.edges[s]
		if len(edges) == 0 {
			cases = append(cases, jen.Case(jen.Lit(int(s))).Block(onDead))
			continue
		}
		var symCases []jen.Code
		for _, e := range edges {
			vals := make([]jen.Code, len(e.syms))
			for i, sym := range e.syms {
				vals[i] = symbolLit(sym)
			}
			symCases = append(symCases, jen.Case(vals...).Block(
				jen.Id("state").Op("=").Lit(int(e.dst)),
			))
		}
		symCases = append(symCases, jen.Default().Block(onDead))
		cases = append(cases, jen.Case(jen.Lit(int(s))).Block(
			jen.Switch(jen.Id("c")).Block(symCases...),
		))
	}
	cases = append(cases, jen.Default().Block(onDead))
	return jen.Switch(jen.Id("state")).Block(cases...)
}

func (g *graph) matchFunc(f *jen.File, name string) {
	body := []jen.Code{
		jen.Id("state").Op(":=").Lit(int(state.Start)),
		g.rangeInput(false, g.transitions(jen.Return(jen.False()))),
	}
	if finals := g.finals(); len(finals) > 0 {
		body = append(body, jen.Switch(jen.Id("state")).Block(
			jen.Case(finals...).Block(jen.Return(jen.True())),
		))
	}
	body = append(body, jen.Return(jen.False()))

	f.Commentf("%s reports whether the whole input is accepted.", name)
	f.Func().Id(name).Params(jen.Id("input").Index().Byte()).Bool().Block(body...)
}

func (g *graph) prefixFunc(f *jen.File, name string) {
	start := -1
	if g.final[state.Start] {
		start = 0
	}
	finals := g.finals()

	loop := []jen.Code{g.transitions(jen.Return(jen.Id("end")))}
	if len(finals) > 0 {
		loop = append(loop, jen.Switch(jen.Id("state")).Block(
			jen.Case(finals...).Block(jen.Id("end").Op("=").Id("i").Op("+").Lit(1)),
		))
	}

	f.Commentf("%s returns the length of the longest accepted prefix of input, or -1.", name)
	f.Func().Id(name).Params(jen.Id("input").Index().Byte()).Int().Block(
		jen.Id("state").Op(":=").Lit(int(state.Start)),
		jen.Id("end").Op(":=").Lit(start),
		g.rangeInput(len(finals) > 0, loop...),
		jen.Return(jen.Id("end")),
	)
}

// symbolLit renders printable ASCII as a rune literal and anything else as
// an integer.
func symbolLit(sym byte) jen.Code {
	if sym >= ' ' && sym <= '~' {
		return jen.LitRune(rune(sym))
	}
	return jen.Lit(int(sym))
}
