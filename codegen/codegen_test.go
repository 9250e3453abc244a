package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/fsm/dfa"
	"github.com/coregx/fsm/machine"
	"github.com/coregx/fsm/state"
	"github.com/coregx/fsm/table"
)

func newDFA(t *testing.T, finals state.Set, build func(*table.Table)) *dfa.DFA {
	t.Helper()
	tab := table.New()
	build(tab)
	d, err := dfa.New(finals, table.NewFunc(tab), machine.FlagNone)
	require.NoError(t, err)
	return d
}

func render(t *testing.T, d *dfa.DFA, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(d, opts, &buf))
	return buf.String()
}

// parse checks the generated source is valid Go and returns its function names.
func parse(t *testing.T, src string) []string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err, src)

	var names []string
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			names = append(names, fn.Name.Name)
		}
	}
	return names
}

func TestGenerateIdentifier(t *testing.T) {
	d := newDFA(t, state.NewSet(2), func(tab *table.Table) {
		for c := byte('a'); c <= 'z'; c++ {
			tab.Add(1, c, 2)
			tab.Add(2, c, 2)
		}
		for c := byte('0'); c <= '9'; c++ {
			tab.Add(2, c, 2)
		}
	})

	src := render(t, d, Options{Package: "ident", Name: "Ident"})
	assert.Equal(t, []string{"IdentMatch", "IdentLongestPrefix"}, parse(t, src))
	assert.Contains(t, src, "package ident")
	assert.Contains(t, src, "DO NOT EDIT")
	assert.Contains(t, src, "func IdentMatch(input []byte) bool")
	assert.Contains(t, src, "func IdentLongestPrefix(input []byte) int")
	assert.Contains(t, src, "'a'")
	assert.Contains(t, src, "'9'")
	assert.Contains(t, src, "end := -1")
}

func TestGenerateSkipsUnreachableAndDead(t *testing.T) {
	d := newDFA(t, state.NewSet(3), func(tab *table.Table) {
		tab.Chain(1, []byte("ab"))
		tab.Add(1, 'z', state.Dead)
		tab.Add(7, 'q', 8) // unreachable from the start state
	})

	src := render(t, d, Options{Package: "ab", Name: "AB"})
	parse(t, src)
	assert.NotContains(t, src, "'z'")
	assert.NotContains(t, src, "'q'")
	assert.NotContains(t, src, "case 7")
}

func TestGenerateStartFinalAndNoEdges(t *testing.T) {
	d := newDFA(t, state.NewSet(1), func(*table.Table) {})

	src := render(t, d, Options{Package: "empty", Name: "Empty"})
	parse(t, src)
	assert.Contains(t, src, "end := 0")
	assert.Contains(t, src, "for range input")
}

func TestGenerateNonPrintable(t *testing.T) {
	d := newDFA(t, state.NewSet(2), func(tab *table.Table) {
		tab.Add(1, 0xff, 2)
		tab.Add(1, '\'', 2)
	})

	src := render(t, d, Options{Package: "bin", Name: "Bin"})
	parse(t, src)
	assert.Contains(t, src, "255")
	assert.Contains(t, src, `'\''`)
}

func TestGenerateErrors(t *testing.T) {
	d := newDFA(t, state.NewSet(2), func(tab *table.Table) { tab.Add(1, 'a', 2) })

	_, err := Generate(nil, Options{Package: "p", Name: "N"})
	assert.ErrorIs(t, err, ErrNilDFA)

	for _, opts := range []Options{
		{Package: "", Name: "N"},
		{Package: "p", Name: ""},
		{Package: "my-pkg", Name: "N"},
		{Package: "p", Name: "1N"},
	} {
		_, err := Generate(d, opts)
		assert.ErrorIs(t, err, ErrInvalidOptions, "%+v", opts)
	}
}
