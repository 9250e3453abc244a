package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/coregx/fsm/state"
)

// String renders the table for debugging. See Render.
func (t *Table) String() string {
	var b strings.Builder
	_ = t.Render(&b)
	return b.String()
}

// Render writes a human-readable grid of the table to w: one row per state
// that has at least one transition, one column per symbol used anywhere in
// the table. Render only reads the table.
func (t *Table) Render(w io.Writer) error {
	used := make([]bool, 256)
	for _, row := range t.rows {
		for sym, cell := range row {
			if !cell.IsEmpty() {
				used[sym] = true
			}
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "state")
	for sym, ok := range used {
		if ok {
			fmt.Fprintf(tw, "\t%s", symbolLabel(byte(sym)))
		}
	}
	fmt.Fprintln(tw)

	for s, row := range t.rows {
		if !hasTransitions(row) {
			continue
		}
		fmt.Fprintf(tw, "%d", s)
		for sym, ok := range used {
			if !ok {
				continue
			}
			cell := state.Set{}
			if sym < len(row) {
				cell = row[sym]
			}
			if cell.IsEmpty() {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%s", cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func hasTransitions(row []state.Set) bool {
	for _, cell := range row {
		if !cell.IsEmpty() {
			return true
		}
	}
	return false
}

func symbolLabel(sym byte) string {
	switch {
	case sym == Epsilon:
		return "ε"
	case sym > ' ' && sym < 0x7f:
		return string(rune(sym))
	default:
		return fmt.Sprintf("\\x%02x", sym)
	}
}
