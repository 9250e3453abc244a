package literal

import "testing"

func TestSeqBasics(t *testing.T) {
	var nilSeq *Seq
	if nilSeq.Len() != 0 || !nilSeq.IsEmpty() {
		t.Fatal("nil Seq must behave as empty")
	}

	seq := NewSeq(
		NewLiteral([]byte("hello"), true),
		NewLiteral([]byte("help"), false),
		NewLiteral([]byte("hex"), false),
	)
	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}
	if _, ok := seq.UniformLen(); ok {
		t.Error("UniformLen() reported uniform for mixed lengths")
	}
	if _, ok := nilSeq.UniformLen(); ok {
		t.Error("UniformLen() reported uniform for an empty Seq")
	}

	uniform := NewSeq(NewLiteral([]byte("ab"), false), NewLiteral([]byte("cd"), true))
	if n, ok := uniform.UniformLen(); !ok || n != 2 {
		t.Errorf("UniformLen() = %d, %v, want 2, true", n, ok)
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit  Literal
		want string
	}{
		{NewLiteral([]byte("ab"), true), "literal{ab, complete=true}"},
		{NewLiteral([]byte("x"), false), "literal{x, complete=false}"},
	}
	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
