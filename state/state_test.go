package state

import (
	"testing"
)

func TestSet_InsertDeduplicatesAndSorts(t *testing.T) {
	s := NewSet(5, 2, 9, 2, 5)

	want := []ID{2, 5, 9}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if s.Insert(9) {
		t.Error("Insert of existing member should return false")
	}
	if !s.Insert(1) {
		t.Error("Insert of new member should return true")
	}
	if s.Single() != 1 {
		t.Errorf("Single() = %d, want 1", s.Single())
	}
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	if !s.IsEmpty() || s.Len() != 0 {
		t.Error("zero value should be empty")
	}
	if s.Contains(Dead) {
		t.Error("empty set should not contain Dead")
	}
	if s.Single() != Dead {
		t.Errorf("Single() of empty set = %d, want Dead", s.Single())
	}
	if s.String() != "{ }" {
		t.Errorf("String() = %q, want %q", s.String(), "{ }")
	}
}

func TestSet_InsertSet(t *testing.T) {
	tests := []struct {
		name string
		a, b Set
		want Set
	}{
		{"both empty", NewSet(), NewSet(), NewSet()},
		{"into empty", NewSet(), NewSet(3, 1), NewSet(1, 3)},
		{"overlap", NewSet(1, 2), NewSet(2, 3), NewSet(1, 2, 3)},
		{"disjoint", NewSet(7), NewSet(4), NewSet(4, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Clone()
			got.InsertSet(tt.b)
			if !got.Equal(tt.want) {
				t.Errorf("union = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_InsertSetDoesNotAlias(t *testing.T) {
	src := NewSet(1, 2)
	var dst Set
	dst.InsertSet(src)
	dst.Insert(0)

	if src.Contains(0) {
		t.Error("mutating the union must not change the source set")
	}
}

func TestSet_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Set
		want Set
	}{
		{"empty", NewSet(), NewSet(1), NewSet()},
		{"partial", NewSet(1, 2, 5, 8), NewSet(2, 3, 8), NewSet(2, 8)},
		{"none", NewSet(1, 3), NewSet(2, 4), NewSet()},
		{"same", NewSet(4, 6), NewSet(4, 6), NewSet(4, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); !got.Equal(tt.want) {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_String(t *testing.T) {
	if got := NewSet(5, 2).String(); got != "{ 2, 5 }" {
		t.Errorf("String() = %q, want %q", got, "{ 2, 5 }")
	}
	if got := NewSet(Start).String(); got != "{ 1 }" {
		t.Errorf("String() = %q, want %q", got, "{ 1 }")
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	a := NewSet(1, 2)
	b := a.Clone()
	b.Insert(3)
	if a.Contains(3) {
		t.Error("clone shares storage with original")
	}
}

func TestSet_CopiesDoNotShareInserts(t *testing.T) {
	a := NewSet(2, 5, 9)
	b := a
	b.Insert(3)
	b.Insert(11)

	if !a.Equal(NewSet(2, 5, 9)) {
		t.Errorf("original = %s after inserting into a copy, want { 2, 5, 9 }", a)
	}
	if !b.Equal(NewSet(2, 3, 5, 9, 11)) {
		t.Errorf("copy = %s, want { 2, 3, 5, 9, 11 }", b)
	}

	// the original keeps working independently of the copy
	a.Insert(1)
	if b.Contains(1) {
		t.Errorf("copy = %s sees an insert into the original", b)
	}

	derived := []struct {
		name string
		make func() Set
	}{
		{"Clone", func() Set { return a.Clone() }},
		{"Intersect", func() Set { return a.Intersect(NewSet(1, 2, 5, 9)) }},
		{"InsertSet", func() Set { var s Set; s.InsertSet(a); return s }},
	}
	for _, tt := range derived {
		t.Run(tt.name, func(t *testing.T) {
			before := a.Clone()
			c := tt.make()
			c.Insert(4)
			c.Insert(100)
			if !a.Equal(before) {
				t.Errorf("source = %s after inserting into %s result, want %s", a, tt.name, before)
			}
		})
	}
}
