package export

import (
	"slices"
	"testing"
)

func TestSet(t *testing.T) {
	s := NewSet("bob", "alice", "bob")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has("alice") || !s.Has("bob") {
		t.Error("Has() should report inserted identifiers")
	}
	if s.Has("carol") {
		t.Error("Has() should not report absent identifiers")
	}

	s.Add("carol")
	if got := s.Sorted(); !slices.Equal(got, []string{"alice", "bob", "carol"}) {
		t.Errorf("Sorted() = %v, want [alice bob carol]", got)
	}
}

func TestSetEmpty(t *testing.T) {
	s := NewSet()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if got := s.Sorted(); len(got) != 0 {
		t.Errorf("Sorted() = %v, want empty", got)
	}
}
