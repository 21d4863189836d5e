package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, _ := g.NewID()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected uuid, got %q: %v", a, err)
	}
}

func TestSequence_NewID(t *testing.T) {
	t.Parallel()

	s := &Sequence{Prefix: "role"}
	first, _ := s.NewID()
	second, _ := s.NewID()
	if first != "role-1" || second != "role-2" {
		t.Fatalf("unexpected sequence %s, %s", first, second)
	}
}
