package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for client-side records such as wizard roles.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Sequence returns deterministic ids ("<prefix>-1", "<prefix>-2", ...), for tests and seeds.
type Sequence struct {
	Prefix string
	n      int
}

func (s *Sequence) NewID() (string, error) {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n), nil
}
