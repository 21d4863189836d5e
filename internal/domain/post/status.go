package post

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusApproved  Status = "approved"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

var ErrInvalidTransition = errors.New("invalid post status transition")

func (s Status) rank() int {
	switch s {
	case StatusDraft:
		return 0
	case StatusApproved:
		return 1
	case StatusScheduled:
		return 2
	case StatusPublished:
		return 3
	default:
		return -1
	}
}

func (s Status) Valid() bool {
	return s.rank() >= 0
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown post status %q", raw)
	}
	return s, nil
}

// CanTransition allows staying put or moving forward along
// draft -> approved -> scheduled -> published.
func (s Status) CanTransition(to Status) bool {
	from, next := s.rank(), to.rank()
	if from < 0 || next < 0 {
		return false
	}
	return next >= from
}

// Transition returns to when the move is allowed.
func (s Status) Transition(to Status) (Status, error) {
	if !s.CanTransition(to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}
