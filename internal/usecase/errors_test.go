package usecase

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestError_MapsStatusToSentinel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   error
	}{
		{status: 0, want: ErrDependencyUnavailable},
		{status: 502, want: ErrDependencyUnavailable},
		{status: 401, want: ErrUnauthorized},
		{status: 403, want: ErrUnauthorized},
		{status: 404, want: ErrNotFound},
		{status: 422, want: ErrInvalidInput},
	}
	for _, tc := range cases {
		err := fmt.Errorf("call: %w", &RequestError{Status: tc.status})
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}

	if errors.Is(&RequestError{Status: 418}, ErrInvalidInput) {
		t.Fatalf("418 should not map to a sentinel")
	}
}

func TestRequestError_Message(t *testing.T) {
	t.Parallel()

	if got := (&RequestError{Status: 500}).Error(); got != "HTTP error! status: 500" {
		t.Fatalf("unexpected generic message: %q", got)
	}
	if got := (&RequestError{Status: 400, Message: "Email taken", FromServer: true}).Error(); got != "Email taken" {
		t.Fatalf("unexpected server message: %q", got)
	}
	cause := errors.New("dial tcp: connection refused")
	reqErr := &RequestError{Err: cause}
	if reqErr.Error() != cause.Error() {
		t.Fatalf("unexpected transport message: %q", reqErr.Error())
	}
	if !errors.Is(reqErr, cause) {
		t.Fatalf("expected transport cause to be unwrapped")
	}
}

func TestMessageOr(t *testing.T) {
	t.Parallel()

	if got := MessageOr(&RequestError{Status: 400, Message: "Bad pillar", FromServer: true}, "fallback"); got != "Bad pillar" {
		t.Fatalf("expected server message, got %q", got)
	}
	if got := MessageOr(&RequestError{Status: 500}, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := MessageOr(&ValidationError{Field: "Email", Message: "Invalid email address"}, "fallback"); got != "Invalid email address" {
		t.Fatalf("expected validation message, got %q", got)
	}
	if !IsUnreachable(&RequestError{Err: errors.New("timeout")}) {
		t.Fatalf("expected status 0 to be unreachable")
	}
}
