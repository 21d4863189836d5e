package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/content-brain/internal/domain/post"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrBusy                  = errors.New("operation already in progress")
	ErrInvalidTransition     = post.ErrInvalidTransition
)

// RequestError is the single failure shape of the remote API client.
// Status is zero when the request never got a response.
type RequestError struct {
	Status     int
	Message    string
	FromServer bool
	Err        error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status == 0 && e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// Unwrap exposes both the transport cause and the sentinel the status maps to.
func (e *RequestError) Unwrap() []error {
	out := make([]error, 0, 2)
	if sentinel := e.kind(); sentinel != nil {
		out = append(out, sentinel)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func (e *RequestError) kind() error {
	switch {
	case e.Status == 0, e.Status >= http.StatusInternalServerError:
		return ErrDependencyUnavailable
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusBadRequest, e.Status == http.StatusConflict, e.Status == http.StatusUnprocessableEntity:
		return ErrInvalidInput
	default:
		return nil
	}
}

// MessageOr returns the server supplied message when err carries one.
func MessageOr(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.FromServer && reqErr.Message != "" {
		return reqErr.Message
	}
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Message != "" {
		return verr.Message
	}
	return fallback
}

// IsUnreachable reports failures that trigger the offline mock fallback.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrDependencyUnavailable)
}
