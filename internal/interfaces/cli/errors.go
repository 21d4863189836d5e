package cli

import (
	"errors"
	"flag"

	"github.com/riskibarqy/content-brain/internal/usecase"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitUnauthorized = 3
	exitNotFound     = 4
	exitUnavailable  = 5
)

// errReported marks failures the user already saw as a toast.
var errReported = errors.New("command failed")

type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

func usagef(msg string) error {
	return usageError{msg: msg}
}

func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.As(err, &usage):
		return exitUsage
	case errors.Is(err, usecase.ErrUnauthorized):
		return exitUnauthorized
	case errors.Is(err, usecase.ErrNotFound):
		return exitNotFound
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return exitUnavailable
	case errors.Is(err, usecase.ErrInvalidInput):
		return exitUsage
	default:
		return exitFailure
	}
}
