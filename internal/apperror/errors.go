package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the interview core. Controllers map these to HTTP statuses
// with errors.Is; services wrap them with context via fmt.Errorf("%w", ...).
var (
	// ErrNotFound: job, interview or question does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: operation attempted from the wrong lifecycle state,
	// e.g. answering a completed interview. Not retryable.
	ErrInvalidState = errors.New("invalid interview state")

	// ErrOracleFailure: the scoring/generation/summary collaborator errored or
	// timed out. Retryable: no interview state was mutated.
	ErrOracleFailure = errors.New("oracle failure")
)

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func OracleFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrOracleFailure, err)
}
