package fixture

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned for non-positive counts or widths and unknown
// scheme or windowing values. Generation is deterministic, so retrying a call
// that failed with this error reproduces the same error.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Op    string
	Field string
	Value any
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v: %s = %v", e.Op, ErrInvalidArgument, e.Field, e.Value)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// VerificationError lists every property violated by a dataset.
type VerificationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	if len(e.Violations) == 1 {
		return "dataset verification failed: " + e.Violations[0]
	}
	return fmt.Sprintf("dataset verification failed with %d violations: %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}
