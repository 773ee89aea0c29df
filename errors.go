package idpool

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Next once the source has been closed.
var ErrClosed = errors.New("pooled source is already closed")

// ConfigError is returned at construction time when a configuration value is
// out of range. Out-of-range values are rejected, never silently clamped.
type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// GenerationError is returned when the underlying generator can't produce an
// identifier. It aborts the affected call only.
type GenerationError struct {
	cause error
}

// Unwrap implements the errors unwrapping
func (e GenerationError) Unwrap() error {
	return e.cause
}

func (e GenerationError) Error() string {
	return fmt.Sprintf("can't generate identifier: %s", e.cause)
}
