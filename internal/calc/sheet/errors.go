package sheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncomplete  = errors.New("calculation terminated: incomplete parameters")
	ErrComputation = errors.New("computation error")
)

// IncompleteError reports a calculation abandoned because inputs were cancelled.
type IncompleteError struct {
	Missing []Field
}

func (e *IncompleteError) Error() string {
	if len(e.Missing) == 0 {
		return ErrIncomplete.Error()
	}
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s (missing %s)", ErrIncomplete, strings.Join(names, ", "))
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

// ComputationError reports degenerate arithmetic for a complete set of inputs.
type ComputationError struct {
	Kind Kind
	Err  error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrComputation, e.Kind, e.Err)
}

func (e *ComputationError) Is(target error) bool { return target == ErrComputation }

func (e *ComputationError) Unwrap() error { return e.Err }
