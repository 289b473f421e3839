package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData means the series is too short for the requested computation.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidInput means the caller supplied values that cannot be analyzed.
	ErrInvalidInput = errors.New("invalid input")
)

// InsufficientDataError reports how much history was required and how much was given.
type InsufficientDataError struct {
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d prices, got %d", e.Required, e.Got)
}

func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }

// InvalidInputError describes the first offending value. Index is -1 when the
// problem concerns the series as a whole.
type InvalidInputError struct {
	Field  string
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s[%d]: %s", e.Field, e.Index, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
