package sorting

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates a value sequence that cannot be sorted
	// (malformed text or a non-finite number).
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeNotSorted indicates a run reached its end with the array out of
	// ascending order.
	ErrCodeNotSorted ErrorCode = "NOT_SORTED"

	// ErrCodeUnknownAlgorithm indicates a name outside the registry.
	ErrCodeUnknownAlgorithm ErrorCode = "UNKNOWN_ALGORITHM"
)

// InputError is returned before any engine state is touched.
type InputError struct {
	Code ErrorCode
	// Index is the offending position, or -1 when not applicable.
	Index int
	// Token is the raw text that failed to parse, if any.
	Token   string
	Message string
}

func (e *InputError) Error() string {
	switch {
	case e.Token != "":
		return fmt.Sprintf("%s: %s (token %q at position %d)", e.Code, e.Message, e.Token, e.Index)
	case e.Index >= 0:
		return fmt.Sprintf("%s: %s (position %d)", e.Code, e.Message, e.Index)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// InvariantError reports an internal failure: a run finished but the array is
// not ascending. It is never expected for a correct engine.
type InvariantError struct {
	Code      ErrorCode
	Algorithm string
	// Index is the first position i where value[i-1] > value[i].
	Index int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s finished with array out of order at position %d", e.Code, e.Algorithm, e.Index)
}

// IsInputError reports whether err wraps an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsInvariantError reports whether err wraps an *InvariantError.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

func newNonFiniteError(index int, v float64) *InputError {
	return &InputError{
		Code:    ErrCodeInvalidInput,
		Index:   index,
		Message: fmt.Sprintf("value %v is not a finite number", v),
	}
}
