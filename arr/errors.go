package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by slice operations.
//
// Every failure is reported as an [*ArgumentError] that wraps one of these,
// so callers use [errors.Is] for comparisons:
//
//	_, err := arr.Remove(&items, v, -1)
//	if errors.Is(err, arr.ErrOutOfRange) {
//	    // max was negative
//	}
var (
	// ErrNullArgument is returned when a required slice (or slice pointer)
	// is nil where mutation or indexed lookup is mandatory.
	ErrNullArgument = errors.New("arr: argument cannot be null")

	// ErrOutOfRange is returned when a numeric argument violates a bound:
	// a negative max, count, index or start, a stop before its start, a
	// non-finite number, or a zero step.
	ErrOutOfRange = errors.New("arr: argument out of range")

	// ErrInvalidArgument is returned when an argument has the wrong shape,
	// such as a nil predicate or comparer, or a non-integral count.
	ErrInvalidArgument = errors.New("arr: invalid argument")
)

// Messages shared between operations.
const (
	msgNull        = "cannot be null"
	msgZero        = "cannot be zero"
	msgLessThan0   = "cannot be less than zero"
	msgFinite      = "must be a valid finite number"
	msgFunction    = "must be a function"
	msgInteger     = "must be an integer"
	msgBeforeStart = "is less than start"
	msgTooLarge    = "is too large"
)

// ArgumentError describes a rejected argument.
//
// Op names the failing function, Param the offending parameter and Value
// the value that was passed (nil when the argument itself was absent).
type ArgumentError struct {
	Op      string
	Param   string
	Value   any
	Message string
	Err     error
}

// Error implements [error].
func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s: %s: %s", e.Err, e.Op, e.Param, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s (%v): %s", e.Err, e.Op, e.Param, e.Value, e.Message)
}

// Unwrap returns the sentinel error, enabling [errors.Is].
func (e *ArgumentError) Unwrap() error { return e.Err }

func nullArgument(op, param string) error {
	return &ArgumentError{Op: op, Param: param, Message: msgNull, Err: ErrNullArgument}
}

func outOfRange(op, param string, value any, msg string) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Message: msg, Err: ErrOutOfRange}
}

func invalidArgument(op, param string, value any, msg string) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Message: msg, Err: ErrInvalidArgument}
}
