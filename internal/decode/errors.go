package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch indicates that the input does not have the expected shape
	ErrMismatch = errors.New("unexpected input")

	// ErrFieldOutOfRange indicates that a field's digits were read, but the value is outside the field's range
	ErrFieldOutOfRange = errors.New("field value out of range")

	// ErrMissingField indicates that the input was well-formed, but did not provide a field that has no default
	ErrMissingField = errors.New("missing field")

	// ErrInconsistentFields indicates that individually valid fields do not make a valid value together, such
	// as the 31st of April
	ErrInconsistentFields = errors.New("inconsistent fields")
)

// Error is a parse failure. Err is one of the sentinel errors in this package.
type Error struct {
	Input string

	// Offset is the byte offset into Input at which the failure was detected
	Offset int

	// Expected describes what the parser was looking for, if anything
	Expected string

	// Field is the name of the offending field, if any
	Field string

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cannot parse %q at offset %d", e.Input, e.Offset)
	if e.Field != "" {
		msg += ", field " + e.Field
	}

	msg += ": " + e.Err.Error()
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
