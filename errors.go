package iso8601

import (
	"errors"
	"github.com/davejbax/go-iso8601/internal/builder"
	"github.com/davejbax/go-iso8601/internal/decode"
)

var (
	// ErrOutOfRange indicates that a value was constructed with a component outside its valid domain, such as
	// month 13 or the 30th of February
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidStructure indicates that a format could not be built, e.g. because it references a field the
	// target value doesn't have, or a pattern string is malformed
	ErrInvalidStructure = builder.ErrInvalidStructure

	// ErrMismatch indicates that parsed text does not have the shape the format expects
	ErrMismatch = decode.ErrMismatch

	// ErrFieldOutOfRange indicates that parsed digits form a number outside the field's range
	ErrFieldOutOfRange = decode.ErrFieldOutOfRange

	// ErrMissingField indicates that parsed text lacked a field that has no default
	ErrMissingField = decode.ErrMissingField

	// ErrInconsistentFields indicates that parsed fields are individually valid but do not form a valid value,
	// such as the 31st of April or a weekday that doesn't match the date
	ErrInconsistentFields = decode.ErrInconsistentFields
)

// ParseError describes why text could not be parsed. Its Err field is one of [ErrMismatch],
// [ErrFieldOutOfRange], [ErrMissingField] or [ErrInconsistentFields], so callers can use [errors.Is] on it.
type ParseError = decode.Error
