// Package iso8601 provides calendar values (dates, times of day, date-times and UTC offsets) together with a
// declarative engine for writing them as text and reading them back.
//
// A [Format] is built once, either with a builder callback or from a pattern string, and can then be used
// concurrently to both format and parse values. The same structure drives both directions, so anything a format
// writes it can also read:
//
//	format := iso8601.MustDateFormat(func(b *iso8601.DateBuilder) {
//		b.Day()
//		b.Char('/')
//		b.MonthNumber()
//		b.Char('/')
//		b.Year()
//	})
//
//	date, err := format.Parse("01/03/2024")
//
// The ISO 8601 formats are predefined as [ISODate], [ISOTime], [ISODateTime], [ISOOffset] and
// [ISOOffsetDateTime], and are what the String methods and Parse functions of the value types use.
package iso8601

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/builder"
	"github.com/davejbax/go-iso8601/internal/decode"
	"github.com/davejbax/go-iso8601/internal/encode"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
)

// Format writes and reads values of type T as text. Formats are immutable and safe for concurrent use.
type Format[T any] struct {
	structure structure.Node

	// project writes every field of a value into a value source
	project func(T, *field.Values)

	// reconcile turns parsed fields back into a validated value
	reconcile func(*field.Values) (T, error)

	// sanitize, if set, normalises text before it is parsed
	sanitize func(string) string
}

func newFormat[T any](b *builder.Builder, project func(T, *field.Values), reconcile func(*field.Values) (T, error)) (*Format[T], error) {
	n, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &Format[T]{structure: n, project: project, reconcile: reconcile}, nil
}

// withSanitizer returns a copy of f that passes text through sanitize before parsing it
func (f *Format[T]) withSanitizer(sanitize func(string) string) *Format[T] {
	clone := *f
	clone.sanitize = sanitize

	return &clone
}

// Format writes value as text.
//
// Every valid value can be formatted, so Format panics only if value was not created through one of this
// package's constructors and holds an invalid component.
func (f *Format[T]) Format(value T) string {
	var v field.Values
	f.project(value, &v)

	text, err := encode.Render(f.structure, &v)
	if err != nil {
		panic(fmt.Sprintf("iso8601: cannot format value with %s: %v", f.structure, err))
	}

	return text
}

// Parse reads a value from text. The whole text must match the format.
//
// Failures are returned as a [*ParseError] wrapping one of [ErrMismatch], [ErrFieldOutOfRange],
// [ErrMissingField] or [ErrInconsistentFields].
func (f *Format[T]) Parse(text string) (T, error) {
	var zero T

	if f.sanitize != nil {
		text = f.sanitize(text)
	}

	v, err := decode.Parse(f.structure, text)
	if err != nil {
		return zero, err
	}

	value, err := f.reconcile(v)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Input = text
		}

		return zero, err
	}

	return value, nil
}

// String describes the format's structure, e.g. `year "-" monthNumber "-" day`
func (f *Format[T]) String() string {
	return f.structure.String()
}
