package main

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-iso8601"
)

var errUnknownFormat = errors.New("unknown format")

// converter reads a value in one format and writes it in another
type converter interface {
	Convert(text string) (string, error)
	Explain() string
}

type formatPair[T any] struct {
	in  *iso8601.Format[T]
	out *iso8601.Format[T]
}

func (p formatPair[T]) Convert(text string) (string, error) {
	value, err := p.in.Parse(text)
	if err != nil {
		return "", err
	}

	return p.out.Format(value), nil
}

func (p formatPair[T]) Explain() string {
	return fmt.Sprintf("in:  %s\nout: %s", p.in, p.out)
}

type options struct {
	kind       string
	in         string
	out        string
	inPattern  string
	outPattern string
}

// catalog lists the named formats available for each kind of value
type catalog[T any] struct {
	named       map[string]*iso8601.Format[T]
	fromPattern func(string) (*iso8601.Format[T], error)
}

func (c catalog[T]) resolve(name, pattern string) (*iso8601.Format[T], error) {
	if pattern != "" {
		return c.fromPattern(pattern)
	}

	format, ok := c.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, name)
	}

	return format, nil
}

func newPair[T any](c catalog[T], opts options) (converter, error) {
	in, err := c.resolve(opts.in, opts.inPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input format: %w", err)
	}

	out, err := c.resolve(opts.out, opts.outPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output format: %w", err)
	}

	return formatPair[T]{in: in, out: out}, nil
}

func newConverter(opts options) (converter, error) {
	switch opts.kind {
	case "date":
		return newPair(catalog[iso8601.LocalDate]{
			named:       map[string]*iso8601.Format[iso8601.LocalDate]{"iso": iso8601.ISODate, "basic": iso8601.ISODateBasic},
			fromPattern: iso8601.DateFormatFromPattern,
		}, opts)
	case "time":
		return newPair(catalog[iso8601.LocalTime]{
			named:       map[string]*iso8601.Format[iso8601.LocalTime]{"iso": iso8601.ISOTime},
			fromPattern: iso8601.TimeFormatFromPattern,
		}, opts)
	case "datetime":
		return newPair(catalog[iso8601.LocalDateTime]{
			named:       map[string]*iso8601.Format[iso8601.LocalDateTime]{"iso": iso8601.ISODateTime},
			fromPattern: iso8601.DateTimeFormatFromPattern,
		}, opts)
	case "offsetdatetime":
		return newPair(catalog[iso8601.OffsetDateTime]{
			named: map[string]*iso8601.Format[iso8601.OffsetDateTime]{
				"iso":     iso8601.ISOOffsetDateTime,
				"rfc1123": iso8601.RFC1123,
			},
			fromPattern: iso8601.OffsetDateTimeFormatFromPattern,
		}, opts)
	default:
		return nil, fmt.Errorf("%w: no formats for values of kind %q", errUnknownFormat, opts.kind)
	}
}
