package iso8601

import (
	"encoding"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/wire"
	"gopkg.in/yaml.v3"
	"io"
)

// Every value type is written as ISO 8601 text by the text and YAML codecs, and as a fixed-size [wire.Record]
// by the binary codec.

var (
	_ encoding.TextMarshaler     = LocalDate{}
	_ encoding.TextUnmarshaler   = &LocalDate{}
	_ encoding.BinaryMarshaler   = LocalDate{}
	_ encoding.BinaryUnmarshaler = &LocalDate{}
	_ yaml.Marshaler             = LocalDate{}
	_ yaml.Unmarshaler           = &LocalDate{}
	_ io.WriterTo                = LocalDate{}

	_ encoding.TextMarshaler     = LocalTime{}
	_ encoding.TextUnmarshaler   = &LocalTime{}
	_ encoding.BinaryMarshaler   = LocalTime{}
	_ encoding.BinaryUnmarshaler = &LocalTime{}
	_ yaml.Marshaler             = LocalTime{}
	_ yaml.Unmarshaler           = &LocalTime{}
	_ io.WriterTo                = LocalTime{}

	_ encoding.TextMarshaler     = LocalDateTime{}
	_ encoding.TextUnmarshaler   = &LocalDateTime{}
	_ encoding.BinaryMarshaler   = LocalDateTime{}
	_ encoding.BinaryUnmarshaler = &LocalDateTime{}
	_ yaml.Marshaler             = LocalDateTime{}
	_ yaml.Unmarshaler           = &LocalDateTime{}
	_ io.WriterTo                = LocalDateTime{}

	_ encoding.TextMarshaler     = UTCOffset{}
	_ encoding.TextUnmarshaler   = &UTCOffset{}
	_ encoding.BinaryMarshaler   = UTCOffset{}
	_ encoding.BinaryUnmarshaler = &UTCOffset{}
	_ yaml.Marshaler             = UTCOffset{}
	_ yaml.Unmarshaler           = &UTCOffset{}
	_ io.WriterTo                = UTCOffset{}

	_ encoding.TextMarshaler     = OffsetDateTime{}
	_ encoding.TextUnmarshaler   = &OffsetDateTime{}
	_ encoding.BinaryMarshaler   = OffsetDateTime{}
	_ encoding.BinaryUnmarshaler = &OffsetDateTime{}
	_ yaml.Marshaler             = OffsetDateTime{}
	_ yaml.Unmarshaler           = &OffsetDateTime{}
	_ io.WriterTo                = OffsetDateTime{}
)

func unmarshalText[T any](format *Format[T], data []byte, into *T) error {
	value, err := format.Parse(string(data))
	if err != nil {
		return err
	}

	*into = value

	return nil
}

func unmarshalYAML[T any](format *Format[T], node *yaml.Node, into *T) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d, column %d: expected a scalar, got YAML node kind %d", node.Line, node.Column, node.Kind)
	}

	value, err := format.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d, column %d: %w", node.Line, node.Column, err)
	}

	*into = value

	return nil
}

func unmarshalBinary[T any](data []byte, want wire.Flags, decode func(wire.Record) (T, error), into *T) error {
	r, err := wire.Unmarshal(data, want)
	if err != nil {
		return err
	}

	value, err := decode(r)
	if err != nil {
		return fmt.Errorf("invalid binary record: %w", err)
	}

	*into = value

	return nil
}

func (d LocalDate) record() wire.Record {
	return wire.Record{
		Flags: wire.FlagDate,
		Year:  int32(d.year),
		Month: uint8(d.month),
		Day:   uint8(d.day),
	}
}

func localDateFromRecord(r wire.Record) (LocalDate, error) {
	return NewLocalDate(int(r.Year), Month(r.Month), int(r.Day))
}

func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *LocalDate) UnmarshalText(data []byte) error {
	return unmarshalText(ISODate, data, d)
}

func (d LocalDate) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *LocalDate) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(ISODate, node, d)
}

func (d LocalDate) MarshalBinary() ([]byte, error) {
	r := d.record()
	return r.MarshalBinary()
}

func (d *LocalDate) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, wire.FlagDate, localDateFromRecord, d)
}

func (d LocalDate) WriteTo(w io.Writer) (int64, error) {
	r := d.record()
	return r.WriteTo(w)
}

func (t LocalTime) record() wire.Record {
	return wire.Record{
		Flags:      wire.FlagTime,
		Hour:       uint8(t.hour),
		Minute:     uint8(t.minute),
		Second:     uint8(t.second),
		Nanosecond: uint32(t.nanosecond),
	}
}

func localTimeFromRecord(r wire.Record) (LocalTime, error) {
	return NewLocalTime(int(r.Hour), int(r.Minute), int(r.Second), int(r.Nanosecond))
}

func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LocalTime) UnmarshalText(data []byte) error {
	return unmarshalText(ISOTime, data, t)
}

func (t LocalTime) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *LocalTime) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(ISOTime, node, t)
}

func (t LocalTime) MarshalBinary() ([]byte, error) {
	r := t.record()
	return r.MarshalBinary()
}

func (t *LocalTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, wire.FlagTime, localTimeFromRecord, t)
}

func (t LocalTime) WriteTo(w io.Writer) (int64, error) {
	r := t.record()
	return r.WriteTo(w)
}

func (dt LocalDateTime) record() wire.Record {
	r := dt.date.record()
	tr := dt.time.record()

	r.Flags |= tr.Flags
	r.Hour, r.Minute, r.Second, r.Nanosecond = tr.Hour, tr.Minute, tr.Second, tr.Nanosecond

	return r
}

func localDateTimeFromRecord(r wire.Record) (LocalDateTime, error) {
	date, err := localDateFromRecord(r)
	if err != nil {
		return LocalDateTime{}, err
	}

	t, err := localTimeFromRecord(r)
	if err != nil {
		return LocalDateTime{}, err
	}

	return LocalDateTime{date: date, time: t}, nil
}

func (dt LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

func (dt *LocalDateTime) UnmarshalText(data []byte) error {
	return unmarshalText(ISODateTime, data, dt)
}

func (dt LocalDateTime) MarshalYAML() (interface{}, error) {
	return dt.String(), nil
}

func (dt *LocalDateTime) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(ISODateTime, node, dt)
}

func (dt LocalDateTime) MarshalBinary() ([]byte, error) {
	r := dt.record()
	return r.MarshalBinary()
}

func (dt *LocalDateTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, wire.FlagDate|wire.FlagTime, localDateTimeFromRecord, dt)
}

func (dt LocalDateTime) WriteTo(w io.Writer) (int64, error) {
	r := dt.record()
	return r.WriteTo(w)
}

func (o UTCOffset) record() wire.Record {
	return wire.Record{
		Flags:         wire.FlagOffset,
		OffsetSeconds: int32(o.totalSeconds),
	}
}

func utcOffsetFromRecord(r wire.Record) (UTCOffset, error) {
	return UTCOffsetOfSeconds(int(r.OffsetSeconds))
}

func (o UTCOffset) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *UTCOffset) UnmarshalText(data []byte) error {
	return unmarshalText(ISOOffset, data, o)
}

func (o UTCOffset) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

func (o *UTCOffset) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(ISOOffset, node, o)
}

func (o UTCOffset) MarshalBinary() ([]byte, error) {
	r := o.record()
	return r.MarshalBinary()
}

func (o *UTCOffset) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, wire.FlagOffset, utcOffsetFromRecord, o)
}

func (o UTCOffset) WriteTo(w io.Writer) (int64, error) {
	r := o.record()
	return r.WriteTo(w)
}

func (o OffsetDateTime) record() wire.Record {
	r := o.dateTime.record()
	r.Flags |= wire.FlagOffset
	r.OffsetSeconds = int32(o.offset.totalSeconds)

	return r
}

func offsetDateTimeFromRecord(r wire.Record) (OffsetDateTime, error) {
	dateTime, err := localDateTimeFromRecord(r)
	if err != nil {
		return OffsetDateTime{}, err
	}

	offset, err := utcOffsetFromRecord(r)
	if err != nil {
		return OffsetDateTime{}, err
	}

	return OffsetDateTime{dateTime: dateTime, offset: offset}, nil
}

func (o OffsetDateTime) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OffsetDateTime) UnmarshalText(data []byte) error {
	return unmarshalText(ISOOffsetDateTime, data, o)
}

func (o OffsetDateTime) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

func (o *OffsetDateTime) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(ISOOffsetDateTime, node, o)
}

func (o OffsetDateTime) MarshalBinary() ([]byte, error) {
	r := o.record()
	return r.MarshalBinary()
}

func (o *OffsetDateTime) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(data, wire.FlagDate|wire.FlagTime|wire.FlagOffset, offsetDateTimeFromRecord, o)
}

func (o OffsetDateTime) WriteTo(w io.Writer) (int64, error) {
	r := o.record()
	return r.WriteTo(w)
}
