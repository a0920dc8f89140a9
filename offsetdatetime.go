package iso8601

import (
	"github.com/davejbax/go-iso8601/internal/field"
	"time"
)

// OffsetDateTime is a date and time of day at a fixed offset from UTC. It identifies an instant, and converts
// to and from [time.Time].
type OffsetDateTime struct {
	dateTime LocalDateTime
	offset   UTCOffset
}

// OffsetDateTimeOf returns the wall clock date and time of t together with t's offset from UTC
func OffsetDateTimeOf(t time.Time) (OffsetDateTime, error) {
	dateTime, err := LocalDateTimeOf(t)
	if err != nil {
		return OffsetDateTime{}, err
	}

	_, seconds := t.Zone()
	offset, err := UTCOffsetOfSeconds(seconds)
	if err != nil {
		return OffsetDateTime{}, err
	}

	return OffsetDateTime{dateTime: dateTime, offset: offset}, nil
}

// ParseOffsetDateTime parses an ISO 8601 date-time with an offset, such as 2024-03-01T10:15:30+01:00
func ParseOffsetDateTime(text string) (OffsetDateTime, error) {
	return ISOOffsetDateTime.Parse(text)
}

func (o OffsetDateTime) DateTime() LocalDateTime { return o.dateTime }
func (o OffsetDateTime) Offset() UTCOffset { return o.offset }

// Time converts to a [time.Time] in a fixed location with the same offset
func (o OffsetDateTime) Time() time.Time {
	d, t := o.dateTime.date, o.dateTime.time
	return time.Date(d.year, d.month.TimeMonth(), d.day, t.hour, t.minute, t.second, t.nanosecond, o.offset.Location())
}

// String formats the value with [ISOOffsetDateTime]
func (o OffsetDateTime) String() string {
	return ISOOffsetDateTime.Format(o)
}

func (o OffsetDateTime) project(v *field.Values) {
	o.dateTime.project(v)
	o.offset.project(v)
}
