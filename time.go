package iso8601

import (
	"cmp"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
	"time"
)

// LocalTime is a time of day without a date or an offset, with nanosecond precision.
//
// The zero value is midnight.
type LocalTime struct {
	hour       int
	minute     int
	second     int
	nanosecond int
}

// Midnight is the start of the day, 00:00
var Midnight = LocalTime{}

// NewLocalTime creates a time of day, failing with [ErrOutOfRange] if any component is outside its valid domain
func NewLocalTime(hour, minute, second, nanosecond int) (LocalTime, error) {
	components := []struct {
		d     *field.Descriptor
		value int
	}{
		{field.Hour, hour},
		{field.Minute, minute},
		{field.Second, second},
		{field.Nanosecond, nanosecond},
	}

	for _, c := range components {
		if !c.d.InRange(c.value) {
			return LocalTime{}, fmt.Errorf("%w: %s %d must be within %d..%d", ErrOutOfRange, c.d.Name, c.value, c.d.Min, c.d.Max)
		}
	}

	return LocalTime{hour: hour, minute: minute, second: second, nanosecond: nanosecond}, nil
}

// LocalTimeOf returns the time of day of t, in t's location
func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{hour: t.Hour(), minute: t.Minute(), second: t.Second(), nanosecond: t.Nanosecond()}
}

// ParseLocalTime parses an ISO 8601 extended time such as 10:15, 10:15:30 or 10:15:30.125
func ParseLocalTime(text string) (LocalTime, error) {
	return ISOTime.Parse(text)
}

func (t LocalTime) Hour() int { return t.hour }
func (t LocalTime) Minute() int { return t.minute }
func (t LocalTime) Second() int { return t.second }
func (t LocalTime) Nanosecond() int { return t.nanosecond }

// Compare returns a negative number if t is before other, a positive number if it is after, and zero otherwise
func (t LocalTime) Compare(other LocalTime) int {
	return cmp.Compare(t.nanosOfDay(), other.nanosOfDay())
}

func (t LocalTime) nanosOfDay() int64 {
	seconds := int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
	return seconds*int64(time.Second) + int64(t.nanosecond)
}

// String formats the time with [ISOTime]
func (t LocalTime) String() string {
	return ISOTime.Format(t)
}

func (t LocalTime) project(v *field.Values) {
	v.Set(field.Hour, t.hour)
	v.Set(field.Minute, t.minute)
	v.Set(field.Second, t.second)
	v.Set(field.Nanosecond, t.nanosecond)
}
