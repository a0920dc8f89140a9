package iso8601

import (
	"github.com/davejbax/go-iso8601/internal/field"
	"time"
)

// LocalDateTime is a date and a time of day, without an offset from UTC
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime creates a date-time, failing with [ErrOutOfRange] if any component is outside its valid domain
func NewLocalDateTime(year int, month Month, day, hour, minute, second, nanosecond int) (LocalDateTime, error) {
	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}

	t, err := NewLocalTime(hour, minute, second, nanosecond)
	if err != nil {
		return LocalDateTime{}, err
	}

	return LocalDateTime{date: date, time: t}, nil
}

// LocalDateTimeOf returns the wall clock date and time of t, in t's location
func LocalDateTimeOf(t time.Time) (LocalDateTime, error) {
	date, err := LocalDateOf(t)
	if err != nil {
		return LocalDateTime{}, err
	}

	return LocalDateTime{date: date, time: LocalTimeOf(t)}, nil
}

// ParseLocalDateTime parses an ISO 8601 extended date-time such as 2024-03-01T10:15:30
func ParseLocalDateTime(text string) (LocalDateTime, error) {
	return ISODateTime.Parse(text)
}

func (dt LocalDateTime) Date() LocalDate { return dt.date }
func (dt LocalDateTime) Time() LocalTime { return dt.time }

func (dt LocalDateTime) Year() int { return dt.date.year }
func (dt LocalDateTime) Month() Month { return dt.date.month }
func (dt LocalDateTime) Day() int { return dt.date.day }
func (dt LocalDateTime) DayOfWeek() DayOfWeek { return dt.date.DayOfWeek() }
func (dt LocalDateTime) DayOfYear() int { return dt.date.DayOfYear() }
func (dt LocalDateTime) Hour() int { return dt.time.hour }
func (dt LocalDateTime) Minute() int { return dt.time.minute }
func (dt LocalDateTime) Second() int { return dt.time.second }
func (dt LocalDateTime) Nanosecond() int { return dt.time.nanosecond }

// Compare returns a negative number if dt is before other, a positive number if it is after, and zero otherwise
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}

	return dt.time.Compare(other.time)
}

// AtOffset fixes the date-time to an offset from UTC
func (dt LocalDateTime) AtOffset(offset UTCOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dt, offset: offset}
}

// String formats the date-time with [ISODateTime]
func (dt LocalDateTime) String() string {
	return ISODateTime.Format(dt)
}

func (dt LocalDateTime) project(v *field.Values) {
	dt.date.project(v)
	dt.time.project(v)
}
