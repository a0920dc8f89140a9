package iso8601

import (
	"cmp"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/calendar"
	"github.com/davejbax/go-iso8601/internal/field"
	"time"
)

// cal is the calendar arithmetic every value type and the field reconciler rely on
var cal calendar.Calendar = calendar.Native

// LocalDate is a date in the proleptic Gregorian calendar, without a time of day or an offset.
//
// LocalDate values are immutable and comparable with ==. The zero value is not a valid date; use [NewLocalDate].
type LocalDate struct {
	year  int
	month Month
	day   int
}

// NewLocalDate creates a date, failing with [ErrOutOfRange] if any component is outside its valid domain
func NewLocalDate(year int, month Month, day int) (LocalDate, error) {
	if !field.Year.InRange(year) {
		return LocalDate{}, fmt.Errorf("%w: year %d must be within %d..%d", ErrOutOfRange, year, field.Year.Min, field.Year.Max)
	}

	if !month.valid() {
		return LocalDate{}, fmt.Errorf("%w: month %d must be within 1..12", ErrOutOfRange, int(month))
	}

	if days := cal.DaysInMonth(year, int(month)); day < 1 || day > days {
		return LocalDate{}, fmt.Errorf("%w: day %d must be within 1..%d for %d-%02d", ErrOutOfRange, day, days, year, int(month))
	}

	return LocalDate{year: year, month: month, day: day}, nil
}

// LocalDateOf returns the date of t, in t's location
func LocalDateOf(t time.Time) (LocalDate, error) {
	year, month, day := t.Date()
	return NewLocalDate(year, Month(month), day)
}

// ParseLocalDate parses an ISO 8601 extended date such as 2024-03-01 or +12345-01-01
func ParseLocalDate(text string) (LocalDate, error) {
	return ISODate.Parse(text)
}

func (d LocalDate) Year() int { return d.year }
func (d LocalDate) Month() Month { return d.month }
func (d LocalDate) Day() int { return d.day }

func (d LocalDate) DayOfWeek() DayOfWeek {
	return DayOfWeek(cal.DayOfWeek(d.year, int(d.month), d.day))
}

// DayOfYear is the 1-based day within the year
func (d LocalDate) DayOfYear() int {
	return cal.DayOfYear(d.year, int(d.month), d.day)
}

// Compare returns a negative number if d is before other, a positive number if it is after, and zero otherwise
func (d LocalDate) Compare(other LocalDate) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}

	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}

	return cmp.Compare(d.day, other.day)
}

// AtTime combines the date with a time of day
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// String formats the date with [ISODate]
func (d LocalDate) String() string {
	return ISODate.Format(d)
}

func (d LocalDate) project(v *field.Values) {
	v.Set(field.Year, d.year)
	v.Set(field.MonthNumber, int(d.month))
	v.Set(field.Day, d.day)
	v.Set(field.DayOfWeek, int(d.DayOfWeek()))
	v.Set(field.DayOfYear, d.DayOfYear())
}
