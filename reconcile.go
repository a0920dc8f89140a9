package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
)

// The functions in this file turn the fields collected by the parser into validated values. Each field has
// already been checked against its own range; what remains is applying defaults, spotting missing fields and
// checking fields against each other.

func missing(d *field.Descriptor) error {
	return &ParseError{Field: d.Name, Err: ErrMissingField}
}

func inconsistent(d *field.Descriptor, expected string) error {
	return &ParseError{Field: d.Name, Expected: expected, Err: ErrInconsistentFields}
}

func requireField(v *field.Values, d *field.Descriptor) (int, error) {
	value, ok := v.GetOrDefault(d)
	if !ok {
		return 0, missing(d)
	}

	return value, nil
}

func dateFromValues(v *field.Values) (LocalDate, error) {
	year, err := requireField(v, field.Year)
	if err != nil {
		return LocalDate{}, err
	}

	var month, day int
	switch {
	case v.Has(field.MonthNumber) || v.Has(field.Day):
		if month, err = requireField(v, field.MonthNumber); err != nil {
			return LocalDate{}, err
		}

		if day, err = requireField(v, field.Day); err != nil {
			return LocalDate{}, err
		}

		if days := cal.DaysInMonth(year, month); day > days {
			return LocalDate{}, inconsistent(field.Day, fmt.Sprintf("a day within 1..%d for %d-%02d", days, year, month))
		}

	case v.Has(field.DayOfYear):
		dayOfYear, _ := v.Get(field.DayOfYear)

		days := 365
		if cal.IsLeapYear(year) {
			days = 366
		}

		if dayOfYear > days {
			return LocalDate{}, inconsistent(field.DayOfYear, fmt.Sprintf("a day of the year within 1..%d for %d", days, year))
		}

		month, day = cal.MonthDay(year, dayOfYear)

	default:
		return LocalDate{}, missing(field.MonthNumber)
	}

	date, err := NewLocalDate(year, Month(month), day)
	if err != nil {
		return LocalDate{}, inconsistent(field.Day, err.Error())
	}

	if dayOfYear, ok := v.Get(field.DayOfYear); ok && dayOfYear != date.DayOfYear() {
		return LocalDate{}, inconsistent(field.DayOfYear, fmt.Sprintf("day of the year %d", date.DayOfYear()))
	}

	if dayOfWeek, ok := v.Get(field.DayOfWeek); ok && DayOfWeek(dayOfWeek) != date.DayOfWeek() {
		return LocalDate{}, inconsistent(field.DayOfWeek, fmt.Sprintf("%s, the day of the week of the date", date.DayOfWeek()))
	}

	return date, nil
}

func timeFromValues(v *field.Values) (LocalTime, error) {
	var components [4]int
	for i, d := range []*field.Descriptor{field.Hour, field.Minute, field.Second, field.Nanosecond} {
		value, err := requireField(v, d)
		if err != nil {
			return LocalTime{}, err
		}

		components[i] = value
	}

	return LocalTime{
		hour:       components[0],
		minute:     components[1],
		second:     components[2],
		nanosecond: components[3],
	}, nil
}

func offsetFromValues(v *field.Values) (UTCOffset, error) {
	negative, _ := v.GetOrDefault(field.OffsetNegative)
	hours, _ := v.GetOrDefault(field.OffsetHours)
	minutes, _ := v.GetOrDefault(field.OffsetMinutes)
	seconds, _ := v.GetOrDefault(field.OffsetSeconds)

	total := hours*3600 + minutes*60 + seconds
	if negative == 1 {
		total = -total
	}

	offset, err := UTCOffsetOfSeconds(total)
	if err != nil {
		return UTCOffset{}, inconsistent(field.OffsetHours, "an offset within -18:00..+18:00")
	}

	return offset, nil
}

func dateTimeFromValues(v *field.Values) (LocalDateTime, error) {
	date, err := dateFromValues(v)
	if err != nil {
		return LocalDateTime{}, err
	}

	t, err := timeFromValues(v)
	if err != nil {
		return LocalDateTime{}, err
	}

	return LocalDateTime{date: date, time: t}, nil
}

func offsetDateTimeFromValues(v *field.Values) (OffsetDateTime, error) {
	dateTime, err := dateTimeFromValues(v)
	if err != nil {
		return OffsetDateTime{}, err
	}

	offset, err := offsetFromValues(v)
	if err != nil {
		return OffsetDateTime{}, err
	}

	return OffsetDateTime{dateTime: dateTime, offset: offset}, nil
}
