// Package calendar provides the calendar arithmetic that the format engine relies on but does not implement
// itself: month lengths, leap years and weekdays. The format engine only depends on the [Calendar] interface;
// [Native] is the backing built on Go's time package.
package calendar

import "time"

// Calendar answers questions about the proleptic Gregorian calendar. Months are numbered 1-12 and weekdays
// use ISO numbering, Monday being 1 and Sunday 7. Implementations must be pure and safe for concurrent use.
type Calendar interface {
	IsLeapYear(year int) bool
	DaysInMonth(year, month int) int
	DayOfWeek(year, month, day int) int
	DayOfYear(year, month, day int) int

	// MonthDay converts a day of the year into a month and day of month. The day of year must be valid for the
	// year.
	MonthDay(year, dayOfYear int) (month, day int)
}

type native struct{}

// Native is the [Calendar] backed by the time package
var Native Calendar = native{}

func (native) date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func (n native) IsLeapYear(year int) bool {
	return n.DaysInMonth(year, 2) == 29
}

func (n native) DaysInMonth(year, month int) int {
	// Day zero of the following month normalises to the last day of this one
	return n.date(year, month+1, 0).Day()
}

func (n native) DayOfWeek(year, month, day int) int {
	weekday := n.date(year, month, day).Weekday()
	if weekday == time.Sunday {
		return 7
	}

	return int(weekday)
}

func (n native) DayOfYear(year, month, day int) int {
	return n.date(year, month, day).YearDay()
}

func (n native) MonthDay(year, dayOfYear int) (int, int) {
	t := n.date(year, 1, dayOfYear)
	return int(t.Month()), t.Day()
}
