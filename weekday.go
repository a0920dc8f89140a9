package iso8601

import (
	"fmt"
	"time"
)

// DayOfWeek is a day of the week. Its numeric value is the ISO 8601 day number: Monday is 1 and Sunday is 7.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayOfWeekNames are the names used to write days of the week as text, starting with Monday
type DayOfWeekNames []string

var (
	DayOfWeekNamesEnglishFull = DayOfWeekNames{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}

	DayOfWeekNamesEnglishAbbreviated = DayOfWeekNames{
		"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
	}
)

// DayOfWeekFromISO returns the day of the week for an ISO 8601 day number, failing with [ErrOutOfRange] outside
// 1..7
func DayOfWeekFromISO(isoDayNumber int) (DayOfWeek, error) {
	if isoDayNumber < int(Monday) || isoDayNumber > int(Sunday) {
		return 0, fmt.Errorf("%w: ISO day number %d must be within 1..7", ErrOutOfRange, isoDayNumber)
	}

	return DayOfWeek(isoDayNumber), nil
}

// DayOfWeekOf converts a [time.Weekday], which numbers Sunday as 0
func DayOfWeekOf(weekday time.Weekday) DayOfWeek {
	if weekday == time.Sunday {
		return Sunday
	}

	return DayOfWeek(weekday)
}

// ISONumber is the ISO 8601 day number, Monday being 1 and Sunday 7
func (d DayOfWeek) ISONumber() int {
	return int(d)
}

// Weekday converts the day to its [time.Weekday] equivalent
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(int(d) % 7)
}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}

	return DayOfWeekNamesEnglishFull[d-1]
}
