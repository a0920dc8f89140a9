package iso8601

import (
	"fmt"
	"time"
)

// Month is a month of the year, January being 1
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// MonthNames are the names used to write months as text, starting with January
type MonthNames []string

var (
	MonthNamesEnglishFull = MonthNames{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	MonthNamesEnglishAbbreviated = MonthNames{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// MonthOf returns the month with the given number, failing with [ErrOutOfRange] outside 1..12
func MonthOf(number int) (Month, error) {
	if number < int(January) || number > int(December) {
		return 0, fmt.Errorf("%w: month %d must be within 1..12", ErrOutOfRange, number)
	}

	return Month(number), nil
}

// Number is the month's number, January being 1
func (m Month) Number() int {
	return int(m)
}

func (m Month) valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	if !m.valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}

	return MonthNamesEnglishFull[m-1]
}

// TimeMonth converts the month to its [time.Month] equivalent
func (m Month) TimeMonth() time.Month {
	return time.Month(m)
}
