package calendar_test

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/calendar"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNative_DaysInMonth(t *testing.T) {
	cases := []struct {
		year, month int
		expected    int
	}{
		{2024, 1, 31},
		{2024, 2, 29},
		{2023, 2, 28},
		{1900, 2, 28},
		{2000, 2, 29},
		{2024, 4, 30},
		{2024, 12, 31},
		{-4, 2, 29},
		{12345, 2, 28},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d-%02d", c.year, c.month), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, calendar.Native.DaysInMonth(c.year, c.month), "month length should follow Gregorian rules")
			assert.Equal(t, c.expected == 29, c.month == 2 && calendar.Native.IsLeapYear(c.year), "leap year should agree with February length")
		})
	}
}

func TestNative_DayOfWeek(t *testing.T) {
	cases := []struct {
		year, month, day int
		expected         int
	}{
		{2024, 1, 1, 1},   // Monday
		{2024, 3, 3, 7},   // Sunday
		{2000, 1, 1, 6},   // Saturday
		{1970, 1, 1, 4},   // Thursday
		{2008, 6, 3, 2},   // Tuesday
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, calendar.Native.DayOfWeek(c.year, c.month, c.day), "%d-%02d-%02d should have ISO weekday %d", c.year, c.month, c.day, c.expected)
	}
}

func TestNative_DayOfYearRoundTrip(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		days := 365
		if calendar.Native.IsLeapYear(year) {
			days = 366
		}

		for doy := 1; doy <= days; doy++ {
			month, day := calendar.Native.MonthDay(year, doy)
			assert.Equal(t, doy, calendar.Native.DayOfYear(year, month, day), "day of year should survive conversion to month and day")
		}
	}
}
