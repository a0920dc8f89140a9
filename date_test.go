package iso8601_test

import (
	"fmt"
	"github.com/davejbax/go-iso8601"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func mustDate(t *testing.T, year int, month iso8601.Month, day int) iso8601.LocalDate {
	t.Helper()

	d, err := iso8601.NewLocalDate(year, month, day)
	require.NoError(t, err, "NewLocalDate should accept a valid date")

	return d
}

func TestNewLocalDate(t *testing.T) {
	cases := []struct {
		year  int
		month iso8601.Month
		day   int
		valid bool
	}{
		{2024, iso8601.March, 1, true},
		{2024, iso8601.February, 29, true},
		{2023, iso8601.February, 29, false},
		{1900, iso8601.February, 29, false},
		{2000, iso8601.February, 29, true},
		{2024, iso8601.April, 31, false},
		{2024, iso8601.Month(13), 1, false},
		{2024, iso8601.Month(0), 1, false},
		{2024, iso8601.January, 32, false},
		{2024, iso8601.January, 0, false},
		{-1, iso8601.January, 1, true},
		{999_999_999, iso8601.December, 31, true},
		{1_000_000_000, iso8601.January, 1, false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d-%d-%d", c.year, int(c.month), c.day), func(t *testing.T) {
			t.Parallel()

			d, err := iso8601.NewLocalDate(c.year, c.month, c.day)
			if !c.valid {
				assert.ErrorIs(t, err, iso8601.ErrOutOfRange, "NewLocalDate should reject an invalid date")
				return
			}

			require.NoError(t, err, "NewLocalDate should accept a valid date")
			assert.Equal(t, c.year, d.Year())
			assert.Equal(t, c.month, d.Month())
			assert.Equal(t, c.day, d.Day())
		})
	}
}

func TestLocalDate_DayOfWeekAndYear(t *testing.T) {
	cases := []struct {
		date      iso8601.LocalDate
		dayOfWeek iso8601.DayOfWeek
		dayOfYear int
	}{
		{mustDate(t, 2024, iso8601.March, 1), iso8601.Friday, 61},
		{mustDate(t, 1970, iso8601.January, 1), iso8601.Thursday, 1},
		{mustDate(t, 2000, iso8601.January, 1), iso8601.Saturday, 1},
		{mustDate(t, 2023, iso8601.December, 31), iso8601.Sunday, 365},
		{mustDate(t, 2024, iso8601.December, 31), iso8601.Tuesday, 366},
	}

	for _, c := range cases {
		t.Run(c.date.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.dayOfWeek, c.date.DayOfWeek(), "DayOfWeek should match the calendar")
			assert.Equal(t, c.dayOfYear, c.date.DayOfYear(), "DayOfYear should count from the 1st of January")
		})
	}
}

func TestLocalDate_Compare(t *testing.T) {
	earlier := mustDate(t, 2024, iso8601.February, 29)
	later := mustDate(t, 2024, iso8601.March, 1)

	assert.Negative(t, earlier.Compare(later))
	assert.Positive(t, later.Compare(earlier))
	assert.Zero(t, later.Compare(mustDate(t, 2024, iso8601.March, 1)))
	assert.Equal(t, later, mustDate(t, 2024, iso8601.March, 1), "equal dates should be comparable with ==")
}

func TestLocalDateOf(t *testing.T) {
	d, err := iso8601.LocalDateOf(time.Date(2024, time.March, 1, 23, 30, 0, 0, time.FixedZone("", -5*3600)))
	require.NoError(t, err)

	assert.Equal(t, mustDate(t, 2024, iso8601.March, 1), d, "LocalDateOf should use the wall clock date in the time's location")
}

func TestLocalDate_String(t *testing.T) {
	cases := []struct {
		date     iso8601.LocalDate
		expected string
	}{
		{mustDate(t, 2024, iso8601.March, 1), "2024-03-01"},
		{mustDate(t, 5, iso8601.March, 1), "0005-03-01"},
		{mustDate(t, 0, iso8601.January, 1), "0000-01-01"},
		{mustDate(t, -1, iso8601.January, 1), "-0001-01-01"},
		{mustDate(t, -12345, iso8601.January, 1), "-12345-01-01"},
		{mustDate(t, 9999, iso8601.December, 31), "9999-12-31"},
		{mustDate(t, 12345, iso8601.January, 1), "+12345-01-01"},
	}

	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, c.date.String())

			parsed, err := iso8601.ParseLocalDate(c.expected)
			require.NoError(t, err, "ParseLocalDate should accept what String produces")
			assert.Equal(t, c.date, parsed)
		})
	}
}

func TestMonthOf(t *testing.T) {
	m, err := iso8601.MonthOf(12)
	require.NoError(t, err)
	assert.Equal(t, iso8601.December, m)
	assert.Equal(t, time.December, m.TimeMonth())
	assert.Equal(t, "December", m.String())

	_, err = iso8601.MonthOf(13)
	assert.ErrorIs(t, err, iso8601.ErrOutOfRange)

	_, err = iso8601.MonthOf(0)
	assert.ErrorIs(t, err, iso8601.ErrOutOfRange)
}

func TestDayOfWeekFromISO(t *testing.T) {
	for n := 1; n <= 7; n++ {
		d, err := iso8601.DayOfWeekFromISO(n)
		require.NoError(t, err, "DayOfWeekFromISO should accept %d", n)
		assert.Equal(t, n, d.ISONumber(), "ISONumber should be the inverse of DayOfWeekFromISO")
	}

	monday, _ := iso8601.DayOfWeekFromISO(1)
	assert.Equal(t, iso8601.Monday, monday, "ISO day 1 should be Monday")

	sunday, _ := iso8601.DayOfWeekFromISO(7)
	assert.Equal(t, iso8601.Sunday, sunday, "ISO day 7 should be Sunday")
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, iso8601.Sunday, iso8601.DayOfWeekOf(time.Sunday))
	assert.Equal(t, iso8601.Wednesday, iso8601.DayOfWeekOf(time.Wednesday))

	for _, n := range []int{0, 8, -1} {
		_, err := iso8601.DayOfWeekFromISO(n)
		assert.ErrorIs(t, err, iso8601.ErrOutOfRange, "DayOfWeekFromISO should reject %d", n)
	}
}
