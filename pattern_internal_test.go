package iso8601

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPatternMatchesBuilder(t *testing.T) {
	cases := []struct {
		pattern string
		built   *Format[LocalDate]
	}{
		{"yyyy-MM-dd", ISODate},
		{"yyyyMMdd", ISODateBasic},
		{
			"EEE, d MMMM yyyy",
			MustDateFormat(func(b *DateBuilder) {
				b.DayOfWeekName(DayOfWeekNamesEnglishAbbreviated)
				b.Literal(", ")
				b.Day(WithPadding(PaddingNone))
				b.Char(' ')
				b.MonthName(MonthNamesEnglishFull)
				b.Char(' ')
				b.Year()
			}),
		},
		{
			"'Day 'DDD' of 'yyyy",
			MustDateFormat(func(b *DateBuilder) {
				b.Literal("Day ")
				b.DayOfYear()
				b.Literal(" of ")
				b.Year()
			}),
		},
	}

	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			t.Parallel()

			compiled, err := DateFormatFromPattern(c.pattern)
			require.NoError(t, err)

			if diff := cmp.Diff(c.built.structure, compiled.structure); diff != "" {
				t.Errorf("pattern structure differs from builder structure (-built +pattern):\n%s", diff)
			}
		})
	}
}

func TestOffsetPatternMatchesBuilder(t *testing.T) {
	compiled, err := OffsetDateTimeFormatFromPattern("XXXXX")
	require.NoError(t, err)

	built := MustOffsetDateTimeFormat(func(b *OffsetDateTimeBuilder) {
		b.Optional("Z", func(b *OffsetDateTimeBuilder) {
			b.OffsetSign(func(b *OffsetDateTimeBuilder) {
				b.OffsetHours()
				b.Char(':')
				b.OffsetMinutesOfHour()
				b.Optional("", func(b *OffsetDateTimeBuilder) {
					b.Char(':')
					b.OffsetSecondsOfMinute()
				})
			})
		})
	})

	if diff := cmp.Diff(built.structure, compiled.structure); diff != "" {
		t.Errorf("pattern structure differs from builder structure (-built +pattern):\n%s", diff)
	}
}
