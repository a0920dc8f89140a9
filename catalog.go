package iso8601

var (
	// ISODate is the ISO 8601 extended date format, e.g. 2024-03-01. Years outside 0000-9999 are written with a
	// sign and as many digits as needed: -0001-01-01, +12345-01-01.
	//
	// Text is passed through [SanitizeYear] before parsing, so years with too few or too many leading zeros are
	// accepted.
	ISODate = MustDateFormat(func(b *DateBuilder) {
		b.Year()
		b.Char('-')
		b.MonthNumber()
		b.Char('-')
		b.Day()
	}).withSanitizer(SanitizeYear)

	// ISODateBasic is the ISO 8601 basic date format, e.g. 20240301
	ISODateBasic = MustDateFormat(func(b *DateBuilder) {
		b.Year()
		b.MonthNumber()
		b.Day()
	})

	// ISOTime is the ISO 8601 extended time format, e.g. 10:15, 10:15:30 or 10:15:30.5. Seconds are only written
	// when the time isn't a whole minute, and the fraction of the second only when it isn't zero, in groups of
	// three digits.
	ISOTime = MustTimeFormat(func(b *TimeBuilder) {
		b.Hour()
		b.Char(':')
		b.Minute()
		b.Optional("", func(b *TimeBuilder) {
			b.Char(':')
			b.Second()
			b.Optional("", func(b *TimeBuilder) {
				b.Char('.')
				b.SecondFractionGrouped(1, 9)
			})
		})
	})

	// ISODateTime is the ISO 8601 extended date-time format, e.g. 2024-03-01T10:15:30. A lower-case 't' is also
	// accepted when parsing.
	ISODateTime = MustDateTimeFormat(func(b *DateTimeBuilder) {
		b.Date(ISODate)
		b.Alternatives(
			func(b *DateTimeBuilder) { b.Char('T') },
			func(b *DateTimeBuilder) { b.Char('t') },
		)
		b.Time(ISOTime)
	}).withSanitizer(SanitizeYear)

	// ISOOffset is the ISO 8601 extended offset format: Z for UTC, otherwise e.g. +05:30 or -00:25:21. A
	// lower-case 'z' is also accepted when parsing.
	ISOOffset = MustOffsetFormat(func(b *OffsetBuilder) {
		b.Alternatives(
			func(b *OffsetBuilder) {
				b.Optional("Z", func(b *OffsetBuilder) {
					b.OffsetSign(func(b *OffsetBuilder) {
						b.OffsetHours()
						b.Char(':')
						b.OffsetMinutesOfHour()
						b.Optional("", func(b *OffsetBuilder) {
							b.Char(':')
							b.OffsetSecondsOfMinute()
						})
					})
				})
			},
			func(b *OffsetBuilder) { b.Char('z') },
		)
	})

	// ISOOffsetDateTime is the ISO 8601 date-time format with an offset, e.g. 2024-03-01T10:15:30+01:00
	ISOOffsetDateTime = MustOffsetDateTimeFormat(func(b *OffsetDateTimeBuilder) {
		b.DateTime(ISODateTime)
		b.Offset(ISOOffset)
	}).withSanitizer(SanitizeYear)

	// RFC1123 is the date-time format of RFC 1123 used by HTTP and email, e.g. Tue, 3 Jun 2008 11:05:30 GMT.
	// The day of the week and the seconds may be omitted when parsing, and UT or Z may stand for GMT. Offsets
	// other than zero are written as +HHMM.
	RFC1123 = MustOffsetDateTimeFormat(func(b *OffsetDateTimeBuilder) {
		b.Alternatives(
			func(b *OffsetDateTimeBuilder) {
				b.DayOfWeekName(DayOfWeekNamesEnglishAbbreviated)
				b.Literal(", ")
			},
			func(*OffsetDateTimeBuilder) {},
		)
		b.Day(WithPadding(PaddingNone))
		b.Char(' ')
		b.MonthName(MonthNamesEnglishAbbreviated)
		b.Char(' ')
		b.Year()
		b.Char(' ')
		b.Hour()
		b.Char(':')
		b.Minute()
		b.Alternatives(
			func(b *OffsetDateTimeBuilder) {
				b.Char(':')
				b.Second()
			},
			func(*OffsetDateTimeBuilder) {},
		)
		b.Char(' ')
		b.Alternatives(
			func(b *OffsetDateTimeBuilder) {
				b.Optional("GMT", func(b *OffsetDateTimeBuilder) {
					b.OffsetSign(func(b *OffsetDateTimeBuilder) {
						b.OffsetHours()
						b.OffsetMinutesOfHour()
					})
				})
			},
			func(b *OffsetDateTimeBuilder) { b.Literal("UT") },
			func(b *OffsetDateTimeBuilder) { b.Char('Z') },
		)
	})
)
