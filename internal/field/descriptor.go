package field

// SignPolicy decides when a sign character is written in front of a numeric field, and which sign characters
// are accepted when parsing it.
type SignPolicy int

const (
	// SignNever forbids negative values and sign characters altogether
	SignNever SignPolicy = iota

	// SignIfNegative writes '-' for negative values and nothing otherwise
	SignIfNegative

	// SignAlways writes '+' or '-' in front of every value; a sign is required when parsing
	SignAlways

	// SignIfWide writes '-' for negative values, and '+' for non-negative values that need more digits than the
	// field's pad width. This is the ISO 8601 rule for expanded years (+12345, -0001).
	SignIfWide
)

func (s SignPolicy) String() string {
	switch s {
	case SignNever:
		return "never"
	case SignIfNegative:
		return "if-negative"
	case SignAlways:
		return "always"
	case SignIfWide:
		return "if-wide"
	default:
		return "unknown"
	}
}

// Kind is the textual shape of a field's value
type Kind int

const (
	// KindInteger is a plain decimal integer
	KindInteger Kind = iota

	// KindFraction is a value in [0, 10^9) written as the decimal digits after a point, e.g. nanoseconds as
	// the fractional part of a second
	KindFraction

	// KindFlag is a 0/1 value that is never written as digits; it drives a sign or a name instead
	KindFlag
)

// Descriptor describes a single calendar field: its name, the range of values it may take and how it is written
// by default. Descriptors are shared by pointer between every format structure using the field, and must not be
// modified after package initialisation.
type Descriptor struct {
	// ID indexes the field in a [Values] set
	ID int

	Name string
	Min  int
	Max  int

	// PadWidth is the number of digits the field is zero-padded to by default
	PadWidth int

	// MaxDigits is the largest number of digits the parser consumes for this field
	MaxDigits int

	Sign SignPolicy
	Kind Kind

	// Default is the value assumed when the field is absent from the input. It is only meaningful when
	// HasDefault is true; fields without a default must always be present.
	Default    int
	HasDefault bool
}

// InRange reports whether value lies within the descriptor's [Min, Max] range
func (d *Descriptor) InRange(value int) bool {
	return value >= d.Min && value <= d.Max
}

// IsDefault reports whether value equals the descriptor's default. A field without a default never has its
// default value.
func (d *Descriptor) IsDefault(value int) bool {
	return d.HasDefault && value == d.Default
}

func (d *Descriptor) String() string {
	return d.Name
}

const (
	idYear = iota
	idMonthNumber
	idDay
	idDayOfWeek
	idDayOfYear
	idHour
	idMinute
	idSecond
	idNanosecond
	idOffsetNegative
	idOffsetHours
	idOffsetMinutes
	idOffsetSeconds

	count
)

var (
	Year = &Descriptor{
		ID: idYear, Name: "year",
		Min: -999_999_999, Max: 999_999_999,
		PadWidth: 4, MaxDigits: 9,
		Sign: SignIfWide,
	}
	MonthNumber = &Descriptor{
		ID: idMonthNumber, Name: "monthNumber",
		Min: 1, Max: 12,
		PadWidth: 2, MaxDigits: 2,
	}
	Day = &Descriptor{
		ID: idDay, Name: "day",
		Min: 1, Max: 31,
		PadWidth: 2, MaxDigits: 2,
	}

	// DayOfWeek is the ISO day number, Monday being 1. It is derived from the date when formatting, and only
	// checked for consistency when parsing.
	DayOfWeek = &Descriptor{
		ID: idDayOfWeek, Name: "dayOfWeek",
		Min: 1, Max: 7,
		PadWidth: 1, MaxDigits: 1,
	}
	DayOfYear = &Descriptor{
		ID: idDayOfYear, Name: "dayOfYear",
		Min: 1, Max: 366,
		PadWidth: 3, MaxDigits: 3,
	}

	Hour = &Descriptor{
		ID: idHour, Name: "hour",
		Min: 0, Max: 23,
		PadWidth: 2, MaxDigits: 2,
	}
	Minute = &Descriptor{
		ID: idMinute, Name: "minute",
		Min: 0, Max: 59,
		PadWidth: 2, MaxDigits: 2,
	}
	Second = &Descriptor{
		ID: idSecond, Name: "second",
		Min: 0, Max: 59,
		PadWidth: 2, MaxDigits: 2,
		HasDefault: true,
	}
	Nanosecond = &Descriptor{
		ID: idNanosecond, Name: "nanosecond",
		Min: 0, Max: 999_999_999,
		PadWidth: 1, MaxDigits: 9,
		Kind:       KindFraction,
		HasDefault: true,
	}

	OffsetNegative = &Descriptor{
		ID: idOffsetNegative, Name: "offsetIsNegative",
		Min: 0, Max: 1,
		Kind:       KindFlag,
		HasDefault: true,
	}
	OffsetHours = &Descriptor{
		ID: idOffsetHours, Name: "offsetHours",
		Min: 0, Max: 18,
		PadWidth: 2, MaxDigits: 2,
		HasDefault: true,
	}
	OffsetMinutes = &Descriptor{
		ID: idOffsetMinutes, Name: "offsetMinutesOfHour",
		Min: 0, Max: 59,
		PadWidth: 2, MaxDigits: 2,
		HasDefault: true,
	}
	OffsetSeconds = &Descriptor{
		ID: idOffsetSeconds, Name: "offsetSecondsOfMinute",
		Min: 0, Max: 59,
		PadWidth: 2, MaxDigits: 2,
		HasDefault: true,
	}
)

// All lists every descriptor, indexed by ID
var All = [count]*Descriptor{
	Year, MonthNumber, Day, DayOfWeek, DayOfYear,
	Hour, Minute, Second, Nanosecond,
	OffsetNegative, OffsetHours, OffsetMinutes, OffsetSeconds,
}
