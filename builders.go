package iso8601

import (
	"github.com/davejbax/go-iso8601/internal/builder"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
)

// FieldOption overrides how a numeric field is written, e.g. WithPadding(PaddingNone) for a month written as 3
// rather than 03
type FieldOption = builder.FieldOption

// Padding is the character a numeric field is padded with
type Padding = structure.Padding

const (
	PaddingZero  = structure.PaddingZero
	PaddingNone  = structure.PaddingNone
	PaddingSpace = structure.PaddingSpace
)

// SignPolicy decides when a numeric field is written with a sign
type SignPolicy = field.SignPolicy

const (
	SignNever      = field.SignNever
	SignIfNegative = field.SignIfNegative
	SignAlways     = field.SignAlways
	SignIfWide     = field.SignIfWide
)

// WithPadding sets the padding of a numeric field
func WithPadding(p Padding) FieldOption {
	return builder.WithPadding(p)
}

// WithWidth sets the width a numeric field is padded to, between 1 and 9
func WithWidth(width int) FieldOption {
	return builder.WithWidth(width)
}

// WithSign sets when a numeric field is written with a sign
func WithSign(policy SignPolicy) FieldOption {
	return builder.WithSign(policy)
}

// scope holds the building blocks available to every builder: literals, optional sections and alternatives.
// B is the concrete builder type handed to nested callbacks, so a section can use the same fields as its
// enclosing format.
type scope[B any] struct {
	b    *builder.Builder
	self *B
}

// Literal appends fixed text
func (s scope[B]) Literal(text string) {
	s.b.Literal(text)
}

// Char appends a single fixed character
func (s scope[B]) Char(c rune) {
	s.b.Literal(string(c))
}

// Optional appends a section that is left out when every field in it holds its default value, writing onAbsent
// instead. When parsing, either the section or onAbsent is accepted. Every field in the section must have a
// default value (seconds, fractions of a second and offset fields do).
func (s scope[B]) Optional(onAbsent string, section func(*B)) {
	s.b.Push()
	section(s.self)
	s.b.PopOptional(onAbsent)
}

// Alternatives appends a choice between several sections. Only primary is used for formatting; when parsing,
// primary and then each alternative are tried in order, and the first that matches is used.
func (s scope[B]) Alternatives(primary func(*B), alternatives ...func(*B)) {
	for _, section := range append([]func(*B){primary}, alternatives...) {
		s.b.Push()
		section(s.self)
	}

	s.b.PopAlternatives(1 + len(alternatives))
}

type dateFields struct {
	b *builder.Builder
}

// Year appends the year, by default padded to four digits and written with a sign when negative or wider than
// four digits
func (f dateFields) Year(opts ...FieldOption) {
	f.b.Field(field.Year, opts...)
}

// MonthNumber appends the month as a number, by default padded to two digits
func (f dateFields) MonthNumber(opts ...FieldOption) {
	f.b.Field(field.MonthNumber, opts...)
}

// MonthName appends the month written as one of names
func (f dateFields) MonthName(names MonthNames) {
	f.b.Names(field.MonthNumber, names)
}

// Day appends the day of the month, by default padded to two digits
func (f dateFields) Day(opts ...FieldOption) {
	f.b.Field(field.Day, opts...)
}

// DayOfWeekName appends the day of the week written as one of names. When parsing, the day must match the date.
func (f dateFields) DayOfWeekName(names DayOfWeekNames) {
	f.b.Names(field.DayOfWeek, names)
}

// DayOfWeekNumber appends the ISO day number of the week, Monday being 1
func (f dateFields) DayOfWeekNumber(opts ...FieldOption) {
	f.b.Field(field.DayOfWeek, opts...)
}

// DayOfYear appends the day of the year, by default padded to three digits
func (f dateFields) DayOfYear(opts ...FieldOption) {
	f.b.Field(field.DayOfYear, opts...)
}

// Date appends every part of another date format
func (f dateFields) Date(format *Format[LocalDate]) {
	f.b.Embed(format.structure)
}

type timeFields struct {
	b *builder.Builder
}

// Hour appends the hour of the day (0-23), by default padded to two digits
func (f timeFields) Hour(opts ...FieldOption) {
	f.b.Field(field.Hour, opts...)
}

// Minute appends the minute of the hour, by default padded to two digits
func (f timeFields) Minute(opts ...FieldOption) {
	f.b.Field(field.Minute, opts...)
}

// Second appends the second of the minute, by default padded to two digits
func (f timeFields) Second(opts ...FieldOption) {
	f.b.Field(field.Second, opts...)
}

// SecondFraction appends the fractional part of the second, without the decimal point. At least minDigits and
// at most maxDigits digits are written, trailing zeros beyond minDigits being dropped.
func (f timeFields) SecondFraction(minDigits, maxDigits int) {
	f.b.Fraction(field.Nanosecond, minDigits, maxDigits, false)
}

// SecondFractionGrouped is like [timeFields.SecondFraction], but writes digits in groups of three: half a
// second is written as 500 rather than 5
func (f timeFields) SecondFractionGrouped(minDigits, maxDigits int) {
	f.b.Fraction(field.Nanosecond, minDigits, maxDigits, true)
}

// Time appends every part of another time format
func (f timeFields) Time(format *Format[LocalTime]) {
	f.b.Embed(format.structure)
}

type dateTimeFields struct {
	b *builder.Builder
}

// DateTime appends every part of another date-time format
func (f dateTimeFields) DateTime(format *Format[LocalDateTime]) {
	f.b.Embed(format.structure)
}

type offsetFields[B any] struct {
	b    *builder.Builder
	self *B
}

// OffsetSign appends the sign of the offset, '+' or '-', followed by the section. Offset hours, minutes and
// seconds hold the magnitude of the offset, so they may only be used inside such a section.
func (f offsetFields[B]) OffsetSign(section func(*B)) {
	f.b.Push()
	section(f.self)
	f.b.PopSigned(field.OffsetNegative)
}

// OffsetHours appends the whole hours of the offset, by default padded to two digits
func (f offsetFields[B]) OffsetHours(opts ...FieldOption) {
	f.b.Field(field.OffsetHours, opts...)
}

// OffsetMinutesOfHour appends the minutes of the offset beyond its whole hours
func (f offsetFields[B]) OffsetMinutesOfHour(opts ...FieldOption) {
	f.b.Field(field.OffsetMinutes, opts...)
}

// OffsetSecondsOfMinute appends the seconds of the offset beyond its whole minutes
func (f offsetFields[B]) OffsetSecondsOfMinute(opts ...FieldOption) {
	f.b.Field(field.OffsetSeconds, opts...)
}

// Offset appends every part of another offset format
func (f offsetFields[B]) Offset(format *Format[UTCOffset]) {
	f.b.Embed(format.structure)
}

// DateBuilder builds formats for [LocalDate]
type DateBuilder struct {
	scope[DateBuilder]
	dateFields
}

// TimeBuilder builds formats for [LocalTime]
type TimeBuilder struct {
	scope[TimeBuilder]
	timeFields
}

// DateTimeBuilder builds formats for [LocalDateTime]
type DateTimeBuilder struct {
	scope[DateTimeBuilder]
	dateFields
	timeFields
	dateTimeFields
}

// OffsetBuilder builds formats for [UTCOffset]
type OffsetBuilder struct {
	scope[OffsetBuilder]
	offsetFields[OffsetBuilder]
}

// OffsetDateTimeBuilder builds formats for [OffsetDateTime]
type OffsetDateTimeBuilder struct {
	scope[OffsetDateTimeBuilder]
	dateFields
	timeFields
	dateTimeFields
	offsetFields[OffsetDateTimeBuilder]
}

var (
	dateTimeCapabilities       = field.DateFields.Union(field.TimeFields)
	offsetDateTimeCapabilities = dateTimeCapabilities.Union(field.OffsetFields)
)

func newDateBuilder(b *builder.Builder) *DateBuilder {
	db := &DateBuilder{dateFields: dateFields{b}}
	db.scope = scope[DateBuilder]{b: b, self: db}

	return db
}

func newTimeBuilder(b *builder.Builder) *TimeBuilder {
	tb := &TimeBuilder{timeFields: timeFields{b}}
	tb.scope = scope[TimeBuilder]{b: b, self: tb}

	return tb
}

func newDateTimeBuilder(b *builder.Builder) *DateTimeBuilder {
	dtb := &DateTimeBuilder{dateFields: dateFields{b}, timeFields: timeFields{b}, dateTimeFields: dateTimeFields{b}}
	dtb.scope = scope[DateTimeBuilder]{b: b, self: dtb}

	return dtb
}

func newOffsetBuilder(b *builder.Builder) *OffsetBuilder {
	ob := &OffsetBuilder{}
	ob.scope = scope[OffsetBuilder]{b: b, self: ob}
	ob.offsetFields = offsetFields[OffsetBuilder]{b: b, self: ob}

	return ob
}

func newOffsetDateTimeBuilder(b *builder.Builder) *OffsetDateTimeBuilder {
	odb := &OffsetDateTimeBuilder{dateFields: dateFields{b}, timeFields: timeFields{b}, dateTimeFields: dateTimeFields{b}}
	odb.scope = scope[OffsetDateTimeBuilder]{b: b, self: odb}
	odb.offsetFields = offsetFields[OffsetDateTimeBuilder]{b: b, self: odb}

	return odb
}

// NewDateFormat builds a format for [LocalDate]. It fails with [ErrInvalidStructure] if the builder was misused,
// e.g. with an optional section containing the year.
func NewDateFormat(build func(*DateBuilder)) (*Format[LocalDate], error) {
	b := builder.New(field.DateFields)
	build(newDateBuilder(b))

	return newFormat(b, LocalDate.project, dateFromValues)
}

// NewTimeFormat builds a format for [LocalTime]
func NewTimeFormat(build func(*TimeBuilder)) (*Format[LocalTime], error) {
	b := builder.New(field.TimeFields)
	build(newTimeBuilder(b))

	return newFormat(b, LocalTime.project, timeFromValues)
}

// NewDateTimeFormat builds a format for [LocalDateTime]
func NewDateTimeFormat(build func(*DateTimeBuilder)) (*Format[LocalDateTime], error) {
	b := builder.New(dateTimeCapabilities)
	build(newDateTimeBuilder(b))

	return newFormat(b, LocalDateTime.project, dateTimeFromValues)
}

// NewOffsetFormat builds a format for [UTCOffset]
func NewOffsetFormat(build func(*OffsetBuilder)) (*Format[UTCOffset], error) {
	b := builder.New(field.OffsetFields)
	build(newOffsetBuilder(b))

	return newFormat(b, UTCOffset.project, offsetFromValues)
}

// NewOffsetDateTimeFormat builds a format for [OffsetDateTime]
func NewOffsetDateTimeFormat(build func(*OffsetDateTimeBuilder)) (*Format[OffsetDateTime], error) {
	b := builder.New(offsetDateTimeCapabilities)
	build(newOffsetDateTimeBuilder(b))

	return newFormat(b, OffsetDateTime.project, offsetDateTimeFromValues)
}

func must[T any](format *Format[T], err error) *Format[T] {
	if err != nil {
		panic(err)
	}

	return format
}

// MustDateFormat is like [NewDateFormat] but panics on error. It is meant for package-level format variables.
func MustDateFormat(build func(*DateBuilder)) *Format[LocalDate] {
	return must(NewDateFormat(build))
}

// MustTimeFormat is like [NewTimeFormat] but panics on error
func MustTimeFormat(build func(*TimeBuilder)) *Format[LocalTime] {
	return must(NewTimeFormat(build))
}

// MustDateTimeFormat is like [NewDateTimeFormat] but panics on error
func MustDateTimeFormat(build func(*DateTimeBuilder)) *Format[LocalDateTime] {
	return must(NewDateTimeFormat(build))
}

// MustOffsetFormat is like [NewOffsetFormat] but panics on error
func MustOffsetFormat(build func(*OffsetBuilder)) *Format[UTCOffset] {
	return must(NewOffsetFormat(build))
}

// MustOffsetDateTimeFormat is like [NewOffsetDateTimeFormat] but panics on error
func MustOffsetDateTimeFormat(build func(*OffsetDateTimeBuilder)) *Format[OffsetDateTime] {
	return must(NewOffsetDateTimeFormat(build))
}
