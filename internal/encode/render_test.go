package encode_test

import (
	"github.com/davejbax/go-iso8601/internal/encode"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func yearField(width int, padding structure.Padding, sign field.SignPolicy) *structure.Field {
	return &structure.Field{Descriptor: field.Year, Width: width, Padding: padding, Sign: sign, MaxDigits: 9}
}

func TestRender_Integer(t *testing.T) {
	cases := []struct {
		name     string
		node     *structure.Field
		value    int
		expected string
	}{
		{"zero padded", yearField(4, structure.PaddingZero, field.SignIfWide), 5, "0005"},
		{"exact width", yearField(4, structure.PaddingZero, field.SignIfWide), 2024, "2024"},
		{"wide", yearField(4, structure.PaddingZero, field.SignIfWide), 12345, "+12345"},
		{"negative", yearField(4, structure.PaddingZero, field.SignIfWide), -1, "-0001"},
		{"negative wide", yearField(4, structure.PaddingZero, field.SignIfWide), -12345, "-12345"},
		{"unpadded", yearField(4, structure.PaddingNone, field.SignIfWide), 12345, "12345"},
		{"unpadded negative", yearField(4, structure.PaddingNone, field.SignIfNegative), -5, "-5"},
		{"always signed", yearField(4, structure.PaddingZero, field.SignAlways), 5, "+0005"},
		{"always signed negative", yearField(4, structure.PaddingZero, field.SignAlways), -5, "-0005"},
		{"space padded", yearField(6, structure.PaddingSpace, field.SignIfNegative), -5, "    -5"},
		{"space padded overflow", yearField(2, structure.PaddingSpace, field.SignIfNegative), 2024, "2024"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var v field.Values
			v.Set(field.Year, c.value)

			actual, err := encode.Render(c.node, &v)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestRender_Fraction(t *testing.T) {
	cases := []struct {
		minDigits int
		maxDigits int
		grouped   bool
		value     int
		expected  string
	}{
		{1, 9, false, 500_000_000, "5"},
		{1, 9, true, 500_000_000, "500"},
		{1, 9, true, 0, "000"},
		{1, 9, false, 0, "0"},
		{1, 9, true, 1_000, "000001"},
		{1, 9, true, 123_456_789, "123456789"},
		{3, 3, false, 123_456_789, "123"},
		{3, 6, false, 120_000_000, "120"},
		{1, 4, true, 123_400_000, "1234"},
	}

	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			t.Parallel()

			n := &structure.Field{Descriptor: field.Nanosecond, Width: c.minDigits, MaxDigits: c.maxDigits, Grouped: c.grouped}

			var v field.Values
			v.Set(field.Nanosecond, c.value)

			actual, err := encode.Render(n, &v)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestRender_Optional(t *testing.T) {
	n := &structure.Sequence{Items: []structure.Node{
		&structure.Field{Descriptor: field.Hour, Width: 2},
		&structure.Optional{
			Inner: &structure.Sequence{Items: []structure.Node{
				&structure.Literal{Text: ":"},
				&structure.Field{Descriptor: field.Second, Width: 2},
			}},
			OnAbsent: "!",
		},
	}}

	var v field.Values
	v.Set(field.Hour, 7)
	v.Set(field.Second, 0)

	actual, err := encode.Render(n, &v)
	require.NoError(t, err)
	assert.Equal(t, "07!", actual, "an optional section holding defaults should be replaced by its absent text")

	v.Set(field.Second, 9)
	actual, err = encode.Render(n, &v)
	require.NoError(t, err)
	assert.Equal(t, "07:09", actual)
}

func TestRender_SignedAndNames(t *testing.T) {
	n := &structure.Sequence{Items: []structure.Node{
		&structure.Names{Descriptor: field.MonthNumber, Names: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}},
		&structure.Alternatives{Branches: []structure.Node{
			&structure.Literal{Text: " "},
			&structure.Literal{Text: "_"},
		}},
		&structure.Signed{
			Negative: field.OffsetNegative,
			Inner:    &structure.Field{Descriptor: field.OffsetHours, Width: 2},
		},
	}}

	var v field.Values
	v.Set(field.MonthNumber, 10)
	v.Set(field.OffsetNegative, 1)
	v.Set(field.OffsetHours, 0)

	actual, err := encode.Render(n, &v)
	require.NoError(t, err)
	assert.Equal(t, "O -00", actual, "a signed group should keep its sign even when zero")
}

func TestRender_Errors(t *testing.T) {
	var v field.Values

	_, err := encode.Render(&structure.Field{Descriptor: field.Hour, Width: 2}, &v)
	assert.ErrorIs(t, err, encode.ErrMissingField)

	v.Set(field.Hour, 24)
	_, err = encode.Render(&structure.Field{Descriptor: field.Hour, Width: 2}, &v)
	assert.ErrorIs(t, err, encode.ErrFieldOutOfRange)

	v.Set(field.Year, -1)
	_, err = encode.Render(yearField(4, structure.PaddingZero, field.SignNever), &v)
	assert.ErrorIs(t, err, encode.ErrFieldOutOfRange, "negative values cannot be written without a sign")
}
