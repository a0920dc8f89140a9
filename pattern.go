package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/builder"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
	"strings"
)

// Pattern strings describe a format with letters in the style of Unicode date patterns:
//
//	y, u      year; y is unpadded, yyyy (or more) is padded to that many digits
//	M         month: M unpadded, MM padded, MMM abbreviated English name, MMMM full English name
//	d         day of month: d unpadded, dd padded
//	D         day of year: D unpadded, DD padded to two digits, DDD to three
//	E         day of week: E to EEE abbreviated English name, EEEE full English name
//	H         hour of day (0-23): H unpadded, HH padded
//	m         minute: m unpadded, mm padded
//	s         second: s unpadded, ss padded
//	S         fraction of a second, with exactly as many digits as letters
//	X         offset with Z for zero: X +HH[mm], XX +HHmm, XXX +HH:mm, XXXX +HHmm[ss], XXXXX +HH:mm[:ss]
//	x         offset as X, but zero is written as +00 rather than Z
//
// Text in single quotes is literal, and two single quotes stand for one. Square brackets enclose an optional
// section. Other characters that aren't ASCII letters are literal.

// DateFormatFromPattern compiles a pattern into a [LocalDate] format. Patterns referencing fields a date doesn't
// have, such as the hour, fail with [ErrInvalidStructure].
func DateFormatFromPattern(pattern string) (*Format[LocalDate], error) {
	b := builder.New(field.DateFields)
	if err := compilePattern(b, pattern); err != nil {
		return nil, err
	}

	return newFormat(b, LocalDate.project, dateFromValues)
}

// TimeFormatFromPattern compiles a pattern into a [LocalTime] format
func TimeFormatFromPattern(pattern string) (*Format[LocalTime], error) {
	b := builder.New(field.TimeFields)
	if err := compilePattern(b, pattern); err != nil {
		return nil, err
	}

	return newFormat(b, LocalTime.project, timeFromValues)
}

// DateTimeFormatFromPattern compiles a pattern into a [LocalDateTime] format
func DateTimeFormatFromPattern(pattern string) (*Format[LocalDateTime], error) {
	b := builder.New(dateTimeCapabilities)
	if err := compilePattern(b, pattern); err != nil {
		return nil, err
	}

	return newFormat(b, LocalDateTime.project, dateTimeFromValues)
}

// OffsetDateTimeFormatFromPattern compiles a pattern into an [OffsetDateTime] format
func OffsetDateTimeFormatFromPattern(pattern string) (*Format[OffsetDateTime], error) {
	b := builder.New(offsetDateTimeCapabilities)
	if err := compilePattern(b, pattern); err != nil {
		return nil, err
	}

	return newFormat(b, OffsetDateTime.project, offsetDateTimeFromValues)
}

func patternError(pattern string, pos int, format string, args ...any) error {
	return fmt.Errorf("%w: pattern %q at offset %d: %s", ErrInvalidStructure, pattern, pos, fmt.Sprintf(format, args...))
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func compilePattern(b *builder.Builder, pattern string) error {
	depth := 0

	for pos := 0; pos < len(pattern); {
		c := pattern[pos]

		switch {
		case c == '\'':
			text, end, err := quoted(pattern, pos)
			if err != nil {
				return err
			}

			b.Literal(text)
			pos = end

		case c == '[':
			b.Push()
			depth++
			pos++

		case c == ']':
			if depth == 0 {
				return patternError(pattern, pos, "']' without a matching '['")
			}

			b.PopOptional("")
			depth--
			pos++

		case isPatternLetter(c):
			end := pos
			for end < len(pattern) && pattern[end] == c {
				end++
			}

			if err := compileLetter(b, c, end-pos); err != nil {
				return patternError(pattern, pos, "%s", err)
			}

			pos = end

		default:
			// Copy any run of non-special bytes, which keeps multi-byte characters intact
			end := pos
			for end < len(pattern) && !isPatternLetter(pattern[end]) && !strings.ContainsRune("'[]", rune(pattern[end])) {
				end++
			}

			b.Literal(pattern[pos:end])
			pos = end
		}
	}

	if depth != 0 {
		return patternError(pattern, len(pattern), "%d unclosed '['", depth)
	}

	return nil
}

// quoted reads the quoted text starting at pattern[start], which must be a quote. It returns the unquoted text
// and the offset just past the closing quote.
func quoted(pattern string, start int) (string, int, error) {
	if strings.HasPrefix(pattern[start:], "''") {
		return "'", start + 2, nil
	}

	var sb strings.Builder
	for pos := start + 1; pos < len(pattern); pos++ {
		if pattern[pos] != '\'' {
			sb.WriteByte(pattern[pos])
			continue
		}

		if pos+1 < len(pattern) && pattern[pos+1] == '\'' {
			sb.WriteByte('\'')
			pos++
			continue
		}

		return sb.String(), pos + 1, nil
	}

	return "", 0, patternError(pattern, start, "unterminated quote")
}

var twoDigitFields = map[byte]*field.Descriptor{
	'd': field.Day,
	'H': field.Hour,
	'm': field.Minute,
	's': field.Second,
}

func compileLetter(b *builder.Builder, letter byte, count int) error {
	unsupported := fmt.Errorf("unsupported pattern %q", strings.Repeat(string(letter), count))
	unpadded := builder.WithPadding(structure.PaddingNone)

	switch letter {
	case 'y', 'u':
		switch {
		case count == 1:
			b.Field(field.Year, unpadded)
		case count == 2:
			return fmt.Errorf("two-digit years are not supported")
		case count == 3:
			b.Field(field.Year, builder.WithWidth(3), builder.WithSign(field.SignIfNegative))
		default:
			b.Field(field.Year, builder.WithWidth(count))
		}

	case 'M':
		switch count {
		case 1:
			b.Field(field.MonthNumber, unpadded)
		case 2:
			b.Field(field.MonthNumber)
		case 3:
			b.Names(field.MonthNumber, MonthNamesEnglishAbbreviated)
		case 4:
			b.Names(field.MonthNumber, MonthNamesEnglishFull)
		default:
			return unsupported
		}

	case 'E':
		switch {
		case count <= 3:
			b.Names(field.DayOfWeek, DayOfWeekNamesEnglishAbbreviated)
		case count == 4:
			b.Names(field.DayOfWeek, DayOfWeekNamesEnglishFull)
		default:
			return unsupported
		}

	case 'D':
		switch count {
		case 1:
			b.Field(field.DayOfYear, unpadded)
		case 2, 3:
			b.Field(field.DayOfYear, builder.WithWidth(count))
		default:
			return unsupported
		}

	case 'd', 'H', 'm', 's':
		d := twoDigitFields[letter]
		switch count {
		case 1:
			b.Field(d, unpadded)
		case 2:
			b.Field(d)
		default:
			return unsupported
		}

	case 'S':
		if count > 9 {
			return unsupported
		}

		b.Fraction(field.Nanosecond, count, count, false)

	case 'X', 'x':
		if count > 5 {
			return unsupported
		}

		compileOffset(b, count, letter == 'X')

	default:
		return fmt.Errorf("unknown pattern letter %q", letter)
	}

	return nil
}

// compileOffset appends an offset in one of the five widths of the X and x pattern letters
func compileOffset(b *builder.Builder, count int, zeroAsZ bool) {
	if zeroAsZ {
		b.Push()
	}

	colon := count == 3 || count == 5

	b.Push()
	b.Field(field.OffsetHours)

	switch count {
	case 1:
		b.Push()
		b.Field(field.OffsetMinutes)
		b.PopOptional("")
	default:
		if colon {
			b.Literal(":")
		}
		b.Field(field.OffsetMinutes)
	}

	if count >= 4 {
		b.Push()
		if colon {
			b.Literal(":")
		}
		b.Field(field.OffsetSeconds)
		b.PopOptional("")
	}

	b.PopSigned(field.OffsetNegative)

	if zeroAsZ {
		b.PopOptional("Z")
	}
}
