package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
	"time"
)

const maxOffsetSeconds = 18 * 60 * 60

// UTCOffset is a fixed difference from UTC, between -18:00 and +18:00 with a precision of one second.
//
// The zero value is UTC itself.
type UTCOffset struct {
	totalSeconds int
}

// UTC is the zero offset
var UTC = UTCOffset{}

// UTCOffsetOfSeconds creates an offset from its total number of seconds, failing with [ErrOutOfRange] beyond ±18
// hours
func UTCOffsetOfSeconds(totalSeconds int) (UTCOffset, error) {
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return UTCOffset{}, fmt.Errorf("%w: offset of %d seconds must be within ±%d", ErrOutOfRange, totalSeconds, maxOffsetSeconds)
	}

	return UTCOffset{totalSeconds: totalSeconds}, nil
}

// NewUTCOffset creates an offset from its components, which must all have the same sign: -05:30 is
// NewUTCOffset(-5, -30, 0).
func NewUTCOffset(hours, minutes, seconds int) (UTCOffset, error) {
	if (hours > 0 || minutes > 0 || seconds > 0) && (hours < 0 || minutes < 0 || seconds < 0) {
		return UTCOffset{}, fmt.Errorf("%w: offset components %d, %d, %d have different signs", ErrOutOfRange, hours, minutes, seconds)
	}

	if minutes < -59 || minutes > 59 || seconds < -59 || seconds > 59 {
		return UTCOffset{}, fmt.Errorf("%w: offset minutes %d and seconds %d must be within ±59", ErrOutOfRange, minutes, seconds)
	}

	return UTCOffsetOfSeconds(hours*3600 + minutes*60 + seconds)
}

// ParseUTCOffset parses an ISO 8601 offset such as Z, +05:30 or -08:00
func ParseUTCOffset(text string) (UTCOffset, error) {
	return ISOOffset.Parse(text)
}

func (o UTCOffset) TotalSeconds() int {
	return o.totalSeconds
}

// Location returns a fixed [time.Location] with this offset
func (o UTCOffset) Location() *time.Location {
	if o.totalSeconds == 0 {
		return time.UTC
	}

	return time.FixedZone("", o.totalSeconds)
}

// String formats the offset with [ISOOffset]
func (o UTCOffset) String() string {
	return ISOOffset.Format(o)
}

func (o UTCOffset) project(v *field.Values) {
	total := o.totalSeconds
	negative := 0
	if total < 0 {
		negative, total = 1, -total
	}

	v.Set(field.OffsetNegative, negative)
	v.Set(field.OffsetHours, total/3600)
	v.Set(field.OffsetMinutes, total/60%60)
	v.Set(field.OffsetSeconds, total%60)
}
