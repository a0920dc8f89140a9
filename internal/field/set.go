package field

import "strings"

// Set is a set of fields, used to describe which fields a format is allowed to reference
type Set uint32

func SetOf(descriptors ...*Descriptor) Set {
	var s Set
	for _, d := range descriptors {
		s |= 1 << d.ID
	}

	return s
}

// Capability sets for each kind of calendar value
var (
	DateFields   = SetOf(Year, MonthNumber, Day, DayOfWeek, DayOfYear)
	TimeFields   = SetOf(Hour, Minute, Second, Nanosecond)
	OffsetFields = SetOf(OffsetNegative, OffsetHours, OffsetMinutes, OffsetSeconds)

	// MagnitudeFields hold the absolute value of a quantity whose sign is stored separately
	MagnitudeFields = SetOf(OffsetHours, OffsetMinutes, OffsetSeconds)
)

func (s Set) Contains(d *Descriptor) bool {
	return s&(1<<d.ID) != 0
}

func (s Set) Union(other Set) Set {
	return s | other
}

func (s Set) String() string {
	names := make([]string, 0, count)
	for _, d := range All {
		if s.Contains(d) {
			names = append(names, d.Name)
		}
	}

	return "{" + strings.Join(names, ", ") + "}"
}
