package iso8601_test

import (
	"bytes"
	"encoding/json"
	"github.com/davejbax/go-iso8601"
	"github.com/davejbax/go-iso8601/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"testing"
)

type schedule struct {
	Day     iso8601.LocalDate      `json:"day" yaml:"day"`
	Opens   iso8601.LocalTime      `json:"opens" yaml:"opens"`
	Updated iso8601.OffsetDateTime `json:"updated" yaml:"updated"`
	Zone    iso8601.UTCOffset      `json:"zone" yaml:"zone"`
	Local   iso8601.LocalDateTime  `json:"local" yaml:"local"`
}

func testSchedule(t *testing.T) schedule {
	t.Helper()

	updated, err := iso8601.ParseOffsetDateTime("2024-02-28T17:45:00.25-05:00")
	require.NoError(t, err)

	local, err := iso8601.NewLocalDateTime(2024, iso8601.March, 1, 8, 30, 0, 0)
	require.NoError(t, err)

	return schedule{
		Day:     mustDate(t, 2024, iso8601.March, 1),
		Opens:   mustTime(t, 8, 30, 0, 0),
		Updated: updated,
		Zone:    updated.Offset(),
		Local:   local,
	}
}

func TestText_JSON(t *testing.T) {
	s := testSchedule(t)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"day":"2024-03-01","opens":"08:30","updated":"2024-02-28T17:45:00.250-05:00","zone":"-05:00","local":"2024-03-01T08:30"}`,
		string(data),
		"values should be written as ISO 8601 strings",
	)

	var decoded schedule
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)

	err = json.Unmarshal([]byte(`{"day":"2024-02-30"}`), &decoded)
	assert.ErrorIs(t, err, iso8601.ErrInconsistentFields, "invalid dates should be rejected when unmarshalling")
}

func TestYAML(t *testing.T) {
	s := testSchedule(t)

	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	var decoded schedule
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)

	input := "day: 2024-03-01\nopens: \"08:30\"\nupdated: 2024-02-28T17:45:00.25-05:00\nzone: \"-05:00\"\nlocal: 2024-03-01T08:30\n"
	decoded = schedule{}
	require.NoError(t, yaml.Unmarshal([]byte(input), &decoded), "unquoted timestamps should be accepted")
	assert.Equal(t, s, decoded)
}

func TestYAML_Errors(t *testing.T) {
	var decoded schedule

	err := yaml.Unmarshal([]byte("opens: \"08:30\"\nday: 2024-13-01\n"), &decoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, iso8601.ErrFieldOutOfRange)
	assert.Contains(t, err.Error(), "line 2", "errors should say where in the document the value is")

	err = yaml.Unmarshal([]byte("day: [2024, 3, 1]\n"), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a scalar")
}

func TestBinary(t *testing.T) {
	s := testSchedule(t)

	data, err := s.Day.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(
		t,
		[]byte{0x01, 0x00, 0x00, 0x07, 0xE8, 0x03, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		data,
		"a date should be packed into a record with only the date flag set",
	)

	var day iso8601.LocalDate
	require.NoError(t, day.UnmarshalBinary(data))
	assert.Equal(t, s.Day, day)

	var opens iso8601.LocalTime
	assert.ErrorIs(t, opens.UnmarshalBinary(data), wire.ErrWrongKind, "a date record should not decode as a time")
	assert.ErrorIs(t, day.UnmarshalBinary(data[:10]), wire.ErrInvalidLength)

	invalid := bytes.Clone(data)
	invalid[5] = 13
	assert.ErrorIs(t, day.UnmarshalBinary(invalid), iso8601.ErrOutOfRange, "records should be validated when decoding")

	data, err = s.Updated.MarshalBinary()
	require.NoError(t, err)

	var updated iso8601.OffsetDateTime
	require.NoError(t, updated.UnmarshalBinary(data))
	assert.Equal(t, s.Updated, updated)

	data, err = s.Local.MarshalBinary()
	require.NoError(t, err)

	var local iso8601.LocalDateTime
	require.NoError(t, local.UnmarshalBinary(data))
	assert.Equal(t, s.Local, local)

	data, err = s.Zone.MarshalBinary()
	require.NoError(t, err)

	var zone iso8601.UTCOffset
	require.NoError(t, zone.UnmarshalBinary(data))
	assert.Equal(t, s.Zone, zone)

	data, err = s.Opens.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, opens.UnmarshalBinary(data))
	assert.Equal(t, s.Opens, opens)
}

func TestWriteTo(t *testing.T) {
	s := testSchedule(t)

	var buff bytes.Buffer
	written, err := s.Updated.WriteTo(&buff)
	require.NoError(t, err)

	assert.EqualValues(t, wire.RecordSize, written, "WriteTo should report the record size")
	assert.Equal(t, wire.RecordSize, buff.Len())

	expected, err := s.Updated.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, expected, buff.Bytes(), "WriteTo should write the same bytes as MarshalBinary")
}
