package wire

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

var (
	// ErrInvalidLength indicates that a binary record is not exactly [RecordSize] bytes long
	ErrInvalidLength = errors.New("binary record has the wrong length")

	// ErrWrongKind indicates that a binary record holds a different kind of value than the one requested
	ErrWrongKind = errors.New("binary record holds a different kind of value")
)

// Flags mark which parts of a [Record] are meaningful
type Flags uint8

const (
	FlagDate Flags = 1 << iota
	FlagTime
	FlagOffset
)

// RecordSize is the packed size of a [Record], in bytes
const RecordSize = 18

// Record is the fixed-layout binary representation of every calendar value. Parts of the record that the value
// doesn't have (e.g. the time of a date) are zero and their flag is clear.
//
// All multi-byte numbers are big endian. Record can be encoded by the [struc] library.
type Record struct {
	Flags         Flags `struc:"uint8"`
	Year          int32 `struc:"int32,big"`
	Month         uint8
	Day           uint8
	Hour          uint8
	Minute        uint8
	Second        uint8
	Nanosecond    uint32 `struc:"uint32,big"`
	OffsetSeconds int32  `struc:"int32,big"`
}

// Ensure Record implements [io.WriterTo]
var _ io.WriterTo = &Record{}

func (r *Record) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	if err := struc.Pack(cw, r); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack record: %w", err)
	}

	return cw.Count(), nil
}

func (r *Record) MarshalBinary() ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, RecordSize))
	if _, err := r.WriteTo(buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// Unmarshal decodes a record, checking that it holds exactly the parts given by want
func Unmarshal(data []byte, want Flags) (Record, error) {
	var r Record

	if len(data) != RecordSize {
		return r, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, RecordSize, len(data))
	}

	if err := struc.Unpack(bytes.NewReader(data), &r); err != nil {
		return r, fmt.Errorf("failed to unpack record: %w", err)
	}

	if r.Flags != want {
		return r, fmt.Errorf("%w: flags %03b, expected %03b", ErrWrongKind, r.Flags, want)
	}

	return r, nil
}
