// Package wire holds the fixed-width integer primitive every length field
// of the packet format is written with.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Field widths of the packet format, in bytes.
const (
	VersionWidth     = 2
	NameLenWidth     = 2
	QuestionLenWidth = 2
	TipCountWidth    = 2
	TipLenWidth      = 3
	CardCountWidth   = 3
	CardLenWidth     = 5
)

const maxWidth = 8

var (
	ErrOverflow     = errors.New("wire: value overflows field width")
	ErrInvalidWidth = errors.New("wire: invalid field width")
)

// OverflowError reports a value that does not fit its field.
type OverflowError struct {
	Value uint64
	Width int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("wire: %d must be less than 2**%d=%d", e.Value, 8*e.Width, Limit(e.Width)+1)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// Limit returns the largest value representable in width bytes.
func Limit(width int) uint64 {
	if width >= maxWidth {
		return ^uint64(0)
	}
	return 1<<(8*uint(width)) - 1
}

// PutUint encodes value as exactly width big-endian bytes.
func PutUint(value uint64, width int) ([]byte, error) {
	if width < 1 || width > maxWidth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if value > Limit(width) {
		return nil, &OverflowError{Value: value, Width: width}
	}
	var buf [maxWidth]byte
	binary.BigEndian.PutUint64(buf[:], value)
	out := make([]byte, width)
	copy(out, buf[maxWidth-width:])
	return out, nil
}

// AppendUint is PutUint appending to dst.
func AppendUint(dst []byte, value uint64, width int) ([]byte, error) {
	b, err := PutUint(value, width)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// Uint reads a big-endian unsigned integer of up to 8 bytes.
func Uint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
