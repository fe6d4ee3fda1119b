package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 255, 256, 65535, 65536, 1 << 24, 1<<40 - 1}
	for width := 1; width <= 8; width++ {
		for _, v := range values {
			if v > Limit(width) {
				continue
			}
			b, err := PutUint(v, width)
			require.NoError(t, err, "value=%d width=%d", v, width)
			assert.Len(t, b, width)
			assert.Equal(t, v, Uint(b))
		}
	}
}

func TestPutUintBigEndianLayout(t *testing.T) {
	b, err := PutUint(0x010203, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b)

	b, err = PutUint(1, CardLenWidth)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 1}, b)
}

func TestPutUintBoundary(t *testing.T) {
	for width := 1; width < 8; width++ {
		limit := Limit(width)
		_, err := PutUint(limit, width)
		require.NoError(t, err, "width=%d", width)

		_, err = PutUint(limit+1, width)
		require.Error(t, err, "width=%d", width)
		assert.True(t, errors.Is(err, ErrOverflow))

		var overflow *OverflowError
		require.True(t, errors.As(err, &overflow))
		assert.Equal(t, limit+1, overflow.Value)
		assert.Equal(t, width, overflow.Width)
	}
}

func TestPutUintWidthEightNeverOverflows(t *testing.T) {
	b, err := PutUint(^uint64(0), 8)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), Uint(b))
}

func TestPutUintInvalidWidth(t *testing.T) {
	for _, width := range []int{-1, 0, 9} {
		_, err := PutUint(1, width)
		assert.True(t, errors.Is(err, ErrInvalidWidth), "width=%d", width)
	}
}

func TestOverflowErrorMessageNamesLimit(t *testing.T) {
	_, err := PutUint(65536, 2)
	require.Error(t, err)
	assert.Equal(t, "wire: 65536 must be less than 2**16=65536", err.Error())
}

func TestAppendUint(t *testing.T) {
	dst := []byte{0xff}
	dst, err := AppendUint(dst, 2, TipCountWidth)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x00, 0x02}, dst)

	out, err := AppendUint(dst, 1<<24, TipLenWidth)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, dst, out)
}
