package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/flashpack/internal/wire"
)

func TestEncodeLayout(t *testing.T) {
	c := Card{Name: "ab", Question: "Q?", Tips: []string{"t1", "tip"}}

	got, err := Encode(c, DefaultFormatVersion)
	require.NoError(t, err)

	want := []byte{
		0x00, 0x01, // version
		0x00, 0x02, // name length
		0x00, 0x02, // question length
		0x00, 0x02, // tip count
		0x00, 0x00, 0x02, // tip 0 length
		0x00, 0x00, 0x03, // tip 1 length
		'a', 'b',
		'Q', '?',
		't', '1',
		't', 'i', 'p',
	}
	assert.Equal(t, want, got)
}

func TestEncodeNoTips(t *testing.T) {
	got, err := Encode(Card{Name: "n", Question: ""}, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 7, 0, 1, 0, 0, 0, 0, 'n'}, got)
}

func TestEncodeCountsUTF8Bytes(t *testing.T) {
	c := Card{Name: "é", Question: "日本", Tips: []string{"ü"}}

	got, err := Encode(c, DefaultFormatVersion)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), wire.Uint(got[2:4]))
	assert.Equal(t, uint64(6), wire.Uint(got[4:6]))
	assert.Equal(t, uint64(1), wire.Uint(got[6:8]))
	assert.Equal(t, uint64(2), wire.Uint(got[8:11]))
	assert.Len(t, got, 11+2+6+2)
}

func TestEncodeIsDeterministic(t *testing.T) {
	c := Card{Name: "same", Question: "question", Tips: []string{"a", "b", "c"}}

	first, err := Encode(c, DefaultFormatVersion)
	require.NoError(t, err)
	second, err := Encode(c, DefaultFormatVersion)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeTipOverflow(t *testing.T) {
	c := Card{Name: "big", Question: "q", Tips: []string{"ok", strings.Repeat("x", 1<<24)}}

	out, err := Encode(c, DefaultFormatVersion)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, wire.ErrOverflow))
	assert.Contains(t, err.Error(), "tip 1")
}

func TestEncodeNameOverflow(t *testing.T) {
	c := Card{Name: strings.Repeat("n", 1<<16), Question: "q"}

	_, err := Encode(c, DefaultFormatVersion)
	assert.True(t, errors.Is(err, wire.ErrOverflow))
}

func TestEncodeQuestionAtLimit(t *testing.T) {
	c := Card{Name: "q", Question: strings.Repeat("q", 1<<16-1)}

	got, err := Encode(c, DefaultFormatVersion)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<16-1), wire.Uint(got[4:6]))
}

func TestEncodeTipCountOverflow(t *testing.T) {
	c := Card{Name: "many", Question: "q", Tips: make([]string, 1<<16)}

	_, err := Encode(c, DefaultFormatVersion)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrOverflow))
	assert.Contains(t, err.Error(), "tip count")
}
