package idcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlisttracker/internal/idcodec"
)

func TestEncode_MinLength(t *testing.T) {
	c, err := idcodec.New("")
	require.NoError(t, err)

	for _, id := range []int64{0, 1, 42, 1 << 40} {
		s, err := c.Encode(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 6, "id %d encoded to %q", id, s)
	}
}

func TestEncode_Unique(t *testing.T) {
	c, err := idcodec.New("")
	require.NoError(t, err)

	seen := make(map[string]int64)
	for id := int64(1); id <= 1000; id++ {
		s, err := c.Encode(id)
		require.NoError(t, err)
		prev, dup := seen[s]
		require.False(t, dup, "ids %d and %d both encode to %q", prev, id, s)
		seen[s] = id
	}
}

func TestEncode_Negative(t *testing.T) {
	c, err := idcodec.New("")
	require.NoError(t, err)

	_, err = c.Encode(-1)
	assert.ErrorIs(t, err, idcodec.ErrInvalidID)
}

func TestDecode_RoundTrip(t *testing.T) {
	c, err := idcodec.New("")
	require.NoError(t, err)

	for _, id := range []int64{0, 1, 7, 99999, 1 << 50} {
		s, err := c.Encode(id)
		require.NoError(t, err)

		got, err := c.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestDecode_Invalid(t *testing.T) {
	c, err := idcodec.New("")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"foreign characters", "!!!@@@"},
		{"digits only", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.in)
			assert.ErrorIs(t, err, idcodec.ErrInvalidID)
		})
	}
}

func TestNew_CustomAlphabet(t *testing.T) {
	c, err := idcodec.New("abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)

	s, err := c.Encode(12345)
	require.NoError(t, err)
	assert.Regexp(t, "^[a-z]+$", s)
}

func TestNew_BadAlphabet(t *testing.T) {
	_, err := idcodec.New("ab")
	assert.Error(t, err)
}
