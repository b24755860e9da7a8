package radiotap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderRejectsWrongVersion(t *testing.T) {
	b := []byte{1, 0, 8, 0, 0, 0, 0, 0}
	_, err := parseHeader(b)
	require.Error(t, err)
	assert.Equal(t, UnsupportedVersion, err.(*Error).Kind())
}

func TestParseHeaderRejectsShortInput(t *testing.T) {
	_, err := parseHeader([]byte{0, 0})
	require.Error(t, err)
	assert.Equal(t, IoError, err.(*Error).Kind())
}

func TestParseHeaderRejectsDeclaredLengthLongerThanInput(t *testing.T) {
	b := []byte{0, 0, 100, 0, 0, 0, 0, 0}
	_, err := parseHeader(b)
	require.Error(t, err)
	assert.Equal(t, InvalidLength, err.(*Error).Kind())
}

func TestParseHeaderChainsPresenceWords(t *testing.T) {
	b := []byte{
		0, 0, 12, 0,
		0x00, 0x00, 0x00, 0x80, // word 0, bit 31 set: another word follows
		0x01, 0x00, 0x00, 0x00, // word 1, bit 0 set, no continuation
	}
	h, err := parseHeader(b)
	require.NoError(t, err)
	require.Len(t, h.Present, 2)
	assert.Equal(t, 12, h.Size)
	assert.Equal(t, 12, h.Length)
}
