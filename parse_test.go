package radiotap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func le32(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }

// goodVendorCapture builds a capture with one presence-word chain of two
// words: word 0 sets bit 31 (more words follow) and bit 30 (vendor
// namespace descriptor follows); word 1 sets bit 0, interpreted in
// whatever namespace is active by then. The descriptor names
// OUI=AA:BB:CC, sub=1; newTestBuilder registers a one-byte field at bit 0
// for that pair.
func goodVendorCapture() (data []byte, oui Oui, sub uint8) {
	oui = Oui{0xAA, 0xBB, 0xCC}
	sub = 1

	var b []byte
	b = append(b, 0, 0)            // version, pad
	b = append(b, le16(0)...)      // length placeholder, fixed below
	b = append(b, le32(0xC0000000)...) // word 0: bit31 | bit30
	b = append(b, le32(0x00000001)...) // word 1: bit0
	b = append(b, oui[:]...)
	b = append(b, sub)
	b = append(b, le16(0)...) // skip length unused when namespace is registered
	b = append(b, 0x42)       // the single registered vendor field's byte

	total := uint16(len(b))
	copy(b[2:4], le16(total))
	return b, oui, sub
}

func newTestBuilder(oui Oui, sub uint8) *Builder {
	b := NewBuilder()
	b.RegisterVendor(oui, sub, newConfigNamespace(VendorNamespaceConfig{
		Oui: "aabbcc", Sub: sub,
		Fields: []VendorFieldConfig{{Bit: 0, Name: "x", Align: 1, Size: 1}},
	}))
	return b
}

func TestParseGoodVendor(t *testing.T) {
	data, oui, sub := goodVendorCapture()
	builder := newTestBuilder(oui, sub)

	capture, remainder, err := builder.Parse(data)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	require.Len(t, capture.Vendors, 1)
	assert.Equal(t, oui, capture.Vendors[0].Oui)
	assert.Equal(t, sub, capture.Vendors[0].Sub)
	assert.Equal(t, []byte{0x42}, capture.Vendors[0].Value.([]byte))
}

func TestParseBadVersion(t *testing.T) {
	data := []byte{7, 0, 8, 0, 0, 0, 0, 0}
	_, _, err := Parse(data)
	require.Error(t, err)
	assert.Equal(t, UnsupportedVersion, err.(*Error).Kind())
}

func TestParseBadHeaderLength(t *testing.T) {
	// Declares a length of 4 (too short to hold even one presence word
	// past version/pad/length) while the buffer itself is long enough
	// that the naive "buffer shorter than declared length" check alone
	// would not catch it.
	data := []byte{0, 0, 4, 0, 0, 0, 0, 0}
	_, _, err := Parse(data)
	require.Error(t, err)
	assert.Equal(t, InvalidLength, err.(*Error).Kind())
}

func TestParseBadActualLength(t *testing.T) {
	// Declares a length longer than the buffer actually supplied.
	data := []byte{0, 0, 100, 0, 0, 0, 0, 0}
	_, _, err := Parse(data)
	require.Error(t, err)
	assert.Equal(t, InvalidLength, err.(*Error).Kind())
}

func TestParseBadVendor(t *testing.T) {
	// A vendor namespace descriptor with no registered namespace, whose
	// declared skip length overruns the declared capture length.
	oui := Oui{0xAA, 0xBB, 0xCC}
	var b []byte
	b = append(b, 0, 0)
	b = append(b, le16(0)...)
	b = append(b, le32(0x40000000)...) // bit30 only, no continuation
	b = append(b, oui[:]...)
	b = append(b, 1)
	b = append(b, le16(200)...) // skip length far exceeds the capture

	total := uint16(len(b))
	copy(b[2:4], le16(total))

	_, _, err := Parse(b)
	require.Error(t, err)
	assert.Equal(t, IncompleteError, err.(*Error).Kind())
}

func TestParseDefaultNamespaceFieldsPopulateCapture(t *testing.T) {
	var b []byte
	b = append(b, 0, 0)
	b = append(b, le16(0)...)
	b = append(b, le32(0x00000002)...) // bit1: Flags
	b = append(b, 0x10)                // Flags byte: Fcs
	total := uint16(len(b))
	copy(b[2:4], le16(total))

	capture, remainder, err := Parse(b)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	require.NotNil(t, capture.Flags)
	assert.True(t, capture.Flags.Fcs)
}

func TestParseStopsOnUnknownDefaultBitAndReturnsPartial(t *testing.T) {
	var b []byte
	b = append(b, 0, 0)
	b = append(b, le16(0)...)
	b = append(b, le32(0x00800002)...) // bit1 (Flags) and bit23 (unknown)
	b = append(b, 0x10)                // Flags byte
	total := uint16(len(b))
	copy(b[2:4], le16(total))

	capture, _, err := Parse(b)
	require.NoError(t, err)
	require.NotNil(t, capture.Flags)
	assert.True(t, capture.Flags.Fcs)
}
