package radiotap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHtRateKnownValues(t *testing.T) {
	tests := []struct {
		index uint8
		bw    int
		gi    GuardInterval
		want  float32
	}{
		{0, 20, GuardIntervalLong, 6.5},
		{7, 20, GuardIntervalLong, 65},
		{7, 20, GuardIntervalShort, 72.2222214},
		{7, 40, GuardIntervalLong, 135},
		{15, 20, GuardIntervalLong, 130}, // 2 streams, MCS7 params
	}
	for _, tt := range tests {
		got, err := htRate(tt.index, tt.bw, tt.gi)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 0.01, "index=%d bw=%d gi=%v", tt.index, tt.bw, tt.gi)
	}
}

func TestHtRateRejectsOutOfRangeIndex(t *testing.T) {
	_, err := htRate(32, 20, GuardIntervalLong)
	require.Error(t, err)
	assert.Equal(t, UnsupportedField, err.(*Error).Kind())
}

func TestVhtRateKnownValues(t *testing.T) {
	got, err := vhtRate(8, 20, GuardIntervalLong, 1)
	require.NoError(t, err)
	assert.InDelta(t, 78, got, 0.01)
}

// VHT MCS9 at 20 MHz with a single spatial stream has no integral number
// of data bits per OFDM symbol and is a reserved combination.
func TestVhtRateRejectsReservedCombination(t *testing.T) {
	_, err := vhtRate(9, 20, GuardIntervalLong, 1)
	require.Error(t, err)
	assert.Equal(t, UnsupportedField, err.(*Error).Kind())
}

func TestVhtRateAcceptsReservedCombinationAtTripleStreams(t *testing.T) {
	got, err := vhtRate(9, 20, GuardIntervalLong, 3)
	require.NoError(t, err)
	assert.Greater(t, got, float32(0))
}

func TestVhtRateRejectsOutOfRangeNss(t *testing.T) {
	_, err := vhtRate(0, 20, GuardIntervalLong, 0)
	require.Error(t, err)
	assert.Equal(t, UnsupportedField, err.(*Error).Kind())
}
