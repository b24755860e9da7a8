package radiotap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// buildFlagsOnlyCapture builds a minimal valid capture carrying only a
// Flags field, whose byte is the single draw parameter.
func buildFlagsOnlyCapture(flagsByte byte) []byte {
	var b []byte
	b = append(b, 0, 0)
	b = append(b, le16(0)...)
	b = append(b, le32(0x00000002)...) // bit1: Flags
	b = append(b, flagsByte)
	total := uint16(len(b))
	copy(b[2:4], le16(total))
	return b
}

// Parsing the same bytes twice must produce the same result: the driver
// has no hidden mutable state that would make two parses of identical
// input disagree.
func TestParseIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		flagsByte := byte(rapid.IntRange(0, 255).Draw(t, "flagsByte"))
		data := buildFlagsOnlyCapture(flagsByte)

		c1, _, err1 := Parse(data)
		c2, _, err2 := Parse(data)
		require.NoError(t, err1)
		require.NoError(t, err2)
		if diff := cmp.Diff(c1, c2); diff != "" {
			t.Fatalf("repeated parse of identical input diverged (-first +second):\n%s", diff)
		}
	})
}

// Aligning any position to a default-namespace field kind's declared
// alignment must yield a position that satisfies that alignment and is not
// before the original position.
func TestFieldOffsetsRespectAlignmentLaw(t *testing.T) {
	ns := defaultNamespace{}
	rapid.Check(t, func(t *rapid.T) {
		pos := rapid.IntRange(0, 4096).Draw(t, "pos")
		kind := FieldKind(rapid.IntRange(0, 22).Draw(t, "kind"))
		aligned := alignTo(pos, ns.Align(kind))
		require.Zero(t, aligned%ns.Align(kind))
		require.GreaterOrEqual(t, aligned, pos)
	})
}
