package radiotap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVendorYAML = `
namespaces:
  - oui: aabbcc
    sub: 1
    fields:
      - bit: 0
        name: widget-temp
        align: 1
        size: 1
      - bit: 1
        name: widget-voltage
        align: 2
        size: 2
`

func TestLoadVendorConfig(t *testing.T) {
	cfg, err := LoadVendorConfig(strings.NewReader(sampleVendorYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Namespaces, 1)
	assert.Equal(t, "aabbcc", cfg.Namespaces[0].Oui)
	assert.Len(t, cfg.Namespaces[0].Fields, 2)
}

func TestVendorConfigApplyRegisters(t *testing.T) {
	cfg, err := LoadVendorConfig(strings.NewReader(sampleVendorYAML))
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, cfg.Apply(b))

	ns, ok := b.registry.lookup(Oui{0xAA, 0xBB, 0xCC}, 1)
	require.True(t, ok)
	assert.Equal(t, 2, ns.Size(FieldKind(1)))
	assert.Equal(t, 2, ns.Align(FieldKind(1)))
}

func TestLoadVendorConfigRejectsUnknownFields(t *testing.T) {
	_, err := LoadVendorConfig(strings.NewReader("namespaces:\n  - oui: aabbcc\n    bogus: true\n"))
	require.Error(t, err)
	assert.Equal(t, InvalidFormat, err.(*Error).Kind())
}
