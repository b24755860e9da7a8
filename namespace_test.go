package radiotap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNamespaceKindFromBit(t *testing.T) {
	ns := defaultNamespace{}
	kind, err := ns.KindFromBit(3)
	require.NoError(t, err)
	assert.Equal(t, KindChannel, kind)
}

func TestDefaultNamespaceRejectsUnknownBit(t *testing.T) {
	ns := defaultNamespace{}
	_, err := ns.KindFromBit(23)
	require.Error(t, err)
	assert.Equal(t, UnsupportedField, err.(*Error).Kind())
}

func TestDefaultNamespaceAlignAndSizeTables(t *testing.T) {
	ns := defaultNamespace{}
	assert.Equal(t, 8, ns.Align(KindTsft))
	assert.Equal(t, 8, ns.Size(KindTsft))
	assert.Equal(t, 1, ns.Align(KindFlags))
	assert.Equal(t, 4, ns.Align(KindXChannel))
	assert.Equal(t, 8, ns.Size(KindXChannel))
	assert.Equal(t, 12, ns.Size(KindVht))
	assert.Equal(t, 2, ns.Align(KindVht))
	assert.Equal(t, 3, ns.Size(KindMcs))
	assert.Equal(t, 1, ns.Align(KindMcs))
}

func TestBuilderRegisterVendorReplacesOnDuplicateKey(t *testing.T) {
	b := NewBuilder()
	oui := Oui{0x00, 0x11, 0x22}
	first := newConfigNamespace(VendorNamespaceConfig{Oui: "001122", Sub: 0})
	second := newConfigNamespace(VendorNamespaceConfig{
		Oui: "001122", Sub: 0,
		Fields: []VendorFieldConfig{{Bit: 0, Name: "x", Align: 1, Size: 1}},
	})
	b.RegisterVendor(oui, 0, first)
	b.RegisterVendor(oui, 0, second)

	ns, ok := b.registry.lookup(oui, 0)
	require.True(t, ok)
	_, err := ns.KindFromBit(0)
	assert.NoError(t, err, "second registration should have won")
}
