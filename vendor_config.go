package radiotap

import (
	"encoding/hex"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// VendorFieldConfig describes a single field's bit, name, and wire layout
// within a vendor namespace loaded from a config file.
type VendorFieldConfig struct {
	Bit   uint   `yaml:"bit"`
	Name  string `yaml:"name"`
	Align int    `yaml:"align"`
	Size  int    `yaml:"size"`
}

// VendorNamespaceConfig describes one vendor namespace: the OUI and
// sub-namespace selector it is registered under, and its fields.
type VendorNamespaceConfig struct {
	Oui    string              `yaml:"oui"`
	Sub    uint8               `yaml:"sub"`
	Fields []VendorFieldConfig `yaml:"fields"`
}

// VendorConfig is a set of vendor namespace descriptors loaded from a
// config file, e.g. for vendors whose field layouts are known but not
// worth compiling into a Go Namespace implementation.
type VendorConfig struct {
	Namespaces []VendorNamespaceConfig `yaml:"namespaces"`
}

// LoadVendorConfig reads a VendorConfig from its YAML representation.
func LoadVendorConfig(r io.Reader) (*VendorConfig, error) {
	var cfg VendorConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, wrapError(InvalidFormat, err, "decoding vendor config YAML")
	}
	return &cfg, nil
}

// configNamespace is a Namespace backed by a VendorNamespaceConfig. It
// knows each field's bit, alignment and size, but not its semantics --
// Decode always returns the field's raw bytes.
type configNamespace struct {
	byBit map[uint]VendorFieldConfig
}

func newConfigNamespace(ns VendorNamespaceConfig) configNamespace {
	byBit := make(map[uint]VendorFieldConfig, len(ns.Fields))
	for _, f := range ns.Fields {
		byBit[f.Bit] = f
	}
	return configNamespace{byBit: byBit}
}

func (c configNamespace) KindFromBit(bit uint) (FieldKind, error) {
	if _, ok := c.byBit[bit]; !ok {
		return 0, errUnsupportedField(fmt.Sprintf("no configured field at bit %d", bit))
	}
	// Vendor config namespaces have no closed FieldKind enumeration of
	// their own; the bit index doubles as the kind so Align/Size/Decode
	// can look the field config back up.
	return FieldKind(bit), nil
}

func (c configNamespace) Align(kind FieldKind) int {
	if f, ok := c.byBit[uint(kind)]; ok {
		return f.Align
	}
	return 1
}

func (c configNamespace) Size(kind FieldKind) int {
	if f, ok := c.byBit[uint(kind)]; ok {
		return f.Size
	}
	return 0
}

func (c configNamespace) Decode(_ FieldKind, data []byte) (interface{}, error) {
	raw := make([]byte, len(data))
	copy(raw, data)
	return raw, nil
}

// Apply registers every namespace in c against b.
func (c *VendorConfig) Apply(b *Builder) error {
	for _, nsConfig := range c.Namespaces {
		ouiBytes, err := hex.DecodeString(nsConfig.Oui)
		if err != nil {
			return wrapError(InvalidFormat, err, fmt.Sprintf("parsing OUI %q", nsConfig.Oui))
		}
		oui, err := toOui(ouiBytes)
		if err != nil {
			return err
		}
		b.RegisterVendor(oui, nsConfig.Sub, newConfigNamespace(nsConfig))
	}
	return nil
}
