package radiotap

import "fmt"

// FieldKind identifies which Radiotap field a presence bit refers to within
// a particular namespace. It is a closed, namespace-scoped tag -- it is
// never constructed by casting an arbitrary bit index, only by a
// Namespace's KindFromBit.
type FieldKind int

// The field kinds defined by the default Radiotap namespace, in bit order
// (bit 0 .. bit 22).
const (
	KindTsft FieldKind = iota
	KindFlags
	KindRate
	KindChannel
	KindFhss
	KindAntennaSignal
	KindAntennaNoise
	KindLockQuality
	KindTxAttenuation
	KindTxAttenuationDb
	KindTxPower
	KindAntenna
	KindAntennaSignalDb
	KindAntennaNoiseDb
	KindRxFlags
	KindTxFlags
	KindRtsRetries
	KindDataRetries
	KindXChannel
	KindMcs
	KindAmpduStatus
	KindVht
	KindTimestamp
)

func (k FieldKind) String() string {
	switch k {
	case KindTsft:
		return "Tsft"
	case KindFlags:
		return "Flags"
	case KindRate:
		return "Rate"
	case KindChannel:
		return "Channel"
	case KindFhss:
		return "Fhss"
	case KindAntennaSignal:
		return "AntennaSignal"
	case KindAntennaNoise:
		return "AntennaNoise"
	case KindLockQuality:
		return "LockQuality"
	case KindTxAttenuation:
		return "TxAttenuation"
	case KindTxAttenuationDb:
		return "TxAttenuationDb"
	case KindTxPower:
		return "TxPower"
	case KindAntenna:
		return "Antenna"
	case KindAntennaSignalDb:
		return "AntennaSignalDb"
	case KindAntennaNoiseDb:
		return "AntennaNoiseDb"
	case KindRxFlags:
		return "RxFlags"
	case KindTxFlags:
		return "TxFlags"
	case KindRtsRetries:
		return "RtsRetries"
	case KindDataRetries:
		return "DataRetries"
	case KindXChannel:
		return "XChannel"
	case KindMcs:
		return "Mcs"
	case KindAmpduStatus:
		return "AmpduStatus"
	case KindVht:
		return "Vht"
	case KindTimestamp:
		return "Timestamp"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Oui is the Organizationally Unique Identifier of a vendor: a three-octet
// prefix assigned by the IEEE.
type Oui [3]byte

// Namespace describes the fields available within a Radiotap namespace --
// either the built-in default namespace, or a vendor namespace identified
// by an Oui and a sub-namespace selector. The default namespace is one
// instance of this interface; every vendor registration is another.
type Namespace interface {
	// KindFromBit resolves a presence-bit index (0..28) to a field kind.
	// It returns an UnsupportedField error if this namespace has no field
	// at that bit.
	KindFromBit(bit uint) (FieldKind, error)

	// Align returns the byte alignment (a power of two, <= 8) the cursor
	// must satisfy before this kind's bytes are read.
	Align(kind FieldKind) int

	// Size returns the number of bytes this kind's decoder consumes.
	Size(kind FieldKind) int

	// Decode parses data (exactly Size(kind) bytes) into a typed value.
	Decode(kind FieldKind, data []byte) (interface{}, error)
}

// defaultNamespace is the built-in Radiotap namespace: 23 defined bits,
// 0..22. Grounded on original_source/src/ns.rs's RadiotapKind align/size
// tables.
type defaultNamespace struct{}

func (defaultNamespace) KindFromBit(bit uint) (FieldKind, error) {
	if bit > 22 {
		return 0, errUnsupportedField(fmt.Sprintf("no default-namespace field at bit %d", bit))
	}
	return FieldKind(bit), nil
}

func (defaultNamespace) Align(kind FieldKind) int {
	switch kind {
	case KindTsft, KindTimestamp:
		return 8
	case KindXChannel, KindAmpduStatus:
		return 4
	case KindChannel, KindFhss, KindLockQuality, KindTxAttenuation,
		KindTxAttenuationDb, KindRxFlags, KindTxFlags, KindVht:
		return 2
	default:
		return 1
	}
}

func (defaultNamespace) Size(kind FieldKind) int {
	switch kind {
	case KindVht, KindTimestamp:
		return 12
	case KindTsft, KindAmpduStatus, KindXChannel:
		return 8
	case KindChannel:
		return 4
	case KindMcs:
		return 3
	case KindFhss, KindLockQuality, KindTxAttenuation, KindTxAttenuationDb,
		KindRxFlags, KindTxFlags:
		return 2
	default:
		return 1
	}
}

func (defaultNamespace) Decode(kind FieldKind, data []byte) (interface{}, error) {
	return decodeDefaultField(kind, data)
}

// namespaceKey identifies a vendor namespace in a Registry by OUI and
// sub-namespace selector. The default namespace has no key; it is not
// stored in the Registry.
type namespaceKey struct {
	oui Oui
	sub uint8
}

// Registry maps namespace keys to their descriptors. It is built once via
// Builder.RegisterVendor and treated as immutable for the duration of any
// parse that uses it -- concurrent parses against the same Registry are
// safe as long as nothing mutates it concurrently with them.
type Registry struct {
	vendors map[namespaceKey]Namespace
}

func newRegistry() *Registry {
	return &Registry{vendors: make(map[namespaceKey]Namespace)}
}

func (r *Registry) register(oui Oui, sub uint8, ns Namespace) {
	r.vendors[namespaceKey{oui: oui, sub: sub}] = ns
}

func (r *Registry) lookup(oui Oui, sub uint8) (Namespace, bool) {
	ns, ok := r.vendors[namespaceKey{oui: oui, sub: sub}]
	return ns, ok
}

// Builder accumulates vendor namespace registrations before a parse. The
// zero value is not usable; construct one with NewBuilder.
type Builder struct {
	registry *Registry
}

// NewBuilder returns a Builder with no vendor namespaces registered.
func NewBuilder() *Builder {
	return &Builder{registry: newRegistry()}
}

// RegisterVendor registers a vendor namespace descriptor under the given
// OUI and sub-namespace selector. Registering a second descriptor under the
// same (oui, sub) pair replaces the first.
func (b *Builder) RegisterVendor(oui Oui, sub uint8, ns Namespace) *Builder {
	b.registry.register(oui, sub, ns)
	return b
}

// Parse parses data using this Builder's registered vendor namespaces in
// addition to the built-in default namespace.
func (b *Builder) Parse(data []byte) (*ParsedCapture, []byte, error) {
	return parse(data, b.registry)
}
