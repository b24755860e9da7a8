package radiotap

// VendorField is a decoded (or, for an unregistered vendor namespace,
// undecoded) field found in a vendor namespace.
type VendorField struct {
	Oui Oui
	Sub uint8
	Bit uint

	// Data is the field's raw bytes as they appeared on the wire.
	Data []byte

	// Value is the decoded value, or nil if no Namespace was registered
	// for (Oui, Sub) and the bytes were only skipped.
	Value interface{}
}

// ParsedCapture is the fully decoded Radiotap capture: the header, every
// default-namespace field that was present (nil otherwise), and every
// vendor-namespace field encountered, in presence order.
type ParsedCapture struct {
	Header *Header

	Tsft            *Tsft
	Flags           *Flags
	Rate            *Rate
	Channel         *Channel
	Fhss            *Fhss
	AntennaSignal   *AntennaSignal
	AntennaNoise    *AntennaNoise
	LockQuality     *LockQuality
	TxAttenuation   *TxAttenuation
	TxAttenuationDb *TxAttenuationDb
	TxPower         *TxPower
	Antenna         *Antenna
	AntennaSignalDb *AntennaSignalDb
	AntennaNoiseDb  *AntennaNoiseDb
	RxFlags         *RxFlags
	TxFlags         *TxFlags
	RtsRetries      *RtsRetries
	DataRetries     *DataRetries
	XChannel        *XChannel
	Mcs             *Mcs
	AmpduStatus     *AmpduStatus
	Vht             *Vht
	Timestamp       *Timestamp

	Vendors []VendorField
}

func assignDefaultField(capture *ParsedCapture, kind FieldKind, value interface{}) {
	switch kind {
	case KindTsft:
		v := value.(Tsft)
		capture.Tsft = &v
	case KindFlags:
		v := value.(Flags)
		capture.Flags = &v
	case KindRate:
		v := value.(Rate)
		capture.Rate = &v
	case KindChannel:
		v := value.(Channel)
		capture.Channel = &v
	case KindFhss:
		v := value.(Fhss)
		capture.Fhss = &v
	case KindAntennaSignal:
		v := value.(AntennaSignal)
		capture.AntennaSignal = &v
	case KindAntennaNoise:
		v := value.(AntennaNoise)
		capture.AntennaNoise = &v
	case KindLockQuality:
		v := value.(LockQuality)
		capture.LockQuality = &v
	case KindTxAttenuation:
		v := value.(TxAttenuation)
		capture.TxAttenuation = &v
	case KindTxAttenuationDb:
		v := value.(TxAttenuationDb)
		capture.TxAttenuationDb = &v
	case KindTxPower:
		v := value.(TxPower)
		capture.TxPower = &v
	case KindAntenna:
		v := value.(Antenna)
		capture.Antenna = &v
	case KindAntennaSignalDb:
		v := value.(AntennaSignalDb)
		capture.AntennaSignalDb = &v
	case KindAntennaNoiseDb:
		v := value.(AntennaNoiseDb)
		capture.AntennaNoiseDb = &v
	case KindRxFlags:
		v := value.(RxFlags)
		capture.RxFlags = &v
	case KindTxFlags:
		v := value.(TxFlags)
		capture.TxFlags = &v
	case KindRtsRetries:
		v := value.(RtsRetries)
		capture.RtsRetries = &v
	case KindDataRetries:
		v := value.(DataRetries)
		capture.DataRetries = &v
	case KindXChannel:
		v := value.(XChannel)
		capture.XChannel = &v
	case KindMcs:
		v := value.(Mcs)
		capture.Mcs = &v
	case KindAmpduStatus:
		v := value.(AmpduStatus)
		capture.AmpduStatus = &v
	case KindVht:
		v := value.(Vht)
		capture.Vht = &v
	case KindTimestamp:
		v := value.(Timestamp)
		capture.Timestamp = &v
	}
}

// parse runs the presence-bitmap iteration driver: it walks every presence
// word's bits in ascending order, decoding fields against whichever
// namespace is currently active.
//
// Bit 29 resets the active namespace back to the default namespace for
// every bit after it, in this word and every later one -- this is a
// deliberate simplification of the vendor-namespace-nesting behavior the
// format's own reference description leaves ambiguous (see DESIGN.md).
// Bit 30 reads a vendor namespace descriptor (OUI, sub-namespace selector,
// and a skip length) and switches the active namespace to whatever the
// registry has for that (OUI, sub) pair; if nothing is registered, the
// skip length is consumed immediately as one opaque blob and no further
// bit in that run is decoded.
func parse(data []byte, registry *Registry) (*ParsedCapture, []byte, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}

	capture := &ParsedCapture{Header: header}
	cur := newCursor(data)
	cur.pos = header.Size

	var ns Namespace = defaultNamespace{}
	skipping := false
	var vendorOui Oui
	var vendorSub uint8

wordLoop:
	for _, word := range header.Present {
		for bit := uint(0); bit <= 30; bit++ {
			switch bit {
			case 29:
				if isBitSet(word, bit) {
					ns = defaultNamespace{}
					skipping = false
				}
				continue
			case 30:
				if !isBitSet(word, bit) {
					continue
				}
				cur.align(2)
				if cur.pos+6 > header.Length {
					return capture, data[header.Length:], errIncomplete("vendor namespace descriptor extends past declared length")
				}
				descriptor, err := cur.readBytes(6)
				if err != nil {
					return nil, nil, wrapError(IncompleteError, err, "reading vendor namespace descriptor")
				}
				copy(vendorOui[:], descriptor[0:3])
				vendorSub = descriptor[3]
				skipLen, err := readU16LE(descriptor[4:6])
				if err != nil {
					return nil, nil, err
				}
				if vendorNs, ok := registry.lookup(vendorOui, vendorSub); ok {
					ns = vendorNs
					skipping = false
				} else {
					if cur.pos+int(skipLen) > header.Length {
						return capture, data[header.Length:], errIncomplete("vendor namespace skip extends past declared length")
					}
					raw, err := cur.readBytes(int(skipLen))
					if err != nil {
						return nil, nil, wrapError(IncompleteError, err, "skipping unregistered vendor namespace")
					}
					capture.Vendors = append(capture.Vendors, VendorField{
						Oui: vendorOui, Sub: vendorSub, Data: raw, Value: nil,
					})
					skipping = true
				}
				continue
			}

			if !isBitSet(word, bit) || skipping {
				continue
			}

			kind, err := ns.KindFromBit(bit)
			if err != nil {
				// No declared size exists for an unknown bit in a
				// known namespace, so there is nothing to align
				// past; stop decoding and hand back what has been
				// accumulated so far.
				break wordLoop
			}

			align := ns.Align(kind)
			cur.align(align)
			size := ns.Size(kind)
			if cur.pos+size > header.Length {
				return capture, data[header.Length:], errIncomplete("field extends past declared header length")
			}
			fieldBytes, err := cur.readBytes(size)
			if err != nil {
				return nil, nil, wrapError(IncompleteError, err, "reading field bytes")
			}
			value, err := ns.Decode(kind, fieldBytes)
			if err != nil {
				return nil, nil, err
			}

			if _, isDefault := ns.(defaultNamespace); isDefault {
				assignDefaultField(capture, kind, value)
			} else {
				capture.Vendors = append(capture.Vendors, VendorField{
					Oui: vendorOui, Sub: vendorSub, Bit: bit, Data: fieldBytes, Value: value,
				})
			}
		}
	}

	return capture, data[header.Length:], nil
}
