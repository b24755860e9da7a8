package radiotap

// Parse parses a single Radiotap capture from the start of b using only the
// built-in default namespace -- equivalent to NewBuilder().Parse(b) with no
// vendor namespaces registered. It returns the parsed capture and whatever
// of b lies past the declared Radiotap length (the 802.11 frame itself).
func Parse(b []byte) (*ParsedCapture, []byte, error) {
	return NewBuilder().Parse(b)
}

// ParseHeader parses only the Radiotap header from the start of b, without
// walking the presence bitmap. It returns the header and the remainder of b
// starting at the first field byte.
func ParseHeader(b []byte) (*Header, []byte, error) {
	header, err := parseHeader(b)
	if err != nil {
		return nil, nil, err
	}
	return header, b[header.Size:], nil
}

// DecodeField decodes a single default-namespace field's raw bytes given
// its kind, without involving a Header or presence bitmap. b must be
// exactly as long as the field's declared size; use this for ad-hoc
// decoding of bytes obtained from elsewhere (e.g. a vendor capture that
// reuses a default-namespace field kind's wire format).
func DecodeField(kind FieldKind, b []byte) (interface{}, error) {
	return decodeDefaultField(kind, b)
}
