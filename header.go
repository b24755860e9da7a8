package radiotap

// Header is the Radiotap header shared by every capture: version, the
// declared total capture length, the computed header size (including the
// presence-word chain), and the ordered presence words themselves.
//
// A Header is built once per parse and is immutable thereafter.
type Header struct {
	// Version is the Radiotap version. Only version 0 is supported.
	Version uint8

	// Length is the total Radiotap capture length, including this
	// header, as declared by the capture itself.
	Length int

	// Size is the number of bytes occupied by version, pad, length, and
	// the presence-word chain -- i.e. where the field payload begins.
	Size int

	// Present is the ordered sequence of 32-bit presence words.
	Present []uint32
}

// parseHeader reads a Header from the start of b. It does not look past the
// presence-word chain; field payload parsing is the iteration driver's job.
func parseHeader(b []byte) (*Header, error) {
	c := newCursor(b)

	version, err := c.readU8()
	if err != nil {
		return nil, wrapError(IoError, err, "reading version byte")
	}
	if version != 0 {
		return nil, errUnsupportedVersion("Radiotap version is not 0")
	}

	if _, err := c.readU8(); err != nil { // pad byte, discarded
		return nil, wrapError(IoError, err, "reading pad byte")
	}

	length, err := c.readU16()
	if err != nil {
		return nil, wrapError(IoError, err, "reading length field")
	}
	if len(b) < int(length) {
		return nil, errInvalidLength("input shorter than declared Radiotap length")
	}

	var present []uint32
	for {
		word, err := c.readU32()
		if err != nil {
			return nil, wrapError(IoError, err, "reading presence word")
		}
		present = append(present, word)
		if !isBitSet(word, 31) {
			break
		}
	}

	if c.pos > int(length) {
		return nil, errInvalidLength("declared Radiotap length too short to contain the presence word chain")
	}

	return &Header{
		Version: version,
		Length:  int(length),
		Size:    c.pos,
		Present: present,
	}, nil
}
