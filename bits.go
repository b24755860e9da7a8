package radiotap

import "encoding/binary"

// isBitSet reports whether bit n (0-indexed from the LSB) is set in word.
func isBitSet(word uint32, n uint) bool {
	return word&(1<<n) != 0
}

// isFlagSet8 reports whether any bit in mask is set in v.
func isFlagSet8(v uint8, mask uint8) bool {
	return v&mask != 0
}

// isFlagSet16 reports whether any bit in mask is set in v.
func isFlagSet16(v uint16, mask uint16) bool {
	return v&mask != 0
}

// isFlagSet32 reports whether any bit in mask is set in v.
func isFlagSet32(v uint32, mask uint32) bool {
	return v&mask != 0
}

// bitsAsInt extracts count bits starting at startBit (0-indexed from the
// LSB) from v and returns them right-justified.
func bitsAsInt(v uint8, startBit uint, count uint) uint8 {
	mask := uint8((1 << count) - 1)
	return (v >> startBit) & mask
}

// alignTo advances pos to the next multiple of n. n must be a power of two.
// Alignment is always relative to the start of the Radiotap header; callers
// must keep cursors zeroed at the header start or carry a base offset.
func alignTo(pos int, n int) int {
	return (pos + n - 1) &^ (n - 1)
}

// cursor is a simple read cursor over a byte slice. Unlike bytes.Reader it
// exposes its position directly, which the alignment discipline in §4.1/4.6
// needs.
type cursor struct {
	b   []byte
	pos int
}

func newCursor(b []byte) *cursor {
	return &cursor{b: b}
}

func (c *cursor) align(n int) {
	c.pos = alignTo(c.pos, n)
}

func (c *cursor) remaining() int {
	return len(c.b) - c.pos
}

func (c *cursor) readU8() (uint8, error) {
	if c.remaining() < 1 {
		return 0, errIO("reading u8")
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) readI8() (int8, error) {
	v, err := c.readU8()
	return int8(v), err
}

func (c *cursor) readU16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, errIO("reading u16")
	}
	v := binary.LittleEndian.Uint16(c.b[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) readU32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, errIO("reading u32")
	}
	v := binary.LittleEndian.Uint32(c.b[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) readU64() (uint64, error) {
	if c.remaining() < 8 {
		return 0, errIO("reading u64")
	}
	v := binary.LittleEndian.Uint64(c.b[c.pos:])
	c.pos += 8
	return v, nil
}

// readBytes reads exactly n bytes and advances the cursor.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, errIO("reading raw bytes")
	}
	b := c.b[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// readU8 reads a little-endian u8 from the start of b.
func readU8(b []byte) (uint8, error) {
	if len(b) < 1 {
		return 0, errInvalidFormat("short u8 field")
	}
	return b[0], nil
}

// readI8 reads a little-endian, two's-complement i8 from the start of b.
func readI8(b []byte) (int8, error) {
	v, err := readU8(b)
	return int8(v), err
}

// readU16LE reads a little-endian u16 from the start of b.
func readU16LE(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, errInvalidFormat("short u16 field")
	}
	return binary.LittleEndian.Uint16(b), nil
}

// readU32LE reads a little-endian u32 from the start of b.
func readU32LE(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, errInvalidFormat("short u32 field")
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readU64LE reads a little-endian u64 from the start of b.
func readU64LE(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, errInvalidFormat("short u64 field")
	}
	return binary.LittleEndian.Uint64(b), nil
}
