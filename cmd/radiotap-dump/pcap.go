package main

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Magic is a classic pcap file's magic number, which also reveals the
// byte order the rest of the file was written in.
type Magic uint32

const (
	MagicLE Magic = 0xa1b2c3d4
	MagicBE Magic = 0xd4c3b2a1
)

func (m Magic) byteOrder() (binary.ByteOrder, error) {
	switch m {
	case MagicLE:
		return binary.LittleEndian, nil
	case MagicBE:
		return binary.BigEndian, nil
	default:
		return nil, errors.Errorf("unrecognized pcap magic number 0x%08x", uint32(m))
	}
}

func readMagic(r io.Reader) (Magic, binary.ByteOrder, error) {
	var raw [4]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return 0, nil, errors.Wrap(err, "reading pcap magic number")
	}
	// The magic number disambiguates byte order, so it must itself be
	// read in a fixed order before anything else can be decoded.
	le := Magic(binary.LittleEndian.Uint32(raw[:]))
	if order, err := le.byteOrder(); err == nil {
		return le, order, nil
	}
	be := Magic(binary.BigEndian.Uint32(raw[:]))
	if _, err := be.byteOrder(); err == nil {
		return be, binary.BigEndian, nil
	}
	return 0, nil, errors.Errorf("unrecognized pcap magic number % x", raw)
}

// GlobalHeader is the classic pcap file header that follows the magic
// number.
type GlobalHeader struct {
	VersionMajor uint16
	VersionMinor uint16
	ThisZone     int32
	Sigfigs      uint32
	Snaplen      uint32
	LinkLayer    uint32
}

func readGlobalHeader(r io.Reader, order binary.ByteOrder) (*GlobalHeader, error) {
	var h GlobalHeader
	if err := binary.Read(r, order, &h); err != nil {
		return nil, errors.Wrap(err, "reading pcap global header")
	}
	return &h, nil
}

// PacketHeader precedes each captured packet's bytes.
type PacketHeader struct {
	TimestampSec  uint32
	TimestampUsec uint32
	Len           uint32
	OrigLen       uint32
}

func readPacketHeader(r io.Reader, order binary.ByteOrder) (*PacketHeader, error) {
	var h PacketHeader
	if err := binary.Read(r, order, &h); err != nil {
		return nil, err // io.EOF on clean end of stream, wrapped by caller otherwise
	}
	return &h, nil
}

// Handler processes one packet's bytes for a particular pcap link-layer
// type.
type Handler interface {
	Handle(b []byte) error
}

// handlers maps pcap LINKTYPE values to the Handler that understands them.
// Only 127 (DLT_IEEE802_11_RADIO) is registered; for every other link type
// readPcap returns an error.
var handlers = map[uint32]Handler{
	127: &radiotapHandler{},
}

// readPcap streams packets from r, dispatching each to the Handler
// registered for the global header's link layer type.
func readPcap(r io.Reader) error {
	br := bufio.NewReader(r)

	_, order, err := readMagic(br)
	if err != nil {
		return err
	}
	global, err := readGlobalHeader(br, order)
	if err != nil {
		return err
	}

	handler, ok := handlers[global.LinkLayer]
	if !ok {
		return errors.Errorf("no handler registered for pcap link type %d", global.LinkLayer)
	}

	for {
		ph, err := readPacketHeader(br, order)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading packet header")
		}
		buf := make([]byte, ph.Len)
		if _, err := io.ReadFull(br, buf); err != nil {
			return errors.Wrap(err, "reading packet body")
		}
		if err := handler.Handle(buf); err != nil {
			return errors.Wrap(err, "handling packet")
		}
	}
}
