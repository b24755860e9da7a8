package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMagicDetectsByteOrder(t *testing.T) {
	var le bytes.Buffer
	binary.Write(&le, binary.LittleEndian, uint32(MagicLE))
	m, order, err := readMagic(&le)
	require.NoError(t, err)
	assert.Equal(t, MagicLE, m)
	assert.Equal(t, binary.LittleEndian, order)

	var be bytes.Buffer
	binary.Write(&be, binary.LittleEndian, uint32(MagicBE))
	m, order, err = readMagic(&be)
	require.NoError(t, err)
	assert.Equal(t, MagicBE, m)
	assert.Equal(t, binary.BigEndian, order)
}

func TestReadMagicRejectsGarbage(t *testing.T) {
	_, _, err := readMagic(bytes.NewReader([]byte{1, 2, 3, 4}))
	require.Error(t, err)
}

func TestReadPcapDispatchesToHandler(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(MagicLE))
	binary.Write(&buf, binary.LittleEndian, GlobalHeader{
		VersionMajor: 2, VersionMinor: 4, Snaplen: 65535, LinkLayer: 127,
	})
	packet := []byte{0, 0, 8, 0, 0, 0, 0, 0} // minimal valid Radiotap header, no fields
	binary.Write(&buf, binary.LittleEndian, PacketHeader{Len: uint32(len(packet)), OrigLen: uint32(len(packet))})
	buf.Write(packet)

	var seen [][]byte
	handlers[127] = handlerFunc(func(b []byte) error {
		cp := append([]byte(nil), b...)
		seen = append(seen, cp)
		return nil
	})

	require.NoError(t, readPcap(&buf))
	require.Len(t, seen, 1)
	assert.Equal(t, packet, seen[0])
}

type handlerFunc func([]byte) error

func (f handlerFunc) Handle(b []byte) error { return f(b) }
