package radiotap

// Tsft is the value of the MAC's 64-bit Time Synchronization Function
// counter, in microseconds, when the first bit of the MPDU arrived at the
// MAC.
type Tsft uint64

func decodeTsft(data []byte) (Tsft, error) {
	v, err := readU64LE(data)
	return Tsft(v), err
}

// Flags holds the per-packet flags bitmask.
type Flags struct {
	// Cfp means sent/received during a CFP.
	Cfp bool
	// ShortPreamble means sent/received with short 802.11b preamble.
	ShortPreamble bool
	// Wep means the frame's payload is WEP encrypted.
	Wep bool
	// Fragmentation means this frame is, or is part of, an
	// A-MSDU-unrelated fragmented frame.
	Fragmentation bool
	// Fcs means the frame includes an FCS at the end.
	Fcs bool
	// DataPad means frame has padding between 802.11 header and payload
	// in addition to the FCS padding.
	DataPad bool
	// BadFcs means the frame failed its FCS check.
	BadFcs bool
	// ShortGi means the frame used short guard interval (HT).
	ShortGi bool
}

func decodeFlags(data []byte) (Flags, error) {
	v, err := readU8(data)
	if err != nil {
		return Flags{}, err
	}
	return Flags{
		Cfp:           isFlagSet8(v, 0x01),
		ShortPreamble: isFlagSet8(v, 0x02),
		Wep:           isFlagSet8(v, 0x04),
		Fragmentation: isFlagSet8(v, 0x08),
		Fcs:           isFlagSet8(v, 0x10),
		DataPad:       isFlagSet8(v, 0x20),
		BadFcs:        isFlagSet8(v, 0x40),
		ShortGi:       isFlagSet8(v, 0x80),
	}, nil
}

// Rate is a legacy (non-HT/VHT) data rate in Mbps.
type Rate float32

func decodeRate(data []byte) (Rate, error) {
	v, err := readU8(data)
	if err != nil {
		return 0, err
	}
	// Wire units are 500 Kbps.
	return Rate(float32(v) * 0.5), nil
}

// AntennaSignal is received signal strength in dBm.
type AntennaSignal int8

func decodeAntennaSignal(data []byte) (AntennaSignal, error) {
	v, err := readI8(data)
	return AntennaSignal(v), err
}

// AntennaNoise is the RF noise power at the antenna, in dBm.
type AntennaNoise int8

func decodeAntennaNoise(data []byte) (AntennaNoise, error) {
	v, err := readI8(data)
	return AntennaNoise(v), err
}

// AntennaSignalDb is received signal strength, in dB relative to a fixed,
// arbitrary reference (not dBm).
type AntennaSignalDb uint8

func decodeAntennaSignalDb(data []byte) (AntennaSignalDb, error) {
	v, err := readU8(data)
	return AntennaSignalDb(v), err
}

// AntennaNoiseDb is RF noise power, in dB relative to the same reference as
// AntennaSignalDb.
type AntennaNoiseDb uint8

func decodeAntennaNoiseDb(data []byte) (AntennaNoiseDb, error) {
	v, err := readU8(data)
	return AntennaNoiseDb(v), err
}

// LockQuality is the hardware's received signal/carrier lock quality,
// unitless and vendor-dependent in its scale.
type LockQuality uint16

func decodeLockQuality(data []byte) (LockQuality, error) {
	v, err := readU16LE(data)
	return LockQuality(v), err
}

// TxAttenuation is transmit power expressed as unitless distance from
// maximum power, with an unspecified, possibly non-linear, scale.
type TxAttenuation uint16

func decodeTxAttenuation(data []byte) (TxAttenuation, error) {
	v, err := readU16LE(data)
	return TxAttenuation(v), err
}

// TxAttenuationDb is transmit power expressed as dB distance from maximum
// power, with an unspecified, possibly non-linear, scale.
type TxAttenuationDb uint16

func decodeTxAttenuationDb(data []byte) (TxAttenuationDb, error) {
	v, err := readU16LE(data)
	return TxAttenuationDb(v), err
}

// TxPower is transmit power in dBm.
type TxPower int8

func decodeTxPower(data []byte) (TxPower, error) {
	v, err := readI8(data)
	return TxPower(v), err
}

// Antenna is the 0-indexed antenna number the frame was transmitted or
// received on.
type Antenna uint8

func decodeAntenna(data []byte) (Antenna, error) {
	v, err := readU8(data)
	return Antenna(v), err
}

// RxFlags holds receive-side flags.
type RxFlags struct {
	// BadPlcp means the frame failed its PLCP CRC check.
	BadPlcp bool
}

func decodeRxFlags(data []byte) (RxFlags, error) {
	v, err := readU16LE(data)
	if err != nil {
		return RxFlags{}, err
	}
	return RxFlags{BadPlcp: isFlagSet16(v, 0x0002)}, nil
}

// TxFlags holds transmit-side flags.
type TxFlags struct {
	// Fail means the transmission failed because excessive retries
	// occurred.
	Fail bool
	// Cts means the transmission used CTS-to-self protection.
	Cts bool
	// Rts means the transmission used RTS/CTS handshake protection.
	Rts bool
	// NoAck means the driver/hardware does not expect an ACK for this
	// frame.
	NoAck bool
	// NoSeq means the driver/hardware does not override the sequence
	// number this frame carries.
	NoSeq bool
}

func decodeTxFlags(data []byte) (TxFlags, error) {
	v, err := readU16LE(data)
	if err != nil {
		return TxFlags{}, err
	}
	return TxFlags{
		Fail:  isFlagSet16(v, 0x0001),
		Cts:   isFlagSet16(v, 0x0002),
		Rts:   isFlagSet16(v, 0x0004),
		NoAck: isFlagSet16(v, 0x0008),
		NoSeq: isFlagSet16(v, 0x0010),
	}, nil
}

// RtsRetries is the number of RTS retries a transmitted frame used.
type RtsRetries uint8

func decodeRtsRetries(data []byte) (RtsRetries, error) {
	v, err := readU8(data)
	return RtsRetries(v), err
}

// DataRetries is the number of data retries a transmitted frame used.
type DataRetries uint8

func decodeDataRetries(data []byte) (DataRetries, error) {
	v, err := readU8(data)
	return DataRetries(v), err
}
