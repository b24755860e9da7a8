package radiotap

// Channel is the Tx/Rx frequency in MHz, plus the channel's modulation and
// band flags.
type Channel struct {
	Freq uint16

	// Turbo means the channel uses Turbo mode (either 5 or 10 MHz
	// doubled).
	Turbo bool
	// Cck means the channel is a CCK channel.
	Cck bool
	// Ofdm means the channel is an OFDM channel.
	Ofdm bool
	// Ghz2 means the channel is in the 2 GHz spectrum.
	Ghz2 bool
	// Ghz5 means the channel is in the 5 GHz spectrum.
	Ghz5 bool
	// Passive means the channel is passive-scan only.
	Passive bool
	// DynamicCckOfdm means the channel is CCK with a dynamic 2GHz-OFDM overlap.
	DynamicCckOfdm bool
	// Gfsk means the channel is GFSK (FHSS PHY).
	Gfsk bool
}

func decodeChannel(data []byte) (Channel, error) {
	freq, err := readU16LE(data)
	if err != nil {
		return Channel{}, err
	}
	flags, err := readU16LE(data[2:])
	if err != nil {
		return Channel{}, err
	}
	return Channel{
		Freq:           freq,
		Turbo:          isFlagSet16(flags, 0x0010),
		Cck:            isFlagSet16(flags, 0x0020),
		Ofdm:           isFlagSet16(flags, 0x0040),
		Ghz2:           isFlagSet16(flags, 0x0080),
		Ghz5:           isFlagSet16(flags, 0x0100),
		Passive:        isFlagSet16(flags, 0x0200),
		DynamicCckOfdm: isFlagSet16(flags, 0x0400),
		Gfsk:           isFlagSet16(flags, 0x0800),
	}, nil
}

// Fhss is the FHSS hop set and pattern, for the 802.11 FHSS PHY.
type Fhss struct {
	HopSet     uint8
	HopPattern uint8
}

func decodeFhss(data []byte) (Fhss, error) {
	return Fhss{HopSet: data[0], HopPattern: data[1]}, nil
}

// XChannel is the extended channel descriptor: the same frequency and band
// information as Channel, plus the channel number and maximum transmit
// power.
type XChannel struct {
	Freq     uint16
	Channel  uint8
	MaxPower uint8

	Turbo   bool
	Cck     bool
	Ofdm    bool
	Ghz2    bool
	Ghz5    bool
	Passive bool
	Dynamic bool
	Gfsk    bool
	Gsm     bool
	StaticTurbo bool
	Half    bool
	Quarter bool
	Ht20    bool
	Ht40U   bool
	Ht40D   bool
}

func decodeXChannel(data []byte) (XChannel, error) {
	flags, err := readU32LE(data)
	if err != nil {
		return XChannel{}, err
	}
	freq, err := readU16LE(data[4:])
	if err != nil {
		return XChannel{}, err
	}
	return XChannel{
		Freq:        freq,
		Channel:     data[6],
		MaxPower:    data[7],
		Turbo:       isFlagSet32(flags, 0x00000010),
		Cck:         isFlagSet32(flags, 0x00000020),
		Ofdm:        isFlagSet32(flags, 0x00000040),
		Ghz2:        isFlagSet32(flags, 0x00000080),
		Ghz5:        isFlagSet32(flags, 0x00000100),
		Passive:     isFlagSet32(flags, 0x00000200),
		Dynamic:     isFlagSet32(flags, 0x00000400),
		Gfsk:        isFlagSet32(flags, 0x00000800),
		Gsm:         isFlagSet32(flags, 0x00001000),
		StaticTurbo: isFlagSet32(flags, 0x00002000),
		Half:        isFlagSet32(flags, 0x00004000),
		Quarter:     isFlagSet32(flags, 0x00008000),
		Ht20:        isFlagSet32(flags, 0x00010000),
		Ht40U:       isFlagSet32(flags, 0x00020000),
		Ht40D:       isFlagSet32(flags, 0x00040000),
	}, nil
}
