package radiotap

import "fmt"

// Bandwidth identifies the channel width (and, for a 40 MHz HT channel,
// which 20 MHz half) that a rate or MCS/VHT field refers to.
type Bandwidth struct {
	// MHz is the width in MHz used for rate-table lookups: 20, 40, 80 or
	// 160.
	MHz int

	// subChannel distinguishes the lower/upper half of a 40 MHz HT
	// channel from a full-width channel; it has no effect on datarate.
	subChannel htSubChannel
}

type htSubChannel int

const (
	htSubChannelFull htSubChannel = iota
	htSubChannelLower
	htSubChannelUpper
)

func (b Bandwidth) String() string {
	switch b.subChannel {
	case htSubChannelLower:
		return fmt.Sprintf("%dMHz (lower)", b.MHz)
	case htSubChannelUpper:
		return fmt.Sprintf("%dMHz (upper)", b.MHz)
	default:
		return fmt.Sprintf("%dMHz", b.MHz)
	}
}

// newMcsBandwidth decodes the 2-bit MCS bandwidth code (flags[1:0]):
// 0=20, 1=40, 2=20 (lower half of 40), 3=20 (upper half of 40).
func newMcsBandwidth(code uint8) (Bandwidth, error) {
	switch code {
	case 0:
		return Bandwidth{MHz: 20, subChannel: htSubChannelFull}, nil
	case 1:
		return Bandwidth{MHz: 40, subChannel: htSubChannelFull}, nil
	case 2:
		return Bandwidth{MHz: 20, subChannel: htSubChannelLower}, nil
	case 3:
		return Bandwidth{MHz: 20, subChannel: htSubChannelUpper}, nil
	default:
		return Bandwidth{}, errInvalidFormat(fmt.Sprintf("invalid MCS bandwidth code %d", code))
	}
}

// newVhtBandwidth decodes the 5-bit VHT bandwidth code into a channel
// width. Grounded on the published radiotap.org VHT bandwidth code table:
// 0=20, 1..3=40, 4..10=80, 11..25=160; codes above 25 are reserved.
func newVhtBandwidth(code uint8) (Bandwidth, error) {
	switch {
	case code == 0:
		return Bandwidth{MHz: 20}, nil
	case code >= 1 && code <= 3:
		return Bandwidth{MHz: 40}, nil
	case code >= 4 && code <= 10:
		return Bandwidth{MHz: 80}, nil
	case code >= 11 && code <= 25:
		return Bandwidth{MHz: 160}, nil
	default:
		return Bandwidth{}, errInvalidFormat(fmt.Sprintf("invalid or reserved VHT bandwidth code %d", code))
	}
}

// HtFormat distinguishes Greenfield from Mixed-mode HT preamble framing.
type HtFormat int

const (
	HtFormatMixed HtFormat = iota
	HtFormatGreenfield
)

// Fec is the forward error correction coding used by an HT/VHT
// transmission.
type Fec int

const (
	FecBcc Fec = iota
	FecLdpc
)

// Mcs is the IEEE 802.11n data rate descriptor. Usually only one of Rate,
// Mcs, and Vht is present on a given capture. Each sub-attribute is
// present only if the corresponding bit of the wire "known" mask was set;
// absent sub-attributes leave their pointer fields nil.
type Mcs struct {
	Bandwidth *Bandwidth
	Index     *uint8
	Gi        *GuardInterval
	Format    *HtFormat
	Fec       *Fec
	Stbc      *uint8
	Ness      *uint8
	// Datarate is populated only when both Bandwidth and Gi are known
	// and Index is in range.
	Datarate *float32
}

func decodeMcs(data []byte) (Mcs, error) {
	if len(data) < 3 {
		return Mcs{}, errInvalidFormat("short Mcs field")
	}
	known, flags, index := data[0], data[1], data[2]

	var mcs Mcs

	if isFlagSet8(known, 0x01) {
		bw, err := newMcsBandwidth(flags & 0x03)
		if err != nil {
			return Mcs{}, err
		}
		mcs.Bandwidth = &bw
	}

	if isFlagSet8(known, 0x02) {
		idx := index
		mcs.Index = &idx
	}

	if isFlagSet8(known, 0x04) {
		gi := GuardIntervalLong
		if isFlagSet8(flags, 0x04) {
			gi = GuardIntervalShort
		}
		mcs.Gi = &gi
	}

	if isFlagSet8(known, 0x08) {
		format := HtFormatMixed
		if isFlagSet8(flags, 0x08) {
			format = HtFormatGreenfield
		}
		mcs.Format = &format
	}

	if isFlagSet8(known, 0x10) {
		fec := FecBcc
		if isFlagSet8(flags, 0x10) {
			fec = FecLdpc
		}
		mcs.Fec = &fec
	}

	if isFlagSet8(known, 0x20) {
		stbc := bitsAsInt(flags, 5, 2)
		mcs.Stbc = &stbc
	}

	if isFlagSet8(known, 0x40) {
		// Parenthesized explicitly -- see §9 "suspected source bugs":
		// in the upstream expression (known & 0x80 >> 6 | flags &
		// 0x80 >> 7) >> binds tighter than &, which changes its
		// meaning. In Go, & and >> share one precedence level and
		// associate left to right, so the parentheses here only make
		// the grouping (known bit 7 to bit 1, flags bit 7 to bit 0)
		// explicit.
		ness := ((known & 0x80) >> 6) | ((flags & 0x80) >> 7)
		mcs.Ness = &ness
	}

	if mcs.Bandwidth != nil && mcs.Gi != nil {
		rate, err := htRate(index, mcs.Bandwidth.MHz, *mcs.Gi)
		if err == nil {
			mcs.Datarate = &rate
		}
	}

	return mcs, nil
}
