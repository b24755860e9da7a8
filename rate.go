package radiotap

import "fmt"

// GuardInterval is the OFDM symbol guard interval used by an HT/VHT
// transmission.
type GuardInterval int

const (
	GuardIntervalLong GuardInterval = iota
	GuardIntervalShort
)

func (g GuardInterval) symbolMicros() float64 {
	if g == GuardIntervalShort {
		return 3.6
	}
	return 4.0
}

// mcsParam is the per-MCS-index modulation and coding parameters shared by
// both the HT (802.11n) and VHT (802.11ac) rate formulas: MCS 0..7 use
// identical modulation/coding to build both the legacy HT table and the
// first eight VHT indices; VHT additionally defines index 8 and 9.
type mcsParam struct {
	bitsPerSubcarrier int
	codeRateNum       int
	codeRateDen       int
}

var mcsParams = [10]mcsParam{
	{1, 1, 2}, // MCS0  BPSK   1/2
	{2, 1, 2}, // MCS1  QPSK   1/2
	{2, 3, 4}, // MCS2  QPSK   3/4
	{4, 1, 2}, // MCS3  16-QAM 1/2
	{4, 3, 4}, // MCS4  16-QAM 3/4
	{6, 2, 3}, // MCS5  64-QAM 2/3
	{6, 3, 4}, // MCS6  64-QAM 3/4
	{6, 5, 6}, // MCS7  64-QAM 5/6
	{8, 3, 4}, // MCS8  256-QAM 3/4 (VHT only)
	{8, 5, 6}, // MCS9  256-QAM 5/6 (VHT only)
}

// dataSubcarriers is the number of OFDM data subcarriers (Nsd) for a given
// channel bandwidth in MHz, shared by both HT and VHT.
func dataSubcarriers(bw int) (int, bool) {
	switch bw {
	case 20:
		return 52, true
	case 40:
		return 108, true
	case 80:
		return 234, true
	case 160:
		return 468, true
	default:
		return 0, false
	}
}

// mbps computes the data rate in Mbps for the given per-stream MCS
// parameters, bandwidth, guard interval, and spatial stream count, or
// reports that the combination has no integral number of data bits per
// symbol (a reserved combination, e.g. VHT MCS9 at 20 MHz with Nss not a
// multiple of 3).
func mbps(p mcsParam, bw int, gi GuardInterval, nss int) (float32, bool) {
	nsd, ok := dataSubcarriers(bw)
	if !ok {
		return 0, false
	}
	numerator := nsd * p.bitsPerSubcarrier * p.codeRateNum * nss
	if numerator%p.codeRateDen != 0 {
		return 0, false
	}
	bitsPerSymbol := numerator / p.codeRateDen
	rate := float64(bitsPerSymbol) / gi.symbolMicros()
	return float32(rate), true
}

// htRate returns the 802.11n data rate in Mbps for MCS index (0..31),
// channel bandwidth (20 or 40 MHz), and guard interval. The spatial stream
// count and per-stream modulation are both implied by index: streams =
// index/8 + 1, and index%8 selects the modulation/coding from mcsParams.
func htRate(index uint8, bw int, gi GuardInterval) (float32, error) {
	if index > 31 {
		return 0, errUnsupportedField(fmt.Sprintf("HT MCS index %d out of range", index))
	}
	if bw != 20 && bw != 40 {
		return 0, errUnsupportedField(fmt.Sprintf("HT bandwidth %d unsupported", bw))
	}
	nss := int(index)/8 + 1
	p := mcsParams[int(index)%8]
	rate, ok := mbps(p, bw, gi, nss)
	if !ok {
		return 0, errUnsupportedField("HT MCS/bandwidth/Nss combination has no integral rate")
	}
	return rate, nil
}

// vhtRate returns the 802.11ac data rate in Mbps for VHT MCS index
// (0..9), channel bandwidth (20, 40, 80 or 160 MHz), guard interval, and
// spatial stream count (1..8).
func vhtRate(index uint8, bw int, gi GuardInterval, nss int) (float32, error) {
	if index > 9 {
		return 0, errUnsupportedField(fmt.Sprintf("VHT MCS index %d out of range", index))
	}
	if bw != 20 && bw != 40 && bw != 80 && bw != 160 {
		return 0, errUnsupportedField(fmt.Sprintf("VHT bandwidth %d unsupported", bw))
	}
	if nss < 1 || nss > 8 {
		return 0, errUnsupportedField(fmt.Sprintf("VHT Nss %d out of range", nss))
	}
	p := mcsParams[index]
	rate, ok := mbps(p, bw, gi, nss)
	if !ok {
		return 0, errUnsupportedField("VHT MCS/bandwidth/Nss combination has no integral rate")
	}
	return rate, nil
}
