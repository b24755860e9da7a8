package radiotap

// TimeUnit is the unit a Timestamp's value is expressed in.
type TimeUnit int

const (
	TimeUnitMicroseconds TimeUnit = iota
	TimeUnitNanoseconds
)

func newTimeUnit(code uint8) (TimeUnit, error) {
	switch code {
	case 0:
		return TimeUnitMicroseconds, nil
	case 3:
		return TimeUnitNanoseconds, nil
	default:
		return 0, errInvalidFormat("reserved Timestamp unit code")
	}
}

// SamplingPosition identifies which point of frame reception the
// Timestamp's value was sampled at.
type SamplingPosition int

const (
	SamplingPositionStartMpdu SamplingPosition = iota
	SamplingPositionPlcpSigAcq
	SamplingPositionEof
	SamplingPositionUnknown
)

func newSamplingPosition(code uint8) SamplingPosition {
	switch code {
	case 0:
		return SamplingPositionStartMpdu
	case 1:
		return SamplingPositionPlcpSigAcq
	case 2:
		return SamplingPositionEof
	default:
		return SamplingPositionUnknown
	}
}

// Timestamp is a hardware timestamp sampled during frame reception,
// relative to an unspecified, device-defined epoch.
type Timestamp struct {
	Value uint64
	// Accuracy is present only if flags bit 0x02 is set.
	Accuracy *uint16
	Unit     TimeUnit
	Position SamplingPosition

	// Ms96 means the timestamp accounts for the time required to
	// traverse the radio hardware's internal ADC/DAC/PHY pipeline.
	Ms96 bool
}

func decodeTimestamp(data []byte) (Timestamp, error) {
	value, err := readU64LE(data)
	if err != nil {
		return Timestamp{}, err
	}
	accuracy, err := readU16LE(data[8:])
	if err != nil {
		return Timestamp{}, err
	}
	unitPosition := data[10]
	flags := data[11]

	unit, err := newTimeUnit(bitsAsInt(unitPosition, 0, 4))
	if err != nil {
		return Timestamp{}, err
	}
	position := newSamplingPosition(bitsAsInt(unitPosition, 4, 4))

	ts := Timestamp{
		Value:    value,
		Unit:     unit,
		Position: position,
		Ms96:     isFlagSet8(flags, 0x01),
	}
	if isFlagSet8(flags, 0x02) {
		ts.Accuracy = &accuracy
	}
	return ts, nil
}
