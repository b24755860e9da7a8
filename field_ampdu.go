package radiotap

// AmpduStatus describes the A-MPDU that this frame was part of.
type AmpduStatus struct {
	ReferenceNumber uint32

	// ReportZerolen means the driver reports 0-length subframes.
	ReportZerolen bool
	// IsZerolen means this subframe is zero-length.
	IsZerolen bool
	// LastKnown means the last subframe of this A-MPDU is known.
	LastKnown bool
	// Last means this is the last subframe of this A-MPDU.
	Last bool
	// DelimiterCrcError means the delimiter CRC failed for this subframe.
	DelimiterCrcError bool
	// DelimiterCrcKnown means the delimiter CRC value is known.
	DelimiterCrcKnown bool

	// DelimiterCrc is present only when DelimiterCrcKnown is set and
	// DelimiterCrcError is clear.
	DelimiterCrc *uint8
}

func decodeAmpduStatus(data []byte) (AmpduStatus, error) {
	ref, err := readU32LE(data)
	if err != nil {
		return AmpduStatus{}, err
	}
	flags, err := readU16LE(data[4:])
	if err != nil {
		return AmpduStatus{}, err
	}
	crc := data[6]

	status := AmpduStatus{
		ReferenceNumber:   ref,
		ReportZerolen:     isFlagSet16(flags, 0x0001),
		IsZerolen:         isFlagSet16(flags, 0x0002),
		LastKnown:         isFlagSet16(flags, 0x0004),
		Last:              isFlagSet16(flags, 0x0008),
		DelimiterCrcError: isFlagSet16(flags, 0x0010),
		DelimiterCrcKnown: isFlagSet16(flags, 0x0020),
	}
	if status.DelimiterCrcKnown && !status.DelimiterCrcError {
		status.DelimiterCrc = &crc
	}
	return status, nil
}
