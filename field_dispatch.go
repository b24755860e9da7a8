package radiotap

// decodeDefaultField dispatches a default-namespace field kind to its
// decoder. data is exactly defaultNamespace{}.Size(kind) bytes, already
// aligned and sliced by the iteration driver.
func decodeDefaultField(kind FieldKind, data []byte) (interface{}, error) {
	switch kind {
	case KindTsft:
		return decodeTsft(data)
	case KindFlags:
		return decodeFlags(data)
	case KindRate:
		return decodeRate(data)
	case KindChannel:
		return decodeChannel(data)
	case KindFhss:
		return decodeFhss(data)
	case KindAntennaSignal:
		return decodeAntennaSignal(data)
	case KindAntennaNoise:
		return decodeAntennaNoise(data)
	case KindLockQuality:
		return decodeLockQuality(data)
	case KindTxAttenuation:
		return decodeTxAttenuation(data)
	case KindTxAttenuationDb:
		return decodeTxAttenuationDb(data)
	case KindTxPower:
		return decodeTxPower(data)
	case KindAntenna:
		return decodeAntenna(data)
	case KindAntennaSignalDb:
		return decodeAntennaSignalDb(data)
	case KindAntennaNoiseDb:
		return decodeAntennaNoiseDb(data)
	case KindRxFlags:
		return decodeRxFlags(data)
	case KindTxFlags:
		return decodeTxFlags(data)
	case KindRtsRetries:
		return decodeRtsRetries(data)
	case KindDataRetries:
		return decodeDataRetries(data)
	case KindXChannel:
		return decodeXChannel(data)
	case KindMcs:
		return decodeMcs(data)
	case KindAmpduStatus:
		return decodeAmpduStatus(data)
	case KindVht:
		return decodeVht(data)
	case KindTimestamp:
		return decodeTimestamp(data)
	default:
		return nil, errUnsupportedField("no decoder for field kind")
	}
}
