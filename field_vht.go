package radiotap

import "fmt"

// VhtUser is the per-user MCS/NSS/coding triple carried by a Vht field. VHT
// multi-user transmissions carry up to four of these; single-user
// transmissions populate only index 0.
type VhtUser struct {
	Nss uint8
	// Nsts is the number of space-time streams: Nss, doubled when the
	// STBC flag is known and set.
	Nsts uint8
	Mcs  uint8
	Fec  Fec

	// Datarate is populated only when the Vht field's Bandwidth and Gi
	// are both known and this user's MCS/Nss combination is valid.
	Datarate *float32
}

// Vht is the IEEE 802.11ac data rate descriptor. Usually only one of Rate,
// Mcs, and Vht is present on a given capture.
type Vht struct {
	Stbc             *bool
	TxopPsNotAllowed *bool
	Gi               *GuardInterval
	// Sgi1NsymDisambig indicates the receiver must apply the short-GI
	// NSYM disambiguation rule.
	Sgi1NsymDisambig    *bool
	LdpcExtraOfdmSymbol *bool
	Beamformed          *bool

	Bandwidth *Bandwidth

	// GroupId is present only if known bit 0x0080 is set.
	GroupId *uint8
	// PartialAid is present only if known bit 0x0100 is set.
	PartialAid *uint16

	// Users holds one entry per active user (1 in single-user mode, up
	// to 4 in multi-user mode); a user is active if its Nss nibble (the
	// low four bits of its mcs_nss byte) is non-zero.
	Users []VhtUser
}

func decodeVht(data []byte) (Vht, error) {
	if len(data) < 12 {
		return Vht{}, errInvalidFormat("short Vht field")
	}
	known, err := readU16LE(data)
	if err != nil {
		return Vht{}, err
	}
	flags := data[2]
	bwCode := data[3]
	mcsNss := data[4:8]
	coding := data[8]
	groupID := data[9]
	partialAid, err := readU16LE(data[10:])
	if err != nil {
		return Vht{}, err
	}

	var vht Vht

	if isFlagSet16(known, 0x0001) {
		v := isFlagSet8(flags, 0x01)
		vht.Stbc = &v
	}
	if isFlagSet16(known, 0x0002) {
		v := isFlagSet8(flags, 0x02)
		vht.TxopPsNotAllowed = &v
	}
	if isFlagSet16(known, 0x0004) {
		gi := GuardIntervalLong
		if isFlagSet8(flags, 0x04) {
			gi = GuardIntervalShort
		}
		vht.Gi = &gi
	}
	if isFlagSet16(known, 0x0008) {
		v := isFlagSet8(flags, 0x08)
		vht.Sgi1NsymDisambig = &v
	}
	if isFlagSet16(known, 0x0010) {
		v := isFlagSet8(flags, 0x10)
		vht.LdpcExtraOfdmSymbol = &v
	}
	if isFlagSet16(known, 0x0020) {
		v := isFlagSet8(flags, 0x20)
		vht.Beamformed = &v
	}

	if isFlagSet16(known, 0x0040) {
		bw, err := newVhtBandwidth(bwCode & 0x1f)
		if err != nil {
			return Vht{}, err
		}
		vht.Bandwidth = &bw
	}

	if isFlagSet16(known, 0x0080) {
		v := groupID
		vht.GroupId = &v
	}
	if isFlagSet16(known, 0x0100) {
		v := partialAid
		vht.PartialAid = &v
	}

	stbc := vht.Stbc != nil && *vht.Stbc

	for user := 0; user < 4; user++ {
		nss := bitsAsInt(mcsNss[user], 0, 4)
		mcs := bitsAsInt(mcsNss[user], 4, 4)
		if nss == 0 {
			continue
		}

		nsts := nss
		if stbc {
			nsts <<= 1
		}

		// Bit `user` of the coding byte is this user's LDPC flag.
		fec := FecBcc
		if (coding>>uint(user))&1 == 1 {
			fec = FecLdpc
		}

		u := VhtUser{Nss: nss, Nsts: nsts, Mcs: mcs, Fec: fec}
		if vht.Bandwidth != nil && vht.Gi != nil {
			if rate, err := vhtRate(mcs, vht.Bandwidth.MHz, *vht.Gi, int(nss)); err == nil {
				u.Datarate = &rate
			}
		}
		vht.Users = append(vht.Users, u)
	}

	return vht, nil
}

func (u VhtUser) String() string {
	return fmt.Sprintf("MCS%d/NSS%d", u.Mcs, u.Nss)
}
