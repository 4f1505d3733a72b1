package ubx

import "github.com/GHolk/RTKLIB/gnss"

// decodeRxmSfrbx decodes UBX-RXM-SFRBX (C7), the modern raw-subframe
// carrier for every constellation this decoder supports.
func (d *Decoder) decodeRxmSfrbx() DecodeResult {
	p := 6
	gnssID := int(U1(d.buff[p:]))
	sys := ubxSys(gnssID)
	if sys == 0 {
		Trace(2, "rxmsfrbx sys id error: sys=%d\n", gnssID)
		return DecodeResult{Kind: KindError}
	}
	prn := int(U1(d.buff[p+1:]))
	if sys == gnss.SYS_QZS {
		prn += 192
	}
	sat := gnss.SatNo(sys, prn)
	if sat == 0 {
		if sys == gnss.SYS_GLO && prn == 255 {
			return DecodeResult{}
		}
		Trace(2, "rxmsfrbx sat number error: sys=%d prn=%d\n", sys, prn)
		return DecodeResult{Kind: KindError}
	}
	if sys == gnss.SYS_QZS && d.flen == 52 { // QZSS L1S
		sys = gnss.SYS_SBS
		prn -= 10
	}
	switch sys {
	case gnss.SYS_GPS, gnss.SYS_QZS:
		return d.decodeNav(sat, 8)
	case gnss.SYS_GAL:
		return d.decodeEnav(sat, 8)
	case gnss.SYS_CMP:
		return d.decodeCnav(sat, 8)
	case gnss.SYS_GLO:
		return d.decodeGnav(sat, 8, int(U1(d.buff[p+3:])))
	case gnss.SYS_SBS:
		return d.decodeSnav(prn, 8)
	}
	return DecodeResult{}
}

// decodeTrkSfrbx decodes UBX-TRK-SFRBX (C7), an undocumented layout
// carrying the same subframe payloads at a different byte offset.
func (d *Decoder) decodeTrkSfrbx() DecodeResult {
	p := 6
	gnssID := int(U1(d.buff[p+1:]))
	sys := ubxSys(gnssID)
	if sys == 0 {
		Trace(2, "trksfrbx sys id error: sys=%d\n", gnssID)
		return DecodeResult{Kind: KindError}
	}
	prn := int(U1(d.buff[p+2:]))
	if sys == gnss.SYS_QZS {
		prn += 192
	}
	sat := gnss.SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "trksfrbx sat number error: sys=%d prn=%d\n", sys, prn)
		return DecodeResult{Kind: KindError}
	}
	switch sys {
	case gnss.SYS_GPS, gnss.SYS_QZS:
		return d.decodeNav(sat, 13)
	case gnss.SYS_GAL:
		return d.decodeEnav(sat, 13)
	case gnss.SYS_CMP:
		return d.decodeCnav(sat, 13)
	case gnss.SYS_GLO:
		return d.decodeGnav(sat, 13, int(U1(d.buff[p+4:])))
	case gnss.SYS_SBS:
		return d.decodeSnav(prn, 13)
	}
	return DecodeResult{}
}

// decodeRxmSfrb decodes UBX-RXM-SFRB (C7), the legacy GPS/SBAS-only
// subframe carrier.
func (d *Decoder) decodeRxmSfrb() DecodeResult {
	p := 6
	if d.flen < 42 {
		Trace(2, "rxmsfrb length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	prn := int(U1(d.buff[p+1:]))
	sys := gnss.SYS_GPS
	if prn >= gnss.MINPRNSBS {
		sys = gnss.SYS_SBS
	}
	sat := gnss.SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rxmsfrb satellite error: prn=%d\n", prn)
		return DecodeResult{Kind: KindError}
	}
	if sys == gnss.SYS_GPS {
		var buff [30]byte
		q := p + 2
		for i := 0; i < 10; i, q = i+1, q+4 {
			gnss.SetBitU(buff[:], 24*i, 24, U4L(d.buff[q:]))
		}
		id := int(gnss.GetBitU(buff[:], 43, 3))
		if id < 1 || id > 5 {
			return DecodeResult{}
		}
		copy(d.subFrm[sat-1][(id-1)*30:], buff[:30])
		switch id {
		case 3:
			return d.decodeEphUb(sat)
		case 4:
			return d.decodeIonUtcGps(sat)
		}
		return DecodeResult{}
	}
	var words [10]uint32
	q := p + 2
	for i := 0; i < 10; i, q = i+1, q+4 {
		words[i] = U4L(d.buff[q:])
	}
	if gnss.SbsDecodeMsg(d.Time, prn, words, &d.SbsMsg) == 0 {
		return DecodeResult{}
	}
	return DecodeResult{Kind: KindSbas}
}
