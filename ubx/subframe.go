package ubx

import "github.com/GHolk/RTKLIB/gnss"

// Subframe reassembly layout, per §4.6: d.subFrm[sat-1] is a flat 380-byte
// scratch area whose interpretation depends on the satellite's
// constellation.
//
//   - GPS/QZSS: five 30-byte parity-stripped subframes at offset (id-1)*30.
//   - BeiDou D1 (MEO/IGSO): five 38-byte subframes at offset (id-1)*38.
//   - BeiDou D2 (GEO): ten 38-byte pages of subframe 1 at offset
//     (pgn-1)*38. The UTC page (subframe id 5, page number 102) is not
//     stored; it is decoded on arrival together with the stored pages.
//   - GLONASS: strings 1-5 as 10-byte slots at offset (m-1)*10, plus a
//     2-byte frame-id tag at offset 150 used to detect a frame boundary and
//     flush the first four (stale) strings.
//   - Galileo I/NAV: seven 16-byte word slots at offset ctype*16 (word
//     types 0-6), plus a seen-word-types bitmap at offset 112.
const gloFrameIDOffset = 150

// clearGloFrame zeroes the four GLONASS string slots ahead of reassembling
// a new frame.
func clearGloFrame(buf *[380]byte) {
	for i := 0; i < 40; i++ {
		buf[i] = 0
	}
}

// decodeEphUb finishes GPS/QZSS ephemeris decoding once subframe 3 has
// arrived, gating republication on §4.6/§4.7's "publish only if changed"
// rule (bypassed by -EPHALL).
func (d *Decoder) decodeEphUb(sat int) DecodeResult {
	_, week := gnss.TimeToGps(d.Time)
	var eph gnss.Eph
	if gnss.DecodeGpsLNAV(d.subFrm[sat-1][:], week, &eph) == 0 {
		return DecodeResult{}
	}
	eph.Sat = sat
	if !d.opt.EphAll && !gnss.EphChanged(&eph, &d.Nav.Eph[sat-1]) {
		return DecodeResult{}
	}
	d.Nav.Eph[sat-1] = eph
	d.EphSat, d.EphSet = sat, 0
	return DecodeResult{Kind: KindEph}
}

// decodeIonUtcGps finishes GPS/QZSS ion/UTC decoding once subframe 4 or 5
// carries page 18.
func (d *Decoder) decodeIonUtcGps(sat int) DecodeResult {
	var ion, utc [8]float64
	gotIon := gnss.DecodeGpsIon(d.subFrm[sat-1][:], ion[:]) != 0
	gotUtc := gnss.DecodeGpsUtc(d.subFrm[sat-1][:], utc[:]) != 0
	if !gotIon && !gotUtc {
		return DecodeResult{}
	}
	gnss.AdjUtcWeek(d.Time, utc[:])
	if gotIon {
		d.Nav.Ion = ion
	}
	if gotUtc {
		d.Nav.Utc = utc
	}
	return DecodeResult{Kind: KindIonUtc}
}

// decodeNav decodes one GPS/QZSS LNAV subframe delivered at byte offset
// off within the current frame (8 for RXM-SFRBX, 13 for the undocumented
// TRK-SFRBX layout), reassembling into d.subFrm and dispatching to the
// ephemeris or ion/UTC decoder once a full subframe 3, 4 or 5 has arrived.
func (d *Decoder) decodeNav(sat, off int) DecodeResult {
	p := 6 + off
	if d.flen < 48+off {
		Trace(2, "rxmsfrbx nav length error: sat=%d len=%d\n", sat, d.flen)
		return DecodeResult{Kind: KindError}
	}
	if sys, _ := gnss.SatSys(sat); sys == gnss.SYS_GPS && U4L(d.buff[p:])>>24 == 0x8B {
		Trace(3, "rxmsfrbx cnav not supported: sat=%d\n", sat)
		return DecodeResult{}
	}
	var buff [30]byte
	for i, q := 0, p; i < 10; i, q = i+1, q+4 {
		gnss.SetBitU(buff[:], 24*i, 24, U4L(d.buff[q:])>>6)
	}
	id := int(gnss.GetBitU(buff[:], 43, 3))
	if id < 1 || id > 5 {
		Trace(2, "rxmsfrbx nav subframe id error: sat=%d id=%d\n", sat, id)
		return DecodeResult{Kind: KindError}
	}
	copy(d.subFrm[sat-1][(id-1)*30:], buff[:30])

	switch id {
	case 3:
		return d.decodeEphUb(sat)
	case 4, 5:
		return d.decodeIonUtcGps(sat)
	}
	return DecodeResult{}
}

// decodeEnav decodes one Galileo I/NAV word delivered at byte offset off.
func (d *Decoder) decodeEnav(sat, off int) DecodeResult {
	if d.flen < 40+off {
		Trace(2, "rxmsfrbx enav length error: sat=%d len=%d\n", sat, d.flen)
		return DecodeResult{Kind: KindError}
	}
	if d.flen < 44+off {
		return DecodeResult{} // E5b I/NAV, not decoded
	}
	p := 6 + off
	var buff [32]byte
	for i, q := 0, p; i < 8; i, q = i+1, q+4 {
		gnss.SetBitU(buff[:], 32*i, 32, U4L(d.buff[q:]))
	}
	part1 := gnss.GetBitU(buff[:], 0, 1)
	page1 := gnss.GetBitU(buff[:], 1, 1)
	part2 := gnss.GetBitU(buff[:], 128, 1)
	page2 := gnss.GetBitU(buff[:], 129, 1)
	if part1 != 0 || part2 != 1 {
		Trace(3, "rxmsfrbx enav page even/odd error: sat=%d\n", sat)
		return DecodeResult{Kind: KindError}
	}
	if page1 == 1 || page2 == 1 {
		return DecodeResult{} // alert page
	}

	var crcBuff [25]byte
	for i, j := 0, 4; i < 15; i, j = i+1, j+8 {
		gnss.SetBitU(crcBuff[:], j, 8, gnss.GetBitU(buff[:], i*8, 8))
	}
	for i, j := 0, 118; i < 11; i, j = i+1, j+8 {
		gnss.SetBitU(crcBuff[:], j, 8, gnss.GetBitU(buff[:], i*8+128, 8))
	}
	if gnss.CRC24Q(crcBuff[:]) != gnss.GetBitU(buff[:], 128+82, 24) {
		Trace(2, "rxmsfrbx enav crc error: sat=%d\n", sat)
		return DecodeResult{Kind: KindError}
	}
	ctype := int(gnss.GetBitU(buff[:], 2, 6))
	if ctype > 6 {
		return DecodeResult{}
	}

	for i, j := 0, 2; i < 14; i, j = i+1, j+8 {
		d.subFrm[sat-1][ctype*16+i] = byte(gnss.GetBitU(buff[:], j, 8))
	}
	for i, j := 14, 130; i < 16; i, j = i+1, j+8 {
		d.subFrm[sat-1][ctype*16+i] = byte(gnss.GetBitU(buff[:], j, 8))
	}
	seen := &d.subFrm[sat-1][112] // bit k set once word type k is stored
	if ctype == 2 {
		*seen = 0
	}
	*seen |= 1 << uint(ctype)
	if *seen != 0x7F {
		return DecodeResult{}
	}
	if !d.opt.GalFnav {
		return d.decodeGalInav(sat)
	}
	return DecodeResult{}
}

func (d *Decoder) decodeGalInav(sat int) DecodeResult {
	var eph gnss.Eph
	if gnss.DecodeGalInav(d.subFrm[sat-1][:], &eph) == 0 {
		return DecodeResult{}
	}
	if eph.Sat != sat {
		Trace(2, "rxmsfrbx enav satellite error: sat=%d %d\n", sat, eph.Sat)
		return DecodeResult{Kind: KindError}
	}
	eph.Code |= 1 << 0 // data source: E1

	var ion [8]float64
	var utc [8]float64
	gotIon := gnss.DecodeGalInavIon(d.subFrm[sat-1][:], ion[:]) != 0
	gotUtc := gnss.DecodeGalInavUtc(d.subFrm[sat-1][:], utc[:]) != 0
	if gotIon || gotUtc {
		gnss.AdjUtcWeek(d.Time, utc[:])
		if gotIon {
			d.Nav.Ion = ion
		}
		if gotUtc {
			d.Nav.Utc = utc
		}
	}

	if !d.opt.EphAll && !gnss.EphChanged(&eph, &d.Nav.Eph[sat-1]) {
		return DecodeResult{}
	}
	d.Nav.Eph[sat-1] = eph
	d.EphSat, d.EphSet = sat, 0
	return DecodeResult{Kind: KindEph}
}

// decodeCnav decodes one BeiDou D1/D2 subframe or page delivered at byte
// offset off.
func (d *Decoder) decodeCnav(sat, off int) DecodeResult {
	if d.flen < 48+off {
		Trace(2, "rxmsfrbx cnav length error: sat=%d len=%d\n", sat, d.flen)
		return DecodeResult{Kind: KindError}
	}
	p := 6 + off
	var buff [38]byte
	for i, q := 0, p; i < 10; i, q = i+1, q+4 {
		gnss.SetBitU(buff[:], 30*i, 30, U4L(d.buff[q:]))
	}
	id := int(gnss.GetBitU(buff[:], 15, 3))
	if id < 1 || id > 5 {
		Trace(2, "rxmsfrbx cnav subframe id error: sat=%d\n", sat)
		return DecodeResult{Kind: KindError}
	}
	_, prn := gnss.SatSys(sat)

	var eph gnss.Eph
	var ion, utc [8]float64
	gotEph := false

	if prn >= 6 && prn <= 58 { // IGSO/MEO: D1
		copy(d.subFrm[sat-1][(id-1)*38:], buff[:38])
		switch id {
		case 3:
			if gnss.DecodeBDSD1(d.subFrm[sat-1][:], &eph, nil, nil) == 0 {
				return DecodeResult{}
			}
			gotEph = true
		case 5:
			if gnss.DecodeBDSD1(d.subFrm[sat-1][:], nil, ion[:], utc[:]) == 0 {
				return DecodeResult{}
			}
			d.Nav.Ion, d.Nav.Utc = ion, utc
			return DecodeResult{Kind: KindIonUtc}
		default:
			return DecodeResult{}
		}
	} else { // GEO: D2
		pgn := int(gnss.GetBitU(buff[:], 42, 4))
		switch {
		case id == 1 && pgn >= 1 && pgn <= 10:
			copy(d.subFrm[sat-1][(pgn-1)*38:], buff[:38])
			if pgn != 10 {
				return DecodeResult{}
			}
			if gnss.DecodeBDSD2(d.subFrm[sat-1][:], &eph, nil) == 0 {
				return DecodeResult{}
			}
			gotEph = true
		case id == 5 && pgn == 102:
			var frm [11 * 38]byte
			copy(frm[:], d.subFrm[sat-1][:])
			copy(frm[10*38:], buff[:38])
			if gnss.DecodeBDSD2(frm[:], nil, utc[:]) == 0 {
				return DecodeResult{}
			}
			d.Nav.Utc = utc
			return DecodeResult{Kind: KindIonUtc}
		default:
			return DecodeResult{}
		}
	}
	if !gotEph {
		return DecodeResult{}
	}
	if !d.opt.EphAll && gnss.TimeDiff(eph.Toe, d.Nav.Eph[sat-1].Toe) == 0.0 {
		return DecodeResult{}
	}
	eph.Sat = sat
	d.Nav.Eph[sat-1] = eph
	d.EphSat, d.EphSet = sat, 0
	return DecodeResult{Kind: KindEph}
}

// decodeGnav decodes one GLONASS string delivered at byte offset off, frq
// carrying the raw UBX frequency-slot field (fcn = frq-7).
func (d *Decoder) decodeGnav(sat, off, frq int) DecodeResult {
	_, prn := gnss.SatSys(sat)
	if d.flen < 24+off {
		Trace(2, "rxmsfrbx gnav length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	p := 6 + off
	var buff [64]byte
	for i, k, q := 0, 0, p; i < 4; i, q = i+1, q+4 {
		for j := 0; j < 4; j++ {
			buff[k] = d.buff[q+3-j]
			k++
		}
	}
	if !gnss.TestGloStr(buff[:]) {
		Trace(2, "rxmsfrbx gnav hamming error: sat=%d\n", sat)
		return DecodeResult{Kind: KindError}
	}
	m := int(gnss.GetBitU(buff[:], 1, 4))
	if m < 1 || m > 15 {
		Trace(2, "rxmsfrbx gnav string no error: sat=%d\n", sat)
		return DecodeResult{Kind: KindError}
	}

	if d.subFrm[sat-1][gloFrameIDOffset] != buff[12] || d.subFrm[sat-1][gloFrameIDOffset+1] != buff[13] {
		clearGloFrame(&d.subFrm[sat-1])
		d.subFrm[sat-1][gloFrameIDOffset] = buff[12]
		d.subFrm[sat-1][gloFrameIDOffset+1] = buff[13]
	}
	if m <= 5 {
		copy(d.subFrm[sat-1][(m-1)*10:], buff[:10])
	}

	switch m {
	case 4:
		var geph gnss.GEph
		geph.Tof = d.Time
		if gnss.DecodeGloStr(d.subFrm[sat-1][:], &geph, nil) == 0 || geph.Sat != sat {
			return DecodeResult{}
		}
		geph.Frq = frq - 7
		if !d.opt.EphAll && !gnss.GEphChanged(&geph, &d.Nav.GEph[prn-1]) {
			return DecodeResult{}
		}
		d.Nav.GEph[prn-1] = geph
		d.EphSat, d.EphSet = sat, 0
		return DecodeResult{Kind: KindEph}
	case 5:
		var utc [8]float64
		if gnss.DecodeGloStr(d.subFrm[sat-1][:], nil, utc[:]) == 0 {
			return DecodeResult{}
		}
		d.Nav.Utc = utc
		return DecodeResult{Kind: KindIonUtc}
	}
	return DecodeResult{}
}

// decodeSnav decodes one SBAS long message carried inside RXM-SFRBX/TRK-SFRBX.
func (d *Decoder) decodeSnav(prn, off int) DecodeResult {
	if d.flen < 40+off {
		Trace(2, "rxmsfrbx snav length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	p := 6 + off
	tow, week := gnss.TimeToGps(gnss.TimeAdd(d.Time, -1.0))
	var buff [32]byte
	for i, q := 0, p; i < 8; i, q = i+1, q+4 {
		gnss.SetBitU(buff[:], 32*i, 32, U4L(d.buff[q:]))
	}
	d.SbsMsg.Prn = uint8(prn)
	d.SbsMsg.Tow = int(tow)
	d.SbsMsg.Week = week
	copy(d.SbsMsg.Msg[:], buff[:29])
	d.SbsMsg.Msg[28] &= 0xC0
	return DecodeResult{Kind: KindSbas}
}
