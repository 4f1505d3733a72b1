package gnss

// DecodeGpsLNAV reconstructs a GPS/QZSS LNAV broadcast ephemeris from three
// already-parity-stripped 30-byte subframes (IDs 1, 2, 3) laid out back to
// back in buff (offsets 0, 30, 60 bytes = bit offsets 0, 240, 480). refWeek
// is the caller's current full GPS week estimate, used to resolve the
// 10-bit week field's roll-over. Returns 1 on success, 0 if the subframe
// IDs or IODE/IODC don't line up (the frame accumulator handed over a
// malformed or incomplete triple).
func DecodeGpsLNAV(buff []byte, refWeek int, eph *Eph) int {
	var e Eph
	var tow1, toc, sqrtA float64
	var id1, id2, id3, week, iodc0, iodc1, iode, tgd int

	i := 24 /* subframe 1 */
	tow1 = float64(GetBitU(buff, i, 17)) * 6.0
	i += 17 + 2
	id1 = int(GetBitU(buff, i, 3))
	i += 3 + 2
	week = int(GetBitU(buff, i, 10))
	i += 10
	e.Code = int(GetBitU(buff, i, 2))
	i += 2
	e.Sva = int(GetBitU(buff, i, 4))
	i += 4
	e.Svh = int(GetBitU(buff, i, 6))
	i += 6
	iodc0 = int(GetBitU(buff, i, 2))
	i += 2
	e.Flag = int(GetBitU(buff, i, 1))
	i += 1 + 87
	tgd = int(GetBits(buff, i, 8))
	i += 8
	iodc1 = int(GetBitU(buff, i, 8))
	i += 8
	toc = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	e.F2 = float64(GetBits(buff, i, 8)) * P2_55
	i += 8
	e.F1 = float64(GetBits(buff, i, 16)) * P2_43
	i += 16
	e.F0 = float64(GetBits(buff, i, 22)) * P2_31

	i = 240 + 24 /* subframe 2 */
	i += 17 + 2
	id2 = int(GetBitU(buff, i, 3))
	i += 3 + 2
	e.Iode = int(GetBitU(buff, i, 8))
	i += 8
	e.Crs = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Deln = float64(GetBits(buff, i, 16)) * P2_43 * SC2RAD
	i += 16
	e.M0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Cuc = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.E = float64(GetBitU(buff, i, 32)) * P2_33
	i += 32
	e.Cus = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	sqrtA = float64(GetBitU(buff, i, 32)) * P2_19
	i += 32
	e.Toes = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	if GetBitU(buff, i, 1) > 0 {
		e.Fit = 0.0
	} else {
		e.Fit = 4.0
	}

	i = 480 + 24 /* subframe 3 */
	i += 17 + 2
	id3 = int(GetBitU(buff, i, 3))
	i += 3 + 2
	e.Cic = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.OMG0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Cis = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.I0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Crc = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Omg = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.OMGd = float64(GetBits(buff, i, 24)) * P2_43 * SC2RAD
	i += 24
	iode = int(GetBitU(buff, i, 8))
	i += 8
	e.Idot = float64(GetBits(buff, i, 14)) * P2_43 * SC2RAD

	e.A = sqrtA * sqrtA
	e.Iodc = (iodc0 << 8) + iodc1
	if tgd != -128 {
		e.Tgd[0] = float64(tgd) * P2_31
	}

	if id1 != 1 || id2 != 2 || id3 != 3 {
		return 0
	}
	if iode != e.Iode || iode != (e.Iodc&0xFF) {
		return 0
	}
	e.Week = AdjGpsWeek(week, refWeek)
	e.Ttr = GpsToTime(e.Week, tow1)
	switch {
	case e.Toes < tow1-302400.0:
		e.Week++
	case e.Toes > tow1+302400.0:
		e.Week--
	}
	e.Toe = GpsToTime(e.Week, e.Toes)
	e.Toc = GpsToTime(e.Week, toc)
	*eph = e
	return 1
}

// DecodeGpsIon extracts the GPS/QZSS Klobuchar ionosphere parameters from
// subframe 4 or 5 page 18 (SV ID 56), scanning both 30-byte subframes in a
// 5-subframe (150-byte) buffer.
func DecodeGpsIon(buff []byte, ion []float64) int {
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		page := buff[index:]
		if frm == 5 && GetBitU(page, 48, 2) == 1 {
			continue
		}
		if int(GetBitU(page, 43, 3)) != frm || GetBitU(page, 50, 6) != 56 {
			continue
		}
		i := 56
		ion[0] = float64(GetBits(page, i, 8)) * P2_30
		i += 8
		ion[1] = float64(GetBits(page, i, 8)) * P2_27
		i += 8
		ion[2] = float64(GetBits(page, i, 8)) * P2_24
		i += 8
		ion[3] = float64(GetBits(page, i, 8)) * P2_24
		i += 8
		ion[4] = float64(GetBits(page, i, 8)) * P2P11
		i += 8
		ion[5] = float64(GetBits(page, i, 8)) * P2P14
		i += 8
		ion[6] = float64(GetBits(page, i, 8)) * P2P16
		i += 8
		ion[7] = float64(GetBits(page, i, 8)) * P2P16
		return 1
	}
	return 0
}

// DecodeGpsUtc extracts the GPS/QZSS UTC offset parameters from subframe
// 4 or 5 page 18 (SV ID 56).
func DecodeGpsUtc(buff []byte, utc []float64) int {
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		page := buff[index:]
		if frm == 5 && GetBitU(page, 48, 2) == 1 {
			continue
		}
		if int(GetBitU(page, 43, 3)) != frm || GetBitU(page, 50, 6) != 56 {
			continue
		}
		i := 120
		utc[1] = float64(GetBits(page, i, 24)) * P2_50
		i += 24
		utc[0] = float64(GetBits(page, i, 32)) * P2_30
		i += 32
		utc[2] = float64(GetBitU(page, i, 8)) * P2P12
		i += 8
		utc[3] = float64(GetBitU(page, i, 8))
		i += 8
		utc[4] = float64(GetBits(page, i, 8))
		i += 8
		utc[5] = float64(GetBitU(page, i, 8))
		i += 8
		utc[6] = float64(GetBitU(page, i, 8))
		i += 8
		utc[7] = float64(GetBits(page, i, 8))
		return 1
	}
	return 0
}
