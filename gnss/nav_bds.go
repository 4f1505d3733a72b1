package gnss

// DecodeBDSD1Eph reconstructs a BeiDou D1 (MEO/IGSO) broadcast ephemeris
// from three CRC/parity-checked 38-byte subframes laid out back to back
// (subframes 1, 2, 3 at bit stride 8*38). Returns 1 on success, 0 if the
// subframe-number or SOW/TOE/TOC consistency checks fail. The caller is
// responsible for setting eph.Sat before use; this only fills the orbital
// and clock fields.
func DecodeBDSD1Eph(buff []byte, eph *Eph) int {
	var e Eph
	var tocBds, sqrtA float64
	var toe1, toe2, sow1, sow2, sow3 uint32
	var frn1, frn2, frn3 int

	i := 8 * 38 * 0 /* subframe 1 */
	frn1 = int(GetBitU(buff, i+15, 3))
	sow1 = GetBitU2(buff, i+18, 8, i+30, 12)
	e.Svh = int(GetBitU(buff, i+42, 1)) /* SatH1 */
	e.Iodc = int(GetBitU(buff, i+43, 5))
	e.Sva = int(GetBitU(buff, i+48, 4))
	e.Week = int(GetBitU(buff, i+60, 13)) /* week in BDT */
	tocBds = float64(GetBitU2(buff, i+73, 9, i+90, 8)) * 8.0
	e.Tgd[0] = float64(GetBits(buff, i+98, 10)) * 0.1 * 1e-9
	e.Tgd[1] = float64(GetBits2(buff, i+108, 4, i+120, 6)) * 0.1 * 1e-9
	e.F2 = float64(GetBits(buff, i+214, 11)) * P2_66
	e.F0 = float64(GetBits2(buff, i+225, 7, i+240, 17)) * P2_33
	e.F1 = float64(GetBits2(buff, i+257, 5, i+270, 17)) * P2_50
	e.Iode = int(GetBitU(buff, i+287, 5))

	i = 8 * 38 * 1 /* subframe 2 */
	frn2 = int(GetBitU(buff, i+15, 3))
	sow2 = GetBitU2(buff, i+18, 8, i+30, 12)
	e.Deln = float64(GetBits2(buff, i+42, 10, i+60, 6)) * P2_43 * SC2RAD
	e.Cuc = float64(GetBits2(buff, i+66, 16, i+90, 2)) * P2_31
	e.M0 = float64(GetBits2(buff, i+92, 20, i+120, 12)) * P2_31 * SC2RAD
	e.E = float64(GetBitU2(buff, i+132, 10, i+150, 22)) * P2_33
	e.Cus = float64(GetBits(buff, i+180, 18)) * P2_31
	e.Crc = float64(GetBits2(buff, i+198, 4, i+210, 14)) * P2_6
	e.Crs = float64(GetBits2(buff, i+224, 8, i+240, 10)) * P2_6
	sqrtA = float64(GetBitU2(buff, i+250, 12, i+270, 20)) * P2_19
	toe1 = GetBitU(buff, i+290, 2) /* TOE 2-MSB */
	e.A = sqrtA * sqrtA

	i = 8 * 38 * 2 /* subframe 3 */
	frn3 = int(GetBitU(buff, i+15, 3))
	sow3 = GetBitU2(buff, i+18, 8, i+30, 12)
	toe2 = GetBitU2(buff, i+42, 10, i+60, 5) /* TOE 5-LSB */
	e.I0 = float64(GetBits2(buff, i+65, 17, i+90, 15)) * P2_31 * SC2RAD
	e.Cic = float64(GetBits2(buff, i+105, 7, i+120, 11)) * P2_31
	e.OMGd = float64(GetBits2(buff, i+131, 11, i+150, 13)) * P2_43 * SC2RAD
	e.Cis = float64(GetBits2(buff, i+163, 9, i+180, 9)) * P2_31
	e.Idot = float64(GetBits2(buff, i+189, 13, i+210, 1)) * P2_43 * SC2RAD
	e.OMG0 = float64(GetBits2(buff, i+211, 21, i+240, 11)) * P2_31 * SC2RAD
	e.Omg = float64(GetBits2(buff, i+251, 11, i+270, 21)) * P2_31 * SC2RAD
	e.Toes = float64(MergeTwoU(toe1, toe2, 15)) * 8.0

	if frn1 != 1 || frn2 != 2 || frn3 != 3 {
		return 0
	}
	if sow2 != sow1+6 || sow3 != sow2+6 {
		return 0
	}
	if tocBds != e.Toes {
		return 0
	}
	e.Ttr = BdtToGps(BdtToTime(e.Week, float64(sow1)))
	switch {
	case e.Toes > float64(sow1)+302400.0:
		e.Week++
	case e.Toes < float64(sow1)-302400.0:
		e.Week--
	}
	e.Toe = BdtToGps(BdtToTime(e.Week, e.Toes))
	e.Toc = BdtToGps(BdtToTime(e.Week, tocBds))
	e.Code = 0
	e.Flag = 1 /* nav type: IGSO/MEO */
	*eph = e
	return 1
}

// DecodeBDSD1Ion extracts the BeiDou D1 ionosphere klobuchar parameters
// (subframe 1) into the standard alpha0..3,beta0..3 layout.
func DecodeBDSD1Ion(buff []byte, ion []float64) int {
	i := 8 * 38 * 0
	if GetBitU(buff, i+15, 3) != 1 {
		return 0
	}
	ion[0] = float64(GetBits(buff, i+126, 8)) * P2_30
	ion[1] = float64(GetBits(buff, i+134, 8)) * P2_27
	ion[2] = float64(GetBits(buff, i+150, 8)) * P2_24
	ion[3] = float64(GetBits(buff, i+158, 8)) * P2_24
	ion[4] = float64(GetBits2(buff, i+166, 6, i+180, 2)) * P2P11
	ion[5] = float64(GetBits(buff, i+182, 8)) * P2P14
	ion[6] = float64(GetBits(buff, i+190, 8)) * P2P16
	ion[7] = float64(GetBits2(buff, i+198, 4, i+210, 4)) * P2P16
	return 1
}

// DecodeBDSD1Utc extracts the BeiDou D1 UTC offset parameters from
// subframe 5 page 10 into utc[0..7] (utc[3] is taken from subframe 1).
func DecodeBDSD1Utc(buff []byte, utc []float64) int {
	i := 8 * 38 * 4
	if GetBitU(buff, 15, 3) != 1 {
		return 0
	}
	if GetBitU(buff, i+15, 3) != 5 || GetBitU(buff, i+43, 7) != 10 {
		return 0
	}
	utc[4] = float64(GetBits2(buff, i+50, 2, i+60, 6))
	utc[7] = float64(GetBits(buff, i+66, 8))
	utc[5] = float64(GetBitU(buff, i+74, 8))
	utc[0] = float64(GetBits2(buff, i+90, 22, i+120, 10)) * P2_30
	utc[1] = float64(GetBits2(buff, i+130, 12, i+150, 12)) * P2_50
	utc[6] = float64(GetBitU(buff, i+162, 8))
	utc[2] = float64(GetBitU2(buff, i+18, 8, i+30, 12))
	utc[3] = float64(GetBitU(buff, 60, 13))
	return 1
}

// DecodeBDSD1 decodes a full BDS D1 (IGSO/MEO) navigation frame, updating
// whichever of eph/ion/utc are non-nil.
func DecodeBDSD1(buff []byte, eph *Eph, ion, utc []float64) int {
	if eph != nil && DecodeBDSD1Eph(buff, eph) == 0 {
		return 0
	}
	if ion != nil && DecodeBDSD1Ion(buff, ion) == 0 {
		return 0
	}
	if utc != nil && DecodeBDSD1Utc(buff, utc) == 0 {
		return 0
	}
	return 1
}

// DecodeBDSD2Eph reconstructs a BeiDou D2 (GEO) broadcast ephemeris from
// pages 1,3-10 of subframe 1 (bit stride 8*38 per page). D2's shorter
// page length splits several fields across three page boundaries, hence
// the GetBitU3/MergeTwoS combinations absent from the D1 decoder.
func DecodeBDSD2Eph(buff []byte, eph *Eph) int {
	var e Eph
	var tocBds, sqrtA float64
	var f1p4, cucp5, ep6, cicp7, i0p8, omgdP9, omgP10 uint32
	var sow1, sow3, sow4, sow5, sow6, sow7, sow8, sow9, sow10 uint32
	var f1p3, cucp4, ep5, cicp6, i0p7, omgdP8, omgP9 int32
	var pgn1, pgn3, pgn4, pgn5, pgn6, pgn7, pgn8, pgn9, pgn10 int

	i := 8 * 38 * 0 /* page 1 */
	pgn1 = int(GetBitU(buff, i+42, 4))
	sow1 = GetBitU2(buff, i+18, 8, i+30, 12)
	e.Svh = int(GetBitU(buff, i+46, 1))
	e.Iodc = int(GetBitU(buff, i+47, 5))
	e.Sva = int(GetBitU(buff, i+60, 4))
	e.Week = int(GetBitU(buff, i+64, 13))
	tocBds = float64(GetBitU2(buff, i+77, 5, i+90, 12)) * 8.0
	e.Tgd[0] = float64(GetBits(buff, i+102, 10)) * 0.1 * 1e-9
	e.Tgd[1] = float64(GetBits(buff, i+120, 10)) * 0.1 * 1e-9

	i = 8 * 38 * 2 /* page 3 */
	pgn3 = int(GetBitU(buff, i+42, 4))
	sow3 = GetBitU2(buff, i+18, 8, i+30, 12)
	e.F0 = float64(GetBits2(buff, i+100, 12, i+120, 12)) * P2_33
	f1p3 = GetBits(buff, i+132, 4)

	i = 8 * 38 * 3 /* page 4 */
	pgn4 = int(GetBitU(buff, i+42, 4))
	sow4 = GetBitU2(buff, i+18, 8, i+30, 12)
	f1p4 = GetBitU2(buff, i+46, 6, i+60, 12)
	e.F2 = float64(GetBits2(buff, i+72, 10, i+90, 1)) * P2_66
	e.Iode = int(GetBitU(buff, i+91, 5))
	e.Deln = float64(GetBits(buff, i+96, 16)) * P2_43 * SC2RAD
	cucp4 = GetBits(buff, i+120, 14)

	i = 8 * 38 * 4 /* page 5 */
	pgn5 = int(GetBitU(buff, i+42, 4))
	sow5 = GetBitU2(buff, i+18, 8, i+30, 12)
	cucp5 = GetBitU(buff, i+46, 4)
	e.M0 = float64(GetBits3(buff, i+50, 2, i+60, 22, i+90, 8)) * P2_31 * SC2RAD
	e.Cus = float64(GetBits2(buff, i+98, 14, i+120, 4)) * P2_31
	ep5 = GetBits(buff, i+124, 10)

	i = 8 * 38 * 5 /* page 6 */
	pgn6 = int(GetBitU(buff, i+42, 4))
	sow6 = GetBitU2(buff, i+18, 8, i+30, 12)
	ep6 = GetBitU2(buff, i+46, 6, i+60, 16)
	sqrtA = float64(GetBitU3(buff, i+76, 6, i+90, 22, i+120, 4)) * P2_19
	cicp6 = GetBits(buff, i+124, 10)
	e.A = sqrtA * sqrtA

	i = 8 * 38 * 6 /* page 7 */
	pgn7 = int(GetBitU(buff, i+42, 4))
	sow7 = GetBitU2(buff, i+18, 8, i+30, 12)
	cicp7 = GetBitU2(buff, i+46, 6, i+60, 2)
	e.Cis = float64(GetBits(buff, i+62, 18)) * P2_31
	e.Toes = float64(GetBitU2(buff, i+80, 2, i+90, 15)) * 8.0
	i0p7 = GetBits2(buff, i+105, 7, i+120, 14)

	i = 8 * 38 * 7 /* page 8 */
	pgn8 = int(GetBitU(buff, i+42, 4))
	sow8 = GetBitU2(buff, i+18, 8, i+30, 12)
	i0p8 = GetBitU2(buff, i+46, 6, i+60, 5)
	e.Crc = float64(GetBits2(buff, i+65, 17, i+90, 1)) * P2_6
	e.Crs = float64(GetBits(buff, i+91, 18)) * P2_6
	omgdP8 = GetBits2(buff, i+109, 3, i+120, 16)

	i = 8 * 38 * 8 /* page 9 */
	pgn9 = int(GetBitU(buff, i+42, 4))
	sow9 = GetBitU2(buff, i+18, 8, i+30, 12)
	omgdP9 = GetBitU(buff, i+46, 5)
	e.OMG0 = float64(GetBits3(buff, i+51, 1, i+60, 22, i+90, 9)) * P2_31 * SC2RAD
	omgP9 = GetBits2(buff, i+99, 13, i+120, 14)

	i = 8 * 38 * 9 /* page 10 */
	pgn10 = int(GetBitU(buff, i+42, 4))
	sow10 = GetBitU2(buff, i+18, 8, i+30, 12)
	omgP10 = GetBitU(buff, i+46, 5)
	e.Idot = float64(GetBits2(buff, i+51, 1, i+60, 13)) * P2_43 * SC2RAD

	if pgn1 != 1 || pgn3 != 3 || pgn4 != 4 || pgn5 != 5 || pgn6 != 6 || pgn7 != 7 || pgn8 != 8 || pgn9 != 9 || pgn10 != 10 {
		return 0
	}
	if sow3 != sow1+6 || sow4 != sow3+3 || sow5 != sow4+3 || sow6 != sow5+3 ||
		sow7 != sow6+3 || sow8 != sow7+3 || sow9 != sow8+3 || sow10 != sow9+3 {
		return 0
	}
	if tocBds != e.Toes {
		return 0
	}
	e.F1 = float64(MergeTwoS(f1p3, f1p4, 18)) * P2_50
	e.Cuc = float64(MergeTwoS(cucp4, cucp5, 4)) * P2_31
	e.E = float64(MergeTwoS(ep5, ep6, 22)) * P2_33
	e.Cic = float64(MergeTwoS(cicp6, cicp7, 8)) * P2_31
	e.I0 = float64(MergeTwoS(i0p7, i0p8, 11)) * P2_31 * SC2RAD
	e.OMGd = float64(MergeTwoS(omgdP8, omgdP9, 5)) * P2_43 * SC2RAD
	e.Omg = float64(MergeTwoS(omgP9, omgP10, 5)) * P2_31 * SC2RAD

	e.Ttr = BdtToGps(BdtToTime(e.Week, float64(sow1)))
	switch {
	case e.Toes > float64(sow1)+302400.0:
		e.Week++
	case e.Toes < float64(sow1)-302400.0:
		e.Week--
	}
	e.Toe = BdtToGps(BdtToTime(e.Week, e.Toes))
	e.Toc = BdtToGps(BdtToTime(e.Week, tocBds))
	e.Code = 0
	e.Flag = 2 /* nav type: GEO */
	*eph = e
	return 1
}

// DecodeBDSD2Utc extracts the BeiDou D2 UTC offset parameters from
// subframe 5 page 102 (bit offset 8*38*10 into buff).
func DecodeBDSD2Utc(buff []byte, utc []float64) int {
	i := 8 * 38 * 10
	if GetBitU(buff, 15, 3) != 1 || GetBitU(buff, 42, 4) != 1 {
		return 0
	}
	if GetBitU(buff, i+15, 3) != 5 || GetBitU(buff, i+43, 7) != 102 {
		return 0
	}
	utc[4] = float64(GetBits2(buff, i+50, 2, i+60, 6))
	utc[7] = float64(GetBits(buff, i+66, 8))
	utc[5] = float64(GetBitU(buff, i+74, 8))
	utc[0] = float64(GetBits2(buff, i+90, 22, i+120, 10)) * P2_30
	utc[1] = float64(GetBits2(buff, i+130, 12, i+150, 12)) * P2_50
	utc[6] = float64(GetBitU(buff, i+162, 8))
	utc[2] = float64(GetBits2(buff, i+18, 8, i+30, 12))
	utc[3] = float64(GetBitU(buff, 64, 13))
	return 1
}

// DecodeBDSD2 decodes a full BDS D2 (GEO) navigation frame, updating
// whichever of eph/utc are non-nil.
func DecodeBDSD2(buff []byte, eph *Eph, utc []float64) int {
	if eph != nil && DecodeBDSD2Eph(buff, eph) == 0 {
		return 0
	}
	if utc != nil && DecodeBDSD2Utc(buff, utc) == 0 {
		return 0
	}
	return 1
}
