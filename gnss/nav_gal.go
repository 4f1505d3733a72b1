package gnss

// DecodeGalInav reconstructs a Galileo I/NAV broadcast ephemeris from six
// 16-byte (128-bit) reassembled word slots (word types 1..5 populated,
// word 0 unused by ephemeris but present for layout parity with the
// subframe store's seven-word scratch area). Returns 1 on success.
func DecodeGalInav(buff []byte, eph *Eph) int {
	var e Eph
	var tow, toc, tt, sqrtA float64
	var week, svid, e5bHS, e1bHS, e5bDVS, e1bDVS int
	var wtype [5]int
	var iodNav [4]int

	i := 128 /* word type 1 */
	wtype[0] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[0] = int(GetBitU(buff, i, 10))
	i += 10
	e.Toes = float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.M0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.E = float64(GetBitU(buff, i, 32)) * P2_33
	i += 32
	sqrtA = float64(GetBitU(buff, i, 32)) * P2_19

	i = 128 * 2 /* word type 2 */
	wtype[1] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[1] = int(GetBitU(buff, i, 10))
	i += 10
	e.OMG0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.I0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Omg = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Idot = float64(GetBits(buff, i, 14)) * P2_43 * SC2RAD

	i = 128 * 3 /* word type 3 */
	wtype[2] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[2] = int(GetBitU(buff, i, 10))
	i += 10
	e.OMGd = float64(GetBits(buff, i, 24)) * P2_43 * SC2RAD
	i += 24
	e.Deln = float64(GetBits(buff, i, 16)) * P2_43 * SC2RAD
	i += 16
	e.Cuc = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Cus = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Crc = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Crs = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Sva = int(GetBitU(buff, i, 8))

	i = 128 * 4 /* word type 4 */
	wtype[3] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[3] = int(GetBitU(buff, i, 10))
	i += 10
	svid = int(GetBitU(buff, i, 6))
	i += 6
	e.Cic = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Cis = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	toc = float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.F0 = float64(GetBits(buff, i, 31)) * P2_34
	i += 31
	e.F1 = float64(GetBits(buff, i, 21)) * P2_46
	i += 21
	e.F2 = float64(GetBits(buff, i, 6)) * P2_59

	i = 128 * 5 /* word type 5 */
	wtype[4] = int(GetBitU(buff, i, 6))
	i += 6 + 11 + 11 + 14 + 5
	e.Tgd[0] = float64(GetBits(buff, i, 10)) * P2_32
	i += 10 /* BGD E5a/E1 */
	e.Tgd[1] = float64(GetBits(buff, i, 10)) * P2_32
	i += 10 /* BGD E5b/E1 */
	e5bHS = int(GetBitU(buff, i, 2))
	i += 2
	e1bHS = int(GetBitU(buff, i, 2))
	i += 2
	e5bDVS = int(GetBitU(buff, i, 1))
	i += 1
	e1bDVS = int(GetBitU(buff, i, 1))
	i += 1
	week = int(GetBitU(buff, i, 12))
	i += 12
	tow = float64(GetBitU(buff, i, 20))

	if wtype[0] != 1 || wtype[1] != 2 || wtype[2] != 3 || wtype[3] != 4 || wtype[4] != 5 {
		return 0
	}
	if iodNav[0] != iodNav[1] || iodNav[0] != iodNav[2] || iodNav[0] != iodNav[3] {
		return 0
	}
	e.Sat = SatNo(SYS_GAL, svid)
	if e.Sat == 0 {
		return 0
	}
	e.A = sqrtA * sqrtA
	e.Iode, e.Iodc = iodNav[0], iodNav[0]
	e.Svh = (e5bHS << 7) | (e5bDVS << 6) | (e1bHS << 1) | e1bDVS
	e.Ttr = GalToTime(week, tow)
	tt = TimeDiff(GalToTime(week, e.Toes), e.Ttr)
	switch {
	case tt > 302400.0:
		week--
	case tt < -302400.0:
		week++
	}
	e.Toe = GalToTime(week, e.Toes)
	e.Toc = GalToTime(week, toc)
	e.Week = week + 1024 /* gal-week = gst-week + 1024 */
	e.Code = 1 << 9      /* I/NAV: af0-2,Toc,SISA for E5b-E1 */
	*eph = e
	return 1
}

// DecodeGalInavIon extracts the Galileo I/NAV NeQuick ionosphere
// parameters from word type 5.
func DecodeGalInavIon(buff []byte, ion []float64) int {
	i := 128 * 5
	if GetBitU(buff, i, 6) != 5 {
		return 0
	}
	i += 6
	ion[0] = float64(GetBitU(buff, i, 11)) * 0.25
	i += 11
	ion[1] = float64(GetBits(buff, i, 11)) * P2_8
	i += 11
	ion[2] = float64(GetBits(buff, i, 14)) * P2_15
	i += 14
	ion[3] = float64(GetBitU(buff, i, 5))
	return 1
}

// DecodeGalInavUtc extracts the Galileo I/NAV UTC offset parameters from
// word type 6.
func DecodeGalInavUtc(buff []byte, utc []float64) int {
	i := 128 * 6
	if GetBitU(buff, i, 6) != 6 {
		return 0
	}
	i += 6
	utc[0] = float64(GetBits(buff, i, 32)) * P2_30
	i += 32
	utc[1] = float64(GetBits(buff, i, 24)) * P2_50
	i += 24
	utc[4] = float64(GetBits(buff, i, 8))
	i += 8
	utc[2] = float64(GetBitU(buff, i, 8)) * 3600.0
	i += 8
	utc[3] = float64(GetBitU(buff, i, 8))
	i += 8
	utc[5] = float64(GetBitU(buff, i, 8))
	i += 8
	utc[6] = float64(GetBitU(buff, i, 3))
	i += 3
	utc[7] = float64(GetBits(buff, i, 8))
	return 1
}
