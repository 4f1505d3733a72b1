package gnss

import "math"

var gloXor8bit = [256]uint8{
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
}

var gloHammingMask = [8][12]uint8{
	{0x55, 0x55, 0x5A, 0xAA, 0xAA, 0xAA, 0xB5, 0x55, 0x6A, 0xD8, 0x08},
	{0x66, 0x66, 0x6C, 0xCC, 0xCC, 0xCC, 0xD9, 0x99, 0xB3, 0x68, 0x10},
	{0x87, 0x87, 0x8F, 0x0F, 0x0F, 0x0F, 0x1E, 0x1E, 0x3C, 0x70, 0x20},
	{0x07, 0xF8, 0x0F, 0xF0, 0x0F, 0xF0, 0x1F, 0xE0, 0x3F, 0x80, 0x40},
	{0xF8, 0x00, 0x0F, 0xFF, 0xF0, 0x00, 0x1F, 0xFF, 0xC0, 0x00, 0x80},
	{0x00, 0x00, 0x0F, 0xFF, 0xFF, 0xFF, 0xE0, 0x00, 0x00, 0x01, 0x00},
	{0xFF, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
	{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF8},
}

// TestGloStr verifies the Hamming code carried by a GLONASS navigation
// string (11 bytes, string bits 85..1 padded to a byte boundary).
func TestGloStr(buff []byte) bool {
	var n int
	var cs uint8
	for i := 0; i < 8; i++ {
		cs = 0
		for j := 0; j < 11; j++ {
			cs ^= gloXor8bit[buff[j]&gloHammingMask[i][j]]
		}
		if cs > 0 {
			n++
		}
	}
	return n == 0 || (n == 2 && cs > 0)
}

// DecodeGloStrEph reconstructs a GLONASS broadcast ephemeris from four
// concatenated navigation strings (1..4, 10 bytes/77 bits each, w/o
// Hamming code and time mark). geph.Tof must already hold the frame time
// (within half a day) before calling, since strings 1-4 alone don't carry
// a full calendar reference. geph.Frq is left at 0 (unknown).
func DecodeGloStrEph(buff []byte, geph *GEph) int {
	var g GEph
	var frn1, frn2, frn3, frn4, tkH, tkM, tkS, tb, slot int

	i := 1 /* string 1 */
	frn1 = int(GetBitU(buff, i, 4))
	i += 4 + 2 + 2
	tkH = int(GetBitU(buff, i, 5))
	i += 5
	tkM = int(GetBitU(buff, i, 6))
	i += 6
	tkS = int(GetBitU(buff, i, 1)) * 30
	i += 1
	g.Vel[0] = GetBitG(buff, i, 24) * P2_20 * 1e3
	i += 24
	g.Acc[0] = GetBitG(buff, i, 5) * P2_30 * 1e3
	i += 5
	g.Pos[0] = GetBitG(buff, i, 27) * P2_11 * 1e3
	i += 27 + 4

	/* string 2 */
	frn2 = int(GetBitU(buff, i, 4))
	i += 4
	g.Svh = int(GetBitU(buff, i, 1))
	i += 1 + 2 + 1
	tb = int(GetBitU(buff, i, 7))
	i += 7 + 5
	g.Vel[1] = GetBitG(buff, i, 24) * P2_20 * 1e3
	i += 24
	g.Acc[1] = GetBitG(buff, i, 5) * P2_30 * 1e3
	i += 5
	g.Pos[1] = GetBitG(buff, i, 27) * P2_11 * 1e3
	i += 27 + 4

	/* string 3 */
	frn3 = int(GetBitU(buff, i, 4))
	i += 4 + 1
	g.Gamn = GetBitG(buff, i, 11) * P2_40
	i += 11 + 1 + 2 + 1
	g.Vel[2] = GetBitG(buff, i, 24) * P2_20 * 1e3
	i += 24
	g.Acc[2] = GetBitG(buff, i, 5) * P2_30 * 1e3
	i += 5
	g.Pos[2] = GetBitG(buff, i, 27) * P2_11 * 1e3
	i += 27 + 4

	/* string 4 */
	frn4 = int(GetBitU(buff, i, 4))
	i += 4
	g.Taun = GetBitG(buff, i, 22) * P2_30
	i += 22
	g.DTaun = GetBitG(buff, i, 5) * P2_30
	i += 5
	g.Age = int(GetBitU(buff, i, 5))
	i += 5 + 14 + 1
	g.Sva = int(GetBitU(buff, i, 4))
	i += 4 + 3 + 11
	slot = int(GetBitU(buff, i, 5))

	if frn1 != 1 || frn2 != 2 || frn3 != 3 || frn4 != 4 {
		return 0
	}
	g.Sat = SatNo(SYS_GLO, slot)
	if g.Sat == 0 {
		return 0
	}
	g.Frq = 0
	g.Iode = tb

	tow, week := TimeToGps(GpsToUtc(geph.Tof))
	tod := math.Mod(tow, 86400.0)
	tow -= tod
	tof := float64(tkH)*3600.0 + float64(tkM)*60.0 + float64(tkS) - 10800.0 /* lt -> utc */
	switch {
	case tof < tod-43200.0:
		tof += 86400.0
	case tof > tod+43200.0:
		tof -= 86400.0
	}
	g.Tof = UtcToGps(GpsToTime(week, tow+tof))

	toe := float64(tb)*900.0 - 10800.0 /* lt -> utc */
	switch {
	case toe < tod-43200.0:
		toe += 86400.0
	case toe > tod+43200.0:
		toe -= 86400.0
	}
	g.Toe = UtcToGps(GpsToTime(week, tow+toe))
	*geph = g
	return 1
}

// DecodeGloStrUtc extracts GLONASS UTC offset parameters from string 5:
// utc[0] from the 32-bit tau_C field, utc[1] from the 22-bit field that
// follows it; utc[2..7] are set to zero.
func DecodeGloStrUtc(buff []byte, utc []float64) int {
	i := 1 + 80*4 /* string 5 */
	if GetBitU(buff, i, 4) != 5 {
		return 0
	}
	i += 4 + 11
	utc[0] = float64(GetBits(buff, i, 32)) * P2_31
	i += 32 + 1 + 6
	utc[1] = float64(GetBits(buff, i, 22)) * P2_30
	for k := 2; k < 8; k++ {
		utc[k] = 0.0
	}
	return 1
}

// DecodeGloStr decodes a full GLONASS navigation superframe (strings 1-5),
// updating whichever of geph/utc are non-nil. geph.Tof must be primed with
// the receiver's current frame time before calling.
func DecodeGloStr(buff []byte, geph *GEph, utc []float64) int {
	if geph != nil && DecodeGloStrEph(buff, geph) == 0 {
		return 0
	}
	if utc != nil && DecodeGloStrUtc(buff, utc) == 0 {
		return 0
	}
	return 1
}
