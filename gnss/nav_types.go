package gnss

// Eph is a GPS/QZSS/Galileo/BeiDou broadcast ephemeris record.
type Eph struct {
	Sat        int /* satellite number */
	Iode, Iodc int
	Sva        int /* SV accuracy (URA index) */
	Svh        int /* SV health (0:ok) */
	Week       int
	Code       int
	Flag       int
	Toe, Toc   Time
	Ttr        Time

	A, E, I0, OMG0, Omg, M0, Deln, OMGd, Idot float64
	Crc, Crs, Cuc, Cus, Cic, Cis              float64
	Toes                                      float64
	Fit                                       float64
	F0, F1, F2                                float64
	Tgd                                       [6]float64
}

// GEph is a GLONASS broadcast ephemeris record.
type GEph struct {
	Sat           int
	Iode          int /* 0-6 bit of tb field */
	Frq           int /* frequency channel number, -7..+6 */
	Svh, Sva, Age int
	Toe, Tof      Time
	Pos, Vel, Acc [3]float64
	Taun, Gamn    float64
	DTaun         float64
}

// SbsMsg is one decoded SBAS message: its 226 data bits (the CRC is not
// stored).
type SbsMsg struct {
	Week, Tow int
	Prn, Rcv  uint8
	Msg       [29]uint8 /* 226 bits, zero-padded */
}

// EphChanged reports whether two GPS/QZSS/Galileo/BeiDou ephemerides
// represent distinct broadcast issues, per the (iode,iodc,toe,toc) rule
// the navigation decoders use to gate republication.
func EphChanged(a, b *Eph) bool {
	return a.Iode != b.Iode || a.Iodc != b.Iodc ||
		TimeDiff(a.Toe, b.Toe) != 0 || TimeDiff(a.Toc, b.Toc) != 0
}

// GEphChanged is the GLONASS analog of EphChanged: GLONASS carries no iodc,
// so iode and toe alone distinguish broadcast issues.
func GEphChanged(a, b *GEph) bool {
	return a.Iode != b.Iode || TimeDiff(a.Toe, b.Toe) != 0
}
