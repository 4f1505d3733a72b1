package ubx

import "github.com/GHolk/RTKLIB/gnss"

// decodeNavSol decodes UBX-NAV-SOL (C5). It only ever refines the
// decoder's time base; it never yields an observation or ephemeris.
func (d *Decoder) decodeNavSol() DecodeResult {
	p := 6
	if d.flen < 24 {
		Trace(2, "navsol length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	itow := int(U4L(d.buff[p:]))
	ftow := int(I4L(d.buff[p+4:]))
	week := int(U2L(d.buff[p+8:]))
	if U1(d.buff[p+11:])&0x0C == 0x0C {
		d.Time = gnss.GpsToTime(week, float64(itow)*1e-3+float64(ftow)*1e-9)
	}
	return DecodeResult{}
}

// decodeNavTime decodes UBX-NAV-TIMEGPS (C5).
func (d *Decoder) decodeNavTime() DecodeResult {
	p := 6
	if d.flen < 16 {
		Trace(2, "navtime length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	itow := int(U4L(d.buff[p:]))
	ftow := int(I4L(d.buff[p+4:]))
	week := int(U2L(d.buff[p+8:]))
	if U1(d.buff[p+11:])&0x03 == 0x03 {
		d.Time = gnss.GpsToTime(week, float64(itow)*1e-3+float64(ftow)*1e-9)
	}
	return DecodeResult{}
}
