package ubx

import (
	"math"

	"github.com/GHolk/RTKLIB/gnss"
)

func roundI(x float64) int { return int(math.Floor(x + 0.5)) }

// reconcileTrkTime derives the shared epoch time for a TRK-MEAS/TRK-D5
// frame from the largest per-channel transmission time, adding 0.08 s and
// rounding to the nearest 100 ms, then resolving the ambiguous GPS week by staying within
// half a week of the decoder's current time base, per §4.4's undocumented
// TRK-* paragraph.
func (d *Decoder) reconcileTrkTime(tr float64) gnss.Time {
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1
	t, week := gnss.TimeToGps(d.Time)
	switch {
	case tr < t-302400.0:
		week++
	case tr > t+302400.0:
		week--
	}
	return gnss.GpsToTime(week, tr)
}

// travelTime resolves a satellite's signal travel time from its
// transmission time ts and the shared receive time tr, wrapping into
// [-302400, 302400) seconds (half a GPS week either side).
func travelTime(tr, ts float64) float64 {
	tau := tr - ts
	switch {
	case tau < -302400.0:
		tau += 604800.0
	case tau > 302400.0:
		tau -= 604800.0
	}
	return tau
}

func glonassTxTime(t, utcGpst float64) float64 { return t - 10800.0 - utcGpst }

// decodeTrkMeas decodes the undocumented UBX-TRK-MEAS message (single
// L1/G1/E1/B1 channel per satellite; C4). Requires a time base already
// established by NAV-SOL/NAV-TIMEGPS.
func (d *Decoder) decodeTrkMeas() DecodeResult {
	if d.Time.Sec == 0 && d.Time.Frac == 0 {
		return DecodeResult{}
	}
	p := 6
	nch := int(U1(d.buff[p+2:]))
	if d.flen < 112+nch*56 {
		Trace(2, "trkmeas length error: len=%d nch=%d\n", d.flen, nch)
		return DecodeResult{Kind: KindError}
	}

	tr := -1.0
	for i, q := 0, p+110; i < nch; i, q = i+1, q+56 {
		if U1(d.buff[q+1:]) < 4 || ubxSys(int(U1(d.buff[q+4:]))) != gnss.SYS_GPS {
			continue
		}
		if t := I8L(d.buff[q+24:]) * gnss.P2_32 / 1000.0; t > tr {
			tr = t
		}
	}
	if tr < 0.0 {
		return DecodeResult{}
	}
	time := d.reconcileTrkTime(tr)
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1
	utcOff := gnss.TimeDiff(gnss.GpsToUtc(time), time)

	var batch ObservationBatch
	for i, q := 0, p+110; i < nch && batch.N < MAXOBS; i, q = i+1, q+56 {
		qi := int(U1(d.buff[q+1:]))
		if qi < 4 || qi > 7 {
			continue
		}
		sys := ubxSys(int(U1(d.buff[q+4:])))
		if sys == 0 {
			Trace(2, "trkmeas: system error\n")
			continue
		}
		prn := int(U1(d.buff[q+5:]))
		if sys == gnss.SYS_QZS {
			prn += 192
		}
		sat := gnss.SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "trkmeas sat number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		ts := I8L(d.buff[q+24:]) * gnss.P2_32 / 1000.0
		switch sys {
		case gnss.SYS_CMP:
			ts += 14.0
		case gnss.SYS_GLO:
			ts = glonassTxTime(ts, utcOff)
		}
		tau := travelTime(tr, ts)

		flag := int(U1(d.buff[q+8:]))
		lock2 := int(U1(d.buff[q+17:]))
		snr := float64(U2L(d.buff[q+20:])) / 256.0
		var adr float64
		if flag&0x40 > 0 {
			adr = I8L(d.buff[q+32:])*gnss.P2_32 + 0.5
		} else {
			adr = I8L(d.buff[q+32:]) * gnss.P2_32
		}
		dop := float64(I4L(d.buff[q+40:])) * gnss.P2_10 * 10.0

		si := sat - 1
		if lock2 == 0 || float64(lock2) < d.lockTime[si][0] {
			d.lockFlag[si][0] = 1
		}
		d.lockTime[si][0] = float64(lock2)

		if flag&0x20 == 0 {
			continue
		}

		j := findOrAppend(&batch, time, sat)
		batch.Data[j].P[0] = tau * gnss.CLIGHT
		batch.Data[j].L[0] = -adr
		batch.Data[j].D[0] = dop
		batch.Data[j].SNR[0] = uint16(snr/gnss.SNR_UNIT + 0.5)
		if sys == gnss.SYS_CMP {
			batch.Data[j].Code[0] = gnss.CODE_L2I
		} else {
			batch.Data[j].Code[0] = gnss.CODE_L1C
		}
		var lli uint8
		if d.lockFlag[si][0] > 0 {
			lli = lliSlip
		}
		if sys == gnss.SYS_SBS {
			if lock2 <= 142 {
				lli |= lliHalfC
			}
		} else if flag&0x80 == 0 {
			lli |= lliHalfC
		}
		batch.Data[j].LLI[0] = lli
		d.lockFlag[si][0] = 0
	}
	if batch.N == 0 {
		return DecodeResult{}
	}
	d.Time = time
	d.Obs = batch
	return DecodeResult{Kind: KindObs}
}

// decodeTrkD5 decodes the undocumented UBX-TRK-D5 message, an earlier
// firmware generation's analog of TRK-MEAS with a channel layout that
// varies by the message's leading type byte (3, 6, or other).
func (d *Decoder) decodeTrkD5() DecodeResult {
	if d.Time.Sec == 0 && d.Time.Frac == 0 {
		return DecodeResult{}
	}
	p := 6
	utcOff := gnss.TimeDiff(gnss.GpsToUtc(d.Time), d.Time)

	ctype := int(U1(d.buff[p:]))
	var off, length int
	switch ctype {
	case 3:
		off, length = 86, 56
	case 6:
		off, length = 86, 64
	default:
		off, length = 78, 56
	}

	tr := -1.0
	for q := off; q < d.flen-2; q += length {
		qi := int(U1(d.buff[q+41:])) & 7
		if qi < 4 || qi > 7 {
			continue
		}
		t := I8L(d.buff[q:]) * gnss.P2_32 / 1000.0
		if ubxSys(int(U1(d.buff[q+56:]))) == gnss.SYS_GLO {
			t = glonassTxTime(t, utcOff)
		}
		if t > tr {
			tr = t
		}
	}
	if tr < 0.0 {
		return DecodeResult{}
	}
	time := d.reconcileTrkTime(tr)
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1

	var batch ObservationBatch
	for q := off; q < d.flen-2 && batch.N < MAXOBS; q += length {
		qi := int(U1(d.buff[q+41:])) & 7
		if qi < 4 || qi > 7 {
			continue
		}
		var sys, prn int
		if ctype == 6 {
			sys = ubxSys(int(U1(d.buff[q+56:])))
			if sys == 0 {
				Trace(2, "trkd5: system error\n")
				continue
			}
			prn = int(U1(d.buff[q+57:]))
			if sys == gnss.SYS_QZS {
				prn += 192
			}
		} else {
			prn = int(U1(d.buff[q+34:]))
			if prn < gnss.MINPRNSBS {
				sys = gnss.SYS_GPS
			} else {
				sys = gnss.SYS_SBS
			}
		}
		sat := gnss.SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "trkd5 sat number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		ts := I8L(d.buff[q:]) * gnss.P2_32 / 1000.0
		if sys == gnss.SYS_GLO {
			ts = glonassTxTime(ts, utcOff)
		}
		tau := travelTime(tr, ts)

		flag := int(U1(d.buff[q+54:]))
		var adr float64
		if qi >= 6 {
			adr = I8L(d.buff[q+8:]) * gnss.P2_32
		}
		if flag&0x01 == 0 {
			adr += 0.5
		}
		dop := float64(I4L(d.buff[q+16:])) * gnss.P2_10 / 4.0
		snr := float64(U2L(d.buff[q+32:])) / 256.0

		si := sat - 1
		if snr <= 10.0 {
			d.lockFlag[si][0] = 1
		}
		if flag&0x08 == 0 {
			continue
		}

		j := findOrAppend(&batch, time, sat)
		batch.Data[j].P[0] = tau * gnss.CLIGHT
		batch.Data[j].L[0] = -adr
		batch.Data[j].D[0] = dop
		batch.Data[j].SNR[0] = uint16(snr/gnss.SNR_UNIT + 0.5)
		if sys == gnss.SYS_CMP {
			batch.Data[j].Code[0] = gnss.CODE_L2I
		} else {
			batch.Data[j].Code[0] = gnss.CODE_L1C
		}
		if d.lockFlag[si][0] > 0 {
			batch.Data[j].LLI[0] = lliSlip
		}
		d.lockFlag[si][0] = 0
	}
	if batch.N == 0 {
		return DecodeResult{}
	}
	d.Time = time
	d.Obs = batch
	return DecodeResult{Kind: KindObs}
}
