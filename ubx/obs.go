package ubx

import (
	"math"

	"github.com/GHolk/RTKLIB/gnss"
)

const (
	lliSlip  = gnss.LLI_SLIP
	lliHalfC = gnss.LLI_HALFC
)

// Observation is one satellite's merged measurement record for a single
// epoch: per-slot pseudorange/carrier-phase/Doppler/SNR/LLI/code, indexed
// 0..NFREQ_NEXOBS-1 as described in §3's data model.
type Observation struct {
	Time gnss.Time
	Sat  int
	Rcv  int
	P    [gnss.NFREQ_NEXOBS]float64
	L    [gnss.NFREQ_NEXOBS]float64
	D    [gnss.NFREQ_NEXOBS]float64
	SNR  [gnss.NFREQ_NEXOBS]uint16
	LLI  [gnss.NFREQ_NEXOBS]uint8
	Code [gnss.NFREQ_NEXOBS]uint8
}

// ObservationBatch is an ordered, common-time set of Observations.
type ObservationBatch struct {
	Data [MAXOBS]Observation
	N    int
	Flag int
}

// ubxSys maps a UBX gnssId to the gnss package's constellation bitmask.
func ubxSys(gnssID int) int {
	switch gnssID {
	case 0:
		return gnss.SYS_GPS
	case 1:
		return gnss.SYS_SBS
	case 2:
		return gnss.SYS_GAL
	case 3:
		return gnss.SYS_CMP
	case 5:
		return gnss.SYS_QZS
	case 6:
		return gnss.SYS_GLO
	}
	return 0
}

// ubxSig maps a (constellation, sigId) pair to an observation code, per
// §4.4's signal table.
func ubxSig(sys, sigID int) int {
	switch sys {
	case gnss.SYS_GPS, gnss.SYS_QZS:
		switch sigID {
		case 0:
			return gnss.CODE_L1C
		case 3:
			return gnss.CODE_L2L
		case 4:
			return gnss.CODE_L2S
		}
	case gnss.SYS_GLO:
		switch sigID {
		case 0:
			return gnss.CODE_L1C
		case 2:
			return gnss.CODE_L2C
		}
	case gnss.SYS_GAL:
		switch sigID {
		case 0:
			return gnss.CODE_L1C
		case 1:
			return gnss.CODE_L1B
		case 5:
			return gnss.CODE_L7I
		case 6:
			return gnss.CODE_L7Q
		}
	case gnss.SYS_CMP:
		switch sigID {
		case 0, 1:
			return gnss.CODE_L2I
		case 2, 3:
			return gnss.CODE_L7I
		}
	case gnss.SYS_SBS:
		return gnss.CODE_L1C
	}
	return gnss.CODE_NONE
}

// slotOf places L1/E1/B1 codes at slot 1 and L2/E5b/B2 codes at slot 2, per
// §4.4's slot table. Multiple codes sharing a slot let the last decode win.
func slotOf(code int) int {
	switch code {
	case gnss.CODE_L1C, gnss.CODE_L1B:
		return 1
	case gnss.CODE_L2S, gnss.CODE_L2L, gnss.CODE_L2C, gnss.CODE_L7I, gnss.CODE_L7Q, gnss.CODE_L2I, gnss.CODE_L2Q:
		return 2
	}
	return 0
}

// findOrAppend returns the index in batch.Data of the observation for sat,
// appending a zeroed record if this is the first signal seen for it this
// epoch.
func findOrAppend(batch *ObservationBatch, t gnss.Time, sat int) int {
	for j := 0; j < batch.N; j++ {
		if batch.Data[j].Sat == sat {
			return j
		}
	}
	j := batch.N
	batch.Data[j] = Observation{Time: t, Sat: sat}
	for k := range batch.Data[j].Code {
		batch.Data[j].Code[k] = gnss.CODE_NONE
	}
	batch.N++
	return j
}

// decodeRxmRawx decodes UBX-RXM-RAWX (multi-GNSS raw measurements, C4).
func (d *Decoder) decodeRxmRawx() DecodeResult {
	p := 6
	if d.flen < 24 {
		Trace(2, "rxmrawx length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	tow := R8L(d.buff[p:])
	week := int(U2L(d.buff[p+8:]))
	nmeas := int(U1(d.buff[p+11:]))
	ver := int(U1(d.buff[p+13:]))

	if d.flen < 24+32*nmeas {
		Trace(2, "rxmrawx length error: len=%d nmeas=%d\n", d.flen, nmeas)
		return DecodeResult{Kind: KindError}
	}
	if week == 0 {
		Trace(3, "rxmrawx week=0\n")
		return DecodeResult{}
	}
	t := gnss.GpsToTime(week, tow)

	toff := 0.0
	if d.opt.Tadj > 0.0 {
		tn, _ := gnss.TimeToGps(t)
		tn /= d.opt.Tadj
		toff = (tn - math.Floor(tn+0.5)) * d.opt.Tadj
		t = gnss.TimeAdd(t, -toff)
	}

	var batch ObservationBatch
	p += 16
	for i := 0; i < nmeas && batch.N < MAXOBS; i, p = i+1, p+32 {
		P := R8L(d.buff[p:])
		L := R8L(d.buff[p+8:])
		D := float64(R4L(d.buff[p+16:]))
		gnssID := int(U1(d.buff[p+20:]))
		svID := int(U1(d.buff[p+21:]))
		sigID := int(U1(d.buff[p+22:]))
		freqID := int(U1(d.buff[p+23:]))
		lockt := int(U2L(d.buff[p+24:]))
		cn0 := int(U1(d.buff[p+26:]))
		cpstd := int(U1(d.buff[p+28:])) & 15
		tstat := int(U1(d.buff[p+30:]))

		if tstat&1 == 0 {
			P = 0.0
		}
		if tstat&2 == 0 || L == -0.5 || cpstd > d.opt.MaxStdCP {
			L = 0.0
		}

		sys := ubxSys(gnssID)
		if sys == 0 {
			Trace(2, "rxmrawx: unknown gnss=%d\n", gnssID)
			continue
		}
		prn := svID
		if sys == gnss.SYS_QZS {
			prn += 192
		}
		sat := gnss.SatNo(sys, prn)
		if sat == 0 {
			if sys == gnss.SYS_GLO && prn == 255 {
				continue
			}
			Trace(2, "rxmrawx: bad sat sys=%d prn=%d\n", sys, prn)
			continue
		}

		var code int
		if ver >= 1 {
			code = ubxSig(sys, sigID)
		} else if sys == gnss.SYS_CMP {
			code = gnss.CODE_L2I
		} else {
			code = gnss.CODE_L1C
		}
		slot := slotOf(code)
		if slot == 0 {
			Trace(2, "rxmrawx: unmapped code sat=%d code=%d\n", sat, code)
			continue
		}

		if toff != 0.0 {
			P -= toff * gnss.CLIGHT
			if L != 0.0 {
				fcn := freqID - 7
				L -= toff * gnss.CodeToFreq(sys, code, fcn)
			}
		}

		halfValid := tstat&4 != 0
		if sys == gnss.SYS_SBS {
			halfValid = lockt > 8000
		}
		halfNow := uint8(0)
		if tstat&8 != 0 {
			halfNow = 1
		}

		si, sk := sat-1, slot
		slip := lockt == 0 ||
			float64(lockt)*1e-3 < d.lockTime[si][sk] ||
			halfNow != d.halfC[si][sk]
		if d.opt.StdSlip > 0 && cpstd >= d.opt.StdSlip {
			slip = true
		}
		if slip {
			d.lockFlag[si][sk] = 1
		}
		d.lockTime[si][sk] = float64(lockt) * 1e-3
		d.halfC[si][sk] = halfNow

		var lli uint8
		if L != 0.0 {
			if d.lockFlag[si][sk] != 0 {
				lli |= lliSlip
			}
			if !halfValid {
				lli |= lliHalfC
			}
			d.lockFlag[si][sk] = 0
		}

		j := findOrAppend(&batch, t, sat)
		batch.Data[j].L[slot] = L
		batch.Data[j].P[slot] = P
		batch.Data[j].D[slot] = D
		batch.Data[j].SNR[slot] = uint16(float64(cn0)/gnss.SNR_UNIT + 0.5)
		batch.Data[j].LLI[slot] = lli
		batch.Data[j].Code[slot] = uint8(code)
	}
	d.Time = t
	d.Obs = batch
	return DecodeResult{Kind: KindObs}
}

// decodeRxmRaw decodes UBX-RXM-RAW (legacy single-constellation raw
// measurements, C4). Only GPS and SBAS are decoded: a PRN of MINPRNSBS or
// above is taken as SBAS, any other as GPS.
func (d *Decoder) decodeRxmRaw() DecodeResult {
	p := 6
	if d.flen < 12 {
		Trace(2, "rxmraw length error: len=%d\n", d.flen)
		return DecodeResult{Kind: KindError}
	}
	tow := R8L(d.buff[p:])
	week := int(I2L(d.buff[p+8:]))
	nmeas := int(I1(d.buff[p+10:]))

	if week == 0 {
		Trace(3, "rxmraw week=0\n")
		return DecodeResult{}
	}
	if d.flen < 12+24*nmeas {
		Trace(2, "rxmraw length error: len=%d nmeas=%d\n", d.flen, nmeas)
		return DecodeResult{Kind: KindError}
	}
	t := gnss.GpsToTime(week, tow)

	toff := 0.0
	if d.opt.Tadj > 0.0 {
		tn, _ := gnss.TimeToGps(t)
		tn /= d.opt.Tadj
		toff = (tn - math.Floor(tn+0.5)) * d.opt.Tadj
		t = gnss.TimeAdd(t, -toff)
	}

	var batch ObservationBatch
	p += 12
	for i := 0; i < nmeas && batch.N < MAXOBS; i, p = i+1, p+24 {
		L := R8L(d.buff[p:])
		P := R8L(d.buff[p+8:])
		D := float64(R4L(d.buff[p+16:]))
		prn := int(U1(d.buff[p+20:]))

		sys := gnss.SYS_GPS
		if prn >= gnss.MINPRNSBS {
			sys = gnss.SYS_SBS
		}
		sat := gnss.SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rxmraw: bad prn=%d\n", prn)
			continue
		}
		if toff != 0.0 {
			P -= toff * gnss.CLIGHT
			if L != 0.0 {
				L -= toff * gnss.FREQ1
			}
		}
		if d.opt.InvCP {
			L = -L
		}
		j := findOrAppend(&batch, t, sat)
		batch.Data[j].P[0] = P
		batch.Data[j].L[0] = L
		batch.Data[j].D[0] = D
		batch.Data[j].Code[0] = gnss.CODE_L1C
	}
	d.Time = t
	d.Obs = batch
	return DecodeResult{Kind: KindObs}
}
