// Package gnss provides the multi-constellation GNSS domain primitives that
// the ubx decoder treats as a stable, externally-owned contract: satellite
// numbering, signal/code enumeration, time conversions, bit-packing helpers,
// CRC-24Q, and the per-constellation navigation-message decoders.
package gnss

const (
	PI     float64 = 3.1415926535897932
	D2R            = PI / 180.0
	R2D            = 180.0 / PI
	CLIGHT float64 = 299792458.0    /* speed of light (m/s) */
	SC2RAD float64 = 3.1415926535898 /* semi-circle to radian (IS-GPS) */
)

/* carrier frequencies (Hz) */
const (
	FREQ1     float64 = 1.57542e9  /* L1/E1/B1C */
	FREQ2     float64 = 1.22760e9  /* L2 */
	FREQ5     float64 = 1.17645e9  /* L5/E5a/B2a */
	FREQ6     float64 = 1.27875e9  /* E6/L6 */
	FREQ7     float64 = 1.20714e9  /* E5b/B2I/B2b */
	FREQ8     float64 = 1.191795e9 /* E5a+b */
	FREQ9     float64 = 2.492028e9 /* S */
	FREQ1_GLO float64 = 1.60200e9  /* GLONASS G1 base */
	DFRQ1_GLO float64 = 0.56250e6  /* GLONASS G1 bias per FCN */
	FREQ2_GLO float64 = 1.24600e9  /* GLONASS G2 base */
	DFRQ2_GLO float64 = 0.43750e6  /* GLONASS G2 bias per FCN */
	FREQ1_CMP float64 = 1.561098e9 /* BDS B1I */
	FREQ2_CMP float64 = 1.20714e9  /* BDS B2I/B2b */
	FREQ3_CMP float64 = 1.26852e9  /* BDS B3 */
)

/* navigation system bitmask */
const (
	SYS_NONE = 0x00
	SYS_GPS  = 0x01
	SYS_SBS  = 0x02
	SYS_GLO  = 0x04
	SYS_GAL  = 0x08
	SYS_QZS  = 0x10
	SYS_CMP  = 0x20
	SYS_IRN  = 0x40
	SYS_LEO  = 0x80
	SYS_ALL  = 0xFF
)

const (
	MINPRNGPS = 1
	MAXPRNGPS = 32
	NSATGPS   = MAXPRNGPS - MINPRNGPS + 1

	MINPRNGLO = 1
	MAXPRNGLO = 27
	NSATGLO   = MAXPRNGLO - MINPRNGLO + 1

	MINPRNGAL = 1
	MAXPRNGAL = 36
	NSATGAL   = MAXPRNGAL - MINPRNGAL + 1

	MINPRNQZS = 193
	MAXPRNQZS = 202
	NSATQZS   = MAXPRNQZS - MINPRNQZS + 1

	MINPRNCMP = 1
	MAXPRNCMP = 63
	NSATCMP   = MAXPRNCMP - MINPRNCMP + 1

	MINPRNIRN = 1
	MAXPRNIRN = 14
	NSATIRN   = MAXPRNIRN - MINPRNIRN + 1

	MINPRNLEO = 1
	MAXPRNLEO = 10
	NSATLEO   = MAXPRNLEO - MINPRNLEO + 1

	MINPRNSBS = 120
	MAXPRNSBS = 158
	NSATSBS   = MAXPRNSBS - MINPRNSBS + 1

	MAXSAT = NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + NSATIRN + NSATLEO + NSATSBS
)

const (
	NFREQ        = 3    /* number of carrier frequencies tracked per satellite */
	NEXOBS       = 0    /* number of extended obs code slots */
	NFREQ_NEXOBS = NFREQ + NEXOBS
	MAXOBS       = 96    /* max observations in one epoch */
	MAXRAWLEN    = 16384 /* max length of a receiver raw message */
	SNR_UNIT     = 0.001
)

/* RINEX-style observation code enumeration (subset in active use) */
const (
	CODE_NONE = 0
	CODE_L1C  = 1  /* L1C/A, G1C/A, E1C */
	CODE_L1B  = 11 /* E1B */
	CODE_L2S  = 16 /* L2C(M) */
	CODE_L2L  = 17 /* L2C(L) */
	CODE_L2C  = 14 /* G2C/A */
	CODE_L5I  = 24
	CODE_L5Q  = 25
	CODE_L7I  = 27 /* E5bI, B2bI */
	CODE_L7Q  = 28 /* E5bQ, B2bQ */
	CODE_L2I  = 40 /* B1I (RINEX 3.04 rename) */
	CODE_L2Q  = 41
	MAXCODE   = 68
)

/* loss-of-lock indicator bits */
const (
	LLI_SLIP  = 0x01 /* cycle slip */
	LLI_HALFC = 0x02 /* half-cycle not resolved */
	LLI_BOCTRK = 0x04
	LLI_HALFA = 0x40 /* half-cycle added */
	LLI_HALFS = 0x80 /* half-cycle subtracted */
)

/* negative powers of two used by the fixed-point ephemeris field decoders */
const (
	P2_5  = 0.03125
	P2_6  = 0.015625
	P2_8  = 0.00390625
	P2_10 = 0.0009765625
	P2_15 = 3.051757812500000e-05
	P2_11 = 4.882812500000000e-04
	P2_19 = 1.907348632812500e-06
	P2_20 = 9.536743164062500e-07
	P2_21 = 4.768371582031250e-07
	P2_23 = 1.192092895507810e-07
	P2_24 = 5.960464477539063e-08
	P2_27 = 7.450580596923828e-09
	P2_28 = 3.725290298461914e-09
	P2_29 = 1.862645149230957e-09
	P2_30 = 9.313225746154785e-10
	P2_31 = 4.656612873077393e-10
	P2_32 = 2.328306436538696e-10
	P2_33 = 1.164153218269348e-10
	P2_34 = 5.820766091346740e-11
	P2_35 = 2.910383045673370e-11
	P2_38 = 3.637978807091710e-12
	P2_39 = 1.818989403545856e-12
	P2_40 = 9.094947017729280e-13
	P2_43 = 1.136868377216160e-13
	P2_46 = 1.421085471520200e-14
	P2_48 = 3.552713678800501e-15
	P2_50 = 8.881784197001252e-16
	P2_55 = 2.775557561562891e-17
	P2_59 = 1.734723475976810e-18
	P2_66 = 1.355252715606880e-20
	P2_68 = 3.388131789017201e-21
)

/* positive powers of two used by BDS iono/UTC parameter scaling */
const (
	P2P11 = 2048.0
	P2P12 = 4096.0
	P2P14 = 16384.0
	P2P15 = 32768.0
	P2P16 = 65536.0
)
