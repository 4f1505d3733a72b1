package ubx

import (
	"strconv"
	"strings"

	"github.com/GHolk/RTKLIB/gnss"
)

const (
	sync1 = 0xB5
	sync2 = 0x62

	cfgClass = 0x06

	// MAXRAWLEN bounds the largest frame this decoder accepts; a declared
	// length beyond it forces a resync rather than a buffer grow, matching
	// the fixed-size wire buffer the receiver itself imposes.
	MAXRAWLEN = 16384
	MAXOBS    = gnss.MAXOBS

	msgNavSol   = 0x0106
	msgNavTime  = 0x0120
	msgRxmRaw   = 0x0210
	msgRxmSfrb  = 0x0211
	msgRxmSfrbx = 0x0213
	msgRxmRawx  = 0x0215
	msgTrkD5    = 0x030A
	msgTrkMeas  = 0x0310
	msgTrkSfrbx = 0x030F
	msgTimTm2   = 0x0D03

	defaultMaxStdCP = 5
	defaultStdSlip  = 15
)

// Options holds the decoder's construction-time-parsed directives (§6);
// the options string itself is scanned exactly once, here, rather than
// re-scanned on every frame.
type Options struct {
	EphAll     bool
	InvCP      bool
	Tadj       float64 // 0 disables time-tag quantization
	MaxStdCP   int
	StdSlip    int
	GalFnav    bool
	TrkmAdj    int // parsed from -TRKM_ADJ=k; no decoder reads it, so no code-bias table is applied
}

func parseOptions(s string) Options {
	opt := Options{MaxStdCP: defaultMaxStdCP, StdSlip: defaultStdSlip}
	for _, tok := range strings.Fields(s) {
		switch {
		case tok == "-EPHALL":
			opt.EphAll = true
		case tok == "-INVCP":
			opt.InvCP = true
		case tok == "-GALFNAV":
			opt.GalFnav = true
		case strings.HasPrefix(tok, "-TADJ="):
			if v, err := strconv.ParseFloat(tok[len("-TADJ="):], 64); err == nil {
				opt.Tadj = v
			}
		case strings.HasPrefix(tok, "-MAX_STD_CP="):
			if v, err := strconv.Atoi(tok[len("-MAX_STD_CP="):]); err == nil {
				opt.MaxStdCP = v
			}
		case strings.HasPrefix(tok, "-STD_SLIP="):
			if v, err := strconv.Atoi(tok[len("-STD_SLIP="):]); err == nil {
				opt.StdSlip = v
			}
		case strings.HasPrefix(tok, "-TRKM_ADJ="):
			if v, err := strconv.Atoi(tok[len("-TRKM_ADJ="):]); err == nil {
				opt.TrkmAdj = v
			}
		}
	}
	return opt
}

// NavData holds the decoder's most recently decoded, per-satellite
// navigation state: broadcast ephemerides and the shared ionosphere/UTC
// parameter sets.
type NavData struct {
	Eph  [gnss.MAXSAT]gnss.Eph
	GEph [gnss.NSATGLO]gnss.GEph
	Ion  [8]float64
	Utc  [8]float64
}

// Decoder is the state object (C9): the streaming byte buffer, decoded
// observation/navigation outputs, and per-satellite bookkeeping needed to
// detect cycle slips and reassemble multi-frame navigation messages. It
// carries no mutex; callers needing concurrent access must serialize
// externally, matching the teacher's own single-threaded Raw type.
type Decoder struct {
	buff  [MAXRAWLEN]byte
	nbyte int
	flen  int

	Time gnss.Time

	Obs    ObservationBatch
	obsBuf ObservationBatch

	Nav NavData

	EphSat int
	EphSet int

	SbsMsg gnss.SbsMsg

	subFrm [gnss.MAXSAT][380]byte

	lockTime [gnss.MAXSAT][gnss.NFREQ_NEXOBS]float64
	halfC    [gnss.MAXSAT][gnss.NFREQ_NEXOBS]uint8
	lockFlag [gnss.MAXSAT][gnss.NFREQ_NEXOBS]uint8

	// trkLastTow/trkLastWeek are not written or read by any decoder; the
	// TRK-MEAS/TRK-D5 week reconciliation works from Time instead.
	trkLastTow  float64
	trkLastWeek int

	opt Options

	// EnableUndocumented gates the TRK-MEAS/TRK-D5/TRK-SFRBX decoders,
	// which have no vendor specification and are best-effort only.
	EnableUndocumented bool
}

// NewDecoder constructs a Decoder, parsing optString once per §9's Design
// Notes (never re-scanned per frame).
func NewDecoder(optString string) *Decoder {
	return &Decoder{opt: parseOptions(optString)}
}
