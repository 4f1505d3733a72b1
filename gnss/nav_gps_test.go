package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

// buildLNAVSubframes hand-packs a consistent GPS LNAV subframe 1/2/3 triple
// at the bit offsets DecodeGpsLNAV expects (subframe k at byte offset
// (k-1)*30), so the roundtrip through SetBitU/GetBitU exercises the same
// field layout the decoder reads.
func buildLNAVSubframes(sqrtARaw uint32) []byte {
	buff := make([]byte, 96)

	// subframe 1
	gnss.SetBitU(buff, 24, 17, 1000) // tow1 = 1000*6 = 6000
	gnss.SetBitU(buff, 43, 3, 1)     // id1
	gnss.SetBitU(buff, 48, 10, 345)  // week
	gnss.SetBitU(buff, 58, 2, 1)     // code
	gnss.SetBitU(buff, 60, 4, 3)     // sva
	gnss.SetBitU(buff, 64, 6, 0)     // svh
	gnss.SetBitU(buff, 70, 2, 2)     // iodc0
	gnss.SetBitU(buff, 72, 1, 0)     // flag
	gnss.SetBits(buff, 160, 8, -10)  // tgd
	gnss.SetBitU(buff, 168, 8, 100)  // iodc1
	gnss.SetBitU(buff, 176, 16, 200) // toc = 200*16 = 3200
	gnss.SetBits(buff, 192, 8, 0)    // f2
	gnss.SetBits(buff, 200, 16, 0)   // f1
	gnss.SetBits(buff, 216, 22, 0)   // f0

	// subframe 2
	gnss.SetBitU(buff, 283, 3, 2)         // id2
	gnss.SetBitU(buff, 288, 8, 100)       // iode
	gnss.SetBits(buff, 296, 16, 0)        // crs
	gnss.SetBits(buff, 312, 16, 0)        // deln
	gnss.SetBits(buff, 328, 32, 0)        // m0
	gnss.SetBits(buff, 360, 16, 0)        // cuc
	gnss.SetBitU(buff, 376, 32, 0)        // e
	gnss.SetBits(buff, 408, 16, 0)        // cus
	gnss.SetBitU(buff, 424, 32, sqrtARaw) // sqrtA
	gnss.SetBitU(buff, 456, 16, 300)      // toes = 300*16 = 4800
	gnss.SetBitU(buff, 472, 1, 1)         // fit flag -> Fit=0

	// subframe 3
	gnss.SetBitU(buff, 523, 3, 3)  // id3
	gnss.SetBits(buff, 528, 16, 0) // cic
	gnss.SetBits(buff, 544, 32, 0) // omg0
	gnss.SetBits(buff, 576, 16, 0) // cis
	gnss.SetBits(buff, 592, 32, 0) // i0
	gnss.SetBits(buff, 624, 16, 0) // crc
	gnss.SetBits(buff, 640, 32, 0) // omg
	gnss.SetBits(buff, 672, 24, 0) // omgd
	gnss.SetBitU(buff, 696, 8, 100) // iode (subframe 3 copy)
	gnss.SetBits(buff, 704, 14, 0)  // idot

	return buff
}

func Test_navgpsutest_lnav_decode(t *testing.T) {
	assert := assert.New(t)
	sqrtARaw := uint32(123456789)
	buff := buildLNAVSubframes(sqrtARaw)

	var eph gnss.Eph
	ret := gnss.DecodeGpsLNAV(buff, 345, &eph)
	assert.Equal(1, ret)
	// AdjGpsWeek raises a reference week below 1560 to 1560, so the 10-bit
	// week 345 resolves to 345+1024.
	wantWeek := 345 + 1024
	assert.Equal(wantWeek, eph.Week)
	assert.Equal(100, eph.Iode)
	assert.Equal(612, eph.Iodc)
	assert.InDelta(-10.0*gnss.P2_31, eph.Tgd[0], 1e-20)

	wantSqrtA := float64(sqrtARaw) * gnss.P2_19
	assert.InDelta(wantSqrtA*wantSqrtA, eph.A, 1e-3)

	wantToe := gnss.GpsToTime(wantWeek, 4800.0)
	wantToc := gnss.GpsToTime(wantWeek, 3200.0)
	assert.InDelta(0.0, gnss.TimeDiff(eph.Toe, wantToe), 1e-9)
	assert.InDelta(0.0, gnss.TimeDiff(eph.Toc, wantToc), 1e-9)
}

func Test_navgpsutest_lnav_rejects_mismatched_ids(t *testing.T) {
	assert := assert.New(t)
	buff := buildLNAVSubframes(1)
	gnss.SetBitU(buff, 43, 3, 2) // corrupt id1

	var eph gnss.Eph
	ret := gnss.DecodeGpsLNAV(buff, 345, &eph)
	assert.Zero(ret)
}

func Test_navgpsutest_lnav_rejects_iode_mismatch(t *testing.T) {
	assert := assert.New(t)
	buff := buildLNAVSubframes(1)
	gnss.SetBitU(buff, 288, 8, 5) // subframe-2 iode no longer matches subframe-3/1

	var eph gnss.Eph
	ret := gnss.DecodeGpsLNAV(buff, 345, &eph)
	assert.Zero(ret)
}

func Test_navgpsutest_ion_utc_absent(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 150)
	var ion, utc [8]float64
	assert.Zero(gnss.DecodeGpsIon(buff, ion[:]))
	assert.Zero(gnss.DecodeGpsUtc(buff, utc[:]))
}
