package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_navglioutest_hamming_allzero_passes(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 11)
	assert.True(gnss.TestGloStr(buff))
}

func Test_navglioutest_decode_eph_strings(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 40)

	// string 1: frn=1, slot number lives in string 4
	gnss.SetBitU(buff, 1, 4, 1)
	// string 2: frn=2
	gnss.SetBitU(buff, 81, 4, 2)
	// string 3: frn=3
	gnss.SetBitU(buff, 161, 4, 3)
	// string 4: frn=4, slot=12 in the trailing field DecodeGloStrEph reads
	gnss.SetBitU(buff, 241, 4, 4)
	gnss.SetBitU(buff, 310, 5, 12)

	var geph gnss.GEph
	geph.Tof = gnss.GpsToTime(2200, 43200.0)
	ret := gnss.DecodeGloStrEph(buff, &geph)
	assert.Equal(1, ret)
	assert.Equal(gnss.SatNo(gnss.SYS_GLO, 12), geph.Sat)
	assert.Zero(geph.Frq)
}

func Test_navglioutest_decode_eph_rejects_bad_frame_numbers(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 40)
	gnss.SetBitU(buff, 1, 4, 1)
	gnss.SetBitU(buff, 81, 4, 3) // wrong, expected 2

	var geph gnss.GEph
	geph.Tof = gnss.GpsToTime(2200, 0.0)
	ret := gnss.DecodeGloStrEph(buff, &geph)
	assert.Zero(ret)
}
