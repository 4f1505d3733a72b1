package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_satutest_roundtrip_each_system(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		sys, prn int
	}{
		{gnss.SYS_GPS, gnss.MINPRNGPS},
		{gnss.SYS_GPS, gnss.MAXPRNGPS},
		{gnss.SYS_GLO, gnss.MINPRNGLO},
		{gnss.SYS_GLO, gnss.MAXPRNGLO},
		{gnss.SYS_GAL, gnss.MINPRNGAL},
		{gnss.SYS_QZS, gnss.MINPRNQZS},
		{gnss.SYS_QZS, gnss.MAXPRNQZS},
		{gnss.SYS_CMP, gnss.MINPRNCMP},
		{gnss.SYS_CMP, gnss.MAXPRNCMP},
		{gnss.SYS_IRN, gnss.MINPRNIRN},
		{gnss.SYS_LEO, gnss.MINPRNLEO},
		{gnss.SYS_SBS, gnss.MINPRNSBS},
		{gnss.SYS_SBS, gnss.MAXPRNSBS},
	}
	for _, c := range cases {
		sat := gnss.SatNo(c.sys, c.prn)
		assert.NotZero(sat, "sys=%d prn=%d", c.sys, c.prn)
		sys, prn := gnss.SatSys(sat)
		assert.Equal(c.sys, sys)
		assert.Equal(c.prn, prn)
	}
	assert.Equal(gnss.MAXSAT, gnss.SatNo(gnss.SYS_SBS, gnss.MAXPRNSBS))
}

func Test_satutest_out_of_range(t *testing.T) {
	assert := assert.New(t)
	assert.Zero(gnss.SatNo(gnss.SYS_GPS, 0))
	assert.Zero(gnss.SatNo(gnss.SYS_GPS, gnss.MAXPRNGPS+1))
	assert.Zero(gnss.SatNo(gnss.SYS_SBS, gnss.MAXPRNSBS+1))

	sys, prn := gnss.SatSys(0)
	assert.Equal(gnss.SYS_NONE, sys)
	assert.Zero(prn)

	sys, prn = gnss.SatSys(gnss.MAXSAT + 1)
	assert.Equal(gnss.SYS_NONE, sys)
	assert.Zero(prn)
}
