package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_frequtest_idx_and_freq_agree(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		sys, code, idx int
		freq           float64
	}{
		{gnss.SYS_GPS, gnss.CODE_L1C, 0, gnss.FREQ1},
		{gnss.SYS_GPS, gnss.CODE_L2S, 1, gnss.FREQ2},
		{gnss.SYS_GPS, gnss.CODE_L5I, 2, gnss.FREQ5},
		{gnss.SYS_GAL, gnss.CODE_L1B, 0, gnss.FREQ1},
		{gnss.SYS_GAL, gnss.CODE_L7Q, 1, gnss.FREQ7},
		{gnss.SYS_CMP, gnss.CODE_L2I, 0, gnss.FREQ1_CMP},
		{gnss.SYS_CMP, gnss.CODE_L7I, 1, gnss.FREQ2_CMP},
	}
	for _, c := range cases {
		assert.Equal(c.idx, gnss.CodeToFreqIdx(c.sys, c.code))
		assert.Equal(c.freq, gnss.CodeToFreq(c.sys, c.code, 0))
	}
}

func Test_frequtest_glonass_fcn_bias(t *testing.T) {
	assert := assert.New(t)
	f0 := gnss.CodeToFreq(gnss.SYS_GLO, gnss.CODE_L1C, 0)
	f1 := gnss.CodeToFreq(gnss.SYS_GLO, gnss.CODE_L1C, 1)
	assert.Equal(gnss.FREQ1_GLO, f0)
	assert.InDelta(gnss.DFRQ1_GLO, f1-f0, 1e-9)
}

func Test_frequtest_unmapped(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-1, gnss.CodeToFreqIdx(gnss.SYS_GPS, gnss.CODE_NONE))
	assert.Zero(gnss.CodeToFreq(gnss.SYS_IRN, gnss.CODE_L1C, 0))
}
