package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_decoderutest_default_options(t *testing.T) {
	assert := assert.New(t)
	opt := parseOptions("")
	assert.False(opt.EphAll)
	assert.False(opt.InvCP)
	assert.Equal(defaultMaxStdCP, opt.MaxStdCP)
	assert.Equal(defaultStdSlip, opt.StdSlip)
	assert.Zero(opt.Tadj)
	assert.Zero(opt.TrkmAdj)
}

func Test_decoderutest_parses_flags_and_valued_options(t *testing.T) {
	assert := assert.New(t)
	opt := parseOptions("-EPHALL -INVCP -GALFNAV -TADJ=0.5 -MAX_STD_CP=9 -STD_SLIP=20 -TRKM_ADJ=3")
	assert.True(opt.EphAll)
	assert.True(opt.InvCP)
	assert.True(opt.GalFnav)
	assert.InDelta(0.5, opt.Tadj, 1e-9)
	assert.Equal(9, opt.MaxStdCP)
	assert.Equal(20, opt.StdSlip)
	assert.Equal(3, opt.TrkmAdj)
}

func Test_decoderutest_ignores_unknown_tokens(t *testing.T) {
	assert := assert.New(t)
	opt := parseOptions("-BOGUS -MAX_STD_CP=notanumber")
	assert.Equal(defaultMaxStdCP, opt.MaxStdCP)
}

func Test_decoderutest_newdecoder_parses_once(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder("-EPHALL")
	assert.True(d.opt.EphAll)
}
