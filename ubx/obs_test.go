package ubx

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_obsutest_ubxsys_mapping(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(gnss.SYS_GPS, ubxSys(0))
	assert.Equal(gnss.SYS_SBS, ubxSys(1))
	assert.Equal(gnss.SYS_GAL, ubxSys(2))
	assert.Equal(gnss.SYS_CMP, ubxSys(3))
	assert.Equal(gnss.SYS_QZS, ubxSys(5))
	assert.Equal(gnss.SYS_GLO, ubxSys(6))
	assert.Zero(ubxSys(4)) // IMES, unsupported
}

func Test_obsutest_ubxsig_mapping(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(gnss.CODE_L1C, ubxSig(gnss.SYS_GPS, 0))
	assert.Equal(gnss.CODE_L2L, ubxSig(gnss.SYS_GPS, 3))
	assert.Equal(gnss.CODE_L1B, ubxSig(gnss.SYS_GAL, 1))
	assert.Equal(gnss.CODE_L7Q, ubxSig(gnss.SYS_GAL, 6))
	assert.Equal(gnss.CODE_L2I, ubxSig(gnss.SYS_CMP, 0))
	assert.Equal(gnss.CODE_NONE, ubxSig(gnss.SYS_GPS, 99))
}

func Test_obsutest_slotof(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, slotOf(gnss.CODE_L1C))
	assert.Equal(2, slotOf(gnss.CODE_L2I))
	assert.Zero(slotOf(gnss.CODE_NONE))
}

func Test_obsutest_findorappend(t *testing.T) {
	assert := assert.New(t)
	var batch ObservationBatch
	tm := gnss.GpsToTime(2200, 0.0)

	j1 := findOrAppend(&batch, tm, 5)
	assert.Zero(j1)
	assert.Equal(1, batch.N)

	j2 := findOrAppend(&batch, tm, 5)
	assert.Equal(j1, j2)
	assert.Equal(1, batch.N)

	j3 := findOrAppend(&batch, tm, 7)
	assert.Equal(1, j3)
	assert.Equal(2, batch.N)
	for _, c := range batch.Data[j3].Code {
		assert.EqualValues(gnss.CODE_NONE, c)
	}
}
