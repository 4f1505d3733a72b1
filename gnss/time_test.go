package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_timeutest_gps_roundtrip(t *testing.T) {
	assert := assert.New(t)
	gt := gnss.GpsToTime(2200, 123456.25)
	tow, week := gnss.TimeToGps(gt)
	assert.Equal(2200, week)
	assert.InDelta(123456.25, tow, 1e-6)
}

func Test_timeutest_diff_and_add(t *testing.T) {
	assert := assert.New(t)
	a := gnss.GpsToTime(2000, 100.0)
	b := gnss.TimeAdd(a, 30.5)
	assert.InDelta(30.5, gnss.TimeDiff(b, a), 1e-9)
	assert.InDelta(0.0, gnss.TimeDiff(a, a), 1e-12)
}

func Test_timeutest_adjgpsweek_nearest_cycle(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2053, gnss.AdjGpsWeek(5, 2200))
}

func Test_timeutest_adjutcweek(t *testing.T) {
	assert := assert.New(t)
	tm := gnss.GpsToTime(2053, 0.0)
	utc := make([]float64, 8)
	utc[3] = 5.0
	utc[5] = 5.0
	gnss.AdjUtcWeek(tm, utc)
	assert.Equal(2053.0, utc[3])
	assert.Equal(2053.0, utc[5])
}

func Test_timeutest_utc_gps_roundtrip(t *testing.T) {
	assert := assert.New(t)
	gt := gnss.GpsToTime(2400, 55555.0)
	utc := gnss.GpsToUtc(gt)
	back := gnss.UtcToGps(utc)
	assert.InDelta(0.0, gnss.TimeDiff(back, gt), 1e-6)
}

func Test_timeutest_bdt_to_gps_offset(t *testing.T) {
	assert := assert.New(t)
	bdt := gnss.BdtToTime(800, 1000.0)
	gps := gnss.BdtToGps(bdt)
	assert.InDelta(14.0, gnss.TimeDiff(gps, bdt), 1e-9)
}
