package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_navtypesutest_ephchanged(t *testing.T) {
	assert := assert.New(t)
	toe := gnss.GpsToTime(2200, 0.0)
	a := gnss.Eph{Iode: 10, Iodc: 10, Toe: toe, Toc: toe}
	b := a
	assert.False(gnss.EphChanged(&a, &b))

	b.Iode = 11
	assert.True(gnss.EphChanged(&a, &b))

	b = a
	b.Toe = gnss.TimeAdd(toe, 7200.0)
	assert.True(gnss.EphChanged(&a, &b))
}

func Test_navtypesutest_gephchanged(t *testing.T) {
	assert := assert.New(t)
	toe := gnss.GpsToTime(2200, 0.0)
	a := gnss.GEph{Iode: 5, Toe: toe}
	b := a
	assert.False(gnss.GEphChanged(&a, &b))

	b.Iode = 6
	assert.True(gnss.GEphChanged(&a, &b))
}
