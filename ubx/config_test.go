package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_configutest_lookupvalkey(t *testing.T) {
	assert := assert.New(t)
	key, ok := lookupValKey("USB-POWER")
	assert.True(ok)
	assert.EqualValues(0x3065000c, key.ID)
	assert.Equal(FU2, key.Type)

	_, ok = lookupValKey("NOT-A-REAL-KEY")
	assert.False(ok)
}

func Test_configutest_lookupcfg(t *testing.T) {
	assert := assert.New(t)
	e, ok := lookupCfg("RATE")
	assert.True(ok)
	assert.EqualValues(0x08, e.ID)
	assert.Len(e.Fields, 3)

	_, ok = lookupCfg("NOSUCHENTRY")
	assert.False(ok)
}

func Test_configutest_genubx_fixed_message(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 64)
	n := GenUbx("CFG-RATE 100 1 0", buff)
	assert.Equal(6+6+2, n) // header(6) + 3 fields (2+2+2) + checksum(2)
	frame := buff[:n]
	assert.Equal(byte(sync1), frame[0])
	assert.Equal(byte(sync2), frame[1])
	assert.Equal(byte(cfgClass), frame[2])
	assert.EqualValues(0x08, frame[3])
	assert.True(checksum(frame, len(frame)))
	assert.EqualValues(100, U2L(frame[6:]))
	assert.EqualValues(1, U2L(frame[8:]))
	assert.EqualValues(0, U2L(frame[10:]))
}

func Test_configutest_genubx_valset_scenario(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 64)
	n := GenUbx("CFG-VALSET 0 1 0 0 CFG-USB-POWER 1", buff)
	assert.NotZero(n)
	frame := buff[:n]
	assert.True(checksum(frame, len(frame)))
	assert.EqualValues(msgIDValSet, frame[3])

	body := frame[6 : n-2]
	assert.Len(body, 4+4+2) // version/layer/transaction/reserved + key-id + U2 value
	assert.EqualValues(0x3065000c, U4L(body[4:]))
	assert.EqualValues(1, U2L(body[8:]))
}

func Test_configutest_genubx_valget_multi_key(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 64)
	n := GenUbx("CFG-VALGET 0 1 0 CFG-USB-POWER CFG-RATE-MEAS", buff)
	assert.NotZero(n)
	frame := buff[:n]
	assert.True(checksum(frame, len(frame)))
	assert.EqualValues(msgIDValGet, frame[3])

	body := frame[6 : n-2]
	assert.Len(body, 4+4+4)
	assert.EqualValues(0x3065000c, U4L(body[4:]))
	assert.EqualValues(0x30210001, U4L(body[8:]))
}

func Test_configutest_genubx_valdel(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 64)
	n := GenUbx("CFG-VALDEL 0 1 0 0 CFG-USB-POWER", buff)
	assert.NotZero(n)
	frame := buff[:n]
	assert.True(checksum(frame, len(frame)))
	assert.EqualValues(msgIDValDel, frame[3])
}

func Test_configutest_genubx_unknown_command(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 64)
	assert.Zero(GenUbx("CFG-NOSUCHTHING 1 2 3", buff))
	assert.Zero(GenUbx("not-a-cfg-command", buff))
}

func Test_configutest_genubx_valset_unknown_key(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 64)
	assert.Zero(GenUbx("CFG-VALSET 0 1 0 0 CFG-NOT-A-KEY 1", buff))
}
