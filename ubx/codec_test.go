package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_codecutest_little_endian_scalars(t *testing.T) {
	assert := assert.New(t)
	buff := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	assert.EqualValues(0x01, U1(buff))
	assert.EqualValues(0x0201, U2L(buff))
	assert.EqualValues(0x04030201, U4L(buff))
	assert.EqualValues(0x0807060504030201, U8L(buff))

	neg := []byte{0xFF, 0xFF}
	assert.EqualValues(-1, I2L(neg))
	assert.EqualValues(-1, I1([]byte{0xFF}))
}

func Test_codecutest_set_get_roundtrip(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 8)

	setU2(buff, 0xBEEF)
	assert.EqualValues(0xBEEF, U2L(buff))

	setI4(buff, -12345)
	assert.EqualValues(-12345, I4L(buff))

	setR4(buff, 3.5)
	assert.EqualValues(3.5, R4L(buff))

	setR8(buff, -2.25)
	assert.EqualValues(-2.25, R8L(buff))

	setU8(buff, 0x0102030405060708)
	assert.EqualValues(0x0102030405060708, U8L(buff))
}

func Test_codecutest_i8l_extended_precision(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 8)
	setU4(buff, 500)
	setI4(buff[4:], 2)
	assert.Equal(2*4294967296.0+500.0, I8L(buff))
}
