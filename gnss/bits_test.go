package gnss_test

import (
	"testing"

	"github.com/GHolk/RTKLIB/gnss"
	"github.com/stretchr/testify/assert"
)

func Test_bitutest_unsigned_roundtrip(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 8)
	gnss.SetBitU(buff, 3, 13, 0x1234&0x1FFF)
	assert.Equal(uint32(0x1234&0x1FFF), gnss.GetBitU(buff, 3, 13))

	gnss.SetBitU(buff, 0, 32, 0xDEADBEEF)
	assert.Equal(uint32(0xDEADBEEF), gnss.GetBitU(buff, 0, 32))
}

func Test_bitutest_signed_roundtrip(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 8)
	gnss.SetBits(buff, 5, 11, -37)
	assert.EqualValues(-37, gnss.GetBits(buff, 5, 11))

	gnss.SetBits(buff, 20, 9, 200)
	assert.EqualValues(200, gnss.GetBits(buff, 20, 9))
}

func Test_bitutest_split_fields(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 8)
	gnss.SetBitU(buff, 0, 5, 0x1B)
	gnss.SetBitU(buff, 5, 10, 0x2A1)
	assert.Equal(gnss.MergeTwoU(0x1B, 0x2A1, 10), gnss.GetBitU2(buff, 0, 5, 5, 10))
}

func Test_bitutest_bitg_sign_magnitude(t *testing.T) {
	assert := assert.New(t)
	buff := make([]byte, 8)
	gnss.SetBitU(buff, 0, 1, 1)
	gnss.SetBitU(buff, 1, 10, 500)
	assert.Equal(-500.0, gnss.GetBitG(buff, 0, 11))

	gnss.SetBitU(buff, 0, 1, 0)
	assert.Equal(500.0, gnss.GetBitG(buff, 0, 11))
}

func Test_bitutest_crc24q_sensitivity(t *testing.T) {
	assert := assert.New(t)
	a := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x06}
	crcA := gnss.CRC24Q(a)
	crcB := gnss.CRC24Q(b)
	assert.NotEqual(crcA, crcB)
	assert.LessOrEqual(crcA, uint32(0xFFFFFF))
	assert.Equal(crcA, gnss.CRC24Q(a))
}
