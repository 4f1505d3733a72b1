package ubx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedFrame(d *Decoder, frame []byte) int {
	ret := 0
	for _, b := range frame {
		ret = d.InputByte(b)
	}
	return ret
}

func Test_frameutest_unhandled_type_returns_none(t *testing.T) {
	assert := assert.New(t)
	frame := finishFrame(0x99, 0x99, nil)
	d := NewDecoder("")
	assert.Zero(feedFrame(d, frame))
}

func Test_frameutest_checksum_failure(t *testing.T) {
	assert := assert.New(t)
	frame := finishFrame(0x99, 0x99, []byte{0x01, 0x02})
	frame[len(frame)-1] ^= 0xFF
	d := NewDecoder("")
	assert.Equal(-1, feedFrame(d, frame))
}

func Test_frameutest_declared_length_too_long(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder("")
	assert.Zero(d.InputByte(sync1))
	assert.Zero(d.InputByte(sync2))
	assert.Zero(d.InputByte(0x99))
	assert.Zero(d.InputByte(0x99))
	assert.Zero(d.InputByte(0xFF)) // len lo
	assert.Equal(-1, d.InputByte(0xFF)) // len hi -> declared length > MAXRAWLEN
	assert.Zero(d.nbyte)
}

func Test_frameutest_inputfile_reads_valid_frame(t *testing.T) {
	assert := assert.New(t)
	frame := finishFrame(0x99, 0x99, []byte{0xAA, 0xBB})
	d := NewDecoder("")
	ret := d.InputFile(bytes.NewReader(frame))
	assert.Zero(ret)
}

func Test_frameutest_inputfile_eof(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder("")
	assert.Equal(-2, d.InputFile(bytes.NewReader(nil)))
}
