package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_resultutest_code_mapping(t *testing.T) {
	assert := assert.New(t)
	cases := map[Kind]int{
		KindNone:   0,
		KindObs:    1,
		KindEph:    2,
		KindSbas:   3,
		KindIonUtc: 9,
		KindError:  -1,
		KindEOF:    -2,
	}
	for kind, want := range cases {
		assert.Equal(want, DecodeResult{Kind: kind}.code())
	}
}
