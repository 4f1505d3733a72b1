package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_fieldtypeutest_sizes(t *testing.T) {
	assert := assert.New(t)
	cases := map[FieldType]int{
		FU1: 1, FI1: 1,
		FU2: 2, FI2: 2,
		FU4: 4, FI4: 4, FR4: 4,
		FU8: 8, FR8: 8,
		FS32: 32,
	}
	for ft, want := range cases {
		assert.Equal(want, ft.size())
	}
}
