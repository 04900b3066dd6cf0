package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_identitySelectVector(t *testing.T) {
	sel := NewIdentitySelectVector(4)
	assert.Equal(t, 4, sel.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, sel.GetIndex(i))
	}
	assert.NotPanics(t, func() {
		sel.Verify(4)
	})
}

func Test_selectVectorInvalidFallsBackToIdentity(t *testing.T) {
	sel := &SelectVector{}
	assert.True(t, sel.Invalid())
	assert.Equal(t, 7, sel.GetIndex(7))
}

func Test_selectVectorVerify(t *testing.T) {
	type args struct {
		sel    []int
		count  int
		panics bool
	}
	tests := []args{
		{
			sel:    []int{2, 0, 1},
			count:  3,
			panics: false,
		},
		{
			// wrong length
			sel:    []int{0, 1},
			count:  3,
			panics: true,
		},
		{
			// out of range
			sel:    []int{0, 1, 3},
			count:  3,
			panics: true,
		},
		{
			// negative
			sel:    []int{0, -1, 2},
			count:  3,
			panics: true,
		},
		{
			// duplicate
			sel:    []int{0, 1, 1},
			count:  3,
			panics: true,
		},
	}
	for _, test := range tests {
		sel := &SelectVector{SelVec: test.sel}
		if test.panics {
			assert.Panics(t, func() {
				sel.Verify(test.count)
			})
		} else {
			assert.NotPanics(t, func() {
				sel.Verify(test.count)
			})
		}
	}
}
