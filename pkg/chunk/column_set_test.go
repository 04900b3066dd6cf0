package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/colsort/pkg/common"
)

func Test_columnSetAppendAndRecordAt(t *testing.T) {
	recs := []common.Record{
		{QueryIndex: 10, Distance: 1, Attribute: 2, WordIndex: 3, IsExact: true},
		{QueryIndex: 20, Distance: 4, Attribute: 5, WordIndex: 6, IsExact: false},
	}
	cs := NewColumnSet(len(recs))
	for _, rec := range recs {
		cs.Append(rec)
	}
	assert.Equal(t, 2, cs.Card())
	cs.CheckAligned()
	for i, rec := range recs {
		assert.Equal(t, rec, cs.RecordAt(i))
	}
}

func Test_columnSetCheckAligned(t *testing.T) {
	cs := GenColumnSet(1, 8)
	assert.NotPanics(t, func() {
		cs.CheckAligned()
	})

	cs.Distance = cs.Distance[:7]
	assert.Panics(t, func() {
		cs.CheckAligned()
	})
}

func Test_columnSetClone(t *testing.T) {
	cs := GenColumnSet(2, 16)
	dup := cs.Clone()
	assert.Equal(t, cs, dup)

	dup.QueryIndex[0] = cs.QueryIndex[0] + 1
	assert.NotEqual(t, cs.QueryIndex[0], dup.QueryIndex[0])
}
