package chunk

import (
	"github.com/huandu/go-clone"

	"github.com/daviszhen/colsort/pkg/common"
	"github.com/daviszhen/colsort/pkg/util"
)

// ColumnSet is the columnar form of a record set: one slice per
// field, aligned by index. The five slices are one unit. Reordering
// any of them alone breaks the alignment invariant.
type ColumnSet struct {
	QueryIndex []uint32
	Distance   []uint8
	Attribute  []uint16
	WordIndex  []uint16
	IsExact    []bool
}

func NewColumnSet(cap int) *ColumnSet {
	return &ColumnSet{
		QueryIndex: make([]uint32, 0, cap),
		Distance:   make([]uint8, 0, cap),
		Attribute:  make([]uint16, 0, cap),
		WordIndex:  make([]uint16, 0, cap),
		IsExact:    make([]bool, 0, cap),
	}
}

func (cs *ColumnSet) Card() int {
	return len(cs.QueryIndex)
}

// CheckAligned asserts that all five columns have the same
// cardinality. Violation is a caller bug.
func (cs *ColumnSet) CheckAligned() {
	card := cs.Card()
	util.AssertFunc(len(cs.Distance) == card)
	util.AssertFunc(len(cs.Attribute) == card)
	util.AssertFunc(len(cs.WordIndex) == card)
	util.AssertFunc(len(cs.IsExact) == card)
}

func (cs *ColumnSet) Append(rec common.Record) {
	cs.QueryIndex = append(cs.QueryIndex, rec.QueryIndex)
	cs.Distance = append(cs.Distance, rec.Distance)
	cs.Attribute = append(cs.Attribute, rec.Attribute)
	cs.WordIndex = append(cs.WordIndex, rec.WordIndex)
	cs.IsExact = append(cs.IsExact, rec.IsExact)
}

// RecordAt gathers the field tuple at idx. It is the key extraction
// for sorting: the tuple compares lexicographically in declared
// field order.
func (cs *ColumnSet) RecordAt(idx int) common.Record {
	return common.Record{
		QueryIndex: cs.QueryIndex[idx],
		Distance:   cs.Distance[idx],
		Attribute:  cs.Attribute[idx],
		WordIndex:  cs.WordIndex[idx],
		IsExact:    cs.IsExact[idx],
	}
}

func (cs *ColumnSet) Clone() *ColumnSet {
	return clone.Clone(cs).(*ColumnSet)
}
