package chunk

import (
	"github.com/daviszhen/colsort/pkg/util"
)

// SelectVector is an index indirection over aligned columns. A
// verified SelectVector is a permutation of 0..count and may be
// applied to every column of a ColumnSet without per-access
// revalidation.
type SelectVector struct {
	SelVec []int
}

func NewSelectVector(count int) *SelectVector {
	vec := &SelectVector{}
	vec.Init(count)
	return vec
}

// NewIdentitySelectVector builds the no-op selection 0,1,..,count-1.
func NewIdentitySelectVector(count int) *SelectVector {
	vec := NewSelectVector(count)
	for i := 0; i < count; i++ {
		vec.SetIndex(i, i)
	}
	return vec
}

func (svec *SelectVector) Invalid() bool {
	return util.Empty(svec.SelVec)
}

func (svec *SelectVector) Init(cnt int) {
	svec.SelVec = make([]int, cnt)
}

func (svec *SelectVector) Count() int {
	return len(svec.SelVec)
}

func (svec *SelectVector) GetIndex(idx int) int {
	if svec.Invalid() {
		return idx
	} else {
		return svec.SelVec[idx]
	}
}

func (svec *SelectVector) SetIndex(idx int, index int) {
	svec.SelVec[idx] = index
}

// Verify asserts that the vector is a bijection of 0..count. It runs
// once, at the boundary where the selection is built. Downstream
// application trusts the result.
func (svec *SelectVector) Verify(count int) {
	util.AssertFunc(svec.Count() == count)
	seen := make([]bool, count)
	for i := 0; i < count; i++ {
		idx := svec.SelVec[i]
		util.AssertFunc(idx >= 0 && idx < count)
		util.AssertFunc(!seen[idx])
		seen[idx] = true
	}
}
