package compute

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/daviszhen/colsort/pkg/chunk"
	"github.com/daviszhen/colsort/pkg/util"
)

// ApplySelection gathers col through sel into a fresh slice:
// out[j] = col[sel.GetIndex(j)]. O(N) working memory. sel is
// read-only and must be verified at its construction boundary.
func ApplySelection[T any](sel *chunk.SelectVector, col []T) []T {
	util.AssertFunc(sel.Count() == util.Size(col))
	out := make([]T, len(col))
	for j := 0; j < len(col); j++ {
		out[j] = col[sel.GetIndex(j)]
	}
	return out
}

// ApplySelectionInPlace reorders col in place by following the
// cycles of the selection. No second copy of the column is made;
// the only extra memory is the visited bitmap. Produces exactly the
// same column as ApplySelection.
func ApplySelectionInPlace[T any](sel *chunk.SelectVector, col []T) {
	util.AssertFunc(sel.Count() == util.Size(col))
	util.AssertFunc(len(col) <= math.MaxUint32)
	visited := roaring.New()
	for start := 0; start < len(col); start++ {
		if visited.Contains(uint32(start)) {
			continue
		}
		saved := col[start]
		cur := start
		for {
			visited.Add(uint32(cur))
			next := sel.GetIndex(cur)
			if next == start {
				col[cur] = saved
				break
			}
			col[cur] = col[next]
			cur = next
		}
	}
}
