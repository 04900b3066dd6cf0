// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compute

import (
	"sort"

	"github.com/daviszhen/colsort/pkg/chunk"
)

// Comparator orders two record indexes of a ColumnSet. Swapping the
// comparator changes the sort key without touching selection
// computation or application.
type Comparator func(cs *chunk.ColumnSet, i, j int) bool

// LexicographicLess is the default key: all five fields in declared
// order.
func LexicographicLess(cs *chunk.ColumnSet, i, j int) bool {
	return cs.RecordAt(i).Less(cs.RecordAt(j))
}

// SortedSelection computes the selection that sorts count records
// under less. The sort is unstable: equal keys may land in any
// relative order. The input columns are never touched. The result is
// verified as a bijection of 0..count before it is returned.
func SortedSelection(count int, less func(i, j int) bool) *chunk.SelectVector {
	sel := chunk.NewIdentitySelectVector(count)
	sort.Slice(sel.SelVec, func(a, b int) bool {
		return less(sel.SelVec[a], sel.SelVec[b])
	})
	sel.Verify(count)
	return sel
}
