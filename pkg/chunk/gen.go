package chunk

import (
	"math/rand/v2"

	"github.com/daviszhen/colsort/pkg/common"
)

// Deterministic record generation. The same seed must yield the same
// record sequence in both views, so both generators draw fields in
// the same order from the same PCG stream.

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func RandRecord(rng *rand.Rand) common.Record {
	return common.Record{
		QueryIndex: rng.Uint32(),
		Distance:   uint8(rng.Uint32()),
		Attribute:  uint16(rng.Uint32()),
		WordIndex:  uint16(rng.Uint32()),
		IsExact:    rng.Uint32()&1 == 1,
	}
}

func GenRecordSet(seed uint64, count int) common.RecordSet {
	rng := NewSeededRand(seed)
	rs := make(common.RecordSet, 0, count)
	for i := 0; i < count; i++ {
		rs = append(rs, RandRecord(rng))
	}
	return rs
}

func GenColumnSet(seed uint64, count int) *ColumnSet {
	rng := NewSeededRand(seed)
	cs := NewColumnSet(count)
	for i := 0; i < count; i++ {
		cs.Append(RandRecord(rng))
	}
	return cs
}
