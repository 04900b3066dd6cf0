package common

import (
	"sort"

	"github.com/huandu/go-clone"
)

// Record is one logical hit in row-oriented form. The field order
// defines the total order used everywhere in this module.
type Record struct {
	QueryIndex uint32
	Distance   uint8
	Attribute  uint16
	WordIndex  uint16
	IsExact    bool
}

// Compare orders records lexicographically, field by field, in
// declared order. false sorts before true.
func (rec Record) Compare(other Record) int {
	if rec.QueryIndex != other.QueryIndex {
		if rec.QueryIndex < other.QueryIndex {
			return -1
		}
		return 1
	}
	if rec.Distance != other.Distance {
		if rec.Distance < other.Distance {
			return -1
		}
		return 1
	}
	if rec.Attribute != other.Attribute {
		if rec.Attribute < other.Attribute {
			return -1
		}
		return 1
	}
	if rec.WordIndex != other.WordIndex {
		if rec.WordIndex < other.WordIndex {
			return -1
		}
		return 1
	}
	if rec.IsExact != other.IsExact {
		if !rec.IsExact {
			return -1
		}
		return 1
	}
	return 0
}

func (rec Record) Less(other Record) bool {
	return rec.Compare(other) < 0
}

type RecordSet []Record

func (rs RecordSet) Card() int {
	return len(rs)
}

// SortUnstable sorts the set in place. Records with fully equal
// keys may end up in any relative order.
func (rs RecordSet) SortUnstable() {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].Less(rs[j])
	})
}

func (rs RecordSet) Clone() RecordSet {
	return clone.Clone(rs).(RecordSet)
}
