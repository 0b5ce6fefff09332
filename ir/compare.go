package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values of different types order by rank:
// Null < Bool < Number < String < Array < Object.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a.Arr, b.Arr)
	case ObjectType:
		return compareObjects(a.Obj, b.Obj)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports structural equality. Numbers compare by representation,
// so an int64 1 and a float64 1.0 are not equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func (a *Array) Equal(b *Array) bool {
	return compareArrays(a, b) == 0
}

func (o *Object) Equal(p *Object) bool {
	return compareObjects(o, p) == 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Sub-rank: Int64 < Float64 < raw text
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(v *Value) int {
	if v.Int64 != nil {
		return 0
	}
	if v.Float64 != nil {
		return 1
	}
	return 2
}

func compareArrays(a, b *Array) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	minLen := min(len(a.elems), len(b.elems))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elems), len(b.elems))
}

func compareObjects(a, b *Object) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	minLen := min(len(a.keys), len(b.keys))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.keys), len(b.keys))
}
