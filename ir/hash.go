package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal values hash equally within a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the value. A nil value (an
// absent array slot) hashes like JSON null.
func (v *Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	hashValue(&h, v)
	return h.Sum64()
}

func (a *Array) Hash() uint64 {
	return FromArray(a).Hash()
}

func (o *Object) Hash() uint64 {
	return FromObject(o).Hash()
}

func hashValue(h *maphash.Hash, v *Value) {
	if v == nil {
		h.WriteByte(byte(NullType))
		return
	}
	h.WriteByte(byte(v.Type))
	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		var b [8]byte
		switch {
		case v.Int64 != nil:
			binary.LittleEndian.PutUint64(b[:], uint64(*v.Int64))
			h.Write(b[:])
		case v.Float64 != nil:
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*v.Float64))
			h.Write(b[:])
		default:
			h.WriteString(v.Number)
		}
	case StringType:
		h.WriteString(v.Str)
	case ArrayType:
		for _, e := range v.Arr.elems {
			hashValue(h, e)
		}
	case ObjectType:
		for i, k := range v.Obj.keys {
			h.WriteString(k)
			hashValue(h, v.Obj.elems[i])
		}
	}
}
