package ir

import (
	"fmt"
	"math"
	"math/big"
)

// Value is a tagged union representing any JSON value. The Type field
// selects which payload fields are meaningful: Bool for BoolType, Str for
// StringType, one of Int64/Float64/Number for NumberType, Arr for
// ArrayType, and Obj for ObjectType. Numbers are stored in the most
// specific representation that round-trips the source text; Number holds
// the raw text of integers an int64 cannot represent.
type Value struct {
	Type Type

	Bool    bool
	Str     string
	Int64   *int64
	Float64 *float64
	Number  string
	Arr     *Array
	Obj     *Object
}

// Null returns a JSON null value. Equality is structural, so every null
// compares equal; there is no shared sentinel identity.
func Null() *Value {
	return &Value{Type: NullType}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, Str: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

// FromNumber holds raw numeric text that int64 and float64 cannot
// represent exactly, such as big integers.
func FromNumber(text string) *Value {
	return &Value{Type: NumberType, Number: text}
}

func FromBigInt(v *big.Int) *Value {
	if v.IsInt64() {
		return FromInt(v.Int64())
	}
	return FromNumber(v.String())
}

func FromArray(a *Array) *Value {
	return &Value{Type: ArrayType, Arr: a}
}

func FromObject(o *Object) *Value {
	return &Value{Type: ObjectType, Obj: o}
}

// IsNull reports whether v is the JSON null value.
func (v *Value) IsNull() bool {
	return v != nil && v.Type == NullType
}

// validate rejects values that have no JSON text form. Containers are
// validated element-wise at their own insertion time, so only the value's
// own tag is checked here.
func (v *Value) validate() error {
	if v.Type != NumberType || v.Float64 == nil {
		return nil
	}
	f := *v.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: non-finite number %v", ErrValue, f)
	}
	return nil
}

// ToInterface converts v to host-native containers and scalars,
// recursively. Warning: assumes the value tree is acyclic.
func (v *Value) ToInterface() any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case StringType:
		return v.Str
	case NumberType:
		switch {
		case v.Int64 != nil:
			return *v.Int64
		case v.Float64 != nil:
			return *v.Float64
		default:
			if b, ok := new(big.Int).SetString(v.Number, 10); ok {
				return b
			}
			return v.Number
		}
	case ArrayType:
		return v.Arr.ToList()
	case ObjectType:
		return v.Obj.ToMap()
	default:
		panic("type")
	}
}
