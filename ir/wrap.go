package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/laxjson/lax/token"
)

// Wrap converts a host value to a *Value, recursing through slices,
// arrays, and string-keyed maps. Already-wrapped values pass through
// untouched. Unsupported types are stored in their fmt.Sprint textual
// form as a last resort, so Wrap never fails.
func Wrap(x any) *Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case *Value:
		if t == nil {
			return Null()
		}
		return t
	case *Array:
		if t == nil {
			return Null()
		}
		return FromArray(t)
	case *Object:
		if t == nil {
			return Null()
		}
		return FromObject(t)
	case bool:
		return FromBool(t)
	case string:
		return FromString(t)
	case int:
		return FromInt(int64(t))
	case int8:
		return FromInt(int64(t))
	case int16:
		return FromInt(int64(t))
	case int32:
		return FromInt(int64(t))
	case int64:
		return FromInt(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return FromInt(int64(t))
	case uint16:
		return FromInt(int64(t))
	case uint32:
		return FromInt(int64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return FromFloat(float64(t))
	case float64:
		return FromFloat(t)
	case *big.Int:
		if t == nil {
			return Null()
		}
		return FromBigInt(t)
	case *big.Float:
		if t == nil {
			return Null()
		}
		return FromNumber(t.Text('g', -1))
	case json.Number:
		if nv, ok := token.ScanNumber(string(t)); ok {
			return fromNumberValue(nv, string(t))
		}
		return FromString(string(t))
	case []any:
		return FromArray(ArrayOf(t...))
	case map[string]any:
		return FromObject(ObjectOf(t))
	}
	return wrapReflect(x)
}

func fromUint(u uint64) *Value {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return FromNumber(strconv.FormatUint(u, 10))
}

func fromNumberValue(nv token.NumberValue, raw string) *Value {
	switch {
	case nv.Int != nil:
		return FromInt(*nv.Int)
	case nv.Float != nil:
		return FromFloat(*nv.Float)
	default:
		return FromNumber(raw)
	}
}

// wrapReflect covers slice, array, map, and pointer shapes the type
// switch cannot name, such as []string or map[string]int.
func wrapReflect(x any) *Value {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		a := &Array{elems: make([]*Value, rv.Len())}
		for i := range a.elems {
			a.elems[i] = Wrap(rv.Index(i).Interface())
		}
		return FromArray(a)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			return FromObject(ObjectOf(m))
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return Wrap(rv.Elem().Interface())
	}
	return FromString(fmt.Sprint(x))
}
