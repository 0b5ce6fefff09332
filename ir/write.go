package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/laxjson/lax/token"
)

// Compact wire form of a value tree. The encode package layers
// indentation and color on top of the same number and string rules.

// numberText renders a number value in canonical text: int64 in
// decimal, float64 in shortest form with a forced decimal or exponent
// marker so the text reparses as a float, raw big text verbatim.
// Non-finite floats have no JSON form and fail with ErrValue.
func numberText(v *Value) (string, error) {
	switch {
	case v.Int64 != nil:
		return strconv.FormatInt(*v.Int64, 10), nil
	case v.Float64 != nil:
		f := *v.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: non-finite number %v", ErrValue, f)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	default:
		return v.Number, nil
	}
}

// appendCompact writes v to dst with no whitespace. A nil v is an
// absent array slot and still renders as null. Warning: assumes the
// tree is acyclic.
func appendCompact(dst []byte, v *Value) ([]byte, error) {
	if v == nil {
		return append(dst, "null"...), nil
	}
	switch v.Type {
	case NullType:
		return append(dst, "null"...), nil
	case BoolType:
		return strconv.AppendBool(dst, v.Bool), nil
	case StringType:
		return append(dst, token.Quote(v.Str)...), nil
	case NumberType:
		s, err := numberText(v)
		if err != nil {
			return nil, err
		}
		return append(dst, s...), nil
	case ArrayType:
		var err error
		dst = append(dst, '[')
		for i, e := range v.Arr.Values() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst, err = appendCompact(dst, e)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case ObjectType:
		var err error
		dst = append(dst, '{')
		for i, k := range v.Obj.Keys() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, token.Quote(k)...)
			dst = append(dst, ':')
			dst, err = appendCompact(dst, v.Obj.Opt(k))
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %d", ErrValue, v.Type)
	}
}

// String renders v as compact JSON, best effort: a tree that cannot be
// rendered yields "".
func (v *Value) String() string {
	d, err := appendCompact(nil, v)
	if err != nil {
		return ""
	}
	return string(d)
}

func (a *Array) String() string {
	if a == nil {
		return ""
	}
	return FromArray(a).String()
}

func (o *Object) String() string {
	if o == nil {
		return ""
	}
	return FromObject(o).String()
}
