package ir

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Per-target coercion functions backing the typed accessors on Array and
// Object. Each returns ErrType-wrapped errors so callers can match with
// errors.Is; the Opt accessors swallow every failure and substitute the
// caller's default.

func coerceBool(v *Value) (bool, error) {
	switch v.Type {
	case BoolType:
		return v.Bool, nil
	case StringType:
		if strings.EqualFold(v.Str, "true") {
			return true, nil
		}
		if strings.EqualFold(v.Str, "false") {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %s is not a bool", ErrType, v.Type)
}

func coerceInt64(v *Value) (int64, error) {
	switch v.Type {
	case NumberType:
		switch {
		case v.Int64 != nil:
			return *v.Int64, nil
		case v.Float64 != nil:
			return int64(*v.Float64), nil
		default:
			if b, ok := new(big.Int).SetString(v.Number, 10); ok {
				return b.Int64(), nil
			}
		}
	case StringType:
		if n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not an integer", ErrType, v.Type)
}

func coerceFloat64(v *Value) (float64, error) {
	switch v.Type {
	case NumberType:
		switch {
		case v.Int64 != nil:
			return float64(*v.Int64), nil
		case v.Float64 != nil:
			return *v.Float64, nil
		default:
			f, err := strconv.ParseFloat(v.Number, 64)
			if err == nil || errors.Is(err, strconv.ErrRange) {
				return f, nil
			}
		}
	case StringType:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrType, v.Type)
}

// coerceBigInt rejects float values rather than truncating them, unlike
// coerceInt64.
func coerceBigInt(v *Value) (*big.Int, error) {
	switch v.Type {
	case NumberType:
		switch {
		case v.Int64 != nil:
			return big.NewInt(*v.Int64), nil
		case v.Float64 != nil:
			// no silent truncation of fractional values
		default:
			if b, ok := new(big.Int).SetString(v.Number, 10); ok {
				return b, nil
			}
		}
	case StringType:
		if b, ok := new(big.Int).SetString(strings.TrimSpace(v.Str), 10); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not a big integer", ErrType, v.Type)
}

func coerceBigFloat(v *Value) (*big.Float, error) {
	switch v.Type {
	case NumberType:
		switch {
		case v.Int64 != nil:
			return new(big.Float).SetInt64(*v.Int64), nil
		case v.Float64 != nil:
			if f := *v.Float64; !math.IsNaN(f) && !math.IsInf(f, 0) {
				return new(big.Float).SetFloat64(f), nil
			}
		default:
			if b, _, err := big.ParseFloat(v.Number, 10, big.MaxPrec, big.ToNearestEven); err == nil {
				return b, nil
			}
		}
	case StringType:
		if b, _, err := big.ParseFloat(strings.TrimSpace(v.Str), 10, big.MaxPrec, big.ToNearestEven); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not a big decimal", ErrType, v.Type)
}

func coerceString(v *Value) (string, error) {
	if v.Type != StringType {
		return "", fmt.Errorf("%w: %s is not a string", ErrType, v.Type)
	}
	return v.Str, nil
}

func coerceArray(v *Value) (*Array, error) {
	if v.Type != ArrayType {
		return nil, fmt.Errorf("%w: %s is not an array", ErrType, v.Type)
	}
	return v.Arr, nil
}

func coerceObject(v *Value) (*Object, error) {
	if v.Type != ObjectType {
		return nil, fmt.Errorf("%w: %s is not an object", ErrType, v.Type)
	}
	return v.Obj, nil
}

func coerceEnum[E ~string](v *Value, members []E) (E, error) {
	var zero E
	if v.Type != NullType {
		s := textOf(v)
		for _, m := range members {
			if string(m) == s {
				return m, nil
			}
		}
	}
	return zero, fmt.Errorf("%w: %s is not an enum member", ErrType, v.Type)
}

// textOf renders any value in its textual form: strings verbatim, other
// scalars and containers as compact JSON.
func textOf(v *Value) string {
	if v.Type == StringType {
		return v.Str
	}
	return v.String()
}
