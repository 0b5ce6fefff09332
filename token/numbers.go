package token

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// NumberValue is the classification of a numeric-looking literal.
// Exactly one representation is populated: Int for integer text that fits
// an int64, Float for finite floating point text, Big for integer text
// that only arbitrary precision can hold (the raw text is kept).
type NumberValue struct {
	Int   *int64
	Float *float64
	Big   bool
}

func numberStart(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '+', '.':
		return true
	default:
		return false
	}
}

// ScanNumber classifies s per the lenient grammar. It reports ok=false
// when s does not parse as any numeric form, in which case the caller
// keeps s as a string token. It never fails.
func ScanNumber(s string) (NumberValue, bool) {
	if s == "" || !numberStart(s[0]) {
		return NumberValue{}, false
	}
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return NumberValue{}, false
		}
		return NumberValue{Float: &f}, true
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return NumberValue{Int: &i}, true
	}
	if errors.Is(err, strconv.ErrRange) {
		// valid integer digits, too large for int64
		return NumberValue{Big: true}, true
	}
	return NumberValue{}, false
}
