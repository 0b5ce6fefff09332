// Package ir contains the lenient JSON value representation.
package ir

import (
	"bytes"
	"encoding/json"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON renders the value as compact standard JSON.
func (v *Value) MarshalJSON() ([]byte, error) {
	return appendCompact(nil, v)
}

// UnmarshalJSON replaces v with the strict-JSON decoding of d. Numbers
// decode through json.Number so integer, float, and big-integer forms
// keep their most specific representation.
func (v *Value) UnmarshalJSON(d []byte) error {
	x, err := decodeAny(d)
	if err != nil {
		return err
	}
	*v = *Wrap(x)
	return nil
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return appendCompact(nil, FromArray(a))
}

func (a *Array) UnmarshalJSON(d []byte) error {
	x, err := decodeAny(d)
	if err != nil {
		return err
	}
	v := Wrap(x)
	if v.Type != ArrayType {
		return fmt.Errorf("%w: %s is not an array", ErrType, v.Type)
	}
	*a = *v.Arr
	return nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return appendCompact(nil, FromObject(o))
}

func (o *Object) UnmarshalJSON(d []byte) error {
	x, err := decodeAny(d)
	if err != nil {
		return err
	}
	v := Wrap(x)
	if v.Type != ObjectType {
		return fmt.Errorf("%w: %s is not an object", ErrType, v.Type)
	}
	*o = *v.Obj
	return nil
}

func decodeAny(d []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	return x, nil
}

var (
	_ json.Marshaler   = (*Value)(nil)
	_ json.Unmarshaler = (*Value)(nil)
)
