package ir

import (
	"fmt"
	"slices"
)

// Array is an ordered sequence of values. A slot may hold a Go nil, the
// host-absent marker, which is distinct from a stored JSON null: Get
// treats it as missing while the serializer still renders it as null.
type Array struct {
	elems []*Value
}

func NewArray() *Array {
	return &Array{}
}

// ArrayOf builds an Array by wrapping each element through Wrap. It
// never fails; unsupported element types are stored in textual form.
func ArrayOf(vals ...any) *Array {
	a := &Array{elems: make([]*Value, len(vals))}
	for i, x := range vals {
		a.elems[i] = Wrap(x)
	}
	return a
}

// Len returns the number of stored elements, including null and absent
// placeholders.
func (a *Array) Len() int {
	return len(a.elems)
}

// Values returns the backing element slice. Mutating it mutates the
// array.
func (a *Array) Values() []*Value {
	return a.elems
}

// Opt returns the element at index, or nil when the index is out of
// range. A stored JSON null and an absent slot are not distinguished;
// use IsNull.
func (a *Array) Opt(index int) *Value {
	if index < 0 || index >= len(a.elems) {
		return nil
	}
	return a.elems[index]
}

// Get returns the element at index. It fails with ErrIndex when the
// index is out of range or the slot holds the absent marker.
func (a *Array) Get(index int) (*Value, error) {
	v := a.Opt(index)
	if v == nil {
		return nil, fmt.Errorf("%w: index %d", ErrIndex, index)
	}
	return v, nil
}

// IsNull reports whether the slot at index is absent, out of range, or
// holds a JSON null.
func (a *Array) IsNull(index int) bool {
	v := a.Opt(index)
	return v == nil || v.Type == NullType
}

// Put appends a value, wrapping host types through Wrap. It fails with
// ErrValue when the value has no JSON text form (non-finite number).
func (a *Array) Put(x any) error {
	v, err := wrapChecked(x)
	if err != nil {
		return err
	}
	a.elems = append(a.elems, v)
	return nil
}

// PutAt stores a value at index. An index within range overwrites in
// place; an index beyond the end pads the gap with JSON nulls first.
// A negative index fails with ErrIndex.
func (a *Array) PutAt(index int, x any) error {
	v, err := wrapChecked(x)
	if err != nil {
		return err
	}
	if index < 0 {
		return fmt.Errorf("%w: index %d", ErrIndex, index)
	}
	if index < len(a.elems) {
		a.elems[index] = v
		return nil
	}
	for index != len(a.elems) {
		a.elems = append(a.elems, Null())
	}
	a.elems = append(a.elems, v)
	return nil
}

// Remove deletes the element at index, shifting subsequent elements
// down. It returns the removed element, or nil when the index is out of
// range.
func (a *Array) Remove(index int) *Value {
	if index < 0 || index >= len(a.elems) {
		return nil
	}
	v := a.elems[index]
	a.elems = slices.Delete(a.elems, index, index+1)
	return v
}

// ToList converts the array to host-native containers, recursively.
// Null and absent slots both become nil. Warning: assumes the tree is
// acyclic.
func (a *Array) ToList() []any {
	res := make([]any, len(a.elems))
	for i, e := range a.elems {
		res[i] = e.ToInterface()
	}
	return res
}

// wrapChecked wraps a host value for storage and validates it. A Go nil
// is stored as-is, preserving the historical absent-slot behavior.
func wrapChecked(x any) (*Value, error) {
	if x == nil {
		return nil, nil
	}
	v := Wrap(x)
	if err := v.validate(); err != nil {
		return nil, err
	}
	return v, nil
}
