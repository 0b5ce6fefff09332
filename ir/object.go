package ir

import (
	"fmt"
	"sort"
)

// Object is a mapping from string keys to values. Keys are unique and
// iteration follows insertion order. Unlike Array slots, a present key
// never maps to the host-absent marker: storing a Go nil removes the
// key instead.
type Object struct {
	keys  []string
	elems []*Value
}

func NewObject() *Object {
	return &Object{}
}

// ObjectOf builds an Object by wrapping each map value through Wrap.
// Keys are inserted in sorted order so the result is deterministic. It
// never fails; unsupported value types are stored in textual form.
func ObjectOf(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := &Object{
		keys:  keys,
		elems: make([]*Value, len(keys)),
	}
	for i, k := range keys {
		o.elems[i] = Wrap(m[k])
	}
	return o
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is shared with
// the object; mutating it corrupts the mapping.
func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) index(key string) int {
	for i, k := range o.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Has reports whether key is present, regardless of its value.
func (o *Object) Has(key string) bool {
	return o.index(key) != -1
}

// Opt returns the value mapped to key, or nil when key is absent.
func (o *Object) Opt(key string) *Value {
	if i := o.index(key); i != -1 {
		return o.elems[i]
	}
	return nil
}

// Get returns the value mapped to key. It fails with ErrIndex when key
// is absent.
func (o *Object) Get(key string) (*Value, error) {
	v := o.Opt(key)
	if v == nil {
		return nil, fmt.Errorf("%w: key %q", ErrIndex, key)
	}
	return v, nil
}

// IsNull reports whether key is absent or maps to a JSON null.
func (o *Object) IsNull(key string) bool {
	v := o.Opt(key)
	return v == nil || v.Type == NullType
}

// Set maps key to a value, wrapping host types through Wrap. Setting an
// existing key overwrites in place, keeping its position. Setting a Go
// nil removes the key. It fails with ErrValue when the value has no
// JSON text form (non-finite number).
func (o *Object) Set(key string, x any) error {
	if x == nil {
		o.Delete(key)
		return nil
	}
	v, err := wrapChecked(x)
	if err != nil {
		return err
	}
	if i := o.index(key); i != -1 {
		o.elems[i] = v
		return nil
	}
	o.keys = append(o.keys, key)
	o.elems = append(o.elems, v)
	return nil
}

// Delete removes key, returning its value or nil when key was absent.
// Remaining keys keep their relative order.
func (o *Object) Delete(key string) *Value {
	i := o.index(key)
	if i == -1 {
		return nil
	}
	v := o.elems[i]
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.elems = append(o.elems[:i], o.elems[i+1:]...)
	return v
}

// ToMap converts the object to host-native containers, recursively.
// Null values become nil entries. Warning: assumes the tree is acyclic.
func (o *Object) ToMap() map[string]any {
	res := make(map[string]any, len(o.keys))
	for i, k := range o.keys {
		res[k] = o.elems[i].ToInterface()
	}
	return res
}
