package ir

import "math/big"

// Typed accessors on Array and Object. Each Get pairs lookup with a
// coercion from coerce.go; each Opt swallows every failure kind of the
// corresponding Get (absent slot, wrong type, parse error) and returns
// the caller's default instead.

func (a *Array) GetBool(index int) (bool, error) {
	v, err := a.Get(index)
	if err != nil {
		return false, err
	}
	return coerceBool(v)
}

func (a *Array) OptBool(index int, def bool) bool {
	v := a.Opt(index)
	if v == nil {
		return def
	}
	b, err := coerceBool(v)
	if err != nil {
		return def
	}
	return b
}

func (a *Array) GetInt(index int) (int, error) {
	n, err := a.GetInt64(index)
	return int(n), err
}

func (a *Array) OptInt(index int, def int) int {
	if n, err := a.GetInt(index); err == nil {
		return n
	}
	return def
}

func (a *Array) GetInt64(index int) (int64, error) {
	v, err := a.Get(index)
	if err != nil {
		return 0, err
	}
	return coerceInt64(v)
}

func (a *Array) OptInt64(index int, def int64) int64 {
	if n, err := a.GetInt64(index); err == nil {
		return n
	}
	return def
}

func (a *Array) GetFloat64(index int) (float64, error) {
	v, err := a.Get(index)
	if err != nil {
		return 0, err
	}
	return coerceFloat64(v)
}

func (a *Array) OptFloat64(index int, def float64) float64 {
	if f, err := a.GetFloat64(index); err == nil {
		return f
	}
	return def
}

func (a *Array) GetBigInt(index int) (*big.Int, error) {
	v, err := a.Get(index)
	if err != nil {
		return nil, err
	}
	return coerceBigInt(v)
}

func (a *Array) OptBigInt(index int, def *big.Int) *big.Int {
	if b, err := a.GetBigInt(index); err == nil {
		return b
	}
	return def
}

func (a *Array) GetBigFloat(index int) (*big.Float, error) {
	v, err := a.Get(index)
	if err != nil {
		return nil, err
	}
	return coerceBigFloat(v)
}

func (a *Array) OptBigFloat(index int, def *big.Float) *big.Float {
	if b, err := a.GetBigFloat(index); err == nil {
		return b
	}
	return def
}

// GetString accepts only a stored string; see OptString for the
// stringifying variant.
func (a *Array) GetString(index int) (string, error) {
	v, err := a.Get(index)
	if err != nil {
		return "", err
	}
	return coerceString(v)
}

// OptString returns def when the slot is absent or holds JSON null, and
// otherwise the value's textual form, whatever its type.
func (a *Array) OptString(index int, def string) string {
	v := a.Opt(index)
	if v == nil || v.Type == NullType {
		return def
	}
	return textOf(v)
}

func (a *Array) GetArray(index int) (*Array, error) {
	v, err := a.Get(index)
	if err != nil {
		return nil, err
	}
	return coerceArray(v)
}

func (a *Array) OptArray(index int) *Array {
	if sub, err := a.GetArray(index); err == nil {
		return sub
	}
	return nil
}

func (a *Array) GetObject(index int) (*Object, error) {
	v, err := a.Get(index)
	if err != nil {
		return nil, err
	}
	return coerceObject(v)
}

func (a *Array) OptObject(index int) *Object {
	if o, err := a.GetObject(index); err == nil {
		return o
	}
	return nil
}

// GetEnum matches the value's string form exactly against the member
// names, returning ErrType when none matches.
func GetEnum[E ~string](a *Array, index int, members ...E) (E, error) {
	v, err := a.Get(index)
	if err != nil {
		var zero E
		return zero, err
	}
	return coerceEnum(v, members)
}

func OptEnum[E ~string](a *Array, index int, def E, members ...E) E {
	if e, err := GetEnum(a, index, members...); err == nil {
		return e
	}
	return def
}

func (o *Object) GetBool(key string) (bool, error) {
	v, err := o.Get(key)
	if err != nil {
		return false, err
	}
	return coerceBool(v)
}

func (o *Object) OptBool(key string, def bool) bool {
	v := o.Opt(key)
	if v == nil {
		return def
	}
	b, err := coerceBool(v)
	if err != nil {
		return def
	}
	return b
}

func (o *Object) GetInt(key string) (int, error) {
	n, err := o.GetInt64(key)
	return int(n), err
}

func (o *Object) OptInt(key string, def int) int {
	if n, err := o.GetInt(key); err == nil {
		return n
	}
	return def
}

func (o *Object) GetInt64(key string) (int64, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	return coerceInt64(v)
}

func (o *Object) OptInt64(key string, def int64) int64 {
	if n, err := o.GetInt64(key); err == nil {
		return n
	}
	return def
}

func (o *Object) GetFloat64(key string) (float64, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	return coerceFloat64(v)
}

func (o *Object) OptFloat64(key string, def float64) float64 {
	if f, err := o.GetFloat64(key); err == nil {
		return f
	}
	return def
}

func (o *Object) GetBigInt(key string) (*big.Int, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	return coerceBigInt(v)
}

func (o *Object) OptBigInt(key string, def *big.Int) *big.Int {
	if b, err := o.GetBigInt(key); err == nil {
		return b
	}
	return def
}

func (o *Object) GetBigFloat(key string) (*big.Float, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	return coerceBigFloat(v)
}

func (o *Object) OptBigFloat(key string, def *big.Float) *big.Float {
	if b, err := o.GetBigFloat(key); err == nil {
		return b
	}
	return def
}

func (o *Object) GetString(key string) (string, error) {
	v, err := o.Get(key)
	if err != nil {
		return "", err
	}
	return coerceString(v)
}

func (o *Object) OptString(key string, def string) string {
	v := o.Opt(key)
	if v == nil || v.Type == NullType {
		return def
	}
	return textOf(v)
}

func (o *Object) GetArray(key string) (*Array, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	return coerceArray(v)
}

func (o *Object) OptArray(key string) *Array {
	if a, err := o.GetArray(key); err == nil {
		return a
	}
	return nil
}

func (o *Object) GetObject(key string) (*Object, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	return coerceObject(v)
}

func (o *Object) OptObject(key string) *Object {
	if sub, err := o.GetObject(key); err == nil {
		return sub
	}
	return nil
}

func GetEnumField[E ~string](o *Object, key string, members ...E) (E, error) {
	v, err := o.Get(key)
	if err != nil {
		var zero E
		return zero, err
	}
	return coerceEnum(v, members)
}

func OptEnumField[E ~string](o *Object, key string, def E, members ...E) E {
	if e, err := GetEnumField(o, key, members...); err == nil {
		return e
	}
	return def
}
