package ir

import (
	"errors"
	"math/big"
	"testing"
)

func TestBoolCoercion(t *testing.T) {
	a := ArrayOf(true, "TRUE", "False", 1, "yes")
	if got, err := a.GetBool(0); err != nil || !got {
		t.Fatalf("got %t, %v", got, err)
	}
	if got, err := a.GetBool(1); err != nil || !got {
		t.Fatalf("got %t, %v", got, err)
	}
	if got, err := a.GetBool(2); err != nil || got {
		t.Fatalf("got %t, %v", got, err)
	}
	if _, err := a.GetBool(3); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	// a stored number yields the default
	if got := a.OptBool(3, true); !got {
		t.Fatal("expected default")
	}
	if got := a.OptBool(4, false); got {
		t.Fatal("expected default")
	}
	if got := a.OptBool(99, true); !got {
		t.Fatal("expected default")
	}
}

func TestIntCoercion(t *testing.T) {
	a := ArrayOf(7, "42", 2.9, "abc")
	if got, err := a.GetInt(0); err != nil || got != 7 {
		t.Fatalf("got %d, %v", got, err)
	}
	if got, err := a.GetInt(1); err != nil || got != 42 {
		t.Fatalf("got %d, %v", got, err)
	}
	// float truncates toward zero
	if got, err := a.GetInt64(2); err != nil || got != 2 {
		t.Fatalf("got %d, %v", got, err)
	}
	if _, err := a.GetInt(3); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	if got := a.OptInt(3, -1); got != -1 {
		t.Fatalf("got %d", got)
	}
	if got := a.OptInt64(99, 5); got != 5 {
		t.Fatalf("got %d", got)
	}
}

func TestFloatCoercion(t *testing.T) {
	a := ArrayOf(3, "2.5", 0.25, "x")
	if got, err := a.GetFloat64(0); err != nil || got != 3 {
		t.Fatalf("got %v, %v", got, err)
	}
	if got, err := a.GetFloat64(1); err != nil || got != 2.5 {
		t.Fatalf("got %v, %v", got, err)
	}
	if got, err := a.GetFloat64(2); err != nil || got != 0.25 {
		t.Fatalf("got %v, %v", got, err)
	}
	if _, err := a.GetFloat64(3); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	if got := a.OptFloat64(3, 1.5); got != 1.5 {
		t.Fatalf("got %v", got)
	}
}

func TestBigCoercion(t *testing.T) {
	raw := "123456789012345678901234567890"
	a := ArrayOf(FromNumber(raw), 7, 2.5, "314")
	b, err := a.GetBigInt(0)
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != raw {
		t.Fatalf("got %s", b)
	}
	if b, err := a.GetBigInt(1); err != nil || b.Int64() != 7 {
		t.Fatalf("got %v, %v", b, err)
	}
	// floats do not silently truncate to big integers
	if _, err := a.GetBigInt(2); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	if b, err := a.GetBigInt(3); err != nil || b.Int64() != 314 {
		t.Fatalf("got %v, %v", b, err)
	}
	if got := a.OptBigInt(2, big.NewInt(-1)); got.Int64() != -1 {
		t.Fatalf("got %v", got)
	}
	bf, err := a.GetBigFloat(2)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := bf.Float64(); f != 2.5 {
		t.Fatalf("got %v", f)
	}
}

func TestStringAccessors(t *testing.T) {
	a := ArrayOf("s", 42, Null(), true)
	if got, err := a.GetString(0); err != nil || got != "s" {
		t.Fatalf("got %q, %v", got, err)
	}
	// getString does not stringify
	if _, err := a.GetString(1); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	// optString stringifies everything but null
	if got := a.OptString(1, ""); got != "42" {
		t.Fatalf("got %q", got)
	}
	if got := a.OptString(2, "dflt"); got != "dflt" {
		t.Fatalf("got %q", got)
	}
	if got := a.OptString(3, ""); got != "true" {
		t.Fatalf("got %q", got)
	}
	if got := a.OptString(99, "dflt"); got != "dflt" {
		t.Fatalf("got %q", got)
	}
}

func TestContainerAccessors(t *testing.T) {
	inner := ArrayOf(1)
	o := NewObject()
	if err := o.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	a := ArrayOf(inner, o, "nope")
	sub, err := a.GetArray(0)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Len() != 1 {
		t.Fatalf("len %d", sub.Len())
	}
	if _, err := a.GetArray(1); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	if got := a.OptArray(1); got != nil {
		t.Fatalf("got %v", got)
	}
	obj, err := a.GetObject(1)
	if err != nil {
		t.Fatal(err)
	}
	if !obj.Has("k") {
		t.Fatal("missing key")
	}
	if got := a.OptObject(2); got != nil {
		t.Fatalf("got %v", got)
	}
}

type suit string

const (
	hearts suit = "hearts"
	spades suit = "spades"
)

func TestEnumAccessors(t *testing.T) {
	a := ArrayOf("spades", "clubs", 3)
	got, err := GetEnum(a, 0, hearts, spades)
	if err != nil {
		t.Fatal(err)
	}
	if got != spades {
		t.Fatalf("got %q", got)
	}
	if _, err := GetEnum(a, 1, hearts, spades); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
	if got := OptEnum(a, 1, hearts, hearts, spades); got != hearts {
		t.Fatalf("got %q", got)
	}
	// the value's string form is matched, so numbers can name members
	if got, err := GetEnum(a, 2, suit("3")); err != nil || got != suit("3") {
		t.Fatalf("got %q, %v", got, err)
	}

	o := NewObject()
	if err := o.Set("s", "hearts"); err != nil {
		t.Fatal(err)
	}
	if got, err := GetEnumField(o, "s", hearts, spades); err != nil || got != hearts {
		t.Fatalf("got %q, %v", got, err)
	}
	if got := OptEnumField(o, "missing", spades, hearts, spades); got != spades {
		t.Fatalf("got %q", got)
	}
}
