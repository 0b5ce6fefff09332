package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectSetGet(t *testing.T) {
	o := NewObject()
	if err := o.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := o.Set("b", "two"); err != nil {
		t.Fatal(err)
	}
	if err := o.Set("a", 10); err != nil {
		t.Fatal(err)
	}
	// overwrite keeps position
	if diff := cmp.Diff([]string{"a", "b"}, o.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	n, err := o.GetInt("a")
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Fatalf("got %d", n)
	}
	if _, err := o.Get("missing"); !errors.Is(err, ErrIndex) {
		t.Fatalf("got %v", err)
	}
	if v := o.Opt("missing"); v != nil {
		t.Fatalf("got %v", v)
	}
}

func TestObjectSetNilDeletes(t *testing.T) {
	o := NewObject()
	if err := o.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := o.Set("a", nil); err != nil {
		t.Fatal(err)
	}
	if o.Has("a") {
		t.Fatal("key not removed")
	}
	if o.Len() != 0 {
		t.Fatalf("len %d", o.Len())
	}
}

func TestObjectDelete(t *testing.T) {
	o := NewObject()
	for _, k := range []string{"a", "b", "c"} {
		if err := o.Set(k, k); err != nil {
			t.Fatal(err)
		}
	}
	v := o.Delete("b")
	if v == nil || v.Str != "b" {
		t.Fatalf("deleted %v", v)
	}
	if diff := cmp.Diff([]string{"a", "c"}, o.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if v := o.Delete("b"); v != nil {
		t.Fatalf("second delete %v", v)
	}
}

func TestObjectIsNull(t *testing.T) {
	o := NewObject()
	if err := o.Set("n", Null()); err != nil {
		t.Fatal(err)
	}
	if !o.IsNull("n") {
		t.Fatal("stored null not null")
	}
	if !o.IsNull("absent") {
		t.Fatal("absent key not null")
	}
	// a stored null is still present
	if !o.Has("n") {
		t.Fatal("null key missing")
	}
	if got := o.OptString("n", "dflt"); got != "dflt" {
		t.Fatalf("got %q", got)
	}
}

func TestObjectOf(t *testing.T) {
	o := ObjectOf(map[string]any{"b": 2, "a": 1})
	if diff := cmp.Diff([]string{"a", "b"}, o.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	want := map[string]any{"a": int64(1), "b": int64(2)}
	if diff := cmp.Diff(want, o.ToMap()); diff != "" {
		t.Fatalf("map (-want +got):\n%s", diff)
	}
}
