package ir

import (
	"errors"
	"math"
	"testing"
)

func TestPutPadding(t *testing.T) {
	a := NewArray()
	if err := a.PutAt(5, "x"); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 6 {
		t.Fatalf("len %d", a.Len())
	}
	for i := 0; i < 5; i++ {
		if !a.IsNull(i) {
			t.Fatalf("index %d not null", i)
		}
		// padded slots hold real nulls, so Get succeeds
		v, err := a.Get(i)
		if err != nil {
			t.Fatalf("index %d: %v", i, err)
		}
		if v.Type != NullType {
			t.Fatalf("index %d: %s", i, v.Type)
		}
	}
	s, err := a.GetString(5)
	if err != nil {
		t.Fatal(err)
	}
	if s != "x" {
		t.Fatalf("got %q", s)
	}
}

func TestPutAtOverwrite(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	if err := a.PutAt(1, "b"); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 3 {
		t.Fatalf("len %d", a.Len())
	}
	if got := a.OptString(1, ""); got != "b" {
		t.Fatalf("got %q", got)
	}
	if err := a.PutAt(-1, "z"); !errors.Is(err, ErrIndex) {
		t.Fatalf("got %v", err)
	}
}

func TestRemoveShift(t *testing.T) {
	a := ArrayOf("a", "b", "c")
	v := a.Remove(1)
	if v == nil || v.Str != "b" {
		t.Fatalf("removed %v", v)
	}
	if a.Len() != 2 {
		t.Fatalf("len %d", a.Len())
	}
	if got := a.String(); got != `["a","c"]` {
		t.Fatalf("got %s", got)
	}
	if v := a.Remove(5); v != nil {
		t.Fatalf("out of range removed %v", v)
	}
}

func TestAbsentSlot(t *testing.T) {
	a := NewArray()
	if err := a.Put(nil); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 1 {
		t.Fatalf("len %d", a.Len())
	}
	if v := a.Opt(0); v != nil {
		t.Fatalf("opt got %v", v)
	}
	if _, err := a.Get(0); !errors.Is(err, ErrIndex) {
		t.Fatalf("got %v", err)
	}
	if !a.IsNull(0) {
		t.Fatal("expected null")
	}
	// the absent slot still serializes as null
	if got := a.String(); got != `[null]` {
		t.Fatalf("got %s", got)
	}
}

func TestGetOutOfRange(t *testing.T) {
	a := ArrayOf(1)
	if _, err := a.Get(1); !errors.Is(err, ErrIndex) {
		t.Fatalf("got %v", err)
	}
	if _, err := a.Get(-1); !errors.Is(err, ErrIndex) {
		t.Fatalf("got %v", err)
	}
	v, err := a.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(v, a.Opt(0)) {
		t.Fatal("get and opt disagree")
	}
}

func TestPutNonFinite(t *testing.T) {
	a := NewArray()
	if err := a.Put(math.NaN()); !errors.Is(err, ErrValue) {
		t.Fatalf("got %v", err)
	}
	if err := a.Put(math.Inf(1)); !errors.Is(err, ErrValue) {
		t.Fatalf("got %v", err)
	}
	if a.Len() != 0 {
		t.Fatalf("len %d", a.Len())
	}
}
