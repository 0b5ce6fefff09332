package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/laxjson/lax/ir"
)

type parseTest struct {
	in   string
	want string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{`null`, `null`},
		{`NULL`, `null`},
		{`true`, `true`},
		{`TRUE`, `true`},
		{`false`, `false`},
		{`22`, `22`},
		{`-42`, `-42`},
		{`3.5`, `3.5`},
		{`1e14`, `1e+14`},
		{`123456789012345678901234567890`, `123456789012345678901234567890`},
		{`"hello"`, `"hello"`},
		{`'yo'`, `"yo"`},
		{`hello`, `"hello"`},
		{`hello world`, `"hello world"`},
		{`[1 2]`, `["1 2"]`},
		{`[]`, `[]`},
		{`[a]`, `["a"]`},
		{`[a,b]`, `["a","b"]`},
		{`[ 1 , 2 ]`, `[1,2]`},
		{`[1,2,]`, `[1,2]`},
		{`[1,,2]`, `[1,null,2]`},
		{`[,]`, `[null]`},
		{`[[]]`, `[[]]`},
		{`[a,[b,[c]]]`, `["a",["b",["c"]]]`},
		{`{}`, `{}`},
		{`{a: b}`, `{"a":"b"}`},
		{`{a: 1,}`, `{"a":1}`},
		{`{'k': 'v'}`, `{"k":"v"}`},
		{`{null: 1}`, `{"null":1}`},
		{"{\n  a: {b: 9},\n  c: {d: 8}\n}", `{"a":{"b":9},"c":{"d":8}}`},
		{`{ "a": [1,2], "b": {c: 3.5} }`, `{"a":[1,2],"b":{"c":3.5}}`},
		{`[0, {"f": 2, "g": 3}]`, `[0,{"f":2,"g":3}]`},
	}
	for _, pt := range pts {
		v, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if got := v.String(); got != pt.want {
			t.Errorf("%q: got %s, want %s", pt.in, got, pt.want)
		}
	}
}

func TestParseErr(t *testing.T) {
	errTests := []string{
		``,
		`[1,2`,
		`[`,
		`{`,
		`{a 1}`,
		`{a: 1 b: 2}`,
		`{a: }`,
		`{a: 1, a: 2}`,
		`"unterminated`,
		`'unterminated`,
	}
	for _, in := range errTests {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: error %v does not match ErrParse", in, err)
		}
	}
}

func TestParseContainerStart(t *testing.T) {
	if _, err := ParseArray([]byte(`{}`)); err == nil {
		t.Fatal("expected error")
	}
	if _, err := ParseObject([]byte(`[]`)); err == nil {
		t.Fatal("expected error")
	}
	a, err := ParseArray([]byte(` [1] `))
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 1 {
		t.Fatalf("len %d", a.Len())
	}
	o, err := ParseObject([]byte(`{a: 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if !o.Has("a") {
		t.Fatal("missing key a")
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{a: [1, 2.5, true, null, 'x'], b: {c: [], d: {}}}`,
		`[1e14, -0.25, "q\"z", [false]]`,
		`[123456789012345678901234567890]`,
	}
	for _, doc := range docs {
		v1, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		s1 := v1.String()
		v2, err := Parse([]byte(s1))
		if err != nil {
			t.Fatalf("reparse %q: %v", s1, err)
		}
		if !ir.Equal(v1, v2) {
			t.Fatalf("%q: reparse not equal, got %s", doc, v2)
		}
		if s2 := v2.String(); s1 != s2 {
			t.Fatalf("%q: second pass %q != first %q", doc, s2, s1)
		}
	}
}

func TestParseToInterface(t *testing.T) {
	v, err := Parse([]byte(`{a: [1, two, 3.5], b: null}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{int64(1), "two", 3.5},
		"b": nil,
	}
	if diff := cmp.Diff(want, v.ToInterface()); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}
