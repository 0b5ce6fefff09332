package token

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	doc := []byte("ab\ncd\nef")
	pd := NewPosDoc(doc)
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 2, 1},
	}
	for _, tt := range tests {
		l, c := pd.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("offset %d: got (%d,%d), want (%d,%d)", tt.off, l, c, tt.line, tt.col)
		}
	}
}

func TestPosString(t *testing.T) {
	pd := NewPosDoc([]byte("hello\nworld"))
	s := pd.Pos(7).String()
	if !strings.Contains(s, "offset 7") {
		t.Fatalf("got %q", s)
	}
	if !strings.Contains(s, "line=1") {
		t.Fatalf("got %q", s)
	}
}
