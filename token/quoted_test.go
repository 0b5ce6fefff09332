package token

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"a\tb\rc\fd\be", `"a\tb\rc\fd\be"`},
		{"a\x01b", `"a\u0001b"`},
		{"a/b", `"a/b"`},
		{"héllo", `"héllo"`},
		{"😀", `"😀"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.in, got, tt.want)
		}
	}
}
