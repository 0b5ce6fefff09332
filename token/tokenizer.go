package token

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// literalDelims are the bytes that terminate an unquoted literal.
var literalDelims = []byte(",:]}/\\\"[{;=#")

// Tokenizer is a single-pass cursor over a document. It replaces the
// classic one-character-pushback stream with an explicit index, so Back
// is just a cursor decrement and scans compose freely.
type Tokenizer struct {
	doc    []byte
	pos    int
	posDoc *PosDoc
}

func NewTokenizer(doc []byte) *Tokenizer {
	return &Tokenizer{
		doc:    doc,
		posDoc: NewPosDoc(doc),
	}
}

// More reports whether any bytes remain.
func (t *Tokenizer) More() bool {
	return t.pos < len(t.doc)
}

// Next returns the next byte, advancing the cursor, or 0 at end of input.
func (t *Tokenizer) Next() byte {
	if t.pos >= len(t.doc) {
		t.pos++
		return 0
	}
	c := t.doc[t.pos]
	t.pos++
	return c
}

// Back moves the cursor back one byte.
func (t *Tokenizer) Back() {
	if t.pos > 0 {
		t.pos--
	}
}

// NextClean skips whitespace and returns the next significant byte,
// or 0 at end of input.
func (t *Tokenizer) NextClean() byte {
	for {
		c := t.Next()
		if c == 0 || c > ' ' {
			return c
		}
	}
}

// Pos returns the current cursor position.
func (t *Tokenizer) Pos() *Pos {
	return t.posDoc.Pos(min(t.pos, len(t.doc)))
}

// SyntaxError produces a structured parse error at the current position.
func (t *Tokenizer) SyntaxError(msg string) error {
	return NewSyntaxErr(errors.New(msg), t.Pos())
}

// NextString scans a quoted string whose opening quote byte has already
// been consumed. quote may be '"' or '\'' under the lenient grammar.
func (t *Tokenizer) NextString(quote byte) (string, error) {
	sb := &strings.Builder{}
	for {
		c := t.Next()
		switch c {
		case 0, '\n', '\r':
			return "", NewSyntaxErr(ErrUnterminated, t.Pos())
		case '\\':
			c = t.Next()
			switch c {
			case 'b':
				sb.WriteByte('\b')
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case 'f':
				sb.WriteByte('\f')
			case 'r':
				sb.WriteByte('\r')
			case 'u':
				r, err := t.nextHex4()
				if err != nil {
					return "", err
				}
				if utf16.IsSurrogate(r) {
					r = t.nextSurrogatePair(r)
				}
				sb.WriteRune(r)
			case '"', '\'', '\\', '/':
				sb.WriteByte(c)
			default:
				return "", NewSyntaxErr(ErrBadEscape, t.Pos())
			}
		default:
			if c == quote {
				return sb.String(), nil
			}
			sb.WriteByte(c)
		}
	}
}

func (t *Tokenizer) nextHex4() (rune, error) {
	if t.pos+4 > len(t.doc) {
		return 0, NewSyntaxErr(ErrBadUnicode, t.Pos())
	}
	d := t.doc[t.pos : t.pos+4]
	if !allHex(d) {
		return 0, NewSyntaxErr(ErrBadUnicode, t.Pos())
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d); err != nil {
		return 0, NewSyntaxErr(ErrBadUnicode, t.Pos())
	}
	t.pos += 4
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

// nextSurrogatePair combines r with a following \uXXXX low surrogate if
// present. A lone surrogate decodes to utf8.RuneError.
func (t *Tokenizer) nextSurrogatePair(r rune) rune {
	if t.pos+6 <= len(t.doc) && t.doc[t.pos] == '\\' && t.doc[t.pos+1] == 'u' {
		save := t.pos
		t.pos += 2
		r2, err := t.nextHex4()
		if err == nil {
			if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
				return c
			}
		}
		t.pos = save
	}
	return utf8.RuneError
}

// NextLiteral scans an unquoted literal: a maximal run of bytes that are
// neither control characters nor literal delimiters. Surrounding
// whitespace is trimmed; the terminating byte is left for the caller.
func (t *Tokenizer) NextLiteral() string {
	start := t.pos
	for t.pos < len(t.doc) {
		c := t.doc[t.pos]
		if c < ' ' || bytes.IndexByte(literalDelims, c) >= 0 {
			break
		}
		t.pos++
	}
	return strings.TrimSpace(string(t.doc[start:t.pos]))
}
