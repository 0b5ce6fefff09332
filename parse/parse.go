// Package parse builds ir values from lenient JSON text.
package parse

import (
	"strconv"
	"strings"

	"github.com/laxjson/lax/ir"
	"github.com/laxjson/lax/token"
)

// Parse reads one value of any type from the start of doc. Input after
// the value is left unread, not rejected.
func Parse(doc []byte) (*ir.Value, error) {
	p := &parser{t: token.NewTokenizer(doc)}
	return p.nextValue()
}

// ParseArray reads an array from the start of doc.
func ParseArray(doc []byte) (*ir.Array, error) {
	p := &parser{t: token.NewTokenizer(doc)}
	return p.nextArray()
}

// ParseObject reads an object from the start of doc.
func ParseObject(doc []byte) (*ir.Object, error) {
	p := &parser{t: token.NewTokenizer(doc)}
	return p.nextObject()
}

type parser struct {
	t *token.Tokenizer
}

func (p *parser) syntaxError(msg string) error {
	return parseErr(p.t.SyntaxError(msg))
}

func (p *parser) expected(what string) error {
	return parseErr(token.ExpectedErr(what, p.t.Pos()))
}

// nextValue consumes one full value, dispatching on the next clean
// byte: quoted string, container, or bare literal.
func (p *parser) nextValue() (*ir.Value, error) {
	c := p.t.NextClean()
	switch c {
	case '"', '\'':
		s, err := p.t.NextString(c)
		if err != nil {
			return nil, parseErr(err)
		}
		return ir.FromString(s), nil
	case '{':
		p.t.Back()
		o, err := p.nextObject()
		if err != nil {
			return nil, err
		}
		return ir.FromObject(o), nil
	case '[':
		p.t.Back()
		a, err := p.nextArray()
		if err != nil {
			return nil, err
		}
		return ir.FromArray(a), nil
	}
	p.t.Back()
	lit := p.t.NextLiteral()
	if lit == "" {
		return nil, parseErr(token.NewSyntaxErr(token.ErrMissingValue, p.t.Pos()))
	}
	return scanValue(lit), nil
}

// scanValue classifies a bare literal: reserved words first, then a
// number attempt, keeping the text as a string when nothing matches.
func scanValue(s string) *ir.Value {
	switch {
	case strings.EqualFold(s, "true"):
		return ir.FromBool(true)
	case strings.EqualFold(s, "false"):
		return ir.FromBool(false)
	case strings.EqualFold(s, "null"):
		return ir.Null()
	}
	nv, ok := token.ScanNumber(s)
	if !ok {
		return ir.FromString(s)
	}
	switch {
	case nv.Int != nil:
		return ir.FromInt(*nv.Int)
	case nv.Float != nil:
		return ir.FromFloat(*nv.Float)
	default:
		return ir.FromNumber(s)
	}
}

func (p *parser) nextArray() (*ir.Array, error) {
	if p.t.NextClean() != '[' {
		return nil, p.syntaxError("an array text must start with '['")
	}
	a := ir.NewArray()
	c := p.t.NextClean()
	if c == 0 {
		return nil, p.expected("a ',' or ']'")
	}
	if c == ']' {
		return a, nil
	}
	p.t.Back()
	for {
		if p.t.NextClean() == ',' {
			// comma elision: nothing before the comma means null
			p.t.Back()
			if err := a.Put(ir.Null()); err != nil {
				return nil, err
			}
		} else {
			p.t.Back()
			v, err := p.nextValue()
			if err != nil {
				return nil, err
			}
			if err := a.Put(v); err != nil {
				return nil, err
			}
		}
		switch p.t.NextClean() {
		case ',':
			c := p.t.NextClean()
			if c == 0 {
				return nil, p.expected("a ',' or ']'")
			}
			if c == ']' {
				// trailing comma
				return a, nil
			}
			p.t.Back()
		case ']':
			return a, nil
		default:
			return nil, p.expected("a ',' or ']'")
		}
	}
}

func (p *parser) nextObject() (*ir.Object, error) {
	if p.t.NextClean() != '{' {
		return nil, p.syntaxError("an object text must start with '{'")
	}
	o := ir.NewObject()
	for {
		c := p.t.NextClean()
		switch c {
		case 0:
			return nil, p.syntaxError("an object text must end with '}'")
		case '}':
			return o, nil
		}
		p.t.Back()
		kv, err := p.nextValue()
		if err != nil {
			return nil, err
		}
		key := keyText(kv)
		if p.t.NextClean() != ':' {
			return nil, p.expected("a ':' after a key")
		}
		if o.Has(key) {
			return nil, p.syntaxError("duplicate key " + strconv.Quote(key))
		}
		v, err := p.nextValue()
		if err != nil {
			return nil, err
		}
		if err := o.Set(key, v); err != nil {
			return nil, err
		}
		switch p.t.NextClean() {
		case ',':
			c := p.t.NextClean()
			if c == 0 {
				return nil, p.syntaxError("an object text must end with '}'")
			}
			if c == '}' {
				// trailing comma
				return o, nil
			}
			p.t.Back()
		case '}':
			return o, nil
		default:
			return nil, p.expected("a ',' or '}'")
		}
	}
}

// keyText renders a key value, quoted or bare, as its string form.
func keyText(v *ir.Value) string {
	if v.Type == ir.StringType {
		return v.Str
	}
	return v.String()
}
