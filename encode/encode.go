// Package encode writes ir values as JSON text, compact or indented.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/laxjson/lax/ir"
	"github.com/laxjson/lax/token"
)

// EncState carries the output settings and the current nesting depth.
type EncState struct {
	depth  int
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w. With no options the output is compact; Indent
// produces the indented form. No trailing newline is written. Warning:
// assumes v is acyclic; a cyclic tree recurses without bound.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encodeValue(v, w, es)
}

func encodeValue(v *ir.Value, w io.Writer, es *EncState) error {
	if v != nil {
		switch v.Type {
		case ir.ArrayType:
			return encodeArray(v.Arr, w, es)
		case ir.ObjectType:
			return encodeObject(v.Obj, w, es)
		}
	}
	d, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	t := ir.NullType
	if v != nil {
		t = v.Type
	}
	return writeString(w, es.color(t, ValueColor, string(d)))
}

func encodeArray(a *ir.Array, w io.Writer, es *EncState) error {
	elems := a.Values()
	opener := es.color(ir.ArrayType, SepColor, "[")
	closer := es.color(ir.ArrayType, SepColor, "]")
	comma := es.color(ir.ArrayType, SepColor, ",")
	switch len(elems) {
	case 0:
		return writeString(w, opener+closer)
	case 1:
		// single-element containers stay on one line
		if err := writeString(w, opener); err != nil {
			return err
		}
		if err := encodeValue(elems[0], w, es); err != nil {
			return err
		}
		return writeString(w, closer)
	}
	if err := writeString(w, opener); err != nil {
		return err
	}
	es.depth++
	for i, e := range elems {
		if i > 0 {
			if err := writeString(w, comma); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := encodeValue(e, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return writeString(w, closer)
}

func encodeObject(o *ir.Object, w io.Writer, es *EncState) error {
	keys := o.Keys()
	opener := es.color(ir.ObjectType, SepColor, "{")
	closer := es.color(ir.ObjectType, SepColor, "}")
	comma := es.color(ir.ObjectType, SepColor, ",")
	switch len(keys) {
	case 0:
		return writeString(w, opener+closer)
	case 1:
		if err := writeString(w, opener); err != nil {
			return err
		}
		if err := encodeField(o, keys[0], w, es); err != nil {
			return err
		}
		return writeString(w, closer)
	}
	if err := writeString(w, opener); err != nil {
		return err
	}
	es.depth++
	for i, k := range keys {
		if i > 0 {
			if err := writeString(w, comma); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := encodeField(o, k, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return writeString(w, closer)
}

func encodeField(o *ir.Object, key string, w io.Writer, es *EncState) error {
	colon := es.color(ir.ObjectType, SepColor, ":")
	if es.indent > 0 {
		colon += " "
	}
	if err := writeString(w, es.color(ir.ObjectType, FieldColor, token.Quote(key))); err != nil {
		return err
	}
	if err := writeString(w, colon); err != nil {
		return err
	}
	return encodeValue(o.Opt(key), w, es)
}

func (es *EncState) writeNL(w io.Writer) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
