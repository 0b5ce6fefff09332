package encode

import (
	"bytes"

	"github.com/laxjson/lax/ir"
)

// MustString renders v as indented JSON, panicking on failure.
func MustString(v *ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{Indent(2)}, opts...)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// ToString renders v as indented JSON, best effort: a tree that cannot
// be rendered yields "".
func ToString(v *ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{Indent(2)}, opts...)
	if err := Encode(v, buf, opts...); err != nil {
		return ""
	}
	return buf.String()
}
