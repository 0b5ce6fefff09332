package encode

import "errors"

// ErrEncoding reports a value with no JSON text form, such as a
// non-finite number.
var ErrEncoding = errors.New("encoding error")
