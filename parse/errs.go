package parse

import (
	"errors"
	"fmt"
)

// ErrParse tags every syntax failure from this package. The wrapped
// token.SyntaxErr carries the position diagnostics.
var ErrParse = errors.New("parse error")

func parseErr(err error) error {
	return fmt.Errorf("%w: %w", ErrParse, err)
}
