package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrMissingValue = errors.New("missing value")
)

// SyntaxErr is a structured parse error carrying a message and the
// position (offset, line, column) at which it occurred.
type SyntaxErr struct {
	Err error
	Pos Pos
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func NewSyntaxErr(e error, p *Pos) *SyntaxErr {
	return &SyntaxErr{Err: e, Pos: *p}
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewSyntaxErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewSyntaxErr(fmt.Errorf("unexpected %s", what), p)
}
