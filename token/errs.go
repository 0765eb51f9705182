package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadChar      = errors.New("bad character literal")
	ErrNumber       = errors.New("malformed number")
	ErrRange        = errors.New("number out of range")
	ErrUnexpected   = errors.New("unexpected character")
	ErrSignSpace    = errors.New("sign must touch its number")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
