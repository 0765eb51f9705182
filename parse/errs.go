package parse

import (
	"errors"
	"fmt"

	"github.com/xrbengine/xrb/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrParse)
)

// semanticErr reports an ir failure, such as a key collision, at pos.
func semanticErr(err error, pos *token.Pos) error {
	return fmt.Errorf("%w: %w at %s", ErrParse, err, pos)
}

func expected(what string, toks []token.Token, pi int) error {
	if pi >= len(toks) {
		return fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, what)
	}
	t := &toks[pi]
	return fmt.Errorf("%w: %w, found %s", ErrParse, token.ExpectedErr(what, t.Pos), t.Type)
}

// parseErr marks tokenizer failures as parse errors too, keeping their
// position available via errors.As.
func parseErr(err error) error {
	if errors.Is(err, ErrParse) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}
