package token

import (
	"bytes"
	"fmt"
)

type tokenOpts struct {
	name string
}

type TokenOpt func(*tokenOpts)

// TokenFilename names the document in positions.
func TokenFilename(name string) TokenOpt {
	return func(o *tokenOpts) { o.name = name }
}

// Tokenize appends the tokens of src to dst. White space and comments,
// both // to end of line and /* */, are skipped.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	posDoc := NewPosDoc(o.name, src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			i++
			continue
		case '/':
			l, err := comment(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			i += l
			continue
		}
		tok := Token{Pos: posDoc.Pos(i)}
		l := 1
		switch {
		case isIdentStart(c):
			l = identLen(src[i:])
			tok.Type = TIdent
			switch string(src[i : i+l]) {
			case "true":
				tok.Type = TTrue
			case "false":
				tok.Type = TFalse
			}
		case asciiDigit(c):
			var isFloat bool
			var err error
			l, isFloat, err = number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, tok.Pos)
			}
			tok.Type = TInteger
			if isFloat {
				tok.Type = TFloat
			}
		case c == '"' || c == '\'':
			var err error
			l, err = quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, tok.Pos)
			}
			tok.Type = TString
			if c == '\'' {
				tok.Type = TChar
				_, err = UnquoteChar(src[i : i+l])
			} else {
				_, err = Unquote(src[i : i+l])
			}
			if err != nil {
				return nil, NewTokenizeErr(err, tok.Pos)
			}
		case c == '+' || c == '-':
			tok.Type = TSign
		case c == '{':
			tok.Type = TLCurl
		case c == '}':
			tok.Type = TRCurl
		case c == '[':
			tok.Type = TLSquare
		case c == ']':
			tok.Type = TRSquare
		case c == ',':
			tok.Type = TComma
		case c == ';':
			tok.Type = TSemi
		default:
			return nil, UnexpectedErr(fmt.Sprintf("%q", c), tok.Pos)
		}
		tok.Bytes = src[i : i+l]
		dst = append(dst, tok)
		i += l
	}
	return dst, nil
}

func comment(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, fmt.Errorf("%w '/'", ErrUnexpected)
	}
	switch d[1] {
	case '/':
		j := bytes.IndexByte(d, '\n')
		if j == -1 {
			return len(d), nil
		}
		return j + 1, nil
	case '*':
		j := bytes.Index(d[2:], []byte("*/"))
		if j == -1 {
			return 0, fmt.Errorf("%w comment", ErrUnterminated)
		}
		return j + 4, nil
	default:
		return 0, fmt.Errorf("%w '/'", ErrUnexpected)
	}
}

// quoted returns the length of the literal quoted by d[0]. Literals end at
// the matching unescaped quote and may not span lines.
func quoted(d []byte) (int, error) {
	q := d[0]
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			i++
		case q:
			return i + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w literal at end of line", ErrUnterminated)
		}
	}
	return 0, fmt.Errorf("%w literal at end of input", ErrUnterminated)
}
