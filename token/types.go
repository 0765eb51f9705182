package token

import "fmt"

type TokenType int

const (
	TIdent TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TChar
	TString
	TSign
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TSemi
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TChar:    "TChar",
		TString:  "TString",
		TSign:    "TSign",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TSemi:    "TSemi",
	}[t]
}

// Token is a lexeme of a document. Bytes holds the source text, quotes
// included for strings and characters.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded text of string tokens and the source text of
// any other token.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(t.Bytes)
		if err != nil {
			return string(t.Bytes)
		}
		return s
	default:
		return string(t.Bytes)
	}
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
