package parse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/token"
)

// Parse parses a document: a sequence of key value pairs forming an
// implicit root structure. On any error it returns a nil document.
func Parse(d []byte, opts ...ParseOption) (*ir.Structure, error) {
	pOpts := newParseOpts(opts)
	res, err := parseDoc(d, pOpts)
	if err != nil {
		err = parseErr(err)
		if pOpts.logger != nil {
			pOpts.logger.Warn("parse failed", "file", pOpts.filename, "error", err)
		}
		return nil, err
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Structure, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Structure, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// ParseFile parses the file at path, naming it in error positions.
func ParseFile(path string, opts ...ParseOption) (*ir.Structure, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, append([]ParseOption{ParseFilename(path)}, opts...)...)
}

// Load parses the file at path for content loading: failures, including
// failure to read the file, are logged as warnings on logger (slog.Default
// if nil) and yield a nil document.
func Load(path string, logger *slog.Logger) *ir.Structure {
	if logger == nil {
		logger = slog.Default()
	}
	res, err := ParseFile(path, ParseLogger(logger))
	if err != nil {
		if !errors.Is(err, ErrParse) {
			logger.Warn("unable to read data file", "file", path, "error", err)
		}
		return nil
	}
	return res
}

// ParseValue parses a single value, such as `[1, 2]` or `+3`.
func ParseValue(d []byte, opts ...ParseOption) (ir.Value, error) {
	pOpts := newParseOpts(opts)
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, parseErr(err)
	}
	pi := 0
	v, err := parseValue(toks, &pi, pOpts)
	if err != nil {
		return nil, parseErr(err)
	}
	if pi != len(toks) {
		return nil, expected("end of input", toks, pi)
	}
	return v, nil
}

func parseDoc(d []byte, opts *parseOpts) (*ir.Structure, error) {
	toks, err := token.Tokenize(nil, d, opts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		token.LogTokens(toks, "parse")
	}
	root := ir.NewStructure()
	pi := 0
	for pi < len(toks) {
		if err := parseMember(root, toks, &pi, opts); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// parseMember parses `key value ;` and adds it to s.
func parseMember(s *ir.Structure, toks []token.Token, pi *int, opts *parseOpts) error {
	if *pi >= len(toks) || toks[*pi].Type != token.TIdent {
		return expected("key", toks, *pi)
	}
	kt := &toks[*pi]
	*pi++
	v, err := parseValue(toks, pi, opts)
	if err != nil {
		return err
	}
	if *pi >= len(toks) || toks[*pi].Type != token.TSemi {
		return expected("';'", toks, *pi)
	}
	*pi++
	if err := s.Add(string(kt.Bytes), v); err != nil {
		return semanticErr(err, kt.Pos)
	}
	return nil
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (ir.Value, error) {
	if *pi >= len(toks) {
		return nil, expected("value", toks, *pi)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TTrue:
		*pi++
		return ir.Boolean(true), nil
	case token.TFalse:
		*pi++
		return ir.Boolean(false), nil
	case token.TSign:
		return parseSigned(toks, pi)
	case token.TInteger:
		*pi++
		u, err := token.ParseInteger(t.Bytes)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		if u > math.MaxUint32 {
			return nil, token.NewTokenizeErr(fmt.Errorf("%w: %s exceeds 32 bits", token.ErrRange, t.Bytes), t.Pos)
		}
		return ir.Uint32(u), nil
	case token.TFloat:
		*pi++
		f, err := token.ParseFloat(t.Bytes)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		return ir.Float(f), nil
	case token.TChar:
		*pi++
		c, err := token.UnquoteChar(t.Bytes)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		return ir.Character(c), nil
	case token.TString:
		return parseStrings(toks, pi)
	case token.TLSquare:
		*pi++
		return parseArray(toks, pi, t.Pos, opts)
	case token.TLCurl:
		*pi++
		return parseStructure(toks, pi, opts)
	default:
		return nil, expected("value", toks, *pi)
	}
}

// parseSigned parses a sign token followed, without space, by a number.
// Signed integers are Sint32; the sign of a float is applied to its
// magnitude.
func parseSigned(toks []token.Token, pi *int) (ir.Value, error) {
	st := &toks[*pi]
	*pi++
	if *pi >= len(toks) {
		return nil, expected("number after sign", toks, *pi)
	}
	nt := &toks[*pi]
	if nt.Type != token.TInteger && nt.Type != token.TFloat {
		return nil, expected("number after sign", toks, *pi)
	}
	if nt.Pos.I != st.End() {
		return nil, token.NewTokenizeErr(token.ErrSignSpace, st.Pos)
	}
	*pi++
	negative := st.Bytes[0] == '-'
	if nt.Type == token.TFloat {
		f, err := token.ParseFloat(nt.Bytes)
		if err != nil {
			return nil, token.NewTokenizeErr(err, nt.Pos)
		}
		sign := ir.Positive
		if negative {
			sign = ir.Negative
		}
		return ir.Float(f).Sign(sign), nil
	}
	u, err := token.ParseInteger(nt.Bytes)
	if err != nil {
		return nil, token.NewTokenizeErr(err, nt.Pos)
	}
	limit := uint64(math.MaxInt32)
	if negative {
		limit++
	}
	if u > limit {
		return nil, token.NewTokenizeErr(fmt.Errorf("%w: %s%s is not a Sint32", token.ErrRange, st.Bytes, nt.Bytes), st.Pos)
	}
	if negative {
		return ir.Sint32(-int64(u)), nil
	}
	return ir.Sint32(u), nil
}

// parseStrings concatenates adjacent string literals.
func parseStrings(toks []token.Token, pi *int) (ir.Value, error) {
	var res ir.String
	for *pi < len(toks) && toks[*pi].Type == token.TString {
		t := &toks[*pi]
		s, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		res = res.Append(ir.String(s))
		*pi++
	}
	return res, nil
}

func parseArray(toks []token.Token, pi *int, open *token.Pos, opts *parseOpts) (ir.Value, error) {
	arr := &ir.Array{}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unclosed '[' at %s", ErrUnexpectedEOF, open)
		}
		if toks[*pi].Type == token.TRSquare {
			*pi++
			return arr, nil
		}
		vt := &toks[*pi]
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(v); err != nil {
			return nil, semanticErr(err, vt.Pos)
		}
		if *pi < len(toks) {
			switch toks[*pi].Type {
			case token.TComma:
				*pi++
				continue
			case token.TRSquare:
				continue
			}
		}
		return nil, expected("',' or ']'", toks, *pi)
	}
}

func parseStructure(toks []token.Token, pi *int, opts *parseOpts) (ir.Value, error) {
	s := ir.NewStructure()
	for {
		if *pi >= len(toks) {
			return nil, expected("'}'", toks, *pi)
		}
		if toks[*pi].Type == token.TRCurl {
			*pi++
			return s, nil
		}
		if err := parseMember(s, toks, pi, opts); err != nil {
			return nil, err
		}
	}
}
