// Package path implements the pipe delimited paths addressing values in a
// data file tree.
//
// A path is a sequence of segments, each introduced by '|':
//
//	|map|entities|0|name
//
// A segment is one of
//   - an identifier, selecting a structure member
//   - a decimal index, selecting an array element
//   - "$", the last element of an array
//   - "+", a new element appended to an array (assignment only)
//
// The empty path addresses the value it is resolved against.
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xrbengine/xrb/token"
)

var ErrMalformed = errors.New("malformed path")

type Kind int

const (
	KeyKind Kind = iota
	IndexKind
	LastKind
	AppendKind
)

func (k Kind) String() string {
	switch k {
	case KeyKind:
		return "key"
	case IndexKind:
		return "index"
	case LastKind:
		return "last"
	case AppendKind:
		return "append"
	default:
		return "<unknown kind>"
	}
}

type Segment struct {
	Kind  Kind
	Key   string
	Index int
}

// IsArray reports whether the segment addresses an array.
func (s Segment) IsArray() bool {
	return s.Kind != KeyKind
}

func (s Segment) String() string {
	switch s.Kind {
	case KeyKind:
		return s.Key
	case IndexKind:
		return strconv.Itoa(s.Index)
	case LastKind:
		return "$"
	default:
		return "+"
	}
}

type Path []Segment

func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteByte('|')
		sb.WriteString(s.String())
	}
	return sb.String()
}

func Key(k string) Segment     { return Segment{Kind: KeyKind, Key: k} }
func Index(i int) Segment      { return Segment{Kind: IndexKind, Index: i} }
func Last() Segment            { return Segment{Kind: LastKind} }
func Append() Segment          { return Segment{Kind: AppendKind} }
func New(segs ...Segment) Path { return Path(segs) }

func Parse(p string) (Path, error) {
	if p == "" {
		return nil, nil
	}
	if p[0] != '|' {
		return nil, fmt.Errorf("%w: %q does not start with '|'", ErrMalformed, p)
	}
	parts := strings.Split(p[1:], "|")
	res := make(Path, 0, len(parts))
	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d of %q", err, i, p)
		}
		res = append(res, seg)
	}
	return res, nil
}

func MustParse(p string) Path {
	res, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return res
}

func parseSegment(s string) (Segment, error) {
	switch {
	case s == "":
		return Segment{}, fmt.Errorf("%w: empty segment", ErrMalformed)
	case s == "$":
		return Last(), nil
	case s == "+":
		return Append(), nil
	case isDecimal(s):
		i, err := strconv.Atoi(s)
		if err != nil {
			return Segment{}, fmt.Errorf("%w: index %q: %w", ErrMalformed, s, err)
		}
		return Index(i), nil
	case token.IsIdent(s):
		return Key(s), nil
	}
	return Segment{}, fmt.Errorf("%w: bad segment %q", ErrMalformed, s)
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
