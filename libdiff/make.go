package libdiff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/ir/path"
)

// Change is one difference between two trees. Delete and Replace paths
// index arrays of the old tree, Insert paths those of the new one.
type Change struct {
	Path     path.Path
	Op       Op
	From, To ir.Value
}

// MakeChange returns an Insert if from is nil, a Delete if to is nil and a
// Replace otherwise.
func MakeChange(p path.Path, from, to ir.Value) Change {
	switch {
	case from == nil:
		return Change{Path: p, Op: Insert, To: to}
	case to == nil:
		return Change{Path: p, Op: Delete, From: from}
	default:
		return Change{Path: p, Op: Replace, From: from, To: to}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s %s", c.Op, c.Path, valueString(c.To))
	case Delete:
		return fmt.Sprintf("%s %s %s", c.Op, c.Path, valueString(c.From))
	default:
		return fmt.Sprintf("%s %s %s -> %s", c.Op, c.Path, valueString(c.From), valueString(c.To))
	}
}

// valueString prints v on one line, falling back to Go syntax for values
// the text format cannot hold.
func valueString(v ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.Indent(0)); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}
