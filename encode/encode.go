package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/xrbengine/xrb/format"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes v followed by a newline. Nothing is written if v contains
// a value the format cannot represent, such as a NaN float.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := bytes.NewBuffer(nil)
	if err := encodeTop(v, buf, es); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeDocument writes root as a document: in text format its members
// without enclosing braces, in any other format as Encode does.
func EncodeDocument(root *ir.Structure, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format != format.TextFormat {
		return Encode(root, w, opts...)
	}
	buf := bytes.NewBuffer(nil)
	for kp := range root.Members() {
		if err := encodeMember(kp, buf, es); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeTop(v ir.Value, buf *bytes.Buffer, es *EncState) error {
	if v == nil {
		return ir.ErrNilValue
	}
	switch es.format {
	case format.TextFormat:
		if kp, ok := v.(*ir.KeyPair); ok {
			if err := encodeMember(kp, buf, es); err != nil {
				return err
			}
		} else if err := encode(v, buf, es); err != nil {
			return err
		}
		buf.WriteByte('\n')
		return nil
	case format.ASTFormat:
		encodeAST(v, buf, es)
		return nil
	case format.JSONFormat:
		return encodeJSON(v, buf, es)
	case format.YAMLFormat:
		return encodeYAML(v, buf, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func writeIndent(buf *bytes.Buffer, es *EncState) {
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func writeSep(buf *bytes.Buffer, es *EncState, t ir.Type, sep string) {
	buf.WriteString(applyColor(es, t, SepColor, sep))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// encode writes v starting at the current column. Containers spanning
// several lines end on a line indented to es.depth.
func encode(v ir.Value, buf *bytes.Buffer, es *EncState) error {
	switch x := v.(type) {
	case *ir.Structure:
		return encodeStructure(x, buf, es)
	case *ir.Array:
		return encodeArray(x, buf, es)
	case *ir.KeyPair:
		return fmt.Errorf("%w: key pair %q outside a structure", ErrEncoding, x.Key())
	default:
		s, err := leafString(v)
		if err != nil {
			return err
		}
		buf.WriteString(applyColor(es, v.Type(), ValueColor, s))
		return nil
	}
}

func leafString(v ir.Value) (string, error) {
	switch x := v.(type) {
	case ir.Boolean:
		if x {
			return "true", nil
		}
		return "false", nil
	case ir.Sint32:
		return token.FormatSint(int32(x)), nil
	case ir.Uint32:
		return token.FormatUint(uint32(x)), nil
	case ir.Float:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v", ir.ErrUnprintable, f)
		}
		return token.FormatFloat(float32(x)), nil
	case ir.Character:
		return token.QuoteChar(byte(x)), nil
	case ir.String:
		return token.Quote(string(x)), nil
	}
	return "", fmt.Errorf("%w: %T is not a leaf", ErrEncoding, v)
}

// encodeMember writes `key value;` from the start of a line, without the
// final newline. Structures and multi-line arrays open on the next line.
func encodeMember(kp *ir.KeyPair, buf *bytes.Buffer, es *EncState) error {
	writeIndent(buf, es)
	buf.WriteString(applyColor(es, ir.KeyPairType, FieldColor, kp.Key()))
	if opensBlock(kp.Value) {
		buf.WriteByte('\n')
		writeIndent(buf, es)
	} else {
		buf.WriteByte(' ')
	}
	if err := encode(kp.Value, buf, es); err != nil {
		return err
	}
	writeSep(buf, es, ir.KeyPairType, ";")
	return nil
}

func opensBlock(v ir.Value) bool {
	switch x := v.(type) {
	case *ir.Structure:
		return true
	case *ir.Array:
		return x.Len() > 0 && !x.ShouldBeFormattedInline()
	}
	return false
}

func encodeStructure(s *ir.Structure, buf *bytes.Buffer, es *EncState) error {
	writeSep(buf, es, ir.StructureType, "{")
	buf.WriteByte('\n')
	es.depth++
	for kp := range s.Members() {
		if err := encodeMember(kp, buf, es); err != nil {
			es.depth--
			return err
		}
		buf.WriteByte('\n')
	}
	es.depth--
	writeIndent(buf, es)
	writeSep(buf, es, ir.StructureType, "}")
	return nil
}

func encodeArray(a *ir.Array, buf *bytes.Buffer, es *EncState) error {
	if a.Len() == 0 {
		writeSep(buf, es, ir.ArrayType, "[]")
		return nil
	}
	if a.ShouldBeFormattedInline() {
		writeSep(buf, es, ir.ArrayType, "[")
		for i, e := range a.All() {
			if i > 0 {
				writeSep(buf, es, ir.ArrayType, ",")
				buf.WriteByte(' ')
			}
			if err := encode(e, buf, es); err != nil {
				return err
			}
		}
		writeSep(buf, es, ir.ArrayType, "]")
		return nil
	}
	writeSep(buf, es, ir.ArrayType, "[")
	buf.WriteByte('\n')
	es.depth++
	n := a.Len()
	for i, e := range a.All() {
		writeIndent(buf, es)
		if err := encode(e, buf, es); err != nil {
			es.depth--
			return err
		}
		if i < n-1 {
			writeSep(buf, es, ir.ArrayType, ",")
		}
		buf.WriteByte('\n')
	}
	es.depth--
	writeIndent(buf, es)
	writeSep(buf, es, ir.ArrayType, "]")
	return nil
}
