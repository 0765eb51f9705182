package encode

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/token"
)

// encodeAST dumps v one node per line with its type. Unlike the text
// format it never fails: unprintable floats are shown as Go formats them.
func encodeAST(v ir.Value, buf *bytes.Buffer, es *EncState) {
	writeIndent(buf, es)
	buf.WriteString(applyColor(es, v.Type(), CommentColor, v.Type().String()))
	switch x := v.(type) {
	case *ir.KeyPair:
		buf.WriteByte(' ')
		buf.WriteString(applyColor(es, ir.KeyPairType, FieldColor, x.Key()))
		buf.WriteByte('\n')
		es.depth++
		encodeAST(x.Value, buf, es)
		es.depth--
	case *ir.Structure:
		fmt.Fprintf(buf, " (%d members)\n", x.Len())
		es.depth++
		for kp := range x.Members() {
			encodeAST(kp, buf, es)
		}
		es.depth--
	case *ir.Array:
		fmt.Fprintf(buf, " (%d elements, level %d, ultimate %s)\n", x.Len(), x.ListRecursionLevel(), x.UltimateType())
		es.depth++
		for _, e := range x.All() {
			encodeAST(e, buf, es)
		}
		es.depth--
	default:
		buf.WriteByte(' ')
		buf.WriteString(applyColor(es, v.Type(), ValueColor, astLeaf(v)))
		buf.WriteByte('\n')
	}
}

func astLeaf(v ir.Value) string {
	switch x := v.(type) {
	case ir.Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case ir.Character:
		return fmt.Sprintf("%s (%d)", token.QuoteChar(byte(x)), byte(x))
	}
	s, _ := leafString(v)
	return s
}
