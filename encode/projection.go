package encode

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/token"
)

func encodeJSON(v ir.Value, buf *bytes.Buffer, es *EncState) error {
	d, err := ir.ToJSON(v)
	if err != nil {
		return err
	}
	if es.indent == 0 {
		buf.Write(d)
	} else if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

func encodeYAML(v ir.Value, buf *bytes.Buffer, es *EncState) error {
	y, err := toYAML(v)
	if err != nil {
		return err
	}
	opts := []yaml.EncodeOption{}
	if es.indent > 0 {
		opts = append(opts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(y, opts...)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// toYAML converts v into values goccy/go-yaml marshals in document order:
// structures become MapSlices.
func toYAML(v ir.Value) (any, error) {
	switch x := v.(type) {
	case *ir.Structure:
		res := make(yaml.MapSlice, 0, x.Len())
		for k, mv := range x.All() {
			y, err := toYAML(mv)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: y})
		}
		return res, nil
	case *ir.KeyPair:
		y, err := toYAML(x.Value)
		if err != nil {
			return nil, err
		}
		return yaml.MapSlice{{Key: x.Key(), Value: y}}, nil
	case *ir.Array:
		res := make([]any, 0, x.Len())
		for _, e := range x.All() {
			y, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res = append(res, y)
		}
		return res, nil
	case ir.Float:
		s, err := leafString(x)
		if err != nil {
			return nil, err
		}
		return strconv.ParseFloat(s, 64)
	case ir.Character:
		return string(token.CharRune(byte(x))), nil
	case nil:
		return nil, ir.ErrNilValue
	}
	return ir.ToAny(v), nil
}
