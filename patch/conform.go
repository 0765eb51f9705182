package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/token"
)

func conformDoc(orig *ir.Structure, d []byte) (*ir.Structure, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	v, err := conform(orig, x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	s, ok := v.(*ir.Structure)
	if !ok {
		return nil, fmt.Errorf("%w: result is a %s, not a document", ErrPatch, v.Type())
	}
	return s, nil
}

// conform converts x, decoded from JSON, to a value shaped like tmpl where
// the two agree. tmpl may be nil.
func conform(tmpl ir.Value, x any) (ir.Value, error) {
	switch y := x.(type) {
	case map[string]any:
		return conformStructure(tmpl, y)
	case []any:
		return conformArray(tmpl, y)
	case json.Number:
		return conformNumber(tmpl, y)
	case string:
		if tmpl != nil && tmpl.Type() == ir.CharacterType {
			if r, n := utf8.DecodeRuneInString(y); n == len(y) && n > 0 {
				if c, ok := token.RuneChar(r); ok {
					return ir.Character(c), nil
				}
			}
		}
		return ir.String(y), nil
	}
	return ir.FromAny(x)
}

// conformStructure keeps the members tmpl has in its order, followed by
// new members in key order.
func conformStructure(tmpl ir.Value, m map[string]any) (ir.Value, error) {
	var keys []string
	ts, _ := tmpl.(*ir.Structure)
	if ts != nil {
		for _, k := range ts.Keys() {
			if _, ok := m[k]; ok {
				keys = append(keys, k)
			}
		}
	}
	var extra []string
	for k := range m {
		if ts == nil || !ts.Has(k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	keys = append(keys, extra...)
	res := ir.NewStructure()
	for _, k := range keys {
		var mt ir.Value
		if ts != nil {
			mt = ts.Member(k)
		}
		v, err := conform(mt, m[k])
		if err != nil {
			return nil, err
		}
		if err := res.Add(k, v); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func conformArray(tmpl ir.Value, xs []any) (ir.Value, error) {
	ta, _ := tmpl.(*ir.Array)
	res := &ir.Array{}
	fallback := numberTemplate(xs)
	for i, x := range xs {
		var et ir.Value
		switch {
		case ta != nil && i < ta.Len():
			et = ta.At(i)
		case ta != nil && ta.Len() > 0:
			et = ta.At(0)
		default:
			et = fallback
		}
		v, err := conform(et, x)
		if err != nil {
			return nil, err
		}
		if err := res.Append(v); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return res, nil
}

// numberTemplate picks the one numeric type able to hold every number in
// xs: Float if any has a fraction or exponent, Sint32 if any is negative.
func numberTemplate(xs []any) ir.Value {
	var res ir.Value
	for _, x := range xs {
		n, ok := x.(json.Number)
		if !ok {
			return nil
		}
		switch {
		case strings.ContainsAny(string(n), ".eE"):
			return ir.Float(0)
		case strings.HasPrefix(string(n), "-"):
			res = ir.Sint32(0)
		}
	}
	return res
}

func conformNumber(tmpl ir.Value, n json.Number) (ir.Value, error) {
	s := string(n)
	if tmpl != nil {
		switch tmpl.Type() {
		case ir.FloatType:
			f, err := strconv.ParseFloat(s, 32)
			if err == nil {
				return ir.Float(f), nil
			}
		case ir.Sint32Type:
			i, err := strconv.ParseInt(s, 10, 64)
			if err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
				return ir.Sint32(i), nil
			}
		case ir.Uint32Type:
			u, err := strconv.ParseUint(s, 10, 32)
			if err == nil {
				return ir.Uint32(u), nil
			}
		}
	}
	return ir.FromAny(n)
}
