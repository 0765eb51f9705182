package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrResult = errors.New("expression result has no value")

// Eval evaluates input against doc and converts the result to a value.
// A nil doc is treated as an empty document.
func Eval(doc *ir.Structure, input string, env Env) (ir.Value, error) {
	res, err := EvalAny(doc, input, env)
	if err != nil {
		return nil, err
	}
	v, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrResult, input, err)
	}
	return v, nil
}

// EvalAny is Eval without converting the result.
func EvalAny(doc *ir.Structure, input string, env Env) (any, error) {
	if doc == nil {
		doc = ir.NewStructure()
	}
	if debug.Eval() {
		debug.Log("eval", "expr", input)
	}
	program, err := expr.Compile(input, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	return vm.Run(program, vars(doc, env))
}

func vars(doc *ir.Structure, env Env) map[string]any {
	res := make(map[string]any, doc.Len()+len(env))
	for k, v := range doc.All() {
		res[k] = ir.ToAny(v)
	}
	for k, v := range env {
		res[k] = v
	}
	return res
}

// Expand returns a copy of doc in which every string of the form
// "$[expression]" is replaced by the expression's result. Expressions see
// doc as it was before expansion. Results must keep arrays homogeneous.
func Expand(doc *ir.Structure, env Env) (*ir.Structure, error) {
	v, err := expand(doc, doc, env)
	if err != nil {
		return nil, err
	}
	return v.(*ir.Structure), nil
}

func expand(doc *ir.Structure, v ir.Value, env Env) (ir.Value, error) {
	switch x := v.(type) {
	case ir.String:
		raw := GetRaw(string(x))
		if raw == "" {
			return x, nil
		}
		res, err := Eval(doc, raw, env)
		if err != nil {
			return nil, fmt.Errorf("error evaluating %q: %w", raw, err)
		}
		return res, nil
	case *ir.KeyPair:
		ev, err := expand(doc, x.Value, env)
		if err != nil {
			return nil, err
		}
		return ir.NewKeyPair(x.Key(), ev)
	case *ir.Structure:
		res := ir.NewStructure()
		for k, mv := range x.All() {
			ev, err := expand(doc, mv, env)
			if err != nil {
				return nil, err
			}
			if err := res.Add(k, ev); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ir.Array:
		res := &ir.Array{}
		for i, e := range x.All() {
			ev, err := expand(doc, e, env)
			if err != nil {
				return nil, err
			}
			if err := res.Append(ev); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
		return res, nil
	}
	return v, nil
}

// GetRaw extracts the expression from a "$[expression]" string, returning
// "" for any other string.
func GetRaw(v string) string {
	if !strings.HasPrefix(v, "$[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}
