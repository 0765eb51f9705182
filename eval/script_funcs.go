package eval

import (
	"os"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/parse"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Structure) []expr.Option {
	syms := Symbols()
	res := make([]expr.Option, 0, len(syms))
	for _, s := range syms {
		res = append(res, expr.Function(s.String(), func(params ...any) (any, error) {
			return s.Call(doc, params...)
		}, s.Types()...))
	}
	return res
}

func Path() Symbol {
	return Func("path", func(doc *ir.Structure, params ...any) (any, error) {
		v, err := ir.PathElement(doc, params[0].(string))
		if err != nil {
			return nil, err
		}
		return ir.ToAny(v), nil
	}, new(func(string) any))
}

func Has() Symbol {
	return Func("has", func(doc *ir.Structure, params ...any) (any, error) {
		_, err := ir.PathElement(doc, params[0].(string))
		return err == nil, nil
	}, new(func(string) bool))
}

func TypeOf() Symbol {
	return Func("typeof", func(doc *ir.Structure, params ...any) (any, error) {
		v, err := ir.PathElement(doc, params[0].(string))
		if err != nil {
			return nil, err
		}
		return v.Type().String(), nil
	}, new(func(string) string))
}

func GetEnv() Symbol {
	return Func("getenv", func(_ *ir.Structure, params ...any) (any, error) {
		return os.Getenv(params[0].(string)), nil
	}, new(func(string) string))
}

func ToValue() Symbol {
	return Func("tovalue", func(_ *ir.Structure, params ...any) (any, error) {
		v, err := parse.ParseValue([]byte(params[0].(string)))
		if err != nil {
			return nil, err
		}
		return ir.ToAny(v), nil
	}, new(func(string) any))
}
