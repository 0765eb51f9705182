package eval

import "github.com/xrbengine/xrb/ir"

// Env holds variables visible to expressions, in addition to the
// document's members.
type Env map[string]any

// Symbol is a function callable from expressions. Call receives the
// document the expression is evaluated against.
type Symbol interface {
	String() string
	Call(doc *ir.Structure, params ...any) (any, error)
	// Types are the function's signatures, as taken by expr.Function.
	Types() []any
}

type name string

func (s name) String() string {
	return string(s)
}

type funcSymbol struct {
	name
	fn    func(doc *ir.Structure, params ...any) (any, error)
	types []any
}

func (s *funcSymbol) Call(doc *ir.Structure, params ...any) (any, error) {
	return s.fn(doc, params...)
}

func (s *funcSymbol) Types() []any {
	return s.types
}

// Func makes a Symbol from a function and its signatures, such as
// new(func(string) int).
func Func(n string, fn func(doc *ir.Structure, params ...any) (any, error), types ...any) Symbol {
	return &funcSymbol{name: name(n), fn: fn, types: types}
}
