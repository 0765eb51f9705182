package gomap

import (
	"fmt"
	"reflect"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/ir/path"
	"github.com/xrbengine/xrb/parse"
)

// IRFromer is implemented by types that decode themselves.
type IRFromer interface {
	FromIR(ir.Value) error
}

var (
	irFromerType = reflect.TypeFor[IRFromer]()
	valueType    = reflect.TypeFor[ir.Value]()
)

// FromIR stores node in the value pointed to by v. Structure members with
// no corresponding field are ignored and fields with no member are left
// untouched.
func FromIR(node ir.Value, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if node == nil {
		return &UnmarshalError{Message: "nil value", Err: ir.ErrNilValue}
	}
	return fromIR(node, val.Elem(), nil)
}

// Load parses d as a document and stores it in v.
func Load(d []byte, v any, opts ...parse.ParseOption) error {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(doc, v)
}

func sub(p path.Path, seg path.Segment) path.Path {
	return append(p[:len(p):len(p)], seg)
}

func typeErr(p path.Path, want string, node ir.Value) error {
	return &TypeError{FieldPath: p.String(), Expected: want, Actual: node.Type().String()}
}

func fromIR(node ir.Value, val reflect.Value, p path.Path) error {
	if val.CanAddr() && val.Addr().Type().Implements(irFromerType) {
		if err := val.Addr().Interface().(IRFromer).FromIR(node); err != nil {
			return &UnmarshalError{FieldPath: p.String(), Message: err.Error(), Err: err}
		}
		return nil
	}
	if val.Type() == valueType {
		val.Set(reflect.ValueOf(ir.Clone(node)))
		return nil
	}
	if kp, ok := node.(*ir.KeyPair); ok {
		s := ir.NewStructure()
		if err := s.AddKeyPair(ir.Clone(kp).(*ir.KeyPair)); err != nil {
			return err
		}
		node = s
	}
	switch val.Kind() {
	case reflect.Pointer:
		if val.Type().Elem() == reflect.TypeFor[ir.Structure]() || val.Type().Elem() == reflect.TypeFor[ir.Array]() {
			c := reflect.ValueOf(ir.Clone(node))
			if !c.Type().AssignableTo(val.Type()) {
				return typeErr(p, val.Type().Elem().Name(), node)
			}
			val.Set(c)
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIR(node, val.Elem(), p)
	case reflect.Interface:
		if val.Type().NumMethod() != 0 {
			return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("cannot decode into %s", val.Type())}
		}
		val.Set(reflect.ValueOf(ir.ToAny(node)))
		return nil
	case reflect.Bool:
		b, ok := node.(ir.Boolean)
		if !ok {
			return typeErr(p, "Boolean", node)
		}
		val.SetBool(bool(b))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch x := node.(type) {
		case ir.Sint32:
			i = int64(x)
		case ir.Uint32:
			i = int64(x)
		default:
			return typeErr(p, "integer", node)
		}
		if val.OverflowInt(i) {
			return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("%d overflows %s", i, val.Type()), Err: ErrRange}
		}
		val.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var u uint64
		switch x := node.(type) {
		case ir.Uint32:
			u = uint64(x)
		case ir.Sint32:
			if x < 0 {
				return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("%d overflows %s", x, val.Type()), Err: ErrRange}
			}
			u = uint64(x)
		case ir.Character:
			if val.Kind() != reflect.Uint8 {
				return typeErr(p, "integer", node)
			}
			u = uint64(x)
		default:
			return typeErr(p, "integer", node)
		}
		if val.OverflowUint(u) {
			return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("%d overflows %s", u, val.Type()), Err: ErrRange}
		}
		val.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		switch x := node.(type) {
		case ir.Float:
			val.SetFloat(float64(x))
		case ir.Sint32:
			val.SetFloat(float64(x))
		case ir.Uint32:
			val.SetFloat(float64(x))
		default:
			return typeErr(p, "Float", node)
		}
		return nil
	case reflect.String:
		switch x := node.(type) {
		case ir.String:
			val.SetString(string(x))
		case ir.Character:
			val.SetString(ir.ToAny(x).(string))
		default:
			return typeErr(p, "String", node)
		}
		return nil
	case reflect.Slice:
		a, ok := node.(*ir.Array)
		if !ok {
			return typeErr(p, "Array", node)
		}
		s := reflect.MakeSlice(val.Type(), a.Len(), a.Len())
		for i, e := range a.All() {
			if err := fromIR(e, s.Index(i), sub(p, path.Index(i))); err != nil {
				return err
			}
		}
		val.Set(s)
		return nil
	case reflect.Array:
		a, ok := node.(*ir.Array)
		if !ok {
			return typeErr(p, "Array", node)
		}
		if a.Len() != val.Len() {
			return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("array of %d elements into %s", a.Len(), val.Type())}
		}
		for i, e := range a.All() {
			if err := fromIR(e, val.Index(i), sub(p, path.Index(i))); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		s, ok := node.(*ir.Structure)
		if !ok {
			return typeErr(p, "Structure", node)
		}
		if val.Type().Key().Kind() != reflect.String {
			return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("map key type %s is not a string", val.Type().Key())}
		}
		if val.IsNil() {
			val.Set(reflect.MakeMapWithSize(val.Type(), s.Len()))
		}
		for k, mv := range s.All() {
			ev := reflect.New(val.Type().Elem()).Elem()
			if err := fromIR(mv, ev, sub(p, path.Key(k))); err != nil {
				return err
			}
			val.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), ev)
		}
		return nil
	case reflect.Struct:
		s, ok := node.(*ir.Structure)
		if !ok {
			return typeErr(p, "Structure", node)
		}
		fields, err := GetStructFields(val.Type())
		if err != nil {
			return &UnmarshalError{FieldPath: p.String(), Message: err.Error(), Err: err}
		}
		for _, fi := range fields {
			mv := s.Member(fi.Name)
			if mv == nil {
				continue
			}
			fp := sub(p, path.Key(fi.Name))
			if fi.Char {
				c, ok := mv.(ir.Character)
				if !ok {
					return typeErr(fp, "Character", mv)
				}
				val.FieldByIndex(fi.Index).SetUint(uint64(c))
				continue
			}
			if err := fromIR(mv, val.FieldByIndex(fi.Index), fp); err != nil {
				return err
			}
		}
		return nil
	}
	return &UnmarshalError{FieldPath: p.String(), Message: fmt.Sprintf("unsupported type %s", val.Type())}
}
