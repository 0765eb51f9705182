package gomap

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/ir/path"
)

// IRToer is implemented by types that encode themselves.
type IRToer interface {
	ToIR() (ir.Value, error)
}

var irToerType = reflect.TypeFor[IRToer]()

// ToIR converts v to a data-file value. Nil pointers and interfaces have
// no representation: struct fields holding them are omitted and anywhere
// else they are an error.
func ToIR(v any) (ir.Value, error) {
	res, err := toIR(reflect.ValueOf(v), nil)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &MarshalError{Message: "nil value", Err: ir.ErrNilValue}
	}
	return res, nil
}

// ToDocument converts v, which must map to a Structure, to a document root.
func ToDocument(v any) (*ir.Structure, error) {
	res, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	s, ok := res.(*ir.Structure)
	if !ok {
		return nil, &TypeError{Expected: "Structure", Actual: res.Type().String()}
	}
	return s, nil
}

// Marshal converts v with ToDocument and prints it.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeDocument(doc, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toIR(val reflect.Value, p path.Path) (ir.Value, error) {
	if !val.IsValid() {
		return nil, nil
	}
	if val.Type().Implements(irToerType) {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return nil, nil
		}
		res, err := val.Interface().(IRToer).ToIR()
		if err != nil {
			return nil, &MarshalError{FieldPath: p.String(), Message: err.Error(), Err: err}
		}
		return res, nil
	}
	if val.Type().Implements(valueType) {
		if (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) && val.IsNil() {
			return nil, nil
		}
		return ir.Clone(val.Interface().(ir.Value)), nil
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil, nil
		}
		return toIR(val.Elem(), p)
	case reflect.Bool:
		return ir.Boolean(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := val.Int()
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, &MarshalError{FieldPath: p.String(), Message: fmt.Sprintf("%d does not fit Sint32", i), Err: ErrRange}
		}
		return ir.Sint32(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxUint32 {
			return nil, &MarshalError{FieldPath: p.String(), Message: fmt.Sprintf("%d does not fit Uint32", u), Err: ErrRange}
		}
		return ir.Uint32(u), nil
	case reflect.Float32, reflect.Float64:
		return ir.Float(float32(val.Float())), nil
	case reflect.String:
		return ir.String(val.String()), nil
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return &ir.Array{}, nil
		}
		elems := make([]ir.Value, val.Len())
		for i := range val.Len() {
			ep := sub(p, path.Index(i))
			e, err := toIR(val.Index(i), ep)
			if err != nil {
				return nil, err
			}
			if e == nil {
				return nil, &MarshalError{FieldPath: ep.String(), Message: "nil array element", Err: ir.ErrNilValue}
			}
			elems[i] = e
		}
		a, err := ir.NewArray(elems...)
		if err != nil {
			return nil, &MarshalError{FieldPath: p.String(), Message: err.Error(), Err: err}
		}
		return a, nil
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, &MarshalError{FieldPath: p.String(), Message: fmt.Sprintf("map key type %s is not a string", val.Type().Key())}
		}
		keys := make([]string, 0, val.Len())
		for _, k := range val.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := ir.NewStructure()
		for _, k := range keys {
			kp := sub(p, path.Key(k))
			mv, err := toIR(val.MapIndex(reflect.ValueOf(k).Convert(val.Type().Key())), kp)
			if err != nil {
				return nil, err
			}
			if mv == nil {
				continue
			}
			if err := res.Add(k, mv); err != nil {
				return nil, &MarshalError{FieldPath: kp.String(), Message: err.Error(), Err: err}
			}
		}
		return res, nil
	case reflect.Struct:
		fields, err := GetStructFields(val.Type())
		if err != nil {
			return nil, &MarshalError{FieldPath: p.String(), Message: err.Error(), Err: err}
		}
		res := ir.NewStructure()
		for _, fi := range fields {
			fv := val.FieldByIndex(fi.Index)
			if fi.OmitEmpty && fv.IsZero() {
				continue
			}
			fp := sub(p, path.Key(fi.Name))
			var mv ir.Value
			if fi.Char {
				mv = ir.Character(fv.Uint())
			} else if mv, err = toIR(fv, fp); err != nil {
				return nil, err
			}
			if mv == nil {
				continue
			}
			if err := res.Add(fi.Name, mv); err != nil {
				return nil, &MarshalError{FieldPath: fp.String(), Message: err.Error(), Err: err}
			}
		}
		return res, nil
	}
	return nil, &MarshalError{FieldPath: p.String(), Message: fmt.Sprintf("unsupported type %s", val.Type())}
}
