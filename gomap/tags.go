package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// FieldInfo describes how a struct field maps to a structure member.
type FieldInfo struct {
	Name      string
	Index     []int
	OmitEmpty bool
	Char      bool
}

// ParseStructTag parses `key=value,flag` tag contents.
func ParseStructTag(tag string) (map[string]string, error) {
	res := map[string]string{}
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			return nil, fmt.Errorf("invalid tag: empty key in %q", part)
		}
		if !ok {
			res[k] = ""
			continue
		}
		res[k] = strings.Trim(strings.TrimSpace(v), "'")
	}
	return res, nil
}

var fieldCache sync.Map // reflect.Type -> []*FieldInfo

// GetStructFields returns the mapped fields of struct type typ in
// declaration order. Embedded structs without a tag are flattened.
func GetStructFields(typ reflect.Type) ([]*FieldInfo, error) {
	if v, ok := fieldCache.Load(typ); ok {
		return v.([]*FieldInfo), nil
	}
	res, err := structFields(typ, nil)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, fi := range res {
		if seen[fi.Name] {
			return nil, fmt.Errorf("%s: duplicate field %q", typ, fi.Name)
		}
		seen[fi.Name] = true
	}
	fieldCache.Store(typ, res)
	return res, nil
}

func structFields(typ reflect.Type, index []int) ([]*FieldInfo, error) {
	var res []*FieldInfo
	for i := range typ.NumField() {
		f := typ.Field(i)
		idx := append(append([]int(nil), index...), i)
		tag, hasTag := f.Tag.Lookup("xrb")
		if tag == "-" {
			continue
		}
		if f.Anonymous && !hasTag && f.Type.Kind() == reflect.Struct {
			sub, err := structFields(f.Type, idx)
			if err != nil {
				return nil, err
			}
			res = append(res, sub...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		opts, err := ParseStructTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", typ, f.Name, err)
		}
		fi := &FieldInfo{Name: f.Name, Index: idx}
		if name := opts["field"]; name != "" {
			fi.Name = name
		}
		_, fi.OmitEmpty = opts["omitempty"]
		_, fi.Char = opts["char"]
		if fi.Char && f.Type.Kind() != reflect.Uint8 {
			return nil, fmt.Errorf("%s.%s: char requires a byte field", typ, f.Name)
		}
		res = append(res, fi)
	}
	return res, nil
}
