package ir

import (
	"fmt"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/ir/path"
)

// PathElement resolves p against v. Key pairs met along the way are
// descended into transparently.
func PathElement(v Value, p string) (Value, error) {
	segs, err := path.Parse(p)
	if err != nil {
		return nil, &PathError{Path: p, Err: err}
	}
	return Lookup(v, segs)
}

// Lookup resolves a parsed path against v.
func Lookup(v Value, segs path.Path) (Value, error) {
	cur := v
	for i, seg := range segs {
		cur = unwrapKeyPair(cur)
		next, err := step(cur, seg)
		if err != nil {
			return nil, &PathError{Path: segs.String(), Segment: seg.String(), Err: err}
		}
		if debug.Path() {
			debug.Log("path step", "path", segs.String(), "segment", i, "type", next.Type())
		}
		cur = next
	}
	return unwrapKeyPair(cur), nil
}

func unwrapKeyPair(v Value) Value {
	for {
		kp, ok := v.(*KeyPair)
		if !ok {
			return v
		}
		v = kp.Value
	}
}

func step(cur Value, seg path.Segment) (Value, error) {
	switch c := cur.(type) {
	case *Structure:
		if seg.Kind != path.KeyKind {
			return nil, fmt.Errorf("%w: %s segment on a structure", ErrTypeMismatch, seg.Kind)
		}
		m := c.Member(seg.Key)
		if m == nil {
			return nil, ErrUnknownKey
		}
		return m, nil
	case *Array:
		i, err := arrayIndex(c, seg)
		if err != nil {
			return nil, err
		}
		return c.elems[i], nil
	case nil:
		return nil, ErrNilValue
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, cur.Type())
	}
}

// arrayIndex resolves an existing element index of a for seg.
func arrayIndex(a *Array, seg path.Segment) (int, error) {
	var i int
	switch seg.Kind {
	case path.KeyKind:
		return 0, fmt.Errorf("%w: key on an array", ErrTypeMismatch)
	case path.AppendKind:
		return 0, fmt.Errorf("%w: '+' only assigns", ErrMalformedPath)
	case path.LastKind:
		i = len(a.elems) - 1
	default:
		i = seg.Index
	}
	if i < 0 || i >= len(a.elems) {
		return 0, fmt.Errorf("%w: %s (len %d)", ErrIndexOutOfRange, seg, len(a.elems))
	}
	return i, nil
}

func pathElementAs[T Value](v Value, p string) (T, error) {
	var zero T
	res, err := PathElement(v, p)
	if err != nil {
		return zero, err
	}
	t, ok := res.(T)
	if !ok {
		return zero, &PathError{Path: p, Err: fmt.Errorf("%w: want %s, have %s", ErrTypeMismatch, zero.Type(), res.Type())}
	}
	return t, nil
}

func PathElementBoolean(v Value, p string) (Boolean, error) {
	return pathElementAs[Boolean](v, p)
}

func PathElementSint32(v Value, p string) (Sint32, error) {
	return pathElementAs[Sint32](v, p)
}

func PathElementUint32(v Value, p string) (Uint32, error) {
	return pathElementAs[Uint32](v, p)
}

func PathElementFloat(v Value, p string) (Float, error) {
	return pathElementAs[Float](v, p)
}

func PathElementCharacter(v Value, p string) (Character, error) {
	return pathElementAs[Character](v, p)
}

func PathElementString(v Value, p string) (String, error) {
	return pathElementAs[String](v, p)
}

// PathElementArray returns the array at p, nil if p does not resolve to
// one.
func PathElementArray(v Value, p string) *Array {
	a, err := pathElementAs[*Array](v, p)
	if err != nil {
		return nil
	}
	return a
}

// PathElementStructure returns the structure at p, nil if p does not
// resolve to one.
func PathElementStructure(v Value, p string) *Structure {
	s, err := pathElementAs[*Structure](v, p)
	if err != nil {
		return nil
	}
	return s
}
