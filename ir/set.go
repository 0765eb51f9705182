package ir

import (
	"fmt"

	"github.com/xrbengine/xrb/ir/path"
)

// SetPathElement assigns v at p below s. Missing structure members along
// the way are created: as a Structure when the following segment is a key,
// as an Array when it is an index, "$" or "+". An existing terminal member
// or element is replaced. If the assignment fails, s is unchanged.
func (s *Structure) SetPathElement(p string, v Value) error {
	return setPathElement(s, p, v)
}

// SetPathElement is Structure.SetPathElement rooted at an array.
func (a *Array) SetPathElement(p string, v Value) error {
	return setPathElement(a, p, v)
}

func (s *Structure) SetPathElementBoolean(p string, v bool) error {
	return s.SetPathElement(p, Boolean(v))
}
func (s *Structure) SetPathElementSint32(p string, v int32) error {
	return s.SetPathElement(p, Sint32(v))
}
func (s *Structure) SetPathElementUint32(p string, v uint32) error {
	return s.SetPathElement(p, Uint32(v))
}
func (s *Structure) SetPathElementFloat(p string, v float32) error {
	return s.SetPathElement(p, Float(v))
}
func (s *Structure) SetPathElementCharacter(p string, v byte) error {
	return s.SetPathElement(p, Character(v))
}
func (s *Structure) SetPathElementString(p string, v string) error {
	return s.SetPathElement(p, String(v))
}

func (a *Array) SetPathElementBoolean(p string, v bool) error {
	return a.SetPathElement(p, Boolean(v))
}
func (a *Array) SetPathElementSint32(p string, v int32) error {
	return a.SetPathElement(p, Sint32(v))
}
func (a *Array) SetPathElementUint32(p string, v uint32) error {
	return a.SetPathElement(p, Uint32(v))
}
func (a *Array) SetPathElementFloat(p string, v float32) error {
	return a.SetPathElement(p, Float(v))
}
func (a *Array) SetPathElementCharacter(p string, v byte) error {
	return a.SetPathElement(p, Character(v))
}
func (a *Array) SetPathElementString(p string, v string) error {
	return a.SetPathElement(p, String(v))
}

func setPathElement(root Value, p string, v Value) error {
	segs, err := path.Parse(p)
	if err != nil {
		return &PathError{Path: p, Err: err}
	}
	if len(segs) == 0 {
		return &PathError{Path: p, Err: fmt.Errorf("%w: nothing to assign to", ErrMalformedPath)}
	}
	if err := checkMemberValue(v); err != nil {
		return &PathError{Path: p, Err: err}
	}
	return assign(root, segs, 0, v)
}

// assign performs at most one mutation, as its last step. An error leaves
// the tree unchanged.
func assign(cur Value, segs path.Path, i int, v Value) error {
	cur = unwrapKeyPair(cur)
	seg := segs[i]
	last := i == len(segs)-1
	fail := func(err error) error {
		return &PathError{Path: segs.String(), Segment: seg.String(), Err: err}
	}
	switch c := cur.(type) {
	case *Structure:
		if seg.Kind != path.KeyKind {
			return fail(fmt.Errorf("%w: %s segment on a structure", ErrTypeMismatch, seg.Kind))
		}
		kp := c.KeyPair(seg.Key)
		if kp == nil {
			nv, err := build(segs, i, v)
			if err != nil {
				return err
			}
			if err := c.Add(seg.Key, nv); err != nil {
				return fail(err)
			}
			return nil
		}
		if last {
			kp.Value = v
			return nil
		}
		return assign(kp.Value, segs, i+1, v)

	case *Array:
		if seg.Kind == path.AppendKind {
			nv, err := build(segs, i, v)
			if err != nil {
				return err
			}
			if err := c.Append(nv); err != nil {
				return fail(err)
			}
			return nil
		}
		idx, err := arrayIndex(c, seg)
		if err != nil {
			return fail(err)
		}
		if last {
			if err := c.Set(idx, v); err != nil {
				return fail(err)
			}
			return nil
		}
		return assignElement(c.elems[idx], segs, i, v, func(nv Value) error {
			if err := c.Set(idx, nv); err != nil {
				return fail(err)
			}
			return nil
		})

	case nil:
		return fail(ErrNilValue)
	default:
		return fail(fmt.Errorf("%w: %s", ErrNotContainer, cur.Type()))
	}
}

// assignElement continues below an array element. An element that is itself
// an array is changed on a copy swapped back in through replace, which
// rechecks the homogeneity of the outer array.
func assignElement(child Value, segs path.Path, i int, v Value, replace func(Value) error) error {
	inner, ok := child.(*Array)
	if !ok {
		return assign(child, segs, i+1, v)
	}
	cp := Clone(inner).(*Array)
	if err := assign(cp, segs, i+1, v); err != nil {
		return err
	}
	return replace(cp)
}

// build returns the value to attach for segs[i]: v itself at the end of the
// path, otherwise a new container already holding v further down.
func build(segs path.Path, i int, v Value) (Value, error) {
	if i == len(segs)-1 {
		return v, nil
	}
	var c Value
	if segs[i+1].IsArray() {
		c = &Array{}
	} else {
		c = NewStructure()
	}
	if err := assign(c, segs, i+1, v); err != nil {
		return nil, err
	}
	return c, nil
}
