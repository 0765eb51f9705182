package ir

// Equal reports whether a and b are the same tree. Structures are equal
// when they bind the same keys to equal values, whatever the member order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *KeyPair:
		y := b.(*KeyPair)
		return x.key == y.key && Equal(x.Value, y.Value)
	case *Array:
		y := b.(*Array)
		if len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if !Equal(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	case *Structure:
		y := b.(*Structure)
		if len(x.members) != len(y.members) {
			return false
		}
		for _, kp := range x.members {
			other := y.Member(kp.key)
			if other == nil || !Equal(kp.Value, other) {
				return false
			}
		}
		return true
	default:
		// leaves are comparable
		return a == b
	}
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch x := v.(type) {
	case *KeyPair:
		return &KeyPair{key: x.key, Value: Clone(x.Value)}
	case *Array:
		res := &Array{elems: make([]Value, len(x.elems))}
		for i, e := range x.elems {
			res.elems[i] = Clone(e)
		}
		return res
	case *Structure:
		res := &Structure{
			members: make([]*KeyPair, len(x.members)),
			index:   make(map[string]int, len(x.members)),
		}
		for i, kp := range x.members {
			res.members[i] = Clone(kp).(*KeyPair)
			res.index[kp.key] = i
		}
		return res
	default:
		return v
	}
}
