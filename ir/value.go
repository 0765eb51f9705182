package ir

import "math"

// Value is a node of a data file tree. The set of implementations is
// closed: Boolean, Sint32, Uint32, Float, Character, String, *KeyPair,
// *Array and *Structure.
type Value interface {
	Type() Type
	isValue()
}

type (
	Boolean   bool
	Sint32    int32
	Uint32    uint32
	Float     float32
	Character byte
	String    string
)

func (Boolean) Type() Type   { return BooleanType }
func (Sint32) Type() Type    { return Sint32Type }
func (Uint32) Type() Type    { return Uint32Type }
func (Float) Type() Type     { return FloatType }
func (Character) Type() Type { return CharacterType }
func (String) Type() Type    { return StringType }

func (Boolean) isValue()    {}
func (Sint32) isValue()     {}
func (Uint32) isValue()     {}
func (Float) isValue()      {}
func (Character) isValue()  {}
func (String) isValue()     {}
func (*KeyPair) isValue()   {}
func (*Array) isValue()     {}
func (*Structure) isValue() {}

type NumericSign int

const (
	Positive NumericSign = iota
	Negative
)

// Sign returns f with the given sign.
func (f Float) Sign(s NumericSign) Float {
	m := float32(math.Abs(float64(f)))
	if s == Negative {
		m = -m
	}
	return Float(m)
}

// Append returns s followed by each of more.
func (s String) Append(more ...String) String {
	for _, m := range more {
		s += m
	}
	return s
}

// ListRecursionLevel is 0 for anything but an array. An empty array has
// level 1, any other array one more than its first element.
func ListRecursionLevel(v Value) int {
	a, ok := v.(*Array)
	if !ok {
		return 0
	}
	if len(a.elems) == 0 {
		return 1
	}
	return 1 + ListRecursionLevel(a.elems[0])
}

// UltimateType unwraps nested arrays through their first elements down to
// a non-array type. Empty arrays have ultimate type NoType.
func UltimateType(v Value) Type {
	a, ok := v.(*Array)
	if !ok {
		return v.Type()
	}
	if len(a.elems) == 0 {
		return NoType
	}
	return UltimateType(a.elems[0])
}

func IsLeaf(v Value) bool {
	return v.Type().IsLeaf()
}
