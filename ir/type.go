package ir

import "fmt"

type Type int

const (
	// NoType is the ultimate type of an empty array.
	NoType Type = iota
	BooleanType
	Sint32Type
	Uint32Type
	FloatType
	CharacterType
	StringType
	KeyPairType
	ArrayType
	StructureType
)

var typeNames = map[Type]string{
	NoType:        "NoType",
	BooleanType:   "Boolean",
	Sint32Type:    "Sint32",
	Uint32Type:    "Uint32",
	FloatType:     "Float",
	CharacterType: "Character",
	StringType:    "String",
	KeyPairType:   "KeyPair",
	ArrayType:     "Array",
	StructureType: "Structure",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NoType,
		BooleanType,
		Sint32Type,
		Uint32Type,
		FloatType,
		CharacterType,
		StringType,
		KeyPairType,
		ArrayType,
		StructureType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case BooleanType, Sint32Type, Uint32Type, FloatType, CharacterType, StringType:
		return true
	default:
		return false
	}
}
