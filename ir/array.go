package ir

import (
	"fmt"
	"iter"
)

// Array is an ordered, homogeneous list. Every element shares the list
// recursion level, type and ultimate type of the first one. Arrays hold
// leaves, arrays and structures but never key pairs.
type Array struct {
	elems []Value
}

// NewArray returns an array of elems, failing if they are not
// homogeneous.
func NewArray(elems ...Value) (*Array, error) {
	a := &Array{}
	for _, e := range elems {
		if err := a.Append(e); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (*Array) Type() Type { return ArrayType }

type signature struct {
	level    int
	typ      Type
	ultimate Type
}

func signatureOf(v Value) signature {
	return signature{
		level:    ListRecursionLevel(v),
		typ:      v.Type(),
		ultimate: UltimateType(v),
	}
}

func (s signature) String() string {
	return fmt.Sprintf("(level %d, %s, %s)", s.level, s.typ, s.ultimate)
}

// Admits reports why v could not be appended to a, nil if it could.
func (a *Array) Admits(v Value) error {
	return a.admitsAt(v, -1)
}

// admitsAt checks v against the elements other than skip.
func (a *Array) admitsAt(v Value, skip int) error {
	switch v.(type) {
	case nil:
		return ErrNilValue
	case *KeyPair:
		return ErrKeyPairElement
	}
	for i, e := range a.elems {
		if i == skip {
			continue
		}
		want, got := signatureOf(e), signatureOf(v)
		if want != got {
			return fmt.Errorf("%w: element %s does not match %s", ErrNonHomogeneous, got, want)
		}
		break
	}
	return nil
}

// Append adds v at the end of a. On failure a is unchanged.
func (a *Array) Append(v Value) error {
	if err := a.Admits(v); err != nil {
		return err
	}
	a.elems = append(a.elems, v)
	return nil
}

// Set replaces element i. On failure a is unchanged.
func (a *Array) Set(i int, v Value) error {
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(a.elems))
	}
	if err := a.admitsAt(v, i); err != nil {
		return err
	}
	a.elems[i] = v
	return nil
}

func (a *Array) Len() int {
	return len(a.elems)
}

// At returns element i, nil if i is out of range.
func (a *Array) At(i int) Value {
	if i < 0 || i >= len(a.elems) {
		return nil
	}
	return a.elems[i]
}

// Last returns the last element, nil if a is empty.
func (a *Array) Last() Value {
	return a.At(len(a.elems) - 1)
}

func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, e := range a.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

func (a *Array) ListRecursionLevel() int {
	return ListRecursionLevel(a)
}

func (a *Array) UltimateType() Type {
	return UltimateType(a)
}

// ShouldBeFormattedInline reports whether a prints on a single line: it is
// not empty and its elements are leaves.
func (a *Array) ShouldBeFormattedInline() bool {
	return len(a.elems) > 0 && IsLeaf(a.elems[0])
}
