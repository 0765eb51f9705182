package ir

import (
	"fmt"
	"iter"
)

// Structure is a set of uniquely keyed KeyPairs, kept in insertion order.
// A document's root is a Structure.
type Structure struct {
	members []*KeyPair
	index   map[string]int
}

func NewStructure() *Structure {
	return &Structure{index: map[string]int{}}
}

func (*Structure) Type() Type { return StructureType }

// AddKeyPair adds kp. It fails with ErrKeyCollision, leaving s unchanged,
// if s already has a member with kp's key.
func (s *Structure) AddKeyPair(kp *KeyPair) error {
	if kp == nil {
		return ErrNilValue
	}
	if err := checkMemberValue(kp.Value); err != nil {
		return fmt.Errorf("%w: key %q", err, kp.key)
	}
	if _, ok := s.index[kp.key]; ok {
		return fmt.Errorf("%w: %q", ErrKeyCollision, kp.key)
	}
	if s.index == nil {
		s.index = map[string]int{}
	}
	s.index[kp.key] = len(s.members)
	s.members = append(s.members, kp)
	return nil
}

// Add adds a member binding key to v.
func (s *Structure) Add(key string, v Value) error {
	kp, err := NewKeyPair(key, v)
	if err != nil {
		return err
	}
	return s.AddKeyPair(kp)
}

// KeyPair returns the member with the given key, nil if there is none.
func (s *Structure) KeyPair(key string) *KeyPair {
	i, ok := s.index[key]
	if !ok {
		return nil
	}
	return s.members[i]
}

// Member returns the value bound to key, nil if there is none.
func (s *Structure) Member(key string) Value {
	kp := s.KeyPair(key)
	if kp == nil {
		return nil
	}
	return kp.Value
}

func (s *Structure) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

func (s *Structure) Len() int {
	return len(s.members)
}

func (s *Structure) Keys() []string {
	res := make([]string, len(s.members))
	for i, kp := range s.members {
		res[i] = kp.key
	}
	return res
}

// All yields the members' keys and values in insertion order. Each call
// starts a fresh iteration; any number may be in progress at once.
func (s *Structure) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, kp := range s.members {
			if !yield(kp.key, kp.Value) {
				return
			}
		}
	}
}

func (s *Structure) Members() iter.Seq[*KeyPair] {
	return func(yield func(*KeyPair) bool) {
		for _, kp := range s.members {
			if !yield(kp) {
				return
			}
		}
	}
}
