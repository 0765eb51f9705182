package ir

import (
	"fmt"

	"github.com/xrbengine/xrb/token"
)

// KeyPair binds an identifier to a value. The value is never itself a
// KeyPair. A KeyPair's key is fixed once it is created.
type KeyPair struct {
	key   string
	Value Value
}

func NewKeyPair(key string, v Value) (*KeyPair, error) {
	if !token.IsIdent(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := checkMemberValue(v); err != nil {
		return nil, fmt.Errorf("%w: key %q", err, key)
	}
	return &KeyPair{key: key, Value: v}, nil
}

func checkMemberValue(v Value) error {
	switch v.(type) {
	case nil:
		return ErrNilValue
	case *KeyPair:
		return ErrNestedKeyPair
	}
	return nil
}

func (*KeyPair) Type() Type { return KeyPairType }

func (kp *KeyPair) Key() string {
	return kp.key
}
