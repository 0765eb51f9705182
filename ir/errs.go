package ir

import (
	"errors"
	"fmt"

	"github.com/xrbengine/xrb/ir/path"
)

var (
	ErrKeyCollision   = errors.New("key collision")
	ErrNonHomogeneous = errors.New("non-homogeneous list")
	ErrKeyPairElement = errors.New("key pair as array element")
	ErrInvalidKey     = errors.New("invalid key")
	ErrNilValue       = errors.New("nil value")
	ErrNestedKeyPair  = errors.New("key pair as key pair value")
	ErrNull           = errors.New("null has no value")
	ErrUnprintable    = errors.New("unprintable value")

	ErrUnknownKey      = errors.New("unknown key")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrMalformedPath   = path.ErrMalformed
	ErrNotContainer    = errors.New("not a container")
)

// PathError describes a failure to resolve or assign a path. Segment is the
// offending segment, empty when the path as a whole is at fault.
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("path %q at %q: %v", e.Path, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
