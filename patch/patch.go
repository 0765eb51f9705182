package patch

import (
	"errors"
	"fmt"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies an RFC 6902 patch, given as JSON, to doc. doc is not
// modified.
func Apply(doc *ir.Structure, patchJSON []byte) (*ir.Structure, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Log("json patch", "ops", len(ops), "doc", string(d))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return conformDoc(doc, out)
}

// Merge applies an RFC 7386 merge patch to doc.
func Merge(doc *ir.Structure, mergeJSON []byte) (*ir.Structure, error) {
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return conformDoc(doc, out)
}

// CreateMerge returns the merge patch taking from to to.
func CreateMerge(from, to *ir.Structure) ([]byte, error) {
	a, err := ir.ToJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := ir.ToJSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

// Equal reports whether a and b have the same JSON projection.
func Equal(a, b *ir.Structure) bool {
	da, err := ir.ToJSON(a)
	if err != nil {
		return false
	}
	db, err := ir.ToJSON(b)
	if err != nil {
		return false
	}
	return jsonpatch.Equal(da, db)
}
