package libdiff

import (
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/ir/path"
)

// DiffFunc diffs the values found at p in two trees.
type DiffFunc func(p path.Path, from, to ir.Value) []Change

// Diff returns the changes taking from to to, nil if they are equal.
// Structure members are matched by key and array elements by aligning
// the sequences.
func Diff(from, to ir.Value) []Change {
	return diff(nil, from, to)
}

func diff(p path.Path, from, to ir.Value) []Change {
	if from == nil || to == nil {
		if from == nil && to == nil {
			return nil
		}
		return []Change{MakeChange(p, from, to)}
	}
	if from.Type() != to.Type() {
		return []Change{MakeChange(p, from, to)}
	}
	switch x := from.(type) {
	case *ir.Structure:
		return diffStructure(p, x, to.(*ir.Structure))
	case *ir.Array:
		return DiffArrayByIndex(p, x, to.(*ir.Array), diff)
	case *ir.KeyPair:
		y := to.(*ir.KeyPair)
		if x.Key() != y.Key() {
			return []Change{MakeChange(p, from, to)}
		}
		return diff(p, x.Value, y.Value)
	}
	if ir.Equal(from, to) {
		return nil
	}
	return []Change{MakeChange(p, from, to)}
}

func extend(p path.Path, seg path.Segment) path.Path {
	return append(p[:len(p):len(p)], seg)
}

func diffStructure(p path.Path, from, to *ir.Structure) []Change {
	var res []Change
	for k, fv := range from.All() {
		res = append(res, diff(extend(p, path.Key(k)), fv, to.Member(k))...)
	}
	for k, tv := range to.All() {
		if !from.Has(k) {
			res = append(res, MakeChange(extend(p, path.Key(k)), nil, tv))
		}
	}
	return res
}
