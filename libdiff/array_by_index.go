package libdiff

import (
	"fmt"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/ir/path"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns the elements of from and to:
//
//  1. each element is summarised as a rune: leaves by type and value,
//     containers by type only
//  2. the two rune sequences are diffed
//  3. aligned elements are diffed with df, which descends into
//     containers
//  4. a deletion directly followed by an insertion becomes a replacement
func DiffArrayByIndex(p path.Path, from, to *ir.Array, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti := 0, 0
	pending := []int{}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, len(res))
				res = append(res, MakeChange(extend(p, path.Index(fi)), from.At(fi), nil))
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					c := &res[pending[0]]
					pending = pending[1:]
					c.Op, c.To = Replace, to.At(ti)
				} else {
					res = append(res, MakeChange(extend(p, path.Index(ti)), nil, to.At(ti)))
				}
				ti++
			}
		case diffpatch.DiffEqual:
			pending = pending[:0]
			for range n {
				res = append(res, df(extend(p, path.Index(fi)), from.At(fi), to.At(ti))...)
				fi++
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[string]rune, a *ir.Array) []rune {
	res := make([]rune, a.Len())
	for i, v := range a.All() {
		var key string
		if ir.IsLeaf(v) {
			key = fmt.Sprintf("%s-%#v", v.Type(), v)
		} else {
			key = v.Type().String()
		}
		r, ok := m[key]
		if !ok {
			// private use area, so that no rune is split or merged
			r = rune(0xe000 + len(m))
			m[key] = r
		}
		res[i] = r
	}
	return res
}
