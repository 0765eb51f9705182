package dirbuild

import (
	"fmt"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/patch"
)

// DirPatch is a JSON patch file applied to every built document. If, when
// set, is an expression over the build environment deciding whether the
// patch applies. Merge selects RFC 7386 merge patches over RFC 6902 ones.
type DirPatch struct {
	File  string `xrb:"field=file"`
	If    string `xrb:"field=if,omitempty"`
	Merge bool   `xrb:"field=merge,omitempty"`

	data []byte
}

func (d *DirPatch) String() string {
	return fmt.Sprintf("file: %s if: %s merge: %t", d.File, d.If, d.Merge)
}

func (d *Dir) patch(docs []Doc) error {
	for i := range docs {
		doc := &docs[i]
		for j := range d.Patches {
			dp := &d.Patches[j]
			var err error
			if dp.Merge {
				doc.Root, err = patch.Merge(doc.Root, dp.data)
			} else {
				doc.Root, err = patch.Apply(doc.Root, dp.data)
			}
			if err != nil {
				return fmt.Errorf("error applying %s to %s: %w", dp.File, doc.Name, err)
			}
			if debug.Patch() {
				debug.Log("patched", "doc", doc.Name, "patch", dp.String(), "result", encode.MustString(doc.Root))
			}
		}
	}
	return nil
}
