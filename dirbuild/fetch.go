package dirbuild

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xrbengine/xrb/eval"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/parse"
)

// Doc is a built document, named after the file it came from.
type Doc struct {
	Name string
	Root *ir.Structure
}

func (d *Dir) fetch() ([]Doc, error) {
	res := []Doc{}
	for _, src := range d.Sources {
		p := d.path(src)
		st, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("error fetching from source: %w", err)
		}
		if !st.IsDir() {
			doc, err := d.load(p)
			if err != nil {
				return nil, err
			}
			res = append(res, doc)
			continue
		}
		err = filepath.WalkDir(p, func(path string, info fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !isSource(path) {
				return nil
			}
			doc, err := d.load(path)
			if err != nil {
				return err
			}
			res = append(res, doc)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error fetching from %s: %w", src, err)
		}
	}
	return res, nil
}

func isSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xrb", ".json":
		return true
	}
	return false
}

// load reads a source document, either a data file or a JSON object, and
// expands it against the build environment.
func (d *Dir) load(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, err
	}
	var root *ir.Structure
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		v, err := ir.FromJSON(data)
		if err != nil {
			return Doc{}, fmt.Errorf("error decoding %s: %w", path, err)
		}
		s, ok := v.(*ir.Structure)
		if !ok {
			return Doc{}, fmt.Errorf("%s holds a %s, not a structure", path, v.Type())
		}
		root = s
	} else {
		root, err = parse.Parse(data, parse.ParseFilename(path), parse.ParseLogger(d.logger()))
		if err != nil {
			return Doc{}, err
		}
	}
	root, err = eval.Expand(root, d.Env)
	if err != nil {
		return Doc{}, fmt.Errorf("error expanding %s: %w", path, err)
	}
	base := filepath.Base(path)
	return Doc{Name: strings.TrimSuffix(base, filepath.Ext(base)), Root: root}, nil
}
