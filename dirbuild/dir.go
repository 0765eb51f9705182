// Package dirbuild interprets an xrb build directory.
//
// A build directory holds a build.xrb (or build.json) file such as
//
//	build
//	{
//	    destDir "out";
//	    sources ["levels", "extra/boss.xrb"];
//	    env
//	    {
//	        difficulty 1;
//	    };
//	    patches
//	    [
//	        {
//	            file "hard.json";
//	            if "difficulty > 1";
//	        }
//	    ];
//	};
//
// Building loads every source document, expands its "$[expr]" strings
// against env, applies the patches whose condition holds and writes the
// results.
package dirbuild

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/eval"
	"github.com/xrbengine/xrb/gomap"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

const (
	DefaultSuffix = ".xrb"
)

type Dir struct {
	Root    string         `xrb:"-"`
	Suffix  string         `xrb:"field=suffix,omitempty"`
	DestDir string         `xrb:"field=destDir,omitempty"`
	Sources []string       `xrb:"field=sources"`
	Patches []DirPatch     `xrb:"field=patches,omitempty"`
	Env     map[string]any `xrb:"field=env,omitempty"`

	Logger *slog.Logger `xrb:"-"`

	nameCache map[string]int
}

// OpenDir reads the build file in path. Values in env override those of
// the build file's env, merging nested structures.
func OpenDir(path string, env map[string]any) (*Dir, error) {
	if debug.Build() {
		debug.Log("OpenDir", "path", path, "env", env)
	}
	var (
		node  ir.Value
		found bool
	)
	for _, ext := range []string{".xrb", ".json"} {
		candidate := filepath.Join(path, "build"+ext)
		d, err := os.ReadFile(candidate)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", candidate, err)
		}
		if ext == ".json" {
			node, err = ir.FromJSON(d)
		} else {
			node, err = parse.Parse(d, parse.ParseFilename(candidate))
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", candidate, err)
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("could not find build.{xrb,json} in %q", path)
	}
	return newDir(node, path, env)
}

func newDir(node ir.Value, path string, env map[string]any) (*Dir, error) {
	dir := &Dir{
		Root:   path,
		Suffix: DefaultSuffix,
	}
	return initDir(dir, node, env)
}

func initDir(dir *Dir, node ir.Value, env map[string]any) (*Dir, error) {
	s, ok := node.(*ir.Structure)
	if !ok {
		return nil, fmt.Errorf("build file holds a %s, not a structure", node.Type())
	}
	if b, ok := s.Member("build").(*ir.Structure); ok {
		s = b
	}
	if err := gomap.FromIR(s, dir); err != nil {
		return nil, err
	}
	if dir.Suffix == "" {
		dir.Suffix = DefaultSuffix
	}
	if len(env) != 0 {
		merged, err := mergeEnv(dir.Env, env)
		if err != nil {
			return nil, err
		}
		dir.Env = merged
	}
	if debug.Build() {
		debug.Log("loaded env", "env", dir.Env)
	}
	if err := dir.filterPatches(); err != nil {
		return nil, err
	}
	dir.nameCache = map[string]int{}
	return dir, nil
}

func (dir *Dir) logger() *slog.Logger {
	if dir.Logger != nil {
		return dir.Logger
	}
	return slog.Default()
}

// filterPatches drops the patches whose condition is false and reads the
// remaining patch files.
func (dir *Dir) filterPatches() error {
	j := 0
	for i := range dir.Patches {
		dp := &dir.Patches[i]
		if dp.If != "" {
			res, err := eval.EvalAny(ir.NewStructure(), dp.If, dir.Env)
			if err != nil {
				return fmt.Errorf("error evaluating condition of %s: %w", dp.File, err)
			}
			b, ok := res.(bool)
			if !ok {
				return fmt.Errorf("condition %q of %s gave %T, not a bool", dp.If, dp.File, res)
			}
			if !b {
				continue
			}
		}
		d, err := os.ReadFile(dir.path(dp.File))
		if err != nil {
			return fmt.Errorf("error reading patch: %w", err)
		}
		dp.data = d
		dir.Patches[j] = *dp
		j++
	}
	dir.Patches = dir.Patches[:j]
	return nil
}

// path resolves p relative to the build directory.
func (dir *Dir) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir.Root, p)
}

func mergeEnv(dst, p map[string]any) (map[string]any, error) {
	if dst == nil {
		dst = map[string]any{}
	}
	doc, err := json.Marshal(dst)
	if err != nil {
		return nil, err
	}
	patch, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	res := map[string]any{}
	if err := json.Unmarshal(merged, &res); err != nil {
		return nil, err
	}
	return res, nil
}
