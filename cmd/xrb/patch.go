package main

import (
	"fmt"
	"os"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/patch"

	"github.com/scott-cotton/cli"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := docArgs(args[1:])
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var res *ir.Structure
		if cfg.Merge {
			res, err = patch.Merge(doc, p)
		} else {
			res, err = patch.Apply(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if len(files) > 1 {
			if err := writeHeader(cc.Out, file, i); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
