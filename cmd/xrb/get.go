package main

import (
	"fmt"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/ir/path"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := docArgs(args[1:])
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		v, err := ir.Lookup(doc, p)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, p, err)
		}
		if len(files) > 1 {
			if err := writeHeader(cc.Out, file, i); err != nil {
				return err
			}
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
