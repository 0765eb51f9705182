package main

import (
	"fmt"

	"github.com/xrbengine/xrb/ir"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		cfg.Hash.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range docArgs(args) {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%016x  %s\n", ir.Hash(doc), file); err != nil {
			return err
		}
	}
	return nil
}
