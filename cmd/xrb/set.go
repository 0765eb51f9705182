package main

import (
	"fmt"

	"github.com/xrbengine/xrb/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	v, err := parse.ParseValue([]byte(args[1]), parse.ParseFilename("<value>"))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := docArgs(args[2:])[0]
	doc, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := doc.SetPathElement(args[0], v); err != nil {
		return err
	}
	if cfg.Write && file != "-" {
		return writeDocFile(cfg.MainConfig, file, doc)
	}
	return writeDoc(cfg.MainConfig, cc.Out, doc)
}
