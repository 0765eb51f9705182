package main

import (
	"fmt"
	"io"
	"maps"

	"github.com/xrbengine/xrb/dirbuild"
	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes at most one directory", cli.ErrUsage)
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}
	env, err := dirbuild.LoadEnv()
	if err != nil {
		return err
	}
	if env == nil {
		env = map[string]any{}
	}
	maps.Copy(env, cfg.Env)
	dir, err := dirbuild.OpenDir(dirPath, env)
	if err != nil {
		return err
	}
	dir.Logger = theLog
	if cfg.ShowEnv {
		v, err := ir.FromAny(dir.Env)
		if err != nil {
			return err
		}
		return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
	}
	var w io.Writer = cc.Out
	if dir.DestDir != "" && cfg.Out == "" {
		w = nil
	}
	if w != nil {
		dir.DestDir = ""
	}
	_, err = dir.Run(w, cfg.encOpts(w)...)
	return err
}
