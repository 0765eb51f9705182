package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, ast/a, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xrb").
		WithSynopsis("xrb [opts] command [opts]").
		WithDescription("xrb is a tool for working with xrb data files and packed streams.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xrbMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			HashCommand(cfg),
			PackCommand(cfg),
			UnpackCommand(cfg),
			BuildCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-w] [files]").
		WithDescription("print data files in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the values at a path such as |map|entities|0").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set [-w] <path> <value> [file]").
		WithDescription("set the value at a path, creating containers along the way").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val]... <expr> [files] or eval -x [files]").
		WithDescription("evaluate expressions against data files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xrbEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] <patch.json> [files]").
		WithDescription("apply JSON patches to data files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchFiles(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-lines] [-r] [-merge] a b").
		WithDescription("diff data files, exiting with 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("hash").
		WithAliases("h").
		WithSynopsis("hash [files]").
		WithDescription("print a hash of each data file's tree, independent of member order and layout").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
	cfg.Hash = cmd
	return cmd
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("pack").
		WithOpts(opts...).
		WithSynopsis("pack [-check] <in> <out>").
		WithDescription("huffman compress a file").
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
	cfg.Pack = cmd
	return cmd
}

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpackConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("unpack").
		WithSynopsis("unpack <in> <out>").
		WithDescription("decompress a file written by pack").
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
	cfg.Unpack = cmd
	return cmd
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	cmd := cli.NewCommand("build").
		WithAliases("b").
		WithOpts(opts...).
		WithSynopsis("build [-e name=val]... [-s] [dir]").
		WithDescription("build a directory of data files as described by its build.xrb").
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
	cfg.Build = cmd
	return cmd
}
