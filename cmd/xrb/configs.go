package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/format"
	"github.com/xrbengine/xrb/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log parse failures'"`
	Indent  int  `cli:"name=indent desc='spaces per nesting level' default=4"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) logger() *slog.Logger {
	if !cfg.Verbose {
		return nil
	}
	return theLog
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseLogger(cfg.logger())}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of output'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of output'"`

	Set *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x aliases=expand desc='expand $[expr] strings in documents instead of evaluating an expression'"`
	Funcs  bool `cli:"name=funcs desc='show available functions'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Lines   bool `cli:"name=lines desc='diff printed documents line by line'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=merge desc='output a JSON merge patch'"`

	Diff *cli.Command
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}

type PackConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='require the input to parse as a data file'"`

	Pack *cli.Command
}

type UnpackConfig struct {
	*MainConfig

	Unpack *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Env     map[string]any
	ShowEnv bool `cli:"name=s aliases=show-env desc='show the build environment and exit'"`

	Build *cli.Command
}
