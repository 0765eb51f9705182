package main

import (
	"fmt"
	"strings"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func xrbEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Funcs {
		fmt.Fprintf(cc.Out, "available functions:\n")
		for _, s := range eval.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if cfg.Expand {
		return expandFiles(cfg, cc, docArgs(args))
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	input := args[0]
	files := docArgs(args[1:])
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		v, err := eval.Eval(doc, input, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", input, file, err)
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

func expandFiles(cfg *EvalConfig, cc *cli.Context, files []string) error {
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		doc, err = eval.Expand(doc, cfg.Env)
		if err != nil {
			return fmt.Errorf("error expanding %s: %w", file, err)
		}
		if len(files) > 1 {
			if err := writeHeader(cc.Out, file, i); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// envFunc binds name to val, read as YAML, so that -e n=3 gives a number
// and -e s=abc a string. Dotted names nest.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		sub, ok := tmpEnv[part].(map[string]any)
		if !ok {
			sub = map[string]any{}
			tmpEnv[part] = sub
		}
		tmpEnv = sub
	}
	return nil
}
