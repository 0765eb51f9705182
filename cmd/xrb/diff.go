package main

import (
	"bytes"
	"fmt"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/libdiff"
	"github.com/xrbengine/xrb/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffInputs(cfg, cc, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Structure) (bool, error) {
	w := cc.Out
	color := cfg.useColor(w)
	switch {
	case cfg.Merge:
		if patch.Equal(a, b) {
			return false, nil
		}
		mp, err := patch.CreateMerge(a, b)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", mp)
		return true, err
	case cfg.Lines:
		ta, err := docText(a)
		if err != nil {
			return false, err
		}
		tb, err := docText(b)
		if err != nil {
			return false, err
		}
		diffs := libdiff.Lines(ta, tb)
		if !libdiff.Changed(diffs) {
			return false, nil
		}
		_, err = w.Write([]byte(libdiff.Format(diffs, color)))
		return true, err
	default:
		changes := libdiff.Diff(a, b)
		if len(changes) == 0 {
			return false, nil
		}
		_, err := w.Write([]byte(libdiff.FormatChanges(changes, color)))
		return true, err
	}
}

func docText(doc *ir.Structure) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeDocument(doc, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
