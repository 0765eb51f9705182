package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := docArgs(args)
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Write && file != "-" {
			if err := writeDocFile(cfg.MainConfig, file, doc); err != nil {
				return err
			}
			continue
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

func writeHeader(w io.Writer, file string, i int) error {
	sep := ""
	if i > 0 {
		sep = "\n"
	}
	_, err := fmt.Fprintf(w, "%s// %s\n", sep, file)
	return err
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Structure) error {
	return encode.EncodeDocument(doc, w, cfg.encOpts(w)...)
}

// writeDocFile replaces file with doc in canonical text form.
func writeDocFile(cfg *MainConfig, file string, doc *ir.Structure) error {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{}
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	if err := encode.EncodeDocument(doc, buf, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, buf.Bytes(), info.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing %s: %w", file, err)
	}
	theLog.Info("wrote", "file", file)
	return nil
}
