package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/parse"

	"github.com/scott-cotton/cli"
)

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Structure, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		opts = append(opts, parse.ParseFilename(path))
	} else {
		r = cc.In
		opts = append(opts, parse.ParseFilename("<stdin>"))
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// docArgs treats no file arguments as standard input.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
