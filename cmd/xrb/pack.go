package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xrbengine/xrb/bitcache"
	"github.com/xrbengine/xrb/huffman"
	"github.com/xrbengine/xrb/parse"

	"github.com/scott-cotton/cli"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		cfg.Pack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: pack requires an input and an output file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if cfg.Check {
		if _, err := parse.Parse(d, append(cfg.parseOpts(), parse.ParseFilename(args[0]))...); err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
	}
	buf := bytes.NewBuffer(nil)
	if err := huffman.Compress(buf, d); err != nil {
		return fmt.Errorf("error compressing %s: %w", args[0], err)
	}
	if err := os.WriteFile(args[1], buf.Bytes(), 0644); err != nil {
		return err
	}
	theLog.Info("packed", "in", args[0], "out", args[1], "from", len(d), "to", buf.Len())
	return nil
}

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: unpack requires an input and an output file", cli.ErrUsage)
	}
	src, err := bitcache.OpenMapped(args[0])
	if err != nil {
		return err
	}
	defer src.Close()
	d, err := huffman.Decompress(src)
	if err != nil {
		return fmt.Errorf("error decompressing %s: %w", args[0], err)
	}
	if err := os.WriteFile(args[1], d, 0644); err != nil {
		return err
	}
	theLog.Info("unpacked", "in", args[0], "out", args[1], "size", len(d))
	return nil
}
