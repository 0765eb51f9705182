package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"github.com/xrbengine/xrb/bitcache"
)

type bufCloser struct {
	bytes.Buffer
}

func (*bufCloser) Close() error { return nil }

func runXRB(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bufCloser{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader("")),
		Out: out,
		Err: &bufCloser{},
		Go:  context.Background(),
	}
	err := MainCommand().Run(cc, args)
	return out.String(), err
}

func TestSetAndGet(t *testing.T) {
	file := filepath.Join(t.TempDir(), "level.xrb")
	if err := os.WriteFile(file, []byte("hp 10;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runXRB(t, "set", "-w", "|spawn|pos|+", "+3", file)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("set -w wrote %q", out)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := "hp 10;\nspawn\n{\n    pos [+3];\n};\n"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	out, err = runXRB(t, "get", "|spawn|pos|0", file)
	if err != nil {
		t.Fatal(err)
	}
	if out != "+3\n" {
		t.Errorf("get: %q", out)
	}
}

func TestPackUnpack(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "level.xrb")
	packed := filepath.Join(dir, "level.xrbh")
	back := filepath.Join(dir, "back.xrb")
	text := []byte(strings.Repeat("name \"cave\";\nhp 10;\n// padding\n", 40))
	if err := os.WriteFile(in, text, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runXRB(t, "pack", "-check", in, packed); err != nil {
		t.Fatal(err)
	}
	if _, err := runXRB(t, "unpack", packed, back); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(text, got) {
		t.Errorf("unpacked %d bytes differ from %d packed", len(got), len(text))
	}

	frame, err := os.ReadFile(packed)
	if err != nil {
		t.Fatal(err)
	}
	binary.BigEndian.PutUint32(frame[13:17], 1<<30)
	tampered := filepath.Join(dir, "tampered.xrbh")
	if err := os.WriteFile(tampered, frame, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = runXRB(t, "unpack", tampered, filepath.Join(dir, "never.xrb"))
	if !errors.Is(err, bitcache.ErrIsAtEnd) {
		t.Errorf("got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "never.xrb")); !os.IsNotExist(err) {
		t.Errorf("output written for a bad frame: %v", err)
	}
}

func TestPackCheck(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.xrb")
	if err := os.WriteFile(in, []byte("hp [1, 'x'];\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runXRB(t, "pack", "-check", in, filepath.Join(dir, "out")); err == nil {
		t.Error("unparsable input packed")
	}
	if _, err := runXRB(t, "pack", in, filepath.Join(dir, "out")); err != nil {
		t.Errorf("pack without -check: %v", err)
	}
}
