package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Path     bool
	BitCache bool
	Huffman  bool
	Eval     bool
	Patch    bool
	Build    bool
}

var (
	d      *debug
	logger *slog.Logger
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("XRB_DEBUG_PARSE")
	d.Path = boolEnv("XRB_DEBUG_PATH")
	d.BitCache = boolEnv("XRB_DEBUG_BITCACHE")
	d.Huffman = boolEnv("XRB_DEBUG_HUFFMAN")
	d.Eval = boolEnv("XRB_DEBUG_EVAL")
	d.Patch = boolEnv("XRB_DEBUG_PATCH")
	d.Build = boolEnv("XRB_DEBUG_BUILD")
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func BitCache() bool {
	return d.BitCache
}
func Huffman() bool {
	return d.Huffman
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Build() bool {
	return d.Build
}

// Logger is the stderr logger debug output goes to.
func Logger() *slog.Logger {
	return logger
}

func Log(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
