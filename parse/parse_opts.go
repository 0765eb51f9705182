package parse

import (
	"log/slog"

	"github.com/xrbengine/xrb/token"
)

type parseOpts struct {
	filename string
	logger   *slog.Logger
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenFilename(o.filename)}
}

type ParseOption func(*parseOpts)

// ParseFilename names the document in error positions and log records.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseLogger sets a logger receiving a warning for every failed parse.
func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
