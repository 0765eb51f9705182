// Package format enumerates the output formats of encoded documents.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	// TextFormat is the data file syntax itself.
	TextFormat Format = iota
	ASTFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"xrb":  TextFormat,
		"a":    ASTFormat,
		"ast":  ASTFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case ASTFormat:
		return []byte("ast"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsProjection reports whether f renders a document in a foreign syntax
// that does not parse back as a data file.
func (f Format) IsProjection() bool { return f == JSONFormat || f == YAMLFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, ASTFormat, JSONFormat, YAMLFormat}
}
