package encode

import "github.com/xrbengine/xrb/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.JSONFormat:
		return ".json"
	case format.YAMLFormat:
		return ".yaml"
	case format.ASTFormat:
		return ".ast"
	default:
		return ".xrb"
	}
}

// Indent sets the number of spaces per nesting level, 4 by default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
