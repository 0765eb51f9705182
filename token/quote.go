package token

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const hexDigits = "0123456789abcdef"

func escapeByte(sb *strings.Builder, c byte, quote byte) bool {
	switch c {
	case quote, '\\':
		sb.WriteByte('\\')
		sb.WriteByte(c)
	case '\a':
		sb.WriteString(`\a`)
	case '\b':
		sb.WriteString(`\b`)
	case '\f':
		sb.WriteString(`\f`)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\t':
		sb.WriteString(`\t`)
	case '\v':
		sb.WriteString(`\v`)
	case 0:
		sb.WriteString(`\0`)
	default:
		if c < 0x20 || c == 0x7f {
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xf])
			return true
		}
		return false
	}
	return true
}

// Quote returns s as a double quoted string literal. Control characters
// are escaped, bytes outside ASCII are kept as they are.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if !escapeByte(&sb, s[i], '"') {
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// QuoteChar returns c as a single quoted character literal. Characters are
// Latin-1; printable ones above ASCII are written as UTF-8.
func QuoteChar(c byte) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	switch {
	case escapeByte(&sb, c, '\''):
	case c < 0x80:
		sb.WriteByte(c)
	case c < 0xa0:
		sb.WriteString(`\x`)
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0xf])
	default:
		sb.WriteRune(CharRune(c))
	}
	sb.WriteByte('\'')
	return sb.String()
}

// CharRune returns the Unicode code point of the Latin-1 character c.
func CharRune(c byte) rune {
	return charmap.ISO8859_1.DecodeByte(c)
}

// RuneChar returns the Latin-1 character for r, false if there is none.
func RuneChar(r rune) (byte, bool) {
	return charmap.ISO8859_1.EncodeRune(r)
}

// unescape decodes the escape sequence starting at d[i], which is a
// backslash, and returns the byte and the length of the sequence.
func unescape(d []byte, i int) (byte, int, error) {
	if i+1 >= len(d) {
		return 0, 0, ErrUnterminated
	}
	switch c := d[i+1]; c {
	case 'a':
		return '\a', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	case 'v':
		return '\v', 2, nil
	case '0':
		return 0, 2, nil
	case '\\', '\'', '"':
		return c, 2, nil
	case 'x':
		if i+3 >= len(d) || !isHexDigit(d[i+2]) || !isHexDigit(d[i+3]) {
			return 0, 0, fmt.Errorf("%w: \\x needs two hex digits", ErrBadEscape)
		}
		return hexVal(d[i+2])<<4 | hexVal(d[i+3]), 4, nil
	default:
		return 0, 0, fmt.Errorf("%w: \\%c", ErrBadEscape, c)
	}
}

func hexVal(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// Unquote decodes a double quoted string literal.
func Unquote(d []byte) (string, error) {
	if len(d) < 2 || d[0] != '"' || d[len(d)-1] != '"' {
		return "", fmt.Errorf("%w string %q", ErrUnterminated, d)
	}
	body := d[:len(d)-1]
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 1; i < len(body); {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		b, n, err := unescape(body, i)
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
		i += n
	}
	return sb.String(), nil
}

// UnquoteChar decodes a single quoted character literal holding one byte,
// one escape or one UTF-8 encoded Latin-1 character.
func UnquoteChar(d []byte) (byte, error) {
	if len(d) < 2 || d[0] != '\'' || d[len(d)-1] != '\'' {
		return 0, fmt.Errorf("%w character %q", ErrUnterminated, d)
	}
	body := d[:len(d)-1]
	if len(body) == 1 {
		return 0, fmt.Errorf("%w: empty", ErrBadChar)
	}
	if body[1] == '\\' {
		b, n, err := unescape(body, 1)
		if err != nil {
			return 0, err
		}
		if 1+n != len(body) {
			return 0, fmt.Errorf("%w: %s", ErrBadChar, d)
		}
		return b, nil
	}
	r, size := utf8.DecodeRune(body[1:])
	if 1+size != len(body) {
		return 0, fmt.Errorf("%w: %s", ErrBadChar, d)
	}
	if r == utf8.RuneError && size == 1 {
		// not UTF-8, take the byte as is
		return body[1], nil
	}
	c, ok := RuneChar(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not Latin-1", ErrBadChar, r)
	}
	return c, nil
}
