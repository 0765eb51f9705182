package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// number returns the length of the numeric literal at the start of d and
// whether it is a float. d starts with a digit.
func number(d []byte) (int, bool, error) {
	if len(d) > 1 && d[0] == '0' {
		switch d[1] {
		case 'x', 'X':
			return radix(d, isHexDigit)
		case 'b', 'B':
			return radix(d, isBinDigit)
		}
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	n := digits + f + e
	if err := checkNumberEnd(d[n:]); err != nil {
		return n, false, err
	}
	return n, f+e != 0, nil
}

func radix(d []byte, digit func(byte) bool) (int, bool, error) {
	i := 2
	for i < len(d) && digit(d[i]) {
		i++
	}
	if i == 2 {
		return i, false, fmt.Errorf("%w: no digits after %q", ErrNumber, d[:2])
	}
	return i, false, checkNumberEnd(d[i:])
}

// checkNumberEnd rejects literals running into letters, as in 12ab or 1.5f.
func checkNumberEnd(rest []byte) error {
	if len(rest) == 0 {
		return nil
	}
	if isIdentPart(rest[0]) || rest[0] == '.' {
		return fmt.Errorf("%w: unexpected %q", ErrNumber, rest[0])
	}
	return nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return asciiDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	// . must be followed by 1 or more digits
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// ParseInteger converts an integer literal: 0x hexadecimal, 0b binary,
// a leading 0 octal, otherwise decimal.
func ParseInteger(b []byte) (uint64, error) {
	s := string(b)
	if len(s) > 1 && s[0] == '0' && asciiDigit(s[1]) {
		// strconv would also accept 0o and underscores
		s = "0o" + s[1:]
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrRange, b)
		}
		return 0, fmt.Errorf("%w: %s", ErrNumber, b)
	}
	return u, nil
}

func ParseFloat(b []byte) (float32, error) {
	f, err := strconv.ParseFloat(string(b), 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrRange, b)
		}
		return 0, fmt.Errorf("%w: %s", ErrNumber, b)
	}
	return float32(f), nil
}

// FormatFloat formats f with the fewest digits that read back as the same
// float32, always including a decimal point or an exponent.
func FormatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// FormatSint formats v with an explicit sign, as signed integers always
// are in a document.
func FormatSint(v int32) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return "+" + strconv.FormatInt(int64(v), 10)
}

func FormatUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
