package token

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || asciiDigit(c)
}

func identLen(d []byte) int {
	if len(d) == 0 || !isIdentStart(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) && isIdentPart(d[i]) {
		i++
	}
	return i
}

// IsIdent reports whether s can be used as a structure key: an ASCII
// letter or underscore followed by letters, digits and underscores, other
// than a keyword.
func IsIdent(s string) bool {
	if identLen([]byte(s)) != len(s) || s == "" {
		return false
	}
	return !IsKeyword(s)
}

func IsKeyword(s string) bool {
	switch s {
	case "true", "false":
		return true
	default:
		return false
	}
}
