package token

import "github.com/xrbengine/xrb/debug"

// LogTokens writes toks to the debug logger.
func LogTokens(toks []Token, msg string) {
	for i := range toks {
		t := &toks[i]
		debug.Log(msg, "type", t.Type, "bytes", string(t.Bytes), "pos", t.Pos.String())
	}
}
