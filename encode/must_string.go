package encode

import (
	"bytes"
	"strings"

	"github.com/xrbengine/xrb/ir"
)

func MustString(v ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
