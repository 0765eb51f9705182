package dirbuild

import (
	"fmt"
	"os"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/parse"
)

const (
	EnvEnv = "XRB_ENV"
)

// LoadEnv reads the data document in $XRB_ENV, nil if it is unset.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	doc, err := parse.ParseString(envEnv, parse.ParseFilename("$"+EnvEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	env := ir.ToAny(doc).(map[string]any)
	if debug.Build() {
		debug.Log("loaded env from env", "env", env)
	}
	return env, nil
}
