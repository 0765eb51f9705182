package eval

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var ErrSymbolExists = errors.New("symbol exists")

func Register(s Symbol) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[s.String()]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[s.String()] = s
	return nil
}

func init() {
	Register(Path())
	Register(Has())
	Register(TypeOf())
	Register(GetEnv())
	Register(ToValue())
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Symbols returns the registered symbols ordered by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Symbol) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
