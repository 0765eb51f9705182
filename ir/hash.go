package ir

import (
	"encoding/binary"
	"math"
	"slices"
	"strings"

	farm "github.com/dgryski/go-farm"
)

// Hash returns a 64-bit hash of v, stable across processes. Values that
// are Equal hash the same.
// It panics if v is nil.
func Hash(v Value) uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}
	return farm.Hash64(appendHashInput(nil, v))
}

func appendHashInput(b []byte, v Value) []byte {
	b = append(b, byte(v.Type()))
	switch x := v.(type) {
	case Boolean:
		if x {
			return append(b, 1)
		}
		return append(b, 0)
	case Sint32:
		return binary.LittleEndian.AppendUint32(b, uint32(x))
	case Uint32:
		return binary.LittleEndian.AppendUint32(b, uint32(x))
	case Float:
		return binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(x)))
	case Character:
		return append(b, byte(x))
	case String:
		return appendHashString(b, string(x))
	case *KeyPair:
		b = appendHashString(b, x.key)
		return binary.LittleEndian.AppendUint64(b, Hash(x.Value))
	case *Array:
		b = binary.LittleEndian.AppendUint32(b, uint32(len(x.elems)))
		for _, e := range x.elems {
			b = binary.LittleEndian.AppendUint64(b, Hash(e))
		}
		return b
	case *Structure:
		// member order does not take part, as in Equal
		members := slices.Clone(x.members)
		slices.SortFunc(members, func(p, q *KeyPair) int {
			return strings.Compare(p.key, q.key)
		})
		b = binary.LittleEndian.AppendUint32(b, uint32(len(members)))
		for _, kp := range members {
			b = appendHashString(b, kp.key)
			b = binary.LittleEndian.AppendUint64(b, Hash(kp.Value))
		}
		return b
	}
	return b
}

func appendHashString(b []byte, s string) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}
