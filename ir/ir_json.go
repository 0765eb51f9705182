package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/xrbengine/xrb/token"
)

// ToJSON renders v as JSON. Structure members keep their order, a key pair
// becomes a single member object and a character a one character string.
func ToJSON(v Value) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch x := v.(type) {
	case nil:
		return ErrNilValue
	case Boolean:
		buf.WriteString(strconv.FormatBool(bool(x)))
	case Sint32:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case Uint32:
		buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case Float:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v", ErrUnprintable, f)
		}
		buf.WriteString(token.FormatFloat(float32(x)))
	case Character:
		writeJSONString(buf, string(token.CharRune(byte(x))))
	case String:
		writeJSONString(buf, string(x))
	case *KeyPair:
		buf.WriteByte('{')
		writeJSONString(buf, x.key)
		buf.WriteByte(':')
		if err := writeJSON(buf, x.Value); err != nil {
			return err
		}
		buf.WriteByte('}')
	case *Array:
		buf.WriteByte('[')
		for i, e := range x.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Structure:
		buf.WriteByte('{')
		for i, kp := range x.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, kp.key)
			buf.WriteByte(':')
			if err := writeJSON(buf, kp.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// FromJSON builds a value from JSON. Objects become structures in member
// order, integers become Sint32 when negative and Uint32 otherwise, other
// numbers Float. Object keys must be identifiers, arrays homogeneous and
// null does not occur.
func FromJSON(d []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			s := NewStructure()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := kt.(string)
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				if err := s.Add(key, v); err != nil {
					return nil, err
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return s, nil
		case '[':
			a := &Array{}
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				if err := a.Append(v); err != nil {
					return nil, err
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return a, nil
		}
		return nil, fmt.Errorf("unexpected %v in JSON", t)
	case bool:
		return Boolean(t), nil
	case json.Number:
		return numberValue(string(t))
	case string:
		return String(t), nil
	case nil:
		return nil, ErrNull
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

func numberValue(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			switch {
			case i < 0 && i >= math.MinInt32:
				return Sint32(i), nil
			case i >= 0 && i <= math.MaxUint32:
				return Uint32(i), nil
			}
		}
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, fmt.Errorf("number %s: %w", s, err)
	}
	return Float(f), nil
}

// ToAny converts v to plain Go values: bool, int, float64, string, []any
// and map[string]any. Characters become one character strings and a key
// pair a single entry map.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Boolean:
		return bool(x)
	case Sint32:
		return int(x)
	case Uint32:
		return int(x)
	case Float:
		return float64(x)
	case Character:
		return string(token.CharRune(byte(x)))
	case String:
		return string(x)
	case *KeyPair:
		return map[string]any{x.key: ToAny(x.Value)}
	case *Array:
		res := make([]any, len(x.elems))
		for i, e := range x.elems {
			res[i] = ToAny(e)
		}
		return res
	case *Structure:
		res := make(map[string]any, len(x.members))
		for _, kp := range x.members {
			res[kp.key] = ToAny(kp.Value)
		}
		return res
	}
	return nil
}

// FromAny is the inverse of ToAny. Map keys are added in sorted order.
func FromAny(x any) (Value, error) {
	switch y := x.(type) {
	case nil:
		return nil, ErrNull
	case Value:
		return y, nil
	case bool:
		return Boolean(y), nil
	case int:
		return intValue(int64(y))
	case int8:
		return intValue(int64(y))
	case int16:
		return intValue(int64(y))
	case int32:
		return intValue(int64(y))
	case int64:
		return intValue(y)
	case uint:
		return uintValue(uint64(y))
	case uint8:
		return uintValue(uint64(y))
	case uint16:
		return uintValue(uint64(y))
	case uint32:
		return uintValue(uint64(y))
	case uint64:
		return uintValue(y)
	case float32:
		return Float(y), nil
	case float64:
		return Float(y), nil
	case json.Number:
		return numberValue(string(y))
	case string:
		return String(y), nil
	case []any:
		a := &Array{}
		for _, e := range y {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			if err := a.Append(v); err != nil {
				return nil, err
			}
		}
		return a, nil
	case map[string]any:
		keys := make([]string, 0, len(y))
		for k := range y {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		s := NewStructure()
		for _, k := range keys {
			v, err := FromAny(y[k])
			if err != nil {
				return nil, err
			}
			if err := s.Add(k, v); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, x)
}

func intValue(i int64) (Value, error) {
	if i >= 0 {
		return uintValue(uint64(i))
	}
	if i < math.MinInt32 {
		return Float(i), nil
	}
	return Sint32(i), nil
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxUint32 {
		return Float(u), nil
	}
	return Uint32(u), nil
}
