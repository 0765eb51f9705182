package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustArray(t *testing.T, elems ...Value) *Array {
	t.Helper()
	a, err := NewArray(elems...)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestTypeText(t *testing.T) {
	for _, tt := range Types() {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != tt {
			t.Errorf("%s came back as %s", tt, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Object")); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestRecursionLevel(t *testing.T) {
	empty := &Array{}
	flat := mustArray(t, Uint32(1), Uint32(2))
	nested := mustArray(t, mustArray(t, Float(1)), mustArray(t, Float(2)))
	structs := mustArray(t, NewStructure())
	tests := []struct {
		v        Value
		level    int
		ultimate Type
		inline   bool
	}{
		{v: Boolean(true), level: 0, ultimate: BooleanType},
		{v: NewStructure(), level: 0, ultimate: StructureType},
		{v: empty, level: 1, ultimate: NoType},
		{v: flat, level: 1, ultimate: Uint32Type, inline: true},
		{v: nested, level: 2, ultimate: FloatType},
		{v: mustArray(t, empty), level: 2, ultimate: NoType},
		{v: structs, level: 1, ultimate: StructureType},
	}
	for i, tt := range tests {
		if got := ListRecursionLevel(tt.v); got != tt.level {
			t.Errorf("%d: level %d, want %d", i, got, tt.level)
		}
		if got := UltimateType(tt.v); got != tt.ultimate {
			t.Errorf("%d: ultimate %s, want %s", i, got, tt.ultimate)
		}
		if a, ok := tt.v.(*Array); ok && a.ShouldBeFormattedInline() != tt.inline {
			t.Errorf("%d: inline %t, want %t", i, !tt.inline, tt.inline)
		}
	}
}

func TestArrayHomogeneity(t *testing.T) {
	tests := []struct {
		name  string
		start *Array
		add   Value
	}{
		{name: "leaf type", start: mustArray(t, Uint32(1)), add: Sint32(-1)},
		{name: "leaf vs array", start: mustArray(t, Uint32(1)), add: mustArray(t, Uint32(1))},
		{name: "level", start: mustArray(t, mustArray(t, Uint32(1))), add: mustArray(t, mustArray(t, Uint32(1)))},
		{name: "ultimate", start: mustArray(t, mustArray(t, Uint32(1))), add: mustArray(t, String("x"))},
		{name: "empty inner", start: mustArray(t, mustArray(t, Uint32(1))), add: &Array{}},
		{name: "struct vs leaf", start: mustArray(t, NewStructure()), add: Boolean(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.start.Len()
			err := tt.start.Append(tt.add)
			if !errors.Is(err, ErrNonHomogeneous) {
				t.Fatalf("expected ErrNonHomogeneous, got %v", err)
			}
			if tt.start.Len() != n {
				t.Errorf("array grew to %d", tt.start.Len())
			}
		})
	}
}

func TestArrayRejects(t *testing.T) {
	a := &Array{}
	kp, err := NewKeyPair("k", Uint32(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Append(kp); !errors.Is(err, ErrKeyPairElement) {
		t.Errorf("key pair element: %v", err)
	}
	if err := a.Append(nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("nil element: %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("len %d", a.Len())
	}
}

func TestArraySet(t *testing.T) {
	a := mustArray(t, Uint32(1), Uint32(2))
	if err := a.Set(1, Uint32(5)); err != nil {
		t.Fatal(err)
	}
	if err := a.Set(0, String("x")); !errors.Is(err, ErrNonHomogeneous) {
		t.Errorf("expected ErrNonHomogeneous, got %v", err)
	}
	if err := a.Set(2, Uint32(1)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	single := mustArray(t, Uint32(1))
	if err := single.Set(0, String("x")); err != nil {
		t.Errorf("sole element replacement: %v", err)
	}
	if got := a.Last(); got != Uint32(5) {
		t.Errorf("last %v", got)
	}
	if a.At(7) != nil {
		t.Error("At out of range should be nil")
	}
}

func TestStructureKeyUniqueness(t *testing.T) {
	s := NewStructure()
	if err := s.Add("a", Uint32(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("b", String("x")); err != nil {
		t.Fatal(err)
	}
	for _, v := range []Value{Uint32(2), String("y"), NewStructure()} {
		if err := s.Add("a", v); !errors.Is(err, ErrKeyCollision) {
			t.Errorf("expected ErrKeyCollision, got %v", err)
		}
		if s.Len() != 2 {
			t.Errorf("structure has %d members", s.Len())
		}
	}
	if got := s.Member("a"); got != Uint32(1) {
		t.Errorf("a = %v", got)
	}
}

func TestStructureOrderAndIteration(t *testing.T) {
	s := NewStructure()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		if err := s.Add(k, Boolean(true)); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"zeta", "alpha", "mid"}
	if diff := cmp.Diff(want, s.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	// nested iterations are independent
	var pairs []string
	for k1 := range s.All() {
		for k2 := range s.All() {
			pairs = append(pairs, k1+"/"+k2)
		}
	}
	if len(pairs) != 9 || pairs[0] != "zeta/zeta" || pairs[8] != "mid/mid" {
		t.Errorf("pairs %v", pairs)
	}
	var keys []string
	for kp := range s.Members() {
		keys = append(keys, kp.Key())
		if kp.Key() == "alpha" {
			break
		}
	}
	if diff := cmp.Diff([]string{"zeta", "alpha"}, keys); diff != "" {
		t.Errorf("early break (-want +got):\n%s", diff)
	}
}

func TestKeyPairValidation(t *testing.T) {
	tests := []struct {
		key  string
		v    Value
		want error
	}{
		{key: "", v: Uint32(1), want: ErrInvalidKey},
		{key: "1a", v: Uint32(1), want: ErrInvalidKey},
		{key: "a b", v: Uint32(1), want: ErrInvalidKey},
		{key: "true", v: Uint32(1), want: ErrInvalidKey},
		{key: "a", v: nil, want: ErrNilValue},
		{key: "a", v: &KeyPair{key: "b", Value: Uint32(1)}, want: ErrNestedKeyPair},
	}
	for _, tt := range tests {
		_, err := NewKeyPair(tt.key, tt.v)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.key, err, tt.want)
		}
	}
}

func TestFloatSignAndStringAppend(t *testing.T) {
	if got := Float(1.5).Sign(Negative); got != -1.5 {
		t.Errorf("negative: %v", got)
	}
	if got := Float(-1.5).Sign(Positive); got != 1.5 {
		t.Errorf("positive: %v", got)
	}
	if got := Float(-2).Sign(Negative); got != -2 {
		t.Errorf("negative of negative: %v", got)
	}
	if got := String("ab").Append("c", "", "de"); got != "abcde" {
		t.Errorf("append: %q", got)
	}
}
