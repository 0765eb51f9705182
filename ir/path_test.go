package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetPathAutoVivify(t *testing.T) {
	doc := NewStructure()
	if err := doc.SetPathElementFloat("|map|entities|+|position|+", 1.0); err != nil {
		t.Fatal(err)
	}
	got, err := PathElementFloat(doc, "|map|entities|0|position|0")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.0 {
		t.Errorf("got %v", got)
	}
	if PathElementStructure(doc, "|map") == nil {
		t.Error("map should be a structure")
	}
	if a := PathElementArray(doc, "|map|entities"); a == nil || a.Len() != 1 {
		t.Error("entities should be an array of one")
	}
	if PathElementStructure(doc, "|map|entities|0") == nil {
		t.Error("entity should be a structure")
	}

	if err := doc.SetPathElementFloat("|map|entities|0|position|+", 2.0); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPathElementString("|map|entities|$|name", "ship"); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"map": map[string]any{
			"entities": []any{
				map[string]any{
					"position": []any{1.0, 2.0},
					"name":     "ship",
				},
			},
		},
	}
	if diff := cmp.Diff(want, ToAny(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetPathReplace(t *testing.T) {
	doc := NewStructure()
	for _, step := range []func() error{
		func() error { return doc.SetPathElementUint32("|a|b", 1) },
		func() error { return doc.SetPathElementUint32("|a|b", 2) },
		func() error { return doc.SetPathElementSint32("|list|+", -1) },
		func() error { return doc.SetPathElementSint32("|list|+", -2) },
		func() error { return doc.SetPathElementSint32("|list|0", 7) },
		func() error { return doc.SetPathElementSint32("|list|$", 9) },
		func() error { return doc.SetPathElementCharacter("|c", 'x') },
		func() error { return doc.SetPathElementBoolean("|flag", true) },
	} {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
	if v, err := PathElementUint32(doc, "|a|b"); err != nil || v != 2 {
		t.Errorf("|a|b = %v, %v", v, err)
	}
	list := PathElementArray(doc, "|list")
	if list == nil || list.At(0) != Sint32(7) || list.At(1) != Sint32(9) {
		t.Errorf("list = %v", ToAny(list))
	}
	if v, err := PathElementCharacter(doc, "|c"); err != nil || v != 'x' {
		t.Errorf("|c = %v, %v", v, err)
	}
	if v, err := PathElementBoolean(doc, "|flag"); err != nil || !bool(v) {
		t.Errorf("|flag = %v, %v", v, err)
	}
}

func TestSetPathFailureLeavesTreeUnchanged(t *testing.T) {
	doc := NewStructure()
	if err := doc.SetPathElementUint32("|list|+", 1); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPathElementUint32("|grid|+|+", 1); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPathElementUint32("|grid|+|+", 2); err != nil {
		t.Fatal(err)
	}
	before := Clone(doc)

	tests := []struct {
		path string
		v    Value
		want error
	}{
		{path: "|list|+", v: String("x"), want: ErrNonHomogeneous},
		{path: "|list|5", v: Uint32(1), want: ErrIndexOutOfRange},
		{path: "|list|key", v: Uint32(1), want: ErrTypeMismatch},
		{path: "|list|0|deeper", v: Uint32(1), want: ErrNotContainer},
		{path: "|fresh|sub|0", v: Uint32(1), want: ErrIndexOutOfRange},
		{path: "|fresh|+|x|$", v: Uint32(1), want: ErrIndexOutOfRange},
		{path: "|grid|0|0", v: String("x"), want: ErrNonHomogeneous},
		{path: "|grid|0|+", v: Uint32(3), want: nil},
		{path: "|0", v: Uint32(1), want: ErrTypeMismatch},
		{path: "bad", v: Uint32(1), want: ErrMalformedPath},
		{path: "", v: Uint32(1), want: ErrMalformedPath},
		{path: "|k", v: nil, want: ErrNilValue},
	}
	for _, tt := range tests {
		err := doc.SetPathElement(tt.path, tt.v)
		if tt.want == nil {
			// grid rows are arrays of Uint32 and may grow independently
			if err != nil {
				t.Errorf("%q: %v", tt.path, err)
			}
			before = Clone(doc)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.path, err, tt.want)
		}
		var pe *PathError
		if !errors.As(err, &pe) {
			t.Errorf("%q: %T is not a *PathError", tt.path, err)
		}
		if !Equal(before, doc) {
			t.Errorf("%q: tree changed:\n%s", tt.path, cmp.Diff(ToAny(before), ToAny(doc)))
		}
	}
	if doc.Has("fresh") {
		t.Error("failed assignment left a fresh member behind")
	}
}

func TestPathElementErrors(t *testing.T) {
	doc := NewStructure()
	if err := doc.SetPathElementString("|a|b", "x"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPathElementUint32("|l|+", 3); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path    string
		want    error
		segment string
	}{
		{path: "|nope", want: ErrUnknownKey, segment: "nope"},
		{path: "|a|b|c", want: ErrNotContainer, segment: "c"},
		{path: "|l|1", want: ErrIndexOutOfRange, segment: "1"},
		{path: "|l|+", want: ErrMalformedPath, segment: "+"},
		{path: "|a|0", want: ErrTypeMismatch, segment: "0"},
		{path: "|l|x", want: ErrTypeMismatch, segment: "x"},
		{path: "a", want: ErrMalformedPath},
	}
	for _, tt := range tests {
		_, err := PathElement(doc, tt.path)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.path, err, tt.want)
			continue
		}
		var pe *PathError
		if !errors.As(err, &pe) || pe.Segment != tt.segment {
			t.Errorf("%q: segment %+v", tt.path, pe)
		}
	}

	if _, err := PathElementUint32(doc, "|a|b"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("typed mismatch: %v", err)
	}
	if PathElementArray(doc, "|a") != nil {
		t.Error("|a is not an array")
	}
	if PathElementStructure(doc, "|missing") != nil {
		t.Error("|missing is not a structure")
	}
	v, err := PathElement(doc, "")
	if err != nil || v != Value(doc) {
		t.Errorf("empty path: %v %v", v, err)
	}
	if s, err := PathElementString(doc, "|a|b"); err != nil || s != "x" {
		t.Errorf("|a|b = %q, %v", s, err)
	}
	if u, err := PathElementUint32(doc, "|l|$"); err != nil || u != 3 {
		t.Errorf("|l|$ = %v, %v", u, err)
	}
}

func TestPathThroughKeyPair(t *testing.T) {
	inner := NewStructure()
	if err := inner.Add("x", Float(0.5)); err != nil {
		t.Fatal(err)
	}
	kp, err := NewKeyPair("pos", inner)
	if err != nil {
		t.Fatal(err)
	}
	got, err := PathElementFloat(kp, "|x")
	if err != nil || got != 0.5 {
		t.Errorf("got %v %v", got, err)
	}
}

func TestArraySetPath(t *testing.T) {
	a := &Array{}
	if err := a.SetPathElementString("|+", "a"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetPathElementString("|+", "b"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetPathElementString("|0", "z"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetPathElementUint32("|+", 1); !errors.Is(err, ErrNonHomogeneous) {
		t.Errorf("expected ErrNonHomogeneous, got %v", err)
	}
	if diff := cmp.Diff([]any{"z", "b"}, ToAny(a)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
