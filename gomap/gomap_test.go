package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/parse"
)

type spawn struct {
	Kind string    `xrb:"field=kind"`
	At   []float32 `xrb:"field=at"`
}

type base struct {
	Version uint32 `xrb:"field=version"`
}

type level struct {
	base
	Name    string            `xrb:"field=name"`
	Offset  int               `xrb:"field=offset"`
	Glyph   byte              `xrb:"field=glyph,char"`
	Hard    bool              `xrb:"field=hard,omitempty"`
	Spawns  []spawn           `xrb:"field=spawns"`
	Grid    [2][]uint16       `xrb:"field=grid"`
	Tags    map[string]string `xrb:"field=tags,omitempty"`
	Extra   ir.Value          `xrb:"field=extra,omitempty"`
	Boss    *spawn            `xrb:"field=boss"`
	Comment string            `xrb:"-"`
}

const levelText = `version 3;
name "cave";
offset -2;
glyph '#';
spawns
[
    {
        kind "bat";
        at [1.0, 2.5];
    }
];
grid
[
    [1, 2],
    [3]
];
tags
{
    mood "dark";
};
extra [+1, -1];
`

func TestLoad(t *testing.T) {
	var got level
	if err := Load([]byte(levelText+"ignored true;\n"), &got); err != nil {
		t.Fatal(err)
	}
	extra, err := ir.NewArray(ir.Sint32(1), ir.Sint32(-1))
	if err != nil {
		t.Fatal(err)
	}
	want := level{
		base:   base{Version: 3},
		Name:   "cave",
		Offset: -2,
		Glyph:  '#',
		Spawns: []spawn{{Kind: "bat", At: []float32{1, 2.5}}},
		Grid:   [2][]uint16{{1, 2}, {3}},
		Tags:   map[string]string{"mood": "dark"},
		Extra:  extra,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(level{}), cmp.Comparer(ir.Equal)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMarshal(t *testing.T) {
	var lv level
	if err := Load([]byte(levelText), &lv); err != nil {
		t.Fatal(err)
	}
	d, err := Marshal(&lv)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(levelText, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	doc, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ToDocument(lv)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc, back) {
		t.Errorf("mismatch:\n%s\n%s", encode.MustString(doc), encode.MustString(back))
	}
}

func TestFromIRErrors(t *testing.T) {
	tests := []struct {
		in   string
		path string
	}{
		{in: `name 1;`, path: "|name"},
		{in: `spawns [{ at ["x"]; }];`, path: "|spawns|0|at|0"},
		{in: `glyph 35;`, path: "|glyph"},
		{in: `grid [[1]];`, path: "|grid"},
		{in: `grid [[70000], [1]];`, path: "|grid|0|0"},
	}
	for _, tt := range tests {
		var lv level
		err := Load([]byte(tt.in), &lv)
		if err == nil {
			t.Errorf("%s: no error", tt.in)
			continue
		}
		if !strings.Contains(err.Error(), tt.path) {
			t.Errorf("%s: %v does not name %s", tt.in, err, tt.path)
		}
	}
	var lv level
	err := Load([]byte(`grid [[70000], [1]];`), &lv)
	if !errors.Is(err, ErrRange) {
		t.Errorf("got %v", err)
	}
	var te *TypeError
	if err := Load([]byte(`hard 1;`), &lv); !errors.As(err, &te) {
		t.Errorf("got %v", err)
	}
	if err := FromIR(ir.Uint32(1), lv); err == nil {
		t.Error("non-pointer destination")
	}
}

func TestToIRErrors(t *testing.T) {
	if _, err := ToIR([]any{1, "x"}); !errors.Is(err, ir.ErrNonHomogeneous) {
		t.Errorf("got %v", err)
	}
	if _, err := ToIR(int64(1) << 40); !errors.Is(err, ErrRange) {
		t.Errorf("got %v", err)
	}
	if _, err := ToIR(nil); !errors.Is(err, ir.ErrNilValue) {
		t.Errorf("got %v", err)
	}
	if _, err := ToDocument(3); err == nil {
		t.Error("expected a type error")
	}
}

type celsius float32

func (c celsius) ToIR() (ir.Value, error) {
	return ir.Float(float32(c)), nil
}

func (c *celsius) FromIR(v ir.Value) error {
	f, ok := v.(ir.Float)
	if !ok {
		return errors.New("want a Float")
	}
	*c = celsius(f)
	return nil
}

func TestIRInterfaces(t *testing.T) {
	type weather struct {
		Temp celsius `xrb:"field=temp"`
	}
	var w weather
	if err := Load([]byte(`temp 21.5;`), &w); err != nil {
		t.Fatal(err)
	}
	if w.Temp != 21.5 {
		t.Errorf("got %v", w.Temp)
	}
	if err := Load([]byte(`temp 21;`), &w); err == nil {
		t.Error("FromIR error ignored")
	}
	d, err := Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "temp 21.5;\n" {
		t.Errorf("got %q", d)
	}
}

func TestParseStructTag(t *testing.T) {
	got, err := ParseStructTag("field=glyph, char,omitempty")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"field": "glyph", "char": "", "omitempty": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseStructTag("=x"); err == nil {
		t.Error("empty key accepted")
	}
}
