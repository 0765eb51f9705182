package parse

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xrbengine/xrb/encode"
	"github.com/xrbengine/xrb/ir"
	"github.com/xrbengine/xrb/token"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `// only a comment`},
		{in: `a true; b false;`},
		{in: `speed 1.5; turn -0.25; big 1e10; tiny 2.5E-3;`},
		{in: `hp 100; delta -7; bonus +7;`},
		{in: `mask 0xFF; bits 0b1010; perms 0755;`},
		{in: `glyph 'x'; nul '\0'; hex '\x7f'; latin 'é';`},
		{in: `name "multi" "part" /* joined */ "string";`},
		{in: `list [1, 2, 3,]; empty []; nested [[1], [2, 3]];`},
		{in: `pos { x +1; y -1; } ; deep { a { b { c [ { d 1.0; } ]; }; }; };`},
		{in: `strings ["a", "b"]; chars ['a', 'b'];`},
	}
	for i := range pts {
		pt := &pts[i]
		doc, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		t.Logf("\n%s\n", encode.MustString(doc))
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Value
	}{
		{in: `true`, want: ir.Boolean(true)},
		{in: `42`, want: ir.Uint32(42)},
		{in: `+42`, want: ir.Sint32(42)},
		{in: `-42`, want: ir.Sint32(-42)},
		{in: `+0`, want: ir.Sint32(0)},
		{in: `-2147483648`, want: ir.Sint32(-2147483648)},
		{in: `4294967295`, want: ir.Uint32(4294967295)},
		{in: `0x1f`, want: ir.Uint32(31)},
		{in: `-0x10`, want: ir.Sint32(-16)},
		{in: `0b11`, want: ir.Uint32(3)},
		{in: `017`, want: ir.Uint32(15)},
		{in: `0`, want: ir.Uint32(0)},
		{in: `1.5`, want: ir.Float(1.5)},
		{in: `-1.5`, want: ir.Float(-1.5)},
		{in: `+1.5`, want: ir.Float(1.5)},
		{in: `3e2`, want: ir.Float(300)},
		{in: `'\n'`, want: ir.Character('\n')},
		{in: `'é'`, want: ir.Character(0xe9)},
		{in: `"a" "b"`, want: ir.String("ab")},
		{in: `"tab\there\x21"`, want: ir.String("tab\there!")},
	}
	for _, tt := range tests {
		got, err := ParseValue([]byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if !ir.Equal(got, tt.want) || got.Type() != tt.want.Type() {
			t.Errorf("%s: got %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestParseStructure(t *testing.T) {
	doc, err := ParseString(`
// a level
name "first";
map
{
    entities
    [
        { position [1.5, -2.25]; },
        { position [0.0, 4.0]; }
    ];
};
`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "map"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	f, err := ir.PathElementFloat(doc, "|map|entities|1|position|$")
	if err != nil {
		t.Fatal(err)
	}
	if f != 4 {
		t.Errorf("got %v", f)
	}
	name, err := ir.PathElementString(doc, "|name")
	if err != nil || name != "first" {
		t.Errorf("name %q: %v", name, err)
	}
}

func TestBadParse(t *testing.T) {
	pts := []parseTest{
		{in: `a 1; a 2;`, e: ir.ErrKeyCollision},
		{in: `s { k 1; k 1; };`, e: ir.ErrKeyCollision},
		{in: `a [1, 2]; b [1, "x"];`, e: ir.ErrNonHomogeneous},
		{in: `a [1, -1];`, e: ir.ErrNonHomogeneous},
		{in: `a [[1], 2];`, e: ir.ErrNonHomogeneous},
		{in: `a [[1], []];`, e: ir.ErrNonHomogeneous},
		{in: `a "unterminated;`, e: token.ErrUnterminated},
		{in: `a 4294967296;`, e: token.ErrRange},
		{in: `a +2147483648;`, e: token.ErrRange},
		{in: `a -2147483649;`, e: token.ErrRange},
		{in: `a 08;`, e: token.ErrNumber},
		{in: `a 0x;`, e: token.ErrNumber},
		{in: `a 1e99;`, e: token.ErrRange},
		{in: `a - 1;`, e: token.ErrSignSpace},
		{in: `a -true;`, e: ErrParse},
		{in: `a 1`, e: ErrUnexpectedEOF},
		{in: `a [1, 2`, e: ErrUnexpectedEOF},
		{in: `a { b 1;`, e: ErrUnexpectedEOF},
		{in: `a`, e: ErrUnexpectedEOF},
		{in: `a 1 2;`, e: ErrParse},
		{in: `a [1 2];`, e: ErrParse},
		{in: `1 2;`, e: ErrParse},
		{in: `true 1;`, e: ErrParse},
		{in: `a ;`, e: ErrParse},
		{in: `a 'xy';`, e: token.ErrBadChar},
		{in: `a "\q";`, e: token.ErrBadEscape},
	}
	for i := range pts {
		pt := &pts[i]
		doc, err := Parse([]byte(pt.in), ParseFilename("bad.xrb"))
		if doc != nil {
			t.Errorf("%q: got a document", pt.in)
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not a parse error", pt.in, err)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := Parse([]byte("a 1;\nb \"oops;\n"), ParseFilename("level.xrb"))
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("%T: %v", err, err)
	}
	if l, c := te.Pos.LineCol(); l != 2 || c != 3 {
		t.Errorf("line %d col %d", l, c)
	}
	if !strings.Contains(err.Error(), "level.xrb") {
		t.Errorf("no file name in %q", err)
	}
	_, err = Parse([]byte("a 1;\na 2;"), ParseFilename("dup.xrb"))
	if !strings.Contains(err.Error(), "dup.xrb:2:1") {
		t.Errorf("no position in %q", err)
	}
}

// The second array literal does not match the first element's type: the
// whole document is discarded.
func TestSecondArrayMismatch(t *testing.T) {
	doc, err := Parse([]byte(`
first [1, 2, 3];
second [1.0, 2];
third "never reached";
`))
	if doc != nil {
		t.Fatal("partial document returned")
	}
	if !errors.Is(err, ir.ErrNonHomogeneous) {
		t.Errorf("got %v", err)
	}
}

func TestParseLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	if _, err := Parse([]byte(`a 1; a 2;`), ParseFilename("dup.xrb"), ParseLogger(logger)); err == nil {
		t.Fatal("expected an error")
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "dup.xrb") {
		t.Errorf("log: %q", out)
	}
	buf.Reset()
	if _, err := Parse([]byte(`a 1;`), ParseLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("logged on success: %q", buf.String())
	}
}

func TestParseFileAndLoad(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xrb")
	bad := filepath.Join(dir, "bad.xrb")
	if err := os.WriteFile(good, []byte("speed 2.0;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("speed [1, 'x'];\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(good)
	if err != nil {
		t.Fatal(err)
	}
	if f, err := ir.PathElementFloat(doc, "|speed"); err != nil || f != 2 {
		t.Errorf("speed %v: %v", f, err)
	}

	buf := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	if Load(good, logger) == nil {
		t.Error("good file not loaded")
	}
	if Load(bad, logger) != nil {
		t.Error("bad file loaded")
	}
	if !strings.Contains(buf.String(), "bad.xrb") {
		t.Errorf("bad file not logged: %q", buf.String())
	}
	buf.Reset()
	if Load(filepath.Join(dir, "missing.xrb"), logger) != nil {
		t.Error("missing file loaded")
	}
	if !strings.Contains(buf.String(), "missing.xrb") {
		t.Errorf("missing file not logged: %q", buf.String())
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(`a [1, 2];`))
	if err != nil {
		t.Fatal(err)
	}
	if arr := ir.PathElementArray(doc, "|a"); arr == nil || arr.Len() != 2 {
		t.Errorf("got %v", arr)
	}
}

func TestParseValueTrailing(t *testing.T) {
	if _, err := ParseValue([]byte(`1 2`)); !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
}
