package path

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{in: "", want: nil},
		{in: "|a", want: New(Key("a"))},
		{in: "|map|entities|0|name", want: New(Key("map"), Key("entities"), Index(0), Key("name"))},
		{in: "|list|$", want: New(Key("list"), Last())},
		{in: "|map|entities|+|position|+", want: New(Key("map"), Key("entities"), Append(), Key("position"), Append())},
		{in: "|_x1|12", want: New(Key("_x1"), Index(12))},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
		if got.String() != tt.in {
			t.Errorf("%q: String() = %q", tt.in, got.String())
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{
		"a",
		"|",
		"|a||b",
		"|a|",
		"|1a",
		"|a b",
		"|true",
		"|-1",
		"|99999999999999999999999",
		".a",
	} {
		_, err := Parse(in)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%q: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestSegmentIsArray(t *testing.T) {
	if Key("a").IsArray() {
		t.Error("key segment addresses a structure")
	}
	for _, s := range []Segment{Index(0), Last(), Append()} {
		if !s.IsArray() {
			t.Errorf("%s should address an array", s.Kind)
		}
	}
}
