package encode

import (
	"strings"

	"github.com/xrbengine/xrb/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: CommentColor,
		}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	for _, t := range []ir.Type{ir.Sint32Type, ir.Uint32Type, ir.FloatType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}

	able.Type = ir.BooleanType
	colors.Map[able] = color.CyanString

	able.Type = ir.CharacterType
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ir.KeyPairType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Type = ir.StructureType
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = ir.ArrayType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
