package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	name string
	d    []byte
	n    []int
}

func NewPosDoc(name string, d []byte) *PosDoc {
	p := &PosDoc{name: name, d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 1-based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (p *PosDoc) Name() string {
	return p.name
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

// End is the position just past the document.
func (p *PosDoc) End() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	if p.D.name != "" {
		return fmt.Sprintf("%s:%d:%d (`...%s...`)", p.D.name, line, col, sample)
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
