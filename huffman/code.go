// Package huffman implements canonical Huffman coding of bytes on top of
// a [bitcache.Cache].
//
// A [Code] is fully described by the code length of each of the 256 byte
// values. Tables are stored as 256 five bit lengths, codes are written most
// significant bit first.
package huffman

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
	"slices"

	"github.com/xrbengine/xrb/bitcache"
	"github.com/xrbengine/xrb/debug"
)

// MaxCodeLength bounds the length of every code.
const MaxCodeLength = 24

const tableBits = 5

var (
	ErrInvalidTable = errors.New("invalid huffman table")
	ErrNoCode       = errors.New("symbol has no code")
	ErrInvalidCode  = errors.New("invalid huffman code")
)

type Code struct {
	lengths [256]uint8
	codes   [256]uint32

	// count[l] is the number of codes of length l, symbols is every coded
	// symbol ordered by (length, value).
	count   [MaxCodeLength + 1]int
	symbols []byte
}

// NewCode builds the canonical code for the given symbol frequencies.
// Symbols with zero frequency get no code. When the optimal code is deeper
// than MaxCodeLength the frequencies are halved until it fits.
func NewCode(freq [256]uint64) *Code {
	for {
		lengths, depth := codeLengths(&freq)
		if depth <= MaxCodeLength {
			c, err := fromLengths(lengths)
			if err != nil {
				// lengths from a real tree always satisfy Kraft
				panic(err)
			}
			if debug.Huffman() {
				debug.Log("huffman code", "symbols", len(c.symbols), "depth", depth)
			}
			return c
		}
		for i, f := range freq {
			if f != 0 {
				freq[i] = max(1, f/2)
			}
		}
	}
}

// CodeFromData builds the code for the byte frequencies of data.
func CodeFromData(data []byte) *Code {
	var freq [256]uint64
	for _, b := range data {
		freq[b]++
	}
	return NewCode(freq)
}

// Length returns the code length of sym, 0 if it has no code.
func (c *Code) Length(sym byte) int {
	return int(c.lengths[sym])
}

// Bits returns the code of sym right aligned in the result.
func (c *Code) Bits(sym byte) uint32 {
	return c.codes[sym]
}

type node struct {
	weight      uint64
	order       int
	sym         int
	left, right int
}

type nodeHeap struct {
	nodes []node
	idx   []int
}

func (h *nodeHeap) Len() int { return len(h.idx) }
func (h *nodeHeap) Less(i, j int) bool {
	a, b := &h.nodes[h.idx[i]], &h.nodes[h.idx[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.order < b.order
}
func (h *nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *nodeHeap) Push(x any)   { h.idx = append(h.idx, x.(int)) }
func (h *nodeHeap) Pop() any {
	n := len(h.idx)
	x := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return x
}

func codeLengths(freq *[256]uint64) ([256]uint8, int) {
	var lengths [256]uint8
	h := &nodeHeap{}
	for sym, f := range freq {
		if f == 0 {
			continue
		}
		h.nodes = append(h.nodes, node{weight: f, order: len(h.nodes), sym: sym, left: -1, right: -1})
		h.idx = append(h.idx, len(h.nodes)-1)
	}
	switch len(h.nodes) {
	case 0:
		return lengths, 0
	case 1:
		lengths[h.nodes[0].sym] = 1
		return lengths, 1
	}
	heap.Init(h)
	for h.Len() > 1 {
		a := heap.Pop(h).(int)
		b := heap.Pop(h).(int)
		h.nodes = append(h.nodes, node{
			weight: h.nodes[a].weight + h.nodes[b].weight,
			order:  len(h.nodes),
			sym:    -1,
			left:   a,
			right:  b,
		})
		heap.Push(h, len(h.nodes)-1)
	}
	depth := 0
	var walk func(i, d int)
	walk = func(i, d int) {
		n := &h.nodes[i]
		if n.sym >= 0 {
			depth = max(depth, d)
			if d <= MaxCodeLength {
				lengths[n.sym] = uint8(d)
			}
			return
		}
		walk(n.left, d+1)
		walk(n.right, d+1)
	}
	walk(h.idx[0], 0)
	return lengths, depth
}

// fromLengths assigns canonical codes: shorter codes first, equal lengths
// in symbol order.
func fromLengths(lengths [256]uint8) (*Code, error) {
	c := &Code{lengths: lengths}
	for sym, l := range lengths {
		if l > MaxCodeLength {
			return nil, fmt.Errorf("%w: symbol %d has length %d", ErrInvalidTable, sym, l)
		}
		if l == 0 {
			continue
		}
		c.count[l]++
		c.symbols = append(c.symbols, byte(sym))
	}
	// Kraft: the code space must not be oversubscribed.
	left := 1
	for l := 1; l <= MaxCodeLength; l++ {
		left <<= 1
		left -= c.count[l]
		if left < 0 {
			return nil, fmt.Errorf("%w: oversubscribed at length %d", ErrInvalidTable, l)
		}
	}
	slices.SortStableFunc(c.symbols, func(a, b byte) int {
		return cmp.Compare(lengths[a], lengths[b])
	})
	code, prev := uint32(0), uint8(0)
	for i, sym := range c.symbols {
		l := lengths[sym]
		if i > 0 {
			code++
		}
		code <<= l - prev
		prev = l
		c.codes[sym] = code
	}
	return c, nil
}

// WriteTable writes the code lengths of all 256 symbols.
func (c *Code) WriteTable(bc *bitcache.Cache) error {
	for _, l := range c.lengths {
		if err := bc.WriteUnsignedBits(uint32(l), tableBits); err != nil {
			return err
		}
	}
	return nil
}

// ReadTable reads a table written by WriteTable.
func ReadTable(bc *bitcache.Cache) (*Code, error) {
	var lengths [256]uint8
	for i := range lengths {
		l, err := bc.ReadUnsignedBits(tableBits)
		if err != nil {
			return nil, err
		}
		lengths[i] = uint8(l)
	}
	return fromLengths(lengths)
}

// Encode writes the code of every byte of data.
func (c *Code) Encode(bc *bitcache.Cache, data []byte) error {
	for i, b := range data {
		l := c.lengths[b]
		if l == 0 {
			return fmt.Errorf("%w: byte %#02x at offset %d", ErrNoCode, b, i)
		}
		if err := bc.WriteUnsignedBits(c.codes[b], int(l)); err != nil {
			return err
		}
	}
	return nil
}

// maxDecodePrealloc bounds the initial buffer of Decode: n comes from the
// stream and is only trusted as far as the bits backing it arrive.
const maxDecodePrealloc = 1 << 16

// Decode reads n symbols.
func (c *Code) Decode(bc *bitcache.Cache, n int) ([]byte, error) {
	res := make([]byte, 0, min(n, maxDecodePrealloc))
	for range n {
		sym, err := c.decodeOne(bc)
		if err != nil {
			return nil, err
		}
		res = append(res, sym)
	}
	return res, nil
}

func (c *Code) decodeOne(bc *bitcache.Cache) (byte, error) {
	code, first, index := 0, 0, 0
	for l := 1; l <= MaxCodeLength; l++ {
		bit, err := bc.ReadUnsignedBits(1)
		if err != nil {
			return 0, err
		}
		code |= int(bit)
		count := c.count[l]
		if code-first < count {
			return c.symbols[index+code-first], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, ErrInvalidCode
}
