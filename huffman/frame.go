package huffman

import (
	"errors"
	"fmt"
	"io"

	farm "github.com/dgryski/go-farm"

	"github.com/xrbengine/xrb/bitcache"
	"github.com/xrbengine/xrb/endian"
)

const (
	// Magic opens every compressed frame ("XRBH").
	Magic   = 0x58524248
	Version = 1
)

var (
	ErrBadMagic = errors.New("not a huffman frame")
	ErrVersion  = errors.New("unsupported huffman frame version")
	ErrChecksum = errors.New("huffman frame checksum mismatch")
)

// Compress writes data to w as a single frame: magic, version, farm64
// checksum of data, length, code table and payload.
func Compress(w io.Writer, data []byte) error {
	if int64(len(data)) > int64(^uint32(0)) {
		return fmt.Errorf("huffman: %d bytes exceed frame size", len(data))
	}
	c := bitcache.New(bitcache.DefaultCapacity, bitcache.WithEndianness(endian.Network))
	if err := c.OpenForWriting(bitcache.NewWriterSink(w)); err != nil {
		return err
	}
	code := CodeFromData(data)
	err := writeFrame(c, code, data)
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeFrame(c *bitcache.Cache, code *Code, data []byte) error {
	if err := c.WriteUint32(Magic); err != nil {
		return err
	}
	if err := c.WriteUint8(Version); err != nil {
		return err
	}
	if err := c.WriteUint64(farm.Hash64(data)); err != nil {
		return err
	}
	if err := c.WriteUint32(uint32(len(data))); err != nil {
		return err
	}
	if err := code.WriteTable(c); err != nil {
		return err
	}
	return code.Encode(c, data)
}

// Decompress reads one frame from src and verifies its checksum.
func Decompress(src bitcache.Source) ([]byte, error) {
	c := bitcache.New(bitcache.DefaultCapacity, bitcache.WithEndianness(endian.Network))
	if err := c.OpenForReading(src); err != nil {
		return nil, err
	}
	defer c.Close()

	magic, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: magic %#08x", ErrBadMagic, magic)
	}
	version, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, version)
	}
	sum, err := c.ReadUint64()
	if err != nil {
		return nil, err
	}
	n, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	code, err := ReadTable(c)
	if err != nil {
		return nil, err
	}
	data, err := code.Decode(c, int(n))
	if err != nil {
		return nil, err
	}
	if got := farm.Hash64(data); got != sum {
		return nil, fmt.Errorf("%w: %#016x != %#016x", ErrChecksum, got, sum)
	}
	return data, nil
}
