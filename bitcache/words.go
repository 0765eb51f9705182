package bitcache

import (
	"encoding/binary"
	"math"

	"github.com/xrbengine/xrb/endian"
)

// readAligned returns the next n bytes of the window. The slice is only
// valid until the next operation.
func (c *Cache) readAligned(n int) ([]byte, error) {
	if err := c.checkReading(); err != nil {
		return nil, c.set(err)
	}
	if err := c.checkAligned(); err != nil {
		return nil, c.set(err)
	}
	if err := c.ensureReadable(n * 8); err != nil {
		return nil, c.set(err)
	}
	i := c.bitIndex >> 3
	c.bitIndex += n * 8
	return c.buf[i : i+n], c.set(nil)
}

func (c *Cache) writeAligned(b []byte) error {
	if err := c.checkWriting(); err != nil {
		return c.set(err)
	}
	if err := c.checkAligned(); err != nil {
		return c.set(err)
	}
	if err := c.ensureWritable(len(b) * 8); err != nil {
		return c.set(err)
	}
	i := c.bitIndex >> 3
	copy(c.buf[i:], b)
	c.bitIndex += len(b) * 8
	return c.set(nil)
}

func (c *Cache) ReadUint8() (uint8, error) {
	b, err := c.readAligned(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cache) ReadUint16() (uint16, error) {
	b, err := c.readAligned(2)
	if err != nil {
		return 0, err
	}
	return endian.ConvertGivenToMachine16(binary.NativeEndian.Uint16(b), c.order), nil
}

func (c *Cache) ReadUint32() (uint32, error) {
	b, err := c.readAligned(4)
	if err != nil {
		return 0, err
	}
	return endian.ConvertGivenToMachine32(binary.NativeEndian.Uint32(b), c.order), nil
}

func (c *Cache) ReadUint64() (uint64, error) {
	b, err := c.readAligned(8)
	if err != nil {
		return 0, err
	}
	return endian.ConvertGivenToMachine64(binary.NativeEndian.Uint64(b), c.order), nil
}

func (c *Cache) ReadSint8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

func (c *Cache) ReadSint16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

func (c *Cache) ReadSint32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Cache) ReadSint64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

func (c *Cache) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

func (c *Cache) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}

func (c *Cache) WriteUint8(v uint8) error {
	return c.writeAligned([]byte{v})
}

func (c *Cache) WriteUint16(v uint16) error {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], endian.ConvertMachineToGiven16(v, c.order))
	return c.writeAligned(b[:])
}

func (c *Cache) WriteUint32(v uint32) error {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], endian.ConvertMachineToGiven32(v, c.order))
	return c.writeAligned(b[:])
}

func (c *Cache) WriteUint64(v uint64) error {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], endian.ConvertMachineToGiven64(v, c.order))
	return c.writeAligned(b[:])
}

func (c *Cache) WriteSint8(v int8) error   { return c.WriteUint8(uint8(v)) }
func (c *Cache) WriteSint16(v int16) error { return c.WriteUint16(uint16(v)) }
func (c *Cache) WriteSint32(v int32) error { return c.WriteUint32(uint32(v)) }
func (c *Cache) WriteSint64(v int64) error { return c.WriteUint64(uint64(v)) }

func (c *Cache) WriteFloat32(v float32) error {
	return c.WriteUint32(math.Float32bits(v))
}

func (c *Cache) WriteFloat64(v float64) error {
	return c.WriteUint64(math.Float64bits(v))
}
