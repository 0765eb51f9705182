package bitcache

import "fmt"

func checkBitCount(n int) error {
	if n < 1 || n > 32 {
		return fmt.Errorf("%w: %d", ErrBitCount, n)
	}
	return nil
}

// readBits takes n bits MSB first from the window. The caller has ensured
// they are available.
func (c *Cache) readBits(n int) uint32 {
	var v uint32
	for n > 0 {
		b := c.buf[c.bitIndex>>3]
		off := c.bitIndex & 7
		take := min(8-off, n)
		bits := (b >> (8 - off - take)) & (0xFF >> (8 - take))
		v = v<<take | uint32(bits)
		c.bitIndex += take
		n -= take
	}
	return v
}

// writeBits stores the low n bits of v MSB first. The caller has ensured
// there is room.
func (c *Cache) writeBits(v uint32, n int) {
	for n > 0 {
		i := c.bitIndex >> 3
		off := c.bitIndex & 7
		put := min(8-off, n)
		shift := 8 - off - put
		mask := byte(0xFF>>(8-put)) << shift
		bits := byte(v>>(n-put)) << shift
		c.buf[i] = c.buf[i]&^mask | bits&mask
		c.bitIndex += put
		n -= put
	}
}

func (c *Cache) ReadUnsignedBits(n int) (uint32, error) {
	if err := c.checkReading(); err != nil {
		return 0, c.set(err)
	}
	if err := checkBitCount(n); err != nil {
		return 0, c.set(err)
	}
	if err := c.ensureReadable(n); err != nil {
		return 0, c.set(err)
	}
	return c.readBits(n), c.set(nil)
}

// ReadSignedBits reads an n bit two's complement value and sign extends it.
func (c *Cache) ReadSignedBits(n int) (int32, error) {
	u, err := c.ReadUnsignedBits(n)
	if err != nil {
		return 0, err
	}
	if n < 32 && u&(1<<(n-1)) != 0 {
		u |= ^uint32(0) << n
	}
	return int32(u), nil
}

func (c *Cache) ReadBool() (bool, error) {
	u, err := c.ReadUnsignedBits(1)
	return u == 1, err
}

func (c *Cache) WriteUnsignedBits(v uint32, n int) error {
	if err := c.checkWriting(); err != nil {
		return c.set(err)
	}
	if err := checkBitCount(n); err != nil {
		return c.set(err)
	}
	if n < 32 && v>>n != 0 {
		return c.set(fmt.Errorf("%w: %d in %d bits", ErrValueOutOfRange, v, n))
	}
	if err := c.ensureWritable(n); err != nil {
		return c.set(err)
	}
	c.writeBits(v, n)
	return c.set(nil)
}

// WriteSignedBits writes v as an n bit two's complement value.
func (c *Cache) WriteSignedBits(v int32, n int) error {
	if err := checkBitCount(n); err != nil {
		return c.set(err)
	}
	if n < 32 {
		lo, hi := int32(-1)<<(n-1), int32(1)<<(n-1)-1
		if v < lo || v > hi {
			return c.set(fmt.Errorf("%w: %d in %d bits", ErrValueOutOfRange, v, n))
		}
		return c.WriteUnsignedBits(uint32(v)&(^uint32(0)>>(32-n)), n)
	}
	return c.WriteUnsignedBits(uint32(v), n)
}

func (c *Cache) WriteBool(v bool) error {
	var u uint32
	if v {
		u = 1
	}
	return c.WriteUnsignedBits(u, 1)
}
