package bitcache

import (
	"errors"
	"fmt"
	"strings"
)

// ReadBytes fills p from the cache. p may not be longer than the cache
// capacity; larger transfers must be chunked by the caller.
func (c *Cache) ReadBytes(p []byte) error {
	if len(p) > c.capacity {
		return c.set(fmt.Errorf("%w: %d > %d", ErrTransferTooLarge, len(p), c.capacity))
	}
	b, err := c.readAligned(len(p))
	if err != nil {
		return err
	}
	copy(p, b)
	return nil
}

// WriteBytes writes p to the cache. p may not be longer than the cache
// capacity.
func (c *Cache) WriteBytes(p []byte) error {
	if len(p) > c.capacity {
		return c.set(fmt.Errorf("%w: %d > %d", ErrTransferTooLarge, len(p), c.capacity))
	}
	return c.writeAligned(p)
}

// ReadBufferString reads a NUL terminated string destined for a buffer of
// bufLen bytes, terminator included. If no terminator shows up within
// bufLen-1 characters it returns the characters that fit together with
// ErrOversizedString, having consumed one character past them.
func (c *Cache) ReadBufferString(bufLen int) (string, error) {
	if err := c.checkReading(); err != nil {
		return "", c.set(err)
	}
	if err := c.checkAligned(); err != nil {
		return "", c.set(err)
	}
	if bufLen < 1 {
		return "", c.set(fmt.Errorf("%w: no room for terminator", ErrOversizedString))
	}
	var sb strings.Builder
	for {
		if err := c.ensureReadable(8); err != nil {
			if errors.Is(err, ErrInsufficientAvailableData) {
				return "", c.set(err)
			}
			return "", c.set(fmt.Errorf("%w: no terminator before end", ErrInsufficientAvailableData))
		}
		ch := c.buf[c.bitIndex>>3]
		c.bitIndex += 8
		if ch == 0 {
			return sb.String(), c.set(nil)
		}
		if sb.Len() == bufLen-1 {
			return sb.String(), c.set(fmt.Errorf("%w: longer than %d", ErrOversizedString, bufLen-1))
		}
		sb.WriteByte(ch)
	}
}

// WriteBufferString writes s followed by a NUL terminator. Only the part of
// s before its first NUL is written.
func (c *Cache) WriteBufferString(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if err := c.writeChunked(s); err != nil {
		return err
	}
	return c.WriteUint8(0)
}

// ReadString reads a string prefixed by its uint32 length. Strings longer
// than limit fail with ErrOversizedString before their bytes are consumed.
func (c *Cache) ReadString(limit int) (string, error) {
	n, err := c.ReadUint32()
	if err != nil {
		return "", err
	}
	if int64(n) > int64(limit) {
		return "", c.set(fmt.Errorf("%w: %d > %d", ErrOversizedString, n, limit))
	}
	var sb strings.Builder
	sb.Grow(int(n))
	left := int(n)
	for left > 0 {
		chunk := min(left, c.capacity)
		b, err := c.readAligned(chunk)
		if err != nil {
			return "", err
		}
		sb.Write(b)
		left -= chunk
	}
	return sb.String(), c.set(nil)
}

// WriteString writes s prefixed by its uint32 length.
func (c *Cache) WriteString(s string) error {
	if int64(len(s)) > int64(^uint32(0)) {
		return c.set(fmt.Errorf("%w: %d bytes", ErrOversizedString, len(s)))
	}
	if err := c.WriteUint32(uint32(len(s))); err != nil {
		return err
	}
	return c.writeChunked(s)
}

func (c *Cache) writeChunked(s string) error {
	if err := c.checkWriting(); err != nil {
		return c.set(err)
	}
	for len(s) > 0 {
		chunk := min(len(s), c.capacity)
		if err := c.writeAligned([]byte(s[:chunk])); err != nil {
			return err
		}
		s = s[chunk:]
	}
	return c.set(nil)
}
