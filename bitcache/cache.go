package bitcache

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/xrbengine/xrb/debug"
	"github.com/xrbengine/xrb/endian"
)

const (
	// MinCapacity is the smallest working window, wide enough for a 64 bit
	// word.
	MinCapacity = 8

	DefaultCapacity = 4096
)

type mode int

const (
	closed mode = iota
	reading
	writing
)

func (m mode) String() string {
	switch m {
	case reading:
		return "reading"
	case writing:
		return "writing"
	default:
		return "closed"
	}
}

type Cache struct {
	// buf holds capacity+1 bytes, the last one absorbing a partial byte
	// sitting exactly on the window boundary.
	buf      []byte
	capacity int

	// bitIndex is the number of bits consumed (reading) or produced
	// (writing) from the start of buf.
	bitIndex int
	// available is the number of valid bytes in buf while reading.
	available int

	mode  mode
	order endian.Endianness
	src   Source
	dst   Sink

	err    error
	logger *slog.Logger
}

type Option func(*Cache)

// WithEndianness sets the wire byte order of word operations. The default
// is endian.Network.
func WithEndianness(e endian.Endianness) Option {
	return func(c *Cache) { c.order = e }
}

// WithLogger sets the logger receiving refill and flush traces when
// XRB_DEBUG_BITCACHE is set. If nil, the debug logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New creates a closed cache with a working window of capacity bytes. It
// panics if capacity is below MinCapacity.
func New(capacity int, opts ...Option) *Cache {
	if capacity < MinCapacity {
		panic(fmt.Sprintf("bitcache: capacity %d below minimum %d", capacity, MinCapacity))
	}
	c := &Cache{
		buf:      make([]byte, capacity+1),
		capacity: capacity,
		order:    endian.Network,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Capacity() int                 { return c.capacity }
func (c *Cache) Endianness() endian.Endianness { return c.order }
func (c *Cache) IsOpen() bool                  { return c.mode != closed }
func (c *Cache) IsOpenForReading() bool        { return c.mode == reading }
func (c *Cache) IsOpenForWriting() bool        { return c.mode == writing }

// Err returns the status of the last operation.
func (c *Cache) Err() error {
	return c.err
}

// IsByteAligned reports whether the cursor sits on a byte boundary.
func (c *Cache) IsByteAligned() bool {
	return c.bitIndex&7 == 0
}

func (c *Cache) set(err error) error {
	c.err = err
	return err
}

func (c *Cache) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return debug.Logger()
}

func (c *Cache) OpenForReading(src Source) error {
	if c.mode != closed {
		return c.set(fmt.Errorf("%w for %s", ErrAlreadyOpen, c.mode))
	}
	if src == nil {
		return c.set(ErrNoChannel)
	}
	c.mode = reading
	c.src = src
	c.bitIndex = 0
	c.available = 0
	return c.set(nil)
}

func (c *Cache) OpenForWriting(dst Sink) error {
	if c.mode != closed {
		return c.set(fmt.Errorf("%w for %s", ErrAlreadyOpen, c.mode))
	}
	if dst == nil {
		return c.set(ErrNoChannel)
	}
	c.mode = writing
	c.dst = dst
	c.bitIndex = 0
	c.available = 0
	clear(c.buf)
	return c.set(nil)
}

// Close closes the cache. A cache open for writing first flushes all
// pending bits, padding the last byte with zeros. The cache is closed even
// when the final flush fails.
func (c *Cache) Close() error {
	var err error
	switch c.mode {
	case closed:
		return c.set(ErrNotOpen)
	case writing:
		err = c.flush(true)
	}
	c.mode = closed
	c.src = nil
	c.dst = nil
	c.bitIndex = 0
	c.available = 0
	return c.set(err)
}

// Flush hands every complete byte written so far to the sink. A trailing
// partial byte stays in the cache.
func (c *Cache) Flush() error {
	if err := c.checkWriting(); err != nil {
		return c.set(err)
	}
	return c.set(c.flush(false))
}

// IsAtEnd reports whether no unread bits remain. It may refill the cache
// but does not change the recorded status.
func (c *Cache) IsAtEnd() bool {
	if c.mode != reading {
		return false
	}
	return errors.Is(c.ensureReadable(1), ErrIsAtEnd)
}

// HasFewerThan8BitsLeft reports whether less than a byte remains unread.
// It may refill the cache but does not change the recorded status.
func (c *Cache) HasFewerThan8BitsLeft() bool {
	if c.mode != reading {
		return false
	}
	return c.ensureReadable(8) != nil
}

// AlignToByte skips the rest of the current byte while reading, or pads it
// with zero bits while writing.
func (c *Cache) AlignToByte() error {
	if c.mode == closed {
		return c.set(ErrNotOpen)
	}
	c.bitIndex = (c.bitIndex + 7) &^ 7
	return c.set(nil)
}

func (c *Cache) checkReading() error {
	switch c.mode {
	case closed:
		return ErrNotOpen
	case writing:
		return fmt.Errorf("%w: open for writing", ErrWrongDirection)
	}
	return nil
}

func (c *Cache) checkWriting() error {
	switch c.mode {
	case closed:
		return ErrNotOpen
	case reading:
		return fmt.Errorf("%w: open for reading", ErrWrongDirection)
	}
	return nil
}

func (c *Cache) checkAligned() error {
	if c.bitIndex&7 != 0 {
		return fmt.Errorf("%w (bit %d)", ErrNotByteAligned, c.bitIndex&7)
	}
	return nil
}

func (c *Cache) unreadBits() int {
	return c.available*8 - c.bitIndex
}

// ensureReadable makes sure nbits unread bits are in the window, refilling
// from the source at most once.
func (c *Cache) ensureReadable(nbits int) error {
	if nbits <= c.unreadBits() {
		return nil
	}
	if err := c.renew(); err != nil {
		return fmt.Errorf("%w: %w", ErrInsufficientAvailableData, err)
	}
	left := c.unreadBits()
	switch {
	case left == 0:
		return ErrIsAtEnd
	case left < nbits:
		return fmt.Errorf("%w: need %d bits, have %d", ErrInsufficientAvailableData, nbits, left)
	}
	return nil
}

func (c *Cache) renew() error {
	if start := c.bitIndex >> 3; start > 0 {
		c.available = copy(c.buf, c.buf[start:c.available])
		c.bitIndex -= start * 8
	}
	if c.available >= c.capacity {
		return nil
	}
	n, err := c.src.RenewBytes(c.buf[c.available:c.capacity])
	if debug.BitCache() {
		c.log().Debug("bitcache renew", "requested", c.capacity-c.available, "got", n, "err", err)
	}
	c.available += n
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ensureWritable makes room for nbits more bits, flushing if needed.
func (c *Cache) ensureWritable(nbits int) error {
	if c.bitIndex+nbits <= c.capacity*8 {
		return nil
	}
	return c.flush(false)
}

func (c *Cache) flush(final bool) error {
	whole := c.bitIndex >> 3
	n := whole
	if final && c.bitIndex&7 != 0 {
		n++
	}
	var err error
	if n > 0 {
		var written int
		written, err = c.dst.FlushBytes(c.buf[:n])
		if debug.BitCache() {
			c.log().Debug("bitcache flush", "requested", n, "written", written, "err", err)
		}
		switch {
		case err != nil:
			err = fmt.Errorf("%w: %w", ErrInsufficientStorage, err)
		case written < n:
			err = fmt.Errorf("%w: flushed %d of %d bytes", ErrInsufficientStorage, written, n)
		}
	}
	if final {
		clear(c.buf)
		c.bitIndex = 0
		return err
	}
	c.buf[0] = c.buf[whole]
	clear(c.buf[1:])
	c.bitIndex &= 7
	return err
}
