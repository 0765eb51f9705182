// Package bitcache provides a fixed capacity rolling byte buffer with bit
// and byte granularity I/O over an abstract byte channel.
//
// # Overview
//
// A Cache is either closed, open for reading or open for writing. While
// reading it pulls bytes from a Source through RenewBytes; while writing it
// pushes whole bytes to a Sink through FlushBytes. The working window holds
// W bytes plus one overflow byte which keeps the partially filled byte at
// the window boundary addressable.
//
//	c := bitcache.New(4096)
//	buf := &bitcache.Buffer{}
//	if err := c.OpenForWriting(buf); err != nil {
//	    return err
//	}
//	c.WriteUnsignedBits(5, 3)
//	c.WriteBool(true)
//	c.WriteUint32(0xDEADBEEF) // fails: not on a byte boundary
//	c.AlignToByte()
//	c.WriteUint32(0xDEADBEEF)
//	err := c.Close()
//
// # Bit Order
//
// Arbitrary width fields are packed most significant bit first within each
// byte, as a big-endian bitstream. This is fixed and does not follow the
// configured word endianness, which only applies to the byte aligned
// Uint16/32/64, Sint16/32/64 and Float32/64 operations.
//
// # Status
//
// Every operation returns its error and also records it as the cache's
// last-operation status, available through Err. A failed read returns the
// zero value, which must not be used. Status errors (ErrIsAtEnd,
// ErrInsufficientAvailableData, ErrInsufficientStorage, ErrOversizedString)
// leave the cache usable. Usage errors such as ErrNotByteAligned are
// reported without changing the cache state.
//
// # Refill and Flush
//
// When a read needs more bits than the window holds, the unconsumed tail is
// moved to the front of the window and a single RenewBytes call tops the
// window up. If no bits remain the read fails with ErrIsAtEnd, if some but
// not enough remain it fails with ErrInsufficientAvailableData.
//
// When a write would overflow the window, the filled whole-byte prefix is
// handed to FlushBytes and the partially filled last byte moves to the
// front. A short write from the sink is ErrInsufficientStorage. Close
// flushes everything, zero padding the last partial byte.
//
// # Channels
//
// File binds a Cache to a file opened with an fopen style mode. Buffer is
// an in-memory channel, NewReaderSource and NewWriterSink adapt io.Reader
// and io.Writer, and OpenMapped serves a read-only memory mapped file.
//
// # Thread Safety
//
// A Cache is owned by a single goroutine. Use one Cache per goroutine and
// channel.
package bitcache
