package bitcache

import (
	"errors"
	"io"
)

// Source supplies bytes to a cache open for reading. RenewBytes fills as
// much of p as it can and returns the number of bytes read; io.EOF marks an
// exhausted source.
type Source interface {
	RenewBytes(p []byte) (int, error)
}

// Sink accepts bytes from a cache open for writing and returns how many it
// stored.
type Sink interface {
	FlushBytes(p []byte) (int, error)
}

type readerSource struct {
	r io.Reader
}

func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) RenewBytes(p []byte) (int, error) {
	return readFull(s.r, p)
}

func readFull(r io.Reader, p []byte) (int, error) {
	n, err := io.ReadFull(r, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	return n, err
}

type writerSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) FlushBytes(p []byte) (int, error) {
	return s.w.Write(p)
}

// Buffer is an in-memory Source and Sink. Flushed bytes are appended and
// renewed bytes are consumed from the front. A positive Limit caps the
// total number of bytes the buffer accepts.
type Buffer struct {
	data  []byte
	off   int
	Limit int
}

func NewBuffer(d []byte) *Buffer {
	return &Buffer{data: d}
}

func (b *Buffer) RenewBytes(p []byte) (int, error) {
	if b.off >= len(b.data) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += n
	return n, nil
}

func (b *Buffer) FlushBytes(p []byte) (int, error) {
	n := len(p)
	if b.Limit > 0 && len(b.data)+n > b.Limit {
		n = max(0, b.Limit-len(b.data))
	}
	b.data = append(b.data, p[:n]...)
	return n, nil
}

// Bytes returns the unread bytes.
func (b *Buffer) Bytes() []byte {
	return b.data[b.off:]
}

func (b *Buffer) Len() int {
	return len(b.data) - b.off
}

// Rewind makes every byte readable again.
func (b *Buffer) Rewind() {
	b.off = 0
}

func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.off = 0
}
