package bitcache

import (
	"fmt"
	"io"
)

// Mapped is a read-only Source over a memory mapped file.
type Mapped struct {
	data    []byte
	off     int
	release func() error
}

func OpenMapped(path string) (*Mapped, error) {
	if path == "" {
		return nil, ErrInvalidFilename
	}
	data, release, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToOpenFile, err)
	}
	return &Mapped{data: data, release: release}, nil
}

func (m *Mapped) RenewBytes(p []byte) (int, error) {
	if m.off >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.off:])
	m.off += n
	return n, nil
}

// Len returns the size of the mapped file.
func (m *Mapped) Len() int {
	return len(m.data)
}

func (m *Mapped) Close() error {
	if m.release == nil {
		return nil
	}
	err := m.release()
	m.release = nil
	m.data = nil
	return err
}
