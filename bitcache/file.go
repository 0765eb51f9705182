package bitcache

import (
	"fmt"
	"os"
)

// File is a Cache bound to a file on disk. The file is its Source or Sink
// depending on the open mode. Open and Close are its only transitions:
// OpenForReading and OpenForWriting fail on a File.
type File struct {
	*Cache
	f    *os.File
	path string
}

func NewFile(capacity int, opts ...Option) *File {
	return &File{Cache: New(capacity, opts...)}
}

type openMode struct {
	op     byte // 'r', 'w' or 'a'
	binary bool
}

// parseMode validates an fopen style mode: exactly one of r, w, a and
// exactly one of b, t.
func parseMode(m string) (openMode, error) {
	var res openMode
	nOp, nKind := 0, 0
	for i := 0; i < len(m); i++ {
		switch c := m[i]; c {
		case 'r', 'w', 'a':
			res.op = c
			nOp++
		case 'b':
			res.binary = true
			nKind++
		case 't':
			nKind++
		default:
			return res, fmt.Errorf("%w: %q", ErrInvalidFileOpenMode, m)
		}
	}
	if nOp != 1 || nKind != 1 {
		return res, fmt.Errorf("%w: %q", ErrInvalidFileOpenMode, m)
	}
	return res, nil
}

// Open opens path with an fopen style mode and opens the cache in the
// matching direction. Text and binary modes behave the same.
func (f *File) Open(path, mode string) error {
	if f.f != nil {
		return f.set(fmt.Errorf("%w: %s", ErrAlreadyOpen, f.path))
	}
	if path == "" {
		return f.set(ErrInvalidFilename)
	}
	m, err := parseMode(mode)
	if err != nil {
		return f.set(err)
	}
	var flag int
	switch m.op {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	osf, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return f.set(fmt.Errorf("%w: %w", ErrUnableToOpenFile, err))
	}
	f.f = osf
	f.path = path
	if m.op == 'r' {
		err = f.Cache.OpenForReading(f)
	} else {
		err = f.Cache.OpenForWriting(f)
	}
	if err != nil {
		osf.Close()
		f.f = nil
		f.path = ""
	}
	return err
}

// OpenForReading refuses to rebind the cache: a File reads from its own
// file, opened with Open.
func (f *File) OpenForReading(Source) error {
	return f.rebind()
}

// OpenForWriting refuses to rebind the cache, see OpenForReading.
func (f *File) OpenForWriting(Sink) error {
	return f.rebind()
}

func (f *File) rebind() error {
	if f.f != nil {
		return f.set(fmt.Errorf("%w: %s", ErrAlreadyOpen, f.path))
	}
	return f.set(fmt.Errorf("%w: use Open to bind a file", ErrInvalidFileOpenMode))
}

func (f *File) Path() string {
	return f.path
}

// Close closes the cache, flushing pending output, then the file.
func (f *File) Close() error {
	if f.f == nil {
		return f.set(ErrNotOpen)
	}
	err := f.Cache.Close()
	cerr := f.f.Close()
	f.f = nil
	f.path = ""
	if err != nil {
		return err
	}
	return f.set(cerr)
}

func (f *File) RenewBytes(p []byte) (int, error) {
	return readFull(f.f, p)
}

func (f *File) FlushBytes(p []byte) (int, error) {
	return f.f.Write(p)
}
