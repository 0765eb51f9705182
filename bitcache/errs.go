package bitcache

import "errors"

// Status errors. A Cache records the result of its last operation; these
// are recoverable and the cache stays usable after any of them.
var (
	ErrIsAtEnd                   = errors.New("is at end")
	ErrInsufficientAvailableData = errors.New("insufficient available data")
	ErrInsufficientStorage       = errors.New("insufficient storage")
	ErrOversizedString           = errors.New("oversized string")
	ErrInvalidFilename           = errors.New("invalid filename")
	ErrInvalidFileOpenMode       = errors.New("invalid file open mode")
	ErrUnableToOpenFile          = errors.New("unable to open file")
)

// Usage errors, reported instead of corrupting the cache state.
var (
	ErrNotOpen          = errors.New("cache not open")
	ErrAlreadyOpen      = errors.New("cache already open")
	ErrWrongDirection   = errors.New("cache open in the other direction")
	ErrNotByteAligned   = errors.New("cache not on a byte boundary")
	ErrBitCount         = errors.New("bit count out of range")
	ErrValueOutOfRange  = errors.New("value does not fit in bit count")
	ErrTransferTooLarge = errors.New("transfer larger than cache capacity")
	ErrNoChannel        = errors.New("nil byte channel")
)
