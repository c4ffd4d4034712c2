// Package byterange provides random access to the bytes of an MXF file.
//
// A Provider hands out inclusive byte ranges. Small ranges are materialized
// in memory; ranges above the configured threshold stay on disk, either as a
// section of the source file or as a temporary spool, and are only mapped
// into memory when a caller asks for their bytes.
package byterange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxInMemory is the default size above which ranges are not held in
// process memory.
const DefaultMaxInMemory int64 = 64 << 20

// ErrOutOfRange indicates a range outside [0, Size).
var ErrOutOfRange = errors.New("byterange: range out of bounds")

// Provider gives random access to a file's bytes.
type Provider interface {
	// Name identifies the source, for logs and reports.
	Name() string
	// Size returns the total byte length.
	Size() int64
	// ReadRange materializes bytes [start, endInclusive].
	ReadRange(ctx context.Context, start, endInclusive int64) (*Range, error)
	// Close releases the provider. Ranges already returned stay valid until
	// their own Close.
	Close() error
}

// Options tunes range materialization.
type Options struct {
	// MaxInMemory is the largest range read into memory. Zero selects
	// DefaultMaxInMemory; a negative value keeps every range on disk.
	MaxInMemory int64
	// TempDir holds spools for remote ranges. Empty uses os.TempDir.
	TempDir string
}

func (o Options) threshold() int64 {
	if o.MaxInMemory == 0 {
		return DefaultMaxInMemory
	}
	return o.MaxInMemory
}

// Open returns a provider for a local path or an s3://bucket/key URI.
func Open(ctx context.Context, uri string, opts Options, s3opts S3Options) (Provider, error) {
	if strings.HasPrefix(uri, "s3://") {
		return OpenS3(ctx, uri, opts, s3opts)
	}
	return OpenFile(uri, opts)
}

func checkRange(name string, size, start, end int64) error {
	if start < 0 || end < start || end >= size {
		return fmt.Errorf("%s [%d,%d] of %d bytes: %w", name, start, end, size, ErrOutOfRange)
	}
	return nil
}

// Range is a materialized inclusive byte range.
type Range struct {
	Start int64
	End   int64 // inclusive

	data   []byte
	disk   io.ReaderAt           // on-disk source when data is nil
	mapper func() ([]byte, func() error, error)
	unmap  func() error
	closer io.Closer
	closed bool
}

// Len returns the number of bytes in the range.
func (r *Range) Len() int64 { return r.End - r.Start + 1 }

// InMemory reports whether the range was read into process memory.
func (r *Range) InMemory() bool { return r.disk == nil }

// Bytes returns the range contents. On-disk ranges are memory-mapped on the
// first call; the slice is valid until Close.
func (r *Range) Bytes() ([]byte, error) {
	if r.closed {
		return nil, errors.New("byterange: range closed")
	}
	if r.data != nil || r.disk == nil {
		return r.data, nil
	}
	data, unmap, err := r.mapper()
	if err != nil {
		return nil, err
	}
	r.data, r.unmap = data, unmap
	return data, nil
}

// ReaderAt reads the range without mapping it. Offsets are relative to Start.
func (r *Range) ReaderAt() io.ReaderAt {
	if r.disk != nil {
		return r.disk
	}
	return bytesReaderAt(r.data)
}

// Close releases mappings and temporary files held by the range.
func (r *Range) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var firstErr error
	if r.unmap != nil {
		firstErr = r.unmap()
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.data = nil
	return firstErr
}

type bytesReaderAt []byte

func (b bytesReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrOutOfRange
	}
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
