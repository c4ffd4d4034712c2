// Package mmfile provides platform-specific helpers for memory-mapping MXF
// files and the temporary spools large byte ranges are materialized into.
package mmfile

import (
	"fmt"
	"os"
)

func noop() error { return nil }

// Spool is a temporary file holding a materialized byte range. It is removed
// from disk on Close.
type Spool struct {
	f       *os.File
	size    int64
	closed  bool
	unmap   func() error
	mapping []byte
}

// NewSpool creates an empty spool in dir (os.TempDir when empty).
func NewSpool(dir string) (*Spool, error) {
	f, err := os.CreateTemp(dir, "mxf-range-*.bin")
	if err != nil {
		return nil, fmt.Errorf("mmfile: create spool: %w", err)
	}
	return &Spool{f: f}, nil
}

// Write appends p to the spool.
func (s *Spool) Write(p []byte) (int, error) {
	if s.mapping != nil {
		return 0, fmt.Errorf("mmfile: write to mapped spool %s", s.f.Name())
	}
	n, err := s.f.Write(p)
	s.size += int64(n)
	return n, err
}

// ReadAt implements io.ReaderAt over the spooled bytes.
func (s *Spool) ReadAt(p []byte, off int64) (int, error) { return s.f.ReadAt(p, off) }

// Size returns the number of bytes written.
func (s *Spool) Size() int64 { return s.size }

// Name returns the spool's path.
func (s *Spool) Name() string { return s.f.Name() }

// Bytes maps the spool read-only. The mapping is cached until Close.
func (s *Spool) Bytes() ([]byte, error) {
	if s.mapping != nil {
		return s.mapping, nil
	}
	if err := s.f.Sync(); err != nil {
		return nil, fmt.Errorf("mmfile: sync spool: %w", err)
	}
	data, unmap, err := MapRange(s.f, 0, s.size)
	if err != nil {
		return nil, err
	}
	s.mapping, s.unmap = data, unmap
	return data, nil
}

// Close unmaps, closes and removes the spool.
func (s *Spool) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var firstErr error
	if s.unmap != nil {
		firstErr = s.unmap()
		s.mapping = nil
	}
	if err := s.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := os.Remove(s.f.Name()); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
