//go:build !unix

package mmfile

import (
	"fmt"
	"io"
	"os"
)

// MapRange reads the range into memory when mmap is not available.
func MapRange(f *os.File, off, length int64) ([]byte, func() error, error) {
	if off < 0 || length < 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid range off=%d len=%d", off, length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(io.NewSectionReader(f, off, length), data); err != nil {
		return nil, nil, fmt.Errorf("mmfile: read %s [%d,+%d): %w", f.Name(), off, length, err)
	}
	return data, noop, nil
}
