//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapRange maps length bytes of f starting at off read-only. The mapping
// outlives f; call the returned cleanup to unmap.
func MapRange(f *os.File, off, length int64) ([]byte, func() error, error) {
	if off < 0 || length < 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid range off=%d len=%d", off, length)
	}
	if length == 0 {
		return []byte{}, noop, nil
	}
	page := int64(unix.Getpagesize())
	aligned := off - off%page
	delta := off - aligned
	total := length + delta
	if total > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: range too large to map (%d bytes)", length)
	}
	data, err := unix.Mmap(int(f.Fd()), aligned, int(total), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: mmap %s [%d,+%d): %w", f.Name(), off, length, err)
	}
	unmapped := false
	cleanup := func() error {
		if unmapped {
			return nil
		}
		unmapped = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return data[delta:], cleanup, nil
}
