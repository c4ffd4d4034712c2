package byterange

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/internal/mmfile"
)

// File serves ranges of a local file.
type File struct {
	f    *os.File
	size int64
	opts Options
}

// OpenFile opens path for ranged reads.
func OpenFile(path string, opts Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("byterange: %s is a directory", path)
	}
	return &File{f: f, size: info.Size(), opts: opts}, nil
}

func (p *File) Name() string { return p.f.Name() }

func (p *File) Size() int64 { return p.size }

// ReadRange reads small ranges into memory. Larger ranges are returned as a
// section of the file and mapped on demand.
func (p *File) ReadRange(ctx context.Context, start, end int64) (*Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkRange(p.Name(), p.size, start, end); err != nil {
		return nil, err
	}
	n := end - start + 1
	if n > p.opts.threshold() {
		metrics.BytesRead.WithLabelValues("file", "disk").Add(float64(n))
		return &Range{
			Start: start,
			End:   end,
			disk:  io.NewSectionReader(p.f, start, n),
			mapper: func() ([]byte, func() error, error) {
				return mmfile.MapRange(p.f, start, n)
			},
		}, nil
	}
	data := make([]byte, n)
	if read, err := p.f.ReadAt(data, start); int64(read) != n {
		return nil, fmt.Errorf("read %s [%d,%d]: short read of %d bytes: %w", p.Name(), start, end, read, err)
	}
	metrics.BytesRead.WithLabelValues("file", "memory").Add(float64(n))
	return &Range{Start: start, End: end, data: data}, nil
}

func (p *File) Close() error { return p.f.Close() }
