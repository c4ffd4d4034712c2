package byterange

import (
	"context"

	"github.com/Netflix/photon-sub001/internal/metrics"
)

// Bytes serves ranges from an in-memory buffer. Ranges alias the buffer.
type Bytes struct {
	name string
	b    []byte
}

// NewBytes wraps b.
func NewBytes(name string, b []byte) *Bytes { return &Bytes{name: name, b: b} }

func (m *Bytes) Name() string { return m.name }

func (m *Bytes) Size() int64 { return int64(len(m.b)) }

func (m *Bytes) ReadRange(ctx context.Context, start, end int64) (*Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkRange(m.name, m.Size(), start, end); err != nil {
		return nil, err
	}
	metrics.BytesRead.WithLabelValues("bytes", "memory").Add(float64(end - start + 1))
	return &Range{Start: start, End: end, data: m.b[start : end+1]}, nil
}

func (m *Bytes) Close() error { return nil }
