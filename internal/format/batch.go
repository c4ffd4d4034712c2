package format

import (
	"fmt"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// BatchHeader is the count/element-size prefix of MXF batches and arrays.
type BatchHeader struct {
	Count    uint32
	ElemSize uint32
}

// ReadBatch validates a batch value and returns its header and element
// payload. The payload must hold exactly Count*ElemSize bytes.
func ReadBatch(b []byte) (BatchHeader, []byte, error) {
	if len(b) < BatchHeaderSize {
		return BatchHeader{}, nil, fmt.Errorf("batch header: %w", ErrTruncated)
	}
	h := BatchHeader{Count: buf.U32BE(b[0:4]), ElemSize: buf.U32BE(b[4:8])}
	payload := b[BatchHeaderSize:]
	if h.Count == 0 {
		if len(payload) != 0 {
			return h, nil, fmt.Errorf("empty batch carries %d bytes: %w", len(payload), ErrBadBatch)
		}
		return h, nil, nil
	}
	want, ok := buf.MulOverflowSafe(int(h.Count), int(h.ElemSize))
	if !ok || want != len(payload) {
		return h, nil, fmt.Errorf("batch %d x %d needs %d bytes, have %d: %w",
			h.Count, h.ElemSize, want, len(payload), ErrBadBatch)
	}
	return h, payload, nil
}

// ReadBatchFixed is ReadBatch with a required element size.
func ReadBatchFixed(b []byte, elemSize int) (BatchHeader, []byte, error) {
	h, payload, err := ReadBatch(b)
	if err != nil {
		return h, nil, err
	}
	if h.Count > 0 && int(h.ElemSize) != elemSize {
		return h, nil, fmt.Errorf("batch element size %d, want %d: %w", h.ElemSize, elemSize, ErrBadBatch)
	}
	return h, payload, nil
}

// ReadUIDBatch decodes a batch of 16-byte instance UIDs (strong or weak refs).
func ReadUIDBatch(b []byte) ([]types.UID, error) {
	h, payload, err := ReadBatchFixed(b, 16)
	if err != nil {
		return nil, err
	}
	out := make([]types.UID, h.Count)
	for i := range out {
		copy(out[i][:], payload[i*16:])
	}
	return out, nil
}

// ReadULBatch decodes a batch of ULs.
func ReadULBatch(b []byte) ([]types.UL, error) {
	h, payload, err := ReadBatchFixed(b, types.ULSize)
	if err != nil {
		return nil, err
	}
	out := make([]types.UL, h.Count)
	for i := range out {
		copy(out[i][:], payload[i*types.ULSize:])
	}
	return out, nil
}

// ReadU32Batch decodes a batch of big-endian uint32 values.
func ReadU32Batch(b []byte) ([]uint32, error) {
	h, payload, err := ReadBatchFixed(b, 4)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, h.Count)
	for i := range out {
		out[i] = buf.U32BE(payload[i*4:])
	}
	return out, nil
}

// AppendBatch appends a batch header and elements to dst.
func AppendBatch(dst []byte, elemSize int, elems ...[]byte) []byte {
	var hdr [BatchHeaderSize]byte
	putU32(hdr[0:4], uint32(len(elems)))
	putU32(hdr[4:8], uint32(elemSize))
	dst = append(dst, hdr[:]...)
	for _, e := range elems {
		dst = append(dst, e...)
	}
	return dst
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
