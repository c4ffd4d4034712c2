package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// KLVHeader is the decoded key and length of a KLV triplet.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------------
//	 0x00    16   Key (SMPTE UL)
//	 0x10   1-9   BER length: < 0x80 short form, 0x8n + n bytes long form
//	 ....     L   Value
type KLVHeader struct {
	Key         types.UL
	Length      uint64 // value length
	HeaderSize  int    // key + length field
	LengthBytes int    // size of the length field
}

// TotalSize returns header + value size, or false on overflow.
func (h KLVHeader) TotalSize() (int64, bool) {
	if h.Length > uint64(1<<62) {
		return 0, false
	}
	return int64(h.HeaderSize) + int64(h.Length), true
}

// DecodeBERLength decodes a BER length at the start of b and returns the
// value and the number of bytes consumed.
func DecodeBERLength(b []byte) (uint64, int, error) {
	if len(b) < 1 {
		return 0, 0, fmt.Errorf("ber length: %w", ErrTruncated)
	}
	first := b[0]
	if first < 0x80 {
		return uint64(first), 1, nil
	}
	n := int(first & 0x7f)
	if n == 0 || n > 8 {
		return 0, 0, fmt.Errorf("ber length: first byte 0x%02x: %w", first, ErrBadLength)
	}
	if len(b) < 1+n {
		return 0, 0, fmt.Errorf("ber length: %w", ErrTruncated)
	}
	v, _ := buf.UintBE(b[1 : 1+n])
	return v, 1 + n, nil
}

// EncodeBERLength encodes v as a long-form BER length of the given size
// (2..9 bytes including the 0x8n prefix), or as short form when size is 1.
func EncodeBERLength(v uint64, size int) ([]byte, error) {
	if size == 1 {
		if v >= 0x80 {
			return nil, fmt.Errorf("ber length %d does not fit short form: %w", v, ErrBadLength)
		}
		return []byte{byte(v)}, nil
	}
	n := size - 1
	if n < 1 || n > 8 || (n < 8 && v>>(8*uint(n)) != 0) {
		return nil, fmt.Errorf("ber length %d in %d bytes: %w", v, size, ErrBadLength)
	}
	out := make([]byte, size)
	out[0] = 0x80 | byte(n)
	for i := n; i >= 1; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out, nil
}

// ReadKLVHeader decodes a KLV header at the start of b.
func ReadKLVHeader(b []byte) (KLVHeader, error) {
	if len(b) < KeySize+1 {
		return KLVHeader{}, fmt.Errorf("klv header: %w", ErrTruncated)
	}
	key, _ := types.ULFromBytes(b)
	length, n, err := DecodeBERLength(b[KeySize:])
	if err != nil {
		return KLVHeader{}, fmt.Errorf("klv %s: %w", key, err)
	}
	return KLVHeader{Key: key, Length: length, HeaderSize: KeySize + n, LengthBytes: n}, nil
}

// ReadKLVHeaderAt reads and decodes a KLV header at off without reading the
// value. limit is the exclusive end of the readable region.
func ReadKLVHeaderAt(r io.ReaderAt, off, limit int64) (KLVHeader, error) {
	if off < 0 || off >= limit {
		return KLVHeader{}, fmt.Errorf("klv header at %d: %w", off, ErrTruncated)
	}
	n := int64(MaxKLVHeaderSize)
	if off+n > limit {
		n = limit - off
	}
	hdr := make([]byte, n)
	read, err := r.ReadAt(hdr, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return KLVHeader{}, fmt.Errorf("klv header at %d: %w", off, err)
	}
	return ReadKLVHeader(hdr[:read])
}

// KLV is a decoded triplet whose value aliases the source buffer.
type KLV struct {
	KLVHeader
	Value  []byte
	Offset int // offset of the key within the scanned buffer
}

// KLVIterator walks consecutive KLV triplets in a buffer.
type KLVIterator struct {
	b    []byte
	next int
	done bool
}

// NewKLVIterator returns an iterator positioned at the start of b.
func NewKLVIterator(b []byte) *KLVIterator {
	return &KLVIterator{b: b}
}

// Offset returns the offset of the next triplet.
func (it *KLVIterator) Offset() int { return it.next }

// Next returns the next triplet or io.EOF. A value extending past the end of
// the buffer is reported as ErrTruncated.
func (it *KLVIterator) Next() (KLV, error) {
	if it.done || it.next >= len(it.b) {
		it.done = true
		return KLV{}, io.EOF
	}
	h, err := ReadKLVHeader(it.b[it.next:])
	if err != nil {
		it.done = true
		return KLV{}, err
	}
	total, ok := h.TotalSize()
	if !ok {
		it.done = true
		return KLV{}, fmt.Errorf("klv %s length %d: %w", h.Key, h.Length, ErrBadLength)
	}
	n, ok := buf.Int64ToInt(total)
	if !ok {
		it.done = true
		return KLV{}, fmt.Errorf("klv %s length %d: %w", h.Key, h.Length, ErrBadLength)
	}
	raw, ok := buf.Slice(it.b, it.next, n)
	if !ok {
		it.done = true
		return KLV{}, fmt.Errorf("klv %s at %d needs %d bytes, %d available: %w",
			h.Key, it.next, n, len(it.b)-it.next, ErrTruncated)
	}
	k := KLV{KLVHeader: h, Value: raw[h.HeaderSize:], Offset: it.next}
	it.next += n
	return k, nil
}
