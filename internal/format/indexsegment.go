package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Index table segment local tags. These are static and need no primer.
const (
	TagInstanceUID        uint16 = 0x3C0A
	TagIndexEditRate      uint16 = 0x3F0B
	TagIndexStartPosition uint16 = 0x3F0C
	TagIndexDuration      uint16 = 0x3F0D
	TagEditUnitByteCount  uint16 = 0x3F05
	TagIndexSID           uint16 = 0x3F06
	TagBodySID            uint16 = 0x3F07
	TagSliceCount         uint16 = 0x3F08
	TagPosTableCount      uint16 = 0x3F0E
	TagDeltaEntryArray    uint16 = 0x3F09
	TagIndexEntryArray    uint16 = 0x3F0A
	TagExtStartOffset     uint16 = 0x3F0F
	TagVBEByteCount       uint16 = 0x3F10
)

// IndexTableSegment holds the header fields of an index table segment.
// Entry arrays are counted, not decoded.
type IndexTableSegment struct {
	InstanceUID        types.UID      `json:"instance_uid"`
	EditRate           types.Rational `json:"edit_rate"`
	IndexStartPosition int64          `json:"index_start_position"`
	IndexDuration      int64          `json:"index_duration"`
	EditUnitByteCount  uint32         `json:"edit_unit_byte_count"`
	IndexSID           uint32         `json:"index_sid"`
	BodySID            uint32         `json:"body_sid"`
	SliceCount         uint8          `json:"slice_count"`
	PosTableCount      uint8          `json:"pos_table_count"`
	DeltaEntryCount    uint32         `json:"delta_entry_count"`
	IndexEntryCount    uint32         `json:"index_entry_count"`
	IndexEntrySize     uint32         `json:"index_entry_size"`
}

// ParseIndexTableSegment decodes an index table segment value. kind comes
// from the set key designator.
func ParseIndexTableSegment(value []byte, kind LengthKind) (IndexTableSegment, error) {
	var seg IndexTableSegment
	it, err := NewItemIterator(value, kind)
	if err != nil {
		return seg, err
	}
	for {
		item, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return seg, fmt.Errorf("index table segment: %w", err)
		}
		v := item.Value
		switch item.Tag {
		case TagInstanceUID:
			err = fixed(v, 16, func() { copy(seg.InstanceUID[:], v) })
		case TagIndexEditRate:
			err = fixed(v, RationalSize, func() { seg.EditRate = DecodeRational(v) })
		case TagIndexStartPosition:
			err = fixed(v, 8, func() { seg.IndexStartPosition = buf.I64BE(v) })
		case TagIndexDuration:
			err = fixed(v, 8, func() { seg.IndexDuration = buf.I64BE(v) })
		case TagEditUnitByteCount:
			err = fixed(v, 4, func() { seg.EditUnitByteCount = buf.U32BE(v) })
		case TagIndexSID:
			err = fixed(v, 4, func() { seg.IndexSID = buf.U32BE(v) })
		case TagBodySID:
			err = fixed(v, 4, func() { seg.BodySID = buf.U32BE(v) })
		case TagSliceCount:
			err = fixed(v, 1, func() { seg.SliceCount = v[0] })
		case TagPosTableCount:
			err = fixed(v, 1, func() { seg.PosTableCount = v[0] })
		case TagDeltaEntryArray:
			var h BatchHeader
			h, _, err = ReadBatch(v)
			seg.DeltaEntryCount = h.Count
		case TagIndexEntryArray:
			var h BatchHeader
			h, _, err = ReadBatch(v)
			seg.IndexEntryCount, seg.IndexEntrySize = h.Count, h.ElemSize
		}
		if err != nil {
			return seg, fmt.Errorf("index table segment tag %04x: %w", item.Tag, err)
		}
	}
	return seg, nil
}

// DecodeRational decodes two big-endian int32 values. b must hold 8 bytes.
func DecodeRational(b []byte) types.Rational {
	return types.Rational{Numerator: buf.I32BE(b), Denominator: buf.I32BE(b[4:])}
}

func fixed(v []byte, size int, set func()) error {
	if len(v) != size {
		return fmt.Errorf("value of %d bytes, want %d: %w", len(v), size, ErrSizeMismatch)
	}
	set()
	return nil
}
