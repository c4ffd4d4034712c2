package format

import (
	"fmt"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// PartitionKind is key byte 13 of a partition pack.
type PartitionKind uint8

const (
	PartitionHeader PartitionKind = 0x02
	PartitionBody   PartitionKind = 0x03
	PartitionFooter PartitionKind = 0x04
)

func (k PartitionKind) String() string {
	switch k {
	case PartitionHeader:
		return "header"
	case PartitionBody:
		return "body"
	case PartitionFooter:
		return "footer"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(k))
	}
}

// PartitionStatus is key byte 14 of a partition pack.
type PartitionStatus uint8

// Closed reports whether the partition is closed (header metadata final).
func (s PartitionStatus) Closed() bool { return s == 0x02 || s == 0x04 }

// Complete reports whether the partition's header metadata is complete.
func (s PartitionStatus) Complete() bool { return s == 0x03 || s == 0x04 }

func (s PartitionStatus) String() string {
	switch s {
	case 0x01:
		return "open incomplete"
	case 0x02:
		return "closed incomplete"
	case 0x03:
		return "open complete"
	case 0x04:
		return "closed complete"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(s))
	}
}

// PartitionPack is a decoded partition pack.
//
// Value layout:
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------
//	 0x00     2   Major version
//	 0x02     2   Minor version
//	 0x04     4   KAG size
//	 0x08     8   This partition (offset from header start)
//	 0x10     8   Previous partition
//	 0x18     8   Footer partition
//	 0x20     8   Header byte count
//	 0x28     8   Index byte count
//	 0x30     4   IndexSID
//	 0x34     8   Body offset
//	 0x3C     4   BodySID
//	 0x40    16   Operational pattern UL
//	 0x50   8+n   Essence container batch
type PartitionPack struct {
	Kind               PartitionKind   `json:"kind"`
	Status             PartitionStatus `json:"status"`
	MajorVersion       uint16          `json:"major_version"`
	MinorVersion       uint16          `json:"minor_version"`
	KAGSize            uint32          `json:"kag_size"`
	ThisPartition      uint64          `json:"this_partition"`
	PreviousPartition  uint64          `json:"previous_partition"`
	FooterPartition    uint64          `json:"footer_partition"`
	HeaderByteCount    uint64          `json:"header_byte_count"`
	IndexByteCount     uint64          `json:"index_byte_count"`
	IndexSID           uint32          `json:"index_sid"`
	BodyOffset         uint64          `json:"body_offset"`
	BodySID            uint32          `json:"body_sid"`
	OperationalPattern types.UL        `json:"operational_pattern"`
	EssenceContainers  []types.UL      `json:"essence_containers"`

	// Size of the whole pack KLV, including key and length.
	PackSize int64 `json:"pack_size"`
}

// IsPartitionPack reports whether k is a header, body or footer partition pack
// key. The primer and random index packs share the template and are excluded
// by the kind byte.
func IsPartitionPack(k types.UL) bool {
	if !k.EqualMasked(PartitionPackKey, PartitionPackMask) {
		return false
	}
	switch PartitionKind(k[13]) {
	case PartitionHeader, PartitionBody, PartitionFooter:
		return true
	}
	return false
}

// ParsePartitionPack decodes a partition pack KLV at the start of b. Only the
// pack itself is read; b may extend past it.
func ParsePartitionPack(b []byte) (PartitionPack, error) {
	h, err := ReadKLVHeader(b)
	if err != nil {
		return PartitionPack{}, fmt.Errorf("partition pack: %w", err)
	}
	if !IsPartitionPack(h.Key) {
		return PartitionPack{}, fmt.Errorf("partition pack: key %s: %w", h.Key, ErrKeyMismatch)
	}
	n, ok := buf.Int64ToInt(int64(h.Length))
	if !ok {
		return PartitionPack{}, fmt.Errorf("partition pack: %w", ErrBadLength)
	}
	v, ok := buf.Slice(b, h.HeaderSize, n)
	if !ok {
		return PartitionPack{}, fmt.Errorf("partition pack: value of %d bytes: %w", h.Length, ErrTruncated)
	}
	p, err := DecodePartitionPackValue(v)
	if err != nil {
		return PartitionPack{}, err
	}
	p.Kind = PartitionKind(h.Key[13])
	p.Status = PartitionStatus(h.Key[14])
	p.PackSize = int64(h.HeaderSize) + int64(n)
	return p, nil
}

// DecodePartitionPackValue decodes a partition pack value without its key.
func DecodePartitionPackValue(v []byte) (PartitionPack, error) {
	if len(v) < PartitionPackMinSize {
		return PartitionPack{}, fmt.Errorf("partition pack: value %d bytes, need %d: %w",
			len(v), PartitionPackMinSize, ErrTruncated)
	}
	p := PartitionPack{
		MajorVersion:      buf.U16BE(v[0x00:]),
		MinorVersion:      buf.U16BE(v[0x02:]),
		KAGSize:           buf.U32BE(v[0x04:]),
		ThisPartition:     buf.U64BE(v[0x08:]),
		PreviousPartition: buf.U64BE(v[0x10:]),
		FooterPartition:   buf.U64BE(v[0x18:]),
		HeaderByteCount:   buf.U64BE(v[0x20:]),
		IndexByteCount:    buf.U64BE(v[0x28:]),
		IndexSID:          buf.U32BE(v[0x30:]),
		BodyOffset:        buf.U64BE(v[0x34:]),
		BodySID:           buf.U32BE(v[0x3C:]),
	}
	p.OperationalPattern, _ = types.ULFromBytes(v[0x40:])
	ecs, err := ReadULBatch(v[PartitionPackFixedSize:])
	if err != nil {
		return PartitionPack{}, fmt.Errorf("partition pack essence containers: %w", err)
	}
	p.EssenceContainers = ecs
	return p, nil
}

// EncodePartitionPack returns the full KLV for p, using Kind and Status for
// key bytes 13 and 14.
func EncodePartitionPack(p PartitionPack) []byte {
	v := make([]byte, PartitionPackFixedSize)
	putU16(v[0x00:], p.MajorVersion)
	putU16(v[0x02:], p.MinorVersion)
	putU32(v[0x04:], p.KAGSize)
	putU64(v[0x08:], p.ThisPartition)
	putU64(v[0x10:], p.PreviousPartition)
	putU64(v[0x18:], p.FooterPartition)
	putU64(v[0x20:], p.HeaderByteCount)
	putU64(v[0x28:], p.IndexByteCount)
	putU32(v[0x30:], p.IndexSID)
	putU64(v[0x34:], p.BodyOffset)
	putU32(v[0x3C:], p.BodySID)
	copy(v[0x40:], p.OperationalPattern[:])
	ecs := make([][]byte, len(p.EssenceContainers))
	for i := range p.EssenceContainers {
		ecs[i] = p.EssenceContainers[i][:]
	}
	v = AppendBatch(v, types.ULSize, ecs...)

	key := PartitionPackKey
	key[13], key[14] = byte(p.Kind), byte(p.Status)
	return AppendKLV(nil, key, v)
}

// AppendKLV appends key, a 4-byte BER length and value to dst.
func AppendKLV(dst []byte, key types.UL, value []byte) []byte {
	dst = append(dst, key[:]...)
	l, _ := EncodeBERLength(uint64(len(value)), 4)
	dst = append(dst, l...)
	return append(dst, value...)
}

func putU16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func putU64(b []byte, v uint64) {
	putU32(b[0:4], uint32(v>>32))
	putU32(b[4:8], uint32(v))
}
