// Package testutil builds synthetic MXF byte streams for tests.
//
// A Builder collects metadata sets, assigns dynamic local tags and emits a
// primer pack followed by the sets. File assembles partitions and the random
// index pack around them.
package testutil

import (
	"encoding/binary"
	"time"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Item is one local set item. Tag is assigned by the builder when zero.
type Item struct {
	Tag   uint16
	UL    types.UL
	Value []byte
}

// F returns an item for element ul.
func F(ul types.UL, value []byte) Item { return Item{UL: ul, Value: value} }

// Builder accumulates header metadata sets.
type Builder struct {
	entries []format.PrimerEntry
	tags    map[types.UL]uint16
	sets    []byte
	nextTag uint16
	kind    format.LengthKind
}

// New returns a builder emitting 2-byte item lengths.
func New() *Builder {
	return &Builder{tags: make(map[types.UL]uint16), nextTag: 0xFF00, kind: format.LengthShort}
}

// BER switches subsequent sets to BER item lengths (0x13 designator).
func (b *Builder) BER() *Builder {
	b.kind = format.LengthBER
	return b
}

// Tag returns the local tag assigned to ul, allocating one on first use.
func (b *Builder) Tag(ul types.UL) uint16 {
	if t, ok := b.tags[ul]; ok {
		return t
	}
	t := b.nextTag
	b.nextTag++
	b.tags[ul] = t
	b.entries = append(b.entries, format.PrimerEntry{Tag: t, UL: ul})
	return t
}

// Set appends a set of the given kind. A non-zero uid is written as the
// first item.
func (b *Builder) Set(kind metadata.Kind, uid types.UID, items ...Item) *Builder {
	key, ok := metadata.SetKey(kind)
	if !ok {
		panic("testutil: no set key for " + kind.String())
	}
	return b.RawSet(key, uid, items...)
}

// RawSet appends a set with an explicit key.
func (b *Builder) RawSet(key types.UL, uid types.UID, items ...Item) *Builder {
	if !uid.IsZero() {
		items = append([]Item{F(metadata.ElemInstanceUID, uid[:])}, items...)
	}
	b.sets = format.AppendKLV(b.sets, b.setKey(key), b.Value(items...))
	return b
}

// Value encodes items as a local set value without a key.
func (b *Builder) Value(items ...Item) []byte {
	var v []byte
	for _, it := range items {
		tag := it.Tag
		if tag == 0 {
			tag = b.Tag(it.UL)
		}
		v = format.AppendItem(v, b.kind, tag, it.Value)
	}
	return v
}

func (b *Builder) setKey(key types.UL) types.UL {
	if b.kind == format.LengthBER && format.LocalSetLengthKindOf(key) == format.LengthShort {
		key[5] = format.DesignatorLocalSetBER
	}
	return key
}

// Raw appends an arbitrary KLV after the sets written so far.
func (b *Builder) Raw(key types.UL, value []byte) *Builder {
	b.sets = format.AppendKLV(b.sets, key, value)
	return b
}

// Primer returns the primer of the tags allocated so far.
func (b *Builder) Primer() *format.Primer { return format.NewPrimer(b.entries...) }

// HeaderMetadata returns the primer pack followed by every set.
func (b *Builder) HeaderMetadata() []byte {
	out := format.AppendKLV(nil, format.PrimerPackKey, b.Primer().Encode())
	return append(out, b.sets...)
}

// HeaderPartition returns a closed complete header partition pack followed by
// the header metadata.
func (b *Builder) HeaderPartition() []byte {
	md := b.HeaderMetadata()
	pack := format.EncodePartitionPack(format.PartitionPack{
		Kind:            format.PartitionHeader,
		Status:          0x04,
		MajorVersion:    1,
		MinorVersion:    3,
		KAGSize:         1,
		HeaderByteCount: uint64(len(md)),
	})
	return append(pack, md...)
}

// -----------------------------------------------------------------------------
// File assembly
// -----------------------------------------------------------------------------

// Partition describes one partition for File.
type Partition struct {
	Kind     format.PartitionKind
	BodySID  uint32
	IndexSID uint32

	HeaderMetadata []byte
	Index          []byte
	Essence        []byte
}

// File lays out the partitions in order and appends a random index pack
// listing all of them.
func File(parts ...Partition) []byte {
	var (
		out     []byte
		entries []format.RIPEntry
		prev    uint64
		footer  uint64
	)
	// Footer offset is needed by every pack; compute all offsets first.
	offsets := make([]uint64, len(parts))
	var off uint64
	for i, p := range parts {
		offsets[i] = off
		off += uint64(len(encodePack(p, 0, 0, 0))) + uint64(len(p.HeaderMetadata)+len(p.Index)+len(p.Essence))
		if p.Kind == format.PartitionFooter {
			footer = offsets[i]
		}
	}
	for i, p := range parts {
		out = append(out, encodePack(p, offsets[i], prev, footer)...)
		out = append(out, p.HeaderMetadata...)
		out = append(out, p.Index...)
		out = append(out, p.Essence...)
		entries = append(entries, format.RIPEntry{BodySID: p.BodySID, Offset: offsets[i]})
		prev = offsets[i]
	}
	return append(out, format.EncodeRandomIndexPack(entries)...)
}

func encodePack(p Partition, this, prev, footer uint64) []byte {
	return format.EncodePartitionPack(format.PartitionPack{
		Kind:              p.Kind,
		Status:            0x04,
		MajorVersion:      1,
		MinorVersion:      3,
		KAGSize:           1,
		ThisPartition:     this,
		PreviousPartition: prev,
		FooterPartition:   footer,
		HeaderByteCount:   uint64(len(p.HeaderMetadata)),
		IndexByteCount:    uint64(len(p.Index)),
		IndexSID:          p.IndexSID,
		BodySID:           p.BodySID,
	})
}

// IndexSegment encodes an index table segment KLV with static tags.
func IndexSegment(uid types.UID, editRate types.Rational, start, duration int64, indexSID, bodySID uint32) []byte {
	var v []byte
	v = format.AppendItem(v, format.LengthShort, format.TagInstanceUID, uid[:])
	v = format.AppendItem(v, format.LengthShort, format.TagIndexEditRate, Rational(editRate.Numerator, editRate.Denominator))
	v = format.AppendItem(v, format.LengthShort, format.TagIndexStartPosition, I64(start))
	v = format.AppendItem(v, format.LengthShort, format.TagIndexDuration, I64(duration))
	v = format.AppendItem(v, format.LengthShort, format.TagIndexSID, U32(indexSID))
	v = format.AppendItem(v, format.LengthShort, format.TagBodySID, U32(bodySID))
	return format.AppendKLV(nil, format.IndexTableSegmentKey, v)
}

// -----------------------------------------------------------------------------
// Values
// -----------------------------------------------------------------------------

// UID returns a deterministic instance UID derived from n.
func UID(n uint32) types.UID {
	var id types.UID
	id[0], id[6], id[8] = 0xA0, 0x40, 0x80
	binary.BigEndian.PutUint32(id[12:], n)
	return id
}

// UMID returns a deterministic package UID derived from n.
func UMID(n uint32) types.UMID {
	var id types.UMID
	copy(id[:12], []byte{0x06, 0x0a, 0x2b, 0x34, 0x01, 0x01, 0x01, 0x05, 0x01, 0x01, 0x0f, 0x20})
	id[12] = 0x13
	m := UID(n)
	copy(id[16:], m[:])
	return id
}

// U8 encodes v.
func U8(v uint8) []byte { return []byte{v} }

// U16 encodes v big-endian.
func U16(v uint16) []byte { return binary.BigEndian.AppendUint16(nil, v) }

// U32 encodes v big-endian.
func U32(v uint32) []byte { return binary.BigEndian.AppendUint32(nil, v) }

// U64 encodes v big-endian.
func U64(v uint64) []byte { return binary.BigEndian.AppendUint64(nil, v) }

// I64 encodes v big-endian.
func I64(v int64) []byte { return U64(uint64(v)) }

// Rational encodes num/den.
func Rational(num, den int32) []byte {
	return append(U32(uint32(num)), U32(uint32(den))...)
}

// UTF16 encodes s as UTF-16BE.
func UTF16(s string) []byte { return format.EncodeUTF16String(s) }

// ULValue encodes ul.
func ULValue(ul types.UL) []byte { return ul[:] }

// UIDValue encodes uid.
func UIDValue(uid types.UID) []byte { return uid[:] }

// UMIDValue encodes umid.
func UMIDValue(umid types.UMID) []byte { return umid[:] }

// UIDs encodes a batch of instance UIDs.
func UIDs(ids ...types.UID) []byte {
	elems := make([][]byte, len(ids))
	for i := range ids {
		elems[i] = ids[i][:]
	}
	return format.AppendBatch(nil, types.UIDSize, elems...)
}

// ULs encodes a batch of ULs.
func ULs(uls ...types.UL) []byte {
	elems := make([][]byte, len(uls))
	for i := range uls {
		elems[i] = uls[i][:]
	}
	return format.AppendBatch(nil, types.ULSize, elems...)
}

// Timestamp encodes t as an MXF timestamp.
func Timestamp(t time.Time) []byte {
	ts := format.EncodeTimestamp(t)
	return ts[:]
}
