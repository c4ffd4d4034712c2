package format

import (
	"fmt"

	"github.com/Netflix/photon-sub001/internal/buf"
)

// RIPEntry is one partition listed by the random index pack.
type RIPEntry struct {
	BodySID uint32 `json:"body_sid"`
	Offset  uint64 `json:"offset"`
}

// RandomIndexPack lists every partition of a file.
//
// Layout:
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------
//	 0x00    16   Key
//	 0x10   1-9   BER length
//	 ....  12*n   Entries: BodySID u32, byte offset u64
//	 ....     4   Overall length of the pack (key to end)
type RandomIndexPack struct {
	Entries []RIPEntry `json:"entries"`
	Length  uint32     `json:"length"` // overall pack length from the trailer
}

// Offsets returns the partition offsets in pack order.
func (r *RandomIndexPack) Offsets() []uint64 {
	out := make([]uint64, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Offset
	}
	return out
}

// RIPTrailerLength decodes the overall pack length from the last 4 bytes of a
// file.
func RIPTrailerLength(trailer []byte) (uint32, error) {
	if len(trailer) < RIPTrailerSize {
		return 0, fmt.Errorf("random index pack trailer: %w", ErrTruncated)
	}
	return buf.U32BE(trailer[len(trailer)-RIPTrailerSize:]), nil
}

// ParseRandomIndexPack decodes a whole random index pack. b must hold exactly
// the pack, from key to trailer.
func ParseRandomIndexPack(b []byte) (*RandomIndexPack, error) {
	h, err := ReadKLVHeader(b)
	if err != nil {
		return nil, fmt.Errorf("random index pack: %w", err)
	}
	if !IsRandomIndexPack(h.Key) {
		return nil, fmt.Errorf("random index pack: key %s: %w", h.Key, ErrKeyMismatch)
	}
	total, ok := h.TotalSize()
	if !ok || total != int64(len(b)) {
		return nil, fmt.Errorf("random index pack: KLV length %d disagrees with pack size %d: %w",
			h.Length, len(b), ErrSizeMismatch)
	}
	v := b[h.HeaderSize:]
	if len(v) < RIPTrailerSize || (len(v)-RIPTrailerSize)%RIPEntrySize != 0 {
		return nil, fmt.Errorf("random index pack: value of %d bytes is not n*%d+%d: %w",
			len(v), RIPEntrySize, RIPTrailerSize, ErrSizeMismatch)
	}
	rip := &RandomIndexPack{Length: buf.U32BE(v[len(v)-RIPTrailerSize:])}
	if int(rip.Length) != len(b) {
		return nil, fmt.Errorf("random index pack: trailer length %d, pack is %d bytes: %w",
			rip.Length, len(b), ErrSizeMismatch)
	}
	n := (len(v) - RIPTrailerSize) / RIPEntrySize
	rip.Entries = make([]RIPEntry, n)
	for i := range rip.Entries {
		e := v[i*RIPEntrySize:]
		rip.Entries[i] = RIPEntry{BodySID: buf.U32BE(e), Offset: buf.U64BE(e[4:])}
	}
	return rip, nil
}

// EncodeRandomIndexPack returns the KLV for entries with a 4-byte BER length
// and a correct trailer.
func EncodeRandomIndexPack(entries []RIPEntry) []byte {
	v := make([]byte, len(entries)*RIPEntrySize+RIPTrailerSize)
	for i, e := range entries {
		putU32(v[i*RIPEntrySize:], e.BodySID)
		putU64(v[i*RIPEntrySize+4:], e.Offset)
	}
	total := KeySize + 4 + len(v)
	putU32(v[len(v)-RIPTrailerSize:], uint32(total))
	return AppendKLV(nil, RandomIndexPackKey, v)
}
