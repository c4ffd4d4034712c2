// Package partition locates the partitions of an MXF file through its random
// index pack and collects the index table segments they carry.
package partition

import (
	"context"
	"fmt"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/logger"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Range is an inclusive byte range of the file.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"` // inclusive
}

// Len returns the number of bytes in r.
func (r Range) Len() int64 { return r.End - r.Start + 1 }

func (r Range) String() string { return fmt.Sprintf("[%d,%d]", r.Start, r.End) }

// Partition is one partition listed by the random index pack.
type Partition struct {
	Index   int    `json:"index"`
	BodySID uint32 `json:"body_sid"`
	Range   Range  `json:"range"`
}

// Layout is the partition map of a file.
type Layout struct {
	Size       int64                   `json:"size"`
	RIP        *format.RandomIndexPack `json:"random_index_pack"`
	RIPOffset  int64                   `json:"random_index_pack_offset"`
	Partitions []Partition             `json:"partitions"`
}

// Header returns the header partition range.
func (l *Layout) Header() Range { return l.Partitions[0].Range }

// Locate reads the random index pack at the end of the file and derives the
// partition ranges. Every failure is FATAL: without a valid index the file
// cannot be decoded.
func Locate(ctx context.Context, p byterange.Provider, sink types.ErrorSink) (*Layout, error) {
	sink = types.EnsureSink(sink)
	size := p.Size()
	fatal := func(off int64, issue string, expected, actual any, cause error) error {
		return types.Fatal(sink, types.Diagnostic{
			Code:      types.CodeRandomIndexPack,
			Offset:    off,
			Structure: "RandomIndexPack",
			Issue:     issue,
			Expected:  expected,
			Actual:    actual,
		}, cause)
	}

	if size < format.MinRandomIndexPackSize {
		return nil, fatal(-1, "file too small to hold a random index pack",
			fmt.Sprintf(">= %d bytes", format.MinRandomIndexPackSize), size, types.ErrNotMXF)
	}

	trailer, err := readAll(ctx, p, size-format.RIPTrailerSize, size-1)
	if err != nil {
		return nil, fatal(size-format.RIPTrailerSize, "cannot read random index pack trailer", nil, nil,
			types.Wrap(types.ErrKindIO, "read trailer", err))
	}
	length, _ := format.RIPTrailerLength(trailer)
	if int64(length) < format.MinRandomIndexPackSize {
		return nil, fatal(size-format.RIPTrailerSize, "random index pack length too small",
			fmt.Sprintf(">= %d", format.MinRandomIndexPackSize), length,
			types.Wrap(types.ErrKindCorrupt, "random index pack", format.ErrSizeMismatch))
	}
	if int64(length) > size {
		return nil, fatal(size-format.RIPTrailerSize, "random index pack length exceeds file size",
			fmt.Sprintf("<= %d", size), length,
			types.Wrap(types.ErrKindCorrupt, "random index pack", format.ErrSizeMismatch))
	}

	ripOff := size - int64(length)
	b, err := readAll(ctx, p, ripOff, size-1)
	if err != nil {
		return nil, fatal(ripOff, "cannot read random index pack", nil, nil,
			types.Wrap(types.ErrKindIO, "read random index pack", err))
	}
	rip, err := format.ParseRandomIndexPack(b)
	if err != nil {
		return nil, fatal(ripOff, "malformed random index pack", nil, nil,
			types.Wrap(types.ErrKindCorrupt, "random index pack", err))
	}
	if len(rip.Entries) == 0 {
		return nil, fatal(ripOff, "random index pack lists no partitions", ">= 1", 0, types.ErrCorrupt)
	}

	layout := &Layout{Size: size, RIP: rip, RIPOffset: ripOff}
	for i, e := range rip.Entries {
		start := int64(e.Offset)
		if e.Offset > uint64(ripOff) || start >= ripOff {
			return nil, fatal(ripOff, fmt.Sprintf("partition %d offset beyond random index pack", i),
				fmt.Sprintf("< %d", ripOff), e.Offset, types.ErrCorrupt)
		}
		if i > 0 && e.Offset <= rip.Entries[i-1].Offset {
			return nil, fatal(ripOff, fmt.Sprintf("partition %d offset not increasing", i),
				fmt.Sprintf("> %d", rip.Entries[i-1].Offset), e.Offset, types.ErrCorrupt)
		}
		end := size - 1
		if i+1 < len(rip.Entries) {
			end = int64(rip.Entries[i+1].Offset) - 1
		}
		layout.Partitions = append(layout.Partitions, Partition{
			Index:   i,
			BodySID: e.BodySID,
			Range:   Range{Start: start, End: end},
		})
	}

	logger.Debug("random index pack located",
		"provider", p.Name(), "offset", ripOff, "partitions", len(layout.Partitions))
	return layout, nil
}

// ReadPartitionPack decodes the partition pack at the start of r.
func ReadPartitionPack(ctx context.Context, p byterange.Provider, r Range) (format.PartitionPack, error) {
	hdrEnd := min(r.End, r.Start+format.MaxKLVHeaderSize-1)
	hb, err := readAll(ctx, p, r.Start, hdrEnd)
	if err != nil {
		return format.PartitionPack{}, types.Wrap(types.ErrKindIO, "read partition pack", err)
	}
	h, err := format.ReadKLVHeader(hb)
	if err != nil {
		return format.PartitionPack{}, types.Wrap(types.ErrKindCorrupt, "partition pack", err)
	}
	total, ok := h.TotalSize()
	if !ok || total > r.Len() {
		return format.PartitionPack{}, types.Wrap(types.ErrKindCorrupt,
			fmt.Sprintf("partition pack of %d bytes in partition %s", h.Length, r), format.ErrTruncated)
	}
	b, err := readAll(ctx, p, r.Start, r.Start+total-1)
	if err != nil {
		return format.PartitionPack{}, types.Wrap(types.ErrKindIO, "read partition pack", err)
	}
	pack, err := format.ParsePartitionPack(b)
	if err != nil {
		return format.PartitionPack{}, types.Wrap(types.ErrKindFormat, "partition pack", err)
	}
	return pack, nil
}

func readAll(ctx context.Context, p byterange.Provider, start, end int64) ([]byte, error) {
	r, err := p.ReadRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	b, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
