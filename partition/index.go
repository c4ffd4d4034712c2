package partition

import (
	"context"
	"fmt"
	"io"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/logger"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// IndexSegment is an index table segment and where it was found.
type IndexSegment struct {
	format.IndexTableSegment
	Partition int   `json:"partition"`
	Offset    int64 `json:"offset"`
}

// IndexTableSegments walks the KLV headers of a partition and decodes the
// index table segments it holds. Other values are skipped without being
// read. The walk is bounded by the partition pack's header and index byte
// counts; a partition declaring no index bytes is not walked. Malformed
// segments are NON_FATAL; a malformed KLV header ends the walk.
func IndexTableSegments(ctx context.Context, p byterange.Provider, part Partition, sink types.ErrorSink) ([]IndexSegment, error) {
	sink = types.EnsureSink(sink)
	r := part.Range
	pack, err := ReadPartitionPack(ctx, p, r)
	if err != nil {
		sink.Add(types.Diagnostic{
			Code:      types.CodePartition,
			Severity:  types.SevNonFatal,
			Offset:    r.Start,
			Structure: "PartitionPack",
			Issue:     err.Error(),
		})
		return nil, err
	}
	if pack.IndexByteCount == 0 {
		return nil, nil
	}

	limit := r.End + 1
	if end := r.Start + pack.PackSize + int64(pack.HeaderByteCount) + int64(pack.IndexByteCount); end < limit {
		limit = end
	}
	ra := &providerReaderAt{ctx: ctx, p: p}

	var segs []IndexSegment
	off := r.Start + pack.PackSize
	for off < limit {
		h, err := format.ReadKLVHeaderAt(ra, off, r.End+1)
		if err != nil {
			sink.Add(types.Diagnostic{
				Code:      types.CodeKLV,
				Severity:  types.SevNonFatal,
				Offset:    off,
				Structure: "IndexTableSegment",
				Issue:     "cannot read KLV header: " + err.Error(),
			})
			return segs, types.Wrap(types.ErrKindCorrupt, fmt.Sprintf("klv header at %d", off), err)
		}
		total, ok := h.TotalSize()
		if !ok || off+total > r.End+1 {
			sink.Add(types.Diagnostic{
				Code:      types.CodeKLV,
				Severity:  types.SevNonFatal,
				Offset:    off,
				Structure: "IndexTableSegment",
				Issue:     "KLV value extends past partition end",
				Expected:  r.End + 1,
				Actual:    off + total,
			})
			return segs, types.Wrap(types.ErrKindCorrupt, fmt.Sprintf("klv at %d", off), format.ErrTruncated)
		}
		if format.IsIndexTableSegment(h.Key) {
			if seg, ok := readSegment(ctx, p, part.Index, off, h, sink); ok {
				segs = append(segs, seg)
			}
		}
		off += total
	}
	logger.Debug("index table segments collected", "partition", part.Index, "segments", len(segs))
	return segs, nil
}

func readSegment(ctx context.Context, p byterange.Provider, partIdx int, off int64, h format.KLVHeader, sink types.ErrorSink) (IndexSegment, bool) {
	report := func(issue string) {
		sink.Add(types.Diagnostic{
			Code:      types.CodeIndexTable,
			Severity:  types.SevNonFatal,
			Offset:    off,
			Structure: "IndexTableSegment",
			Issue:     issue,
		})
	}
	var value []byte
	if h.Length > 0 {
		start := off + int64(h.HeaderSize)
		var err error
		value, err = readAll(ctx, p, start, start+int64(h.Length)-1)
		if err != nil {
			report("cannot read segment: " + err.Error())
			return IndexSegment{}, false
		}
	}
	seg, err := format.ParseIndexTableSegment(value, format.LocalSetLengthKindOf(h.Key))
	if err != nil {
		report(err.Error())
		return IndexSegment{}, false
	}
	return IndexSegment{IndexTableSegment: seg, Partition: partIdx, Offset: off}, true
}

// providerReaderAt adapts a Provider to io.ReaderAt for short header reads.
type providerReaderAt struct {
	ctx context.Context
	p   byterange.Provider
}

func (r *providerReaderAt) ReadAt(b []byte, off int64) (int, error) {
	if off >= r.p.Size() {
		return 0, io.EOF
	}
	end := min(off+int64(len(b)), r.p.Size()) - 1
	data, err := readAll(r.ctx, r.p, off, end)
	if err != nil {
		return 0, err
	}
	n := copy(b, data)
	if n < len(b) {
		return n, io.EOF
	}
	return n, nil
}
