package metadata

import (
	"errors"
	"fmt"
	"io"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/logger"
	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// ParseHeaderPartition decodes a header partition held in b, which starts
// with the partition pack. Header metadata must begin with the primer pack,
// optionally preceded by fill.
//
// When the partition pack declares a header byte count, exactly that many
// bytes are scanned. Otherwise the scan stops at the first index table
// segment or the first KLV that is neither fill nor a local set.
//
// Decode errors are FATAL and return a *types.FatalError. Unknown sets and
// unknown items are skipped without diagnostics.
func ParseHeaderPartition(b []byte, sink types.ErrorSink) (*Table, error) {
	sink = types.EnsureSink(sink)

	pack, err := format.ParsePartitionPack(b)
	if err != nil {
		return nil, types.Fatal(sink, types.Diagnostic{
			Code:      types.CodePartition,
			Offset:    0,
			Structure: "PartitionPack",
			Issue:     err.Error(),
		}, types.Wrap(types.ErrKindFormat, "header partition pack", err))
	}
	if pack.Kind != format.PartitionHeader {
		return nil, types.Fatal(sink, types.Diagnostic{
			Code:      types.CodePartition,
			Offset:    0,
			Structure: "PartitionPack",
			Issue:     "not a header partition",
			Expected:  format.PartitionHeader.String(),
			Actual:    pack.Kind.String(),
		}, types.ErrNotMXF)
	}

	p := &parser{b: b, sink: sink, off: int(pack.PackSize), limit: len(b)}

	// The header byte count starts right after the pack and includes any
	// fill in front of the primer.
	if pack.HeaderByteCount > 0 {
		end := uint64(pack.PackSize) + pack.HeaderByteCount
		if end > uint64(len(b)) {
			return nil, p.fatal(types.CodePartition, pack.PackSize, "PartitionPack",
				fmt.Sprintf("header byte count %d exceeds partition", pack.HeaderByteCount),
				types.Wrap(types.ErrKindCorrupt, "header metadata", format.ErrTruncated))
		}
		p.limit = int(end)
		p.bounded = true
	}
	p.skipFill()

	primer, err := p.readPrimer()
	if err != nil {
		return nil, err
	}
	t := NewTable(pack, primer)
	p.primer = primer

	for p.off < p.limit {
		k, err := p.next()
		if err != nil {
			return nil, err
		}
		switch {
		case format.IsFill(k.Key):
			continue
		case format.IsIndexTableSegment(k.Key):
			if !p.bounded {
				logger.Debug("header metadata ends at index table segment", "offset", k.Offset)
				return t, nil
			}
			logger.Debug("skipping index table segment in header metadata", "offset", k.Offset)
		case format.IsLocalSet(k.Key):
			if err := p.decodeSet(t, k); err != nil {
				return nil, err
			}
		case !p.bounded:
			logger.Debug("header metadata ends", "offset", k.Offset, "key", k.Key)
			return t, nil
		default:
			logger.Debug("skipping non-set KLV in header metadata", "offset", k.Offset, "key", k.Key)
		}
	}
	return t, nil
}

type parser struct {
	b       []byte
	sink    types.ErrorSink
	primer  *format.Primer
	off     int
	limit   int
	bounded bool
}

func (p *parser) fatal(code types.Code, off int64, structure, issue string, cause error) error {
	logger.Error("header metadata decode failed", "code", code, "offset", off, "issue", issue)
	return types.Fatal(p.sink, types.Diagnostic{
		Code:      code,
		Offset:    off,
		Structure: structure,
		Issue:     issue,
	}, cause)
}

// next reads the KLV at p.off and advances past it.
func (p *parser) next() (format.KLV, error) {
	it := format.NewKLVIterator(p.b[p.off:p.limit])
	k, err := it.Next()
	if err != nil {
		return format.KLV{}, p.fatal(types.CodeKLV, int64(p.off), "KLV",
			"cannot read KLV: "+err.Error(), types.Wrap(types.ErrKindCorrupt, "header metadata", err))
	}
	k.Offset += p.off
	p.off += it.Offset()
	return k, nil
}

func (p *parser) skipFill() {
	for p.off < p.limit {
		h, err := format.ReadKLVHeader(p.b[p.off:p.limit])
		if err != nil || !format.IsFill(h.Key) {
			return
		}
		total, ok := h.TotalSize()
		if !ok || total > int64(p.limit-p.off) {
			return
		}
		p.off += int(total)
	}
}

func (p *parser) readPrimer() (*format.Primer, error) {
	start := int64(p.off)
	if p.off >= p.limit {
		return nil, p.fatal(types.CodePrimerPack, start, "PrimerPack", "header metadata is empty",
			types.Wrap(types.ErrKindNotFound, "primer pack", types.ErrNotFound))
	}
	k, err := p.next()
	if err != nil {
		return nil, err
	}
	if !format.IsPrimerPack(k.Key) {
		return nil, p.fatal(types.CodePrimerPack, start, "PrimerPack",
			fmt.Sprintf("first header metadata KLV is %s, not a primer pack", k.Key),
			types.Wrap(types.ErrKindNotFound, "primer pack", types.ErrNotFound))
	}
	primer, err := format.ParsePrimerPack(k.Value)
	if err != nil {
		return nil, p.fatal(types.CodePrimerPack, start, "PrimerPack", err.Error(),
			types.Wrap(types.ErrKindCorrupt, "primer pack", err))
	}
	logger.Debug("primer pack decoded", "offset", start, "entries", primer.Len())
	return primer, nil
}

// decodeSet decodes one local set and adds it to t.
func (p *parser) decodeSet(t *Table, k format.KLV) error {
	kind := Dispatch(k.Key)
	rec := newRecord(kind)
	h := rec.Header()
	h.Key, h.Kind, h.Offset = k.Key, kind, int64(k.Offset)
	valueOff := int64(k.Offset + k.HeaderSize)

	it, err := format.NewItemIterator(k.Value, format.LocalSetLengthKindOf(k.Key))
	if err != nil {
		return p.fatal(types.CodeMetadataDecode, h.Offset, kind.String(), err.Error(),
			types.Wrap(types.ErrKindUnsupported, "local set", err))
	}
	raw, keepRaw := rec.(rawKeeper)
	for {
		item, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if kind == KindUnknown {
				// Not every unmodelled group is a well-formed local set.
				logger.Debug("opaque unknown set", "offset", h.Offset, "key", k.Key, "err", err)
				return nil
			}
			return p.fatal(types.CodeMetadataDecode, h.Offset, kind.String(),
				"local set items do not add up to the set length: "+err.Error(),
				types.Wrap(types.ErrKindCorrupt, kind.String(), err))
		}

		ul, known := p.primer.Lookup(item.Tag)
		handled := false
		if known {
			handled, err = rec.decodeItem(ul.Versionless(), item.Value)
			if err != nil {
				return p.fatal(types.CodeMetadataDecode, valueOff+int64(item.Offset), kind.String(),
					fmt.Sprintf("item %04x (%s): %v", item.Tag, ul, err),
					types.Wrap(types.ErrKindCorrupt, kind.String(), err))
			}
		}
		if handled {
			continue
		}
		h.Skipped++
		metrics.ItemsSkipped.Inc()
		if keepRaw {
			raw.addRaw(RawItem{Tag: item.Tag, UL: ul, Value: item.Value})
		} else {
			logger.Debug("skipping item", "set", kind, "tag", fmt.Sprintf("%04x", item.Tag), "ul", ul, "known_tag", known)
		}
	}

	if h.InstanceUID.IsZero() {
		d := types.Diagnostic{
			Code:      types.CodeMissingField,
			Severity:  types.SevNonFatal,
			Offset:    h.Offset,
			Structure: kind.String(),
			Issue:     "set has no instance UID",
		}
		switch {
		case kind == KindUnknown:
			d.Severity = types.SevWarning
		case kind.IsBackbone():
			return p.fatal(d.Code, d.Offset, d.Structure, d.Issue,
				types.Wrap(types.ErrKindCorrupt, kind.String()+" instance UID", types.ErrNotFound))
		}
		p.sink.Add(d)
	}
	if !t.add(rec) {
		p.sink.Add(types.Diagnostic{
			Code:      types.CodeDuplicateUID,
			Severity:  types.SevNonFatal,
			Offset:    h.Offset,
			Structure: kind.String(),
			Issue:     "duplicate instance UID " + h.InstanceUID.String() + ", keeping the first set",
		})
		return nil
	}
	metrics.SetsDecoded.WithLabelValues(kind.String()).Inc()
	logger.Debug("set decoded", "kind", kind, "offset", h.Offset, "uid", h.InstanceUID, "skipped", h.Skipped)
	return nil
}
