package mxf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Netflix/photon-sub001/graph"
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/logger"
	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/partition"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// File is one MXF file. Its methods are safe for concurrent use: each
// processing step runs once and later calls return the memoized result.
type File struct {
	p      byterange.Provider
	opts   Options
	log    *slog.Logger
	report *types.DiagnosticReport
	sink   *loggingSink
	opened time.Time

	mu    sync.Mutex
	state State

	layoutOnce sync.Once
	layout     *partition.Layout
	packs      map[int]format.PartitionPack
	layoutErr  error

	headerOnce sync.Once
	table      *metadata.Table
	graph      *graph.Graph
	headerErr  error

	indexOnce  sync.Once
	referenced []int
	segments   []partition.IndexSegment
	indexErr   error

	validateOnce sync.Once
	validateErr  error
}

// Open opens a local path or an s3://bucket/key URI.
func Open(ctx context.Context, uri string, opts Options) (*File, error) {
	p, err := byterange.Open(ctx, uri, opts.rangeOptions(), opts.S3)
	if err != nil {
		return nil, types.Wrap(types.ErrKindIO, "open "+uri, err)
	}
	return OpenProvider(p, opts), nil
}

// OpenProvider wraps an existing provider. Closing the File closes p.
func OpenProvider(p byterange.Provider, opts Options) *File {
	report := types.NewDiagnosticReport()
	report.FilePath = p.Name()
	report.FileSize = p.Size()
	log := logger.Or(opts.Logger).With("file", p.Name())
	return &File{
		p:      p,
		opts:   opts,
		log:    log,
		report: report,
		sink:   &loggingSink{report: report, log: log},
		opened: time.Now(),
	}
}

// Name returns the path or URI the file was opened from.
func (f *File) Name() string { return f.p.Name() }

// Size returns the file size in bytes.
func (f *File) Size() int64 { return f.p.Size() }

// Report returns the diagnostics recorded so far.
func (f *File) Report() *types.DiagnosticReport { return f.report }

// State returns the last step reached.
func (f *File) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Close releases the provider. Memoized results stay usable; steps that have
// not run yet fail.
func (f *File) Close() error { return f.p.Close() }

func (f *File) advance(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateFatallyInvalid && s > f.state {
		f.state = s
	}
}

func (f *File) fail(err error) error {
	f.mu.Lock()
	f.state = StateFatallyInvalid
	f.mu.Unlock()
	return err
}

// Layout locates the partitions through the random index pack and reads
// every partition pack. A missing or non-header first partition is FATAL;
// unreadable later packs are NON_FATAL.
func (f *File) Layout(ctx context.Context) (*partition.Layout, error) {
	f.layoutOnce.Do(func() {
		f.layout, f.packs, f.layoutErr = f.locate(ctx)
	})
	return f.layout, f.layoutErr
}

// PartitionPacks returns the decoded partition packs keyed by partition
// index. The map must not be modified.
func (f *File) PartitionPacks(ctx context.Context) (map[int]format.PartitionPack, error) {
	if _, err := f.Layout(ctx); err != nil {
		return nil, err
	}
	return f.packs, nil
}

func (f *File) locate(ctx context.Context) (*partition.Layout, map[int]format.PartitionPack, error) {
	timer := metrics.NewTimer()
	l, err := partition.Locate(ctx, f.p, f.sink)
	timer.ObserveStage("locate")
	if err != nil {
		return nil, nil, f.fail(err)
	}
	f.advance(StateLocated)

	packs := make(map[int]format.PartitionPack, len(l.Partitions))
	for _, part := range l.Partitions {
		pack, err := partition.ReadPartitionPack(ctx, f.p, part.Range)
		d := types.Diagnostic{
			Code:      types.CodePartition,
			Severity:  types.SevNonFatal,
			Offset:    part.Range.Start,
			Structure: "PartitionPack",
		}
		if err != nil {
			d.Issue = err.Error()
			if part.Index == 0 {
				return nil, nil, f.fail(types.Fatal(f.sink, d, err))
			}
			f.sink.Add(d)
			continue
		}
		if part.Index == 0 && pack.Kind != format.PartitionHeader {
			d.Issue = "first partition is not a header partition"
			d.Expected, d.Actual = format.PartitionHeader.String(), pack.Kind.String()
			return nil, nil, f.fail(types.Fatal(f.sink, d, types.ErrNotMXF))
		}
		if pack.ThisPartition != uint64(part.Range.Start) {
			d.Severity = types.SevWarning
			d.Issue = "ThisPartition disagrees with the random index pack"
			d.Expected, d.Actual = part.Range.Start, pack.ThisPartition
			f.sink.Add(d)
		}
		packs[part.Index] = pack
	}
	timer.ObserveStage("partitions")
	f.advance(StatePartitionsIndexed)
	f.log.Debug("partitions indexed", "partitions", len(l.Partitions), "packs", len(packs))
	return l, packs, nil
}

// Header parses the header partition and resolves its structural metadata.
func (f *File) Header(ctx context.Context) (*graph.Graph, error) {
	f.headerOnce.Do(func() {
		f.graph, f.headerErr = f.parseHeader(ctx)
	})
	return f.graph, f.headerErr
}

// Table returns the decoded header metadata. It is available even when
// reference resolution failed.
func (f *File) Table(ctx context.Context) (*metadata.Table, error) {
	_, err := f.Header(ctx)
	if f.table == nil {
		return nil, err
	}
	return f.table, nil
}

func (f *File) parseHeader(ctx context.Context) (*graph.Graph, error) {
	l, err := f.Layout(ctx)
	if err != nil {
		return nil, err
	}
	r := l.Header()
	end := r.End
	if pack := f.packs[0]; pack.HeaderByteCount > 0 && pack.HeaderByteCount < uint64(r.Len()) {
		end = min(end, r.Start+pack.PackSize+int64(pack.HeaderByteCount)-1)
	}

	b, err := f.read(ctx, r.Start, end)
	if err != nil {
		return nil, f.fail(types.Fatal(f.sink, types.Diagnostic{
			Code:      types.CodeIO,
			Offset:    r.Start,
			Structure: "HeaderPartition",
			Issue:     "cannot read header partition",
		}, types.Wrap(types.ErrKindIO, "read header partition", err)))
	}

	timer := metrics.NewTimer()
	table, err := metadata.ParseHeaderPartition(b, f.sink)
	timer.ObserveStage("header")
	if err != nil {
		return nil, f.fail(err)
	}
	f.table = table
	f.advance(StateHeaderPartitionParsed)

	g, err := graph.Resolve(table, f.sink)
	timer.ObserveStage("resolve")
	if err != nil {
		return nil, f.fail(err)
	}
	f.advance(StateGraphResolved)
	f.log.Debug("header metadata resolved", "records", table.Len(), "nodes", g.Len())
	return g, nil
}

// read returns bytes [start, end] in memory the caller owns.
func (f *File) read(ctx context.Context, start, end int64) ([]byte, error) {
	rg, err := f.p.ReadRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	defer rg.Close()
	b, err := rg.Bytes()
	if err != nil {
		return nil, err
	}
	if !rg.InMemory() {
		b = bytes.Clone(b)
	}
	return b, nil
}

// ReferencedPartitions returns the indexes of the header partition and of
// every partition whose BodySID or IndexSID is listed by an
// EssenceContainerData set.
func (f *File) ReferencedPartitions(ctx context.Context) ([]int, error) {
	if err := f.collectIndex(ctx); err != nil {
		return nil, err
	}
	return f.referenced, nil
}

// IndexSegments returns the index table segments of the referenced
// partitions. Malformed segments are reported NON_FATAL and skipped.
func (f *File) IndexSegments(ctx context.Context) ([]partition.IndexSegment, error) {
	if err := f.collectIndex(ctx); err != nil {
		return nil, err
	}
	return f.segments, nil
}

func (f *File) collectIndex(ctx context.Context) error {
	f.indexOnce.Do(func() {
		g, err := f.Header(ctx)
		if err != nil {
			f.indexErr = err
			return
		}
		var ids []partition.StreamIDs
		for _, ecd := range g.EssenceContainerData() {
			set := ecd.Set()
			ids = append(ids, partition.StreamIDs{BodySID: set.BodySID, IndexSID: set.IndexSID})
		}
		f.referenced = partition.Referenced(f.layout, f.packs, ids)

		timer := metrics.NewTimer()
		for _, i := range f.referenced {
			if pack, ok := f.packs[i]; !ok || pack.IndexByteCount == 0 {
				continue
			}
			segs, err := partition.IndexTableSegments(ctx, f.p, f.layout.Partitions[i], f.sink)
			if err != nil {
				// Reported NON_FATAL by IndexTableSegments.
				continue
			}
			f.segments = append(f.segments, segs...)
		}
		timer.ObserveStage("index")
	})
	return f.indexErr
}

// Validate runs every step and settles the file as Valid or FatallyInvalid.
// With Options.Strict any NON_FATAL diagnostic also invalidates the file.
func (f *File) Validate(ctx context.Context) error {
	f.validateOnce.Do(func() {
		defer func() {
			f.report.ScanTime = time.Since(f.opened)
			metrics.FilesParsed.WithLabelValues(f.State().String()).Inc()
		}()
		if err := f.collectIndex(ctx); err != nil {
			f.validateErr = err
			return
		}
		if f.opts.Strict && f.report.HasErrors() {
			f.validateErr = f.fail(types.Wrap(types.ErrKindCorrupt,
				fmt.Sprintf("strict validation: %d non-fatal diagnostics", f.report.Summary.NonFatal),
				types.ErrCorrupt))
			return
		}
		f.advance(StateValid)
	})
	return f.validateErr
}
