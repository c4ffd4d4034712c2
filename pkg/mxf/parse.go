package mxf

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Netflix/photon-sub001/graph"
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/partition"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// LocateHeaderPartition finds the header partition through the random index
// pack at the end of the file and checks that it starts with a header
// partition pack.
func LocateHeaderPartition(ctx context.Context, p byterange.Provider) (partition.Range, *format.RandomIndexPack, error) {
	l, err := partition.Locate(ctx, p, nil)
	if err != nil {
		return partition.Range{}, nil, err
	}
	r := l.Header()
	pack, err := partition.ReadPartitionPack(ctx, p, r)
	if err != nil {
		return partition.Range{}, nil, err
	}
	if pack.Kind != format.PartitionHeader {
		return partition.Range{}, nil, types.Wrap(types.ErrKindFormat,
			"first partition is a "+pack.Kind.String()+" partition", types.ErrNotMXF)
	}
	return r, l.RIP, nil
}

// ParseHeaderPartition decodes the header partition held in b, which starts
// with the partition pack, and resolves its references. Diagnostics go to
// sink; a nil sink discards them.
func ParseHeaderPartition(b []byte, sink types.ErrorSink) (*graph.Graph, error) {
	sink = types.EnsureSink(sink)
	t, err := metadata.ParseHeaderPartition(b, sink)
	if err != nil {
		return nil, err
	}
	return graph.Resolve(t, sink)
}

// Result is the outcome of one file processed by ParseMany.
type Result struct {
	Path   string                  `json:"path"`
	State  State                   `json:"state"`
	Report *types.DiagnosticReport `json:"report"`
	Graph  *graph.Graph            `json:"-"`
	Err    error                   `json:"-"`
}

// ParseMany validates the files at paths in parallel, at most
// Options.Concurrency at a time. Results are in path order. A failing file
// only affects its own Result.
func ParseMany(ctx context.Context, paths []string, opts Options) []Result {
	results := make([]Result, len(paths))
	var g errgroup.Group
	g.SetLimit(opts.concurrency())
	for i, path := range paths {
		g.Go(func() error {
			results[i] = parseOne(ctx, path, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func parseOne(ctx context.Context, path string, opts Options) Result {
	res := Result{Path: path, State: StateFatallyInvalid}
	if err := ctx.Err(); err != nil {
		res.Report, res.Err = types.NewDiagnosticReport(), err
		return res
	}

	f, err := Open(ctx, path, opts)
	if err != nil {
		res.Report = types.NewDiagnosticReport()
		res.Report.FilePath = path
		res.Err = types.Fatal(res.Report, types.Diagnostic{
			Code:      types.CodeIO,
			Offset:    -1,
			Structure: "File",
			Issue:     err.Error(),
		}, err)
		metrics.FilesParsed.WithLabelValues(StateFatallyInvalid.String()).Inc()
		return res
	}
	defer f.Close()

	res.Err = f.Validate(ctx)
	res.State, res.Report = f.State(), f.Report()
	if res.Err == nil {
		res.Graph, _ = f.Header(ctx)
	}
	return res
}
