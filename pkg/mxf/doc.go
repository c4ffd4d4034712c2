/*
Package mxf reads the structural metadata of MXF track files.

# Quick Start

Resolve the header metadata of a local file or an S3 object:

	f, err := mxf.Open(ctx, "s3://bucket/video.mxf", mxf.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	defer f.Close()

	g, err := f.Header(ctx)
	if err != nil {
	    log.Fatal(err) // *types.FatalError carries the whole diagnostic log
	}
	for _, e := range g.EssenceDescriptors() {
	    fmt.Println(e.Descriptor.Kind(), len(e.SubDescriptors))
	}

# Processing Steps

Each File advances through Located, PartitionsIndexed,
HeaderPartitionParsed and GraphResolved before ending Valid or
FatallyInvalid. Every step runs at most once; its result, or its error, is
memoized. A FATAL diagnostic stops the file at the step that raised it.
Resolved graphs are immutable and may be shared between goroutines.

# Several Files

ParseMany validates files in parallel. Every file gets its own report and a
failing file never affects its siblings:

	for _, r := range mxf.ParseMany(ctx, paths, mxf.Options{Concurrency: 4}) {
	    fmt.Println(r.Path, r.State, r.Report.Summary)
	}

# Lower-level Entry Points

LocateHeaderPartition finds the header partition through the random index
pack. ParseHeaderPartition decodes and resolves header partition bytes that
are already in memory.
*/
package mxf
