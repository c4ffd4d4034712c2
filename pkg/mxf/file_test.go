package mxf_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netflix/photon-sub001/graph"
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/testutil"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/mxf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

func open(t *testing.T, data []byte, opts mxf.Options) *mxf.File {
	t.Helper()
	f := mxf.OpenProvider(byterange.NewBytes(t.Name()+".mxf", data), opts)
	t.Cleanup(func() { f.Close() })
	return f
}

// headerOnly wraps the builder's sets in a header and footer partition.
func headerOnly(b *testutil.Builder) []byte {
	return testutil.File(
		testutil.Partition{Kind: format.PartitionHeader, HeaderMetadata: b.HeaderMetadata()},
		testutil.Partition{Kind: format.PartitionFooter},
	)
}

func TestFileMinimal(t *testing.T) {
	ctx := context.Background()
	f := open(t, testutil.MinimalFile(), mxf.Options{})
	require.Equal(t, mxf.StateOpened, f.State())

	require.NoError(t, f.Validate(ctx))
	require.Equal(t, mxf.StateValid, f.State())
	require.Empty(t, f.Report().Diagnostics())

	layout, err := f.Layout(ctx)
	require.NoError(t, err)
	require.Len(t, layout.Partitions, 3)

	packs, err := f.PartitionPacks(ctx)
	require.NoError(t, err)
	require.Equal(t, format.PartitionHeader, packs[0].Kind)
	require.Equal(t, format.PartitionBody, packs[1].Kind)
	require.Equal(t, format.PartitionFooter, packs[2].Kind)

	g, err := f.Header(ctx)
	require.NoError(t, err)
	entries := g.EssenceDescriptors()
	require.Len(t, entries, 1)
	cdci := entries[0].Descriptor.Set().(*metadata.CDCIDescriptor)
	require.Equal(t, uint32(1920), cdci.StoredWidth)

	referenced, err := f.ReferencedPartitions(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, referenced)

	segs, err := f.IndexSegments(ctx)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, 1, segs[0].Partition)
	assert.Equal(t, uint32(2), segs[0].IndexSID)
	assert.Equal(t, uint32(1), segs[0].BodySID)
	assert.Equal(t, int64(48), segs[0].IndexDuration)
	assert.Equal(t, types.Rational{Numerator: 24, Denominator: 1}, segs[0].EditRate)

	table, err := f.Table(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, table.Len())
}

func TestFileHeaderWithLeadingFill(t *testing.T) {
	ctx := context.Background()
	md := append(format.AppendKLV(nil, format.FillItemKey, make([]byte, 40)), testutil.Minimal().HeaderMetadata()...)
	data := testutil.File(
		testutil.Partition{Kind: format.PartitionHeader, HeaderMetadata: md},
		testutil.Partition{Kind: format.PartitionFooter},
	)

	f := open(t, data, mxf.Options{})
	g, err := f.Header(ctx)
	require.NoError(t, err)
	require.Len(t, g.EssenceDescriptors(), 1)
	require.Equal(t, mxf.StateGraphResolved, f.State())
}

func TestOpenLocalFile(t *testing.T) {
	ctx := context.Background()
	path := testutil.WriteFile(t, "minimal.mxf", testutil.MinimalFile())

	f, err := mxf.Open(ctx, path, mxf.Options{MaxInMemoryRange: -1})
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, path, f.Name())
	require.NoError(t, f.Validate(ctx))
	g, err := f.Header(ctx)
	require.NoError(t, err)
	require.Len(t, g.Packages(), 1)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := mxf.Open(context.Background(), t.TempDir()+"/missing.mxf", mxf.Options{})
	require.Error(t, err)
}

func TestFileFatal(t *testing.T) {
	ctx := context.Background()

	t.Run("not an mxf file", func(t *testing.T) {
		f := open(t, make([]byte, 100), mxf.Options{})
		err := f.Validate(ctx)
		var fe *types.FatalError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, types.CodeRandomIndexPack, fe.Diagnostic.Code)
		require.Equal(t, mxf.StateFatallyInvalid, f.State())
		require.True(t, f.Report().HasFatal())

		_, err2 := f.Header(ctx)
		require.Same(t, err, err2)
	})

	t.Run("unresolvable backbone", func(t *testing.T) {
		b := testutil.New()
		b.Set(metadata.KindPreface, testutil.UID(1),
			testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
		f := open(t, headerOnly(b), mxf.Options{})

		_, err := f.Header(ctx)
		var fe *types.FatalError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, types.CodeUnresolvedReference, fe.Diagnostic.Code)
		require.Equal(t, mxf.StateFatallyInvalid, f.State())

		// The decoded table survives a failed resolution.
		table, err := f.Table(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
	})

	t.Run("body partition first", func(t *testing.T) {
		data := testutil.File(
			testutil.Partition{Kind: format.PartitionBody, BodySID: 1},
			testutil.Partition{Kind: format.PartitionFooter},
		)
		f := open(t, data, mxf.Options{})
		err := f.Validate(ctx)
		require.ErrorIs(t, err, types.ErrNotMXF)
		require.Equal(t, mxf.StateFatallyInvalid, f.State())
	})
}

func TestFileStrict(t *testing.T) {
	ctx := context.Background()
	b := testutil.Minimal(testutil.F(metadata.ElemSubDescriptors, testutil.UIDs(testutil.UID(77))))
	data := headerOnly(b)

	lenient := open(t, data, mxf.Options{})
	require.NoError(t, lenient.Validate(ctx))
	require.Equal(t, mxf.StateValid, lenient.State())
	require.Equal(t, 1, lenient.Report().Summary.NonFatal)

	strict := open(t, data, mxf.Options{Strict: true})
	err := strict.Validate(ctx)
	require.ErrorIs(t, err, types.ErrCorrupt)
	require.Equal(t, mxf.StateFatallyInvalid, strict.State())
}

func TestFileConcurrentHeader(t *testing.T) {
	ctx := context.Background()
	f := open(t, testutil.MinimalFile(), mxf.Options{})

	const n = 8
	graphs := make([]*graph.Graph, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := f.Header(ctx)
			assert.NoError(t, err)
			graphs[i] = g
		}()
	}
	wg.Wait()

	for _, g := range graphs[1:] {
		require.Same(t, graphs[0], g)
	}
	require.Equal(t, mxf.StateGraphResolved, f.State())
}

func TestLocateHeaderPartition(t *testing.T) {
	ctx := context.Background()
	data := testutil.MinimalFile()

	r, rip, err := mxf.LocateHeaderPartition(ctx, byterange.NewBytes("minimal.mxf", data))
	require.NoError(t, err)
	require.Equal(t, int64(0), r.Start)
	require.Len(t, rip.Entries, 3)
	require.Equal(t, int64(rip.Entries[1].Offset)-1, r.End)

	_, _, err = mxf.LocateHeaderPartition(ctx, byterange.NewBytes("zeros", make([]byte, 128)))
	var fe *types.FatalError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, types.CodeRandomIndexPack, fe.Diagnostic.Code)

	body := testutil.File(
		testutil.Partition{Kind: format.PartitionBody, BodySID: 1},
		testutil.Partition{Kind: format.PartitionFooter},
	)
	_, _, err = mxf.LocateHeaderPartition(ctx, byterange.NewBytes("body", body))
	require.ErrorIs(t, err, types.ErrNotMXF)
}

func TestParseHeaderPartition(t *testing.T) {
	report := types.NewDiagnosticReport()
	g, err := mxf.ParseHeaderPartition(testutil.Minimal().HeaderPartition(), report)
	require.NoError(t, err)
	require.Empty(t, report.Diagnostics())
	require.Equal(t, testutil.PrefaceUID, g.Preface().InstanceUID())

	_, err = mxf.ParseHeaderPartition([]byte{0x06, 0x0e}, nil)
	require.Error(t, err)
}

func TestParseMany(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, "good.mxf", testutil.MinimalFile())
	bad := testutil.WriteFile(t, "bad.mxf", make([]byte, 10))
	paths := []string{good, bad, dir + "/missing.mxf", good}

	results := mxf.ParseMany(context.Background(), paths, mxf.Options{Concurrency: 2})
	require.Len(t, results, len(paths))
	for i, r := range results {
		require.Equal(t, paths[i], r.Path)
		require.NotNil(t, r.Report)
	}

	require.NoError(t, results[0].Err)
	require.Equal(t, mxf.StateValid, results[0].State)
	require.NotNil(t, results[0].Graph)

	require.Error(t, results[1].Err)
	require.Equal(t, mxf.StateFatallyInvalid, results[1].State)
	require.True(t, results[1].Report.HasFatal())
	require.Nil(t, results[1].Graph)

	require.Error(t, results[2].Err)
	require.Equal(t, mxf.StateFatallyInvalid, results[2].State)
	require.Len(t, results[2].Report.ByCode(types.CodeIO), 1)

	require.NoError(t, results[3].Err)
	require.NotSame(t, results[0].Graph, results[3].Graph)
}

func TestParseManyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := mxf.ParseMany(ctx, []string{"a.mxf"}, mxf.Options{})
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "HeaderPartitionParsed", mxf.StateHeaderPartitionParsed.String())
	require.Equal(t, "Unknown", mxf.State(42).String())
	require.True(t, mxf.StateValid.Terminal())
	require.False(t, mxf.StateGraphResolved.Terminal())
}
