package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/testutil"
	"github.com/Netflix/photon-sub001/partition"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/types"
)

func trailerOnly(size int, length uint32) []byte {
	b := make([]byte, size)
	copy(b[size-4:], testutil.U32(length))
	return b
}

func requireRIPFatal(t *testing.T, err error, issue string) {
	t.Helper()
	var fe *types.FatalError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, types.CodeRandomIndexPack, fe.Diagnostic.Code)
	require.Equal(t, types.SevFatal, fe.Diagnostic.Severity)
	require.Contains(t, fe.Diagnostic.Issue, issue)
}

func TestLocateMinimalFile(t *testing.T) {
	data := testutil.MinimalFile()
	report := types.NewDiagnosticReport()

	l, err := partition.Locate(context.Background(), byterange.NewBytes("minimal", data), report)
	require.NoError(t, err)
	require.Empty(t, report.Diagnostics())
	require.Equal(t, int64(len(data)), l.Size)
	require.Len(t, l.Partitions, 3)
	require.Equal(t, int64(0), l.Header().Start)
	require.Equal(t, l.Partitions[1].Range.Start-1, l.Header().End)
	require.Equal(t, uint32(1), l.Partitions[1].BodySID)
	require.Equal(t, l.RIPOffset, l.Partitions[2].Range.Start+int64(len(format.EncodePartitionPack(format.PartitionPack{Kind: format.PartitionFooter}))))
	require.Equal(t, int64(len(data)-1), l.Partitions[2].Range.End)
}

func TestLocateRandomIndexPackBoundary(t *testing.T) {
	ctx := context.Background()

	t.Run("59 bytes is too small", func(t *testing.T) {
		report := types.NewDiagnosticReport()
		_, err := partition.Locate(ctx, byterange.NewBytes("short", trailerOnly(256, 59)), report)
		requireRIPFatal(t, err, "too small")
		require.True(t, report.HasFatal())
	})

	t.Run("60 bytes with three offsets", func(t *testing.T) {
		data := testutil.File(
			testutil.Partition{Kind: format.PartitionHeader, HeaderMetadata: testutil.New().HeaderMetadata()},
			testutil.Partition{Kind: format.PartitionBody, BodySID: 1},
			testutil.Partition{Kind: format.PartitionFooter},
		)
		l, err := partition.Locate(ctx, byterange.NewBytes("rip60", data), nil)
		require.NoError(t, err)
		require.Equal(t, uint32(format.MinRandomIndexPackSize), l.RIP.Length)
		require.Len(t, l.RIP.Entries, 3)
		require.Equal(t, int64(len(data)-format.MinRandomIndexPackSize), l.RIPOffset)
	})
}

func TestLocateFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("file smaller than a pack", func(t *testing.T) {
		_, err := partition.Locate(ctx, byterange.NewBytes("tiny", make([]byte, 40)), nil)
		requireRIPFatal(t, err, "file too small")
		require.ErrorIs(t, err, types.ErrNotMXF)
	})

	t.Run("length beyond file", func(t *testing.T) {
		_, err := partition.Locate(ctx, byterange.NewBytes("long", trailerOnly(256, 4096)), nil)
		requireRIPFatal(t, err, "exceeds file size")
	})

	t.Run("garbage pack", func(t *testing.T) {
		_, err := partition.Locate(ctx, byterange.NewBytes("garbage", trailerOnly(256, 60)), nil)
		requireRIPFatal(t, err, "malformed")
	})

	t.Run("offsets not increasing", func(t *testing.T) {
		data := append(make([]byte, 512), format.EncodeRandomIndexPack([]format.RIPEntry{
			{Offset: 0}, {BodySID: 1, Offset: 200}, {Offset: 200},
		})...)
		_, err := partition.Locate(ctx, byterange.NewBytes("order", data), nil)
		requireRIPFatal(t, err, "not increasing")
	})

	t.Run("offset beyond pack", func(t *testing.T) {
		data := append(make([]byte, 512), format.EncodeRandomIndexPack([]format.RIPEntry{
			{Offset: 0}, {BodySID: 1, Offset: 200}, {Offset: 4096},
		})...)
		_, err := partition.Locate(ctx, byterange.NewBytes("beyond", data), nil)
		requireRIPFatal(t, err, "beyond random index pack")
	})
}

func TestReadPartitionPack(t *testing.T) {
	ctx := context.Background()
	p := byterange.NewBytes("minimal", testutil.MinimalFile())
	l, err := partition.Locate(ctx, p, nil)
	require.NoError(t, err)

	kinds := []format.PartitionKind{format.PartitionHeader, format.PartitionBody, format.PartitionFooter}
	for i, part := range l.Partitions {
		pack, err := partition.ReadPartitionPack(ctx, p, part.Range)
		require.NoError(t, err)
		require.Equal(t, kinds[i], pack.Kind)
		require.Equal(t, uint64(part.Range.Start), pack.ThisPartition)
		require.Equal(t, uint64(l.Partitions[2].Range.Start), pack.FooterPartition)
	}
}
