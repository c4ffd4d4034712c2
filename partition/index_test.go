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

func TestIndexTableSegments(t *testing.T) {
	ctx := context.Background()
	p := byterange.NewBytes("minimal", testutil.MinimalFile())
	l, err := partition.Locate(ctx, p, nil)
	require.NoError(t, err)

	report := types.NewDiagnosticReport()

	segs, err := partition.IndexTableSegments(ctx, p, l.Partitions[0], report)
	require.NoError(t, err)
	require.Empty(t, segs, "header partition declares no index bytes")

	segs, err = partition.IndexTableSegments(ctx, p, l.Partitions[1], report)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	seg := segs[0]
	require.Equal(t, 1, seg.Partition)
	require.Equal(t, uint32(2), seg.IndexSID)
	require.Equal(t, uint32(1), seg.BodySID)
	require.Equal(t, int64(48), seg.IndexDuration)
	require.Equal(t, types.Rational{Numerator: 24, Denominator: 1}, seg.EditRate)
	require.Equal(t, testutil.UID(200), seg.InstanceUID)
	require.Empty(t, report.Diagnostics())
}

func TestIndexTableSegmentsSkipsOtherKLVs(t *testing.T) {
	ctx := context.Background()
	fill := format.AppendKLV(nil, format.FillItemKey, make([]byte, 10))
	seg1 := testutil.IndexSegment(testutil.UID(1), types.Rational{Numerator: 25, Denominator: 1}, 0, 10, 3, 4)
	seg2 := testutil.IndexSegment(testutil.UID(2), types.Rational{Numerator: 25, Denominator: 1}, 10, 10, 3, 4)

	var index []byte
	index = append(index, seg1...)
	index = append(index, fill...)
	index = append(index, seg2...)

	data := testutil.File(
		testutil.Partition{Kind: format.PartitionHeader, HeaderMetadata: testutil.New().HeaderMetadata()},
		testutil.Partition{Kind: format.PartitionBody, BodySID: 4, IndexSID: 3, Index: index, Essence: make([]byte, 32)},
		testutil.Partition{Kind: format.PartitionFooter},
	)
	p := byterange.NewBytes("two-segments", data)
	l, err := partition.Locate(ctx, p, nil)
	require.NoError(t, err)

	segs, err := partition.IndexTableSegments(ctx, p, l.Partitions[1], nil)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	require.Equal(t, int64(10), segs[1].IndexStartPosition)
	require.Greater(t, segs[1].Offset, segs[0].Offset)
}

func TestReferenced(t *testing.T) {
	ctx := context.Background()
	data := testutil.File(
		testutil.Partition{Kind: format.PartitionHeader, HeaderMetadata: testutil.New().HeaderMetadata()},
		testutil.Partition{Kind: format.PartitionBody, BodySID: 1},
		testutil.Partition{Kind: format.PartitionBody, IndexSID: 2},
		testutil.Partition{Kind: format.PartitionBody, BodySID: 7},
		testutil.Partition{Kind: format.PartitionFooter},
	)
	p := byterange.NewBytes("referenced", data)
	l, err := partition.Locate(ctx, p, nil)
	require.NoError(t, err)

	packs := make(map[int]format.PartitionPack)
	for _, part := range l.Partitions {
		pack, err := partition.ReadPartitionPack(ctx, p, part.Range)
		require.NoError(t, err)
		packs[part.Index] = pack
	}

	got := partition.Referenced(l, packs, []partition.StreamIDs{{BodySID: 1, IndexSID: 2}})
	require.Equal(t, []int{0, 1, 2}, got)

	got = partition.Referenced(l, packs, nil)
	require.Equal(t, []int{0}, got)

	// Without decoded packs only the random index pack BodySIDs are known.
	got = partition.Referenced(l, nil, []partition.StreamIDs{{BodySID: 7, IndexSID: 2}})
	require.Equal(t, []int{0, 3}, got)
}
