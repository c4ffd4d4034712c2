package format

import (
	"testing"

	"github.com/Netflix/photon-sub001/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestPartitionPackRoundTrip(t *testing.T) {
	op := types.MustParseUL("06.0e.2b.34.04.01.01.0d.0d.01.02.01.10.00.00.00")
	ec := types.MustParseUL("06.0e.2b.34.04.01.01.0d.0d.01.03.01.02.0c.01.00")
	in := PartitionPack{
		Kind:               PartitionHeader,
		Status:             0x04,
		MajorVersion:       1,
		MinorVersion:       3,
		KAGSize:            1,
		FooterPartition:    0x10000,
		HeaderByteCount:    4096,
		IndexSID:           0,
		BodySID:            1,
		OperationalPattern: op,
		EssenceContainers:  []types.UL{ec},
	}
	b := EncodePartitionPack(in)
	b = append(b, 0xde, 0xad) // trailing data is ignored

	got, err := ParsePartitionPack(b)
	require.NoError(t, err)
	require.Equal(t, PartitionHeader, got.Kind)
	require.True(t, got.Status.Closed())
	require.True(t, got.Status.Complete())
	require.Equal(t, uint64(4096), got.HeaderByteCount)
	require.Equal(t, uint32(1), got.BodySID)
	require.Equal(t, op, got.OperationalPattern)
	require.Equal(t, []types.UL{ec}, got.EssenceContainers)
	require.Equal(t, int64(len(b)-2), got.PackSize)
}

func TestParsePartitionPackErrors(t *testing.T) {
	_, err := ParsePartitionPack(AppendKLV(nil, PrimerPackKey, make([]byte, 88)))
	require.ErrorIs(t, err, ErrKeyMismatch)

	key := PartitionPackKey
	key[13] = byte(PartitionBody)
	_, err = ParsePartitionPack(AppendKLV(nil, key, make([]byte, 40)))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestRandomIndexPack(t *testing.T) {
	entries := []RIPEntry{{0, 0}, {1, 0x2000}, {0, 0x9000}}
	b := EncodeRandomIndexPack(entries)
	require.Len(t, b, MinRandomIndexPackSize)

	l, err := RIPTrailerLength(b)
	require.NoError(t, err)
	require.Equal(t, uint32(60), l)

	rip, err := ParseRandomIndexPack(b)
	require.NoError(t, err)
	require.Equal(t, entries, rip.Entries)
	require.Equal(t, []uint64{0, 0x2000, 0x9000}, rip.Offsets())
}

func TestRandomIndexPackTrailerMismatch(t *testing.T) {
	b := EncodeRandomIndexPack([]RIPEntry{{0, 0}, {0, 100}, {0, 200}})
	b[len(b)-1]++
	_, err := ParseRandomIndexPack(b)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestIndexTableSegment(t *testing.T) {
	var v []byte
	v = AppendItem(v, LengthShort, TagIndexEditRate, []byte{0, 0, 0, 24, 0, 0, 0, 1})
	v = AppendItem(v, LengthShort, TagIndexStartPosition, make([]byte, 8))
	v = AppendItem(v, LengthShort, TagIndexDuration, []byte{0, 0, 0, 0, 0, 0, 0, 48})
	v = AppendItem(v, LengthShort, TagIndexSID, []byte{0, 0, 0, 2})
	v = AppendItem(v, LengthShort, TagBodySID, []byte{0, 0, 0, 1})
	v = AppendItem(v, LengthShort, TagIndexEntryArray, AppendBatch(nil, 11, make([]byte, 11), make([]byte, 11)))
	v = AppendItem(v, LengthShort, 0x7777, []byte{1, 2, 3})

	seg, err := ParseIndexTableSegment(v, LengthShort)
	require.NoError(t, err)
	require.Equal(t, types.Rational{Numerator: 24, Denominator: 1}, seg.EditRate)
	require.Equal(t, int64(48), seg.IndexDuration)
	require.Equal(t, uint32(2), seg.IndexSID)
	require.Equal(t, uint32(1), seg.BodySID)
	require.Equal(t, uint32(2), seg.IndexEntryCount)
	require.Equal(t, uint32(11), seg.IndexEntrySize)

	bad := AppendItem(nil, LengthShort, TagIndexSID, []byte{0, 2})
	_, err = ParseIndexTableSegment(bad, LengthShort)
	require.ErrorIs(t, err, ErrSizeMismatch)
}
