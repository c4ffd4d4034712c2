package format

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBERLength(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    uint64
		n       int
		wantErr error
	}{
		{"short zero", []byte{0x00}, 0, 1, nil},
		{"short max", []byte{0x7f}, 127, 1, nil},
		{"long 1", []byte{0x81, 0xff}, 255, 2, nil},
		{"long 4", []byte{0x83, 0x01, 0x00, 0x00}, 65536, 4, nil},
		{"long 8", []byte{0x88, 0, 0, 0, 1, 0, 0, 0, 0}, 1 << 32, 9, nil},
		{"indefinite", []byte{0x80}, 0, 0, ErrBadLength},
		{"too long", []byte{0x89, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 0, 0, ErrBadLength},
		{"truncated", []byte{0x84, 0x00}, 0, 0, ErrTruncated},
		{"empty", nil, 0, 0, ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := DecodeBERLength(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.n, n)
		})
	}
}

func TestEncodeBERLength(t *testing.T) {
	b, err := EncodeBERLength(0x1234, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x83, 0x00, 0x12, 0x34}, b)

	_, err = EncodeBERLength(0x1000000, 4)
	require.ErrorIs(t, err, ErrBadLength)

	_, err = EncodeBERLength(0x80, 1)
	require.ErrorIs(t, err, ErrBadLength)
}

func TestKLVIterator(t *testing.T) {
	var stream []byte
	stream = AppendKLV(stream, FillItemKey, make([]byte, 10))
	stream = AppendKLV(stream, PrimerPackKey, nil)
	stream = AppendKLV(stream, RandomIndexPackKey, []byte{1, 2, 3})

	it := NewKLVIterator(stream)
	var got []KLV
	for {
		k, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, k)
	}
	require.Len(t, got, 3)
	require.True(t, IsFill(got[0].Key))
	require.Equal(t, 0, got[0].Offset)
	require.Len(t, got[0].Value, 10)

	require.True(t, IsPrimerPack(got[1].Key))
	require.Empty(t, got[1].Value, "zero-length value is not end of stream")
	require.Equal(t, 30, got[1].Offset)

	require.True(t, IsRandomIndexPack(got[2].Key))
	require.Equal(t, []byte{1, 2, 3}, got[2].Value)
}

func TestKLVIteratorTruncatedValue(t *testing.T) {
	stream := AppendKLV(nil, FillItemKey, make([]byte, 10))
	it := NewKLVIterator(stream[:len(stream)-1])
	_, err := it.Next()
	require.ErrorIs(t, err, ErrTruncated)
	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadKLVHeaderAt(t *testing.T) {
	stream := append(bytes.Repeat([]byte{0xAA}, 7), AppendKLV(nil, PrimerPackKey, make([]byte, 300))...)
	r := bytes.NewReader(stream)

	h, err := ReadKLVHeaderAt(r, 7, int64(len(stream)))
	require.NoError(t, err)
	require.Equal(t, PrimerPackKey, h.Key)
	require.Equal(t, uint64(300), h.Length)
	require.Equal(t, 20, h.HeaderSize)

	_, err = ReadKLVHeaderAt(r, int64(len(stream)), int64(len(stream)))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestKeyPredicates(t *testing.T) {
	fillV2 := FillItemKey
	fillV2[7] = 0x02
	require.True(t, IsFill(fillV2))

	seg := IndexTableSegmentKey
	seg[5] = DesignatorLocalSetBER
	require.True(t, IsIndexTableSegment(seg))

	cdci := StructuralMetadataKey
	cdci[14] = 0x28
	require.True(t, IsStructuralMetadata(cdci))
	require.True(t, IsLocalSet(cdci))
	require.False(t, IsDescriptiveMetadata(cdci))

	require.False(t, IsLocalSet(PartitionPackKey))
}
