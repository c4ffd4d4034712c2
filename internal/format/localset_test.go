package format

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectItems(t *testing.T, value []byte, kind LengthKind) ([]Item, int, error) {
	t.Helper()
	it, err := NewItemIterator(value, kind)
	require.NoError(t, err)
	var items []Item
	for {
		item, err := it.Next()
		if errors.Is(err, io.EOF) {
			return items, it.Consumed(), nil
		}
		if err != nil {
			return items, it.Consumed(), err
		}
		items = append(items, item)
	}
}

func TestItemIteratorByteAccounting(t *testing.T) {
	for _, kind := range []LengthKind{LengthShort, LengthBER} {
		t.Run(kind.String(), func(t *testing.T) {
			var value []byte
			value = AppendItem(value, kind, 0x3C0A, make([]byte, 16))
			value = AppendItem(value, kind, 0x8001, nil)
			value = AppendItem(value, kind, 0x3001, []byte{0, 1, 0, 2, 0, 3, 0, 4})

			items, consumed, err := collectItems(t, value, kind)
			require.NoError(t, err)
			require.Len(t, items, 3)
			require.Equal(t, len(value), consumed)

			lenSize := 2
			if kind == LengthBER {
				lenSize = 4
			}
			sum := 0
			for _, item := range items {
				require.Equal(t, 2+lenSize+len(item.Value), item.Size)
				sum += item.Size
			}
			require.Equal(t, consumed, sum)
			require.Equal(t, uint16(0x8001), items[1].Tag)
			require.Empty(t, items[1].Value)
		})
	}
}

func TestItemIteratorOverrun(t *testing.T) {
	value := AppendItem(nil, LengthShort, 0x3C0A, make([]byte, 16))
	value[3] = 17 // claims one byte more than present

	_, _, err := collectItems(t, value, LengthShort)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestItemIteratorTrailingByte(t *testing.T) {
	value := AppendItem(nil, LengthShort, 0x3C0A, make([]byte, 16))
	value = append(value, 0x00)

	items, _, err := collectItems(t, value, LengthShort)
	require.ErrorIs(t, err, ErrSizeMismatch)
	require.Len(t, items, 1)
}

func TestLocalSetLengthKindOf(t *testing.T) {
	k := StructuralMetadataKey
	require.Equal(t, LengthShort, LocalSetLengthKindOf(k))
	k[5] = 0x13
	require.Equal(t, LengthBER, LocalSetLengthKindOf(k))
	k[5] = 0x05
	require.Equal(t, LengthUnsupported, LocalSetLengthKindOf(k))

	_, err := NewItemIterator(nil, LengthUnsupported)
	require.ErrorIs(t, err, ErrUnsupported)
}
