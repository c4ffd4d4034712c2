package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecodeUTF16String(t *testing.T) {
	s, err := DecodeUTF16String(append(EncodeUTF16String("Photon"), 0, 0, 0, 0))
	require.NoError(t, err)
	require.Equal(t, "Photon", s)

	s, err = DecodeUTF16String(EncodeUTF16String("Größe ✓"))
	require.NoError(t, err)
	require.Equal(t, "Größe ✓", s)

	_, err = DecodeUTF16String([]byte{0, 'a', 0})
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestDecodeISO8859AndASCII(t *testing.T) {
	s, err := DecodeISO8859String([]byte{'c', 'a', 'f', 0xE9, 0})
	require.NoError(t, err)
	require.Equal(t, "café", s)

	s, err = DecodeASCIIString([]byte("en-US\x00\x00"))
	require.NoError(t, err)
	require.Equal(t, "en-US", s)
}

func TestTimestamp(t *testing.T) {
	in := time.Date(2024, time.March, 9, 13, 45, 30, 500*int(time.Millisecond), time.UTC)
	enc := EncodeTimestamp(in)
	ts, err := DecodeTimestamp(enc[:])
	require.NoError(t, err)
	require.True(t, ts.Valid)
	require.True(t, in.Equal(ts.Time))

	ts, err = DecodeTimestamp(make([]byte, 8))
	require.NoError(t, err)
	require.False(t, ts.Valid)

	ts, err = DecodeTimestamp([]byte{0x07, 0xE8, 2, 31, 0, 0, 0, 0})
	require.NoError(t, err)
	require.False(t, ts.Valid, "February 31st normalizes and is rejected")

	_, err = DecodeTimestamp([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReadBatch(t *testing.T) {
	ids, err := ReadUIDBatch(AppendBatch(nil, 16, make([]byte, 16), make([]byte, 16)))
	require.NoError(t, err)
	require.Len(t, ids, 2)

	_, err = ReadUIDBatch(AppendBatch(nil, 16, make([]byte, 15)))
	require.ErrorIs(t, err, ErrBadBatch)

	_, err = ReadUIDBatch(AppendBatch(nil, 12, make([]byte, 12)))
	require.ErrorIs(t, err, ErrBadBatch)

	ids, err = ReadUIDBatch(AppendBatch(nil, 16))
	require.NoError(t, err)
	require.Empty(t, ids)

	_, _, err = ReadBatch([]byte{0, 0})
	require.ErrorIs(t, err, ErrTruncated)
}
