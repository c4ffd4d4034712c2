package format

import (
	"testing"

	"github.com/Netflix/photon-sub001/pkg/types"
	"github.com/stretchr/testify/require"
)

var instanceUIDUL = types.MustParseUL("06.0e.2b.34.01.01.01.01.01.01.15.02.00.00.00.00")

func TestPrimerRoundTrip(t *testing.T) {
	dyn := types.MustParseUL("06.0e.2b.34.01.01.01.09.06.01.01.04.06.10.00.00")
	p := NewPrimer(
		PrimerEntry{Tag: 0x3C0A, UL: instanceUIDUL},
		PrimerEntry{Tag: 0xFFFE, UL: dyn},
	)

	got, err := ParsePrimerPack(p.Encode())
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	ul, ok := got.Lookup(0x3C0A)
	require.True(t, ok)
	require.Equal(t, instanceUIDUL, ul)

	ul, ok = got.Lookup(0xFFFE)
	require.True(t, ok)
	require.Equal(t, dyn, ul)

	_, ok = got.Lookup(0x1234)
	require.False(t, ok, "unknown tags miss")
}

func TestParsePrimerPackBadItemSize(t *testing.T) {
	v := AppendBatch(nil, 17, make([]byte, 17))
	_, err := ParsePrimerPack(v)
	require.ErrorIs(t, err, ErrBadBatch)
}

func TestParsePrimerPackCountMismatch(t *testing.T) {
	v := NewPrimer(PrimerEntry{Tag: 1, UL: instanceUIDUL}).Encode()
	v = append(v, 0)
	_, err := ParsePrimerPack(v)
	require.ErrorIs(t, err, ErrBadBatch)
}

func TestNilPrimerLookup(t *testing.T) {
	var p *Primer
	_, ok := p.Lookup(0x3C0A)
	require.False(t, ok)
	require.Zero(t, p.Len())
}
