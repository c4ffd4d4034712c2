package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

func TestDispatchRoundTrip(t *testing.T) {
	for k := metadata.KindPreface; k <= metadata.KindTextBasedObject; k++ {
		t.Run(k.String(), func(t *testing.T) {
			key, ok := metadata.SetKey(k)
			require.True(t, ok)
			require.Equal(t, k, metadata.Dispatch(key))

			// Designator and register version bytes do not matter.
			ber := key
			ber[5] = format.DesignatorLocalSetBER
			ber[7] = 0x02
			require.Equal(t, k, metadata.Dispatch(ber))
		})
	}
}

func TestDispatchKnownKeys(t *testing.T) {
	tests := []struct {
		key  string
		want metadata.Kind
	}{
		{"06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.2f.00", metadata.KindPreface},
		{"06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.37.00", metadata.KindSourcePackage},
		{"06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.28.00", metadata.KindCDCIDescriptor},
		{"06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.83.00", metadata.KindADMCHNASubDescriptor},
		{"06.0e.2b.34.02.53.01.05.0e.09.06.07.01.01.01.03", metadata.KindPHDRMetadataTrackSubDescriptor},
		{"06.0e.2b.34.02.13.01.05.0e.09.06.07.01.01.01.03", metadata.KindPHDRMetadataTrackSubDescriptor},
		{"06.0e.2b.34.02.53.01.01.0d.01.04.01.04.01.01.00", metadata.KindTextBasedDMFramework},
		{"06.0e.2b.34.02.53.01.01.0d.01.04.01.04.02.02.00", metadata.KindTextBasedObject},
		{"06.0e.2b.34.02.53.01.01.0d.01.04.01.01.01.01.00", metadata.KindDescriptiveFramework},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, metadata.Dispatch(types.MustParseUL(tt.key)), tt.key)
	}
}

func TestDispatchUnknown(t *testing.T) {
	for _, b := range []byte{0x00, 0x01, 0x3C, 0x5B, 0x7E, 0xFE} {
		key := format.StructuralMetadataKey
		key[14] = b
		require.Equal(t, metadata.KindUnknown, metadata.Dispatch(key), "byte 14 = %02x", b)
	}

	// Not metadata at all.
	require.Equal(t, metadata.KindUnknown, metadata.Dispatch(format.PrimerPackKey))
	require.Equal(t, metadata.KindUnknown, metadata.Dispatch(types.UL{}))
}

func TestKindClassification(t *testing.T) {
	require.True(t, metadata.KindCDCIDescriptor.IsFileDescriptor())
	require.True(t, metadata.KindTimedTextDescriptor.IsFileDescriptor())
	require.False(t, metadata.KindJPEG2000SubDescriptor.IsFileDescriptor())

	require.True(t, metadata.KindJPEG2000SubDescriptor.IsSubDescriptor())
	require.True(t, metadata.KindADMChannelMapping.IsSubDescriptor())
	require.False(t, metadata.KindTextBasedObject.IsSubDescriptor())

	require.True(t, metadata.KindPreface.IsBackbone())
	require.True(t, metadata.KindSourceClip.IsBackbone())
	require.False(t, metadata.KindDMSegment.IsBackbone())
	require.False(t, metadata.KindFiller.IsBackbone())
	require.True(t, metadata.KindSequence.IsBackbone())
	require.False(t, metadata.KindAudioChannelLabelSubDescriptor.IsBackbone())

	require.Equal(t, "ADM_CHNASubDescriptor", metadata.KindADMCHNASubDescriptor.String())
	require.Equal(t, "Unknown", metadata.Kind(250).String())
}
