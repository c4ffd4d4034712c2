package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Instance UIDs of the sets written by Minimal.
var (
	PrefaceUID        = UID(1)
	ContentStorageUID = UID(2)
	SourcePackageUID  = UID(3)
	TrackUID          = UID(4)
	SequenceUID       = UID(5)
	SourceClipUID     = UID(6)
	DescriptorUID     = UID(7)
	ECDUID            = UID(8)

	// FilePackageUMID is the package UID of the source package.
	FilePackageUMID = UMID(100)
)

// PictureDataDefinition is the picture essence track data definition.
var PictureDataDefinition = types.MustParseUL("06.0e.2b.34.04.01.01.01.01.03.02.02.01.00.00.00")

// Minimal returns a builder holding one Preface, one ContentStorage, one
// SourcePackage with a TimelineTrack, Sequence and SourceClip, and a CDCI
// picture descriptor without sub-descriptors. descriptor items are appended
// to the descriptor set.
func Minimal(descriptor ...Item) *Builder {
	b := New()
	b.Set(metadata.KindPreface, PrefaceUID,
		F(metadata.ElemVersion, U16(0x0103)),
		F(metadata.ElemContentStorage, UIDValue(ContentStorageUID)),
		F(metadata.ElemOperationalPattern, ULValue(types.MustParseUL("06.0e.2b.34.04.01.01.01.0d.01.02.01.01.01.09.00"))),
		F(metadata.ElemEssenceContainers, ULs()),
		F(metadata.ElemDMSchemes, ULs()),
	)
	b.Set(metadata.KindContentStorage, ContentStorageUID,
		F(metadata.ElemPackages, UIDs(SourcePackageUID)),
		F(metadata.ElemEssenceContainerData, UIDs(ECDUID)),
	)
	b.Set(metadata.KindEssenceContainerData, ECDUID,
		F(metadata.ElemLinkedPackageUID, UMIDValue(FilePackageUMID)),
		F(metadata.ElemIndexSID, U32(2)),
		F(metadata.ElemBodySID, U32(1)),
	)
	b.Set(metadata.KindSourcePackage, SourcePackageUID,
		F(metadata.ElemPackageUID, UMIDValue(FilePackageUMID)),
		F(metadata.ElemTracks, UIDs(TrackUID)),
		F(metadata.ElemDescriptor, UIDValue(DescriptorUID)),
	)
	b.Set(metadata.KindTimelineTrack, TrackUID,
		F(metadata.ElemTrackID, U32(1)),
		F(metadata.ElemTrackNumber, U32(0x15010500)),
		F(metadata.ElemTrackSequence, UIDValue(SequenceUID)),
		F(metadata.ElemEditRate, Rational(24, 1)),
		F(metadata.ElemOrigin, I64(0)),
	)
	b.Set(metadata.KindSequence, SequenceUID,
		F(metadata.ElemDataDefinition, ULValue(PictureDataDefinition)),
		F(metadata.ElemDuration, I64(48)),
		F(metadata.ElemStructuralComponents, UIDs(SourceClipUID)),
	)
	b.Set(metadata.KindSourceClip, SourceClipUID,
		F(metadata.ElemDataDefinition, ULValue(PictureDataDefinition)),
		F(metadata.ElemDuration, I64(48)),
		F(metadata.ElemStartPosition, I64(0)),
		F(metadata.ElemSourcePackageID, UMIDValue(types.UMID{})),
		F(metadata.ElemSourceTrackID, U32(0)),
	)
	items := append([]Item{
		F(metadata.ElemLinkedTrackID, U32(1)),
		F(metadata.ElemSampleRate, Rational(24, 1)),
		F(metadata.ElemContainerDuration, I64(48)),
		F(metadata.ElemEssenceContainer, ULValue(types.MustParseUL("06.0e.2b.34.04.01.01.07.0d.01.03.01.02.0c.01.00"))),
		F(metadata.ElemFrameLayout, U8(0)),
		F(metadata.ElemStoredWidth, U32(1920)),
		F(metadata.ElemStoredHeight, U32(1080)),
		F(metadata.ElemAspectRatio, Rational(16, 9)),
		F(metadata.ElemComponentDepth, U32(10)),
		F(metadata.ElemHorizontalSubsampling, U32(2)),
	}, descriptor...)
	b.Set(metadata.KindCDCIDescriptor, DescriptorUID, items...)
	return b
}

// MinimalFile returns a complete file around the Minimal header metadata: a
// header partition, one body partition with BodySID 1 holding an index table
// segment, a footer partition and the random index pack.
func MinimalFile() []byte {
	return File(
		Partition{Kind: format.PartitionHeader, HeaderMetadata: Minimal().HeaderMetadata()},
		Partition{
			Kind:     format.PartitionBody,
			BodySID:  1,
			IndexSID: 2,
			Index:    IndexSegment(UID(200), types.Rational{Numerator: 24, Denominator: 1}, 0, 48, 2, 1),
			Essence:  make([]byte, 64),
		},
		Partition{Kind: format.PartitionFooter},
	)
}

// WriteFile writes data to a file named name under t.TempDir and returns its
// path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}
