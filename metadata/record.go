package metadata

import "github.com/Netflix/photon-sub001/pkg/types"

// Record is one decoded metadata set. The set of implementations is closed:
// every Kind has exactly one record type, and unmodelled sets decode as
// *Unknown.
type Record interface {
	Header() *SetHeader
	decodeItem(ul types.UL, v []byte) (bool, error)
}

// AdditionalReferrer is implemented by sub-descriptors that reference further
// sub-descriptors outside their owner's list. The resolver follows these
// references and appends the targets to the owner's effective list.
type AdditionalReferrer interface {
	AdditionalReferences() []types.UID
}

// SetHeader holds what every set carries, plus where it came from.
type SetHeader struct {
	Key           types.UL  `json:"key"`
	Kind          Kind      `json:"kind"`
	Offset        int64     `json:"offset"` // of the set key, relative to the partition start
	InstanceUID   types.UID `json:"instance_uid"`
	GenerationUID types.UID `json:"generation_uid,omitzero"`

	// Skipped counts items whose tag or UL this record does not model.
	Skipped int `json:"skipped_items,omitempty"`
}

// Header returns the shared set header.
func (h *SetHeader) Header() *SetHeader { return h }

func (h *SetHeader) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemInstanceUID:
		return true, decodeUID(v, &h.InstanceUID)
	case ElemGenerationUID:
		return true, decodeUID(v, &h.GenerationUID)
	}
	return false, nil
}

// RawItem is an item of a set this package does not model.
type RawItem struct {
	Tag   uint16   `json:"tag"`
	UL    types.UL `json:"ul"`
	Value []byte   `json:"value"`
}

// Unknown stands in for well-formed sets whose key is not modelled.
type Unknown struct {
	SetHeader
	Items []RawItem `json:"items,omitempty"`
}

// newRecord returns an empty record for kind.
func newRecord(kind Kind) Record {
	switch kind {
	case KindPreface:
		return &Preface{}
	case KindIdentification:
		return &Identification{}
	case KindContentStorage:
		return &ContentStorage{}
	case KindEssenceContainerData:
		return &EssenceContainerData{}
	case KindMaterialPackage:
		return &MaterialPackage{}
	case KindSourcePackage:
		return &SourcePackage{}
	case KindTimelineTrack:
		return &TimelineTrack{}
	case KindEventTrack:
		return &EventTrack{}
	case KindStaticTrack:
		return &StaticTrack{}
	case KindSequence:
		return &Sequence{}
	case KindSourceClip:
		return &SourceClip{}
	case KindTimecodeComponent:
		return &TimecodeComponent{}
	case KindFiller:
		return &Filler{}
	case KindDMSegment:
		return &DMSegment{}
	case KindNetworkLocator:
		return &NetworkLocator{}
	case KindTextLocator:
		return &TextLocator{}
	case KindMultipleDescriptor:
		return &MultipleDescriptor{}
	case KindGenericPictureDescriptor:
		return &PictureDescriptor{}
	case KindCDCIDescriptor:
		return &CDCIDescriptor{}
	case KindRGBADescriptor:
		return &RGBADescriptor{}
	case KindGenericSoundDescriptor:
		return &SoundDescriptor{}
	case KindWaveAudioDescriptor:
		return &WaveAudioDescriptor{}
	case KindIABEssenceDescriptor:
		return &IABEssenceDescriptor{}
	case KindGenericDataDescriptor:
		return &DataDescriptor{}
	case KindISXDDataDescriptor:
		return &ISXDDataDescriptor{}
	case KindTimedTextDescriptor:
		return &TimedTextDescriptor{}
	case KindJPEG2000SubDescriptor:
		return &JPEG2000SubDescriptor{}
	case KindAudioChannelLabelSubDescriptor:
		return &AudioChannelLabelSubDescriptor{}
	case KindSoundfieldGroupLabelSubDescriptor:
		return &SoundfieldGroupLabelSubDescriptor{}
	case KindGroupOfSoundfieldGroupsLabelSubDescriptor:
		return &GroupOfSoundfieldGroupsLabelSubDescriptor{}
	case KindIABSoundfieldLabelSubDescriptor:
		return &IABSoundfieldLabelSubDescriptor{}
	case KindADMSoundfieldGroupLabelSubDescriptor:
		return &ADMSoundfieldGroupLabelSubDescriptor{}
	case KindContainerConstraintsSubDescriptor:
		return &ContainerConstraintsSubDescriptor{}
	case KindTimedTextResourceSubDescriptor:
		return &TimedTextResourceSubDescriptor{}
	case KindACESPictureSubDescriptor:
		return &ACESPictureSubDescriptor{}
	case KindTargetFrameSubDescriptor:
		return &TargetFrameSubDescriptor{}
	case KindPHDRMetadataTrackSubDescriptor:
		return &PHDRMetadataTrackSubDescriptor{}
	case KindADMCHNASubDescriptor:
		return &ADMCHNASubDescriptor{}
	case KindADMChannelMapping:
		return &ADMChannelMapping{}
	case KindADMAudioMetadataSubDescriptor:
		return &ADMAudioMetadataSubDescriptor{}
	case KindRIFFChunkDefinitionSubDescriptor:
		return &RIFFChunkDefinitionSubDescriptor{}
	case KindTextBasedDMFramework:
		return &TextBasedDMFramework{}
	case KindTextBasedObject:
		return &TextBasedObject{}
	case KindDescriptiveFramework:
		return &DescriptiveFramework{}
	default:
		return &Unknown{}
	}
}
