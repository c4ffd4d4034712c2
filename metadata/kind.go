// Package metadata decodes the structural metadata sets of an MXF header
// partition into flat records.
//
// Every set kind the package models is a Kind; the set key decides the Kind
// through Dispatch. Each record is a plain struct embedding the structs of its
// ancestors (a CDCIDescriptor embeds PictureDescriptor, which embeds
// FileDescriptor, and so on), and decodes its own items before handing the
// rest to the embedded parent. References between sets are kept as raw
// instance UIDs; the graph package links them.
package metadata

import (
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Kind identifies the record type of a metadata set.
type Kind uint8

const (
	KindUnknown Kind = iota

	KindPreface
	KindIdentification
	KindContentStorage
	KindEssenceContainerData
	KindMaterialPackage
	KindSourcePackage
	KindTimelineTrack
	KindEventTrack
	KindStaticTrack
	KindSequence
	KindSourceClip
	KindTimecodeComponent
	KindFiller
	KindDMSegment
	KindNetworkLocator
	KindTextLocator

	KindMultipleDescriptor
	KindGenericPictureDescriptor
	KindCDCIDescriptor
	KindRGBADescriptor
	KindGenericSoundDescriptor
	KindWaveAudioDescriptor
	KindIABEssenceDescriptor
	KindGenericDataDescriptor
	KindISXDDataDescriptor
	KindTimedTextDescriptor

	KindJPEG2000SubDescriptor
	KindAudioChannelLabelSubDescriptor
	KindSoundfieldGroupLabelSubDescriptor
	KindGroupOfSoundfieldGroupsLabelSubDescriptor
	KindIABSoundfieldLabelSubDescriptor
	KindADMSoundfieldGroupLabelSubDescriptor
	KindContainerConstraintsSubDescriptor
	KindTimedTextResourceSubDescriptor
	KindACESPictureSubDescriptor
	KindTargetFrameSubDescriptor
	KindPHDRMetadataTrackSubDescriptor
	KindADMCHNASubDescriptor
	KindADMChannelMapping
	KindADMAudioMetadataSubDescriptor
	KindRIFFChunkDefinitionSubDescriptor

	KindTextBasedDMFramework
	KindTextBasedObject
	KindDescriptiveFramework

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:                                   "Unknown",
	KindPreface:                                   "Preface",
	KindIdentification:                            "Identification",
	KindContentStorage:                            "ContentStorage",
	KindEssenceContainerData:                      "EssenceContainerData",
	KindMaterialPackage:                           "MaterialPackage",
	KindSourcePackage:                             "SourcePackage",
	KindTimelineTrack:                             "TimelineTrack",
	KindEventTrack:                                "EventTrack",
	KindStaticTrack:                               "StaticTrack",
	KindSequence:                                  "Sequence",
	KindSourceClip:                                "SourceClip",
	KindTimecodeComponent:                         "TimecodeComponent",
	KindFiller:                                    "Filler",
	KindDMSegment:                                 "DMSegment",
	KindNetworkLocator:                            "NetworkLocator",
	KindTextLocator:                               "TextLocator",
	KindMultipleDescriptor:                        "MultipleDescriptor",
	KindGenericPictureDescriptor:                  "GenericPictureEssenceDescriptor",
	KindCDCIDescriptor:                            "CDCIPictureEssenceDescriptor",
	KindRGBADescriptor:                            "RGBAPictureEssenceDescriptor",
	KindGenericSoundDescriptor:                    "GenericSoundEssenceDescriptor",
	KindWaveAudioDescriptor:                       "WaveAudioEssenceDescriptor",
	KindIABEssenceDescriptor:                      "IABEssenceDescriptor",
	KindGenericDataDescriptor:                     "GenericDataEssenceDescriptor",
	KindISXDDataDescriptor:                        "ISXDDataEssenceDescriptor",
	KindTimedTextDescriptor:                       "TimedTextDescriptor",
	KindJPEG2000SubDescriptor:                     "JPEG2000PictureSubDescriptor",
	KindAudioChannelLabelSubDescriptor:            "AudioChannelLabelSubDescriptor",
	KindSoundfieldGroupLabelSubDescriptor:         "SoundfieldGroupLabelSubDescriptor",
	KindGroupOfSoundfieldGroupsLabelSubDescriptor: "GroupOfSoundfieldGroupsLabelSubDescriptor",
	KindIABSoundfieldLabelSubDescriptor:           "IABSoundfieldLabelSubDescriptor",
	KindADMSoundfieldGroupLabelSubDescriptor:      "ADMSoundfieldGroupLabelSubDescriptor",
	KindContainerConstraintsSubDescriptor:         "ContainerConstraintsSubDescriptor",
	KindTimedTextResourceSubDescriptor:            "TimedTextResourceSubDescriptor",
	KindACESPictureSubDescriptor:                  "ACESPictureSubDescriptor",
	KindTargetFrameSubDescriptor:                  "TargetFrameSubDescriptor",
	KindPHDRMetadataTrackSubDescriptor:            "PHDRMetadataTrackSubDescriptor",
	KindADMCHNASubDescriptor:                      "ADM_CHNASubDescriptor",
	KindADMChannelMapping:                         "ADMChannelMapping",
	KindADMAudioMetadataSubDescriptor:             "ADMAudioMetadataSubDescriptor",
	KindRIFFChunkDefinitionSubDescriptor:          "RIFFChunkDefinitionSubDescriptor",
	KindTextBasedDMFramework:                      "TextBasedDMFramework",
	KindTextBasedObject:                           "GenericStreamTextBasedSet",
	KindDescriptiveFramework:                      "DescriptiveFramework",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// MarshalText renders the kind name in JSON output.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// structuralKinds maps byte 14 of the structural metadata template.
var structuralKinds = map[byte]Kind{
	0x09: KindFiller,
	0x0F: KindSequence,
	0x11: KindSourceClip,
	0x14: KindTimecodeComponent,
	0x18: KindContentStorage,
	0x23: KindEssenceContainerData,
	0x27: KindGenericPictureDescriptor,
	0x28: KindCDCIDescriptor,
	0x29: KindRGBADescriptor,
	0x2F: KindPreface,
	0x30: KindIdentification,
	0x32: KindNetworkLocator,
	0x33: KindTextLocator,
	0x36: KindMaterialPackage,
	0x37: KindSourcePackage,
	0x39: KindEventTrack,
	0x3A: KindStaticTrack,
	0x3B: KindTimelineTrack,
	0x41: KindDMSegment,
	0x42: KindGenericSoundDescriptor,
	0x43: KindGenericDataDescriptor,
	0x44: KindMultipleDescriptor,
	0x48: KindWaveAudioDescriptor,
	0x5A: KindJPEG2000SubDescriptor,
	0x64: KindTimedTextDescriptor,
	0x65: KindTimedTextResourceSubDescriptor,
	0x67: KindContainerConstraintsSubDescriptor,
	0x6B: KindAudioChannelLabelSubDescriptor,
	0x6C: KindSoundfieldGroupLabelSubDescriptor,
	0x6D: KindGroupOfSoundfieldGroupsLabelSubDescriptor,
	0x79: KindACESPictureSubDescriptor,
	0x7A: KindTargetFrameSubDescriptor,
	0x7B: KindIABEssenceDescriptor,
	0x7C: KindIABSoundfieldLabelSubDescriptor,
	0x7F: KindISXDDataDescriptor,
	0x81: KindRIFFChunkDefinitionSubDescriptor,
	0x82: KindADMChannelMapping,
	0x83: KindADMCHNASubDescriptor,
	0x84: KindADMAudioMetadataSubDescriptor,
	0x85: KindADMSoundfieldGroupLabelSubDescriptor,
}

// descriptiveKinds maps bytes 12..14 of descriptive metadata keys.
var descriptiveKinds = map[[3]byte]Kind{
	{0x04, 0x01, 0x01}: KindTextBasedDMFramework,
	{0x04, 0x02, 0x02}: KindTextBasedObject,
}

// Dispatch decides the record kind of a set key. Keys that look like
// metadata but are not modelled map to KindUnknown; Dispatch never fails.
func Dispatch(key types.UL) Kind {
	if key.EqualMasked(format.PHDRMetadataTrackSubDescriptorKey, phdrMask) {
		return KindPHDRMetadataTrackSubDescriptor
	}
	if format.IsStructuralMetadata(key) {
		if k, ok := structuralKinds[key[14]]; ok {
			return k
		}
		return KindUnknown
	}
	if format.IsDescriptiveMetadata(key) {
		if k, ok := descriptiveKinds[[3]byte{key[12], key[13], key[14]}]; ok {
			return k
		}
		return KindDescriptiveFramework
	}
	return KindUnknown
}

// phdrMask tolerates the local-set designator and register version bytes.
var phdrMask = types.ULMask{1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1}

// SetKey returns the canonical key of a structural kind (0x53 designator),
// or false when k has no structural template entry.
func SetKey(k Kind) (types.UL, bool) {
	if k == KindPHDRMetadataTrackSubDescriptor {
		return format.PHDRMetadataTrackSubDescriptorKey, true
	}
	for b, kind := range structuralKinds {
		if kind == k {
			key := format.StructuralMetadataKey
			key[14] = b
			return key, true
		}
	}
	for b, kind := range descriptiveKinds {
		if kind == k {
			key := format.DescriptiveMetadataKey
			key[12], key[13], key[14], key[15] = b[0], b[1], b[2], 0x00
			return key, true
		}
	}
	return types.UL{}, false
}

// IsPackage reports whether k is a package kind.
func (k Kind) IsPackage() bool { return k == KindMaterialPackage || k == KindSourcePackage }

// IsTrack reports whether k is a track kind.
func (k Kind) IsTrack() bool {
	return k == KindTimelineTrack || k == KindEventTrack || k == KindStaticTrack
}

// IsComponent reports whether k is a structural component kind.
func (k Kind) IsComponent() bool {
	switch k {
	case KindSequence, KindSourceClip, KindTimecodeComponent, KindFiller, KindDMSegment:
		return true
	}
	return false
}

// IsFileDescriptor reports whether k is an essence descriptor kind.
func (k Kind) IsFileDescriptor() bool {
	return k >= KindMultipleDescriptor && k <= KindTimedTextDescriptor
}

// IsSubDescriptor reports whether k hangs off a descriptor's sub-descriptor
// list, directly or through another sub-descriptor.
func (k Kind) IsSubDescriptor() bool {
	return k >= KindJPEG2000SubDescriptor && k <= KindRIFFChunkDefinitionSubDescriptor
}

// IsLocator reports whether k is a locator kind.
func (k Kind) IsLocator() bool { return k == KindNetworkLocator || k == KindTextLocator }

// IsDescriptive reports whether k is a descriptive metadata kind.
func (k Kind) IsDescriptive() bool {
	return k == KindTextBasedDMFramework || k == KindTextBasedObject || k == KindDescriptiveFramework
}

// IsBackbone reports whether sets of kind k sit on the Preface to
// descriptor spine. Such sets must carry an instance UID. Filler and
// descriptive marker segments carry no essence structure and are excluded.
func (k Kind) IsBackbone() bool {
	switch {
	case k == KindFiller, k == KindDMSegment:
		return false
	case k == KindPreface, k == KindContentStorage, k.IsPackage(), k.IsTrack(), k.IsComponent():
		return true
	case k.IsFileDescriptor():
		return true
	}
	return false
}
