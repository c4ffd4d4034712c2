package metadata

import "github.com/Netflix/photon-sub001/pkg/types"

// JPEG2000SubDescriptor carries the JPEG 2000 codestream main header fields.
type JPEG2000SubDescriptor struct {
	SetHeader
	Rsize                  uint16 `json:"rsize"`
	Xsize                  uint32 `json:"xsize"`
	Ysize                  uint32 `json:"ysize"`
	XOsize                 uint32 `json:"xosize"`
	YOsize                 uint32 `json:"yosize"`
	XTsize                 uint32 `json:"xtsize"`
	YTsize                 uint32 `json:"ytsize"`
	XTOsize                uint32 `json:"xtosize"`
	YTOsize                uint32 `json:"ytosize"`
	Csize                  uint16 `json:"csize"`
	PictureComponentSizing []byte `json:"picture_component_sizing,omitempty"`
	CodingStyleDefault     []byte `json:"coding_style_default,omitempty"`
	QuantizationDefault    []byte `json:"quantization_default,omitempty"`
	J2CLayout              []byte `json:"j2c_layout,omitempty"`
}

func (d *JPEG2000SubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemJ2KRsize:
		return true, decodeU16(v, &d.Rsize)
	case ElemJ2KXsize:
		return true, decodeU32(v, &d.Xsize)
	case ElemJ2KYsize:
		return true, decodeU32(v, &d.Ysize)
	case ElemJ2KXOsize:
		return true, decodeU32(v, &d.XOsize)
	case ElemJ2KYOsize:
		return true, decodeU32(v, &d.YOsize)
	case ElemJ2KXTsize:
		return true, decodeU32(v, &d.XTsize)
	case ElemJ2KYTsize:
		return true, decodeU32(v, &d.YTsize)
	case ElemJ2KXTOsize:
		return true, decodeU32(v, &d.XTOsize)
	case ElemJ2KYTOsize:
		return true, decodeU32(v, &d.YTOsize)
	case ElemJ2KCsize:
		return true, decodeU16(v, &d.Csize)
	case ElemJ2KPictureComponentSizing:
		return true, decodeBytes(v, &d.PictureComponentSizing)
	case ElemJ2KCodingStyleDefault:
		return true, decodeBytes(v, &d.CodingStyleDefault)
	case ElemJ2KQuantizationDefault:
		return true, decodeBytes(v, &d.QuantizationDefault)
	case ElemJ2KJ2CLayout:
		return true, decodeBytes(v, &d.J2CLayout)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// MCALabelSubDescriptor holds the fields shared by multichannel audio labels.
type MCALabelSubDescriptor struct {
	SetHeader
	MCALabelDictionaryID  types.UL  `json:"mca_label_dictionary_id"`
	MCALinkID             types.UID `json:"mca_link_id"`
	MCATagSymbol          string    `json:"mca_tag_symbol"`
	MCATagName            string    `json:"mca_tag_name,omitempty"`
	MCAChannelID          uint32    `json:"mca_channel_id,omitempty"`
	RFC5646SpokenLanguage string    `json:"rfc5646_spoken_language,omitempty"`
	MCATitle              string    `json:"mca_title,omitempty"`
	MCATitleVersion       string    `json:"mca_title_version,omitempty"`
	MCAAudioContentKind   string    `json:"mca_audio_content_kind,omitempty"`
	MCAAudioElementKind   string    `json:"mca_audio_element_kind,omitempty"`
}

// Label returns the shared label fields.
func (d *MCALabelSubDescriptor) Label() *MCALabelSubDescriptor { return d }

func (d *MCALabelSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemMCALabelDictionaryID:
		return true, decodeUL(v, &d.MCALabelDictionaryID)
	case ElemMCALinkID:
		return true, decodeUID(v, &d.MCALinkID)
	case ElemMCATagSymbol:
		return true, decodeUTF16(v, &d.MCATagSymbol)
	case ElemMCATagName:
		return true, decodeUTF16(v, &d.MCATagName)
	case ElemMCAChannelID:
		return true, decodeU32(v, &d.MCAChannelID)
	case ElemRFC5646SpokenLanguage:
		return true, decodeISO8859(v, &d.RFC5646SpokenLanguage)
	case ElemMCATitle:
		return true, decodeUTF16(v, &d.MCATitle)
	case ElemMCATitleVersion:
		return true, decodeUTF16(v, &d.MCATitleVersion)
	case ElemMCAAudioContentKind:
		return true, decodeUTF16(v, &d.MCAAudioContentKind)
	case ElemMCAAudioElementKind:
		return true, decodeUTF16(v, &d.MCAAudioElementKind)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// AudioChannelLabelSubDescriptor labels one audio channel.
type AudioChannelLabelSubDescriptor struct {
	MCALabelSubDescriptor
	SoundfieldGroupLinkID types.UID `json:"soundfield_group_link_id,omitzero"`
}

func (d *AudioChannelLabelSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemSoundfieldGroupLinkID {
		return true, decodeUID(v, &d.SoundfieldGroupLinkID)
	}
	return d.MCALabelSubDescriptor.decodeItem(ul, v)
}

// SoundfieldGroupLabelSubDescriptor labels a group of channels.
type SoundfieldGroupLabelSubDescriptor struct {
	MCALabelSubDescriptor
	GroupOfSoundfieldGroupsLinkID []types.UID `json:"group_of_soundfield_groups_link_id,omitempty"`
}

func (d *SoundfieldGroupLabelSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemGroupOfSoundfieldGroupsLinkID {
		return true, decodeUIDs(v, &d.GroupOfSoundfieldGroupsLinkID)
	}
	return d.MCALabelSubDescriptor.decodeItem(ul, v)
}

// GroupOfSoundfieldGroupsLabelSubDescriptor labels a group of soundfield groups.
type GroupOfSoundfieldGroupsLabelSubDescriptor struct {
	MCALabelSubDescriptor
}

// IABSoundfieldLabelSubDescriptor labels an IAB soundfield.
type IABSoundfieldLabelSubDescriptor struct {
	MCALabelSubDescriptor
}

// ADMSoundfieldGroupLabelSubDescriptor ties a soundfield group to ADM metadata.
type ADMSoundfieldGroupLabelSubDescriptor struct {
	SoundfieldGroupLabelSubDescriptor
	RIFFChunkStreamIDLink2 uint32 `json:"riff_chunk_stream_id_link2"`
	ADMAudioProgrammeID    string `json:"adm_audio_programme_id,omitempty"`
	ADMAudioContentID      string `json:"adm_audio_content_id,omitempty"`
	ADMAudioObjectID       string `json:"adm_audio_object_id,omitempty"`
}

func (d *ADMSoundfieldGroupLabelSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemRIFFChunkStreamIDLink2:
		return true, decodeU32(v, &d.RIFFChunkStreamIDLink2)
	case ElemADMAudioProgrammeID:
		return true, decodeASCII(v, &d.ADMAudioProgrammeID)
	case ElemADMAudioContentID:
		return true, decodeASCII(v, &d.ADMAudioContentID)
	case ElemADMAudioObjectID:
		return true, decodeASCII(v, &d.ADMAudioObjectID)
	}
	return d.SoundfieldGroupLabelSubDescriptor.decodeItem(ul, v)
}

// ContainerConstraintsSubDescriptor marks conformance to container constraints.
type ContainerConstraintsSubDescriptor struct {
	SetHeader
}

// TimedTextResourceSubDescriptor describes one ancillary timed text resource.
type TimedTextResourceSubDescriptor struct {
	SetHeader
	AncillaryResourceID types.UID `json:"ancillary_resource_id"`
	MIMEMediaType       string    `json:"mime_media_type"`
	EssenceStreamID     uint32    `json:"essence_stream_id"`
}

func (d *TimedTextResourceSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemAncillaryResourceID:
		return true, decodeUID(v, &d.AncillaryResourceID)
	case ElemMIMEMediaType:
		return true, decodeISO8859(v, &d.MIMEMediaType)
	case ElemEssenceStreamID:
		return true, decodeU32(v, &d.EssenceStreamID)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// ACESPictureSubDescriptor carries ACES mastering display metadata.
type ACESPictureSubDescriptor struct {
	SetHeader
	AuthoringInformation      string   `json:"authoring_information,omitempty"`
	MasteringDisplayPrimaries []uint16 `json:"mastering_display_primaries,omitempty"`
	MasteringWhitePoint       []uint16 `json:"mastering_white_point,omitempty"`
	MaxLuminance              uint32   `json:"max_luminance,omitempty"`
	MinLuminance              uint32   `json:"min_luminance,omitempty"`
}

func (d *ACESPictureSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemACESAuthoringInformation:
		return true, decodeUTF16(v, &d.AuthoringInformation)
	case ElemACESMasteringDisplayPrimaries:
		return true, decodeU16s(v, &d.MasteringDisplayPrimaries)
	case ElemACESMasteringWhitePoint:
		return true, decodeU16s(v, &d.MasteringWhitePoint)
	case ElemACESMaxLuminance:
		return true, decodeU32(v, &d.MaxLuminance)
	case ElemACESMinLuminance:
		return true, decodeU32(v, &d.MinLuminance)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// TargetFrameSubDescriptor describes an ancillary target frame resource.
type TargetFrameSubDescriptor struct {
	SetHeader
	AncillaryResourceID                types.UID `json:"ancillary_resource_id"`
	MediaType                          string    `json:"media_type"`
	TargetFrameIndex                   uint64    `json:"target_frame_index"`
	TransferCharacteristic             types.UL  `json:"transfer_characteristic"`
	ColorPrimaries                     types.UL  `json:"color_primaries"`
	ComponentMaxRef                    uint32    `json:"component_max_ref"`
	ComponentMinRef                    uint32    `json:"component_min_ref"`
	EssenceStreamID                    uint32    `json:"essence_stream_id"`
	ACESPictureSubDescriptorInstanceID types.UID `json:"aces_picture_sub_descriptor_instance_id,omitzero"`
	ViewingEnvironment                 types.UL  `json:"viewing_environment,omitzero"`
}

func (d *TargetFrameSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemTargetFrameAncillaryResourceID:
		return true, decodeUID(v, &d.AncillaryResourceID)
	case ElemTargetFrameMediaType:
		return true, decodeUTF16(v, &d.MediaType)
	case ElemTargetFrameIndex:
		return true, decodeU64(v, &d.TargetFrameIndex)
	case ElemTargetFrameTransferCharacteristic:
		return true, decodeUL(v, &d.TransferCharacteristic)
	case ElemTargetFrameColorPrimaries:
		return true, decodeUL(v, &d.ColorPrimaries)
	case ElemTargetFrameComponentMaxRef:
		return true, decodeU32(v, &d.ComponentMaxRef)
	case ElemTargetFrameComponentMinRef:
		return true, decodeU32(v, &d.ComponentMinRef)
	case ElemTargetFrameEssenceStreamID:
		return true, decodeU32(v, &d.EssenceStreamID)
	case ElemTargetFrameACESPictureSubDescriptor:
		return true, decodeUID(v, &d.ACESPictureSubDescriptorInstanceID)
	case ElemTargetFrameViewingEnvironment:
		return true, decodeUL(v, &d.ViewingEnvironment)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// PHDRMetadataTrackSubDescriptor links a picture track to its PHDR metadata track.
type PHDRMetadataTrackSubDescriptor struct {
	SetHeader
	DataDefinition   types.UL `json:"data_definition"`
	SourceTrackID    uint32   `json:"source_track_id"`
	SimplePayloadSID uint32   `json:"simple_payload_sid"`
}

func (d *PHDRMetadataTrackSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemPHDRDataDefinition:
		return true, decodeUL(v, &d.DataDefinition)
	case ElemPHDRSourceTrackID:
		return true, decodeU32(v, &d.SourceTrackID)
	case ElemPHDRSimplePayloadSID:
		return true, decodeU32(v, &d.SimplePayloadSID)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// ADMCHNASubDescriptor carries the chna chunk of an ADM audio file. Its
// channel mappings are referenced from here rather than from the owning
// descriptor.
type ADMCHNASubDescriptor struct {
	SetHeader
	NumLocalChannels     uint32      `json:"num_local_channels"`
	NumADMAudioTrackUIDs uint32      `json:"num_adm_audio_track_uids"`
	ADMChannelMappings   []types.UID `json:"adm_channel_mappings"`
}

// AdditionalReferences returns the channel mappings.
func (d *ADMCHNASubDescriptor) AdditionalReferences() []types.UID { return d.ADMChannelMappings }

func (d *ADMCHNASubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemNumLocalChannels:
		return true, decodeU32(v, &d.NumLocalChannels)
	case ElemNumADMAudioTrackUIDs:
		return true, decodeU32(v, &d.NumADMAudioTrackUIDs)
	case ElemADMChannelMappingsArray:
		return true, decodeUIDs(v, &d.ADMChannelMappings)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// ADMChannelMapping maps one local channel to ADM track and format IDs.
type ADMChannelMapping struct {
	SetHeader
	LocalChannelID               uint32 `json:"local_channel_id"`
	ADMAudioTrackUID             string `json:"adm_audio_track_uid"`
	ADMAudioTrackChannelFormatID string `json:"adm_audio_track_channel_format_id"`
	ADMAudioPackFormatID         string `json:"adm_audio_pack_format_id,omitempty"`
}

func (d *ADMChannelMapping) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemLocalChannelID:
		return true, decodeU32(v, &d.LocalChannelID)
	case ElemADMAudioTrackUID:
		return true, decodeASCII(v, &d.ADMAudioTrackUID)
	case ElemADMAudioTrackChannelFormat:
		return true, decodeASCII(v, &d.ADMAudioTrackChannelFormatID)
	case ElemADMAudioPackFormatID:
		return true, decodeASCII(v, &d.ADMAudioPackFormatID)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// ADMAudioMetadataSubDescriptor links a descriptor to an ADM RIFF chunk.
type ADMAudioMetadataSubDescriptor struct {
	SetHeader
	RIFFChunkStreamIDLink1 uint32     `json:"riff_chunk_stream_id_link1"`
	ADMProfileLevels       []types.UL `json:"adm_profile_levels,omitempty"`
}

func (d *ADMAudioMetadataSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemRIFFChunkStreamIDLink1:
		return true, decodeU32(v, &d.RIFFChunkStreamIDLink1)
	case ElemADMProfileLevelULBatch:
		return true, decodeULs(v, &d.ADMProfileLevels)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// RIFFChunkDefinitionSubDescriptor identifies a RIFF chunk carried in a
// generic stream.
type RIFFChunkDefinitionSubDescriptor struct {
	SetHeader
	RIFFChunkStreamID uint32    `json:"riff_chunk_stream_id"`
	RIFFChunkID       string    `json:"riff_chunk_id"`
	RIFFChunkUUID     types.UID `json:"riff_chunk_uuid,omitzero"`
	RIFFChunkHashSHA1 []byte    `json:"riff_chunk_hash_sha1,omitempty"`
}

func (d *RIFFChunkDefinitionSubDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemRIFFChunkStreamID:
		return true, decodeU32(v, &d.RIFFChunkStreamID)
	case ElemRIFFChunkID:
		if err := wantSize(v, 4); err != nil {
			return true, err
		}
		return true, decodeASCII(v, &d.RIFFChunkID)
	case ElemRIFFChunkUUID:
		return true, decodeUID(v, &d.RIFFChunkUUID)
	case ElemRIFFChunkHashSHA1:
		if err := wantSize(v, 20); err != nil {
			return true, err
		}
		return true, decodeBytes(v, &d.RIFFChunkHashSHA1)
	}
	return d.SetHeader.decodeItem(ul, v)
}
