package metadata

import "github.com/Netflix/photon-sub001/pkg/types"

// GenericDescriptor holds the references every essence descriptor carries.
type GenericDescriptor struct {
	SetHeader
	Locators       []types.UID `json:"locators,omitempty"`
	SubDescriptors []types.UID `json:"sub_descriptors,omitempty"`
}

func (d *GenericDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemLocators:
		return true, decodeUIDs(v, &d.Locators)
	case ElemSubDescriptors:
		return true, decodeUIDs(v, &d.SubDescriptors)
	}
	return d.SetHeader.decodeItem(ul, v)
}

// FileDescriptor holds the fields shared by all essence descriptors.
type FileDescriptor struct {
	GenericDescriptor
	LinkedTrackID     uint32         `json:"linked_track_id,omitempty"`
	SampleRate        types.Rational `json:"sample_rate"`
	ContainerDuration int64          `json:"container_duration,omitempty"`
	EssenceContainer  types.UL       `json:"essence_container"`
	Codec             types.UL       `json:"codec,omitzero"`
}

// File returns the shared descriptor fields.
func (d *FileDescriptor) File() *FileDescriptor { return d }

func (d *FileDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemLinkedTrackID:
		return true, decodeU32(v, &d.LinkedTrackID)
	case ElemSampleRate:
		return true, decodeRational(v, &d.SampleRate)
	case ElemContainerDuration:
		return true, decodeI64(v, &d.ContainerDuration)
	case ElemEssenceContainer:
		return true, decodeUL(v, &d.EssenceContainer)
	case ElemCodec:
		return true, decodeUL(v, &d.Codec)
	}
	return d.GenericDescriptor.decodeItem(ul, v)
}

// Descriptor is implemented by every essence descriptor record.
type Descriptor interface {
	Record
	File() *FileDescriptor
}

// MultipleDescriptor groups the descriptors of a multi-track container.
type MultipleDescriptor struct {
	FileDescriptor
	FileDescriptors []types.UID `json:"file_descriptors"`
}

func (d *MultipleDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemFileDescriptors {
		return true, decodeUIDs(v, &d.FileDescriptors)
	}
	return d.FileDescriptor.decodeItem(ul, v)
}

// PictureDescriptor is the generic picture essence descriptor.
type PictureDescriptor struct {
	FileDescriptor
	SignalStandard         uint8          `json:"signal_standard,omitempty"`
	FrameLayout            uint8          `json:"frame_layout"`
	StoredWidth            uint32         `json:"stored_width"`
	StoredHeight           uint32         `json:"stored_height"`
	SampledWidth           uint32         `json:"sampled_width,omitempty"`
	SampledHeight          uint32         `json:"sampled_height,omitempty"`
	DisplayWidth           uint32         `json:"display_width,omitempty"`
	DisplayHeight          uint32         `json:"display_height,omitempty"`
	AspectRatio            types.Rational `json:"aspect_ratio"`
	VideoLineMap           []int32        `json:"video_line_map,omitempty"`
	PictureEssenceCoding   types.UL       `json:"picture_essence_coding,omitzero"`
	TransferCharacteristic types.UL       `json:"transfer_characteristic,omitzero"`
	ColorPrimaries         types.UL       `json:"color_primaries,omitzero"`
	CodingEquations        types.UL       `json:"coding_equations,omitzero"`
}

func (d *PictureDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemSignalStandard:
		return true, decodeU8(v, &d.SignalStandard)
	case ElemFrameLayout:
		return true, decodeU8(v, &d.FrameLayout)
	case ElemStoredWidth:
		return true, decodeU32(v, &d.StoredWidth)
	case ElemStoredHeight:
		return true, decodeU32(v, &d.StoredHeight)
	case ElemSampledWidth:
		return true, decodeU32(v, &d.SampledWidth)
	case ElemSampledHeight:
		return true, decodeU32(v, &d.SampledHeight)
	case ElemDisplayWidth:
		return true, decodeU32(v, &d.DisplayWidth)
	case ElemDisplayHeight:
		return true, decodeU32(v, &d.DisplayHeight)
	case ElemAspectRatio:
		return true, decodeRational(v, &d.AspectRatio)
	case ElemVideoLineMap:
		return true, decodeI32s(v, &d.VideoLineMap)
	case ElemPictureEssenceCoding:
		return true, decodeUL(v, &d.PictureEssenceCoding)
	case ElemTransferCharacteristic:
		return true, decodeUL(v, &d.TransferCharacteristic)
	case ElemColorPrimaries:
		return true, decodeUL(v, &d.ColorPrimaries)
	case ElemCodingEquations:
		return true, decodeUL(v, &d.CodingEquations)
	}
	return d.FileDescriptor.decodeItem(ul, v)
}

// CDCIDescriptor describes color-difference component picture essence.
type CDCIDescriptor struct {
	PictureDescriptor
	ComponentDepth        uint32 `json:"component_depth"`
	HorizontalSubsampling uint32 `json:"horizontal_subsampling"`
	VerticalSubsampling   uint32 `json:"vertical_subsampling,omitempty"`
	ColorSiting           uint8  `json:"color_siting,omitempty"`
	BlackRefLevel         uint32 `json:"black_ref_level,omitempty"`
	WhiteRefLevel         uint32 `json:"white_ref_level,omitempty"`
	ColorRange            uint32 `json:"color_range,omitempty"`
}

func (d *CDCIDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemComponentDepth:
		return true, decodeU32(v, &d.ComponentDepth)
	case ElemHorizontalSubsampling:
		return true, decodeU32(v, &d.HorizontalSubsampling)
	case ElemVerticalSubsampling:
		return true, decodeU32(v, &d.VerticalSubsampling)
	case ElemColorSiting:
		return true, decodeU8(v, &d.ColorSiting)
	case ElemBlackRefLevel:
		return true, decodeU32(v, &d.BlackRefLevel)
	case ElemWhiteRefLevel:
		return true, decodeU32(v, &d.WhiteRefLevel)
	case ElemColorRange:
		return true, decodeU32(v, &d.ColorRange)
	}
	return d.PictureDescriptor.decodeItem(ul, v)
}

// RGBADescriptor describes component (RGB) picture essence.
type RGBADescriptor struct {
	PictureDescriptor
	ComponentMaxRef uint32 `json:"component_max_ref,omitempty"`
	ComponentMinRef uint32 `json:"component_min_ref,omitempty"`
	PixelLayout     []byte `json:"pixel_layout,omitempty"`
}

func (d *RGBADescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemComponentMaxRef:
		return true, decodeU32(v, &d.ComponentMaxRef)
	case ElemComponentMinRef:
		return true, decodeU32(v, &d.ComponentMinRef)
	case ElemPixelLayout:
		return true, decodeBytes(v, &d.PixelLayout)
	}
	return d.PictureDescriptor.decodeItem(ul, v)
}

// SoundDescriptor is the generic sound essence descriptor.
type SoundDescriptor struct {
	FileDescriptor
	AudioSamplingRate types.Rational `json:"audio_sampling_rate"`
	Locked            bool           `json:"locked"`
	ChannelCount      uint32         `json:"channel_count"`
	QuantizationBits  uint32         `json:"quantization_bits"`
	SoundCompression  types.UL       `json:"sound_compression,omitzero"`
}

func (d *SoundDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemAudioSamplingRate:
		return true, decodeRational(v, &d.AudioSamplingRate)
	case ElemLocked:
		return true, decodeBool(v, &d.Locked)
	case ElemChannelCount:
		return true, decodeU32(v, &d.ChannelCount)
	case ElemQuantizationBits:
		return true, decodeU32(v, &d.QuantizationBits)
	case ElemSoundCompression:
		return true, decodeUL(v, &d.SoundCompression)
	}
	return d.FileDescriptor.decodeItem(ul, v)
}

// WaveAudioDescriptor describes PCM audio in broadcast wave layout.
type WaveAudioDescriptor struct {
	SoundDescriptor
	BlockAlign        uint16   `json:"block_align"`
	AvgBytesPerSecond uint32   `json:"avg_bps"`
	ChannelAssignment types.UL `json:"channel_assignment,omitzero"`
}

func (d *WaveAudioDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemBlockAlign:
		return true, decodeU16(v, &d.BlockAlign)
	case ElemAvgBytesPerSecond:
		return true, decodeU32(v, &d.AvgBytesPerSecond)
	case ElemChannelAssignment:
		return true, decodeUL(v, &d.ChannelAssignment)
	}
	return d.SoundDescriptor.decodeItem(ul, v)
}

// IABEssenceDescriptor describes immersive audio bitstream essence.
type IABEssenceDescriptor struct {
	SoundDescriptor
}

// DataDescriptor is the generic data essence descriptor.
type DataDescriptor struct {
	FileDescriptor
	DataEssenceCoding types.UL `json:"data_essence_coding,omitzero"`
}

func (d *DataDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemDataEssenceCoding {
		return true, decodeUL(v, &d.DataEssenceCoding)
	}
	return d.FileDescriptor.decodeItem(ul, v)
}

// ISXDDataDescriptor describes isochronous XML document essence.
type ISXDDataDescriptor struct {
	DataDescriptor
	NamespaceURI string `json:"namespace_uri"`
}

func (d *ISXDDataDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemISXDNamespaceURI {
		return true, decodeASCII(v, &d.NamespaceURI)
	}
	return d.DataDescriptor.decodeItem(ul, v)
}

// TimedTextDescriptor describes timed text essence.
type TimedTextDescriptor struct {
	DataDescriptor
	ResourceID   types.UID `json:"resource_id"`
	UCSEncoding  string    `json:"ucs_encoding"`
	NamespaceURI string    `json:"namespace_uri"`
}

func (d *TimedTextDescriptor) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemResourceID:
		return true, decodeUID(v, &d.ResourceID)
	case ElemUCSEncoding:
		return true, decodeUTF16(v, &d.UCSEncoding)
	case ElemNamespaceURI:
		return true, decodeUTF16(v, &d.NamespaceURI)
	}
	return d.DataDescriptor.decodeItem(ul, v)
}
