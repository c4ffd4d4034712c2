package metadata

import "github.com/Netflix/photon-sub001/pkg/types"

// elem parses an element UL and drops its register version byte. Items are
// always matched version-less.
func elem(s string) types.UL { return types.MustParseUL(s).Versionless() }

// Interchange object.
var (
	ElemInstanceUID   = elem("06.0e.2b.34.01.01.01.01.01.01.15.02.00.00.00.00")
	ElemGenerationUID = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.08.00.00.00")
)

// Preface.
var (
	ElemLastModifiedDate   = elem("06.0e.2b.34.01.01.01.02.07.02.01.10.02.04.00.00")
	ElemVersion            = elem("06.0e.2b.34.01.01.01.02.03.01.02.01.05.00.00.00")
	ElemObjectModelVersion = elem("06.0e.2b.34.01.01.01.02.03.01.02.01.04.00.00.00")
	ElemPrimaryPackage     = elem("06.0e.2b.34.01.01.01.04.06.01.01.04.01.08.00.00")
	ElemIdentifications    = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.06.04.00.00")
	ElemContentStorage     = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.02.01.00.00")
	ElemOperationalPattern = elem("06.0e.2b.34.01.01.01.05.01.02.02.03.00.00.00.00")
	ElemEssenceContainers  = elem("06.0e.2b.34.01.01.01.05.01.02.02.10.02.01.00.00")
	ElemDMSchemes          = elem("06.0e.2b.34.01.01.01.05.01.02.02.10.02.02.00.00")
)

// Identification.
var (
	ElemThisGenerationUID = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.01.00.00.00")
	ElemCompanyName       = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.02.01.00.00")
	ElemProductName       = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.03.01.00.00")
	ElemProductVersion    = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.04.00.00.00")
	ElemVersionString     = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.05.01.00.00")
	ElemProductUID        = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.07.00.00.00")
	ElemModificationDate  = elem("06.0e.2b.34.01.01.01.02.07.02.01.10.02.03.00.00")
	ElemToolkitVersion    = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.0a.00.00.00")
	ElemPlatform          = elem("06.0e.2b.34.01.01.01.02.05.20.07.01.06.01.00.00")
)

// ContentStorage and EssenceContainerData.
var (
	ElemPackages             = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.05.01.00.00")
	ElemEssenceContainerData = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.05.02.00.00")
	ElemLinkedPackageUID     = elem("06.0e.2b.34.01.01.01.02.06.01.01.06.01.00.00.00")
	ElemIndexSID             = elem("06.0e.2b.34.01.01.01.04.01.03.04.05.00.00.00.00")
	ElemBodySID              = elem("06.0e.2b.34.01.01.01.04.01.03.04.04.00.00.00.00")
)

// Packages.
var (
	ElemPackageUID          = elem("06.0e.2b.34.01.01.01.01.01.01.15.10.00.00.00.00")
	ElemPackageName         = elem("06.0e.2b.34.01.01.01.01.01.03.03.02.01.00.00.00")
	ElemTracks              = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.06.05.00.00")
	ElemPackageModifiedDate = elem("06.0e.2b.34.01.01.01.02.07.02.01.10.02.05.00.00")
	ElemPackageCreationDate = elem("06.0e.2b.34.01.01.01.02.07.02.01.10.01.03.00.00")
	ElemDescriptor          = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.02.03.00.00")
)

// Tracks.
var (
	ElemTrackID       = elem("06.0e.2b.34.01.01.01.02.01.07.01.01.00.00.00.00")
	ElemTrackNumber   = elem("06.0e.2b.34.01.01.01.02.01.04.01.03.00.00.00.00")
	ElemTrackName     = elem("06.0e.2b.34.01.01.01.02.01.07.01.02.01.00.00.00")
	ElemTrackSequence = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.02.04.00.00")
	ElemEditRate      = elem("06.0e.2b.34.01.01.01.02.05.30.04.05.00.00.00.00")
	ElemOrigin        = elem("06.0e.2b.34.01.01.01.02.07.02.01.03.01.03.00.00")
	ElemEventEditRate = elem("06.0e.2b.34.01.01.01.02.05.30.04.02.00.00.00.00")
	ElemEventOrigin   = elem("06.0e.2b.34.01.01.01.05.07.02.01.03.01.0b.00.00")
)

// Structural components.
var (
	ElemDataDefinition       = elem("06.0e.2b.34.01.01.01.02.04.07.01.00.00.00.00.00")
	ElemDuration             = elem("06.0e.2b.34.01.01.01.02.07.02.02.01.01.03.00.00")
	ElemStructuralComponents = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.06.09.00.00")
	ElemStartPosition        = elem("06.0e.2b.34.01.01.01.02.07.02.01.03.01.04.00.00")
	ElemSourcePackageID      = elem("06.0e.2b.34.01.01.01.02.06.01.01.03.01.00.00.00")
	ElemSourceTrackID        = elem("06.0e.2b.34.01.01.01.02.06.01.01.03.02.00.00.00")
	ElemRoundedTimecodeBase  = elem("06.0e.2b.34.01.01.01.02.04.04.01.01.02.06.00.00")
	ElemStartTimecode        = elem("06.0e.2b.34.01.01.01.02.07.02.01.03.01.05.00.00")
	ElemDropFrame            = elem("06.0e.2b.34.01.01.01.01.04.04.01.01.05.00.00.00")
	ElemEventStartPosition   = elem("06.0e.2b.34.01.01.01.02.07.02.01.03.03.03.00.00")
	ElemEventComment         = elem("06.0e.2b.34.01.01.01.02.05.30.04.04.01.00.00.00")
	ElemTrackIDs             = elem("06.0e.2b.34.01.01.01.04.01.07.01.05.00.00.00.00")
	ElemDMFramework          = elem("06.0e.2b.34.01.01.01.05.06.01.01.04.02.0c.00.00")
)

// Locators.
var (
	ElemURLString   = elem("06.0e.2b.34.01.01.01.01.01.02.01.01.00.00.00.00")
	ElemLocatorName = elem("06.0e.2b.34.01.01.01.02.01.04.01.02.01.00.00.00")
)

// Descriptors.
var (
	ElemLocators               = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.06.03.00.00")
	ElemSubDescriptors         = elem("06.0e.2b.34.01.01.01.09.06.01.01.04.06.10.00.00")
	ElemLinkedTrackID          = elem("06.0e.2b.34.01.01.01.05.06.01.01.03.05.00.00.00")
	ElemSampleRate             = elem("06.0e.2b.34.01.01.01.01.04.06.01.01.00.00.00.00")
	ElemContainerDuration      = elem("06.0e.2b.34.01.01.01.01.04.06.01.02.00.00.00.00")
	ElemEssenceContainer       = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.01.02.00.00")
	ElemCodec                  = elem("06.0e.2b.34.01.01.01.02.06.01.01.04.01.03.00.00")
	ElemFileDescriptors        = elem("06.0e.2b.34.01.01.01.04.06.01.01.04.06.0b.00.00")
	ElemSignalStandard         = elem("06.0e.2b.34.01.01.01.05.04.05.01.13.00.00.00.00")
	ElemFrameLayout            = elem("06.0e.2b.34.01.01.01.01.04.01.03.01.04.00.00.00")
	ElemStoredWidth            = elem("06.0e.2b.34.01.01.01.01.04.01.05.02.02.00.00.00")
	ElemStoredHeight           = elem("06.0e.2b.34.01.01.01.01.04.01.05.02.01.00.00.00")
	ElemSampledWidth           = elem("06.0e.2b.34.01.01.01.01.04.01.05.01.08.00.00.00")
	ElemSampledHeight          = elem("06.0e.2b.34.01.01.01.01.04.01.05.01.07.00.00.00")
	ElemDisplayWidth           = elem("06.0e.2b.34.01.01.01.01.04.01.05.01.0c.00.00.00")
	ElemDisplayHeight          = elem("06.0e.2b.34.01.01.01.01.04.01.05.01.0b.00.00.00")
	ElemAspectRatio            = elem("06.0e.2b.34.01.01.01.01.04.01.01.01.01.00.00.00")
	ElemVideoLineMap           = elem("06.0e.2b.34.01.01.01.02.04.01.03.02.05.00.00.00")
	ElemPictureEssenceCoding   = elem("06.0e.2b.34.01.01.01.02.04.01.06.01.00.00.00.00")
	ElemTransferCharacteristic = elem("06.0e.2b.34.01.01.01.02.04.01.02.01.01.01.02.00")
	ElemColorPrimaries         = elem("06.0e.2b.34.01.01.01.09.04.01.02.01.01.06.01.00")
	ElemCodingEquations        = elem("06.0e.2b.34.01.01.01.02.04.01.02.01.01.03.01.00")
	ElemComponentDepth         = elem("06.0e.2b.34.01.01.01.02.04.01.05.03.0a.00.00.00")
	ElemHorizontalSubsampling  = elem("06.0e.2b.34.01.01.01.01.04.01.05.01.05.00.00.00")
	ElemVerticalSubsampling    = elem("06.0e.2b.34.01.01.01.02.04.01.05.01.10.00.00.00")
	ElemColorSiting            = elem("06.0e.2b.34.01.01.01.01.04.01.05.01.06.00.00.00")
	ElemBlackRefLevel          = elem("06.0e.2b.34.01.01.01.01.04.01.05.03.03.00.00.00")
	ElemWhiteRefLevel          = elem("06.0e.2b.34.01.01.01.01.04.01.05.03.04.00.00.00")
	ElemColorRange             = elem("06.0e.2b.34.01.01.01.02.04.01.05.03.05.00.00.00")
	ElemComponentMaxRef        = elem("06.0e.2b.34.01.01.01.05.04.01.05.03.0b.00.00.00")
	ElemComponentMinRef        = elem("06.0e.2b.34.01.01.01.05.04.01.05.03.0c.00.00.00")
	ElemPixelLayout            = elem("06.0e.2b.34.01.01.01.02.04.01.05.03.06.00.00.00")
	ElemAudioSamplingRate      = elem("06.0e.2b.34.01.01.01.05.04.02.03.01.01.01.00.00")
	ElemLocked                 = elem("06.0e.2b.34.01.01.01.04.04.02.03.01.04.00.00.00")
	ElemChannelCount           = elem("06.0e.2b.34.01.01.01.05.04.02.01.01.04.00.00.00")
	ElemQuantizationBits       = elem("06.0e.2b.34.01.01.01.04.04.02.03.03.04.00.00.00")
	ElemSoundCompression       = elem("06.0e.2b.34.01.01.01.02.04.02.04.02.00.00.00.00")
	ElemBlockAlign             = elem("06.0e.2b.34.01.01.01.05.04.02.03.02.01.00.00.00")
	ElemAvgBytesPerSecond      = elem("06.0e.2b.34.01.01.01.05.04.02.03.03.05.00.00.00")
	ElemChannelAssignment      = elem("06.0e.2b.34.01.01.01.07.04.02.01.01.05.00.00.00")
	ElemDataEssenceCoding      = elem("06.0e.2b.34.01.01.01.03.04.03.03.02.00.00.00.00")
	ElemISXDNamespaceURI       = elem("06.0e.2b.34.01.01.01.0e.04.06.08.06.00.00.00.00")
	ElemResourceID             = elem("06.0e.2b.34.01.01.01.0c.01.01.15.12.00.00.00.00")
	ElemUCSEncoding            = elem("06.0e.2b.34.01.01.01.0c.04.09.05.00.00.00.00.00")
	ElemNamespaceURI           = elem("06.0e.2b.34.01.01.01.0c.01.02.01.05.01.00.00.00")
)

// Multichannel audio labels.
var (
	ElemMCALabelDictionaryID          = elem("06.0e.2b.34.01.01.01.0e.01.03.07.01.01.00.00.00")
	ElemMCATagSymbol                  = elem("06.0e.2b.34.01.01.01.0e.01.03.07.01.02.00.00.00")
	ElemMCATagName                    = elem("06.0e.2b.34.01.01.01.0e.01.03.07.01.03.00.00.00")
	ElemGroupOfSoundfieldGroupsLinkID = elem("06.0e.2b.34.01.01.01.0e.01.03.07.01.04.00.00.00")
	ElemMCALinkID                     = elem("06.0e.2b.34.01.01.01.0e.01.03.07.01.05.00.00.00")
	ElemSoundfieldGroupLinkID         = elem("06.0e.2b.34.01.01.01.0e.01.03.07.01.06.00.00.00")
	ElemMCAChannelID                  = elem("06.0e.2b.34.01.01.01.0e.01.03.04.0a.00.00.00.00")
	ElemRFC5646SpokenLanguage         = elem("06.0e.2b.34.01.01.01.0d.03.01.01.02.03.15.00.00")
	ElemMCATitle                      = elem("06.0e.2b.34.01.01.01.0e.01.05.10.00.00.00.00.00")
	ElemMCATitleVersion               = elem("06.0e.2b.34.01.01.01.0e.01.05.11.00.00.00.00.00")
	ElemMCAAudioContentKind           = elem("06.0e.2b.34.01.01.01.0e.03.02.01.02.20.00.00.00")
	ElemMCAAudioElementKind           = elem("06.0e.2b.34.01.01.01.0e.03.02.01.02.21.00.00.00")
)

// JPEG 2000 picture sub-descriptor.
var (
	ElemJ2KRsize                  = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.01.00.00.00")
	ElemJ2KXsize                  = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.02.00.00.00")
	ElemJ2KYsize                  = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.03.00.00.00")
	ElemJ2KXOsize                 = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.04.00.00.00")
	ElemJ2KYOsize                 = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.05.00.00.00")
	ElemJ2KXTsize                 = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.06.00.00.00")
	ElemJ2KYTsize                 = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.07.00.00.00")
	ElemJ2KXTOsize                = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.08.00.00.00")
	ElemJ2KYTOsize                = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.09.00.00.00")
	ElemJ2KCsize                  = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.0a.00.00.00")
	ElemJ2KPictureComponentSizing = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.0b.00.00.00")
	ElemJ2KCodingStyleDefault     = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.0c.00.00.00")
	ElemJ2KQuantizationDefault    = elem("06.0e.2b.34.01.01.01.0a.04.01.06.03.0d.00.00.00")
	ElemJ2KJ2CLayout              = elem("06.0e.2b.34.01.01.01.0e.04.01.06.03.0e.00.00.00")
)

// Timed text resources, ACES and target frames.
var (
	ElemAncillaryResourceID = elem("06.0e.2b.34.01.01.01.0c.01.01.15.13.00.00.00.00")
	ElemMIMEMediaType       = elem("06.0e.2b.34.01.01.01.0c.04.09.02.01.00.00.00.00")
	ElemEssenceStreamID     = elem("06.0e.2b.34.01.01.01.0c.01.03.04.01.00.00.00.00")

	ElemACESAuthoringInformation      = elem("06.0e.2b.34.01.01.01.0e.04.01.06.0a.01.00.00.00")
	ElemACESMasteringDisplayPrimaries = elem("06.0e.2b.34.01.01.01.0e.04.01.06.0a.02.00.00.00")
	ElemACESMasteringWhitePoint       = elem("06.0e.2b.34.01.01.01.0e.04.01.06.0a.03.00.00.00")
	ElemACESMaxLuminance              = elem("06.0e.2b.34.01.01.01.0e.04.01.06.0a.04.00.00.00")
	ElemACESMinLuminance              = elem("06.0e.2b.34.01.01.01.0e.04.01.06.0a.05.00.00.00")

	ElemTargetFrameAncillaryResourceID      = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.01.00.00.00")
	ElemTargetFrameMediaType                = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.02.00.00.00")
	ElemTargetFrameIndex                    = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.03.00.00.00")
	ElemTargetFrameTransferCharacteristic   = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.04.00.00.00")
	ElemTargetFrameColorPrimaries           = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.05.00.00.00")
	ElemTargetFrameComponentMaxRef          = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.06.00.00.00")
	ElemTargetFrameComponentMinRef          = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.07.00.00.00")
	ElemTargetFrameEssenceStreamID          = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.08.00.00.00")
	ElemTargetFrameACESPictureSubDescriptor = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.09.00.00.00")
	ElemTargetFrameViewingEnvironment       = elem("06.0e.2b.34.01.01.01.0e.04.01.06.09.0a.00.00.00")
)

// PHDR metadata track.
var (
	ElemPHDRDataDefinition   = elem("06.0e.2b.34.01.01.01.05.0e.09.06.07.01.01.01.01")
	ElemPHDRSourceTrackID    = elem("06.0e.2b.34.01.01.01.05.0e.09.06.07.01.01.01.02")
	ElemPHDRSimplePayloadSID = elem("06.0e.2b.34.01.01.01.05.0e.09.06.07.01.01.01.04")
)

// ADM and RIFF chunk sub-descriptors.
var (
	ElemRIFFChunkStreamID          = elem("06.0e.2b.34.01.01.01.0e.04.06.0f.01.00.00.00.00")
	ElemRIFFChunkID                = elem("06.0e.2b.34.01.01.01.0e.04.06.0f.02.00.00.00.00")
	ElemRIFFChunkUUID              = elem("06.0e.2b.34.01.01.01.0e.04.06.0f.03.00.00.00.00")
	ElemRIFFChunkHashSHA1          = elem("06.0e.2b.34.01.01.01.0e.04.06.0f.04.00.00.00.00")
	ElemRIFFChunkStreamIDLink1     = elem("06.0e.2b.34.01.01.01.0e.04.06.0f.05.00.00.00.00")
	ElemRIFFChunkStreamIDLink2     = elem("06.0e.2b.34.01.01.01.0e.04.06.0f.06.00.00.00.00")
	ElemNumLocalChannels           = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.01.00.00.00")
	ElemNumADMAudioTrackUIDs       = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.02.00.00.00")
	ElemADMChannelMappingsArray    = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.03.00.00.00")
	ElemLocalChannelID             = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.04.00.00.00")
	ElemADMAudioTrackUID           = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.05.00.00.00")
	ElemADMAudioTrackChannelFormat = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.06.00.00.00")
	ElemADMAudioPackFormatID       = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.07.00.00.00")
	ElemADMProfileLevelULBatch     = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.08.00.00.00")
	ElemADMAudioProgrammeID        = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.09.00.00.00")
	ElemADMAudioContentID          = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.0a.00.00.00")
	ElemADMAudioObjectID           = elem("06.0e.2b.34.01.01.01.0e.04.02.03.05.0b.00.00.00")
)

// Text-based descriptive metadata.
var (
	ElemTextBasedObject         = elem("06.0e.2b.34.01.01.01.0c.06.01.01.04.05.41.01.00")
	ElemTextMIMEMediaType       = elem("06.0e.2b.34.01.01.01.0c.04.09.02.02.00.00.00.00")
	ElemRFC5646TextLanguageCode = elem("06.0e.2b.34.01.01.01.0c.03.01.01.02.02.14.00.00")
	ElemTextDataDescription     = elem("06.0e.2b.34.01.01.01.0c.03.02.01.06.03.02.00.00")
	ElemGenericStreamID         = elem("06.0e.2b.34.01.01.01.0c.01.03.04.08.00.00.00.00")
)
