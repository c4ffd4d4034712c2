package metadata

import "github.com/Netflix/photon-sub001/pkg/types"

// Preface is the root of the header metadata.
type Preface struct {
	SetHeader
	LastModifiedDate   types.Timestamp `json:"last_modified_date"`
	Version            uint16          `json:"version"`
	ObjectModelVersion uint32          `json:"object_model_version,omitempty"`
	PrimaryPackage     types.UID       `json:"primary_package,omitzero"` // weak reference
	Identifications    []types.UID     `json:"identifications"`
	ContentStorage     types.UID       `json:"content_storage"`
	OperationalPattern types.UL        `json:"operational_pattern"`
	EssenceContainers  []types.UL      `json:"essence_containers"`
	DMSchemes          []types.UL      `json:"dm_schemes"`
}

func (p *Preface) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemLastModifiedDate:
		return true, decodeTimestamp(v, &p.LastModifiedDate)
	case ElemVersion:
		return true, decodeU16(v, &p.Version)
	case ElemObjectModelVersion:
		return true, decodeU32(v, &p.ObjectModelVersion)
	case ElemPrimaryPackage:
		return true, decodeUID(v, &p.PrimaryPackage)
	case ElemIdentifications:
		return true, decodeUIDs(v, &p.Identifications)
	case ElemContentStorage:
		return true, decodeUID(v, &p.ContentStorage)
	case ElemOperationalPattern:
		return true, decodeUL(v, &p.OperationalPattern)
	case ElemEssenceContainers:
		return true, decodeULs(v, &p.EssenceContainers)
	case ElemDMSchemes:
		return true, decodeULs(v, &p.DMSchemes)
	}
	return p.SetHeader.decodeItem(ul, v)
}

// Identification names the application that wrote or modified the file.
type Identification struct {
	SetHeader
	ThisGenerationUID types.UID       `json:"this_generation_uid"`
	CompanyName       string          `json:"company_name"`
	ProductName       string          `json:"product_name"`
	ProductVersion    ProductVersion  `json:"product_version"`
	VersionString     string          `json:"version_string"`
	ProductUID        types.UID       `json:"product_uid"`
	ModificationDate  types.Timestamp `json:"modification_date"`
	ToolkitVersion    ProductVersion  `json:"toolkit_version"`
	Platform          string          `json:"platform,omitempty"`
}

func (id *Identification) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemThisGenerationUID:
		return true, decodeUID(v, &id.ThisGenerationUID)
	case ElemCompanyName:
		return true, decodeUTF16(v, &id.CompanyName)
	case ElemProductName:
		return true, decodeUTF16(v, &id.ProductName)
	case ElemProductVersion:
		return true, decodeProductVersion(v, &id.ProductVersion)
	case ElemVersionString:
		return true, decodeUTF16(v, &id.VersionString)
	case ElemProductUID:
		return true, decodeUID(v, &id.ProductUID)
	case ElemModificationDate:
		return true, decodeTimestamp(v, &id.ModificationDate)
	case ElemToolkitVersion:
		return true, decodeProductVersion(v, &id.ToolkitVersion)
	case ElemPlatform:
		return true, decodeUTF16(v, &id.Platform)
	}
	return id.SetHeader.decodeItem(ul, v)
}

// ContentStorage owns the packages and essence container data of the file.
type ContentStorage struct {
	SetHeader
	Packages             []types.UID `json:"packages"`
	EssenceContainerData []types.UID `json:"essence_container_data"`
}

func (cs *ContentStorage) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemPackages:
		return true, decodeUIDs(v, &cs.Packages)
	case ElemEssenceContainerData:
		return true, decodeUIDs(v, &cs.EssenceContainerData)
	}
	return cs.SetHeader.decodeItem(ul, v)
}

// EssenceContainerData links a file package to the streams holding its essence.
type EssenceContainerData struct {
	SetHeader
	LinkedPackageUID types.UMID `json:"linked_package_uid"`
	IndexSID         uint32     `json:"index_sid"`
	BodySID          uint32     `json:"body_sid"`
}

func (e *EssenceContainerData) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemLinkedPackageUID:
		return true, decodeUMID(v, &e.LinkedPackageUID)
	case ElemIndexSID:
		return true, decodeU32(v, &e.IndexSID)
	case ElemBodySID:
		return true, decodeU32(v, &e.BodySID)
	}
	return e.SetHeader.decodeItem(ul, v)
}

// GenericPackage holds the fields shared by material and source packages.
type GenericPackage struct {
	SetHeader
	PackageUID          types.UMID      `json:"package_uid"`
	Name                string          `json:"name,omitempty"`
	Tracks              []types.UID     `json:"tracks"`
	PackageModifiedDate types.Timestamp `json:"package_modified_date"`
	PackageCreationDate types.Timestamp `json:"package_creation_date"`
}

// Package returns the shared package fields.
func (p *GenericPackage) Package() *GenericPackage { return p }

func (p *GenericPackage) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemPackageUID:
		return true, decodeUMID(v, &p.PackageUID)
	case ElemPackageName:
		return true, decodeUTF16(v, &p.Name)
	case ElemTracks:
		return true, decodeUIDs(v, &p.Tracks)
	case ElemPackageModifiedDate:
		return true, decodeTimestamp(v, &p.PackageModifiedDate)
	case ElemPackageCreationDate:
		return true, decodeTimestamp(v, &p.PackageCreationDate)
	}
	return p.SetHeader.decodeItem(ul, v)
}

// MaterialPackage is the output timeline of the file.
type MaterialPackage struct {
	GenericPackage
}

// SourcePackage describes stored essence through its descriptor.
type SourcePackage struct {
	GenericPackage
	Descriptor types.UID `json:"descriptor"`
}

func (p *SourcePackage) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemDescriptor {
		return true, decodeUID(v, &p.Descriptor)
	}
	return p.GenericPackage.decodeItem(ul, v)
}

// GenericTrack holds the fields shared by all track kinds.
type GenericTrack struct {
	SetHeader
	TrackID     uint32    `json:"track_id"`
	TrackNumber uint32    `json:"track_number"`
	TrackName   string    `json:"track_name,omitempty"`
	Sequence    types.UID `json:"sequence"`
}

// Track returns the shared track fields.
func (t *GenericTrack) Track() *GenericTrack { return t }

func (t *GenericTrack) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemTrackID:
		return true, decodeU32(v, &t.TrackID)
	case ElemTrackNumber:
		return true, decodeU32(v, &t.TrackNumber)
	case ElemTrackName:
		return true, decodeUTF16(v, &t.TrackName)
	case ElemTrackSequence:
		return true, decodeUID(v, &t.Sequence)
	}
	return t.SetHeader.decodeItem(ul, v)
}

// TimelineTrack is a track of contiguous edit units.
type TimelineTrack struct {
	GenericTrack
	EditRate types.Rational `json:"edit_rate"`
	Origin   int64          `json:"origin"`
}

func (t *TimelineTrack) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemEditRate:
		return true, decodeRational(v, &t.EditRate)
	case ElemOrigin:
		return true, decodeI64(v, &t.Origin)
	}
	return t.GenericTrack.decodeItem(ul, v)
}

// EventTrack is a track of possibly overlapping events.
type EventTrack struct {
	GenericTrack
	EventEditRate types.Rational `json:"event_edit_rate"`
	EventOrigin   int64          `json:"event_origin"`
}

func (t *EventTrack) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemEventEditRate:
		return true, decodeRational(v, &t.EventEditRate)
	case ElemEventOrigin:
		return true, decodeI64(v, &t.EventOrigin)
	}
	return t.GenericTrack.decodeItem(ul, v)
}

// StaticTrack is a track without a time base.
type StaticTrack struct {
	GenericTrack
}

// StructuralComponent holds the fields shared by sequences and segments.
type StructuralComponent struct {
	SetHeader
	DataDefinition types.UL `json:"data_definition"`
	Duration       int64    `json:"duration"`
	HasDuration    bool     `json:"-"`
}

// Component returns the shared component fields.
func (c *StructuralComponent) Component() *StructuralComponent { return c }

func (c *StructuralComponent) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemDataDefinition:
		return true, decodeUL(v, &c.DataDefinition)
	case ElemDuration:
		c.HasDuration = true
		return true, decodeI64(v, &c.Duration)
	}
	return c.SetHeader.decodeItem(ul, v)
}

// Sequence orders the components of a track.
type Sequence struct {
	StructuralComponent
	StructuralComponents []types.UID `json:"structural_components"`
}

func (s *Sequence) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemStructuralComponents {
		return true, decodeUIDs(v, &s.StructuralComponents)
	}
	return s.StructuralComponent.decodeItem(ul, v)
}

// SourceClip references a track of another package, possibly in another file.
type SourceClip struct {
	StructuralComponent
	StartPosition   int64      `json:"start_position"`
	SourcePackageID types.UMID `json:"source_package_id"`
	SourceTrackID   uint32     `json:"source_track_id"`
}

func (s *SourceClip) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemStartPosition:
		return true, decodeI64(v, &s.StartPosition)
	case ElemSourcePackageID:
		return true, decodeUMID(v, &s.SourcePackageID)
	case ElemSourceTrackID:
		return true, decodeU32(v, &s.SourceTrackID)
	}
	return s.StructuralComponent.decodeItem(ul, v)
}

// TimecodeComponent carries a continuous timecode.
type TimecodeComponent struct {
	StructuralComponent
	RoundedTimecodeBase uint16 `json:"rounded_timecode_base"`
	StartTimecode       int64  `json:"start_timecode"`
	DropFrame           bool   `json:"drop_frame"`
}

func (t *TimecodeComponent) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemRoundedTimecodeBase:
		return true, decodeU16(v, &t.RoundedTimecodeBase)
	case ElemStartTimecode:
		return true, decodeI64(v, &t.StartTimecode)
	case ElemDropFrame:
		return true, decodeBool(v, &t.DropFrame)
	}
	return t.StructuralComponent.decodeItem(ul, v)
}

// Filler is an empty span of a sequence.
type Filler struct {
	StructuralComponent
}

// DMSegment attaches a descriptive framework to a span of tracks.
type DMSegment struct {
	StructuralComponent
	EventStartPosition int64     `json:"event_start_position"`
	EventComment       string    `json:"event_comment,omitempty"`
	TrackIDs           []uint32  `json:"track_ids,omitempty"`
	DMFramework        types.UID `json:"dm_framework,omitzero"`
}

func (s *DMSegment) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemEventStartPosition:
		return true, decodeI64(v, &s.EventStartPosition)
	case ElemEventComment:
		return true, decodeUTF16(v, &s.EventComment)
	case ElemTrackIDs:
		return true, decodeU32s(v, &s.TrackIDs)
	case ElemDMFramework:
		return true, decodeUID(v, &s.DMFramework)
	}
	return s.StructuralComponent.decodeItem(ul, v)
}

// NetworkLocator points at essence by URL.
type NetworkLocator struct {
	SetHeader
	URLString string `json:"url_string"`
}

func (l *NetworkLocator) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemURLString {
		return true, decodeUTF16(v, &l.URLString)
	}
	return l.SetHeader.decodeItem(ul, v)
}

// TextLocator points at essence by a human-readable name.
type TextLocator struct {
	SetHeader
	LocatorName string `json:"locator_name"`
}

func (l *TextLocator) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemLocatorName {
		return true, decodeUTF16(v, &l.LocatorName)
	}
	return l.SetHeader.decodeItem(ul, v)
}
