package graph

import (
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Node is one resolved set, or a placeholder for a set that could not be
// resolved.
type Node interface {
	InstanceUID() types.UID
	Key() types.UL
	Kind() metadata.Kind
	// Children returns the strongly referenced nodes in reference order.
	Children() []Node
}

// set carries the raw record behind a node.
type set struct {
	Record metadata.Record `json:"record"`
}

func (s set) InstanceUID() types.UID { return s.Record.Header().InstanceUID }
func (s set) Key() types.UL          { return s.Record.Header().Key }
func (s set) Kind() metadata.Kind    { return s.Record.Header().Kind }

// Preface is the root of the graph.
type Preface struct {
	set
	Identifications []*Identification `json:"identifications,omitempty"`
	ContentStorage  *ContentStorage   `json:"content_storage"`
}

// Set returns the raw Preface.
func (p *Preface) Set() *metadata.Preface { return p.Record.(*metadata.Preface) }

func (p *Preface) Children() []Node {
	out := make([]Node, 0, len(p.Identifications)+1)
	for _, id := range p.Identifications {
		out = append(out, id)
	}
	if p.ContentStorage != nil {
		out = append(out, p.ContentStorage)
	}
	return out
}

// Identification records the application that wrote or modified the file.
type Identification struct {
	set
}

// Set returns the raw Identification.
func (i *Identification) Set() *metadata.Identification { return i.Record.(*metadata.Identification) }

func (*Identification) Children() []Node { return nil }

// ContentStorage owns the packages and essence container data.
type ContentStorage struct {
	set
	Packages             []*Package              `json:"packages"`
	EssenceContainerData []*EssenceContainerData `json:"essence_container_data,omitempty"`
}

func (cs *ContentStorage) Children() []Node {
	out := make([]Node, 0, len(cs.Packages)+len(cs.EssenceContainerData))
	for _, p := range cs.Packages {
		out = append(out, p)
	}
	for _, e := range cs.EssenceContainerData {
		out = append(out, e)
	}
	return out
}

// EssenceContainerData links a file package to its body and index streams.
// Package is nil when the linked package is not in this file.
type EssenceContainerData struct {
	set
	Package *Package `json:"-"`
}

// Set returns the raw EssenceContainerData.
func (e *EssenceContainerData) Set() *metadata.EssenceContainerData {
	return e.Record.(*metadata.EssenceContainerData)
}

func (*EssenceContainerData) Children() []Node { return nil }

// Package is a material or source package.
type Package struct {
	set
	Tracks     []*Track    `json:"tracks"`
	Descriptor *Descriptor `json:"descriptor,omitempty"`
}

// Generic returns the fields shared by both package kinds.
func (p *Package) Generic() *metadata.GenericPackage {
	switch r := p.Record.(type) {
	case *metadata.MaterialPackage:
		return &r.GenericPackage
	case *metadata.SourcePackage:
		return &r.GenericPackage
	}
	return nil
}

// UMID returns the package UID.
func (p *Package) UMID() types.UMID { return p.Generic().PackageUID }

// IsMaterial reports whether p is a material package.
func (p *Package) IsMaterial() bool { return p.Kind() == metadata.KindMaterialPackage }

func (p *Package) Children() []Node {
	out := make([]Node, 0, len(p.Tracks)+1)
	for _, t := range p.Tracks {
		out = append(out, t)
	}
	if p.Descriptor != nil {
		out = append(out, p.Descriptor)
	}
	return out
}

// Track is a timeline, event or static track.
type Track struct {
	set
	Sequence *Sequence `json:"sequence"`
}

// Generic returns the fields shared by all track kinds.
func (t *Track) Generic() *metadata.GenericTrack {
	switch r := t.Record.(type) {
	case *metadata.TimelineTrack:
		return &r.GenericTrack
	case *metadata.EventTrack:
		return &r.GenericTrack
	case *metadata.StaticTrack:
		return &r.GenericTrack
	}
	return nil
}

func (t *Track) Children() []Node {
	if t.Sequence == nil {
		return nil
	}
	return []Node{t.Sequence}
}

// Sequence orders the components of a track. Components holds
// *SourceClip, *TimecodeComponent, *DescriptiveMarker, *Component, nested
// *Sequence or *Placeholder values.
type Sequence struct {
	set
	Components []Node `json:"components"`
}

// Set returns the raw Sequence.
func (s *Sequence) Set() *metadata.Sequence { return s.Record.(*metadata.Sequence) }

func (s *Sequence) Children() []Node { return s.Components }

// SourceClip references a track of a package that may live in another file.
// It is never linked inside one file's graph; see Graph.PackageByUMID.
type SourceClip struct {
	set
}

// Set returns the raw SourceClip.
func (c *SourceClip) Set() *metadata.SourceClip { return c.Record.(*metadata.SourceClip) }

func (*SourceClip) Children() []Node { return nil }

// TimecodeComponent is a timecode track segment.
type TimecodeComponent struct {
	set
}

// Set returns the raw TimecodeComponent.
func (c *TimecodeComponent) Set() *metadata.TimecodeComponent {
	return c.Record.(*metadata.TimecodeComponent)
}

func (*TimecodeComponent) Children() []Node { return nil }

// DescriptiveMarker is a DM segment with its framework.
type DescriptiveMarker struct {
	set
	Framework Node `json:"framework,omitempty"`
}

// Set returns the raw DMSegment.
func (m *DescriptiveMarker) Set() *metadata.DMSegment { return m.Record.(*metadata.DMSegment) }

func (m *DescriptiveMarker) Children() []Node {
	if m.Framework == nil {
		return nil
	}
	return []Node{m.Framework}
}

// Component is a structural component without references, such as Filler.
type Component struct {
	set
}

func (*Component) Children() []Node { return nil }

// Descriptor is an essence descriptor. SubDescriptors is the effective list:
// the descriptor's own references followed by those reached through
// sub-descriptors that reference further sub-descriptors, without duplicates.
type Descriptor struct {
	set
	SubDescriptors  []Node        `json:"sub_descriptors"`
	Locators        []Node        `json:"locators,omitempty"`
	FileDescriptors []*Descriptor `json:"file_descriptors,omitempty"`
}

// Set returns the raw descriptor.
func (d *Descriptor) Set() metadata.Descriptor { return d.Record.(metadata.Descriptor) }

func (d *Descriptor) Children() []Node {
	out := make([]Node, 0, len(d.FileDescriptors)+len(d.Locators)+len(d.SubDescriptors))
	for _, fd := range d.FileDescriptors {
		out = append(out, fd)
	}
	out = append(out, d.Locators...)
	return append(out, d.SubDescriptors...)
}

// SubDescriptor is any sub-descriptor kind.
type SubDescriptor struct {
	set
}

func (*SubDescriptor) Children() []Node { return nil }

// Locator is a network or text locator.
type Locator struct {
	set
}

func (*Locator) Children() []Node { return nil }

// Framework is a descriptive metadata set. Object is set for text-based
// frameworks.
type Framework struct {
	set
	Object Node `json:"object,omitempty"`
}

func (f *Framework) Children() []Node {
	if f.Object == nil {
		return nil
	}
	return []Node{f.Object}
}

// Placeholder stands in for a reference that did not resolve to a usable
// set. It carries the referenced UID and, when a set with that UID exists,
// its raw key.
type Placeholder struct {
	UID    types.UID `json:"instance_uid"`
	RawKey types.UL  `json:"key,omitzero"`
}

func (p *Placeholder) InstanceUID() types.UID { return p.UID }
func (p *Placeholder) Key() types.UL          { return p.RawKey }
func (*Placeholder) Kind() metadata.Kind      { return metadata.KindUnknown }
func (*Placeholder) Children() []Node         { return nil }
