package graph

import (
	"fmt"

	"github.com/Netflix/photon-sub001/internal/logger"
	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// role describes one reference field: which kinds it may point at and how a
// failure to resolve it is treated.
type role struct {
	name     string
	backbone bool // unresolved is FATAL
	holder   bool // unresolved yields a Placeholder
	typed    bool // the slot holds a concrete node, never a Placeholder
	accepts  func(metadata.Kind) bool
}

func is(kinds ...metadata.Kind) func(metadata.Kind) bool {
	return func(k metadata.Kind) bool {
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

var (
	roleIdentification = role{name: "Identifications", accepts: is(metadata.KindIdentification)}
	roleContentStorage = role{name: "ContentStorage", backbone: true, typed: true, accepts: is(metadata.KindContentStorage)}
	rolePackage        = role{name: "Packages", backbone: true, typed: true, accepts: metadata.Kind.IsPackage}
	roleECD            = role{name: "EssenceContainerData", accepts: is(metadata.KindEssenceContainerData)}
	roleTrack          = role{name: "Tracks", backbone: true, typed: true, accepts: metadata.Kind.IsTrack}
	roleSequence       = role{name: "Sequence", backbone: true, typed: true, accepts: is(metadata.KindSequence)}
	roleComponent      = role{name: "StructuralComponents", backbone: true, accepts: metadata.Kind.IsComponent}
	roleDescriptor     = role{name: "Descriptor", backbone: true, typed: true, accepts: metadata.Kind.IsFileDescriptor}
	roleFileDescriptor = role{name: "FileDescriptors", backbone: true, typed: true, accepts: metadata.Kind.IsFileDescriptor}
	roleSubDescriptor  = role{name: "SubDescriptors", holder: true, accepts: metadata.Kind.IsSubDescriptor}
	roleHop            = role{name: "AdditionalReferences", holder: true, accepts: metadata.Kind.IsSubDescriptor}
	roleLocator        = role{name: "Locators", holder: true, accepts: metadata.Kind.IsLocator}
	roleFramework      = role{name: "DMFramework", holder: true, accepts: metadata.Kind.IsDescriptive}
	roleTextObject     = role{name: "TextBasedObject", holder: true, accepts: is(metadata.KindTextBasedObject)}
)

// Resolve links the records of t into a Graph, starting from the single
// Preface. Unresolved backbone references are FATAL and return a
// *types.FatalError; unresolved descriptive references are NON_FATAL and
// leave a Placeholder in place. Sets of unmodelled kinds resolve to
// placeholders with a WARNING, except in backbone slots that need a concrete
// node, where they are FATAL. The table is not modified.
func Resolve(t *metadata.Table, sink types.ErrorSink) (*Graph, error) {
	sink = types.EnsureSink(sink)
	r := &resolver{
		t:      t,
		sink:   sink,
		nodes:  make(map[types.UID]Node, t.Len()),
		active: make(map[types.UID]bool),
	}

	prefaces := t.ByKind(metadata.KindPreface)
	if len(prefaces) != 1 {
		return nil, types.Fatal(sink, types.Diagnostic{
			Code:      types.CodeStructure,
			Offset:    -1,
			Structure: "Preface",
			Issue:     "header metadata must hold exactly one Preface",
			Expected:  1,
			Actual:    len(prefaces),
		}, types.Wrap(types.ErrKindCorrupt, "preface", types.ErrCorrupt))
	}

	g := &Graph{table: t, nodes: r.nodes}
	g.preface = r.preface(prefaces[0].(*metadata.Preface))
	if r.fatal == nil && g.preface.ContentStorage == nil {
		r.report(g.preface.Record, types.SevFatal, types.CodeUnresolvedReference,
			"ContentStorage reference "+g.preface.Set().ContentStorage.String()+" did not resolve",
			g.preface.Set().ContentStorage.String())
	}
	if r.fatal != nil {
		return nil, r.fatal
	}
	r.linkEssenceContainerData(g)
	g.primary = r.primaryPackage(g)
	if r.fatal != nil {
		return nil, r.fatal
	}
	logger.Debug("header metadata resolved", "nodes", len(r.nodes), "placeholders", r.placeholders)
	return g, nil
}

type resolver struct {
	t            *metadata.Table
	sink         types.ErrorSink
	nodes        map[types.UID]Node
	active       map[types.UID]bool
	placeholders int
	fatal        error
}

func (r *resolver) report(from metadata.Record, sev types.Severity, code types.Code, issue string, actual any) {
	h := from.Header()
	d := types.Diagnostic{
		Code:      code,
		Severity:  sev,
		Offset:    h.Offset,
		Structure: h.Kind.String(),
		Issue:     issue,
		Actual:    actual,
	}
	if sev == types.SevFatal {
		logger.Error("reference resolution failed", "structure", d.Structure, "issue", issue)
		if r.fatal == nil {
			r.fatal = types.Fatal(r.sink, d, types.Wrap(types.ErrKindNotFound, issue, types.ErrNotFound))
		}
		return
	}
	logger.Debug("reference problem", "severity", sev, "structure", d.Structure, "issue", issue)
	r.sink.Add(d)
}

// unresolved reports a reference that cannot be followed and returns the
// placeholder the role calls for, if any.
func (r *resolver) unresolved(from metadata.Record, ro role, uid types.UID, key types.UL, code types.Code, why string) Node {
	sev := types.SevNonFatal
	if ro.backbone {
		sev = types.SevFatal
	}
	r.report(from, sev, code, fmt.Sprintf("%s reference %s %s", ro.name, uid, why), uid.String())
	if !ro.holder {
		return nil
	}
	return r.placeholder(uid, key, false)
}

func (r *resolver) placeholder(uid types.UID, key types.UL, memo bool) Node {
	if n, ok := r.nodes[uid]; ok {
		if p, ok := n.(*Placeholder); ok {
			return p
		}
	}
	p := &Placeholder{UID: uid, RawKey: key}
	switch {
	case uid.IsZero():
	case memo:
		r.nodes[uid] = p
	default:
		// Missing sets have no other node that could claim the UID later.
		if _, exists := r.t.Lookup(uid); !exists {
			r.nodes[uid] = p
		}
	}
	r.placeholders++
	metrics.PlaceholdersCreated.Inc()
	logger.Debug("placeholder substituted", "uid", uid, "key", key)
	return p
}

// resolve follows one reference. A nil Node means the reference was dropped.
func (r *resolver) resolve(from metadata.Record, ro role, uid types.UID) Node {
	if r.fatal != nil {
		return nil
	}
	if uid.IsZero() {
		return r.unresolved(from, ro, uid, types.UL{}, types.CodeMissingField, "is empty")
	}
	if n, ok := r.nodes[uid]; ok {
		if _, isPlaceholder := n.(*Placeholder); !isPlaceholder {
			if !ro.accepts(n.Kind()) {
				return r.unresolved(from, ro, uid, n.Key(), types.CodeUnresolvedReference,
					"points at a "+n.Kind().String())
			}
			return n
		}
	}

	rec, ok := r.t.Lookup(uid)
	if !ok {
		return r.unresolved(from, ro, uid, types.UL{}, types.CodeUnresolvedReference, "not found")
	}
	h := rec.Header()
	if h.Kind == metadata.KindUnknown {
		if ro.typed {
			return r.unresolved(from, ro, uid, h.Key, types.CodeUnresolvedReference, "points at an unmodelled set")
		}
		r.report(from, types.SevWarning, types.CodeUnresolvedReference,
			fmt.Sprintf("%s reference %s points at an unmodelled set", ro.name, uid), h.Key.String())
		return r.placeholder(uid, h.Key, true)
	}
	if !ro.accepts(h.Kind) {
		return r.unresolved(from, ro, uid, h.Key, types.CodeUnresolvedReference, "points at a "+h.Kind.String())
	}
	if r.active[uid] {
		r.report(from, types.SevNonFatal, types.CodeCircularReference,
			fmt.Sprintf("%s reference %s is circular", ro.name, uid), uid.String())
		if ro.holder {
			return r.placeholder(uid, types.UL{}, false)
		}
		return nil
	}

	r.active[uid] = true
	n := r.build(rec)
	delete(r.active, uid)
	if n != nil {
		r.nodes[uid] = n
	}
	return n
}

// build creates the node for rec and resolves its references.
func (r *resolver) build(rec metadata.Record) Node {
	kind := rec.Header().Kind
	switch {
	case kind == metadata.KindIdentification:
		return &Identification{set{rec}}
	case kind == metadata.KindContentStorage:
		return r.contentStorage(rec.(*metadata.ContentStorage))
	case kind == metadata.KindEssenceContainerData:
		return &EssenceContainerData{set: set{rec}}
	case kind.IsPackage():
		return r.pkg(rec)
	case kind.IsTrack():
		return r.track(rec)
	case kind == metadata.KindSequence:
		return r.sequence(rec.(*metadata.Sequence))
	case kind == metadata.KindSourceClip:
		return &SourceClip{set{rec}}
	case kind == metadata.KindTimecodeComponent:
		return &TimecodeComponent{set{rec}}
	case kind == metadata.KindDMSegment:
		seg := rec.(*metadata.DMSegment)
		m := &DescriptiveMarker{set: set{rec}}
		if !seg.DMFramework.IsZero() {
			m.Framework = r.resolve(rec, roleFramework, seg.DMFramework)
		}
		return m
	case kind.IsComponent():
		return &Component{set{rec}}
	case kind.IsFileDescriptor():
		return r.descriptor(rec.(metadata.Descriptor))
	case kind.IsSubDescriptor():
		return &SubDescriptor{set{rec}}
	case kind.IsLocator():
		return &Locator{set{rec}}
	case kind.IsDescriptive():
		f := &Framework{set: set{rec}}
		if tf, ok := rec.(*metadata.TextBasedDMFramework); ok && !tf.TextBasedObject.IsZero() {
			f.Object = r.resolve(rec, roleTextObject, tf.TextBasedObject)
		}
		return f
	}
	return nil
}

func (r *resolver) preface(rec *metadata.Preface) *Preface {
	p := &Preface{set: set{rec}}
	r.nodes[rec.InstanceUID] = p
	for _, uid := range rec.Identifications {
		if n, ok := r.resolve(rec, roleIdentification, uid).(*Identification); ok {
			p.Identifications = append(p.Identifications, n)
		}
	}
	if cs, ok := r.resolve(rec, roleContentStorage, rec.ContentStorage).(*ContentStorage); ok {
		p.ContentStorage = cs
	}
	return p
}

func (r *resolver) contentStorage(rec *metadata.ContentStorage) *ContentStorage {
	cs := &ContentStorage{set: set{rec}}
	for _, uid := range rec.Packages {
		if n, ok := r.resolve(rec, rolePackage, uid).(*Package); ok {
			cs.Packages = append(cs.Packages, n)
		}
	}
	for _, uid := range rec.EssenceContainerData {
		if n, ok := r.resolve(rec, roleECD, uid).(*EssenceContainerData); ok {
			cs.EssenceContainerData = append(cs.EssenceContainerData, n)
		}
	}
	return cs
}

func (r *resolver) pkg(rec metadata.Record) *Package {
	p := &Package{set: set{rec}}
	for _, uid := range p.Generic().Tracks {
		if n, ok := r.resolve(rec, roleTrack, uid).(*Track); ok {
			p.Tracks = append(p.Tracks, n)
		}
	}
	if sp, ok := rec.(*metadata.SourcePackage); ok {
		if sp.Descriptor.IsZero() {
			r.report(rec, types.SevWarning, types.CodeMissingField, "source package has no descriptor", nil)
		} else if d, ok := r.resolve(rec, roleDescriptor, sp.Descriptor).(*Descriptor); ok {
			p.Descriptor = d
		}
	}
	return p
}

func (r *resolver) track(rec metadata.Record) *Track {
	t := &Track{set: set{rec}}
	if seq, ok := r.resolve(rec, roleSequence, t.Generic().Sequence).(*Sequence); ok {
		t.Sequence = seq
	}
	return t
}

func (r *resolver) sequence(rec *metadata.Sequence) *Sequence {
	s := &Sequence{set: set{rec}}
	for _, uid := range rec.StructuralComponents {
		if n := r.resolve(rec, roleComponent, uid); n != nil {
			s.Components = append(s.Components, n)
		}
	}
	return s
}

func (r *resolver) descriptor(rec metadata.Descriptor) *Descriptor {
	d := &Descriptor{set: set{rec}}
	fd := rec.File()

	seen := make(map[types.UID]bool, len(fd.SubDescriptors))
	add := func(n Node) {
		if n == nil || seen[n.InstanceUID()] {
			return
		}
		seen[n.InstanceUID()] = true
		d.SubDescriptors = append(d.SubDescriptors, n)
	}
	for _, uid := range fd.SubDescriptors {
		add(r.resolve(rec, roleSubDescriptor, uid))
	}
	// Sub-descriptors may reference further sub-descriptors; follow those
	// hops until no new UIDs turn up.
	for i := 0; i < len(d.SubDescriptors); i++ {
		sub, ok := d.SubDescriptors[i].(*SubDescriptor)
		if !ok {
			continue
		}
		referrer, ok := sub.Record.(metadata.AdditionalReferrer)
		if !ok {
			continue
		}
		for _, uid := range referrer.AdditionalReferences() {
			if seen[uid] {
				continue
			}
			add(r.resolve(sub.Record, roleHop, uid))
		}
	}

	for _, uid := range fd.Locators {
		if n := r.resolve(rec, roleLocator, uid); n != nil {
			d.Locators = append(d.Locators, n)
		}
	}
	if md, ok := rec.(*metadata.MultipleDescriptor); ok {
		for _, uid := range md.FileDescriptors {
			if n, ok := r.resolve(rec, roleFileDescriptor, uid).(*Descriptor); ok {
				d.FileDescriptors = append(d.FileDescriptors, n)
			}
		}
	}
	return d
}

func (r *resolver) linkEssenceContainerData(g *Graph) {
	for _, ecd := range g.EssenceContainerData() {
		umid := ecd.Set().LinkedPackageUID
		if p, ok := g.PackageByUMID(umid); ok {
			ecd.Package = p
			continue
		}
		r.report(ecd.Record, types.SevWarning, types.CodeUnresolvedReference,
			"linked package "+umid.String()+" is not in this file", umid.String())
	}
}

// primaryPackage follows the Preface's weak reference, falling back to the
// first material package.
func (r *resolver) primaryPackage(g *Graph) *Package {
	rec := g.preface.Set()
	if !rec.PrimaryPackage.IsZero() {
		if p, ok := r.nodes[rec.PrimaryPackage].(*Package); ok {
			return p
		}
		r.report(rec, types.SevNonFatal, types.CodeUnresolvedReference,
			"PrimaryPackage reference "+rec.PrimaryPackage.String()+" does not name a package in this file",
			rec.PrimaryPackage.String())
	}
	for _, p := range g.Packages() {
		if p.IsMaterial() {
			return p
		}
	}
	return nil
}
