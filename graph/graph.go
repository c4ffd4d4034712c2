// Package graph links the raw records of a header partition into an
// immutable object graph rooted at the Preface.
//
// Backbone references (Preface to ContentStorage, packages, tracks,
// sequences, components and descriptors) must resolve. Descriptive
// references (sub-descriptors, locators, DM frameworks) may dangle; a
// Placeholder then stands in for the missing set. A Graph is never modified
// after Resolve returns and may be shared between goroutines.
package graph

import (
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Graph is a resolved header partition.
type Graph struct {
	table   *metadata.Table
	preface *Preface
	primary *Package
	nodes   map[types.UID]Node
}

// DescriptorEntry pairs an essence descriptor with its owning package and
// effective sub-descriptor list.
type DescriptorEntry struct {
	Package        *Package    `json:"package"`
	Descriptor     *Descriptor `json:"descriptor"`
	SubDescriptors []Node      `json:"sub_descriptors"`
}

// Table returns the raw records the graph was built from.
func (g *Graph) Table() *metadata.Table { return g.table }

// Preface returns the root node.
func (g *Graph) Preface() *Preface { return g.preface }

// ContentStorage returns the content storage.
func (g *Graph) ContentStorage() *ContentStorage {
	if g.preface == nil {
		return nil
	}
	return g.preface.ContentStorage
}

// PrimaryPackage returns the package named by the Preface, or the first
// material package when the Preface names none. It is nil for files without
// material packages.
func (g *Graph) PrimaryPackage() *Package { return g.primary }

// Packages returns all packages in content storage order.
func (g *Graph) Packages() []*Package {
	if cs := g.ContentStorage(); cs != nil {
		return cs.Packages
	}
	return nil
}

// EssenceContainerData returns the essence container data sets in content
// storage order.
func (g *Graph) EssenceContainerData() []*EssenceContainerData {
	if cs := g.ContentStorage(); cs != nil {
		return cs.EssenceContainerData
	}
	return nil
}

// EssenceDescriptors returns the descriptor of every source package in
// content storage order. The file descriptors of a MultipleDescriptor
// follow their parent as separate entries.
func (g *Graph) EssenceDescriptors() []DescriptorEntry {
	var out []DescriptorEntry
	for _, p := range g.Packages() {
		if p.Descriptor == nil {
			continue
		}
		out = append(out, DescriptorEntry{Package: p, Descriptor: p.Descriptor, SubDescriptors: p.Descriptor.SubDescriptors})
		for _, fd := range p.Descriptor.FileDescriptors {
			out = append(out, DescriptorEntry{Package: p, Descriptor: fd, SubDescriptors: fd.SubDescriptors})
		}
	}
	return out
}

// FindByInstanceUID returns the node resolved for uid. Placeholders are
// returned for UIDs that were referenced but not found.
func (g *Graph) FindByInstanceUID(uid types.UID) (Node, bool) {
	n, ok := g.nodes[uid]
	return n, ok
}

// PackageByUMID returns the package with the given package UID.
func (g *Graph) PackageByUMID(umid types.UMID) (*Package, bool) {
	for _, p := range g.Packages() {
		if p.UMID() == umid {
			return p, true
		}
	}
	return nil, false
}

// ExternalSourceClips returns the source clips whose package is not in this
// file, in package, track and component order. Clips with a zero package
// UID terminate a reference chain and are not included.
func (g *Graph) ExternalSourceClips() []*SourceClip {
	var out []*SourceClip
	seen := make(map[*SourceClip]bool)
	var visit func(n Node)
	visit = func(n Node) {
		switch c := n.(type) {
		case *SourceClip:
			umid := c.Set().SourcePackageID
			if umid.IsZero() || seen[c] {
				return
			}
			if _, ok := g.PackageByUMID(umid); !ok {
				seen[c] = true
				out = append(out, c)
			}
		case *Sequence:
			for _, child := range c.Components {
				visit(child)
			}
		}
	}
	for _, p := range g.Packages() {
		for _, t := range p.Tracks {
			if t.Sequence != nil {
				visit(t.Sequence)
			}
		}
	}
	return out
}

// Walk visits the graph depth-first in reference order, starting at the
// Preface. A node reachable along several paths is visited once. Returning
// false from fn skips the node's children.
func (g *Graph) Walk(fn func(n Node, depth int) bool) {
	if g.preface == nil {
		return
	}
	visited := make(map[Node]bool)
	var walk func(n Node, depth int)
	walk = func(n Node, depth int) {
		if visited[n] {
			return
		}
		visited[n] = true
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(g.preface, 0)
}

// Len returns the number of distinct nodes, placeholders included.
func (g *Graph) Len() int { return len(g.nodes) }
