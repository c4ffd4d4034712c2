package format

import (
	"fmt"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Primer maps file-local 2-byte tags to ULs.
//
// Value layout:
//
//	Offset  Size  Description
//	------  ----  -----------------------------
//	 0x00     4   Item count
//	 0x04     4   Item size (18)
//	 0x08  18*n   Items: local tag u16 + UL
type Primer struct {
	tags    map[uint16]types.UL
	ordered []PrimerEntry
}

// PrimerEntry is one tag mapping in pack order.
type PrimerEntry struct {
	Tag uint16
	UL  types.UL
}

// ParsePrimerPack decodes a primer pack value. A repeated tag keeps its first
// mapping.
func ParsePrimerPack(value []byte) (*Primer, error) {
	h, payload, err := ReadBatchFixed(value, PrimerItemSize)
	if err != nil {
		return nil, fmt.Errorf("primer pack: %w", err)
	}
	p := &Primer{
		tags:    make(map[uint16]types.UL, h.Count),
		ordered: make([]PrimerEntry, 0, h.Count),
	}
	for i := 0; i < int(h.Count); i++ {
		item := payload[i*PrimerItemSize : (i+1)*PrimerItemSize]
		tag := buf.U16BE(item)
		ul, _ := types.ULFromBytes(item[LocalTagSize:])
		if _, dup := p.tags[tag]; dup {
			continue
		}
		p.tags[tag] = ul
		p.ordered = append(p.ordered, PrimerEntry{Tag: tag, UL: ul})
	}
	return p, nil
}

// NewPrimer builds a primer from entries, mostly for tests and writers.
func NewPrimer(entries ...PrimerEntry) *Primer {
	p := &Primer{tags: make(map[uint16]types.UL, len(entries))}
	for _, e := range entries {
		if _, dup := p.tags[e.Tag]; dup {
			continue
		}
		p.tags[e.Tag] = e.UL
		p.ordered = append(p.ordered, e)
	}
	return p
}

// Lookup resolves a local tag. A miss means the item is unnamed and must be
// skipped.
func (p *Primer) Lookup(tag uint16) (types.UL, bool) {
	if p == nil {
		return types.UL{}, false
	}
	ul, ok := p.tags[tag]
	return ul, ok
}

// Len returns the number of mappings.
func (p *Primer) Len() int {
	if p == nil {
		return 0
	}
	return len(p.ordered)
}

// Entries returns the mappings in pack order.
func (p *Primer) Entries() []PrimerEntry {
	if p == nil {
		return nil
	}
	out := make([]PrimerEntry, len(p.ordered))
	copy(out, p.ordered)
	return out
}

// Encode returns the primer pack value.
func (p *Primer) Encode() []byte {
	elems := make([][]byte, 0, len(p.ordered))
	for _, e := range p.ordered {
		item := make([]byte, PrimerItemSize)
		item[0], item[1] = byte(e.Tag>>8), byte(e.Tag)
		copy(item[LocalTagSize:], e.UL[:])
		elems = append(elems, item)
	}
	return AppendBatch(nil, PrimerItemSize, elems...)
}
