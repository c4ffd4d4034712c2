package partition

import "github.com/Netflix/photon-sub001/internal/format"

// StreamIDs pairs the body and index stream identifiers of one essence
// container, as listed by EssenceContainerData.
type StreamIDs struct {
	BodySID  uint32
	IndexSID uint32
}

// Referenced returns the indexes of partitions whose BodySID or IndexSID is
// listed in ids. The header partition is always included. packs is indexed
// like the layout's partitions; a missing pack falls back to the BodySID in
// the random index pack.
func Referenced(l *Layout, packs map[int]format.PartitionPack, ids []StreamIDs) []int {
	bodies := make(map[uint32]bool, len(ids))
	indexes := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		if id.BodySID != 0 {
			bodies[id.BodySID] = true
		}
		if id.IndexSID != 0 {
			indexes[id.IndexSID] = true
		}
	}

	var out []int
	for _, part := range l.Partitions {
		if part.Index == 0 {
			out = append(out, 0)
			continue
		}
		body, index := part.BodySID, uint32(0)
		if pack, ok := packs[part.Index]; ok {
			body, index = pack.BodySID, pack.IndexSID
		}
		if (body != 0 && bodies[body]) || (index != 0 && indexes[index]) {
			out = append(out, part.Index)
		}
	}
	return out
}
