package metadata

import (
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Table holds the raw records of one header partition in file order, indexed
// by instance UID. It is read-only once built.
type Table struct {
	Partition format.PartitionPack `json:"partition"`
	Primer    *format.Primer       `json:"-"`
	Records   []Record             `json:"records"`

	// SkippedItems counts items skipped across all records.
	SkippedItems int `json:"skipped_items"`

	byUID map[types.UID]Record
}

// NewTable indexes records by instance UID. Records without an instance UID
// are kept but cannot be looked up; the first record wins a UID collision.
func NewTable(pack format.PartitionPack, primer *format.Primer, records ...Record) *Table {
	t := &Table{Partition: pack, Primer: primer, byUID: make(map[types.UID]Record, len(records))}
	for _, r := range records {
		t.add(r)
	}
	return t
}

// add appends r and reports false when its instance UID is already taken.
func (t *Table) add(r Record) bool {
	h := r.Header()
	if !h.InstanceUID.IsZero() {
		if _, dup := t.byUID[h.InstanceUID]; dup {
			return false
		}
		t.byUID[h.InstanceUID] = r
	}
	t.Records = append(t.Records, r)
	t.SkippedItems += h.Skipped
	return true
}

// Lookup returns the record with the given instance UID.
func (t *Table) Lookup(uid types.UID) (Record, bool) {
	r, ok := t.byUID[uid]
	return r, ok
}

// ByKind returns the records of one kind in file order.
func (t *Table) ByKind(kind Kind) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.Header().Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }
