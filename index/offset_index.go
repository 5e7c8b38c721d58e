package index

// estimatedBytesPerEntry is a rough per-entry overhead: map bucket slot,
// 8-byte offset and the slice header of the key order.
const estimatedBytesPerEntry = 48

// OffsetIndex maps native record identifiers to byte offsets and remembers
// the order in which identifiers were first inserted, so records can also be
// addressed by 0-based position.
//
// The zero value is not usable; call NewOffsetIndex.
type OffsetIndex struct {
	// Name describes what the offsets point at (e.g. "spectrum").
	Name string

	// Init is set once a full pre-scan has populated the index, even if the
	// scan found nothing.
	Init bool

	offsets map[string]uint64
	keys    []string
}

// NewOffsetIndex creates an empty, uninitialized index.
func NewOffsetIndex(name string) *OffsetIndex {
	return &OffsetIndex{
		Name:    name,
		offsets: make(map[string]uint64),
	}
}

// Insert stores offset for id. A new id is appended to the position order;
// an existing id keeps its position and only has its offset replaced.
func (x *OffsetIndex) Insert(id string, offset uint64) {
	if _, ok := x.offsets[id]; !ok {
		x.keys = append(x.keys, id)
	}
	x.offsets[id] = offset
}

// Get returns the offset recorded for id.
func (x *OffsetIndex) Get(id string) (uint64, bool) {
	off, ok := x.offsets[id]
	return off, ok
}

// GetByPosition returns the id and offset at 0-based position i.
func (x *OffsetIndex) GetByPosition(i int) (string, uint64, bool) {
	if i < 0 || i >= len(x.keys) {
		return "", 0, false
	}
	id := x.keys[i]
	return id, x.offsets[id], true
}

// PositionOf returns the position of id in insertion order. It is a linear
// scan; positions are rarely looked up by id.
func (x *OffsetIndex) PositionOf(id string) (int, bool) {
	if _, ok := x.offsets[id]; !ok {
		return 0, false
	}
	for i, k := range x.keys {
		if k == id {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of indexed records.
func (x *OffsetIndex) Len() int { return len(x.keys) }

// IsEmpty reports whether no records are indexed.
func (x *OffsetIndex) IsEmpty() bool { return len(x.keys) == 0 }

// Keys returns a copy of the identifiers in position order.
func (x *OffsetIndex) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Reset drops all entries and clears Init.
func (x *OffsetIndex) Reset() {
	x.offsets = make(map[string]uint64, len(x.keys))
	x.keys = nil
	x.Init = false
}

// Stats reports index metrics.
type Stats struct {
	Entries     int    // Number of indexed records
	BytesApprox int    // Approximate memory usage (best effort)
	Name        string // What the offsets point at
	Init        bool   // Whether a pre-scan populated the index
}

// Stats returns a best-effort size estimate.
func (x *OffsetIndex) Stats() Stats {
	n := len(x.keys) * estimatedBytesPerEntry
	for _, k := range x.keys {
		n += len(k)
	}
	return Stats{
		Entries:     len(x.keys),
		BytesApprox: n,
		Name:        x.Name,
		Init:        x.Init,
	}
}
