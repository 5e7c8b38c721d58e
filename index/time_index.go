package index

import (
	"math"
	"sort"
)

// TimeEntry associates a record start time with the record's byte offset.
type TimeEntry struct {
	Time   float64
	Offset uint64
}

// TimeIndex resolves acquisition start times to record offsets.
// Entries may be inserted in any order; Finalize sorts them.
type TimeIndex struct {
	Init    bool
	entries []TimeEntry
	sorted  bool
}

// NewTimeIndex creates an empty time index.
func NewTimeIndex() *TimeIndex {
	return &TimeIndex{}
}

// Insert records that the record at offset starts at time t.
func (x *TimeIndex) Insert(t float64, offset uint64) {
	x.entries = append(x.entries, TimeEntry{Time: t, Offset: offset})
	x.sorted = false
}

// Finalize sorts entries by time, keeping file order among equal times,
// and marks the index initialized.
func (x *TimeIndex) Finalize() {
	sort.SliceStable(x.entries, func(i, j int) bool {
		return x.entries[i].Time < x.entries[j].Time
	})
	x.sorted = true
	x.Init = true
}

// Len returns the number of timed records.
func (x *TimeIndex) Len() int { return len(x.entries) }

// Reset drops all entries and clears Init.
func (x *TimeIndex) Reset() {
	x.entries = nil
	x.sorted = false
	x.Init = false
}

// Nearest returns the entry whose time is closest to t. On a tie the
// earlier entry wins.
func (x *TimeIndex) Nearest(t float64) (TimeEntry, bool) {
	if len(x.entries) == 0 || math.IsNaN(t) {
		return TimeEntry{}, false
	}
	if !x.sorted {
		x.Finalize()
	}
	i := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].Time >= t
	})
	switch {
	case i == 0:
		return x.entries[0], true
	case i == len(x.entries):
		return x.entries[i-1], true
	}
	before, after := x.entries[i-1], x.entries[i]
	if t-before.Time <= after.Time-t {
		return before, true
	}
	return after, true
}
