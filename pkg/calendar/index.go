// Package calendar groups inspection records by crop and timestamp and lays
// them out as a fixed-size calendar grid.
package calendar

import (
	"errors"
	"sort"
	"time"

	"cropcare/entities"
)

// ErrNoRecordForKey means there is nothing to show for a crop/timestamp pair.
// Callers should treat it as an empty state, not a failure.
var ErrNoRecordForKey = errors.New("no record for crop/timestamp")

// Index is crop_id -> timestamp -> record.
type Index map[string]map[string]entities.InspectionRecord

// Build groups records in one pass. A later record with the same
// (crop_id, timestamp) replaces the earlier one.
func Build(records []entities.InspectionRecord) Index {
	idx := Index{}
	for _, r := range records {
		byTS, ok := idx[r.CropID]
		if !ok {
			byTS = map[string]entities.InspectionRecord{}
			idx[r.CropID] = byTS
		}
		byTS[r.Timestamp] = r
	}
	return idx
}

func (idx Index) Lookup(cropID, timestamp string) (entities.InspectionRecord, error) {
	if r, ok := idx[cropID][timestamp]; ok {
		return r, nil
	}
	return entities.InspectionRecord{}, ErrNoRecordForKey
}

// Crops returns the indexed crop ids, sorted.
func (idx Index) Crops() []string {
	out := make([]string, 0, len(idx))
	for id := range idx {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Timestamps returns a crop's timestamps in chronological order.
func (idx Index) Timestamps(cropID string) []string {
	return SortTimestamps(keys(idx[cropID]))
}

// Grid is shorthand for Grid(idx[cropID], size).
func (idx Index) Grid(cropID string, size int) []Cell {
	return Grid(idx[cropID], size)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses the ISO forms the record source emits.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortTimestamps orders timestamps ascending by parsed date. Unparseable
// values go last, in lexical order.
func SortTimestamps(ts []string) []string {
	type parsed struct {
		raw string
		at  time.Time
		ok  bool
	}
	ps := make([]parsed, len(ts))
	for i, s := range ts {
		at, ok := ParseTimestamp(s)
		ps[i] = parsed{raw: s, at: at, ok: ok}
	}
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.ok && !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.raw < b.raw
	})
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.raw
	}
	return out
}

func keys(m map[string]entities.InspectionRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
