package models

import (
	"math"
	"sort"
	"time"
)

// EarthquakeRecord represents one event row of the parsed seismicity catalog.
// Records are value types and are never mutated after the parser produces them;
// every derived view (filtering, sorting) works on fresh slices.
type EarthquakeRecord struct {
	Timestamp time.Time `json:"timestamp"` // local time, fixed +2h offset already applied
	Latitude  float64   `json:"latitude"`  // decimal degrees
	Longitude float64   `json:"longitude"` // decimal degrees
	Depth     float64   `json:"depth"`     // kilometers
	Magnitude float64   `json:"magnitude"` // may be negative for micro events
}

// Summary contains aggregate statistics over a working set of records.
type Summary struct {
	Count         int     `json:"count"`
	MeanMagnitude float64 `json:"mean_magnitude"`
	MaxMagnitude  float64 `json:"max_magnitude"`
}

// Advisory is one item from the observatory announcement feed, shown next to
// the catalog data but never mixed into it.
type Advisory struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}

// Summarize computes count, mean magnitude and max magnitude for a record set.
// An empty set yields a zero Summary.
func Summarize(records []EarthquakeRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	sum := 0.0
	max := math.Inf(-1)
	for _, r := range records {
		sum += r.Magnitude
		if r.Magnitude > max {
			max = r.Magnitude
		}
	}

	return Summary{
		Count:         len(records),
		MeanMagnitude: sum / float64(len(records)),
		MaxMagnitude:  max,
	}
}

// Filter selects records by calendar date range and magnitude range.
// All comparisons are inclusive. A zero From/To disables the respective
// date bound; the magnitude bounds default to (-Inf, +Inf) via NewFilter.
type Filter struct {
	From         time.Time
	To           time.Time
	MinMagnitude float64
	MaxMagnitude float64
}

// NewFilter returns a filter that matches every record.
func NewFilter() Filter {
	return Filter{
		MinMagnitude: math.Inf(-1),
		MaxMagnitude: math.Inf(1),
	}
}

// Apply returns the records matching the filter, in input order.
// Applying the same filter to its own output returns an equal set.
func (f Filter) Apply(records []EarthquakeRecord) []EarthquakeRecord {
	filtered := make([]EarthquakeRecord, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (f Filter) matches(r EarthquakeRecord) bool {
	if r.Magnitude < f.MinMagnitude || r.Magnitude > f.MaxMagnitude {
		return false
	}
	day := dateOnly(r.Timestamp)
	if !f.From.IsZero() && day.Before(dateOnly(f.From)) {
		return false
	}
	if !f.To.IsZero() && day.After(dateOnly(f.To)) {
		return false
	}
	return true
}

// dateOnly truncates a timestamp to midnight so that date-range comparisons
// work on calendar days, matching the sidebar date picker semantics.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SortByTimeDesc returns a copy of records ordered newest first.
// The feed order is server-defined, so table rendering always sorts explicitly.
func SortByTimeDesc(records []EarthquakeRecord) []EarthquakeRecord {
	sorted := make([]EarthquakeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// TimeBounds returns the oldest and newest timestamps in the record set.
// ok is false for an empty set.
func TimeBounds(records []EarthquakeRecord) (oldest, newest time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	oldest, newest = records[0].Timestamp, records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.Before(oldest) {
			oldest = r.Timestamp
		}
		if r.Timestamp.After(newest) {
			newest = r.Timestamp
		}
	}
	return oldest, newest, true
}

// MagnitudeBounds returns the smallest and largest magnitude in the record set.
// ok is false for an empty set.
func MagnitudeBounds(records []EarthquakeRecord) (min, max float64, ok bool) {
	if len(records) == 0 {
		return 0, 0, false
	}
	min, max = records[0].Magnitude, records[0].Magnitude
	for _, r := range records[1:] {
		if r.Magnitude < min {
			min = r.Magnitude
		}
		if r.Magnitude > max {
			max = r.Magnitude
		}
	}
	return min, max, true
}
