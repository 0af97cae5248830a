// Package timerange provides the shared cut-range primitive. Both the
// deletion detector and user-supplied cut lists go through Merge so the two
// paths can never disagree on merge semantics.
package timerange

import "sort"

// span of media in seconds, Start <= End
type Range struct {
	Start float64
	End   float64
}

// Duration returns the length of the range in seconds.
func (r Range) Duration() float64 {
	return r.End - r.Start
}

// Merge sorts ranges by start time and coalesces overlapping or touching
// ranges into the minimal equivalent set. Ranges that meet exactly at a
// boundary count as overlapping, not as a gap. The input slice is not
// modified.
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
		} else {
			merged = append(merged, r)
		}
	}

	return merged
}
