// Package timeline implements the interval algebra behind mission timeline
// validation: canonical allowed-window construction, containment checks,
// nearest-valid-start search, and requirement-rule gating. All times are
// float offsets in mission days and all intervals are half-open [start, end),
// so windows that touch do not overlap.
package timeline

import "sort"

// Interval is a half-open [Start, End) span on the mission timeline.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Length returns End - Start.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Normalize returns the canonical form of an arbitrary interval collection:
// reversed bounds are swapped, zero-length intervals dropped, and the rest
// sorted by start and merged wherever they overlap or touch. The result is
// sorted, pairwise disjoint, and separated by strict gaps. Every other
// operation in this package assumes interval-set arguments are in this form.
func Normalize(intervals []Interval) []Interval {
	cleaned := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start > iv.End {
			iv.Start, iv.End = iv.End, iv.Start
		}
		if iv.Start == iv.End {
			continue
		}
		cleaned = append(cleaned, iv)
	}
	sort.Slice(cleaned, func(i, j int) bool { return cleaned[i].Start < cleaned[j].Start })

	merged := make([]Interval, 0, len(cleaned))
	for _, iv := range cleaned {
		if n := len(merged); n > 0 && iv.Start <= merged[n-1].End {
			if iv.End > merged[n-1].End {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Subtract removes every part of blocks from base. Both arguments must be
// canonical; the result stays canonical. Each block is applied to the
// surviving segments in turn, splitting a partially covered segment into at
// most two remainders.
func Subtract(base, blocks []Interval) []Interval {
	out := append([]Interval(nil), base...)
	for _, block := range blocks {
		next := make([]Interval, 0, len(out))
		for _, seg := range out {
			if block.End <= seg.Start || block.Start >= seg.End {
				next = append(next, seg)
				continue
			}
			if block.Start > seg.Start {
				next = append(next, Interval{Start: seg.Start, End: block.Start})
			}
			if block.End < seg.End {
				next = append(next, Interval{Start: block.End, End: seg.End})
			}
		}
		out = next
	}
	return out
}

// clampSpan restricts a canonical set to [lo, hi), trimming boundary
// intervals and dropping anything fully outside.
func clampSpan(set []Interval, lo, hi float64) []Interval {
	out := make([]Interval, 0, len(set))
	for _, iv := range set {
		if iv.End <= lo || iv.Start >= hi {
			continue
		}
		if iv.Start < lo {
			iv.Start = lo
		}
		if iv.End > hi {
			iv.End = hi
		}
		out = append(out, iv)
	}
	return out
}
