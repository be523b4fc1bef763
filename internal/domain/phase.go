package domain

import "sort"

// Phase is one segment of the mission timeline. Phases tile the timeline
// contiguously: each phase starts where the previous one ends, ordered by
// Order. Duration is in mission days.
type Phase struct {
	Name     string  `json:"name" yaml:"name"`
	Order    int     `json:"order" yaml:"order"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// PhaseSpan is the derived half-open [Start, End) a phase occupies on the
// timeline. Spans are recomputed from durations on demand and never stored,
// so edits to one phase shift everything after it automatically.
type PhaseSpan struct {
	Name  string  `json:"name"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// SortedPhases returns a copy of phases ordered by Order. The sort is
// stable, so phases sharing an Order keep their declared sequence.
func SortedPhases(phases []Phase) []Phase {
	out := make([]Phase, len(phases))
	copy(out, phases)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// PhaseSpans tiles the sorted phases from time zero and returns each
// phase's span.
func PhaseSpans(phases []Phase) []PhaseSpan {
	sorted := SortedPhases(phases)
	spans := make([]PhaseSpan, 0, len(sorted))
	cursor := 0.0
	for _, p := range sorted {
		spans = append(spans, PhaseSpan{Name: p.Name, Start: cursor, End: cursor + p.Duration})
		cursor += p.Duration
	}
	return spans
}

// TotalDuration is the summed duration of all phases, i.e. the length of
// the mission timeline.
func TotalDuration(phases []Phase) float64 {
	total := 0.0
	for _, p := range phases {
		total += p.Duration
	}
	return total
}
