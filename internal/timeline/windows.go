package timeline

import "github.com/shamsu/conops/internal/domain"

// BuildAllowed reduces a document's window declarations to the canonical
// set of intervals where activities may be placed.
//
// Allow-mode masks are authoritative whenever any exist. Legacy windows are
// the fallback base for documents that predate masks, and with neither the
// entire timeline is allowed. The base is clamped to [0, totalDuration]
// before deny masks are subtracted, so a deny reaching past the mission
// span still truncates cleanly at the boundary.
func BuildAllowed(totalDuration float64, legacy []domain.LegacyWindow, masks []domain.WindowMask) []Interval {
	var allow, deny []Interval
	for _, m := range masks {
		switch m.Mode {
		case domain.MaskAllow:
			allow = append(allow, Interval{Start: m.Start, End: m.End})
		case domain.MaskDeny:
			deny = append(deny, Interval{Start: m.Start, End: m.End})
		}
	}

	var base []Interval
	switch {
	case len(allow) > 0:
		base = Normalize(allow)
	case len(legacy) > 0:
		windows := make([]Interval, 0, len(legacy))
		for _, w := range legacy {
			windows = append(windows, Interval{Start: w.Start, End: w.End})
		}
		base = Normalize(windows)
	default:
		base = []Interval{{Start: 0, End: totalDuration}}
	}

	base = clampSpan(base, 0, totalDuration)
	return Subtract(base, Normalize(deny))
}

// DenySpans extracts the raw deny-mask spans without canonicalizing them.
// Placement explanation checks overlap against these rather than the
// normalized set, so each reported overlap corresponds to a mask the
// operator actually drew.
func DenySpans(masks []domain.WindowMask) []Interval {
	var spans []Interval
	for _, m := range masks {
		if m.Mode == domain.MaskDeny {
			spans = append(spans, Interval{Start: m.Start, End: m.End})
		}
	}
	return spans
}
