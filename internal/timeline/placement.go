package timeline

import "math"

// Contains reports whether a single interval of the canonical allowed set
// fully covers [start, end). Spanning two adjacent intervals does not
// count: the gap between them exists because something denied it, so a
// placement may not straddle it even when the gap has zero width.
func Contains(allowed []Interval, start, end float64) bool {
	for _, iv := range allowed {
		if iv.Start <= start && end <= iv.End {
			return true
		}
	}
	return false
}

// NearestStart finds the legal start time closest to desired for an
// activity of the given duration. Each allowed interval that can host the
// duration contributes one candidate, desired clamped into the interval's
// feasible start range; the candidate with the smallest distance wins and
// ties go to the earlier interval. The boolean is false when no interval
// is long enough, which callers must treat differently from a legal but
// distant start.
func NearestStart(desired, duration float64, allowed []Interval) (float64, bool) {
	best := 0.0
	bestDist := math.Inf(1)
	found := false
	for _, iv := range allowed {
		latest := iv.End - duration
		if latest < iv.Start {
			continue
		}
		candidate := desired
		if candidate < iv.Start {
			candidate = iv.Start
		}
		if candidate > latest {
			candidate = latest
		}
		if dist := math.Abs(candidate - desired); dist < bestDist {
			best, bestDist, found = candidate, dist, true
		}
	}
	return best, found
}

// SnapToGrid rounds value to the nearest multiple of step. A zero or
// negative step disables grid snapping and returns value unchanged.
func SnapToGrid(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}
