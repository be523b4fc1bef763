package contract

// ActivityReport pairs one activity with its placement explanation.
type ActivityReport struct {
	ActivityID   string      `json:"activity_id"`
	ActivityName string      `json:"activity_name"`
	Start        float64     `json:"start"`
	End          float64     `json:"end"`
	OK           bool        `json:"ok"`
	Violations   []Violation `json:"violations,omitempty"`
}

// ValidationReport is the engine's full verdict on one document: the
// derived timeline geometry plus a per-activity placement report. OK is
// true only when every activity placed legally.
type ValidationReport struct {
	TotalDuration float64          `json:"total_duration"`
	Phases        []PhaseSpan      `json:"phases"`
	Allowed       []Interval       `json:"allowed"`
	Activities    []ActivityReport `json:"activities"`
	OK            bool             `json:"ok"`
}

// ViolationCount sums the violations across all activities.
func (r ValidationReport) ViolationCount() int {
	n := 0
	for _, a := range r.Activities {
		n += len(a.Violations)
	}
	return n
}
