package domain

// Activity is a discrete operation placed on the mission timeline. Start
// is an offset in mission days, Row is the swimlane it renders in. The ID
// is assigned once when the activity first enters a document and is never
// regenerated, so references survive edits and re-imports.
type Activity struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string  `json:"name" yaml:"name"`
	Start    float64 `json:"start" yaml:"start"`
	Duration float64 `json:"duration" yaml:"duration"`
	Row      int     `json:"row" yaml:"row"`
}

// End returns the exclusive end of the activity's footprint.
func (a Activity) End() float64 {
	return a.Start + a.Duration
}
