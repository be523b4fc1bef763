package contract

// DefaultGridStep is the editor's drag resolution in mission days.
const DefaultGridStep = 0.5

// SnapRequest asks for the nearest legal start for a proposed placement.
// GridStep quantizes the desired time before the search; zero disables
// the grid.
type SnapRequest struct {
	Desired  float64 `json:"desired"`
	Duration float64 `json:"duration"`
	GridStep float64 `json:"grid_step"`
}

// NewSnapRequest returns a request with the default grid step.
func NewSnapRequest(desired, duration float64) SnapRequest {
	return SnapRequest{
		Desired:  desired,
		Duration: duration,
		GridStep: DefaultGridStep,
	}
}

// SnapResult is the solver's answer. Feasible is false when no allowed
// interval can host the duration, in which case Start is meaningless.
type SnapResult struct {
	Start    float64 `json:"start"`
	Feasible bool    `json:"feasible"`
}
