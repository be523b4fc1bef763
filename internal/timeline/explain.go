package timeline

import "github.com/shamsu/conops/internal/domain"

// ViolationCode identifies one reason a placement is illegal. Codes are
// stable API; messages are for operators.
type ViolationCode string

const (
	ViolationStartsBeforeTimeline ViolationCode = "STARTS_BEFORE_TIMELINE"
	ViolationNonpositiveDuration  ViolationCode = "NONPOSITIVE_DURATION"
	ViolationOutsideAllowed       ViolationCode = "OUTSIDE_ALLOWED_WINDOWS"
	ViolationDenyOverlap          ViolationCode = "DENY_OVERLAP"
	ViolationRequiresContact      ViolationCode = "REQUIRES_CONTACT"
	ViolationContactOrBlackout    ViolationCode = "REQUIRES_CONTACT_OR_BLACKOUT"
	ViolationDuringEclipse        ViolationCode = "FORBID_DURING_ECLIPSE"
)

// Violation is one failed placement check.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
}

// PlacementReport is the result of explaining one activity placement.
type PlacementReport struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations,omitempty"`
}

// Messages returns the violation messages in report order.
func (r PlacementReport) Messages() []string {
	msgs := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Explain validates one activity placement and reports every violation in
// a fixed order: timeline bounds, duration sanity, containment in the
// allowed set, raw deny-mask overlap, then requirement-rule gating. The
// checks are independent, so a single bad placement can surface several
// violations at once. An empty report means the placement is legal.
//
// allowed must be the canonical set from BuildAllowed; deny must be the
// raw spans from DenySpans. Both derive from the same masks that gating
// reads, but they are passed separately because callers typically have
// them precomputed per document rather than per activity.
func Explain(act domain.Activity, allowed []Interval, deny []Interval, masks []domain.WindowMask, rules []domain.RequirementRule) PlacementReport {
	var violations []Violation
	start, end := act.Start, act.End()

	if start < 0 {
		violations = append(violations, Violation{
			Code:    ViolationStartsBeforeTimeline,
			Message: "starts before timeline begins",
		})
	}
	if end <= start {
		violations = append(violations, Violation{
			Code:    ViolationNonpositiveDuration,
			Message: "duration must be positive",
		})
	}
	if !Contains(allowed, start, end) {
		violations = append(violations, Violation{
			Code:    ViolationOutsideAllowed,
			Message: "not fully inside allowed windows",
		})
	}
	for _, d := range deny {
		if overlapsSpan(start, end, d.Start, d.End) {
			violations = append(violations, Violation{
				Code:    ViolationDenyOverlap,
				Message: "overlaps deny windows",
			})
			break
		}
	}
	violations = append(violations, EvaluateRules(act, masks, rules)...)

	return PlacementReport{OK: len(violations) == 0, Violations: violations}
}
