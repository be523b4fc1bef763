package timeline

import (
	"fmt"

	"github.com/shamsu/conops/internal/domain"
)

// MaskOverlaps summarizes which gating-relevant mask classes intersect an
// activity footprint. Overlap is computed per mask against its raw span,
// never against the merged allowed set, so a contact requirement is only
// satisfied by an actual contact window and not by permissive time that
// happens to surround one.
type MaskOverlaps struct {
	Contact  bool
	Blackout bool
	Eclipse  bool
}

// overlapsSpan is the strict half-open intersection test: touching
// boundaries do not overlap.
func overlapsSpan(start, end, spanStart, spanEnd float64) bool {
	return !(end <= spanStart || start >= spanEnd)
}

// OverlapsFor classifies the masks strictly overlapping [start, end).
func OverlapsFor(start, end float64, masks []domain.WindowMask) MaskOverlaps {
	var o MaskOverlaps
	for _, m := range masks {
		if !overlapsSpan(start, end, m.Start, m.End) {
			continue
		}
		switch {
		case m.Mode == domain.MaskAllow && m.SourceType == domain.SourceGroundContact:
			o.Contact = true
		case m.Mode == domain.MaskDeny && m.SourceType == domain.SourceCommsBlackout:
			o.Blackout = true
		case m.Mode == domain.MaskDeny && m.SourceType == domain.SourceEclipse:
			o.Eclipse = true
		}
	}
	return o
}

// EvaluateRules runs every requirement rule against the activity and
// returns one violation per failed rule, in declaration order. A rule
// applies when its activity type matches the activity name
// case-insensitively; unknown rule kinds are skipped so older engines
// tolerate newer rule vocabularies.
func EvaluateRules(act domain.Activity, masks []domain.WindowMask, rules []domain.RequirementRule) []Violation {
	var violations []Violation
	overlaps := OverlapsFor(act.Start, act.End(), masks)
	for _, rule := range rules {
		if !rule.Matches(act.Name) {
			continue
		}
		switch rule.Rule {
		case domain.RuleRequiresContact:
			if !overlaps.Contact {
				violations = append(violations, Violation{
					Code:    ViolationRequiresContact,
					Message: "requires contact window overlap",
				})
			}
		case domain.RuleContactOrBlackoutAtMost:
			// The threshold is advisory: the check is still binary
			// (contact, or no blackout at all), the threshold only
			// annotates the message for the operator.
			if !overlaps.Contact && overlaps.Blackout {
				msg := "requires contact window overlap or no comms blackout"
				if rule.Threshold != "" {
					msg = fmt.Sprintf("requires contact window overlap or comms blackout <= %s", rule.Threshold)
				}
				violations = append(violations, Violation{
					Code:    ViolationContactOrBlackout,
					Message: msg,
				})
			}
		case domain.RuleForbidDuringEclipse:
			if overlaps.Eclipse {
				violations = append(violations, Violation{
					Code:    ViolationDuringEclipse,
					Message: "forbidden during eclipse window",
				})
			}
		}
	}
	return violations
}
