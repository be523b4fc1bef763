package domain

import "strings"

// RequirementRule gates activities of a named type on window overlaps.
// ActivityType is compared case-insensitively against the entire activity
// name; there is no separate type field on Activity, the name is the type.
type RequirementRule struct {
	ActivityType string   `json:"activity_type" yaml:"activity_type"`
	Rule         RuleKind `json:"rule" yaml:"rule"`
	Threshold    string   `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// Matches reports whether the rule applies to an activity with the given
// name.
func (r RequirementRule) Matches(activityName string) bool {
	return strings.EqualFold(r.ActivityType, activityName)
}

// PhasePolicyOverride narrows a document-wide operational policy for a
// single phase. Nil fields inherit the document value.
type PhasePolicyOverride struct {
	Phase         string  `json:"phase" yaml:"phase"`
	AutonomyLevel *int    `json:"autonomy_level,omitempty" yaml:"autonomy_level,omitempty"`
	CommsPolicy   *string `json:"comms_policy,omitempty" yaml:"comms_policy,omitempty"`
}
