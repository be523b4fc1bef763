package domain

// MaskMode partitions window masks into the two roles the window builder
// understands. Anything else is ignored by the engine so newer documents
// stay loadable.
type MaskMode string

const (
	MaskAllow MaskMode = "allow"
	MaskDeny  MaskMode = "deny"
)

var ValidMaskModes = map[MaskMode]bool{
	MaskAllow: true,
	MaskDeny:  true,
}

// SourceType names the physical or operational origin of a window
// declaration. Gating rules key off a handful of these; the rest are
// carried for display and export.
type SourceType string

const (
	SourceGroundContact       SourceType = "ground_contact"
	SourceImagingWindow       SourceType = "imaging_window"
	SourceApproachWindow      SourceType = "approach_window"
	SourceThrusterAllowed     SourceType = "thruster_allowed"
	SourceCommsBlackout       SourceType = "comms_blackout"
	SourceEclipse             SourceType = "eclipse"
	SourceStarTrackerBlinding SourceType = "star_tracker_blinding"
	SourceKeepOutGeometry     SourceType = "keep_out_geometry"
	SourceManual              SourceType = "manual"
)

var ValidSourceTypes = map[SourceType]bool{
	SourceGroundContact:       true,
	SourceImagingWindow:       true,
	SourceApproachWindow:      true,
	SourceThrusterAllowed:     true,
	SourceCommsBlackout:       true,
	SourceEclipse:             true,
	SourceStarTrackerBlinding: true,
	SourceKeepOutGeometry:     true,
	SourceManual:              true,
}

// RuleKind identifies a requirement-rule check. Unknown kinds evaluate as
// no-ops rather than errors, so a rule vocabulary can grow ahead of the
// engines consuming it.
type RuleKind string

const (
	RuleRequiresContact         RuleKind = "requires_contact"
	RuleContactOrBlackoutAtMost RuleKind = "requires_contact_or_blackout_leq"
	RuleForbidDuringEclipse     RuleKind = "forbid_during_eclipse"
)

var ValidRuleKinds = map[RuleKind]bool{
	RuleRequiresContact:         true,
	RuleContactOrBlackoutAtMost: true,
	RuleForbidDuringEclipse:     true,
}
