// Package export turns a ConOps document into the mission-spec artifacts
// downstream tooling consumes: a patch fragment, a full merged mission
// spec, and a markdown summary.
package export

import "github.com/shamsu/conops/internal/domain"

// Patch is the mission-spec fragment one document contributes. Section and
// key names match the mission spec schema, so a patch can be merged over a
// base profile field by field.
type Patch struct {
	Study               StudySection       `yaml:"study" json:"study"`
	Mission             MissionSection     `yaml:"mission" json:"mission"`
	OpsTimeline         OpsTimelineSection `yaml:"ops_timeline" json:"ops_timeline"`
	OperationalContract ContractSection    `yaml:"operational_contract" json:"operational_contract"`
}

type StudySection struct {
	Profile string `yaml:"profile" json:"profile"`
	Notes   string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

type MissionSection struct {
	Intent      string      `yaml:"intent" json:"intent"`
	Constraints Constraints `yaml:"constraints" json:"constraints"`
}

type Constraints struct {
	MaxMassKg        float64 `yaml:"max_mass_kg" json:"max_mass_kg"`
	MaxPowerW        float64 `yaml:"max_power_w" json:"max_power_w"`
	DownlinkGBPerDay float64 `yaml:"downlink_gb_per_day" json:"downlink_gb_per_day"`
	AutonomyLevel    int     `yaml:"autonomy_level" json:"autonomy_level"`
}

type OpsTimelineSection struct {
	Phases           []domain.Phase           `yaml:"phases" json:"phases"`
	ManualTimeBlocks []domain.ManualTimeBlock `yaml:"manual_time_blocks" json:"manual_time_blocks"`
	Activities       []domain.Activity        `yaml:"activities" json:"activities"`
	TimelineRows     []string                 `yaml:"timeline_rows" json:"timeline_rows"`
}

type ContractSection struct {
	Intent        string                   `yaml:"intent" json:"intent"`
	Stakeholders  string                   `yaml:"stakeholders" json:"stakeholders"`
	Objectives    Objectives               `yaml:"objectives" json:"objectives"`
	PhasePolicies PhasePolicies            `yaml:"phase_policies" json:"phase_policies"`
	WindowSources []domain.SourceRule      `yaml:"window_sources" json:"window_sources"`
	GatingRules   []domain.RequirementRule `yaml:"activity_gating_rules" json:"activity_gating_rules"`
	Traceability  Traceability             `yaml:"traceability" json:"traceability"`
}

type Objectives struct {
	Profile string `yaml:"profile" json:"profile"`
}

type PhasePolicies struct {
	AutonomyLevel int                          `yaml:"autonomy_level" json:"autonomy_level"`
	CommsPolicy   string                       `yaml:"comms_policy" json:"comms_policy"`
	Overrides     []domain.PhasePolicyOverride `yaml:"overrides" json:"overrides"`
}

type Traceability struct {
	Notes string `yaml:"notes" json:"notes"`
}

const traceabilityNote = "Declarative ConOps contract; downstream tooling computes feasibility and windows per design point."

// BuildPatch assembles the patch for one document. Operational state goes
// through the document's effective views, so legacy window masks land in
// the right section.
func BuildPatch(doc *domain.Document) Patch {
	return Patch{
		Study: StudySection{Profile: doc.Template},
		Mission: MissionSection{
			Intent: doc.Intent,
			Constraints: Constraints{
				MaxMassKg:        doc.MaxMassKg,
				MaxPowerW:        doc.MaxPowerW,
				DownlinkGBPerDay: doc.DownlinkGBPerDay,
				AutonomyLevel:    doc.AutonomyLevel,
			},
		},
		OpsTimeline: OpsTimelineSection{
			Phases:           doc.Phases,
			ManualTimeBlocks: doc.EffectiveManualBlocks(),
			Activities:       doc.Activities,
			TimelineRows:     doc.TimelineRows,
		},
		OperationalContract: ContractSection{
			Intent:       doc.Intent,
			Stakeholders: doc.Stakeholders,
			Objectives:   Objectives{Profile: doc.Template},
			PhasePolicies: PhasePolicies{
				AutonomyLevel: doc.AutonomyLevel,
				CommsPolicy:   doc.CommsPolicy,
				Overrides:     doc.PhasePolicyOverrides,
			},
			WindowSources: doc.EffectiveSourceRules(),
			GatingRules:   doc.RequirementRules,
			Traceability:  Traceability{Notes: traceabilityNote},
		},
	}
}
