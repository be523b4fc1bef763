package domain

// Operational defaults for documents that do not set their own. They match
// the base mission profile and are applied before decoding, so only absent
// fields pick them up.
const (
	DefaultTemplate         = "base"
	DefaultAutonomyLevel    = 2
	DefaultCommsPolicy      = "store-and-forward"
	DefaultMaxMassKg        = 200
	DefaultMaxPowerW        = 500
	DefaultDownlinkGBPerDay = 5
)

// Document is a complete concept-of-operations input: mission framing,
// timeline phases, window declarations, placed activities, and gating
// rules. It is the unit that gets validated, persisted, and exported.
type Document struct {
	Intent       string `json:"intent" yaml:"intent"`
	Stakeholders string `json:"stakeholders" yaml:"stakeholders"`

	Phases               []Phase               `json:"phases" yaml:"phases"`
	Windows              []LegacyWindow        `json:"windows,omitempty" yaml:"windows,omitempty"`
	WindowMasks          []WindowMask          `json:"window_masks,omitempty" yaml:"window_masks,omitempty"`
	SourceRules          []SourceRule          `json:"source_rules,omitempty" yaml:"source_rules,omitempty"`
	ManualTimeBlocks     []ManualTimeBlock     `json:"manual_time_blocks,omitempty" yaml:"manual_time_blocks,omitempty"`
	Activities           []Activity            `json:"activities,omitempty" yaml:"activities,omitempty"`
	RequirementRules     []RequirementRule     `json:"requirement_rules,omitempty" yaml:"requirement_rules,omitempty"`
	PhasePolicyOverrides []PhasePolicyOverride `json:"phase_policy_overrides,omitempty" yaml:"phase_policy_overrides,omitempty"`
	TimelineRows         []string              `json:"timeline_rows,omitempty" yaml:"timeline_rows,omitempty"`

	Template         string  `json:"template" yaml:"template"`
	AutonomyLevel    int     `json:"autonomy_level" yaml:"autonomy_level"`
	CommsPolicy      string  `json:"comms_policy" yaml:"comms_policy"`
	MaxMassKg        float64 `json:"max_mass_kg" yaml:"max_mass_kg"`
	MaxPowerW        float64 `json:"max_power_w" yaml:"max_power_w"`
	DownlinkGBPerDay float64 `json:"downlink_gb_per_day" yaml:"downlink_gb_per_day"`
}

// NewDocument returns a document with the operational defaults filled in.
// Decode file or request payloads into this value so that absent fields
// keep their defaults while explicit values, including zero, win.
func NewDocument() Document {
	return Document{
		Template:         DefaultTemplate,
		AutonomyLevel:    DefaultAutonomyLevel,
		CommsPolicy:      DefaultCommsPolicy,
		MaxMassKg:        DefaultMaxMassKg,
		MaxPowerW:        DefaultMaxPowerW,
		DownlinkGBPerDay: DefaultDownlinkGBPerDay,
	}
}

// TotalDuration is the length of the document's timeline in mission days.
func (d *Document) TotalDuration() float64 {
	return TotalDuration(d.Phases)
}

// PhaseSpans returns the derived phase layout.
func (d *Document) PhaseSpans() []PhaseSpan {
	return PhaseSpans(d.Phases)
}

// legacySplit reports whether the document's window_masks should be read as
// the old combined payload. Older frontends sent both time-bounded blocks
// and bare source declarations through window_masks; once a document has
// real source rules or manual blocks, its masks are ignored.
func (d *Document) legacySplit() bool {
	return len(d.SourceRules) == 0 && len(d.ManualTimeBlocks) == 0 && len(d.WindowMasks) > 0
}

// EffectiveManualBlocks resolves the document's time-bounded blocks:
// manual blocks, plus legacy masks with a positive span when the legacy
// split applies.
func (d *Document) EffectiveManualBlocks() []ManualTimeBlock {
	blocks := append([]ManualTimeBlock(nil), d.ManualTimeBlocks...)
	if d.legacySplit() {
		for _, m := range d.WindowMasks {
			if m.End > m.Start {
				blocks = append(blocks, ManualTimeBlock{
					Name:       m.Name,
					Start:      m.Start,
					End:        m.End,
					Mode:       m.Mode,
					SourceType: m.SourceType,
				})
			}
		}
	}
	return blocks
}

// EffectiveBlocks is EffectiveManualBlocks in the mask shape the engine
// consumes.
func (d *Document) EffectiveBlocks() []WindowMask {
	manual := d.EffectiveManualBlocks()
	blocks := make([]WindowMask, 0, len(manual))
	for _, b := range manual {
		blocks = append(blocks, b.AsMask())
	}
	return blocks
}

// EffectiveSourceRules mirrors EffectiveBlocks for the declarative side:
// legacy masks without a positive span become source rules.
func (d *Document) EffectiveSourceRules() []SourceRule {
	rules := make([]SourceRule, 0, len(d.SourceRules))
	rules = append(rules, d.SourceRules...)
	if d.legacySplit() {
		for _, m := range d.WindowMasks {
			if m.End <= m.Start {
				rules = append(rules, SourceRule{
					Name:       m.Name,
					Mode:       m.Mode,
					SourceType: m.SourceType,
					SourceRef:  m.SourceRef,
				})
			}
		}
	}
	return rules
}

// PolicyFor resolves the autonomy level and comms policy in effect during
// the named phase, applying any override on top of the document values.
func (d *Document) PolicyFor(phase string) (autonomy int, comms string) {
	autonomy = d.AutonomyLevel
	comms = d.CommsPolicy
	for _, o := range d.PhasePolicyOverrides {
		if o.Phase != phase {
			continue
		}
		if o.AutonomyLevel != nil {
			autonomy = *o.AutonomyLevel
		}
		if o.CommsPolicy != nil {
			comms = *o.CommsPolicy
		}
	}
	return autonomy, comms
}
