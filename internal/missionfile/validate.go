package missionfile

import (
	"fmt"

	"github.com/shamsu/conops/internal/domain"
)

// Validate checks the structural rules a document must satisfy and returns
// every violation found. Activity geometry is deliberately not checked
// here: a misplaced activity is a placement violation the engine explains,
// not a malformed file.
func Validate(doc *domain.Document) []error {
	var errs []error

	if doc.Intent == "" {
		errs = append(errs, fmt.Errorf("intent is required"))
	}
	if doc.Stakeholders == "" {
		errs = append(errs, fmt.Errorf("stakeholders is required"))
	}
	if len(doc.Phases) == 0 {
		errs = append(errs, fmt.Errorf("phases: at least one phase is required"))
	}

	errs = append(errs, validatePhases(doc.Phases)...)
	errs = append(errs, validateWindows(doc.Windows)...)
	errs = append(errs, validateMasks(doc.WindowMasks)...)
	errs = append(errs, validateSourceRules(doc.SourceRules)...)
	errs = append(errs, validateManualBlocks(doc.ManualTimeBlocks)...)
	errs = append(errs, validateActivities(doc.Activities)...)
	errs = append(errs, validateRequirementRules(doc.RequirementRules)...)
	errs = append(errs, validateOverrides(doc.PhasePolicyOverrides, doc.Phases)...)

	return errs
}

func validatePhases(phases []domain.Phase) []error {
	var errs []error
	for i, p := range phases {
		prefix := fmt.Sprintf("phases[%d]", i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be positive", prefix))
		}
	}
	return errs
}

func validateWindows(windows []domain.LegacyWindow) []error {
	var errs []error
	for i, w := range windows {
		prefix := fmt.Sprintf("windows[%d]", i)
		if w.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if w.End <= w.Start {
			errs = append(errs, fmt.Errorf("%s: end must be > start", prefix))
		}
	}
	return errs
}

func validateMasks(masks []domain.WindowMask) []error {
	var errs []error
	for i, m := range masks {
		prefix := fmt.Sprintf("window_masks[%d]", i)
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !domain.ValidMaskModes[m.Mode] {
			errs = append(errs, fmt.Errorf("%s.mode: invalid value %q", prefix, m.Mode))
		}
	}
	return errs
}

func validateSourceRules(rules []domain.SourceRule) []error {
	var errs []error
	for i, r := range rules {
		prefix := fmt.Sprintf("source_rules[%d]", i)
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !domain.ValidMaskModes[r.Mode] {
			errs = append(errs, fmt.Errorf("%s.mode: invalid value %q", prefix, r.Mode))
		}
	}
	return errs
}

func validateManualBlocks(blocks []domain.ManualTimeBlock) []error {
	var errs []error
	for i, b := range blocks {
		prefix := fmt.Sprintf("manual_time_blocks[%d]", i)
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if b.End <= b.Start {
			errs = append(errs, fmt.Errorf("%s: end must be > start", prefix))
		}
		if !domain.ValidMaskModes[b.Mode] {
			errs = append(errs, fmt.Errorf("%s.mode: invalid value %q", prefix, b.Mode))
		}
	}
	return errs
}

func validateActivities(activities []domain.Activity) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, a := range activities {
		prefix := fmt.Sprintf("activities[%d]", i)
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if a.Row < 0 {
			errs = append(errs, fmt.Errorf("%s.row must not be negative", prefix))
		}
		if a.ID != "" {
			if seen[a.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, a.ID))
			}
			seen[a.ID] = true
		}
	}
	return errs
}

func validateRequirementRules(rules []domain.RequirementRule) []error {
	var errs []error
	for i, r := range rules {
		prefix := fmt.Sprintf("requirement_rules[%d]", i)
		if r.ActivityType == "" {
			errs = append(errs, fmt.Errorf("%s.activity_type is required", prefix))
		}
		if r.Rule == "" {
			errs = append(errs, fmt.Errorf("%s.rule is required", prefix))
		}
	}
	return errs
}

func validateOverrides(overrides []domain.PhasePolicyOverride, phases []domain.Phase) []error {
	var errs []error
	names := make(map[string]bool, len(phases))
	for _, p := range phases {
		names[p.Name] = true
	}
	for i, o := range overrides {
		prefix := fmt.Sprintf("phase_policy_overrides[%d]", i)
		if o.Phase == "" {
			errs = append(errs, fmt.Errorf("%s.phase is required", prefix))
		} else if !names[o.Phase] {
			errs = append(errs, fmt.Errorf("%s.phase: phase %q not found", prefix, o.Phase))
		}
	}
	return errs
}
