// Package testutil provides fixtures and an in-memory database for tests
// across the conops packages.
package testutil

import (
	"github.com/google/uuid"
	"github.com/shamsu/conops/internal/domain"
)

// Document options
type DocumentOption func(*domain.Document)

func WithIntent(intent string) DocumentOption {
	return func(d *domain.Document) {
		d.Intent = intent
	}
}

func WithPhase(name string, duration float64) DocumentOption {
	return func(d *domain.Document) {
		d.Phases = append(d.Phases, domain.Phase{
			Name:     name,
			Order:    len(d.Phases),
			Duration: duration,
		})
	}
}

func WithLegacyWindow(name string, start, end float64) DocumentOption {
	return func(d *domain.Document) {
		d.Windows = append(d.Windows, domain.LegacyWindow{Name: name, Start: start, End: end})
	}
}

func WithManualBlock(name string, start, end float64, mode domain.MaskMode, source domain.SourceType) DocumentOption {
	return func(d *domain.Document) {
		d.ManualTimeBlocks = append(d.ManualTimeBlocks, domain.ManualTimeBlock{
			Name:       name,
			Start:      start,
			End:        end,
			Mode:       mode,
			SourceType: source,
		})
	}
}

func WithSourceRule(name string, mode domain.MaskMode, source domain.SourceType) DocumentOption {
	return func(d *domain.Document) {
		d.SourceRules = append(d.SourceRules, domain.SourceRule{
			Name:       name,
			Mode:       mode,
			SourceType: source,
		})
	}
}

func WithActivity(name string, start, duration float64) DocumentOption {
	return func(d *domain.Document) {
		d.Activities = append(d.Activities, domain.Activity{
			ID:       uuid.New().String(),
			Name:     name,
			Start:    start,
			Duration: duration,
			Row:      len(d.Activities),
		})
	}
}

func WithRequirementRule(activityType string, rule domain.RuleKind, threshold string) DocumentOption {
	return func(d *domain.Document) {
		d.RequirementRules = append(d.RequirementRules, domain.RequirementRule{
			ActivityType: activityType,
			Rule:         rule,
			Threshold:    threshold,
		})
	}
}

func WithPolicyOverride(phase string, autonomy *int, comms *string) DocumentOption {
	return func(d *domain.Document) {
		d.PhasePolicyOverrides = append(d.PhasePolicyOverrides, domain.PhasePolicyOverride{
			Phase:         phase,
			AutonomyLevel: autonomy,
			CommsPolicy:   comms,
		})
	}
}

// NewTestDocument builds a valid document with a single ten-day phase.
// Options append or override from there.
func NewTestDocument(opts ...DocumentOption) domain.Document {
	doc := domain.NewDocument()
	doc.Intent = "Survey the target body"
	doc.Stakeholders = "Mission ops"
	for _, opt := range opts {
		opt(&doc)
	}
	if len(doc.Phases) == 0 {
		doc.Phases = []domain.Phase{{Name: "ops", Order: 0, Duration: 10}}
	}
	return doc
}
