package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/timeline"
)

var (
	// ErrActivityNotFound reports an explain reference that matches no
	// activity by id or name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAmbiguousActivity reports a name shared by several activities;
	// callers must use the id instead.
	ErrAmbiguousActivity = errors.New("activity name is ambiguous")
)

type validationService struct {
	observer UseCaseObserver
}

func NewValidationService(observers ...UseCaseObserver) ValidationService {
	return &validationService{observer: useCaseObserverOrNoop(observers)}
}

// geometry bundles the per-document computations every placement
// question starts from.
type geometry struct {
	allowed []timeline.Interval
	deny    []timeline.Interval
	masks   []domain.WindowMask
}

func buildGeometry(doc *domain.Document) geometry {
	masks := doc.EffectiveBlocks()
	return geometry{
		allowed: timeline.BuildAllowed(doc.TotalDuration(), doc.Windows, masks),
		deny:    timeline.DenySpans(masks),
		masks:   masks,
	}
}

func (s *validationService) Validate(ctx context.Context, doc domain.Document) (*contract.ValidationReport, error) {
	startedAt := time.Now().UTC()
	geo := buildGeometry(&doc)

	report := &contract.ValidationReport{
		TotalDuration: doc.TotalDuration(),
		Phases:        doc.PhaseSpans(),
		Allowed:       geo.allowed,
		Activities:    make([]contract.ActivityReport, 0, len(doc.Activities)),
		OK:            true,
	}
	for _, act := range doc.Activities {
		placement := timeline.Explain(act, geo.allowed, geo.deny, geo.masks, doc.RequirementRules)
		report.Activities = append(report.Activities, contract.ActivityReport{
			ActivityID:   act.ID,
			ActivityName: act.Name,
			Start:        act.Start,
			End:          act.End(),
			OK:           placement.OK,
			Violations:   placement.Violations,
		})
		if !placement.OK {
			report.OK = false
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "validate",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields: map[string]any{
			"activities": len(report.Activities),
			"violations": report.ViolationCount(),
			"ok":         report.OK,
		},
	})
	return report, nil
}

func (s *validationService) AllowedWindows(ctx context.Context, doc domain.Document) ([]contract.Interval, error) {
	return timeline.BuildAllowed(doc.TotalDuration(), doc.Windows, doc.EffectiveBlocks()), nil
}

func (s *validationService) ExplainActivity(ctx context.Context, doc domain.Document, ref string) (*contract.ActivityReport, error) {
	act, err := resolveActivity(doc.Activities, ref)
	if err != nil {
		return nil, err
	}

	geo := buildGeometry(&doc)
	placement := timeline.Explain(*act, geo.allowed, geo.deny, geo.masks, doc.RequirementRules)
	return &contract.ActivityReport{
		ActivityID:   act.ID,
		ActivityName: act.Name,
		Start:        act.Start,
		End:          act.End(),
		OK:           placement.OK,
		Violations:   placement.Violations,
	}, nil
}

func (s *validationService) NearestStart(ctx context.Context, doc domain.Document, req contract.SnapRequest) (*contract.SnapResult, error) {
	desired := req.Desired
	if req.GridStep > 0 {
		desired = timeline.SnapToGrid(desired, req.GridStep)
	}
	allowed := timeline.BuildAllowed(doc.TotalDuration(), doc.Windows, doc.EffectiveBlocks())

	start, ok := timeline.NearestStart(desired, req.Duration, allowed)
	if !ok {
		return &contract.SnapResult{Feasible: false}, nil
	}
	return &contract.SnapResult{Start: start, Feasible: true}, nil
}

// resolveActivity finds one activity by exact id, then by case-insensitive
// name. A name shared by multiple activities cannot be resolved.
func resolveActivity(activities []domain.Activity, ref string) (*domain.Activity, error) {
	for i := range activities {
		if activities[i].ID == ref {
			return &activities[i], nil
		}
	}

	var match *domain.Activity
	for i := range activities {
		if !strings.EqualFold(activities[i].Name, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%q: %w", ref, ErrAmbiguousActivity)
		}
		match = &activities[i]
	}
	if match == nil {
		return nil, fmt.Errorf("%q: %w", ref, ErrActivityNotFound)
	}
	return match, nil
}
