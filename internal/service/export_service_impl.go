package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shamsu/conops/internal/basespec"
	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/export"
)

type exportService struct {
	writer   *export.Writer
	profiles *basespec.Store
	fallback string
	now      func() time.Time
	observer UseCaseObserver
}

// NewExportService builds the exporter. fallbackProfile is merged for
// documents that name no template of their own.
func NewExportService(writer *export.Writer, profiles *basespec.Store, fallbackProfile string, observers ...UseCaseObserver) ExportService {
	return &exportService{
		writer:   writer,
		profiles: profiles,
		fallback: fallbackProfile,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Export writes the three artifacts for one document: the merged full
// mission spec, the bare conops patch, and the markdown summary. A
// document whose template profile is missing still exports; the full
// spec is then just the patch.
func (s *exportService) Export(ctx context.Context, doc domain.Document) (result *contract.ExportResult, err error) {
	startedAt := s.now().UTC()
	profile := doc.Template
	if profile == "" {
		profile = s.fallback
	}
	fields := map[string]any{
		"template":   profile,
		"activities": len(doc.Activities),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	patch := export.BuildPatch(&doc)

	base, err := s.profiles.Get(profile)
	if err != nil {
		if !errors.Is(err, basespec.ErrNotFound) {
			return nil, fmt.Errorf("loading base spec: %w", err)
		}
		base = nil
	}
	fields["base_found"] = base != nil

	full, err := export.BuildFullSpec(patch, base)
	if err != nil {
		return nil, fmt.Errorf("building full spec: %w", err)
	}

	missionName, patchName, summaryName := export.ArtifactNames(startedAt)
	if err := s.writer.WriteYAML(missionName, full); err != nil {
		return nil, fmt.Errorf("writing mission spec: %w", err)
	}
	if err := s.writer.WriteYAML(patchName, patch); err != nil {
		return nil, fmt.Errorf("writing conops patch: %w", err)
	}
	if err := s.writer.WriteRaw(summaryName, []byte(export.Summary(&doc))); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}

	return &contract.ExportResult{
		Dir:         s.writer.Dir(),
		MissionFile: missionName,
		PatchFile:   patchName,
		SummaryFile: summaryName,
	}, nil
}
