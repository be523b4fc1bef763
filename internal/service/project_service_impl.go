package service

import (
	"context"
	"time"

	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func (s *projectService) Save(ctx context.Context, name string, doc domain.Document) (p *domain.Project, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"name": name, "activities": len(doc.Activities)}
		if p != nil {
			fields["project_id"] = p.ID
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "project_save",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	p = &domain.Project{Name: name, Doc: doc}
	if err = s.projects.Create(ctx, p); err != nil {
		p = nil
		return nil, err
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]repository.ProjectSummary, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	startedAt := time.Now().UTC()
	err := s.projects.Delete(ctx, id)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "project_delete",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"project_id": id},
	})
	return err
}
