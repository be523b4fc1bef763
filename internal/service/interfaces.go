package service

import (
	"context"

	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/repository"
)

// ValidationService answers placement questions about a document. All
// geometry is recomputed per call; documents are inputs, never state.
type ValidationService interface {
	Validate(ctx context.Context, doc domain.Document) (*contract.ValidationReport, error)
	AllowedWindows(ctx context.Context, doc domain.Document) ([]contract.Interval, error)
	ExplainActivity(ctx context.Context, doc domain.Document, ref string) (*contract.ActivityReport, error)
	NearestStart(ctx context.Context, doc domain.Document, req contract.SnapRequest) (*contract.SnapResult, error)
}

type ProjectService interface {
	Save(ctx context.Context, name string, doc domain.Document) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]repository.ProjectSummary, error)
	Delete(ctx context.Context, id int64) error
}

type ExportService interface {
	Export(ctx context.Context, doc domain.Document) (*contract.ExportResult, error)
}
