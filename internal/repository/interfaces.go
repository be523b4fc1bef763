// Package repository persists named ConOps document snapshots. A saved
// project is a point-in-time copy of the whole document, stored as a JSON
// blob; the store never interprets the document beyond naming it.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shamsu/conops/internal/domain"
)

// ErrNotFound is returned when no project exists under the requested id.
var ErrNotFound = errors.New("project not found")

// ProjectSummary is the listing view of a saved project, without the
// document payload.
type ProjectSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectRepo interface {
	// Create stores a snapshot and fills in the assigned ID and CreatedAt.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	// List returns summaries oldest first.
	List(ctx context.Context) ([]ProjectSummary, error)
	Delete(ctx context.Context, id int64) error
}
