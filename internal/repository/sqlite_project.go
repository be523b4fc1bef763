package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shamsu/conops/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over the projects table. The
// document travels as a JSON blob in the data column, so schema changes in
// the document never require a table migration; old blobs decode through
// the document defaults.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	data, err := json.Marshal(p.Doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, data, created_at) VALUES (?, ?, ?)`,
		p.Name, string(data), p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading assigned project id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, data, created_at FROM projects WHERE id = ?`, id)

	var p domain.Project
	var data, createdAt string
	if err := row.Scan(&p.ID, &p.Name, &data, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	// Decode over a defaults-filled document so blobs saved before a field
	// existed pick up its default.
	p.Doc = domain.NewDocument()
	if err := json.Unmarshal([]byte(data), &p.Doc); err != nil {
		return nil, fmt.Errorf("decoding document for project %d: %w", id, err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.CreatedAt = created
	return &p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]ProjectSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var summaries []ProjectSummary
	for rows.Next() {
		var s ProjectSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
