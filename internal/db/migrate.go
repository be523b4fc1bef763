package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement in order. Statements are written
// to be re-runnable, so Migrate is safe to call on an already-current
// database; ALTER TABLE statements added in later versions report
// duplicate columns on re-run and are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		data       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at)`,
}
