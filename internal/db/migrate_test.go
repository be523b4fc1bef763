package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// OpenDB already migrated once; running again must be a no-op.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesProjectsTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='projects'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "projects", name)

	_, err = db.Exec(`INSERT INTO projects (name, data, created_at) VALUES ('demo', '{}', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var id int64
	require.NoError(t, db.QueryRow(`SELECT id FROM projects WHERE name='demo'`).Scan(&id))
	assert.Equal(t, int64(1), id, "ids come from the autoincrement column")
}

func TestMigrate_CreatesCreatedAtIndex(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_projects_created'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "idx_projects_created", name)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "conops.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())
}
