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

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesDraftSnapshotTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='draft_snapshot'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "draft_snapshot", name)

	rows, err := db.Query(`SELECT name FROM pragma_table_info('draft_snapshot')`)
	require.NoError(t, err)
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var c string
		require.NoError(t, rows.Scan(&c))
		cols = append(cols, c)
	}
	require.NoError(t, rows.Err())
	assert.ElementsMatch(t, []string{"id", "encoding", "payload", "title", "name", "version", "updated_at", "item_count"}, cols)
}

func TestMigrate_SingleSlotConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO draft_snapshot (id, encoding, payload, updated_at) VALUES ('other', 'json', x'7B7D', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "only the 'current' slot may exist")

	_, err = db.Exec(`INSERT INTO draft_snapshot (id, encoding, payload, updated_at) VALUES ('current', 'gzip', x'7B7D', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown encodings are rejected")
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "drafts.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}
