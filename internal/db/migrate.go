package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The draft store is a single slot: the primary key is pinned to 'current'.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS draft_snapshot (
		id         TEXT PRIMARY KEY CHECK(id = 'current'),
		encoding   TEXT NOT NULL CHECK(encoding IN ('json','zstd+json')),
		payload    BLOB NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL DEFAULT '',
		version    TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,

	`ALTER TABLE draft_snapshot ADD COLUMN item_count INTEGER NOT NULL DEFAULT 0`,
}
