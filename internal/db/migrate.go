package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is IF NOT EXISTS,
// so re-running the full list on an existing index is a no-op.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS proposals (
		dip            INTEGER PRIMARY KEY CHECK(dip > 0),
		title          TEXT NOT NULL DEFAULT '',
		author         TEXT NOT NULL DEFAULT '',
		review_count   INTEGER NOT NULL DEFAULT 0 CHECK(review_count >= 0),
		implementation TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL
		               CHECK(status IN ('Draft','Community Review','Formal Review',
		                                'Accepted','Rejected','Final','Postponed',
		                                'Superseded','Withdrawn')),
		body           TEXT NOT NULL DEFAULT '',
		source_file    TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_proposals_status ON proposals(status)`,

	`CREATE TABLE IF NOT EXISTS sync_runs (
		id             TEXT PRIMARY KEY,
		root           TEXT NOT NULL,
		document_count INTEGER NOT NULL DEFAULT 0,
		error_count    INTEGER NOT NULL DEFAULT 0,
		ran_at         TEXT NOT NULL
	)`,
}
