package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// The live session, stored as one serialized blob per session id.
	// Absence or an unparseable payload means "start fresh".
	`CREATE TABLE IF NOT EXISTS interview_state (
		id         TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Finished sessions archived under a timestamped key.
	`CREATE TABLE IF NOT EXISTS submissions (
		id         TEXT PRIMARY KEY,
		key        TEXT NOT NULL UNIQUE,
		user_id    TEXT NOT NULL DEFAULT 'anon',
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,

	// Bibliographic keyword lookups, cached with an expiry.
	`CREATE TABLE IF NOT EXISTS keyword_cache (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		expires_at TEXT NOT NULL
	)`,
}
