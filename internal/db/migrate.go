package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions tolerate re-runs by ignoring duplicate-column errors.
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
	`CREATE TABLE IF NOT EXISTS trackers (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT 'feature'
		           CHECK(type IN ('project','feature','bug')),
		priority   TEXT NOT NULL DEFAULT 'medium'
		           CHECK(priority IN ('low','medium','high','critical')),
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trackers_start ON trackers(start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_trackers_end ON trackers(end_date)`,

	// Free-form status column; the layout engine ignores it.
	`ALTER TABLE trackers ADD COLUMN status TEXT NOT NULL DEFAULT ''`,
}
