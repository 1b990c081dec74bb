package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_type TEXT NOT NULL,
		duration      INTEGER NOT NULL,
		start_time    INTEGER NOT NULL,
		end_time      INTEGER NOT NULL,
		description   TEXT,
		created_at    INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_activity ON sessions(activity_type)`,

	`CREATE TABLE IF NOT EXISTS insights_cache (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		insight_type      TEXT NOT NULL,
		generated_at      INTEGER NOT NULL,
		data_hash         TEXT NOT NULL,
		insight_text      TEXT NOT NULL,
		time_period_start INTEGER NOT NULL,
		time_period_end   INTEGER NOT NULL,
		UNIQUE(insight_type, time_period_start, time_period_end)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_insights_type ON insights_cache(insight_type)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_period ON insights_cache(time_period_start, time_period_end)`,
}
