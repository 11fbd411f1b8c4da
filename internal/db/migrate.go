package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are idempotent statements re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		provider   TEXT NOT NULL,
		joined_at  TEXT NOT NULL,
		level      INTEGER NOT NULL DEFAULT 1,
		points     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS routines (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		points          INTEGER NOT NULL DEFAULT 0,
		frequency       TEXT NOT NULL CHECK(frequency IN ('daily','weekly','monthly')),
		frequency_count INTEGER NOT NULL DEFAULT 1,
		time            TEXT,
		duration_min    INTEGER,
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_routines_user ON routines(user_id)`,

	`CREATE TABLE IF NOT EXISTS routine_daily_slots (
		routine_id   INTEGER NOT NULL REFERENCES routines(id) ON DELETE CASCADE,
		slot_index   INTEGER NOT NULL,
		time         TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		PRIMARY KEY (routine_id, slot_index)
	)`,

	`CREATE TABLE IF NOT EXISTS routine_weekday_slots (
		routine_id   INTEGER NOT NULL REFERENCES routines(id) ON DELETE CASCADE,
		weekday      INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		time         TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		PRIMARY KEY (routine_id, weekday, time)
	)`,

	`CREATE TABLE IF NOT EXISTS routine_month_days (
		routine_id INTEGER NOT NULL REFERENCES routines(id) ON DELETE CASCADE,
		day        INTEGER NOT NULL CHECK(day BETWEEN 1 AND 31),
		PRIMARY KEY (routine_id, day)
	)`,

	// No foreign key on routine_id: completion records outlive the
	// routines they reference, historical points stand.
	`CREATE TABLE IF NOT EXISTS completions (
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date_key    TEXT NOT NULL,
		instance_id TEXT NOT NULL,
		routine_id  INTEGER NOT NULL,
		status      TEXT NOT NULL CHECK(status IN ('completed','skipped')),
		recorded_at TEXT NOT NULL,
		PRIMARY KEY (user_id, date_key, instance_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_day ON completions(user_id, date_key)`,

	`CREATE TABLE IF NOT EXISTS performance_history (
		user_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date_key TEXT NOT NULL,
		progress INTEGER NOT NULL,
		PRIMARY KEY (user_id, date_key)
	)`,

	`CREATE TABLE IF NOT EXISTS notified (
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date_key    TEXT NOT NULL,
		instance_id TEXT NOT NULL,
		PRIMARY KEY (user_id, date_key, instance_id)
	)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate re-runs of ALTER TABLE statements added later.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
