package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every open.
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
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		sort_order INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		tags             TEXT NOT NULL DEFAULT '[]',
		project_id       TEXT REFERENCES projects(id) ON DELETE SET NULL,
		parent_task_id   TEXT REFERENCES tasks(id),
		priority         TEXT NOT NULL DEFAULT ''
		                 CHECK(priority IN ('', 'low', 'medium', 'high')),
		urgency          TEXT NOT NULL DEFAULT ''
		                 CHECK(urgency IN ('', 'today', 'tomorrow', 'week', 'month', 'someday')),
		emotional_weight TEXT NOT NULL DEFAULT ''
		                 CHECK(emotional_weight IN ('', 'easy', 'neutral', 'stressful', 'dreading')),
		energy_required  TEXT NOT NULL DEFAULT ''
		                 CHECK(energy_required IN ('', 'low', 'medium', 'high')),
		importance       INTEGER NOT NULL DEFAULT 0,
		estimated_min    REAL NOT NULL DEFAULT 0,
		due_date         TEXT,
		completed        INTEGER NOT NULL DEFAULT 0,
		archived         INTEGER NOT NULL DEFAULT 0,
		completed_at     TEXT,
		deleted_at       TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS task_categories (
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, category_id)
	)`,

	`CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, depends_on_id),
		CHECK (task_id != depends_on_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_dependencies_depends_on ON task_dependencies(depends_on_id)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		entry_date   TEXT NOT NULL,
		week         INTEGER NOT NULL,
		year         INTEGER NOT NULL,
		section      TEXT NOT NULL
		             CHECK(section IN ('wins', 'challenges', 'gratitude', 'nextweek', 'freeform')),
		prompt_index INTEGER NOT NULL DEFAULT 0,
		content      TEXT NOT NULL DEFAULT '',
		mood         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_journal_entries_bucket ON journal_entries(user_id, year, week)`,
}
