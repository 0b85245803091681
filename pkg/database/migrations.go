package database

import (
	"database/sql"
	"fmt"
)

// migrations run in order on startup; every statement must be
// re-runnable. The bookings exclusion constraint is the storage-level
// backstop for the no-double-booking invariant: two active bookings on
// the same resource may never hold overlapping half-open ranges, no
// matter how many connections race the insert.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL DEFAULT 'student',
		department TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id SERIAL PRIMARY KEY,
		owner_id INTEGER NOT NULL REFERENCES users (id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		capacity INTEGER NOT NULL DEFAULT 0,
		admission_mode TEXT NOT NULL DEFAULT 'open'
			CHECK (admission_mode IN ('open', 'restricted')),
		status TEXT NOT NULL DEFAULT 'draft'
			CHECK (status IN ('draft', 'published', 'archived')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		reference UUID UNIQUE NOT NULL,
		resource_id INTEGER NOT NULL REFERENCES resources (id),
		requester_id INTEGER NOT NULL REFERENCES users (id),
		start_datetime TIMESTAMPTZ NOT NULL,
		end_datetime TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'approved', 'rejected', 'cancelled', 'completed')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (end_datetime > start_datetime),
		CONSTRAINT bookings_no_overlap EXCLUDE USING gist (
			resource_id WITH =,
			tstzrange(start_datetime, end_datetime) WITH &&
		) WHERE (status IN ('pending', 'approved'))
	)`,

	`CREATE TABLE IF NOT EXISTS waitlist (
		resource_id INTEGER NOT NULL REFERENCES resources (id),
		user_id INTEGER NOT NULL REFERENCES users (id),
		preferred_start TIMESTAMPTZ,
		preferred_end TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (resource_id, user_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_resource_status
		ON bookings (resource_id, status, start_datetime)`,
}

// Migrate brings the schema up to date.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
