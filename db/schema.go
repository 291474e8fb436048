// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens the SQLite database at path and applies connection pragmas.
// The connection pool is capped at a single connection: SQLite has one
// writer, and a single pool connection also keeps :memory: databases
// coherent in tests.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Participants: one row per registration, never mutated.
-- assigned_foundations and samples_json are JSON snapshots taken at
-- registration so re-fetching the served list is deterministic.
CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    assigned_foundations TEXT NOT NULL,
    samples_json TEXT NOT NULL,
    name TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Responses: one row per (participant, sample). Re-submitting the same
-- sample overwrites via ON CONFLICT in the submit handler.
CREATE TABLE IF NOT EXISTS responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    participant_id TEXT NOT NULL,
    sample_id INTEGER NOT NULL,
    rating INTEGER NOT NULL CHECK (rating >= 0 AND rating <= 4),
    note TEXT,
    ts TIMESTAMP NOT NULL,
    UNIQUE (participant_id, sample_id)
);

CREATE INDEX IF NOT EXISTS idx_responses_participant ON responses(participant_id);
CREATE INDEX IF NOT EXISTS idx_responses_ts ON responses(ts);
`
