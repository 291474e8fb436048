// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection setup and schema creation.

# Opening

Open returns a *sql.DB backed by the pure-Go SQLite driver
(modernc.org/sqlite):

	conn, err := db.Open("data.db")

The pool is capped at one connection; SQLite is single-writer and the
app's write volume is one row per request.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - participants: registration snapshot (assignment pair + served sample ids)
  - responses: one rating per (participant, sample)

Both tables are append-only from the application's perspective; the only
in-place change is the response upsert on re-submission.

# Indexes

  - responses.participant_id
  - responses.ts
  - responses.(participant_id, sample_id) unique
*/
package db
