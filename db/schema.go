// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

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
-- Catalog entries, one per distinct IMDb id
CREATE TABLE IF NOT EXISTS entry (
    id TEXT PRIMARY KEY,
    external_id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    year INTEGER NOT NULL,
    kind TEXT NOT NULL DEFAULT 'movie',
    director TEXT,
    cast_names TEXT,
    synopsis TEXT,
    poster_url TEXT,
    rating REAL,
    genres TEXT,
    external_url TEXT NOT NULL,
    vote_count INTEGER NOT NULL DEFAULT 0,
    requested_at BIGINT NOT NULL,
    requested_by TEXT,
    dub_added BOOLEAN NOT NULL DEFAULT FALSE,
    subtitle_added BOOLEAN NOT NULL DEFAULT FALSE,
    content_issue BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_entry_vote_count ON entry(vote_count);
CREATE INDEX IF NOT EXISTS idx_entry_requested_at ON entry(requested_at);

-- Vote audit rows, write-once, never deleted
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    entry_id TEXT NOT NULL REFERENCES entry(id) ON DELETE CASCADE,
    session_id TEXT,
    user_id TEXT,
    voted_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_entry ON vote(entry_id);
CREATE INDEX IF NOT EXISTS idx_vote_entry_session ON vote(entry_id, session_id);

-- User-channel dedup is permanent, so it gets a real constraint.
-- Session-channel dedup is a rolling window and is enforced in the
-- vote transaction instead.
CREATE UNIQUE INDEX IF NOT EXISTS idx_vote_entry_user
    ON vote(entry_id, user_id) WHERE user_id IS NOT NULL;
`
