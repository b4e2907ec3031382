// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

# Tables

entry - one row per distinct IMDb id:

  - entry.external_id (unique) enforces the one-entry-per-id invariant at the
    database, so concurrent ingests of the same id cannot both create a row
  - vote_count is only ever changed by the vote transaction
    (vote_count = vote_count + 1), never overwritten
  - cast_names and genres are JSON-encoded TEXT
  - requested_at is epoch milliseconds and is the ranking tie-break

vote - write-once audit rows behind vote deduplication:

  - (entry_id, user_id) unique where user_id is set: a user votes for an
    entry at most once, ever
  - session-channel duplicates are a rolling 24h window and cannot be a
    stored constraint; the vote transaction checks voted_at against the
    window cutoff

# Drivers

The schema and all queries use $1-style placeholders in argument order,
which both lib/pq and modernc sqlite accept. Timestamps are stored as
BIGINT epoch milliseconds to keep window arithmetic identical across
drivers.
*/
package db
