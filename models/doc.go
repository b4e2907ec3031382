// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
handlers.

# Entries

Entry is the unit everything else operates on: one row per distinct IMDb id,
carrying the resolved catalog metadata, the crowd vote count, and the three
curator review flags (dub_added, subtitle_added, content_issue). Entries with
at least one flag set form the "reviewed" bucket; the rest are "pending".
The two buckets partition the full set.

Timestamps (requested_at, voted_at) are epoch milliseconds, matching how they
are stored.

# Vote records

Vote records exist only as database rows (the vote table), written once by
the vote transaction and read back for deduplication. Their session and user
identifiers never leave the server.
*/
package models
