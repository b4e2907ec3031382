// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the cinereq API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - EntryHandler: Ranked entry listings (all, pending, reviewed, by id)
  - IngestHandler: IMDb submission and catalog resolution
  - VoteHandler: Vote casting with deduplication
  - AdminHandler: Curation views and review-flag updates

Handlers are created via constructor functions that accept *sql.DB and
Config; IngestHandler additionally takes a catalog.Resolver:

	entryHandler := handlers.NewEntryHandler(db, cfg)

# Submission Flow

Anyone can submit an IMDb link; the catalog collaborator fills in the
metadata and the entry is created exactly once per IMDb id:

	POST /entries              → Ingest (409 on a known id)
	POST /entries/{id}/votes   → CastVote (409 on a duplicate vote)

Voter identity comes from the optional X-Session-Token and X-User-ID
headers. Both are opaque client-supplied strings; the server never issues
or validates them. Session dedup is a rolling 24-hour window, user dedup
is permanent - see CastVote.

# Ranking and Pagination

Display order and page math live in ranking.go as pure functions:

	RankEntries(entries)
	entries = FilterEntries(entries, term)
	items, info := Paginate(entries, page, pageSize)

Entries rank by vote count descending, then by request time ascending.
The listing endpoints apply these to a bucket:

	GET /entries           → full ranked list, unpaginated
	GET /entries/pending   → entries with no review flags, paginated
	GET /entries/reviewed  → entries with at least one flag, paginated
	GET /admin/entries     → everything, paginated, searchable with ?q=

# Curation

Review flags are three independent booleans set by curators:

	PATCH /admin/entries/{id}/flags → UpdateFlags (partial update)

Setting any flag moves the entry from the pending listing to the reviewed
one on the next read; nothing else about the entry changes.
*/
package handlers
