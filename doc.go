// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cinereq API server.

cinereq is a community request board for movies and series: submissions
are keyed by IMDb ID, enriched with TMDB metadata, ranked by vote count,
and curated through per-entry review flags.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=requests.db TMDB_API_KEY=... go run main.go

Or with flags:

	go run main.go -p 4000 -d requests.db -tmdb-key ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - TMDB_API_KEY (-tmdb-key): API key for metadata resolution

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DEDUP_WINDOW (-dedup-window): Session vote window (default: 24h)
  - INGEST_STRATEGY (-ingest-strategy): "ingest-only" or "ingest-and-auto-vote"
  - PAGE_SIZE (-page-size): Default page size (default: 12)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (entries, ingest, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - catalog: TMDB metadata resolution
  - imdbid: IMDb identifier normalization
  - metrics: Prometheus collectors
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
