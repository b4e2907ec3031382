/*
Package cliparse handles command-line flag and environment variable parsing.

# Configuration

Config holds all runtime settings:

	Port            - HTTP listen port (default 4000)
	DatabaseURL     - Database connection string (required)
	DatabaseType    - "sqlite" or "postgres" (default "sqlite")
	TMDBAPIKey      - TMDB API key for metadata resolution (required)
	TMDBBaseURL     - TMDB API base URL (override for testing)
	DedupWindow     - Session vote deduplication window (default 24h)
	IngestStrategy  - "ingest-only" or "ingest-and-auto-vote"
	DefaultPageSize - Page size when page_size is absent (default 12)

# Flags and Environment

Each flag falls back to an environment variable when unset:

	-p              PORT
	-d              DATABASE_URL
	-t              DATABASE_TYPE
	-tmdb-key       TMDB_API_KEY
	-tmdb-url       TMDB_BASE_URL
	-dedup-window   DEDUP_WINDOW
	-ingest-strategy INGEST_STRATEGY
	-page-size      PAGE_SIZE

# Validation

ParseFlags returns an error when DatabaseURL or TMDBAPIKey is missing,
when DatabaseType or IngestStrategy is unrecognized, or when DedupWindow
or DefaultPageSize is not positive.
*/
package cliparse
