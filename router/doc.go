// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router provides HTTP route configuration for the cinereq API.

# Routes

Public endpoints:

	GET  /                         - API identification
	GET  /health                   - Health check
	GET  /metrics                  - Prometheus metrics
	GET  /entries                  - Full ranked list (unpaginated)
	GET  /entries/pending          - Ranked pending entries (paginated)
	GET  /entries/reviewed         - Ranked reviewed entries (paginated)
	GET  /entries/{id}             - Single entry by ID
	POST /entries                  - Submit a title by IMDb ID or URL
	POST /entries/{id}/votes       - Cast a vote

Admin endpoints:

	GET   /admin/entries            - Paginated searchable list of all entries
	PATCH /admin/entries/{id}/flags - Update review flags

# Usage

	mux := router.NewRouter(db, cfg, resolver)
	server := http.Server{
		Addr:    ":4000",
		Handler: middleware.CORS(mux),
	}

All routes use Go 1.22+ method-based routing patterns. Handlers are
wrapped with request logging.
*/
package router
