// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mahsadev/cinereq/catalog"
	"github.com/mahsadev/cinereq/cliparse"
	"github.com/mahsadev/cinereq/handlers"
	"github.com/mahsadev/cinereq/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, resolver catalog.Resolver) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(db, cfg)
	ingestHandler := handlers.NewIngestHandler(db, cfg, resolver)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public entry views
	mux.HandleFunc("GET /entries", middleware.WithLogging(entryHandler.ListAll))
	mux.HandleFunc("GET /entries/pending", middleware.WithLogging(entryHandler.ListPending))
	mux.HandleFunc("GET /entries/reviewed", middleware.WithLogging(entryHandler.ListReviewed))
	mux.HandleFunc("GET /entries/{id}", middleware.WithLogging(entryHandler.GetEntry))

	// Submission and voting
	mux.HandleFunc("POST /entries", middleware.WithLogging(ingestHandler.Ingest))
	mux.HandleFunc("POST /entries/{id}/votes", middleware.WithLogging(voteHandler.CastVote))

	// Curation (admin views)
	mux.HandleFunc("GET /admin/entries", middleware.WithLogging(adminHandler.ListForAdmin))
	mux.HandleFunc("PATCH /admin/entries/{id}/flags", middleware.WithLogging(adminHandler.UpdateFlags))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cinereq API v1"))
	})

	return mux
}
