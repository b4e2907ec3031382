// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mahsadev/cinereq/catalog"
	"github.com/mahsadev/cinereq/cliparse"
	"github.com/mahsadev/cinereq/imdbid"
	"github.com/mahsadev/cinereq/metrics"
	"github.com/mahsadev/cinereq/middleware"
	"github.com/mahsadev/cinereq/models"
)

type IngestHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	resolver catalog.Resolver
}

func NewIngestHandler(db *sql.DB, cfg cliparse.Config, resolver catalog.Resolver) *IngestHandler {
	return &IngestHandler{db: db, cfg: cfg, resolver: resolver}
}

// Ingest handles POST /entries
// Accepts a bare IMDb id or a title URL, resolves it against the catalog,
// and creates the entry exactly once.
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req models.IngestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	externalID, err := imdbid.Normalize(req.ImdbInput)
	if err != nil {
		metrics.IngestsTotal.WithLabelValues("invalid_input").Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, "A valid IMDb id or title URL is required")
		return
	}

	// Fast path: reject known ids without a catalog round-trip.
	var existing string
	err = h.db.QueryRow(`SELECT id FROM entry WHERE external_id = $1`, externalID).Scan(&existing)
	if err == nil {
		metrics.IngestsTotal.WithLabelValues("already_exists").Inc()
		middleware.ErrorResponse(w, http.StatusConflict, "This title has already been requested")
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	title, err := h.resolver.Resolve(r.Context(), externalID)
	if errors.Is(err, catalog.ErrNotFound) {
		metrics.IngestsTotal.WithLabelValues("not_found_upstream").Inc()
		middleware.ErrorResponse(w, http.StatusNotFound, "No matching title found for that IMDb id")
		return
	}
	if err != nil {
		slog.Error("catalog lookup failed", "error", err, "external_id", externalID)
		metrics.IngestsTotal.WithLabelValues("upstream_error").Inc()
		middleware.ErrorResponse(w, http.StatusBadGateway, "Title lookup failed, try again later")
		return
	}

	entryID := uuid.NewString()
	now := time.Now()
	userID := r.Header.Get("X-User-ID")

	castJSON, err := json.Marshal(title.Cast)
	if err != nil {
		slog.Error("failed to encode cast", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}
	genresJSON, err := json.Marshal(title.Genres)
	if err != nil {
		slog.Error("failed to encode genres", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO entry (id, external_id, title, year, kind, director, cast_names,
		                   synopsis, poster_url, rating, genres, external_url,
		                   vote_count, requested_at, requested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13, $14)
	`, entryID, externalID, title.Title, title.Year, title.Kind, title.Director,
		string(castJSON), title.Synopsis, title.PosterURL, title.Rating,
		string(genresJSON), imdbid.TitleURL(externalID), now.UnixMilli(),
		nullIfEmpty(userID))

	if err != nil {
		// Concurrent ingest of the same id: the loser hits the unique
		// index on external_id and must observe AlreadyExists.
		if isUniqueViolation(err) {
			metrics.IngestsTotal.WithLabelValues("already_exists").Inc()
			middleware.ErrorResponse(w, http.StatusConflict, "This title has already been requested")
			return
		}
		slog.Error("failed to insert entry", "error", err, "external_id", externalID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	message := "Entry created"
	if h.cfg.IngestStrategy == models.StrategyIngestAutoVote {
		// The submitter's vote goes through the normal dedup path, so a
		// duplicate here is not an error.
		sessionID := r.Header.Get("X-Session-Token")
		err := CastVote(h.db, entryID, sessionID, userID, now, h.cfg.DedupWindow)
		switch {
		case err == nil:
			metrics.VotesTotal.WithLabelValues("accepted").Inc()
			message = "Entry created with your vote"
		case err == ErrDuplicateVote:
			metrics.VotesTotal.WithLabelValues("duplicate").Inc()
		default:
			slog.Warn("auto-vote failed", "error", err, "entry_id", entryID)
		}
	}

	slog.Info("entry ingested", "entry_id", entryID, "external_id", externalID,
		"kind", title.Kind, "title", title.Title)
	metrics.IngestsTotal.WithLabelValues("created").Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.IngestResponse{
		EntryID: entryID,
		Message: message,
	})
}
