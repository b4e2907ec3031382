// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mahsadev/cinereq/cliparse"
	"github.com/mahsadev/cinereq/middleware"
	"github.com/mahsadev/cinereq/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// ListForAdmin handles GET /admin/entries
// The admin view is unbucketed and searchable: q matches title and IMDb id
// as a case-insensitive substring, and year exactly. Filtering happens
// before the pagination math so page counts reflect the filtered set.
func (h *AdminHandler) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := pageParams(r, h.cfg.DefaultPageSize)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := queryEntries(h.db, models.BucketAll)
	if err != nil {
		slog.Error("failed to query entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	entries = FilterEntries(entries, r.URL.Query().Get("q"))
	RankEntries(entries)
	items, info := Paginate(entries, page, pageSize)

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{
		Items:      items,
		Pagination: info,
	})
}

// UpdateFlags handles PATCH /admin/entries/{id}/flags
// Only the flags present in the request body change; a body with no flags
// is a no-op that still returns the entry.
func (h *AdminHandler) UpdateFlags(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	var req models.UpdateFlagsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.db.Exec(`
		UPDATE entry
		SET dub_added = COALESCE($1, dub_added),
		    subtitle_added = COALESCE($2, subtitle_added),
		    content_issue = COALESCE($3, content_issue)
		WHERE id = $4
	`, req.DubAdded, req.SubtitleAdded, req.ContentIssue, entryID)

	if err != nil {
		slog.Error("failed to update review flags", "error", err, "entry_id", entryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update flags")
		return
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}

	entry, err := getEntryByID(h.db, entryID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		slog.Error("failed to query entry", "error", err, "entry_id", entryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("review flags updated", "entry_id", entryID,
		"dub_added", entry.DubAdded, "subtitle_added", entry.SubtitleAdded,
		"content_issue", entry.ContentIssue)

	middleware.JSONResponse(w, http.StatusOK, entry)
}
