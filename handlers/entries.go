// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/mahsadev/cinereq/cliparse"
	"github.com/mahsadev/cinereq/middleware"
	"github.com/mahsadev/cinereq/models"
)

var (
	errInvalidPage     = errors.New("page must be a non-negative integer")
	errInvalidPageSize = errors.New("page_size must be a positive integer")
)

type EntryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewEntryHandler(db *sql.DB, cfg cliparse.Config) *EntryHandler {
	return &EntryHandler{db: db, cfg: cfg}
}

// ListAll handles GET /entries
// Returns the full ranked sequence, unpaginated (the small-scale public view).
func (h *EntryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	entries, err := queryEntries(h.db, models.BucketAll)
	if err != nil {
		slog.Error("failed to query entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	RankEntries(entries)

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// ListPending handles GET /entries/pending
func (h *EntryHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listBucket(w, r, models.BucketPending)
}

// ListReviewed handles GET /entries/reviewed
func (h *EntryHandler) ListReviewed(w http.ResponseWriter, r *http.Request) {
	h.listBucket(w, r, models.BucketReviewed)
}

func (h *EntryHandler) listBucket(w http.ResponseWriter, r *http.Request, bucket string) {
	page, pageSize, err := pageParams(r, h.cfg.DefaultPageSize)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := queryEntries(h.db, bucket)
	if err != nil {
		slog.Error("failed to query entries", "error", err, "bucket", bucket)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	RankEntries(entries)
	items, info := Paginate(entries, page, pageSize)

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{
		Items:      items,
		Pagination: info,
	})
}

// GetEntry handles GET /entries/{id}
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
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

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// pageParams reads page and page_size from the query string. page defaults
// to 1 and may be zero (an empty page, not an error); page_size defaults to
// the configured value and must be positive.
func pageParams(r *http.Request, defaultSize int) (page, pageSize int, err error) {
	page = 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 0 {
			return 0, 0, errInvalidPage
		}
	}

	pageSize = defaultSize
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return 0, 0, errInvalidPageSize
		}
	}

	return page, pageSize, nil
}

const selectEntryColumns = `
	SELECT id, external_id, title, year, kind, director, cast_names, synopsis,
	       poster_url, rating, genres, external_url, vote_count, requested_at,
	       requested_by, dub_added, subtitle_added, content_issue
	FROM entry`

// queryEntries returns a bucket's entries in a deterministic base order
// (id ascending) so the stable ranking sort yields the same total order on
// every evaluation of the same data.
func queryEntries(db *sql.DB, bucket string) ([]models.Entry, error) {
	query := selectEntryColumns
	switch bucket {
	case models.BucketPending:
		query += ` WHERE NOT (dub_added OR subtitle_added OR content_issue)`
	case models.BucketReviewed:
		query += ` WHERE dub_added OR subtitle_added OR content_issue`
	}
	query += ` ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func getEntryByID(db *sql.DB, entryID string) (models.Entry, error) {
	row := db.QueryRow(selectEntryColumns+` WHERE id = $1`, entryID)
	return scanEntry(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	var castJSON, genresJSON sql.NullString

	err := row.Scan(
		&e.ID, &e.ImdbID, &e.Title, &e.Year, &e.Kind, &e.Director, &castJSON,
		&e.Synopsis, &e.PosterURL, &e.Rating, &genresJSON, &e.ImdbURL,
		&e.VoteCount, &e.RequestedAt, &e.RequestedBy,
		&e.DubAdded, &e.SubtitleAdded, &e.ContentIssue,
	)
	if err != nil {
		return models.Entry{}, err
	}

	if castJSON.Valid {
		if err := json.Unmarshal([]byte(castJSON.String), &e.Cast); err != nil {
			return models.Entry{}, err
		}
	}
	if genresJSON.Valid {
		if err := json.Unmarshal([]byte(genresJSON.String), &e.Genres); err != nil {
			return models.Entry{}, err
		}
	}

	e.VotesDisplay = humanize.Comma(int64(e.VoteCount))

	return e, nil
}
