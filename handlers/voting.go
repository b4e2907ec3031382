// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahsadev/cinereq/cliparse"
	"github.com/mahsadev/cinereq/metrics"
	"github.com/mahsadev/cinereq/middleware"
	"github.com/mahsadev/cinereq/models"
)

var (
	ErrDuplicateVote = errors.New("already voted for this entry")
	ErrEntryNotFound = errors.New("entry not found")
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// CastVote handles POST /entries/{id}/votes
// The voter is identified by the optional X-Session-Token and X-User-ID
// headers; both are opaque client-supplied strings. Either, both, or
// neither may be present.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	sessionID := r.Header.Get("X-Session-Token")
	userID := r.Header.Get("X-User-ID")

	err := CastVote(h.db, entryID, sessionID, userID, time.Now(), h.cfg.DedupWindow)
	if err == ErrEntryNotFound {
		metrics.VotesTotal.WithLabelValues("not_found").Inc()
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err == ErrDuplicateVote {
		metrics.VotesTotal.WithLabelValues("duplicate").Inc()
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted for this entry")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "entry_id", entryID)
		metrics.VotesTotal.WithLabelValues("error").Inc()
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	var votes int
	if err := h.db.QueryRow(`SELECT vote_count FROM entry WHERE id = $1`, entryID).Scan(&votes); err != nil {
		slog.Error("failed to read vote count", "error", err, "entry_id", entryID)
	}

	slog.Info("vote cast", "entry_id", entryID, "votes", votes)
	metrics.VotesTotal.WithLabelValues("accepted").Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		EntryID: entryID,
		Votes:   votes,
		Message: "Vote recorded",
	})
}

// CastVote accepts or rejects one vote for an entry. The two dedup channels
// are independent and deliberately asymmetric: a session token is blocked
// only by its own votes within the look-back window, while a user id is
// blocked by any of its prior votes regardless of age. When both identifiers
// are supplied, both checks apply.
//
// The counter increment, the dedup checks, and the vote-record insert run in
// one transaction, so a rejected vote writes nothing and an accepted vote
// writes exactly one record plus one increment. The increment comes before
// the checks: its entry row lock serializes racing votes on the same entry,
// so at most one of two same-token racers is accepted while distinct tokens
// queue and all land.
func CastVote(db *sql.DB, entryID, sessionID, userID string, now time.Time, window time.Duration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Must stay ahead of the dedup checks: the entry row lock serializes
	// same-entry votes, and a rejection rolls the increment back.
	res, err := tx.Exec(`UPDATE entry SET vote_count = vote_count + 1 WHERE id = $1`, entryID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	// Session channel: rolling window
	if sessionID != "" {
		cutoff := now.Add(-window).UnixMilli()
		var dup bool
		err = tx.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM vote
				WHERE entry_id = $1 AND session_id = $2 AND voted_at > $3
			)
		`, entryID, sessionID, cutoff).Scan(&dup)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateVote
		}
	}

	// User channel: permanent
	if userID != "" {
		var dup bool
		err = tx.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM vote
				WHERE entry_id = $1 AND user_id = $2
			)
		`, entryID, userID).Scan(&dup)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateVote
		}
	}

	voteID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO vote (id, entry_id, session_id, user_id, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, entryID, nullIfEmpty(sessionID), nullIfEmpty(userID), now.UnixMilli())

	if err != nil {
		// A concurrent vote from the same user can slip past the check
		// above; the unique index on (entry_id, user_id) catches it.
		if isUniqueViolation(err) {
			return ErrDuplicateVote
		}
		return err
	}

	return tx.Commit()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// isUniqueViolation matches the constraint-violation messages of both
// supported drivers (modernc sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
