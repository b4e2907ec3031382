// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mahsadev/cinereq/catalog"
	"github.com/mahsadev/cinereq/models"
	"github.com/mahsadev/cinereq/testutil"
)

func matrixTitle() *catalog.Title {
	director := "Lana Wachowski"
	synopsis := "A computer hacker learns the truth."
	poster := "https://image.tmdb.org/t/p/w500/abc123.jpg"
	return &catalog.Title{
		ImdbID:    "tt0133093",
		Kind:      models.KindMovie,
		Title:     "The Matrix",
		Year:      1999,
		Director:  &director,
		Cast:      []string{"Keanu Reeves", "Laurence Fishburne"},
		Synopsis:  &synopsis,
		PosterURL: &poster,
		Genres:    []string{"Action", "Science Fiction"},
	}
}

func TestIngest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	resolver := &testutil.StubResolver{
		Titles: map[string]*catalog.Title{"tt0133093": matrixTitle()},
	}
	handler := NewIngestHandler(db, cfg, resolver)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.IngestResponse)
	}{
		{
			name:           "valid bare id",
			body:           models.IngestRequest{ImdbInput: "tt0133093"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.IngestResponse) {
				if resp.EntryID == "" {
					t.Error("Expected non-empty entry_id")
				}

				entry, err := getEntryByID(db, resp.EntryID)
				if err != nil {
					t.Fatalf("Failed to load created entry: %v", err)
				}
				if entry.Title != "The Matrix" || entry.Year != 1999 {
					t.Errorf("Unexpected metadata: %s (%d)", entry.Title, entry.Year)
				}
				if entry.VoteCount != 0 {
					t.Errorf("New entry should start with 0 votes, got %d", entry.VoteCount)
				}
				if entry.Reviewed() {
					t.Error("New entry should have no review flags")
				}
				if entry.ImdbURL != "https://www.imdb.com/title/tt0133093/" {
					t.Errorf("Unexpected imdb_url: %s", entry.ImdbURL)
				}
				if len(entry.Cast) != 2 || entry.Cast[0] != "Keanu Reeves" {
					t.Errorf("Unexpected cast: %v", entry.Cast)
				}
			},
		},
		{
			name:           "duplicate id rejected",
			body:           models.IngestRequest{ImdbInput: "tt0133093"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "duplicate via URL form rejected",
			body:           models.IngestRequest{ImdbInput: "https://www.imdb.com/title/tt0133093/"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown id upstream",
			body:           models.IngestRequest{ImdbInput: "tt9999999"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed input",
			body:           models.IngestRequest{ImdbInput: "the matrix"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty input",
			body:           models.IngestRequest{ImdbInput: ""},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/entries", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Ingest(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.IngestResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}

	// The duplicate attempts must not have created extra rows
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entry WHERE external_id = $1`, "tt0133093").Scan(&count); err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 entry for tt0133093, got %d", count)
	}
}

func TestIngest_UpstreamFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	resolver := &testutil.StubResolver{Err: errors.New("connection refused")}
	handler := NewIngestHandler(db, cfg, resolver)

	req := testutil.MakeRequest("POST", "/entries", models.IngestRequest{ImdbInput: "tt0133093"}, nil)
	w := httptest.NewRecorder()

	handler.Ingest(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)

	// A failed ingest creates nothing
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entry`).Scan(&count); err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no entries after failed ingest, got %d", count)
	}
}

func TestIngest_AutoVoteStrategy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.IngestStrategy = models.StrategyIngestAutoVote
	resolver := &testutil.StubResolver{
		Titles: map[string]*catalog.Title{"tt0133093": matrixTitle()},
	}
	handler := NewIngestHandler(db, cfg, resolver)

	headers := map[string]string{"X-Session-Token": "submitter-sess"}
	req := testutil.MakeRequest("POST", "/entries", models.IngestRequest{ImdbInput: "tt0133093"}, headers)
	w := httptest.NewRecorder()

	handler.Ingest(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.IngestResponse
	testutil.AssertJSON(t, w, &resp)

	// The submitter's vote was cast through the normal dedup path
	if got := voteCount(t, db, resp.EntryID); got != 1 {
		t.Errorf("Expected auto-vote to set count to 1, got %d", got)
	}

	// And the same session cannot immediately vote again
	err := CastVote(db, resp.EntryID, "submitter-sess", "", time.Now(), cfg.DedupWindow)
	if err != ErrDuplicateVote {
		t.Errorf("Expected ErrDuplicateVote after auto-vote, got %v", err)
	}
}

func TestIngest_IngestOnlyStrategy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig() // ingest-only is the default
	resolver := &testutil.StubResolver{
		Titles: map[string]*catalog.Title{"tt0133093": matrixTitle()},
	}
	handler := NewIngestHandler(db, cfg, resolver)

	headers := map[string]string{"X-Session-Token": "submitter-sess"}
	req := testutil.MakeRequest("POST", "/entries", models.IngestRequest{ImdbInput: "tt0133093"}, headers)
	w := httptest.NewRecorder()

	handler.Ingest(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.IngestResponse
	testutil.AssertJSON(t, w, &resp)

	// Submission itself is not a vote under ingest-only
	if got := voteCount(t, db, resp.EntryID); got != 0 {
		t.Errorf("Expected 0 votes under ingest-only, got %d", got)
	}
}
