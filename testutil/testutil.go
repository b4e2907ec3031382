// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mahsadev/cinereq/catalog"
	"github.com/mahsadev/cinereq/cliparse"
	"github.com/mahsadev/cinereq/db"
	"github.com/mahsadev/cinereq/imdbid"
	"github.com/mahsadev/cinereq/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. A single connection keeps the in-memory database alive and
// matches the one-connection pool main configures for the sqlite driver.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            4000,
		DatabaseURL:     ":memory:",
		DatabaseType:    "sqlite",
		TMDBAPIKey:      "test-key",
		DedupWindow:     24 * time.Hour,
		IngestStrategy:  models.StrategyIngestOnly,
		DefaultPageSize: 12,
	}
}

// CreateTestEntry inserts an entry and returns its ID
func CreateTestEntry(t *testing.T, conn *sql.DB, externalID, title string, year, votes int, requestedAt time.Time) string {
	t.Helper()

	entryID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO entry (id, external_id, title, year, kind, external_url, vote_count, requested_at)
		VALUES ($1, $2, $3, $4, 'movie', $5, $6, $7)
	`, entryID, externalID, title, year, imdbid.TitleURL(externalID), votes, requestedAt.UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return entryID
}

// SetTestFlags sets the review flags on an entry directly
func SetTestFlags(t *testing.T, conn *sql.DB, entryID string, dub, sub, issue bool) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE entry SET dub_added = $1, subtitle_added = $2, content_issue = $3 WHERE id = $4
	`, dub, sub, issue, entryID)
	if err != nil {
		t.Fatalf("Failed to set test flags: %v", err)
	}
}

// InsertTestVote inserts a vote record and bumps the counter, bypassing the
// dedup checks. Useful for building window-boundary fixtures.
func InsertTestVote(t *testing.T, conn *sql.DB, entryID, sessionID, userID string, votedAt time.Time) {
	t.Helper()

	var sess, user interface{}
	if sessionID != "" {
		sess = sessionID
	}
	if userID != "" {
		user = userID
	}

	_, err := conn.Exec(`
		INSERT INTO vote (id, entry_id, session_id, user_id, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), entryID, sess, user, votedAt.UnixMilli())
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}

	_, err = conn.Exec(`UPDATE entry SET vote_count = vote_count + 1 WHERE id = $1`, entryID)
	if err != nil {
		t.Fatalf("Failed to bump vote count: %v", err)
	}
}

// StubResolver is a canned catalog.Resolver for handler tests
type StubResolver struct {
	Titles map[string]*catalog.Title
	Err    error
}

func (s *StubResolver) Resolve(ctx context.Context, imdbID string) (*catalog.Title, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	title, ok := s.Titles[imdbID]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return title, nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
