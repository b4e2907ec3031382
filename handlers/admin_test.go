// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mahsadev/cinereq/models"
	"github.com/mahsadev/cinereq/testutil"
)

func boolPtr(b bool) *bool { return &b }

func TestListForAdmin_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)

	now := time.Now()
	matrixID := testutil.CreateTestEntry(t, db, "tt0133093", "The Matrix", 1999, 9, now.Add(-3*time.Hour))
	breakingID := testutil.CreateTestEntry(t, db, "tt0903747", "Breaking Bad", 2008, 7, now.Add(-2*time.Hour))
	heatID := testutil.CreateTestEntry(t, db, "tt0113277", "Heat", 1995, 5, now.Add(-time.Hour))

	// Flags do not matter here: the admin view is unbucketed
	testutil.SetTestFlags(t, db, heatID, false, true, false)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "no search returns everything ranked", query: "", wantIDs: []string{matrixID, breakingID, heatID}},
		{name: "title search", query: "?q=matrix", wantIDs: []string{matrixID}},
		{name: "imdb id search", query: "?q=tt0903747", wantIDs: []string{breakingID}},
		{name: "year search", query: "?q=1995", wantIDs: []string{heatID}},
		{name: "no matches", query: "?q=nothing", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/admin/entries"+tt.query, nil, nil)
			w := httptest.NewRecorder()

			handler.ListForAdmin(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.ListResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Items) != len(tt.wantIDs) {
				t.Fatalf("Expected %d items, got %d", len(tt.wantIDs), len(resp.Items))
			}
			for i, id := range tt.wantIDs {
				if resp.Items[i].ID != id {
					t.Errorf("Item %d: expected %s, got %s", i, id, resp.Items[i].ID)
				}
			}
			if resp.Pagination.TotalCount != len(tt.wantIDs) {
				t.Errorf("Pagination should reflect the filtered set: expected %d, got %d",
					len(tt.wantIDs), resp.Pagination.TotalCount)
			}
		})
	}
}

func TestUpdateFlags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)

	entryID := testutil.CreateTestEntry(t, db, "tt0000040", "Flagged", 2020, 0, time.Now())

	tests := []struct {
		name           string
		entryID        string
		body           interface{}
		expectedStatus int
		wantDub        bool
		wantSub        bool
		wantIssue      bool
	}{
		{
			name:           "set one flag",
			entryID:        entryID,
			body:           models.UpdateFlagsRequest{DubAdded: boolPtr(true)},
			expectedStatus: http.StatusOK,
			wantDub:        true,
		},
		{
			name:           "set another without clearing the first",
			entryID:        entryID,
			body:           models.UpdateFlagsRequest{SubtitleAdded: boolPtr(true)},
			expectedStatus: http.StatusOK,
			wantDub:        true,
			wantSub:        true,
		},
		{
			name:           "clear one flag only",
			entryID:        entryID,
			body:           models.UpdateFlagsRequest{DubAdded: boolPtr(false)},
			expectedStatus: http.StatusOK,
			wantSub:        true,
		},
		{
			name:           "empty body is a no-op",
			entryID:        entryID,
			body:           models.UpdateFlagsRequest{},
			expectedStatus: http.StatusOK,
			wantSub:        true,
		},
		{
			name:           "unknown entry",
			entryID:        "missing",
			body:           models.UpdateFlagsRequest{DubAdded: boolPtr(true)},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PATCH", "/admin/entries/"+tt.entryID+"/flags", tt.body, nil)
			req.SetPathValue("id", tt.entryID)
			w := httptest.NewRecorder()

			handler.UpdateFlags(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var entry models.Entry
			testutil.AssertJSON(t, w, &entry)
			if entry.DubAdded != tt.wantDub || entry.SubtitleAdded != tt.wantSub || entry.ContentIssue != tt.wantIssue {
				t.Errorf("Expected flags (%v, %v, %v), got (%v, %v, %v)",
					tt.wantDub, tt.wantSub, tt.wantIssue,
					entry.DubAdded, entry.SubtitleAdded, entry.ContentIssue)
			}
		})
	}
}

func TestUpdateFlags_MovesEntryBetweenBuckets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	adminHandler := NewAdminHandler(db, cfg)
	entryHandler := NewEntryHandler(db, cfg)

	entryID := testutil.CreateTestEntry(t, db, "tt0000041", "Mover", 2021, 1, time.Now())

	countBucket := func(list func(http.ResponseWriter, *http.Request), path string) int {
		req := testutil.MakeRequest("GET", path, nil, nil)
		w := httptest.NewRecorder()
		list(w, req)
		var resp models.ListResponse
		testutil.AssertJSON(t, w, &resp)
		return len(resp.Items)
	}

	if got := countBucket(entryHandler.ListPending, "/entries/pending"); got != 1 {
		t.Fatalf("Expected entry in pending before flagging, got %d", got)
	}

	req := testutil.MakeRequest("PATCH", "/admin/entries/"+entryID+"/flags",
		models.UpdateFlagsRequest{ContentIssue: boolPtr(true)}, nil)
	req.SetPathValue("id", entryID)
	w := httptest.NewRecorder()
	adminHandler.UpdateFlags(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := countBucket(entryHandler.ListPending, "/entries/pending"); got != 0 {
		t.Errorf("Expected pending bucket empty after flagging, got %d", got)
	}
	if got := countBucket(entryHandler.ListReviewed, "/entries/reviewed"); got != 1 {
		t.Errorf("Expected entry in reviewed after flagging, got %d", got)
	}
}
