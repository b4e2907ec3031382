// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Entry bucket constants
const (
	BucketPending  = "pending"
	BucketReviewed = "reviewed"
	BucketAll      = "all"
)

// Title kind constants
const (
	KindMovie  = "movie"
	KindSeries = "series"
)

// Ingest strategy constants
const (
	StrategyIngestOnly     = "ingest-only"
	StrategyIngestAutoVote = "ingest-and-auto-vote"
)

// Request types

type IngestRequest struct {
	ImdbInput string `json:"imdb_input"`
}

// Nil fields are left unchanged.
type UpdateFlagsRequest struct {
	DubAdded      *bool `json:"dub_added"`
	SubtitleAdded *bool `json:"subtitle_added"`
	ContentIssue  *bool `json:"content_issue"`
}

// Response types

type IngestResponse struct {
	EntryID string `json:"entry_id"`
	Message string `json:"message"`
}

type CastVoteResponse struct {
	EntryID string `json:"entry_id"`
	Votes   int    `json:"votes"`
	Message string `json:"message"`
}

type ListResponse struct {
	Items      []Entry  `json:"items"`
	Pagination PageInfo `json:"pagination"`
}

type PageInfo struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// Domain types

type Entry struct {
	ID            string   `json:"id"`
	ImdbID        string   `json:"imdb_id"`
	Title         string   `json:"title"`
	Year          int      `json:"year"`
	Kind          string   `json:"kind"`
	Director      *string  `json:"director,omitempty"`
	Cast          []string `json:"cast,omitempty"`
	Synopsis      *string  `json:"synopsis,omitempty"`
	PosterURL     *string  `json:"poster,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Genres        []string `json:"genres,omitempty"`
	ImdbURL       string   `json:"imdb_url"`
	VoteCount     int      `json:"votes"`
	VotesDisplay  string   `json:"votes_display"`
	RequestedAt   int64    `json:"requested_at"` // epoch milliseconds
	RequestedBy   *string  `json:"requested_by,omitempty"`
	DubAdded      bool     `json:"dub_added"`
	SubtitleAdded bool     `json:"subtitle_added"`
	ContentIssue  bool     `json:"content_issue"`
}

// Reviewed reports whether at least one review flag has been set by a
// curator. Entries with no flags belong to the pending bucket.
func (e *Entry) Reviewed() bool {
	return e.DubAdded || e.SubtitleAdded || e.ContentIssue
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
