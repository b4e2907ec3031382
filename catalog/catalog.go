// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the catalog has no title for the given IMDb id.
	ErrNotFound = errors.New("no matching title in catalog")
	// ErrUnavailable means the lookup itself failed (timeout, non-2xx).
	ErrUnavailable = errors.New("catalog unavailable")
)

// Title is the normalized record a resolver produces for both movies and
// series. Series map their first creator onto Director and their first-air
// year onto Year; nothing outside this package needs to branch on Kind.
type Title struct {
	ImdbID    string
	Kind      string // models.KindMovie or models.KindSeries
	Title     string
	Year      int
	Director  *string
	Cast      []string
	Synopsis  *string
	PosterURL *string
	Rating    *float64
	Genres    []string
}

// Resolver turns a bare IMDb id into a normalized Title.
type Resolver interface {
	// Resolve returns ErrNotFound when the catalog has no match, and
	// ErrUnavailable (wrapped) on transport or upstream failures.
	Resolve(ctx context.Context, imdbID string) (*Title, error)
}
