// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mahsadev/cinereq/models"
)

// RankEntries sorts entries into display order: vote count descending, then
// requested_at ascending (earlier requests win ties). The sort is stable, so
// entries tied on both keys keep their incoming order; callers pass slices in
// a deterministic base order, which makes the full ranking reproducible.
func RankEntries(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].VoteCount != entries[j].VoteCount {
			return entries[i].VoteCount > entries[j].VoteCount
		}
		return entries[i].RequestedAt < entries[j].RequestedAt
	})
}

// FilterEntries returns the entries matching a search term: case-insensitive
// substring on title and IMDb id, exact numeric match on year. An empty term
// matches everything. Filtering happens before pagination math.
func FilterEntries(entries []models.Entry, term string) []models.Entry {
	term = strings.TrimSpace(term)
	if term == "" {
		return entries
	}

	lower := strings.ToLower(term)
	year, yearErr := strconv.Atoi(term)

	var matched []models.Entry
	for _, e := range entries {
		switch {
		case strings.Contains(strings.ToLower(e.Title), lower):
			matched = append(matched, e)
		case strings.Contains(strings.ToLower(e.ImdbID), lower):
			matched = append(matched, e)
		case yearErr == nil && e.Year == year:
			matched = append(matched, e)
		}
	}
	return matched
}

// Paginate slices a ranked list into a fixed-size page. pageSize must be
// positive; page may be anything - out-of-range pages yield empty items with
// the metadata still computed, not an error. totalPages is at least 1 even
// for an empty list. The call is stateless: page-jump and scroll-accumulation
// clients both drive it the same way.
func Paginate(entries []models.Entry, page, pageSize int) ([]models.Entry, models.PageInfo) {
	totalCount := len(entries)
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	info := models.PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	items := []models.Entry{}
	if page >= 1 {
		start := (page - 1) * pageSize
		if start < totalCount {
			end := start + pageSize
			if end > totalCount {
				end = totalCount
			}
			items = append(items, entries[start:end]...)
		}
	}

	return items, info
}
