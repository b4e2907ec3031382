// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package imdbid normalizes user-supplied IMDb identifiers.
package imdbid

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalid = errors.New("not an IMDb id or title URL")

var (
	bareID  = regexp.MustCompile(`^tt\d+$`)
	titleRE = regexp.MustCompile(`(?i)imdb\.com/title/(tt\d+)`)
)

// Normalize extracts the bare IMDb id from user input. It accepts either a
// bare id ("tt0133093") or any URL containing imdb.com/title/<id>; everything
// else fails with ErrInvalid. The returned id is always in bare form.
func Normalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if bareID.MatchString(input) {
		return input, nil
	}

	if m := titleRE.FindStringSubmatch(input); m != nil {
		return strings.ToLower(m[1]), nil
	}

	return "", ErrInvalid
}

// TitleURL returns the canonical IMDb title page URL for a bare id.
func TitleURL(id string) string {
	return "https://www.imdb.com/title/" + id + "/"
}
