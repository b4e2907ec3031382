// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mahsadev/cinereq/models"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"

	posterBaseURL = "https://image.tmdb.org/t/p/w500"
	maxCast       = 5
	lookupTimeout = 10 * time.Second
)

// TMDBClient resolves IMDb ids against The Movie Database. TMDB's find
// endpoint maps an external IMDb id to a TMDB movie or TV id; a second
// request fetches details plus credits.
type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: lookupTimeout},
	}
}

type findResult struct {
	MovieResults []struct {
		ID int64 `json:"id"`
	} `json:"movie_results"`
	TVResults []struct {
		ID int64 `json:"id"`
	} `json:"tv_results"`
}

type detailsResult struct {
	Title        string `json:"title"` // movies
	Name         string `json:"name"`  // series
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []struct {
		Name string `json:"name"`
	} `json:"genres"`
	CreatedBy []struct {
		Name string `json:"name"`
	} `json:"created_by"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	} `json:"credits"`
}

// Resolve implements Resolver.
func (c *TMDBClient) Resolve(ctx context.Context, imdbID string) (*Title, error) {
	var found findResult
	path := fmt.Sprintf("/find/%s?external_source=imdb_id", imdbID)
	if err := c.get(ctx, path, &found); err != nil {
		return nil, err
	}

	switch {
	case len(found.MovieResults) > 0:
		return c.movie(ctx, imdbID, found.MovieResults[0].ID)
	case len(found.TVResults) > 0:
		return c.series(ctx, imdbID, found.TVResults[0].ID)
	default:
		return nil, ErrNotFound
	}
}

func (c *TMDBClient) movie(ctx context.Context, imdbID string, tmdbID int64) (*Title, error) {
	var d detailsResult
	path := fmt.Sprintf("/movie/%d?append_to_response=credits", tmdbID)
	if err := c.get(ctx, path, &d); err != nil {
		return nil, err
	}

	var director *string
	for _, member := range d.Credits.Crew {
		if member.Job == "Director" || member.Job == "Co-Director" {
			name := member.Name
			director = &name
			break
		}
	}

	return &Title{
		ImdbID:    imdbID,
		Kind:      models.KindMovie,
		Title:     d.Title,
		Year:      yearOf(d.ReleaseDate),
		Director:  director,
		Cast:      castNames(d),
		Synopsis:  optional(d.Overview),
		PosterURL: posterURL(d.PosterPath),
		Rating:    ratingOf(d.VoteAverage),
		Genres:    genreNames(d),
	}, nil
}

func (c *TMDBClient) series(ctx context.Context, imdbID string, tmdbID int64) (*Title, error) {
	var d detailsResult
	path := fmt.Sprintf("/tv/%d?append_to_response=credits", tmdbID)
	if err := c.get(ctx, path, &d); err != nil {
		return nil, err
	}

	// Series have no director; the first listed creator fills that role.
	var director *string
	if len(d.CreatedBy) > 0 {
		name := d.CreatedBy[0].Name
		director = &name
	}

	return &Title{
		ImdbID:    imdbID,
		Kind:      models.KindSeries,
		Title:     d.Name,
		Year:      yearOf(d.FirstAirDate),
		Director:  director,
		Cast:      castNames(d),
		Synopsis:  optional(d.Overview),
		PosterURL: posterURL(d.PosterPath),
		Rating:    ratingOf(d.VoteAverage),
		Genres:    genreNames(d),
	}, nil
}

func (c *TMDBClient) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// yearOf extracts the year from a TMDB "YYYY-MM-DD" date, falling back to
// the current year when the date is missing or malformed.
func yearOf(date string) int {
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			return y
		}
	}
	return time.Now().Year()
}

func castNames(d detailsResult) []string {
	var names []string
	for i, member := range d.Credits.Cast {
		if i == maxCast {
			break
		}
		names = append(names, member.Name)
	}
	return names
}

func genreNames(d detailsResult) []string {
	var names []string
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

func posterURL(path string) *string {
	if path == "" {
		return nil
	}
	url := posterBaseURL + path
	return &url
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ratingOf(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
