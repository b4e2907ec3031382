// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imdbid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare id", input: "tt0133093", want: "tt0133093"},
		{name: "bare id with whitespace", input: "  tt0133093\n", want: "tt0133093"},
		{name: "full title URL", input: "https://www.imdb.com/title/tt0133093/", want: "tt0133093"},
		{name: "URL without scheme", input: "imdb.com/title/tt0903747", want: "tt0903747"},
		{name: "URL with query string", input: "https://www.imdb.com/title/tt0903747/?ref_=hm_top_tt", want: "tt0903747"},
		{name: "mobile URL", input: "https://m.imdb.com/title/tt1375666/", want: "tt1375666"},
		{name: "uppercase host", input: "https://WWW.IMDB.COM/title/tt1375666/", want: "tt1375666"},
		{name: "empty input", input: "", wantErr: true},
		{name: "random text", input: "the matrix", wantErr: true},
		{name: "id without digits", input: "tt", wantErr: true},
		{name: "non-title IMDb URL", input: "https://www.imdb.com/name/nm0000206/", wantErr: true},
		{name: "other site URL", input: "https://example.com/title/tt0133093", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitleURL(t *testing.T) {
	assert.Equal(t, "https://www.imdb.com/title/tt0133093/", TitleURL("tt0133093"))
}
