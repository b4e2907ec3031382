// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog resolves IMDb ids into normalized title metadata.

The Resolver interface is the boundary the rest of the server depends on;
TMDBClient is its production implementation. Movies and series come back from
TMDB in different shapes (director vs. creator, release date vs. first-air
date) and are flattened here into one Title record so that distinction never
leaks past this package.

Lookups carry a 10-second HTTP timeout. A miss is ErrNotFound; any transport
or upstream failure wraps ErrUnavailable and is never retried here.
*/
package catalog
