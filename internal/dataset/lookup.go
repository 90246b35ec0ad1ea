// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"strings"

	"github.com/pdiddy/cinematch/pkg/types"
)

// Lookup returns the index of the first movie whose title equals title,
// ignoring case and surrounding whitespace. Later duplicates are never
// returned. A miss returns *types.NotFoundError.
func Lookup(movies []types.Movie, title string) (int, error) {
	want := strings.TrimSpace(title)
	if want != "" {
		for i, m := range movies {
			if strings.EqualFold(m.Title, want) {
				return i, nil
			}
		}
	}
	return -1, &types.NotFoundError{Title: title}
}

// Match returns the movies whose titles contain substr, ignoring case.
// An empty substr matches everything.
func Match(movies []types.Movie, substr string) []types.Movie {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return movies
	}
	var out []types.Movie
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			out = append(out, m)
		}
	}
	return out
}
