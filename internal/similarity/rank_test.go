// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cinematch/pkg/types"
)

func titles(results []types.SimilarityResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestRankEndToEnd(t *testing.T) {
	movies := []types.Movie{
		{Title: "A", ReleaseYear: 2000, RuntimeMinutes: 120, Rating: 8.0, Genres: []string{"Drama"}, Director: "X", LeadActor: "Y"},
		{Title: "B", ReleaseYear: 2000, RuntimeMinutes: 120, Rating: 8.0, Genres: []string{"Drama"}, Director: "X", LeadActor: "Y"},
		{Title: "C", ReleaseYear: 1990, RuntimeMinutes: 90, Rating: 5.0, Genres: []string{"Comedy"}, Director: "Z", LeadActor: "W"},
	}

	results, err := Rank(movies, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"A", "B", "C"}, titles(results))
	assert.Equal(t, 1.0, results[0].Total)
	assert.Equal(t, 1.0, results[1].Total)
	assert.Less(t, results[2].Total, 1.0)

	c := results[2].Scores
	for _, v := range scoreSlice(c) {
		assert.Less(t, v, 1.0)
	}
	assert.InDelta(t, 0.0, c.Year, tolerance)
	assert.InDelta(t, 0.0, c.Runtime, tolerance)
	assert.InDelta(t, 0.7, c.Rating, tolerance)
}

func TestRankReferenceFromMiddle(t *testing.T) {
	movies := sampleMovies()

	results, err := Rank(movies, 2)
	require.NoError(t, err)
	require.Len(t, results, len(movies))

	assert.Equal(t, "The Departed", results[0].Title)
	assert.Equal(t, 1.0, results[0].Total)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Total, results[i].Total)
	}
}

func TestRankStableUnderTies(t *testing.T) {
	ref := types.Movie{Title: "Ref", Genres: []string{"Drama"}, Director: "D", LeadActor: "L", ReleaseYear: 2000, RuntimeMinutes: 100, Rating: 7}
	// Twin1 and Twin2 differ only in title, so they tie exactly.
	twin := types.Movie{Genres: []string{"Comedy"}, Director: "Q", LeadActor: "R", ReleaseYear: 1990, RuntimeMinutes: 80, Rating: 5}
	twin1, twin2 := twin, twin
	twin1.Title, twin2.Title = "Twin1", "Twin2"
	other := types.Movie{Title: "Other", Genres: []string{"Drama"}, Director: "D", LeadActor: "R", ReleaseYear: 1995, RuntimeMinutes: 90, Rating: 6}

	tests := []struct {
		name   string
		movies []types.Movie
		want   []string
	}{
		{"twin1 first", []types.Movie{twin1, ref, twin2, other}, []string{"Ref", "Other", "Twin1", "Twin2"}},
		{"twin2 first", []types.Movie{twin2, other, twin1, ref}, []string{"Ref", "Other", "Twin2", "Twin1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refIdx := -1
			for i, m := range tt.movies {
				if m.Title == "Ref" {
					refIdx = i
				}
			}
			results, err := Rank(tt.movies, refIdx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(results))
		})
	}
}

func TestRankInvalidReference(t *testing.T) {
	movies := sampleMovies()

	for _, idx := range []int{-1, len(movies), 100} {
		results, err := Rank(movies, idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrNotFound), "index %d", idx)
		assert.Nil(t, results)
	}

	_, err := Rank(nil, 0)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	movies := sampleMovies()
	before := sampleMovies()

	_, err := Rank(movies, 4)
	require.NoError(t, err)
	assert.Equal(t, before, movies)
}
