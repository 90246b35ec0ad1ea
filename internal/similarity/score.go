// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity scores movies against a reference movie and ranks them.
//
// Each attribute is normalized into [0,1]: numeric attributes by their
// dataset-wide range, genres by the Jaccard index, director and lead actor by
// case-insensitive equality. The total is the unweighted mean of the six.
package similarity

import (
	"math"
	"strings"

	"github.com/pdiddy/cinematch/pkg/types"
)

// ComputeBounds derives the normalization ranges from the full record set.
// An empty set yields zero ranges.
func ComputeBounds(movies []types.Movie) types.Bounds {
	b := types.Bounds{RatingRange: types.MaxRating}
	if len(movies) == 0 {
		return b
	}

	minYear, maxYear := movies[0].ReleaseYear, movies[0].ReleaseYear
	minRuntime, maxRuntime := movies[0].RuntimeMinutes, movies[0].RuntimeMinutes
	for _, m := range movies[1:] {
		minYear = min(minYear, m.ReleaseYear)
		maxYear = max(maxYear, m.ReleaseYear)
		minRuntime = min(minRuntime, m.RuntimeMinutes)
		maxRuntime = max(maxRuntime, m.RuntimeMinutes)
	}

	b.YearRange = maxYear - minYear
	b.RuntimeRange = maxRuntime - minRuntime
	return b
}

// Score compares candidate against ref. It is pure and never fails for
// records drawn from the dataset that produced b.
func Score(ref, candidate types.Movie, b types.Bounds) types.SimilarityResult {
	s := types.Scores{
		Year:     rangeSimilarity(float64(candidate.ReleaseYear-ref.ReleaseYear), float64(b.YearRange)),
		Runtime:  rangeSimilarity(float64(candidate.RuntimeMinutes-ref.RuntimeMinutes), float64(b.RuntimeRange)),
		Genre:    Jaccard(candidate.Genres, ref.Genres),
		Rating:   rangeSimilarity(candidate.Rating-ref.Rating, b.RatingRange),
		Director: exactMatch(candidate.Director, ref.Director),
		Actor:    exactMatch(candidate.LeadActor, ref.LeadActor),
	}

	return types.SimilarityResult{
		Title:          candidate.Title,
		Genres:         append([]string(nil), candidate.Genres...),
		Director:       candidate.Director,
		LeadActor:      candidate.LeadActor,
		ReleaseYear:    candidate.ReleaseYear,
		RuntimeMinutes: candidate.RuntimeMinutes,
		Rating:         candidate.Rating,
		Scores:         s,
		Total:          s.Mean(),
	}
}

// rangeSimilarity maps an absolute difference onto [0,1] against span.
// A zero span means every record shares the value, so the pair is identical.
// Values are not clamped: both records come from the set that defined span.
func rangeSimilarity(diff, span float64) float64 {
	if span == 0 {
		return 1.0
	}
	return 1 - math.Abs(diff)/span
}

// Jaccard returns |a ∩ b| / |a ∪ b| over the two genre sets. Duplicates
// inside one slice count once. An empty union yields 0.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, g := range a {
		setA[g] = struct{}{}
	}

	union := len(setA)
	inter := 0
	seen := make(map[string]struct{}, len(b))
	for _, g := range b {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if _, ok := setA[g]; ok {
			inter++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func exactMatch(a, b string) float64 {
	if strings.EqualFold(a, b) {
		return 1.0
	}
	return 0.0
}
