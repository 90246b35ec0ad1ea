// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"sort"

	"github.com/pdiddy/cinematch/pkg/types"
)

// Rank scores every movie, the reference included, against movies[ref] and
// returns the results ordered by Total descending. Equal totals keep their
// dataset order. An out-of-range ref returns a *types.NotFoundError and no
// results.
func Rank(movies []types.Movie, ref int) ([]types.SimilarityResult, error) {
	if ref < 0 || ref >= len(movies) {
		return nil, &types.NotFoundError{Index: ref}
	}

	reference := movies[ref]
	bounds := ComputeBounds(movies)

	results := make([]types.SimilarityResult, len(movies))
	for i, m := range movies {
		results[i] = Score(reference, m, bounds)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total > results[j].Total
	})

	return results, nil
}
