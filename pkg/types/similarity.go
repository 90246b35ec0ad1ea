// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Scores holds the six per-attribute similarity scores, each in [0,1].
type Scores struct {
	Year     float64 `json:"year" yaml:"year"`
	Runtime  float64 `json:"runtime" yaml:"runtime"`
	Genre    float64 `json:"genre" yaml:"genre"`
	Rating   float64 `json:"rating" yaml:"rating"`
	Director float64 `json:"director" yaml:"director"`
	Actor    float64 `json:"actor" yaml:"actor"`
}

// Mean returns the unweighted arithmetic mean of the six scores.
func (s Scores) Mean() float64 {
	return (s.Year + s.Runtime + s.Genre + s.Rating + s.Director + s.Actor) / 6
}

// SimilarityResult is the score of one candidate against the reference.
// It carries a copy of the candidate's display fields so presentation never
// needs the source record.
type SimilarityResult struct {
	Title          string   `json:"title" yaml:"title"`
	Genres         []string `json:"genres" yaml:"genres"`
	Director       string   `json:"director" yaml:"director"`
	LeadActor      string   `json:"lead_actor" yaml:"lead_actor"`
	ReleaseYear    int      `json:"release_year" yaml:"release_year"`
	RuntimeMinutes int      `json:"runtime_minutes" yaml:"runtime_minutes"`
	Rating         float64  `json:"rating" yaml:"rating"`

	Scores Scores `json:"scores" yaml:"scores"`

	// Total is Scores.Mean().
	Total float64 `json:"total" yaml:"total"`
}
