// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for cinematch.
// Movie is the cleaned dataset record, Bounds the dataset-wide normalization
// ranges, and SimilarityResult one scored (reference, candidate) pair.
package types

// MaxRating is the top of the rating scale. Ratings are in [0, MaxRating].
const MaxRating = 10.0

// Movie is one cleaned dataset row. Records are treated as immutable once
// ingested; every numeric field is present and finite.
type Movie struct {
	// Title is the display title and the case-insensitive lookup key.
	Title string `json:"title" yaml:"title" validate:"required"`

	// Genres is a multi-valued category; duplicates carry no extra weight.
	Genres []string `json:"genres" yaml:"genres"`

	Director  string `json:"director" yaml:"director"`
	LeadActor string `json:"lead_actor" yaml:"lead_actor"`

	ReleaseYear    int     `json:"release_year" yaml:"release_year"`
	RuntimeMinutes int     `json:"runtime_minutes" yaml:"runtime_minutes" validate:"gte=0"`
	Rating         float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=10"`
}

// Bounds holds the dataset-wide ranges used to scale absolute attribute
// differences into [0,1]. They are computed once per ranking run.
type Bounds struct {
	// YearRange is max(ReleaseYear) - min(ReleaseYear) over the dataset.
	YearRange int `json:"year_range" yaml:"year_range"`

	// RuntimeRange is max(RuntimeMinutes) - min(RuntimeMinutes) over the dataset.
	RuntimeRange int `json:"runtime_range" yaml:"runtime_range"`

	// RatingRange is fixed at MaxRating and never derived from data.
	RatingRange float64 `json:"rating_range" yaml:"rating_range"`
}
