// Package ranking ranks a fixed catalog of weighted candidate profiles
// against a set of observed features.
package ranking

import "errors"

// ErrInvalidCatalog is returned when ranking is attempted over zero candidates.
var ErrInvalidCatalog = errors.New("ranking: catalog has no candidates")

// Profile is a named candidate with a weight per feature.
type Profile struct {
	Name    string
	Weights map[string]float64
}

// Catalog is an ordered list of candidate profiles. Position in the
// catalog breaks ties between equal shares.
type Catalog []Profile

// Result is the ranking output for one candidate.
type Result struct {
	Name  string  `json:"name"`
	Score float64 `json:"raw_score"`
	Share float64 `json:"share"` // 0.0–1.0, shares of one ranking sum to 1
}
