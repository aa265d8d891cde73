// Package region defines core types, validation, and sentinel errors for
// the immutable data model shared by every analysis in secalloc.
package region

import "errors"

// Sentinel errors for dataset construction and lookup.
var (
	// ErrMissingField indicates a required region attribute is absent or non-positive.
	ErrMissingField = errors.New("region: required field is missing")
	// ErrUnsortedHistory indicates the historical series is not strictly ordered by year.
	ErrUnsortedHistory = errors.New("region: history must be strictly ordered by year")
	// ErrDuplicateCode indicates two regions share the same code.
	ErrDuplicateCode = errors.New("region: duplicate region code")
	// ErrUnknownRegion indicates a lookup for a code not present in the dataset.
	ErrUnknownRegion = errors.New("region: unknown region code")
	// ErrNegativeValue indicates a deaths, budget or rate value below zero.
	ErrNegativeValue = errors.New("region: value must be non-negative")
)

// RatePoint is one observation of the crime rate per 100k inhabitants.
type RatePoint struct {
	Year int     `json:"year"`
	Rate float64 `json:"rate"`
}

// Region is one administrative region: identity, demographics, the current
// fiscal snapshot, and the historical crime-rate series ordered by year.
//
// Regions are value objects. Once a Region enters a Dataset it is never
// mutated; what-if analyses build new Regions (and new Datasets) instead.
type Region struct {
	// Code is the short unique identifier (e.g. "SP"). Required.
	Code string
	// Name is the human-readable name. Optional.
	Name string
	// Group is the geographic grouping used for aggregate reporting. Optional.
	Group string
	// Population must be positive wherever per-capita metrics are computed.
	Population int64
	// CurrentDeaths is the current annual count of violent deaths.
	CurrentDeaths float64
	// CurrentBudget is the current annual security budget (currency units).
	CurrentBudget float64
	// History is the (year, rate-per-100k) series, strictly ascending by year.
	History []RatePoint
}
