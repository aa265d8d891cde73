package region

import (
	"fmt"
	"math"
)

// Validate checks the structural invariants of a single Region:
// non-empty code, positive population, non-negative deaths, budget and
// rates, and a strictly year-ascending history.
//
// Complexity: O(len(History)).
func (r Region) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("region code: %w", ErrMissingField)
	}
	if r.Population <= 0 {
		return fmt.Errorf("region %q: population: %w", r.Code, ErrMissingField)
	}
	if r.CurrentDeaths < 0 || math.IsNaN(r.CurrentDeaths) {
		return fmt.Errorf("region %q: current deaths: %w", r.Code, ErrNegativeValue)
	}
	if r.CurrentBudget < 0 || math.IsNaN(r.CurrentBudget) {
		return fmt.Errorf("region %q: current budget: %w", r.Code, ErrNegativeValue)
	}
	for i, p := range r.History {
		if p.Rate < 0 || math.IsNaN(p.Rate) {
			return fmt.Errorf("region %q: rate at year %d: %w", r.Code, p.Year, ErrNegativeValue)
		}
		if i > 0 && p.Year <= r.History[i-1].Year {
			return fmt.Errorf("region %q: year %d after %d: %w",
				r.Code, p.Year, r.History[i-1].Year, ErrUnsortedHistory)
		}
	}
	return nil
}

// RatePer100k returns the current violent-death rate per 100k inhabitants.
// The caller guarantees Population > 0 (enforced by Dataset construction).
func (r Region) RatePer100k() float64 {
	return r.CurrentDeaths / float64(r.Population) * 100_000
}

// SpendPerCapita returns the current security spend per inhabitant.
func (r Region) SpendPerCapita() float64 {
	return r.CurrentBudget / float64(r.Population)
}

// Rates returns the rate values of the historical series, in year order.
func (r Region) Rates() []float64 {
	out := make([]float64, len(r.History))
	for i, p := range r.History {
		out[i] = p.Rate
	}
	return out
}

// Years returns the years of the historical series, ascending.
func (r Region) Years() []int {
	out := make([]int, len(r.History))
	for i, p := range r.History {
		out[i] = p.Year
	}
	return out
}

// WithDeaths returns a copy of r with CurrentDeaths replaced.
// The history slice is shared; it is never mutated by this package.
func (r Region) WithDeaths(deaths float64) Region {
	r.CurrentDeaths = deaths
	return r
}

// WithBudget returns a copy of r with CurrentBudget replaced.
func (r Region) WithBudget(budget float64) Region {
	r.CurrentBudget = budget
	return r
}
