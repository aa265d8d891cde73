package efficiency

import "errors"

var (
	// ErrBadWeights signals weights that are negative or do not sum to 1.
	ErrBadWeights = errors.New("efficiency: weights must be non-negative and sum to 1")
	// ErrNoScorable signals that every region was excluded.
	ErrNoScorable = errors.New("efficiency: no region has a positive rate and spend")
)

// Weights balance the two score components. Zero value selects the
// defaults via Default().
type Weights struct {
	// Outcome weighs the inverse crime-rate component.
	Outcome float64
	// Economy weighs the inverse per-capita-spend component.
	Economy float64
}

// Default returns the standard 0.75/0.25 outcome/economy split.
func Default() Weights {
	return Weights{Outcome: 0.75, Economy: 0.25}
}

// benchmarkThreshold marks the efficient frontier: scores within rounding
// of the best region count as benchmarks.
const benchmarkThreshold = 0.999

// Score is one region's efficiency result.
type Score struct {
	Code string
	// Rate and Spend are the inputs: deaths per 100k and spend per capita.
	Rate, Spend float64
	// Outcome and Economy are the raw components (cross-region mean over
	// the region's own value, so bigger is better).
	Outcome, Economy float64
	// Index is the weighted combination normalized so the best region
	// scores 1.
	Index float64
	// Benchmark marks regions on the efficient frontier.
	Benchmark bool
	// TargetRate and TargetSpend are the levels the region would show at
	// its current efficiency projected onto the frontier.
	TargetRate, TargetSpend float64
}

// Exclusion reports a region left out of the ranking and why.
type Exclusion struct {
	Code   string
	Reason string
}

// Ranking is the full scored dataset, best first.
type Ranking struct {
	Scores     []Score
	Exclusions []Exclusion
	Weights    Weights
}
