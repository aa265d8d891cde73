package montecarlo

import (
	"errors"

	"github.com/rfaguiar/secalloc/allocate"
)

var (
	// ErrBadTrialCount signals a non-positive trial count.
	ErrBadTrialCount = errors.New("montecarlo: trial count must be positive")
	// ErrBadNoise signals a relative noise level outside [0, 1).
	ErrBadNoise = errors.New("montecarlo: noise must lie in [0, 1)")
	// ErrAllTrialsFailed signals that no trial produced a feasible allocation.
	ErrAllTrialsFailed = errors.New("montecarlo: every trial was infeasible")
)

// MaxTrials caps a single simulation run; larger requests are clamped.
const MaxTrials = 100_000

// DefaultNoise is the conventional ±15% level callers (and the CLI flag
// default) reach for when they have no better uncertainty estimate.
const DefaultNoise = 0.15

// Config drives one simulation run.
type Config struct {
	// Trials is the number of perturbed re-optimizations; clamped to MaxTrials.
	Trials int
	// Noise is the half-width of the uniform relative perturbation, in
	// [0, 1). Each parameter is scaled by a factor drawn uniformly from
	// [1-Noise, 1+Noise]; zero disables perturbation entirely, so every
	// trial reproduces the deterministic optimizer outcome.
	Noise float64
	// Seed makes runs reproducible; 0 seeds from the wall clock.
	Seed int64
	// Workers bounds concurrent solves; <= 0 means GOMAXPROCS.
	Workers int
	// Allocate carries the per-solve options (bounds, solver, timeout).
	Allocate allocate.Options
}

// Outcome is one trial's result together with the perturbed input vector
// that produced it, so any trial in the distribution can be attributed
// and replayed from its record alone.
type Outcome struct {
	Trial      int
	LivesSaved float64
	// EpsilonFactor holds the multiplicative shock applied to each
	// region's elasticity, keyed by region code.
	EpsilonFactor map[string]float64
	// BudgetFactor is the multiplicative shock applied to the total budget.
	BudgetFactor float64
}

// Percentiles are the empirical quantiles of lives saved across trials.
type Percentiles struct {
	P5, P25, P50, P75, P95 float64
}

// Result summarizes a simulation run. CILow/CIHigh bound the central 95%
// of outcomes (2.5th and 97.5th percentiles). ValueAtRisk is the 5th
// percentile, the pessimistic-but-plausible floor.
type Result struct {
	Mean        float64
	StdDev      float64
	CILow       float64
	CIHigh      float64
	ValueAtRisk float64
	Percentiles Percentiles
	// Seed is the seed actually used, echoing clock-derived seeds so a
	// run can be replayed.
	Seed      int64
	Succeeded int
	Failed    int
	Outcomes  []Outcome
}

// Comparison holds the same simulation under three elasticity regimes.
type Comparison struct {
	Pessimistic Result // elasticities scaled ×0.75 (weaker response)
	Base        Result
	Optimistic  Result // elasticities scaled ×1.25 (stronger response)
}
