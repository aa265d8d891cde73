package multiperiod

import (
	"errors"

	"github.com/rfaguiar/secalloc/allocate"
)

var (
	// ErrBadHorizon signals a non-positive planning horizon.
	ErrBadHorizon = errors.New("multiperiod: horizon must be at least one period")
	// ErrUnknownStrategy signals a strategy name this package does not define.
	ErrUnknownStrategy = errors.New("multiperiod: unknown strategy")
)

// Strategy names a budget-spreading profile over the horizon.
type Strategy string

const (
	// Uniform splits the budget evenly across periods.
	Uniform Strategy = "uniform"
	// FrontLoaded spends more in early periods, tapering off.
	FrontLoaded Strategy = "front-loaded"
	// BackLoaded spends more in late periods, ramping up.
	BackLoaded Strategy = "back-loaded"
	// LinearRamp grows spending linearly from a low start.
	LinearRamp Strategy = "linear-ramp"
)

// Strategies lists every defined strategy in presentation order.
func Strategies() []Strategy {
	return []Strategy{Uniform, FrontLoaded, BackLoaded, LinearRamp}
}

// Config drives a multi-period plan.
type Config struct {
	// Horizon is the number of periods. Must be >= 1.
	Horizon int
	// Strategy selects the spreading profile; empty means Uniform.
	Strategy Strategy
	// Allocate carries the per-period solve options.
	Allocate allocate.Options
}

// Period is one period's slice of the plan.
type Period struct {
	// Index is zero-based.
	Index  int
	Budget float64
	Plan   allocate.Plan
	// CumulativeSaved is the running total of lives saved through this period.
	CumulativeSaved float64
}

// Plan is a full multi-period schedule.
type Plan struct {
	Strategy   Strategy
	Horizon    int
	Total      float64
	Periods    []Period
	LivesSaved float64
}

// Ranking pairs a strategy with its total outcome for comparison.
type Ranking struct {
	Strategy   Strategy
	LivesSaved float64
}
