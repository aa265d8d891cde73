// Package allocate defines the allocation plan types, options and sentinel
// errors for the supplemental-budget optimizer.
package allocate

import (
	"errors"
	"time"

	"github.com/rfaguiar/secalloc/lp"
)

// Sentinel errors for plan construction.
var (
	// ErrBadBudget indicates a negative or non-finite supplemental budget.
	ErrBadBudget = errors.New("allocate: budget must be non-negative and finite")
	// ErrBadBounds indicates an override with Lower > Upper or negative bounds.
	ErrBadBounds = errors.New("allocate: invalid per-region bounds")
	// ErrInfeasibleBudget indicates the region floors sum beyond the budget.
	ErrInfeasibleBudget = errors.New("allocate: lower bounds exceed the available budget")
	// ErrMissingElasticity indicates a region with no elasticity result.
	ErrMissingElasticity = errors.New("allocate: region has no elasticity result")
)

// Tolerance is the floating slack admitted on plan invariants
// (Σ amounts ≤ budget + Tolerance, bound checks).
const Tolerance = 1e-6

// Bound is a per-region allocation interval [Lower, Upper].
type Bound struct {
	Lower float64
	Upper float64
}

// Options configures one optimizer run.
type Options struct {
	// Bounds overrides the default per-region interval [0, budget].
	Bounds map[string]Bound
	// Solver substitutes the LP implementation; nil selects lp.NewSimplex.
	Solver lp.Solver
	// SolveTimeout bounds a single solver attempt when the default solver
	// is used. Zero keeps the solver's own default.
	SolveTimeout time.Duration
}

// Grant is one region's share of the supplemental budget.
type Grant struct {
	Code string
	// Amount is the allocated supplemental investment xᵢ.
	Amount float64
	// Lower and Upper are the realized bound interval for this region.
	Lower, Upper float64
	// DeathsAverted = Cᵢ·(−εᵢ)·xᵢ/Oᵢ for beneficial regions, else 0.
	DeathsAverted float64
	// ProjectedDeaths is the region's deaths after the investment.
	ProjectedDeaths float64
}

// Plan is the optimizer output: per-region grants in dataset order plus
// aggregate figures. Plans are value objects; re-optimization produces a
// new Plan.
type Plan struct {
	Grants []Grant
	// Budget is the supplemental budget B offered to the optimizer.
	Budget float64
	// BudgetUsed is Σ Amount (≤ Budget + Tolerance).
	BudgetUsed float64
	// BaselineDeaths is Σ CurrentDeaths before any investment.
	BaselineDeaths float64
	// ProjectedDeaths is BaselineDeaths − LivesSaved.
	ProjectedDeaths float64
	// LivesSaved is Σ DeathsAverted.
	LivesSaved float64
}

// Grant returns the grant for a region code, and whether it exists.
func (p Plan) Grant(code string) (Grant, bool) {
	for _, g := range p.Grants {
		if g.Code == code {
			return g, true
		}
	}
	return Grant{}, false
}
