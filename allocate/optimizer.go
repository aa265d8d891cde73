package allocate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/lp"
	"github.com/rfaguiar/secalloc/region"
)

// Allocate distributes the supplemental budget across the dataset to
// minimize projected violent deaths under the linearized response model
//
//	minimize Σᵢ Cᵢ·(1 − |εᵢ|·xᵢ/Oᵢ)   over beneficial regions (εᵢ < 0)
//	s.t.     Σ xᵢ ≤ budget,  Lᵢ ≤ xᵢ ≤ Uᵢ
//
// Per-region bounds default to [0, budget] and may be overridden through
// opts.Bounds. Regions with εᵢ ≥ 0 or Oᵢ = 0 contribute no benefit: their
// marginal term is excluded from the objective (the Oᵢ = 0 division is
// guarded) and their allocation is pinned to the lower bound, keeping the
// plan deterministic where the LP is indifferent.
//
// Errors: ErrBadBudget, ErrBadBounds, ErrMissingElasticity (with region
// code), ErrInfeasibleBudget when Σ Lᵢ > budget, and solver errors from
// the lp package (ErrSolverTimeout, ErrInfeasible) otherwise.
//
// Complexity: one LP solve over n regions; O(n) aside from the solve.
func Allocate(
	ctx context.Context,
	ds *region.Dataset,
	el map[string]elasticity.Result,
	budget float64,
	opts Options,
) (Plan, error) {
	if budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return Plan{}, fmt.Errorf("%w: %g", ErrBadBudget, budget)
	}

	regions := ds.Regions()
	n := len(regions)
	var (
		lower   = make([]float64, n)
		upper   = make([]float64, n)
		benefit = make([]float64, n) // deaths averted per currency unit
		cost    = make([]float64, n)
		floors  float64
	)

	for i, r := range regions {
		lower[i], upper[i] = 0, budget
		if b, ok := opts.Bounds[r.Code]; ok {
			if b.Lower < 0 || b.Lower > b.Upper {
				return Plan{}, fmt.Errorf("region %q [%g, %g]: %w", r.Code, b.Lower, b.Upper, ErrBadBounds)
			}
			lower[i], upper[i] = b.Lower, b.Upper
		}

		res, ok := el[r.Code]
		if !ok {
			return Plan{}, fmt.Errorf("%w: %q", ErrMissingElasticity, r.Code)
		}
		if r.CurrentBudget > 0 && res.Epsilon < 0 {
			benefit[i] = r.CurrentDeaths * (-res.Epsilon) / r.CurrentBudget
		}
		if r.CurrentBudget == 0 {
			// No base budget: marginal effect undefined, force the floor.
			upper[i] = lower[i]
		}
		cost[i] = -benefit[i]
		floors += lower[i]
	}

	if floors > budget+Tolerance {
		return Plan{}, fmt.Errorf("Σ lower bounds %g > budget %g: %w", floors, budget, ErrInfeasibleBudget)
	}

	solver := opts.Solver
	if solver == nil {
		s := lp.NewSimplex()
		if opts.SolveTimeout > 0 {
			s.Timeout = opts.SolveTimeout
		}
		solver = s
	}

	sol, err := solver.Solve(ctx, lp.Problem{Cost: cost, Budget: budget, Lower: lower, Upper: upper})
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return Plan{}, fmt.Errorf("budget %g: %w", budget, ErrInfeasibleBudget)
		}
		return Plan{}, fmt.Errorf("budget %g: %w", budget, err)
	}

	plan := Plan{Grants: make([]Grant, n), Budget: budget}
	for i, r := range regions {
		x := sol.X[i]
		if benefit[i] == 0 {
			// The LP is indifferent to this region; keep the floor.
			x = lower[i]
		}
		averted := benefit[i] * x
		plan.Grants[i] = Grant{
			Code:            r.Code,
			Amount:          x,
			Lower:           lower[i],
			Upper:           upper[i],
			DeathsAverted:   averted,
			ProjectedDeaths: r.CurrentDeaths - averted,
		}
		plan.BudgetUsed += x
		plan.BaselineDeaths += r.CurrentDeaths
		plan.LivesSaved += averted
	}
	plan.ProjectedDeaths = plan.BaselineDeaths - plan.LivesSaved

	return plan, nil
}
