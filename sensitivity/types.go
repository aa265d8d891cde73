// Package sensitivity quantifies how an allocation responds to input changes.
package sensitivity

import (
	"errors"

	"github.com/rfaguiar/secalloc/allocate"
)

var (
	// ErrBadSweep signals a non-positive step or point count.
	ErrBadSweep = errors.New("sensitivity: sweep needs a positive step and at least two points")
	// ErrBadPerturbation signals a tornado perturbation outside (0, 1).
	ErrBadPerturbation = errors.New("sensitivity: perturbation must lie in (0, 1)")
	// ErrBaseInfeasible signals that the unperturbed scenario itself has no solution.
	ErrBaseInfeasible = errors.New("sensitivity: base allocation is infeasible")
)

// DefaultPerturbation is the relative shock applied to each parameter
// in a tornado analysis.
const DefaultPerturbation = 0.10

// SweepConfig describes a budget sweep: Points allocations starting at
// Base and growing by Step each time.
type SweepConfig struct {
	// Base is the first budget evaluated. Must be >= 0.
	Base float64
	// Step is the budget increment between consecutive points. Must be > 0.
	Step float64
	// Points is the number of budgets evaluated. Must be >= 2.
	Points int
	// Parallelism bounds concurrent solves; <= 0 runs the points serially.
	Parallelism int
	// Allocate carries the per-solve options (bounds, solver, timeout).
	Allocate allocate.Options
}

// SweepPoint is one budget level of a sweep. ShadowPrice is the marginal
// lives saved per budget unit between this point and the previous one;
// it is undefined on the first point and across infeasible gaps.
type SweepPoint struct {
	Budget          float64
	LivesSaved      float64
	ProjectedDeaths float64
	ShadowPrice     float64
	ShadowDefined   bool
	// Defined is false when the solve at this budget was infeasible.
	Defined bool
}

// ParameterKind identifies which input a tornado entry perturbed.
type ParameterKind string

const (
	// ParamElasticity perturbs one region's elasticity.
	ParamElasticity ParameterKind = "elasticity"
	// ParamBaseBudget perturbs one region's current-budget denominator.
	ParamBaseBudget ParameterKind = "base-budget"
	// ParamTotalBudget perturbs the total budget being allocated.
	ParamTotalBudget ParameterKind = "total-budget"
)

// TornadoConfig describes a tornado (one-at-a-time) analysis.
type TornadoConfig struct {
	// Perturbation is the relative shock; 0 selects DefaultPerturbation.
	Perturbation float64
	// TopN truncates the ranked output; <= 0 keeps every entry.
	TopN int
	// Parallelism bounds concurrent solves; <= 0 means GOMAXPROCS.
	Parallelism int
	// Allocate carries the per-solve options.
	Allocate allocate.Options
}

// TornadoEntry records the outcome swing caused by shocking one parameter
// both ways while holding everything else at base.
type TornadoEntry struct {
	Kind ParameterKind
	// Code is the region the parameter belongs to; empty for ParamTotalBudget.
	Code string
	// Low and High are lives saved under the -/+ shock. NaN when that
	// side was infeasible.
	Low, High float64
	// Swing is max(|Low-Base|, |High-Base|), the ranking key.
	Swing float64
}

// ScenarioResult is a named what-if allocation next to the base case.
type ScenarioResult struct {
	Name       string
	Plan       allocate.Plan
	LivesDelta float64
	// Err is set when the scenario could not be solved.
	Err error
}
