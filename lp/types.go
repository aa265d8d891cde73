// Package lp defines the narrow linear-programming capability the
// allocation optimizer depends on, plus sentinel errors shared by solver
// implementations.
package lp

import (
	"context"
	"errors"
)

// Sentinel errors for LP solving.
var (
	// ErrBadProblem indicates malformed input (mismatched lengths, NaN
	// coefficients, inverted or negative bounds, negative budget).
	ErrBadProblem = errors.New("lp: malformed problem")
	// ErrInfeasible indicates no point satisfies the constraints.
	ErrInfeasible = errors.New("lp: problem is infeasible")
	// ErrUnbounded indicates the objective decreases without bound.
	ErrUnbounded = errors.New("lp: problem is unbounded")
	// ErrSolverTimeout indicates the solve exceeded its time budget even
	// after one retry at relaxed tolerance.
	ErrSolverTimeout = errors.New("lp: solve exceeded time budget")
)

// Problem is a box-bounded minimization with a single budget row:
//
//	minimize   Cost · x
//	subject to Σ xᵢ ≤ Budget
//	           Lowerᵢ ≤ xᵢ ≤ Upperᵢ
//
// with 0 ≤ Lowerᵢ ≤ Upperᵢ. This is exactly the shape every allocation
// variant in secalloc produces; anything a compliant solver needs beyond
// the three vectors is an implementation detail behind Solver.
type Problem struct {
	Cost   []float64
	Budget float64
	Lower  []float64
	Upper  []float64
}

// Solution is an optimal vertex and its objective value.
type Solution struct {
	X         []float64
	Objective float64
}

// Solver is the abstracted LP capability: given a Problem, return an
// optimal vertex or report infeasibility/unboundedness. Implementations
// must honor context cancellation and deadlines.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Solution, error)
}
