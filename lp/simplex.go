package lp

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves Problems with gonum's dense simplex method.
//
// The box-bounded single-row Problem is translated to the standard
// equality form gonum expects (min cᵀz, Az = b, z ≥ 0) by shifting each
// variable down by its lower bound and adding one slack per constraint:
//
//	z = [y₁..yₙ, s, t₁..tₙ],  yᵢ = xᵢ − Lᵢ
//	row 0:   Σ yᵢ + s  = Budget − Σ Lᵢ
//	row i:   yᵢ + tᵢ   = Uᵢ − Lᵢ
//
// A solve that outruns Timeout is retried once at RelaxedTol before
// surfacing ErrSolverTimeout; infeasibility is never retried (it is a
// structural condition, not a transient one).
type Simplex struct {
	// Timeout bounds one solve attempt. Zero means no per-attempt bound
	// beyond the caller's context.
	Timeout time.Duration
	// Tol is the simplex tolerance for the first attempt; zero selects
	// gonum's default.
	Tol float64
	// RelaxedTol is the tolerance for the retry after a timeout.
	RelaxedTol float64
}

// NewSimplex returns a Simplex with the default tolerances and a 10s
// per-attempt timeout, far beyond any 27-region solve.
func NewSimplex() *Simplex {
	return &Simplex{Timeout: 10 * time.Second, Tol: 0, RelaxedTol: 1e-8}
}

// Solve implements Solver.
func (s *Simplex) Solve(ctx context.Context, p Problem) (Solution, error) {
	if err := validate(p); err != nil {
		return Solution{}, err
	}

	n := len(p.Cost)
	slackBudget := p.Budget - floats.Sum(p.Lower)
	if slackBudget < 0 {
		return Solution{}, fmt.Errorf("lower bounds exceed budget by %g: %w", -slackBudget, ErrInfeasible)
	}

	cols := 2*n + 1
	c := make([]float64, cols)
	copy(c, p.Cost)

	a := mat.NewDense(n+1, cols, nil)
	b := make([]float64, n+1)
	for j := 0; j < n; j++ {
		a.Set(0, j, 1)
	}
	a.Set(0, n, 1) // budget slack
	b[0] = slackBudget
	for i := 0; i < n; i++ {
		a.Set(i+1, i, 1)
		a.Set(i+1, n+1+i, 1) // upper-bound slack
		b[i+1] = p.Upper[i] - p.Lower[i]
	}

	z, obj, err := s.attempt(ctx, c, a, b, s.Tol)
	if err != nil {
		if !isTimeout(err) {
			return Solution{}, err
		}
		// One retry at relaxed tolerance.
		z, obj, err = s.attempt(ctx, c, a, b, s.RelaxedTol)
		if err != nil {
			if isTimeout(err) {
				return Solution{}, ErrSolverTimeout
			}
			return Solution{}, err
		}
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = clamp(z[i]+p.Lower[i], p.Lower[i], p.Upper[i])
	}
	return Solution{X: x, Objective: obj + floats.Dot(p.Cost, p.Lower)}, nil
}

// attempt runs one simplex solve under the context and the per-attempt
// timeout. gonum's simplex is not interruptible, so the solve runs in its
// own goroutine and the result channel is buffered to let it finish and be
// collected by the GC if the caller has moved on.
func (s *Simplex) attempt(ctx context.Context, c []float64, a mat.Matrix, b []float64, tol float64) ([]float64, float64, error) {
	type result struct {
		z   []float64
		obj float64
		err error
	}
	ch := make(chan result, 1)
	go func() {
		obj, z, err := convexlp.Simplex(c, a, b, tol, nil)
		ch <- result{z: z, obj: obj, err: mapSimplexErr(err)}
	}()

	var timeout <-chan time.Time
	if s.Timeout > 0 {
		timer := time.NewTimer(s.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case r := <-ch:
		return r.z, r.obj, r.err
	case <-timeout:
		return nil, 0, ErrSolverTimeout
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, 0, ErrSolverTimeout
		}
		return nil, 0, ctx.Err()
	}
}

func isTimeout(err error) bool { return err == ErrSolverTimeout }

// mapSimplexErr translates gonum sentinels into this package's.
func mapSimplexErr(err error) error {
	switch {
	case err == nil:
		return nil
	case err == convexlp.ErrInfeasible:
		return ErrInfeasible
	case err == convexlp.ErrUnbounded:
		return ErrUnbounded
	default:
		return fmt.Errorf("lp: simplex: %w", err)
	}
}

func validate(p Problem) error {
	n := len(p.Cost)
	if n == 0 {
		return fmt.Errorf("empty cost vector: %w", ErrBadProblem)
	}
	if len(p.Lower) != n || len(p.Upper) != n {
		return fmt.Errorf("cost/bounds length mismatch (%d/%d/%d): %w",
			n, len(p.Lower), len(p.Upper), ErrBadProblem)
	}
	if p.Budget < 0 || math.IsNaN(p.Budget) || math.IsInf(p.Budget, 0) {
		return fmt.Errorf("budget %g: %w", p.Budget, ErrBadProblem)
	}
	for i := 0; i < n; i++ {
		if !finite(p.Cost[i]) || !finite(p.Lower[i]) || !finite(p.Upper[i]) {
			return fmt.Errorf("non-finite coefficient at %d: %w", i, ErrBadProblem)
		}
		if p.Lower[i] < 0 || p.Lower[i] > p.Upper[i] {
			return fmt.Errorf("bounds [%g, %g] at %d: %w", p.Lower[i], p.Upper[i], i, ErrBadProblem)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
