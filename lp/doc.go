// Package lp abstracts the linear-programming solve behind a narrow
// interface: cost vector, one budget row, box bounds in; optimal vertex or
// an infeasibility signal out.
//
// The allocation optimizer never talks to a concrete solver. Any
// simplex-class implementation satisfying Solver can be substituted; the
// shipped one (Simplex) delegates to gonum's dense simplex after a
// mechanical translation to standard equality form.
//
// Timeouts: a solve that exceeds its time budget is retried exactly once
// at a relaxed tolerance, then fails with ErrSolverTimeout. Infeasibility
// (ErrInfeasible) is structural and never retried.
package lp
