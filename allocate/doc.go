// Package allocate formulates and solves the supplemental-budget
// allocation as a linear program.
//
// The response model is linear in the allocation x for fixed deaths Cᵢ,
// elasticity εᵢ and base budget Oᵢ, so the minimization of projected
// deaths reduces to maximizing Σ bᵢ·xᵢ with per-unit benefit
// bᵢ = Cᵢ·(−εᵢ)/Oᵢ for beneficial regions (εᵢ < 0, Oᵢ > 0) and bᵢ = 0
// otherwise, under the total-budget row and per-region box bounds.
//
// The solve is delegated to the lp package. With a single active budget
// constraint the optimal vertex is the greedy fill by benefit ratio,
// which the tests pin down.
//
// Plans are immutable value objects: sensitivity sweeps, Monte Carlo
// trials and multi-period planning all re-run Allocate on derived inputs
// and never mutate a returned Plan.
package allocate
