// Package sensitivity performs post-optimal analysis on budget allocations.
//
// Three complementary views are offered:
//
//   - Sweep: re-solves the allocation across a ladder of total budgets
//     and reports the shadow price (marginal lives saved per budget unit)
//     between consecutive rungs. A flattening shadow price locates the
//     point of diminishing returns.
//   - Tornado: shocks one parameter at a time (each region's elasticity,
//     each region's base budget, and the total budget) by a symmetric
//     relative amount and ranks parameters by the resulting swing in
//     lives saved.
//   - Scenarios: solves named what-if datasets side by side with the base
//     case and reports the delta of each.
//
// All entry points take a context.Context and run their independent
// solves concurrently through errgroup. Results are deterministic:
// sweeps are ordered by budget, tornado entries by descending swing,
// scenarios by name.
package sensitivity
