// Package region provides the immutable data model consumed by every
// secalloc analysis: administrative regions with population, the current
// violent-deaths and security-budget snapshot, and the historical
// crime-rate series per 100k inhabitants.
//
// Invariants enforced at Dataset construction:
//   - region codes are non-empty and unique
//   - population is positive (per-capita metrics divide by it)
//   - deaths, budgets and rates are non-negative and finite
//   - the historical series is strictly ascending by year
//
// All types are value objects: a Dataset is never mutated after
// construction, and what-if analyses derive new snapshots via Map,
// WithDeaths and WithBudget. This keeps repeated analyses (sensitivity
// sweeps, Monte Carlo batches) free of hidden shared state and safe to
// run concurrently over the same Dataset.
//
// Data acquisition and cleaning are external concerns: the loader that
// builds a Dataset is expected to supply already consistent records, and
// construction fails fast (ErrMissingField and friends) when it does not.
package region
