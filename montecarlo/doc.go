// Package montecarlo stress-tests budget allocations under parameter
// uncertainty.
//
// Elasticity estimates and base budgets are point estimates; this package
// asks how fragile the optimized plan is if they are wrong. Each trial
// scales every region's elasticity and the total budget by independent
// factors drawn uniformly from [1-noise, 1+noise], re-solves, and
// records total lives saved. The run summarizes the resulting empirical
// distribution: mean, standard deviation, a central 95% interval, the
// 5th-percentile value at risk, and a percentile ladder.
//
// Runs are reproducible: fixing Config.Seed fixes every trial's draws
// regardless of worker count, because each trial derives its own RNG
// stream from the seed and its trial index. CompareScenarios layers a
// deterministic regime shift (elasticities ×0.75 / ×1.0 / ×1.25) on top
// of the same noise to separate systematic bias from noise.
package montecarlo
