// Package secalloc is an analytical toolkit for public-safety budget
// allocation — from elasticity estimation to LP optimization, risk
// simulation and efficiency ranking.
//
// 🚀 What is secalloc?
//
//	A composable library (plus a small CLI) that brings together:
//		• Elasticity fits: how strongly each region's violent-death rate
//		  responds to budget changes, from its own history
//		• LP allocation: spread a supplemental budget to minimize
//		  projected deaths under per-region bounds
//		• Sensitivity: budget sweeps with shadow prices, tornado ranking
//		• Monte Carlo: outcome distributions under parameter noise
//		• Multi-period planning: uniform / front- / back-loaded schedules
//		• Backtesting: sliding-window MAPE of the trend model
//		• Efficiency: DEA-style fixed-weight ranking with benchmarks
//
// ✨ Why choose secalloc?
//
//   - Immutable inputs – every analysis takes a dataset snapshot and
//     returns new values, so sweeps and simulations parallelize freely
//   - Deterministic – seeded simulations reproduce exactly, regardless
//     of worker count
//   - Explicit failure modes – sentinel errors per package, partial
//     failures contained to the region or window that caused them
//
// Everything is organized under flat subpackages:
//
//	region/      — the immutable Region/Dataset data model
//	elasticity/  — Δcrime% ~ Δbudget% regression and trend fits
//	lp/          — bounded-simplex solver with timeout control
//	allocate/    — the budget optimizer producing allocation plans
//	sensitivity/ — sweeps, shadow prices, tornado, what-if scenarios
//	montecarlo/  — seeded, parallel noise simulation
//	multiperiod/ — disbursement strategies over a horizon
//	backtest/    — historical accuracy of the projections
//	efficiency/  — outcome-per-currency ranking
//	cmd/secalloc — the command-line front end
//
// Quick example:
//
//	ds, _ := region.NewDataset(regions)
//	el, _ := elasticity.EstimateAll(ds, proxy, elasticity.Options{})
//	plan, _ := allocate.Allocate(ctx, ds, el, 250.0, allocate.Options{})
//	for _, g := range plan.Grants {
//		fmt.Println(g.Code, g.Amount, g.DeathsAverted)
//	}
package secalloc
