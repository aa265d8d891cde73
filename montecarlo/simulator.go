package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/rfaguiar/secalloc/allocate"
	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/region"
)

// Simulate re-optimizes the allocation under random perturbations of every
// region's elasticity and of the total budget, and summarizes the
// distribution of total lives saved.
//
// Determinism: a non-zero cfg.Seed fixes the whole run. Each trial owns an
// independent RNG derived from (seed, trial index), and each trial draws
// its factors in dataset order, so results do not depend on cfg.Workers
// or goroutine scheduling.
//
// Trials whose perturbed problem is infeasible are counted in
// Result.Failed and excluded from the statistics; only a run with zero
// feasible trials fails with ErrAllTrialsFailed.
//
// Complexity: Trials independent LP solves, bounded by cfg.Workers.
func Simulate(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, budget float64, cfg Config) (Result, error) {
	if cfg.Trials <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadTrialCount, cfg.Trials)
	}
	trials := cfg.Trials
	if trials > MaxTrials {
		trials = MaxTrials
	}
	noise := cfg.Noise
	if noise < 0 || noise >= 1 {
		return Result{}, fmt.Errorf("%w: got %g", ErrBadNoise, cfg.Noise)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	outcomes := make([]*Outcome, trials)
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for k := 0; k < trials; k++ {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := trialRNG(seed, k)
			pel, efac, bfac := perturb(ds, el, noise, rng)
			plan, err := allocate.Allocate(gctx, ds, pel, budget*bfac, cfg.Allocate)
			switch {
			case errors.Is(err, allocate.ErrInfeasibleBudget):
				return nil // counted as a failed trial
			case err != nil:
				return fmt.Errorf("trial %d: %w", k, err)
			}
			outcomes[k] = &Outcome{
				Trial:         k,
				LivesSaved:    plan.LivesSaved,
				EpsilonFactor: efac,
				BudgetFactor:  bfac,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return summarize(outcomes, seed)
}

// CompareScenarios runs the same simulation under pessimistic (×0.75),
// base, and optimistic (×1.25) elasticity regimes. The regimes share
// cfg.Seed, so their differences come from the regime alone.
func CompareScenarios(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, budget float64, cfg Config) (Comparison, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var cmp Comparison
	for _, reg := range []struct {
		factor float64
		out    *Result
	}{
		{0.75, &cmp.Pessimistic},
		{1.0, &cmp.Base},
		{1.25, &cmp.Optimistic},
	} {
		scaled := scaleEpsilons(el, reg.factor)
		res, err := Simulate(ctx, ds, scaled, budget, cfg)
		if err != nil {
			return Comparison{}, fmt.Errorf("regime ×%g: %w", reg.factor, err)
		}
		*reg.out = res
	}
	return cmp, nil
}

// perturb scales each region's elasticity and the total budget by
// independent factors drawn uniformly from [1-noise, 1+noise], and hands
// back the factors themselves so the trial record can be replayed. Draws
// follow dataset order so the stream is stable for a given trial RNG.
func perturb(ds *region.Dataset, el map[string]elasticity.Result, noise float64, rng *rand.Rand) (map[string]elasticity.Result, map[string]float64, float64) {
	pel := make(map[string]elasticity.Result, len(el))
	efac := make(map[string]float64, ds.Len())
	for _, r := range ds.Regions() {
		f := 1 + noise*(2*rng.Float64()-1)
		if res, ok := el[r.Code]; ok {
			res.Epsilon *= f
			pel[r.Code] = res
			efac[r.Code] = f
		}
	}
	bfac := 1 + noise*(2*rng.Float64()-1)
	return pel, efac, bfac
}

func scaleEpsilons(el map[string]elasticity.Result, factor float64) map[string]elasticity.Result {
	out := make(map[string]elasticity.Result, len(el))
	for code, res := range el {
		res.Epsilon *= factor
		out[code] = res
	}
	return out
}

// summarize computes the distribution statistics over the feasible trials.
func summarize(outcomes []*Outcome, seed int64) (Result, error) {
	var (
		kept  []Outcome
		saved []float64
	)
	for _, o := range outcomes {
		if o == nil {
			continue
		}
		kept = append(kept, *o)
		saved = append(saved, o.LivesSaved)
	}
	failed := len(outcomes) - len(kept)
	if len(kept) == 0 {
		return Result{}, fmt.Errorf("%w: %d trials", ErrAllTrialsFailed, failed)
	}

	sort.Float64s(saved)
	q := func(p float64) float64 { return stat.Quantile(p, stat.Empirical, saved, nil) }

	res := Result{
		Mean:        stat.Mean(saved, nil),
		CILow:       q(0.025),
		CIHigh:      q(0.975),
		ValueAtRisk: q(0.05),
		Percentiles: Percentiles{
			P5:  q(0.05),
			P25: q(0.25),
			P50: q(0.50),
			P75: q(0.75),
			P95: q(0.95),
		},
		Seed:      seed,
		Succeeded: len(kept),
		Failed:    failed,
		Outcomes:  kept,
	}
	if len(saved) > 1 {
		res.StdDev = stat.StdDev(saved, nil)
	}
	return res, nil
}
