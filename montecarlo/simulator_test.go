package montecarlo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaguiar/secalloc/allocate"
	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/montecarlo"
	"github.com/rfaguiar/secalloc/region"
)

func simFixture(t *testing.T) (*region.Dataset, map[string]elasticity.Result) {
	t.Helper()
	ds, err := region.NewDataset([]region.Region{
		{Code: "A", Population: 1_000_000, CurrentDeaths: 100, CurrentBudget: 10},
		{Code: "B", Population: 1_000_000, CurrentDeaths: 200, CurrentBudget: 50},
		{Code: "C", Population: 500_000, CurrentDeaths: 80, CurrentBudget: 20},
	})
	require.NoError(t, err)
	el := map[string]elasticity.Result{
		"A": {Code: "A", Epsilon: -0.5},
		"B": {Code: "B", Epsilon: -0.3},
		"C": {Code: "C", Epsilon: -0.6},
	}
	return ds, el
}

// TestSimulate_Reproducible: same seed ⇒ identical distribution, even with
// different worker counts.
func TestSimulate_Reproducible(t *testing.T) {
	ds, el := simFixture(t)

	run := func(workers int) montecarlo.Result {
		res, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{
			Trials: 50, Noise: 0.2, Seed: 42, Workers: workers,
		})
		require.NoError(t, err)
		return res
	}

	serial := run(1)
	parallel := run(8)

	assert.Equal(t, serial.Mean, parallel.Mean)
	assert.Equal(t, serial.StdDev, parallel.StdDev)
	assert.Equal(t, serial.Percentiles, parallel.Percentiles)
	require.Equal(t, len(serial.Outcomes), len(parallel.Outcomes))
	for i := range serial.Outcomes {
		assert.Equal(t, serial.Outcomes[i], parallel.Outcomes[i])
	}

	// Each record carries the full perturbed input vector within bounds.
	for _, o := range serial.Outcomes {
		assert.Len(t, o.EpsilonFactor, 3)
		for code, f := range o.EpsilonFactor {
			assert.InDelta(t, 1, f, 0.2, "trial %d region %s", o.Trial, code)
		}
		assert.InDelta(t, 1, o.BudgetFactor, 0.2, "trial %d", o.Trial)
	}
}

// TestSimulate_DifferentSeedsDiffer: distinct seeds draw distinct noise.
func TestSimulate_DifferentSeedsDiffer(t *testing.T) {
	ds, el := simFixture(t)

	a, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{Trials: 30, Noise: 0.2, Seed: 1})
	require.NoError(t, err)
	b, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{Trials: 30, Noise: 0.2, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a.Mean, b.Mean)
}

// TestSimulate_ZeroNoiseIsDeterministic: with noise disabled every trial
// is the deterministic optimizer run, so the distribution degenerates to
// a single point and the confidence interval has zero width.
func TestSimulate_ZeroNoiseIsDeterministic(t *testing.T) {
	ds, el := simFixture(t)

	det, err := allocate.Allocate(context.Background(), ds, el, 15, allocate.Options{})
	require.NoError(t, err)

	res, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{
		Trials: 20, Noise: 0, Seed: 7,
	})
	require.NoError(t, err)

	assert.InDelta(t, det.LivesSaved, res.Mean, 1e-9)
	assert.Equal(t, det.LivesSaved, res.CILow)
	assert.Equal(t, det.LivesSaved, res.CIHigh)
	assert.Equal(t, det.LivesSaved, res.ValueAtRisk)
	assert.Zero(t, res.StdDev)
	assert.Equal(t, 20, res.Succeeded)
	assert.Zero(t, res.Failed)
	for _, o := range res.Outcomes {
		assert.Equal(t, det.LivesSaved, o.LivesSaved)
		assert.Equal(t, 1.0, o.BudgetFactor)
	}
}

// TestSimulate_PercentilesOrdered: the ladder must be monotone and bracket
// the median.
func TestSimulate_PercentilesOrdered(t *testing.T) {
	ds, el := simFixture(t)

	res, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{
		Trials: 200, Noise: 0.25, Seed: 99,
	})
	require.NoError(t, err)

	p := res.Percentiles
	assert.LessOrEqual(t, p.P5, p.P25)
	assert.LessOrEqual(t, p.P25, p.P50)
	assert.LessOrEqual(t, p.P50, p.P75)
	assert.LessOrEqual(t, p.P75, p.P95)
	assert.LessOrEqual(t, res.CILow, p.P5)
	assert.GreaterOrEqual(t, res.CIHigh, p.P95)
	assert.Equal(t, p.P5, res.ValueAtRisk)
	assert.Equal(t, int64(99), res.Seed)
}

// TestSimulate_ClampsTrials caps runaway trial counts at MaxTrials.
func TestSimulate_ClampsTrials(t *testing.T) {
	ds, el := simFixture(t)

	res, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{
		Trials: montecarlo.MaxTrials + 5, Seed: 3, Workers: 16,
	})
	require.NoError(t, err)
	assert.Equal(t, montecarlo.MaxTrials, res.Succeeded+res.Failed)
}

// TestSimulate_BadConfig covers the validation sentinels.
func TestSimulate_BadConfig(t *testing.T) {
	ds, el := simFixture(t)

	_, err := montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{Trials: 0})
	assert.ErrorIs(t, err, montecarlo.ErrBadTrialCount)

	_, err = montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{Trials: 10, Noise: 1.5})
	assert.ErrorIs(t, err, montecarlo.ErrBadNoise)

	_, err = montecarlo.Simulate(context.Background(), ds, el, 15, montecarlo.Config{Trials: 10, Noise: -0.1})
	assert.ErrorIs(t, err, montecarlo.ErrBadNoise)
}

// TestSimulate_AllTrialsFailed: floors above the budget make every trial
// infeasible.
func TestSimulate_AllTrialsFailed(t *testing.T) {
	ds, el := simFixture(t)

	_, err := montecarlo.Simulate(context.Background(), ds, el, 5, montecarlo.Config{
		Trials: 10, Noise: 0.1, Seed: 4,
		Allocate: allocate.Options{Bounds: map[string]allocate.Bound{
			"A": {Lower: 100, Upper: 200},
		}},
	})
	assert.ErrorIs(t, err, montecarlo.ErrAllTrialsFailed)
}

// TestCompareScenarios_Ordering: stronger elasticities save more lives.
func TestCompareScenarios_Ordering(t *testing.T) {
	ds, el := simFixture(t)

	cmp, err := montecarlo.CompareScenarios(context.Background(), ds, el, 15, montecarlo.Config{
		Trials: 40, Noise: 0.1, Seed: 11,
	})
	require.NoError(t, err)

	assert.Less(t, cmp.Pessimistic.Mean, cmp.Base.Mean)
	assert.Less(t, cmp.Base.Mean, cmp.Optimistic.Mean)
	assert.Equal(t, cmp.Base.Seed, cmp.Optimistic.Seed, "regimes share the seed")
}
