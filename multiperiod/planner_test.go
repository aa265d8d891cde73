package multiperiod_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaguiar/secalloc/allocate"
	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/multiperiod"
	"github.com/rfaguiar/secalloc/region"
)

func planFixture(t *testing.T) (*region.Dataset, map[string]elasticity.Result) {
	t.Helper()
	ds, err := region.NewDataset([]region.Region{
		{Code: "A", Population: 1_000_000, CurrentDeaths: 100, CurrentBudget: 10},
		{Code: "B", Population: 1_000_000, CurrentDeaths: 200, CurrentBudget: 50},
	})
	require.NoError(t, err)
	el := map[string]elasticity.Result{
		"A": {Code: "A", Epsilon: -0.5},
		"B": {Code: "B", Epsilon: -0.3},
	}
	return ds, el
}

// TestWeights_SumToOne across every strategy and several horizons.
func TestWeights_SumToOne(t *testing.T) {
	for _, s := range multiperiod.Strategies() {
		for _, horizon := range []int{1, 2, 5, 12} {
			w, err := multiperiod.Weights(s, horizon)
			require.NoError(t, err, "%s/%d", s, horizon)
			require.Len(t, w, horizon)
			var sum float64
			for _, v := range w {
				assert.Positive(t, v)
				sum += v
			}
			assert.InDelta(t, 1, sum, 1e-12, "%s/%d", s, horizon)
		}
	}
}

// TestWeights_Profiles pins the shapes: front-loaded decreasing,
// back-loaded and linear increasing, uniform flat.
func TestWeights_Profiles(t *testing.T) {
	const horizon = 4

	front, err := multiperiod.Weights(multiperiod.FrontLoaded, horizon)
	require.NoError(t, err)
	back, err := multiperiod.Weights(multiperiod.BackLoaded, horizon)
	require.NoError(t, err)
	ramp, err := multiperiod.Weights(multiperiod.LinearRamp, horizon)
	require.NoError(t, err)
	flat, err := multiperiod.Weights(multiperiod.Uniform, horizon)
	require.NoError(t, err)

	for k := 1; k < horizon; k++ {
		assert.Less(t, front[k], front[k-1], "front-loaded must decrease")
		assert.Greater(t, back[k], back[k-1], "back-loaded must increase")
		assert.Greater(t, ramp[k], ramp[k-1], "linear ramp must increase")
		assert.Equal(t, flat[k], flat[k-1], "uniform must be flat")
	}
	// Front/back profiles are mirror images of each other.
	for k := 0; k < horizon; k++ {
		assert.InDelta(t, front[k], back[horizon-1-k], 1e-12)
	}
}

// TestWeights_Errors covers the sentinels.
func TestWeights_Errors(t *testing.T) {
	_, err := multiperiod.Weights(multiperiod.Uniform, 0)
	assert.ErrorIs(t, err, multiperiod.ErrBadHorizon)

	_, err = multiperiod.Weights("all-at-once", 3)
	assert.ErrorIs(t, err, multiperiod.ErrUnknownStrategy)
}

// TestBuild_SinglePeriodEqualsDirectSolve: horizon 1 must reproduce the
// one-shot allocation exactly, whatever the strategy.
func TestBuild_SinglePeriodEqualsDirectSolve(t *testing.T) {
	ds, el := planFixture(t)

	direct, err := allocate.Allocate(context.Background(), ds, el, 20, allocate.Options{})
	require.NoError(t, err)

	plan, err := multiperiod.Build(context.Background(), ds, el, 20, multiperiod.Config{
		Horizon: 1, Strategy: multiperiod.FrontLoaded,
	})
	require.NoError(t, err)

	require.Len(t, plan.Periods, 1)
	assert.InDelta(t, direct.LivesSaved, plan.LivesSaved, 1e-9)
	assert.InDelta(t, 20, plan.Periods[0].Budget, 1e-12)
}

// TestBuild_BaselinesCarryForward: period 2 optimizes against baselines
// already reduced by period 1, so its per-unit benefit is lower and the
// cumulative total is monotone.
func TestBuild_BaselinesCarryForward(t *testing.T) {
	ds, el := planFixture(t)

	plan, err := multiperiod.Build(context.Background(), ds, el, 20, multiperiod.Config{
		Horizon: 2, Strategy: multiperiod.Uniform,
	})
	require.NoError(t, err)
	require.Len(t, plan.Periods, 2)

	p1, p2 := plan.Periods[0], plan.Periods[1]
	assert.Less(t, p2.Plan.BaselineDeaths, p1.Plan.BaselineDeaths,
		"period 1 savings must lower period 2 baselines")
	assert.Less(t, p2.Plan.LivesSaved, p1.Plan.LivesSaved,
		"equal budget against smaller baselines saves less")
	assert.Greater(t, p2.CumulativeSaved, p1.CumulativeSaved)
	assert.InDelta(t, plan.LivesSaved, p2.CumulativeSaved, 1e-12)
}

// TestBuild_BaselineFloorsAtZero: an outsized budget cannot drive a
// region's baseline negative.
func TestBuild_BaselineFloorsAtZero(t *testing.T) {
	ds, err := region.NewDataset([]region.Region{
		{Code: "A", Population: 100_000, CurrentDeaths: 10, CurrentBudget: 1},
	})
	require.NoError(t, err)
	el := map[string]elasticity.Result{"A": {Code: "A", Epsilon: -0.9}}

	plan, err := multiperiod.Build(context.Background(), ds, el, 100, multiperiod.Config{Horizon: 3})
	require.NoError(t, err)

	// The linear model overshoots within a period, but the carried
	// baseline must still floor at zero.
	for _, p := range plan.Periods {
		assert.GreaterOrEqual(t, p.Plan.BaselineDeaths, 0.0)
	}
	assert.GreaterOrEqual(t, plan.Periods[2].Plan.BaselineDeaths, 0.0)
	assert.Zero(t, plan.Periods[1].Plan.BaselineDeaths, "period 0 grant dwarfs the 10-death baseline")
}

// TestCompare_RanksAllStrategies returns one ranking per strategy, sorted
// best first.
func TestCompare_RanksAllStrategies(t *testing.T) {
	ds, el := planFixture(t)

	rankings, err := multiperiod.Compare(context.Background(), ds, el, 20, multiperiod.Config{Horizon: 3})
	require.NoError(t, err)
	require.Len(t, rankings, len(multiperiod.Strategies()))

	seen := map[multiperiod.Strategy]bool{}
	for i, r := range rankings {
		assert.False(t, seen[r.Strategy], "strategy %s ranked twice", r.Strategy)
		seen[r.Strategy] = true
		if i > 0 {
			assert.LessOrEqual(t, r.LivesSaved, rankings[i-1].LivesSaved)
		}
	}
}
