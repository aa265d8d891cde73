package efficiency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaguiar/secalloc/efficiency"
	"github.com/rfaguiar/secalloc/region"
)

// scorerFixture has an obvious winner: LOW has the lowest death rate on
// the lowest per-capita spend.
func scorerFixture(t *testing.T) *region.Dataset {
	t.Helper()
	ds, err := region.NewDataset([]region.Region{
		{Code: "LOW", Population: 1_000_000, CurrentDeaths: 100, CurrentBudget: 10_000_000},
		{Code: "MID", Population: 1_000_000, CurrentDeaths: 200, CurrentBudget: 20_000_000},
		{Code: "HIGH", Population: 1_000_000, CurrentDeaths: 400, CurrentBudget: 40_000_000},
	})
	require.NoError(t, err)
	return ds
}

// TestRank_OrderAndBenchmark: the dominant region indexes at 1 and is the
// sole benchmark.
func TestRank_OrderAndBenchmark(t *testing.T) {
	ranking, err := efficiency.Rank(scorerFixture(t), efficiency.Weights{})
	require.NoError(t, err)
	require.Len(t, ranking.Scores, 3)

	best := ranking.Scores[0]
	assert.Equal(t, "LOW", best.Code)
	assert.InDelta(t, 1, best.Index, 1e-12)
	assert.True(t, best.Benchmark)

	assert.Equal(t, "MID", ranking.Scores[1].Code)
	assert.Equal(t, "HIGH", ranking.Scores[2].Code)
	for _, s := range ranking.Scores[1:] {
		assert.False(t, s.Benchmark)
		assert.Less(t, s.Index, 1.0)
	}

	assert.Equal(t, efficiency.Default(), ranking.Weights, "zero weights select the default split")
}

// TestRank_ComponentArithmetic pins the raw components on hand-checked
// numbers: mean rate (10+20+40)/3, mean spend (10+20+40)/3.
func TestRank_ComponentArithmetic(t *testing.T) {
	ranking, err := efficiency.Rank(scorerFixture(t), efficiency.Weights{})
	require.NoError(t, err)

	var low efficiency.Score
	for _, s := range ranking.Scores {
		if s.Code == "LOW" {
			low = s
		}
	}
	meanOverOwn := (10.0 + 20.0 + 40.0) / 3.0 / 10.0
	assert.InDelta(t, meanOverOwn, low.Outcome, 1e-9)
	assert.InDelta(t, meanOverOwn, low.Economy, 1e-9)
}

// TestRank_ScaleInvariance: multiplying every spend by the same constant
// must not change indices or order.
func TestRank_ScaleInvariance(t *testing.T) {
	ds := scorerFixture(t)
	scaled := ds.Map(func(r region.Region) region.Region {
		return r.WithBudget(r.CurrentBudget * 1000)
	})

	a, err := efficiency.Rank(ds, efficiency.Weights{})
	require.NoError(t, err)
	b, err := efficiency.Rank(scaled, efficiency.Weights{})
	require.NoError(t, err)

	require.Equal(t, len(a.Scores), len(b.Scores))
	for i := range a.Scores {
		assert.Equal(t, a.Scores[i].Code, b.Scores[i].Code)
		assert.InDelta(t, a.Scores[i].Index, b.Scores[i].Index, 1e-12)
	}
}

// TestRank_TargetsShrinkWithIndex: targets sit on the frontier side of
// the actuals, scaled by the region's own index.
func TestRank_TargetsShrinkWithIndex(t *testing.T) {
	ranking, err := efficiency.Rank(scorerFixture(t), efficiency.Weights{})
	require.NoError(t, err)

	for _, s := range ranking.Scores {
		assert.InDelta(t, s.Rate*s.Index, s.TargetRate, 1e-12, s.Code)
		assert.InDelta(t, s.Spend*s.Index, s.TargetSpend, 1e-12, s.Code)
		assert.LessOrEqual(t, s.TargetRate, s.Rate+1e-12, s.Code)
	}
}

// TestRank_ExcludesUnscorable: zero spend and zero rate fail per region,
// never system-wide.
func TestRank_ExcludesUnscorable(t *testing.T) {
	ds, err := region.NewDataset([]region.Region{
		{Code: "OK", Population: 1_000_000, CurrentDeaths: 100, CurrentBudget: 10_000_000},
		{Code: "OK2", Population: 1_000_000, CurrentDeaths: 150, CurrentBudget: 12_000_000},
		{Code: "NOSPEND", Population: 1_000_000, CurrentDeaths: 100, CurrentBudget: 0},
		{Code: "NODEATHS", Population: 1_000_000, CurrentDeaths: 0, CurrentBudget: 5_000_000},
	})
	require.NoError(t, err)

	ranking, err := efficiency.Rank(ds, efficiency.Weights{})
	require.NoError(t, err)

	assert.Len(t, ranking.Scores, 2)
	require.Len(t, ranking.Exclusions, 2)
	assert.Equal(t, "NOSPEND", ranking.Exclusions[0].Code)
	assert.Contains(t, ranking.Exclusions[0].Reason, "spend")
	assert.Equal(t, "NODEATHS", ranking.Exclusions[1].Code)
	assert.Contains(t, ranking.Exclusions[1].Reason, "rate")
}

// TestRank_AllExcluded is the only fatal case.
func TestRank_AllExcluded(t *testing.T) {
	ds, err := region.NewDataset([]region.Region{
		{Code: "A", Population: 1000, CurrentDeaths: 10, CurrentBudget: 0},
	})
	require.NoError(t, err)

	_, err = efficiency.Rank(ds, efficiency.Weights{})
	assert.ErrorIs(t, err, efficiency.ErrNoScorable)
}

// TestRank_BadWeights rejects splits that do not sum to 1.
func TestRank_BadWeights(t *testing.T) {
	ds := scorerFixture(t)

	_, err := efficiency.Rank(ds, efficiency.Weights{Outcome: 0.8, Economy: 0.3})
	assert.ErrorIs(t, err, efficiency.ErrBadWeights)

	_, err = efficiency.Rank(ds, efficiency.Weights{Outcome: 1.2, Economy: -0.2})
	assert.ErrorIs(t, err, efficiency.ErrBadWeights)
}
