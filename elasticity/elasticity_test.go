package elasticity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/region"
)

func seriesFromRates(firstYear int, rates ...float64) []region.RatePoint {
	out := make([]region.RatePoint, len(rates))
	for i, v := range rates {
		out[i] = region.RatePoint{Year: firstYear + i, Rate: v}
	}
	return out
}

// TestEstimate_KnownSlope builds series whose crime changes are exactly
// twice the proxy changes; the fitted ε must be 2 with a perfect R².
func TestEstimate_KnownSlope(t *testing.T) {
	// proxy changes: +10%, +20%, -5%  →  crime changes: +20%, +40%, -10%
	r := region.Region{
		Code:       "AA",
		Population: 1,
		History:    seriesFromRates(2000, 50, 60, 84, 75.6),
	}
	src := elasticity.StaticProxy{ByCode: map[string][]region.RatePoint{
		"AA": seriesFromRates(2000, 100, 110, 132, 125.4),
	}}

	res, err := elasticity.Estimate(r, src, elasticity.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Epsilon, 1e-9, "slope must match the constructed ratio")
	assert.InDelta(t, 1.0, res.RSquared, 1e-9, "exact linear relation must have R²=1")
	assert.Equal(t, 3, res.Pairs)
	assert.Equal(t, 2000, res.FirstYear)
	assert.Equal(t, 2003, res.LastYear)
}

// TestEstimate_InsufficientData requires ErrInsufficientData below 2 pairs.
func TestEstimate_InsufficientData(t *testing.T) {
	r := region.Region{
		Code:       "BB",
		Population: 1,
		History:    seriesFromRates(2000, 50, 55),
	}
	src := elasticity.StaticProxy{ByCode: map[string][]region.RatePoint{
		"BB": seriesFromRates(2000, 10, 12),
	}}

	_, err := elasticity.Estimate(r, src, elasticity.Options{})
	assert.ErrorIs(t, err, elasticity.ErrInsufficientData)
	assert.Contains(t, err.Error(), "BB", "error must carry the region code")
}

// TestEstimate_DegenerateProxy requires ErrDegenerateRegression for a
// constant proxy (zero-variance changes).
func TestEstimate_DegenerateProxy(t *testing.T) {
	r := region.Region{
		Code:       "CC",
		Population: 1,
		History:    seriesFromRates(2000, 50, 60, 70, 65),
	}
	src := elasticity.StaticProxy{ByCode: map[string][]region.RatePoint{
		"CC": seriesFromRates(2000, 10, 10, 10, 10),
	}}

	_, err := elasticity.Estimate(r, src, elasticity.Options{})
	assert.ErrorIs(t, err, elasticity.ErrDegenerateRegression)
}

// TestTrendProxy_Lag verifies the default proxy is the series shifted one year.
func TestTrendProxy_Lag(t *testing.T) {
	r := region.Region{Code: "DD", Population: 1, History: seriesFromRates(2010, 5, 7)}
	got := elasticity.TrendProxy{}.Series(r)
	require.Len(t, got, 2)
	assert.Equal(t, region.RatePoint{Year: 2011, Rate: 5}, got[0])
	assert.Equal(t, region.RatePoint{Year: 2012, Rate: 7}, got[1])
}

// TestEstimate_DefaultProxy runs the estimator with the lagged default on a
// geometric series: identical consecutive percentage changes make the
// lagged regression degenerate, which the estimator must report.
func TestEstimate_DefaultProxy(t *testing.T) {
	r := region.Region{
		Code:       "EE",
		Population: 1,
		History:    seriesFromRates(2000, 100, 110, 121, 133.1),
	}
	_, err := elasticity.Estimate(r, nil, elasticity.Options{})
	assert.ErrorIs(t, err, elasticity.ErrDegenerateRegression)
}

// TestEstimateAll_FatalPerRegion ensures one failing region aborts the call.
func TestEstimateAll_FatalPerRegion(t *testing.T) {
	ok := region.Region{Code: "AA", Population: 10, History: seriesFromRates(2000, 50, 60, 84, 75.6)}
	short := region.Region{Code: "BB", Population: 10, History: seriesFromRates(2000, 50, 55)}
	ds, err := region.NewDataset([]region.Region{ok, short})
	require.NoError(t, err)

	src := elasticity.StaticProxy{ByCode: map[string][]region.RatePoint{
		"AA": seriesFromRates(2000, 100, 110, 132, 125.4),
		"BB": seriesFromRates(2000, 10, 12),
	}}
	_, err = elasticity.EstimateAll(ds, src, elasticity.Options{})
	assert.ErrorIs(t, err, elasticity.ErrInsufficientData)
}

// TestTrendFit_ExactLinear checks slope/intercept/R² on a perfect line and
// that projections extrapolate it exactly.
func TestTrendFit_ExactLinear(t *testing.T) {
	pts := seriesFromRates(2010, 40, 38, 36, 34, 32) // slope −2 per year
	tr, err := elasticity.TrendFit(pts)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, tr.Slope, 1e-9)
	assert.InDelta(t, 40.0, tr.Intercept, 1e-9)
	assert.InDelta(t, 1.0, tr.RSquared, 1e-9)
	assert.InDelta(t, 30.0, tr.Project(2015), 1e-9)
}

// TestTrendFit_FloorsAtZero ensures projections never go negative.
func TestTrendFit_FloorsAtZero(t *testing.T) {
	tr, err := elasticity.TrendFit(seriesFromRates(2010, 4, 2))
	require.NoError(t, err)
	assert.Zero(t, tr.Project(2020), "a decaying trend must project to zero, not below")
}

// TestTrendFit_TooFewPoints requires ErrInsufficientData for one point.
func TestTrendFit_TooFewPoints(t *testing.T) {
	_, err := elasticity.TrendFit(seriesFromRates(2010, 4))
	assert.ErrorIs(t, err, elasticity.ErrInsufficientData)
}
