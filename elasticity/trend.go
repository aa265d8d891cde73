package elasticity

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/rfaguiar/secalloc/region"
)

// Trend is a fitted linear trend of crime rate against year.
// Used by backtesting to project a test horizon from a training window.
type Trend struct {
	// Slope is the rate change per year; negative means improvement.
	Slope float64
	// Intercept is the fitted rate at BaseYear.
	Intercept float64
	// RSquared is the fit quality in [0, 1].
	RSquared float64
	// BaseYear anchors the fit: Project(BaseYear) == Intercept.
	BaseYear int
}

// TrendFit fits rate ~ (year − firstYear) by ordinary least squares.
//
// Errors:
//   - ErrInsufficientData when fewer than 2 points are supplied.
//   - ErrDegenerateRegression when all points share one year (cannot
//     happen for series validated by region.NewDataset, but the guard
//     keeps the function total for ad-hoc slices).
func TrendFit(pts []region.RatePoint) (Trend, error) {
	if len(pts) < 2 {
		return Trend{}, fmt.Errorf("%d points: %w", len(pts), ErrInsufficientData)
	}
	base := pts[0].Year
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.Year - base)
		ys[i] = p.Rate
	}
	if stat.Variance(xs, nil) == 0 {
		return Trend{}, ErrDegenerateRegression
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	return Trend{Slope: beta, Intercept: alpha, RSquared: r2, BaseYear: base}, nil
}

// Project evaluates the trend at the given year. Rates cannot be negative,
// so projections are floored at zero.
func (t Trend) Project(year int) float64 {
	v := t.Intercept + t.Slope*float64(year-t.BaseYear)
	if v < 0 {
		return 0
	}
	return v
}
