// Package elasticity defines options, result types, proxy strategies and
// sentinel errors for crime-investment elasticity estimation.
package elasticity

import (
	"errors"

	"github.com/rfaguiar/secalloc/region"
)

// Sentinel errors for regression fitting.
var (
	// ErrInsufficientData indicates fewer valid observation pairs than required.
	ErrInsufficientData = errors.New("elasticity: insufficient historical data for regression")
	// ErrDegenerateRegression indicates a zero-variance regressor.
	ErrDegenerateRegression = errors.New("elasticity: zero-variance input, regression is degenerate")
)

// DefaultMinPairs is the minimum number of valid year-over-year change
// pairs required by Estimate.
const DefaultMinPairs = 2

// Result is one region's estimated elasticity.
//
// Epsilon is signed: a negative coefficient means additional investment
// reduces the crime rate, which is the beneficial case downstream
// optimization rewards. RSquared is the fit-quality score in [0, 1].
type Result struct {
	Code      string
	Epsilon   float64
	RSquared  float64
	FirstYear int // first year of the window actually used
	LastYear  int // last year of the window actually used
	Pairs     int // number of valid change pairs in the fit
}

// Options configures Estimate.
type Options struct {
	// MinPairs is the minimum number of valid change pairs; values below
	// DefaultMinPairs are raised to it.
	MinPairs int
}

// ProxySource supplies the investment-proxy series for a region.
//
// The regression relates year-over-year percentage change in crime rate to
// the percentage change of this proxy. When a true budget history exists it
// should be supplied here (StaticProxy); the default TrendProxy stands in
// for missing budget data with the region's own lagged rate series, a
// documented simplification.
type ProxySource interface {
	Series(r region.Region) []region.RatePoint
}

// TrendProxy is the default ProxySource: the region's own crime-rate series
// lagged by one year, so the regression measures how strongly this year's
// rate change follows last year's. Using the unlagged series would regress
// a variable on itself (slope identically one).
type TrendProxy struct{}

// Series returns r's history shifted forward one year.
func (TrendProxy) Series(r region.Region) []region.RatePoint {
	out := make([]region.RatePoint, len(r.History))
	for i, p := range r.History {
		out[i] = region.RatePoint{Year: p.Year + 1, Rate: p.Rate}
	}
	return out
}

// StaticProxy serves explicit per-region proxy series, keyed by region
// code. The substitution point for genuine investment histories or any
// caller-chosen imputation (e.g. a group average).
type StaticProxy struct {
	ByCode map[string][]region.RatePoint
}

// Series returns the configured series for r, or nil when absent.
func (s StaticProxy) Series(r region.Region) []region.RatePoint {
	return s.ByCode[r.Code]
}
