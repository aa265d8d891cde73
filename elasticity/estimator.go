package elasticity

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/rfaguiar/secalloc/region"
)

// Estimate fits Δcrime% ~ Δproxy% for one region and returns the slope as
// the elasticity coefficient ε together with R².
//
// Both series are aligned by year: a pair (Δcrime, Δproxy) is valid for
// year y only when both series carry observations for y and y−1 with a
// non-zero previous value (zero denominators are skipped, not imputed).
//
// Errors:
//   - ErrInsufficientData       — fewer than opts.MinPairs valid pairs.
//   - ErrDegenerateRegression   — proxy changes have zero variance.
//
// Pure function of its inputs; no side effects.
//
// Complexity: O(len(History) + len(proxy)).
func Estimate(r region.Region, src ProxySource, opts Options) (Result, error) {
	minPairs := opts.MinPairs
	if minPairs < DefaultMinPairs {
		minPairs = DefaultMinPairs
	}
	if src == nil {
		src = TrendProxy{}
	}

	crime := seriesByYear(r.History)
	proxy := seriesByYear(src.Series(r))

	var (
		dc, dp    []float64
		first     = 0
		last      = 0
		haveYears = false
	)
	for _, p := range r.History {
		y := p.Year
		cPrev, okC := crime[y-1]
		pCur, okP := proxy[y]
		pPrev, okPP := proxy[y-1]
		if !okC || !okP || !okPP || cPrev == 0 || pPrev == 0 {
			continue
		}
		dc = append(dc, (p.Rate-cPrev)/cPrev*100)
		dp = append(dp, (pCur-pPrev)/pPrev*100)
		if !haveYears || y-1 < first {
			first = y - 1
		}
		if !haveYears || y > last {
			last = y
		}
		haveYears = true
	}

	if len(dc) < minPairs {
		return Result{}, fmt.Errorf("region %q: %d valid pairs: %w", r.Code, len(dc), ErrInsufficientData)
	}
	if stat.Variance(dp, nil) == 0 {
		return Result{}, fmt.Errorf("region %q: %w", r.Code, ErrDegenerateRegression)
	}

	alpha, beta := stat.LinearRegression(dp, dc, nil, false)
	r2 := stat.RSquared(dp, dc, nil, alpha, beta)

	return Result{
		Code:      r.Code,
		Epsilon:   beta,
		RSquared:  r2,
		FirstYear: first,
		LastYear:  last,
		Pairs:     len(dc),
	}, nil
}

// EstimateAll runs Estimate for every region of the dataset.
// A failure for any region is fatal to the call and carries that region's
// code; partial results are not returned.
func EstimateAll(ds *region.Dataset, src ProxySource, opts Options) (map[string]Result, error) {
	out := make(map[string]Result, ds.Len())
	for _, r := range ds.Regions() {
		res, err := Estimate(r, src, opts)
		if err != nil {
			return nil, err
		}
		out[r.Code] = res
	}
	return out, nil
}

// seriesByYear indexes a rate series by year.
func seriesByYear(pts []region.RatePoint) map[int]float64 {
	m := make(map[int]float64, len(pts))
	for _, p := range pts {
		m[p.Year] = p.Rate
	}
	return m
}
