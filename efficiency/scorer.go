package efficiency

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rfaguiar/secalloc/region"
)

// Rank scores every region's efficiency and orders them best first.
//
// A region's outcome component is the cross-region mean death rate over
// its own rate, and its economy component is the mean per-capita spend
// over its own spend, so a region that achieves below-average deaths on
// below-average money scores above 1 on both. The weighted combination
// is normalized so the best region's index is exactly 1; regions within
// rounding of 1 are flagged as benchmarks.
//
// Regions with a zero rate or zero spend cannot carry the inverse-ratio
// components; they are excluded from both the means and the ranking, and
// reported in Ranking.Exclusions. Only a dataset with no scorable region
// at all fails.
func Rank(ds *region.Dataset, w Weights) (Ranking, error) {
	if w == (Weights{}) {
		w = Default()
	}
	if w.Outcome < 0 || w.Economy < 0 || math.Abs(w.Outcome+w.Economy-1) > 1e-9 {
		return Ranking{}, fmt.Errorf("%w: outcome=%g economy=%g", ErrBadWeights, w.Outcome, w.Economy)
	}

	type input struct {
		code        string
		rate, spend float64
	}
	var (
		included   []input
		exclusions []Exclusion
	)
	for _, r := range ds.Regions() {
		rate, spend := r.RatePer100k(), r.SpendPerCapita()
		switch {
		case spend <= 0:
			exclusions = append(exclusions, Exclusion{Code: r.Code, Reason: "zero spend per capita"})
		case rate <= 0:
			exclusions = append(exclusions, Exclusion{Code: r.Code, Reason: "zero death rate"})
		default:
			included = append(included, input{code: r.Code, rate: rate, spend: spend})
		}
	}
	if len(included) == 0 {
		return Ranking{}, fmt.Errorf("%d regions excluded: %w", len(exclusions), ErrNoScorable)
	}

	rates := make([]float64, len(included))
	spends := make([]float64, len(included))
	for i, in := range included {
		rates[i], spends[i] = in.rate, in.spend
	}
	meanRate := stat.Mean(rates, nil)
	meanSpend := stat.Mean(spends, nil)

	scores := make([]Score, len(included))
	var maxIndex float64
	for i, in := range included {
		s := Score{
			Code:    in.code,
			Rate:    in.rate,
			Spend:   in.spend,
			Outcome: meanRate / in.rate,
			Economy: meanSpend / in.spend,
		}
		s.Index = w.Outcome*s.Outcome + w.Economy*s.Economy
		if s.Index > maxIndex {
			maxIndex = s.Index
		}
		scores[i] = s
	}
	for i := range scores {
		scores[i].Index /= maxIndex
		scores[i].Benchmark = scores[i].Index >= benchmarkThreshold
		scores[i].TargetRate = scores[i].Rate * scores[i].Index
		scores[i].TargetSpend = scores[i].Spend * scores[i].Index
	}

	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].Index != scores[b].Index {
			return scores[a].Index > scores[b].Index
		}
		return scores[a].Code < scores[b].Code
	})
	return Ranking{Scores: scores, Exclusions: exclusions, Weights: w}, nil
}
