package multiperiod

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rfaguiar/secalloc/allocate"
	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/region"
)

// Weights returns the normalized per-period budget shares for a strategy
// over a horizon of t periods. The shares always sum to 1.
//
// Profiles (before normalization, k = 0..t-1):
//
//	Uniform:     1
//	FrontLoaded: 1 + 0.5·(t-k)/t
//	BackLoaded:  1 + 0.5·k/t
//	LinearRamp:  0.5 + k/t
func Weights(s Strategy, t int) ([]float64, error) {
	if t < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadHorizon, t)
	}
	if s == "" {
		s = Uniform
	}

	w := make([]float64, t)
	ft := float64(t)
	for k := 0; k < t; k++ {
		fk := float64(k)
		switch s {
		case Uniform:
			w[k] = 1
		case FrontLoaded:
			w[k] = 1 + 0.5*(ft-fk)/ft
		case BackLoaded:
			w[k] = 1 + 0.5*fk/ft
		case LinearRamp:
			w[k] = 0.5 + fk/ft
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
		}
	}

	var sum float64
	for _, v := range w {
		sum += v
	}
	for k := range w {
		w[k] /= sum
	}
	return w, nil
}

// Build spreads total across cfg.Horizon periods per cfg.Strategy and
// solves each period in sequence. Lives saved in one period lower every
// region's death baseline for the next, so later periods optimize against
// the world the earlier periods produced. Baselines never go below zero.
func Build(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, total float64, cfg Config) (Plan, error) {
	w, err := Weights(cfg.Strategy, cfg.Horizon)
	if err != nil {
		return Plan{}, err
	}
	strategy := cfg.Strategy
	if strategy == "" {
		strategy = Uniform
	}

	plan := Plan{Strategy: strategy, Horizon: cfg.Horizon, Total: total}
	current := ds
	for k, share := range w {
		budget := total * share
		p, err := allocate.Allocate(ctx, current, el, budget, cfg.Allocate)
		if err != nil {
			return Plan{}, fmt.Errorf("period %d (budget %g): %w", k, budget, err)
		}
		plan.LivesSaved += p.LivesSaved
		plan.Periods = append(plan.Periods, Period{
			Index:           k,
			Budget:          budget,
			Plan:            p,
			CumulativeSaved: plan.LivesSaved,
		})

		averted := make(map[string]float64, len(p.Grants))
		for _, g := range p.Grants {
			averted[g.Code] = g.DeathsAverted
		}
		current = current.Map(func(r region.Region) region.Region {
			return r.WithDeaths(math.Max(0, r.CurrentDeaths-averted[r.Code]))
		})
	}
	return plan, nil
}

// Compare plans the same total under every strategy and ranks them by
// lives saved, best first. Ties keep the Strategies() order.
func Compare(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, total float64, cfg Config) ([]Ranking, error) {
	rankings := make([]Ranking, 0, len(Strategies()))
	for _, s := range Strategies() {
		c := cfg
		c.Strategy = s
		p, err := Build(ctx, ds, el, total, c)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", s, err)
		}
		rankings = append(rankings, Ranking{Strategy: s, LivesSaved: p.LivesSaved})
	}
	sort.SliceStable(rankings, func(a, b int) bool {
		return rankings[a].LivesSaved > rankings[b].LivesSaved
	})
	return rankings, nil
}
