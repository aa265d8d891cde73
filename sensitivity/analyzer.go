package sensitivity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rfaguiar/secalloc/allocate"
	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/region"
)

// Sweep evaluates the allocation at cfg.Points budget levels and derives
// the shadow price at each level from the finite difference against the
// previous level.
//
// Infeasible levels are tolerated: the point is kept with Defined=false
// and the shadow price stays undefined across the gap.
//
// Complexity: Points independent LP solves, bounded by cfg.Parallelism.
func Sweep(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, cfg SweepConfig) ([]SweepPoint, error) {
	if cfg.Step <= 0 || cfg.Points < 2 || cfg.Base < 0 {
		return nil, fmt.Errorf("%w: base=%g step=%g points=%d", ErrBadSweep, cfg.Base, cfg.Step, cfg.Points)
	}

	points := make([]SweepPoint, cfg.Points)
	g, gctx := errgroup.WithContext(ctx)
	limit := cfg.Parallelism
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)
	for k := 0; k < cfg.Points; k++ {
		k := k
		budget := cfg.Base + float64(k)*cfg.Step
		g.Go(func() error {
			plan, err := allocate.Allocate(gctx, ds, el, budget, cfg.Allocate)
			switch {
			case errors.Is(err, allocate.ErrInfeasibleBudget):
				points[k] = SweepPoint{Budget: budget}
				return nil
			case err != nil:
				return fmt.Errorf("sweep at budget %g: %w", budget, err)
			}
			points[k] = SweepPoint{
				Budget:          budget,
				LivesSaved:      plan.LivesSaved,
				ProjectedDeaths: plan.ProjectedDeaths,
				Defined:         true,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for k := 1; k < len(points); k++ {
		if !points[k].Defined || !points[k-1].Defined {
			continue
		}
		points[k].ShadowPrice = (points[k].LivesSaved - points[k-1].LivesSaved) / cfg.Step
		points[k].ShadowDefined = true
	}
	return points, nil
}

// Tornado ranks parameters by how much a symmetric relative shock moves
// total lives saved. Shocked parameters are each region's elasticity,
// each region's base budget, and the total budget itself.
//
// The base solve is fatal; individual shocked solves that turn out
// infeasible record NaN on that side and count zero toward the swing.
func Tornado(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, budget float64, cfg TornadoConfig) ([]TornadoEntry, error) {
	p := cfg.Perturbation
	if p == 0 {
		p = DefaultPerturbation
	}
	if p <= 0 || p >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadPerturbation, p)
	}

	base, err := allocate.Allocate(ctx, ds, el, budget, cfg.Allocate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseInfeasible, err)
	}

	type probe struct {
		kind ParameterKind
		code string
	}
	var probes []probe
	for _, r := range ds.Regions() {
		probes = append(probes, probe{ParamElasticity, r.Code})
		probes = append(probes, probe{ParamBaseBudget, r.Code})
	}
	probes = append(probes, probe{ParamTotalBudget, ""})

	entries := make([]TornadoEntry, len(probes))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}
	for i, pr := range probes {
		i, pr := i, pr
		g.Go(func() error {
			low, err := solveShocked(gctx, ds, el, budget, pr.kind, pr.code, 1-p, cfg.Allocate)
			if err != nil {
				return err
			}
			high, err := solveShocked(gctx, ds, el, budget, pr.kind, pr.code, 1+p, cfg.Allocate)
			if err != nil {
				return err
			}
			entries[i] = TornadoEntry{
				Kind: pr.kind,
				Code: pr.code,
				Low:  low,
				High: high,
				Swing: math.Max(
					absDelta(low, base.LivesSaved),
					absDelta(high, base.LivesSaved),
				),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(a, b int) bool { return entries[a].Swing > entries[b].Swing })
	if cfg.TopN > 0 && cfg.TopN < len(entries) {
		entries = entries[:cfg.TopN]
	}
	return entries, nil
}

// solveShocked reruns the allocation with exactly one parameter scaled by
// factor. Infeasibility is reported as NaN, every other failure is fatal.
func solveShocked(ctx context.Context, ds *region.Dataset, el map[string]elasticity.Result, budget float64, kind ParameterKind, code string, factor float64, opts allocate.Options) (float64, error) {
	sds, sel, sb := ds, el, budget
	switch kind {
	case ParamElasticity:
		sel = make(map[string]elasticity.Result, len(el))
		for c, r := range el {
			sel[c] = r
		}
		r := sel[code]
		r.Epsilon *= factor
		sel[code] = r
	case ParamBaseBudget:
		sds = ds.Map(func(r region.Region) region.Region {
			if r.Code == code {
				return r.WithBudget(r.CurrentBudget * factor)
			}
			return r
		})
	case ParamTotalBudget:
		sb = budget * factor
	default:
		return 0, fmt.Errorf("sensitivity: unknown parameter kind %q", kind)
	}

	plan, err := allocate.Allocate(ctx, sds, sel, sb, opts)
	switch {
	case errors.Is(err, allocate.ErrInfeasibleBudget):
		return math.NaN(), nil
	case err != nil:
		return 0, fmt.Errorf("shocked solve (%s %s ×%g): %w", kind, code, factor, err)
	}
	return plan.LivesSaved, nil
}

// Scenarios solves a set of named what-if datasets against the same
// elasticities and budget, reporting each plan's lives-saved delta
// against the base case. A failing scenario carries its error instead
// of aborting the batch.
func Scenarios(ctx context.Context, base *region.Dataset, el map[string]elasticity.Result, budget float64, opts allocate.Options, scenarios map[string]*region.Dataset) ([]ScenarioResult, error) {
	basePlan, err := allocate.Allocate(ctx, base, el, budget, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseInfeasible, err)
	}

	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ScenarioResult, 0, len(names))
	for _, name := range names {
		plan, err := allocate.Allocate(ctx, scenarios[name], el, budget, opts)
		if err != nil {
			out = append(out, ScenarioResult{Name: name, Err: err})
			continue
		}
		out = append(out, ScenarioResult{
			Name:       name,
			Plan:       plan,
			LivesDelta: plan.LivesSaved - basePlan.LivesSaved,
		})
	}
	return out, nil
}

// absDelta treats a NaN side as contributing no swing.
func absDelta(v, base float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Abs(v - base)
}
