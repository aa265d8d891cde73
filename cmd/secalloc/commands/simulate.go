package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/montecarlo"
)

func simulateCmd() *cobra.Command {
	var (
		budget  float64
		trials  int
		noise   float64
		seed    int64
		workers int
		compare bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo run under parameter noise",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, proxy, err := loadDataset()
			if err != nil {
				return err
			}
			el, err := fitElasticities(ds, proxy)
			if err != nil {
				return err
			}

			cfg := montecarlo.Config{
				Trials: trials, Noise: noise, Seed: seed, Workers: workers,
			}
			if compare {
				cmp, err := montecarlo.CompareScenarios(cmd.Context(), ds, el, budget, cfg)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmp)
				}
				for _, r := range []struct {
					name string
					res  montecarlo.Result
				}{
					{"pessimistic", cmp.Pessimistic},
					{"base", cmp.Base},
					{"optimistic", cmp.Optimistic},
				} {
					fmt.Printf("%s:\n", r.name)
					printResult(r.res)
				}
				return nil
			}

			res, err := montecarlo.Simulate(cmd.Context(), ds, el, budget, cfg)
			if err != nil {
				return err
			}
			log.Info("simulation done",
				"trials", res.Succeeded+res.Failed, "failed", res.Failed, "seed", res.Seed)
			if asJSON {
				return printJSON(res)
			}
			printResult(res)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "total supplemental budget")
	cmd.Flags().IntVarP(&trials, "trials", "n", 1000, "number of perturbed trials")
	cmd.Flags().Float64Var(&noise, "noise", montecarlo.DefaultNoise, "relative noise half-width")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel trials (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&compare, "compare", false, "run pessimistic/base/optimistic regimes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}

func printResult(r montecarlo.Result) {
	fmt.Printf("  lives saved: mean %.1f ± %.1f (95%% CI  %.1f – %.1f)\n", r.Mean, r.StdDev, r.CILow, r.CIHigh)
	fmt.Printf("  value at risk (p5): %.1f\n", r.ValueAtRisk)
	p := r.Percentiles
	fmt.Printf("  percentiles: p5 %.1f  p25 %.1f  p50 %.1f  p75 %.1f  p95 %.1f\n", p.P5, p.P25, p.P50, p.P75, p.P95)
}
