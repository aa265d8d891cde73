package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/sensitivity"
)

func sweepCmd() *cobra.Command {
	var (
		base, step float64
		points     int
		workers    int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Budget sweep with shadow prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, proxy, err := loadDataset()
			if err != nil {
				return err
			}
			el, err := fitElasticities(ds, proxy)
			if err != nil {
				return err
			}

			pts, err := sensitivity.Sweep(cmd.Context(), ds, el, sensitivity.SweepConfig{
				Base: base, Step: step, Points: points, Parallelism: workers,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(pts)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BUDGET\tSAVED\tSHADOW")
			for _, p := range pts {
				if !p.Defined {
					fmt.Fprintf(w, "%.2f\tinfeasible\t-\n", p.Budget)
					continue
				}
				shadow := "-"
				if p.ShadowDefined {
					shadow = fmt.Sprintf("%.3f", p.ShadowPrice)
				}
				fmt.Fprintf(w, "%.2f\t%.1f\t%s\n", p.Budget, p.LivesSaved, shadow)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&base, "base", 0, "first budget evaluated")
	cmd.Flags().Float64Var(&step, "step", 0, "budget increment per point")
	cmd.Flags().IntVar(&points, "points", 10, "number of budgets evaluated")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel solves (0 = serial)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	_ = cmd.MarkFlagRequired("step")
	return cmd
}
