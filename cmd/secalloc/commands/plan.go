package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/multiperiod"
)

func planCmd() *cobra.Command {
	var (
		budget   float64
		horizon  int
		strategy string
		compare  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Multi-period disbursement schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, proxy, err := loadDataset()
			if err != nil {
				return err
			}
			el, err := fitElasticities(ds, proxy)
			if err != nil {
				return err
			}

			cfg := multiperiod.Config{Horizon: horizon, Strategy: multiperiod.Strategy(strategy)}
			if compare {
				rankings, err := multiperiod.Compare(cmd.Context(), ds, el, budget, cfg)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(rankings)
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "STRATEGY\tLIVES SAVED")
				for _, r := range rankings {
					fmt.Fprintf(w, "%s\t%.1f\n", r.Strategy, r.LivesSaved)
				}
				return w.Flush()
			}

			plan, err := multiperiod.Build(cmd.Context(), ds, el, budget, cfg)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(plan)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tBUDGET\tSAVED\tCUMULATIVE")
			for _, p := range plan.Periods {
				fmt.Fprintf(w, "%d\t%.2f\t%.1f\t%.1f\n", p.Index+1, p.Budget, p.Plan.LivesSaved, p.CumulativeSaved)
			}
			fmt.Fprintf(w, "TOTAL\t%.2f\t%.1f\t\n", plan.Total, plan.LivesSaved)
			return w.Flush()
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "total multi-year budget")
	cmd.Flags().IntVarP(&horizon, "horizon", "t", 3, "number of periods")
	cmd.Flags().StringVar(&strategy, "strategy", string(multiperiod.Uniform), "uniform|front-loaded|back-loaded|linear-ramp")
	cmd.Flags().BoolVar(&compare, "compare", false, "rank every strategy instead")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}
